package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/owiro17/smarttrimz/internal/audit"
	"github.com/owiro17/smarttrimz/internal/config"
	"github.com/owiro17/smarttrimz/internal/feed"
	"github.com/owiro17/smarttrimz/internal/handlers"
	infraRepo "github.com/owiro17/smarttrimz/internal/infra/repository"
	"github.com/owiro17/smarttrimz/internal/middleware"
	"github.com/owiro17/smarttrimz/internal/storage"
	"github.com/owiro17/smarttrimz/internal/timezone"
	ucBooking "github.com/owiro17/smarttrimz/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ShopTimezone)

	publisher := feed.NewPublisher(rdb)
	bookingRepo := infraRepo.NewBookingGormRepository(db, publisher)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStore := storage.NewS3Storage(cfg)

	hub := feed.NewHub()
	listener := feed.NewListener(rdb, hub, bookingRepo, loc)
	go listener.Run(context.Background())

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		loc,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(db, avatarStore, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(bookingRepo)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		listBookingsUC,
		cfg.RequestTimeout,
	)

	feedHandler := handlers.NewFeedHandler(hub, listener)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/barbers", barberHandler.List)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.List)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.GET("/me/bookings/watch", feedHandler.Watch)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
