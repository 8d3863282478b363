package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/middleware"
	ucBooking "github.com/owiro17/smarttrimz/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelBooking
	listUC   *ucBooking.ListBookings
	timeout  time.Duration
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
	timeout time.Duration,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		timeout:  timeout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_selection", "Barber, date and time are required.")
		return
	}

	// Mutating calls are bounded so a slow store cannot pin the
	// request past the point anyone is still watching for the result.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	b, err := h.createUC.Execute(ctx, ucBooking.CreateBookingInput{
		UserID:   userID,
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST (bucketed)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	upcoming, past, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to load bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming": upcoming,
		"past":     past,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)
	bookingID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.cancelUC.Execute(ctx, userID, bookingID); err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func respondBusiness(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "missing_selection", "invalid_date_or_time", "invalid_booking_id":
		httperr.BadRequest(c, code, "Invalid booking request.")
	case "not_authenticated":
		httperr.Unauthorized(c, code, "You must be signed in.")
	case "barber_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Not found.")
	case "invalid_state":
		httperr.Conflict(c, code, "The booking can no longer be changed.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
