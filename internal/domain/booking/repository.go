package booking

import (
	"context"

	"github.com/owiro17/smarttrimz/internal/models"
)

type Repository interface {
	// -------- Barber catalog (read-only) --------
	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	GetBarberByID(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	// -------- Booking (create / read) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListBookingsByUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBookingStatus(
		ctx context.Context,
		id string,
		status Status,
	) error
}
