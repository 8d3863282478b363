package booking

import (
	"context"
	"log"
	"strings"

	"github.com/owiro17/smarttrimz/internal/audit"
	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
	"github.com/owiro17/smarttrimz/internal/httperr"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the booking cancelled with a single status update. The
// loaded record is not mutated locally; observers pick up the change
// from the next watch-feed snapshot.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID string,
	bookingID string,
) error {

	// Blank id: log and bail out before touching the store.
	if strings.TrimSpace(bookingID) == "" {
		log.Println("cancel booking: blank booking id")
		return httperr.ErrBusiness("invalid_booking_id")
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	// A user may only cancel their own bookings; respond as not-found
	// so ids belonging to other users are not confirmed to exist.
	if b.UserID != userID {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanCancel(b.Status); err != nil {
		return err
	}

	if err := uc.repo.UpdateBookingStatus(
		ctx,
		bookingID,
		domain.StatusCancelled,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
