package booking

import (
	"context"
	"time"

	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
)

type ListBookings struct {
	repo domain.Repository
	loc  *time.Location

	// now is swappable in tests; defaults to the shop clock.
	now func() time.Time
}

func NewListBookings(
	repo domain.Repository,
	loc *time.Location,
) *ListBookings {
	return &ListBookings{
		repo: repo,
		loc:  loc,
		now: func() time.Time {
			return time.Now().In(loc)
		},
	}
}

// Execute loads the user's bookings and derives the two display
// buckets relative to the current shop time.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID string,
) (upcoming, past []domain.View, err error) {

	rows, err := uc.repo.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	upcoming, past = domain.Buckets(rows, uc.now())
	return upcoming, past, nil
}
