package booking

import (
	"context"
	"time"

	"github.com/owiro17/smarttrimz/internal/audit"
	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// Identifier of the signed-in user; empty means not authenticated.
	UserID string

	BarberID string

	// Date must carry an explicit year ("2006-01-02"); the time slot
	// is 24h "15:04". Both interpreted in the shop timezone.
	Date string
	Time string

	// Free-text service label; defaults to "Haircut" when blank, which
	// is what older app builds always sent.
	Service string
}

const defaultService = "Haircut"

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Authentication — checked before anything else
	// --------------------------------------------------
	if in.UserID == "" {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	// --------------------------------------------------
	// 2. All three selections are mandatory
	// --------------------------------------------------
	if in.BarberID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_selection")
	}

	// --------------------------------------------------
	// 3. Combine date + time in the shop timezone
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Barber must exist in the catalog
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service := in.Service
	if service == "" {
		service = defaultService
	}

	// --------------------------------------------------
	// 5. Build and persist; the store assigns the id
	// --------------------------------------------------
	b := &models.Booking{
		UserID:     in.UserID,
		BarberID:   barber.ID,
		BarberName: barber.Name,
		Service:    service,
		DateTime:   &start,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &b.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
