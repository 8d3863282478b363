package booking

import (
	"strings"
	"time"

	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Stored statuses are compared case-insensitively; older clients wrote
// mixed-case values like "Completed".
func Is(stored string, s Status) bool {
	return strings.EqualFold(stored, string(s))
}

// ===============================
// Validations
// ===============================

// CanCancel allows cancellation only while a booking is still upcoming;
// cancelled is terminal and completed is never cancellable.
func CanCancel(stored string) error {
	if !Is(stored, StatusUpcoming) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusUpcoming
}

// ===============================
// Display status
// ===============================

// DisplayStatus derives the label shown to the user from the stored
// status and the clock. An upcoming booking whose time has passed is
// shown as completed; the stored record is never rewritten for that.
func DisplayStatus(b *models.Booking, now time.Time) Status {
	switch {
	case Is(b.Status, StatusCancelled):
		return StatusCancelled
	case Is(b.Status, StatusCompleted):
		return StatusCompleted
	case Is(b.Status, StatusUpcoming):
		if b.DateTime != nil && !b.DateTime.After(now) {
			return StatusCompleted
		}
		return StatusUpcoming
	default:
		return Status(strings.ToLower(b.Status))
	}
}
