package booking

import (
	"sort"
	"time"

	"github.com/owiro17/smarttrimz/internal/models"
)

// View is one booking as presented to the client: the stored record
// plus the status label derived at read time.
type View struct {
	models.Booking
	DisplayStatus Status `json:"display_status"`
}

// Buckets partitions a snapshot of a user's bookings into the two
// display groupings, relative to now:
//
//   - upcoming: stored status "upcoming" AND date/time strictly after
//     now, sorted soonest first;
//   - past: everything else (cancelled, already-completed, upcoming
//     whose time has passed, or no date/time at all), sorted most
//     recent first.
//
// Pure derivation over the snapshot: nothing is written back, and the
// same inputs always yield the same buckets. Sorting is stable, so
// bookings sharing a date/time keep their input order.
func Buckets(all []models.Booking, now time.Time) (upcoming, past []View) {
	upcoming = make([]View, 0, len(all))
	past = make([]View, 0, len(all))

	for i := range all {
		b := all[i]
		if isUpcoming(&b, now) {
			upcoming = append(upcoming, View{Booking: b, DisplayStatus: StatusUpcoming})
		} else {
			past = append(past, View{Booking: b, DisplayStatus: DisplayStatus(&b, now)})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DateTime.Before(*upcoming[j].DateTime)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return laterThan(past[i].DateTime, past[j].DateTime)
	})

	return upcoming, past
}

// isUpcoming is the one rule that admits a booking into the upcoming
// bucket. A nil date/time can never be judged "after now".
func isUpcoming(b *models.Booking, now time.Time) bool {
	return Is(b.Status, StatusUpcoming) && b.DateTime != nil && b.DateTime.After(now)
}

// laterThan orders the past bucket descending; entries without a
// date/time sink to the end.
func laterThan(a, b *time.Time) bool {
	if b == nil {
		return a != nil
	}
	if a == nil {
		return false
	}
	return a.After(*b)
}
