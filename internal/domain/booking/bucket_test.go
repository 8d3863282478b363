package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owiro17/smarttrimz/internal/models"
)

func ts(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	return &t
}

func TestBuckets_ExampleScenario(t *testing.T) {
	now := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "1", Status: "upcoming", DateTime: ts(2024, time.December, 15, 10, 0)},
		{ID: "2", Status: "upcoming", DateTime: ts(2024, time.November, 1, 9, 0)},
		{ID: "3", Status: "cancelled", DateTime: ts(2024, time.December, 20, 0, 0)},
	}

	upcoming, past := Buckets(all, now)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "1", upcoming[0].ID)
	assert.Equal(t, StatusUpcoming, upcoming[0].DisplayStatus)

	// Past is ordered most recent first: #3 (Dec 20) before #2 (Nov 1).
	require.Len(t, past, 2)
	assert.Equal(t, "3", past[0].ID)
	assert.Equal(t, StatusCancelled, past[0].DisplayStatus)
	assert.Equal(t, "2", past[1].ID)
	assert.Equal(t, StatusCompleted, past[1].DisplayStatus)

	// Stored statuses are untouched.
	assert.Equal(t, "upcoming", past[1].Status)
}

func TestBuckets_UpcomingSortedAscending(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "a", Status: "upcoming", DateTime: ts(2024, time.December, 22, 14, 30)},
		{ID: "b", Status: "upcoming", DateTime: ts(2024, time.December, 15, 10, 0)},
		{ID: "c", Status: "upcoming", DateTime: ts(2024, time.December, 18, 9, 0)},
	}

	upcoming, past := Buckets(all, now)

	require.Empty(t, past)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "b", upcoming[0].ID)
	assert.Equal(t, "c", upcoming[1].ID)
	assert.Equal(t, "a", upcoming[2].ID)
}

func TestBuckets_CancelledNeverUpcoming(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "future-cancelled", Status: "cancelled", DateTime: ts(2025, time.June, 1, 12, 0)},
	}

	upcoming, past := Buckets(all, now)

	assert.Empty(t, upcoming)
	require.Len(t, past, 1)
	assert.Equal(t, StatusCancelled, past[0].DisplayStatus)
}

func TestBuckets_ElapsedUpcomingLabeledCompleted(t *testing.T) {
	dt := ts(2024, time.December, 10, 10, 0)
	b := models.Booking{ID: "x", Status: "upcoming", DateTime: dt}

	before := dt.Add(-time.Hour)
	after := dt.Add(time.Hour)

	upcoming, past := Buckets([]models.Booking{b}, before)
	require.Len(t, upcoming, 1)
	assert.Empty(t, past)

	// Re-running after the clock passes the slot moves only the bucket
	// and the label; the stored record stays "upcoming".
	upcoming, past = Buckets([]models.Booking{b}, after)
	assert.Empty(t, upcoming)
	require.Len(t, past, 1)
	assert.Equal(t, StatusCompleted, past[0].DisplayStatus)
	assert.Equal(t, "upcoming", past[0].Status)
}

func TestBuckets_DateTimeAtNowIsPast(t *testing.T) {
	now := time.Date(2024, time.December, 10, 10, 0, 0, 0, time.UTC)
	b := models.Booking{ID: "exact", Status: "upcoming", DateTime: &now}

	upcoming, past := Buckets([]models.Booking{b}, now)

	assert.Empty(t, upcoming)
	require.Len(t, past, 1)
	assert.Equal(t, StatusCompleted, past[0].DisplayStatus)
}

func TestBuckets_NilDateTime(t *testing.T) {
	now := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "no-time", Status: "upcoming", DateTime: nil},
		{ID: "dated", Status: "cancelled", DateTime: ts(2024, time.November, 1, 9, 0)},
	}

	upcoming, past := Buckets(all, now)

	assert.Empty(t, upcoming)
	require.Len(t, past, 2)

	// Undated entries sink below dated ones and keep their stored
	// label — no derived "completed" without a time to judge by.
	assert.Equal(t, "dated", past[0].ID)
	assert.Equal(t, "no-time", past[1].ID)
	assert.Equal(t, StatusUpcoming, past[1].DisplayStatus)
}

func TestBuckets_StatusCaseInsensitive(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "mixed", Status: "Upcoming", DateTime: ts(2024, time.December, 15, 10, 0)},
		{ID: "caps", Status: "CANCELLED", DateTime: ts(2024, time.December, 16, 10, 0)},
	}

	upcoming, past := Buckets(all, now)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "mixed", upcoming[0].ID)
	require.Len(t, past, 1)
	assert.Equal(t, StatusCancelled, past[0].DisplayStatus)
}

func TestBuckets_TiesKeepInputOrder(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	same := ts(2024, time.December, 15, 10, 0)

	all := []models.Booking{
		{ID: "first", Status: "upcoming", DateTime: same},
		{ID: "second", Status: "upcoming", DateTime: same},
		{ID: "third", Status: "upcoming", DateTime: same},
	}

	upcoming, _ := Buckets(all, now)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "first", upcoming[0].ID)
	assert.Equal(t, "second", upcoming[1].ID)
	assert.Equal(t, "third", upcoming[2].ID)
}

func TestBuckets_PureOverSnapshot(t *testing.T) {
	now := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)

	all := []models.Booking{
		{ID: "1", Status: "upcoming", DateTime: ts(2024, time.November, 1, 9, 0)},
	}

	_, past1 := Buckets(all, now)
	_, past2 := Buckets(all, now)

	assert.Equal(t, past1, past2)
	assert.Equal(t, "upcoming", all[0].Status)
}
