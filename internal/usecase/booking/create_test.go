package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
	"github.com/owiro17/smarttrimz/internal/httperr"
	"github.com/owiro17/smarttrimz/internal/models"
)

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBarberByID", mock.Anything, "barber-1").
		Return(&models.Barber{ID: "barber-1", Name: "Mike Johnson"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateBooking(repo, nil, time.UTC)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:   "user-1",
		BarberID: "barber-1",
		Date:     "2024-12-15",
		Time:     "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "assigned-by-store", b.ID)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "barber-1", b.BarberID)
	assert.Equal(t, "Mike Johnson", b.BarberName)
	assert.Equal(t, "Haircut", b.Service)
	assert.Equal(t, string(domain.StatusUpcoming), b.Status)

	require.NotNil(t, b.DateTime)
	assert.Equal(t, time.Date(2024, time.December, 15, 10, 0, 0, 0, time.UTC), *b.DateTime)

	repo.AssertExpectations(t)
}

func TestCreateBooking_CallerSuppliedService(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBarberByID", mock.Anything, "barber-1").
		Return(&models.Barber{ID: "barber-1", Name: "Mike Johnson"}, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateBooking(repo, nil, time.UTC)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:   "user-1",
		BarberID: "barber-1",
		Date:     "2024-12-15",
		Time:     "10:00",
		Service:  "Beard Trim",
	})

	require.NoError(t, err)
	assert.Equal(t, "Beard Trim", b.Service)
}

func TestCreateBooking_NotAuthenticated(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		BarberID: "barber-1",
		Date:     "2024-12-15",
		Time:     "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "not_authenticated"))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_MissingSelections(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	cases := []CreateBookingInput{
		{UserID: "u", Date: "2024-12-15", Time: "10:00"},      // no barber
		{UserID: "u", BarberID: "barber-1", Time: "10:00"},    // no date
		{UserID: "u", BarberID: "barber-1", Date: "2024-12-15"}, // no time
	}

	for _, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "missing_selection"))
	}

	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_RejectsDateWithoutYear(t *testing.T) {
	repo := new(MockRepository)
	uc := NewCreateBooking(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:   "user-1",
		BarberID: "barber-1",
		Date:     "Dec 15",
		Time:     "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateBooking_BarberNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBarberByID", mock.Anything, "ghost").
		Return(nil, errors.New("record not found"))

	uc := NewCreateBooking(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:   "user-1",
		BarberID: "ghost",
		Date:     "2024-12-15",
		Time:     "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_StoreFailureSurfaces(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetBarberByID", mock.Anything, "barber-1").
		Return(&models.Barber{ID: "barber-1", Name: "Mike Johnson"}, nil)
	storeErr := errors.New("connection reset")
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(storeErr)

	uc := NewCreateBooking(repo, nil, time.UTC)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:   "user-1",
		BarberID: "barber-1",
		Date:     "2024-12-15",
		Time:     "10:00",
	})

	assert.ErrorIs(t, err, storeErr)
}
