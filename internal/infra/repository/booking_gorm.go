package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/owiro17/smarttrimz/internal/domain/booking"
	"github.com/owiro17/smarttrimz/internal/models"
)

// ChangeNotifier is told after every committed booking write, keyed by
// the owning user, so live watch feeds can recompute their snapshots.
type ChangeNotifier interface {
	BookingsChanged(ctx context.Context, userID string)
}

type BookingGormRepository struct {
	db       *gorm.DB
	notifier ChangeNotifier
}

// notifier may be nil when no live feed is wired (tests, one-off tools).
func NewBookingGormRepository(db *gorm.DB, notifier ChangeNotifier) *BookingGormRepository {
	return &BookingGormRepository{db: db, notifier: notifier}
}

// --------------------------------------------------
// Barber catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Booking (create / read)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return err
	}
	r.notifyChanged(ctx, b.UserID)
	return nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsByUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

// UpdateBookingStatus writes the single status column. At-most-once
// cancellation relies on the database's row-level update, not on any
// client-side coordination.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) error {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "user_id").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.notifyChanged(ctx, b.UserID)
	return nil
}

func (r *BookingGormRepository) notifyChanged(ctx context.Context, userID string) {
	if r.notifier != nil {
		r.notifier.BookingsChanged(ctx, userID)
	}
}
