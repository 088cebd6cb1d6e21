package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reservationRepository implements ReservationRepository interface
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create creates a new reservation
func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// GetByID gets a reservation by ID
func (r *reservationRepository) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetByCustomerID gets a customer's reservation
func (r *reservationRepository) GetByCustomerID(ctx context.Context, customerID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Update updates a reservation
func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

// Delete removes a reservation. Hard delete: the row must leave the
// idx_seat_slot unique index so the slot becomes bookable again.
func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Reservation{}, id).Error
}

// List lists all reservations
func (r *reservationRepository) List(ctx context.Context) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	if err := r.db.WithContext(ctx).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ReservedSeatIDs returns seat IDs already reserved for exactly (date, time)
func (r *reservationRepository) ReservedSeatIDs(ctx context.Context, date, time string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("date = ? AND time = ?", date, time).
		Pluck("seat_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ExistsForSlot checks whether a seat is already reserved for (date, time)
func (r *reservationRepository) ExistsForSlot(ctx context.Context, seatID uint, date, time string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("seat_id = ? AND date = ? AND time = ?", seatID, date, time).
		Count(&count).Error
	return count > 0, err
}

// ListByRestaurantAndDate lists a restaurant's reservations for a date
func (r *reservationRepository) ListByRestaurantAndDate(ctx context.Context, restaurantID uint, date string) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND date = ?", restaurantID, date).
		Order("time").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
