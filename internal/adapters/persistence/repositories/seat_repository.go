package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// seatRepository implements SeatRepository interface
type seatRepository struct {
	db *gorm.DB
}

// NewSeatRepository creates a new seat repository
func NewSeatRepository(db *gorm.DB) SeatRepository {
	return &seatRepository{db: db}
}

// Create creates a new seat
func (r *seatRepository) Create(ctx context.Context, seat *models.Seat) error {
	return r.db.WithContext(ctx).Create(seat).Error
}

// GetByID gets a seat by ID
func (r *seatRepository) GetByID(ctx context.Context, id uint) (*models.Seat, error) {
	var seat models.Seat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

// Update updates a seat
func (r *seatRepository) Update(ctx context.Context, seat *models.Seat) error {
	return r.db.WithContext(ctx).Save(seat).Error
}

// Delete deletes a seat
func (r *seatRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Seat{}, id).Error
}

// List lists all seats
func (r *seatRepository) List(ctx context.Context) ([]*models.Seat, error) {
	var seats []*models.Seat
	if err := r.db.WithContext(ctx).Find(&seats).Error; err != nil {
		return nil, err
	}
	return seats, nil
}

// ListByRestaurantExcluding lists a restaurant's seats whose IDs are not in excludeIDs
func (r *seatRepository) ListByRestaurantExcluding(ctx context.Context, restaurantID uint, excludeIDs []uint) ([]*models.Seat, error) {
	var seats []*models.Seat
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if err := q.Find(&seats).Error; err != nil {
		return nil, err
	}
	return seats, nil
}
