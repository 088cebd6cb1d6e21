package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// restaurantRepository implements RestaurantRepository interface
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// GetByID gets a restaurant by ID
func (r *restaurantRepository) GetByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetByName gets a restaurant by its unique name
func (r *restaurantRepository) GetByName(ctx context.Context, name string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Update updates a restaurant
func (r *restaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// Delete soft deletes a restaurant
func (r *restaurantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Restaurant{}, id).Error
}

// List lists all restaurants
func (r *restaurantRepository) List(ctx context.Context) ([]*models.Restaurant, error) {
	var restaurants []*models.Restaurant
	if err := r.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// ListByOwnerID lists restaurants owned by a manager
func (r *restaurantRepository) ListByOwnerID(ctx context.Context, ownerID uint) ([]*models.Restaurant, error) {
	var restaurants []*models.Restaurant
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
