package services

import (
	"context"
	"errors"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"gorm.io/gorm"
)

// RestaurantService handles restaurant business logic
type RestaurantService struct {
	restaurantRepo repositories.RestaurantRepository
	userRepo       repositories.UserRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurantRepo repositories.RestaurantRepository, userRepo repositories.UserRepository) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
	}
}

// CreateRestaurantInput represents restaurant creation input
type CreateRestaurantInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
	Rating      int    `json:"rating"`
	Social      string `json:"social"`
	Contact     string `json:"contact"`
	Location    string `json:"location"`
	Longitude   string `json:"long"`
	Latitude    string `json:"lat"`
}

// UpdateRestaurantInput represents partial restaurant update input
type UpdateRestaurantInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OwnerID     *uint   `json:"owner_id"`
	OpenTime    *string `json:"open_time"`
	CloseTime   *string `json:"close_time"`
	Rating      *int    `json:"rating"`
	Social      *string `json:"social"`
	Contact     *string `json:"contact"`
	Location    *string `json:"location"`
	Longitude   *string `json:"long"`
	Latitude    *string `json:"lat"`
}

// validRating accepts 1..5; zero means not yet rated
func validRating(rating int) bool {
	return rating == 0 || (rating >= 1 && rating <= 5)
}

// Create creates a restaurant owned by an existing manager
func (s *RestaurantService) Create(ctx context.Context, input *CreateRestaurantInput) (*models.Restaurant, error) {
	if !validRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.userRepo.GetManager(ctx, input.OwnerID); err != nil {
		return nil, domain.ErrManagerNotFound
	}

	if _, err := s.restaurantRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domain.ErrRestaurantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		OpenTime:    input.OpenTime,
		CloseTime:   input.CloseTime,
		Rating:      input.Rating,
		Social:      input.Social,
		Contact:     input.Contact,
		Location:    input.Location,
		Longitude:   input.Longitude,
		Latitude:    input.Latitude,
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// FindAll lists all restaurants
func (s *RestaurantService) FindAll(ctx context.Context) ([]*models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	return restaurants, nil
}

// FindMine lists the restaurants owned by the given manager
func (s *RestaurantService) FindMine(ctx context.Context, ownerID uint) ([]*models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}
	return restaurants, nil
}

// FindOne gets a restaurant by ID
func (s *RestaurantService) FindOne(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// Update applies a partial update; a changed owner must be a manager
func (s *RestaurantService) Update(ctx context.Context, id uint, input *UpdateRestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OwnerID != nil && *input.OwnerID != restaurant.OwnerID {
		if _, err := s.userRepo.GetManager(ctx, *input.OwnerID); err != nil {
			return nil, domain.ErrManagerNotFound
		}
		restaurant.OwnerID = *input.OwnerID
	}
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.OpenTime != nil {
		restaurant.OpenTime = *input.OpenTime
	}
	if input.CloseTime != nil {
		restaurant.CloseTime = *input.CloseTime
	}
	if input.Rating != nil {
		if !validRating(*input.Rating) {
			return nil, domain.ErrInvalidRating
		}
		restaurant.Rating = *input.Rating
	}
	if input.Social != nil {
		restaurant.Social = *input.Social
	}
	if input.Contact != nil {
		restaurant.Contact = *input.Contact
	}
	if input.Location != nil {
		restaurant.Location = *input.Location
	}
	if input.Longitude != nil {
		restaurant.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		restaurant.Latitude = *input.Latitude
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Remove deletes a restaurant
func (s *RestaurantService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	return s.restaurantRepo.Delete(ctx, id)
}
