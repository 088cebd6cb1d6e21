package services

import (
	"context"
	"errors"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"gorm.io/gorm"
)

// MenuService handles menu and menu image business logic
type MenuService struct {
	menuRepo       repositories.MenuRepository
	menuImageRepo  repositories.MenuImageRepository
	restaurantRepo repositories.RestaurantRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	menuRepo repositories.MenuRepository,
	menuImageRepo repositories.MenuImageRepository,
	restaurantRepo repositories.RestaurantRepository,
) *MenuService {
	return &MenuService{
		menuRepo:       menuRepo,
		menuImageRepo:  menuImageRepo,
		restaurantRepo: restaurantRepo,
	}
}

// CreateMenuInput represents menu creation input
type CreateMenuInput struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
}

// UpdateMenuInput represents partial menu update input
type UpdateMenuInput struct {
	RestaurantID *uint   `json:"restaurant_id"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
}

// CreateMenuImageInput represents menu image creation input
type CreateMenuImageInput struct {
	MenuID uint   `json:"menu_id"`
	URL    string `json:"url"`
}

// UpdateMenuImageInput represents partial menu image update input
type UpdateMenuImageInput struct {
	MenuID *uint   `json:"menu_id"`
	URL    *string `json:"url"`
}

// CreateMenu creates a menu attached to an existing restaurant
func (s *MenuService) CreateMenu(ctx context.Context, input *CreateMenuInput) (*models.Menu, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID); err != nil {
		return nil, domain.ErrRestaurantNotFound
	}

	menu := &models.Menu{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// FindAllMenus lists all menus
func (s *MenuService) FindAllMenus(ctx context.Context) ([]*models.Menu, error) {
	menus, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, domain.ErrMenuNotFound
	}
	return menus, nil
}

// FindMenu gets a menu by ID
func (s *MenuService) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

// UpdateMenu applies a partial update; a changed restaurant must exist
func (s *MenuService) UpdateMenu(ctx context.Context, id uint, input *UpdateMenuInput) (*models.Menu, error) {
	menu, err := s.FindMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RestaurantID != nil && *input.RestaurantID != menu.RestaurantID {
		if _, err := s.restaurantRepo.GetByID(ctx, *input.RestaurantID); err != nil {
			return nil, domain.ErrRestaurantNotFound
		}
		menu.RestaurantID = *input.RestaurantID
	}
	if input.Name != nil {
		menu.Name = *input.Name
	}
	if input.Description != nil {
		menu.Description = *input.Description
	}
	if input.Price != nil {
		menu.Price = *input.Price
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// RemoveMenu deletes a menu
func (s *MenuService) RemoveMenu(ctx context.Context, id uint) error {
	if _, err := s.FindMenu(ctx, id); err != nil {
		return err
	}
	return s.menuRepo.Delete(ctx, id)
}

// CreateImage creates an image attached to an existing menu
func (s *MenuService) CreateImage(ctx context.Context, input *CreateMenuImageInput) (*models.MenuImage, error) {
	if _, err := s.FindMenu(ctx, input.MenuID); err != nil {
		return nil, err
	}

	image := &models.MenuImage{
		MenuID: input.MenuID,
		URL:    input.URL,
	}

	if err := s.menuImageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// FindAllImages lists all menu images
func (s *MenuService) FindAllImages(ctx context.Context) ([]*models.MenuImage, error) {
	images, err := s.menuImageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domain.ErrMenuImageNotFound
	}
	return images, nil
}

// FindImage gets a menu image by ID
func (s *MenuService) FindImage(ctx context.Context, id uint) (*models.MenuImage, error) {
	image, err := s.menuImageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuImageNotFound
		}
		return nil, err
	}
	return image, nil
}

// UpdateImage applies a partial update; a changed menu must exist
func (s *MenuService) UpdateImage(ctx context.Context, id uint, input *UpdateMenuImageInput) (*models.MenuImage, error) {
	image, err := s.FindImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.MenuID != nil && *input.MenuID != image.MenuID {
		if _, err := s.FindMenu(ctx, *input.MenuID); err != nil {
			return nil, err
		}
		image.MenuID = *input.MenuID
	}
	if input.URL != nil {
		image.URL = *input.URL
	}

	if err := s.menuImageRepo.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// RemoveImage deletes a menu image
func (s *MenuService) RemoveImage(ctx context.Context, id uint) error {
	if _, err := s.FindImage(ctx, id); err != nil {
		return err
	}
	return s.menuImageRepo.Delete(ctx, id)
}
