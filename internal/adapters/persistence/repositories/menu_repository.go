package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// menuRepository implements MenuRepository interface
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) Update(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Menu{}, id).Error
}

func (r *menuRepository) List(ctx context.Context) ([]*models.Menu, error) {
	var menus []*models.Menu
	if err := r.db.WithContext(ctx).Preload("Images").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// menuImageRepository implements MenuImageRepository interface
type menuImageRepository struct {
	db *gorm.DB
}

// NewMenuImageRepository creates a new menu image repository
func NewMenuImageRepository(db *gorm.DB) MenuImageRepository {
	return &menuImageRepository{db: db}
}

func (r *menuImageRepository) Create(ctx context.Context, image *models.MenuImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *menuImageRepository) GetByID(ctx context.Context, id uint) (*models.MenuImage, error) {
	var image models.MenuImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *menuImageRepository) Update(ctx context.Context, image *models.MenuImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *menuImageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MenuImage{}, id).Error
}

func (r *menuImageRepository) List(ctx context.Context) ([]*models.MenuImage, error) {
	var images []*models.MenuImage
	if err := r.db.WithContext(ctx).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
