package repositories

import (
	"context"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByActivationLink gets a user by activation link
func (r *userRepository) GetByActivationLink(ctx context.Context, link string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("activation_link = ?", link).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetLink gets a user by password reset link
func (r *userRepository) GetByResetLink(ctx context.Context, link string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("reset_link = ? AND reset_link <> ''", link).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetManager gets a user by ID constrained to the MANAGER role
func (r *userRepository) GetManager(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, domain.RoleManager).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete soft deletes a user
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// List lists users, optionally filtered by role
func (r *userRepository) List(ctx context.Context, role string) ([]*models.User, error) {
	var users []*models.User
	q := r.db.WithContext(ctx)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByEmailOrPhone checks whether email or phone is already registered
func (r *userRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR phone_number = ?", email, phone).
		Count(&count).Error
	return count > 0, err
}
