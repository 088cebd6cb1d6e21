package services

import (
	"context"
	"errors"
	"log"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles account management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents account creation input
type CreateUserInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// UpdateUserInput represents partial account update input
type UpdateUserInput struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
}

// CreateAdmin creates an active ADMIN account (CREATOR only operation)
func (s *UserService) CreateAdmin(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmailOrPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    hashedPassword,
		Role:        domain.RoleAdmin,
		IsActive:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin created: %s", user.Email)
	return user, nil
}

// FindAll lists users, optionally filtered by role
func (s *UserService) FindAll(ctx context.Context, role string) ([]*models.User, error) {
	if role != "" && !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.userRepo.List(ctx, role)
}

// FindOne gets a user by ID
func (s *UserService) FindOne(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial update; a changed password is re-hashed
func (s *UserService) Update(ctx context.Context, id uint, input *UpdateUserInput) (*models.User, error) {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Password != nil {
		hashedPassword, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove deletes a user account
func (s *UserService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
