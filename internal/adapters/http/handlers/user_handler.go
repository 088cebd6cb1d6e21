package handlers

import (
	"errors"
	"strings"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles account management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateAdminRequest represents admin creation request body
type CreateAdminRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// UpdateUserRequest represents partial user update request body
type UpdateUserRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Password    *string `json:"password"`
}

// CreateAdmin creates an active admin account
// @Summary Create admin
// @Description Create an active admin account (creator only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAdminRequest true "Admin data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user/admin [post]
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	var req CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FullName == "" {
		return response.BadRequest(c, "Full name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.PhoneNumber == "" {
		return response.BadRequest(c, "Phone number is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.CreateUserInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    req.Password,
	}

	user, err := h.userService.CreateAdmin(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email or phone number already registered")
		default:
			return response.InternalServerError(c, "Failed to create admin")
		}
	}

	return response.Created(c, "Admin created successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// FindAll lists users, optionally filtered by role
// @Summary List users
// @Description List all users, optionally filtered by role query param
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter (CUSTOMER, MANAGER, ADMIN, CREATOR)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /user [get]
func (h *UserHandler) FindAll(c *fiber.Ctx) error {
	role := strings.ToUpper(strings.TrimSpace(c.Query("role")))

	users, err := h.userService.FindAll(c.Context(), role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role filter")
		default:
			return response.InternalServerError(c, "Failed to list users")
		}
	}

	result := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, user.ToResponse())
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": result,
	})
}

// FindOne gets a user by ID
// @Summary Get user
// @Description Get a single user by ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{id} [get]
func (h *UserHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.FindOne(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to get user")
		}
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// Update applies a partial update to a user
// @Summary Update user
// @Description Partially update a user account (creator only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Password != nil && len(*req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.UpdateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}

	user, err := h.userService.Update(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// Remove deletes a user account
// @Summary Delete user
// @Description Delete a user account (creator only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user/{id} [delete]
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.Remove(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}
