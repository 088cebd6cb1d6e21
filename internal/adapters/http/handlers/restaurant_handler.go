package handlers

import (
	"errors"
	"strings"

	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles restaurant endpoints
type RestaurantHandler struct {
	restaurantService *services.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// CreateRestaurantRequest represents restaurant creation request body
type CreateRestaurantRequest struct {
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

// UpdateRestaurantRequest represents partial restaurant update request body
type UpdateRestaurantRequest struct {
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

// Create creates a restaurant
// @Summary Create restaurant
// @Description Create a restaurant owned by an existing manager
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRestaurantRequest true "Restaurant data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /restaurant [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var req CreateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.OwnerID == 0 {
		return response.BadRequest(c, "Owner ID is required")
	}

	input := &services.CreateRestaurantInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		OwnerID:     req.OwnerID,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Rating:      req.Rating,
		Social:      req.Social,
		Contact:     req.Contact,
		Location:    req.Location,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	}

	restaurant, err := h.restaurantService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating):
			return response.BadRequest(c, "Rating must be between 1 and 5")
		case errors.Is(err, domain.ErrManagerNotFound):
			return response.BadRequest(c, "Owner must be an existing manager")
		case errors.Is(err, domain.ErrRestaurantExists):
			return response.Conflict(c, "Restaurant with this name already exists")
		default:
			return response.InternalServerError(c, "Failed to create restaurant")
		}
	}

	return response.Created(c, "Restaurant created successfully", fiber.Map{
		"restaurant": restaurant,
	})
}

// FindAll lists all restaurants
// @Summary List restaurants
// @Description List all restaurants
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restaurant [get]
func (h *RestaurantHandler) FindAll(c *fiber.Ctx) error {
	restaurants, err := h.restaurantService.FindAll(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "No restaurants found")
		default:
			return response.InternalServerError(c, "Failed to list restaurants")
		}
	}

	return response.Success(c, "Restaurants retrieved successfully", fiber.Map{
		"restaurants": restaurants,
	})
}

// FindMine lists the caller's own restaurants
// @Summary List own restaurants
// @Description List the restaurants owned by the authenticated manager
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restaurant/my [get]
func (h *RestaurantHandler) FindMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	restaurants, err := h.restaurantService.FindMine(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "You have no restaurants")
		default:
			return response.InternalServerError(c, "Failed to list restaurants")
		}
	}

	return response.Success(c, "Restaurants retrieved successfully", fiber.Map{
		"restaurants": restaurants,
	})
}

// FindOne gets a restaurant by ID
// @Summary Get restaurant
// @Description Get a single restaurant by ID
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restaurant/{id} [get]
func (h *RestaurantHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid restaurant ID")
	}

	restaurant, err := h.restaurantService.FindOne(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to get restaurant")
		}
	}

	return response.Success(c, "Restaurant retrieved successfully", fiber.Map{
		"restaurant": restaurant,
	})
}

// Update applies a partial update to a restaurant
// @Summary Update restaurant
// @Description Partially update a restaurant, a changed owner must be a manager
// @Tags Restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param body body UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restaurant/{id} [patch]
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid restaurant ID")
	}

	var req UpdateRestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateRestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Rating:      req.Rating,
		Social:      req.Social,
		Contact:     req.Contact,
		Location:    req.Location,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	}

	restaurant, err := h.restaurantService.Update(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "Restaurant not found")
		case errors.Is(err, domain.ErrInvalidRating):
			return response.BadRequest(c, "Rating must be between 1 and 5")
		case errors.Is(err, domain.ErrManagerNotFound):
			return response.BadRequest(c, "Owner must be an existing manager")
		default:
			return response.InternalServerError(c, "Failed to update restaurant")
		}
	}

	return response.Success(c, "Restaurant updated successfully", fiber.Map{
		"restaurant": restaurant,
	})
}

// Remove deletes a restaurant
// @Summary Delete restaurant
// @Description Delete a restaurant (admin only)
// @Tags Restaurants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restaurant/{id} [delete]
func (h *RestaurantHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid restaurant ID")
	}

	if err := h.restaurantService.Remove(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to delete restaurant")
		}
	}

	return response.Success(c, "Restaurant deleted successfully", nil)
}
