package handlers

import (
	"errors"

	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SeatHandler handles seat endpoints
type SeatHandler struct {
	seatService *services.SeatService
}

// NewSeatHandler creates a new seat handler
func NewSeatHandler(seatService *services.SeatService) *SeatHandler {
	return &SeatHandler{seatService: seatService}
}

// CreateSeatRequest represents seat creation request body
type CreateSeatRequest struct {
	RestaurantID uint   `json:"restaurant_id"`
	Capacity     int    `json:"capacity"`
	Price        string `json:"price"`
	IsVip        bool   `json:"is_vip"`
}

// UpdateSeatRequest represents partial seat update request body
type UpdateSeatRequest struct {
	RestaurantID *uint   `json:"restaurant_id"`
	Capacity     *int    `json:"capacity"`
	Price        *string `json:"price"`
	IsVip        *bool   `json:"is_vip"`
}

// Create creates a seat
// @Summary Create seat
// @Description Create a seat attached to an existing restaurant
// @Tags Seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSeatRequest true "Seat data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /seat [post]
func (h *SeatHandler) Create(c *fiber.Ctx) error {
	var req CreateSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.RestaurantID == 0 {
		return response.BadRequest(c, "Restaurant ID is required")
	}
	if req.Capacity < 1 {
		return response.BadRequest(c, "Capacity must be at least 1")
	}

	input := &services.CreateSeatInput{
		RestaurantID: req.RestaurantID,
		Capacity:     req.Capacity,
		Price:        req.Price,
		IsVip:        req.IsVip,
	}

	seat, err := h.seatService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.BadRequest(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to create seat")
		}
	}

	return response.Created(c, "Seat created successfully", fiber.Map{
		"seat": seat,
	})
}

// FindAll lists all seats
// @Summary List seats
// @Description List all seats
// @Tags Seats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seat [get]
func (h *SeatHandler) FindAll(c *fiber.Ctx) error {
	seats, err := h.seatService.FindAll(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "No seats found")
		default:
			return response.InternalServerError(c, "Failed to list seats")
		}
	}

	return response.Success(c, "Seats retrieved successfully", fiber.Map{
		"seats": seats,
	})
}

// FreeSeats lists a restaurant's free seats for a slot
// @Summary List free seats
// @Description List the restaurant's seats not reserved for the given date and time
// @Tags Seats
// @Produce json
// @Security BearerAuth
// @Param restaurantId path int true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /seat/free/list/{restaurantId} [get]
func (h *SeatHandler) FreeSeats(c *fiber.Ctx) error {
	restaurantID, err := c.ParamsInt("restaurantId")
	if err != nil || restaurantID < 1 {
		return response.BadRequest(c, "Invalid restaurant ID")
	}

	date := c.Query("date")
	slot := c.Query("time")
	if date == "" || slot == "" {
		return response.BadRequest(c, "date and time query parameters are required")
	}

	seats, err := h.seatService.FreeSeats(c.Context(), uint(restaurantID), date, slot)
	if err != nil {
		return response.InternalServerError(c, "Failed to list free seats")
	}

	return response.Success(c, "Free seats retrieved successfully", fiber.Map{
		"seats": seats,
	})
}

// FindOne gets a seat by ID
// @Summary Get seat
// @Description Get a single seat by ID
// @Tags Seats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seat ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seat/{id} [get]
func (h *SeatHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid seat ID")
	}

	seat, err := h.seatService.FindOne(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "Seat not found")
		default:
			return response.InternalServerError(c, "Failed to get seat")
		}
	}

	return response.Success(c, "Seat retrieved successfully", fiber.Map{
		"seat": seat,
	})
}

// Update applies a partial update to a seat
// @Summary Update seat
// @Description Partially update a seat, a changed restaurant must exist
// @Tags Seats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seat ID"
// @Param body body UpdateSeatRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seat/{id} [patch]
func (h *SeatHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid seat ID")
	}

	var req UpdateSeatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Capacity != nil && *req.Capacity < 1 {
		return response.BadRequest(c, "Capacity must be at least 1")
	}

	input := &services.UpdateSeatInput{
		RestaurantID: req.RestaurantID,
		Capacity:     req.Capacity,
		Price:        req.Price,
		IsVip:        req.IsVip,
	}

	seat, err := h.seatService.Update(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "Seat not found")
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.BadRequest(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to update seat")
		}
	}

	return response.Success(c, "Seat updated successfully", fiber.Map{
		"seat": seat,
	})
}

// Remove deletes a seat
// @Summary Delete seat
// @Description Delete a seat
// @Tags Seats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seat ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seat/{id} [delete]
func (h *SeatHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid seat ID")
	}

	if err := h.seatService.Remove(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "Seat not found")
		default:
			return response.InternalServerError(c, "Failed to delete seat")
		}
	}

	return response.Success(c, "Seat deleted successfully", nil)
}
