package handlers

import (
	"errors"

	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservationRequest represents reservation creation request body
type CreateReservationRequest struct {
	SeatID       uint   `json:"seat_id"`
	RestaurantID uint   `json:"restaurant_id"`
	CustomerID   uint   `json:"customer_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	GuestCount   int    `json:"guest_count"`
}

// UpdateReservationRequest represents partial reservation update request body
type UpdateReservationRequest struct {
	SeatID       *uint   `json:"seat_id"`
	RestaurantID *uint   `json:"restaurant_id"`
	CustomerID   *uint   `json:"customer_id"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	GuestCount   *int    `json:"guest_count"`
}

// Create books a seat for a slot
// @Summary Create reservation
// @Description Book a seat for a date and time, refuses an already taken slot
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateReservationRequest true "Reservation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reservation [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var req CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.SeatID == 0 || req.RestaurantID == 0 {
		return response.BadRequest(c, "Seat ID and restaurant ID are required")
	}
	if req.Date == "" || req.Time == "" {
		return response.BadRequest(c, "Date and time are required")
	}

	// A customer books for themselves, unless a staff caller names someone.
	if req.CustomerID == 0 {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		req.CustomerID = userID
	}

	input := &services.CreateReservationInput{
		SeatID:       req.SeatID,
		RestaurantID: req.RestaurantID,
		CustomerID:   req.CustomerID,
		Date:         req.Date,
		Time:         req.Time,
		GuestCount:   req.GuestCount,
	}

	reservation, err := h.reservationService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidGuestCount):
			return response.BadRequest(c, "Guest count must be between 1 and 100")
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "Restaurant not found")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "Customer not found")
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "Seat not found")
		case errors.Is(err, domain.ErrSeatRestaurantMismatch):
			return response.BadRequest(c, "Seat does not belong to this restaurant")
		case errors.Is(err, domain.ErrSeatTaken):
			return response.Conflict(c, "Seat is already reserved for this slot")
		default:
			return response.InternalServerError(c, "Failed to create reservation")
		}
	}

	return response.Created(c, "Reservation created successfully", fiber.Map{
		"reservation": reservation,
	})
}

// FindAll lists all reservations
// @Summary List reservations
// @Description List all reservations
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation [get]
func (h *ReservationHandler) FindAll(c *fiber.Ctx) error {
	reservations, err := h.reservationService.FindAll(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "No reservations found")
		default:
			return response.InternalServerError(c, "Failed to list reservations")
		}
	}

	return response.Success(c, "Reservations retrieved successfully", fiber.Map{
		"reservations": reservations,
	})
}

// GetOwn returns the caller's reservation
// @Summary Get own reservation
// @Description Get the authenticated customer's reservation
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation/my [get]
func (h *ReservationHandler) GetOwn(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	reservation, err := h.reservationService.GetOwn(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "You have no reservation")
		default:
			return response.InternalServerError(c, "Failed to get reservation")
		}
	}

	return response.Success(c, "Reservation retrieved successfully", fiber.Map{
		"reservation": reservation,
	})
}

// CheckIn marks a reservation as checked in
// @Summary Check in reservation
// @Description Mark a reservation as checked in, a second call fails
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation/activate/{id} [get]
func (h *ReservationHandler) CheckIn(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	message, err := h.reservationService.CheckIn(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			return response.BadRequest(c, "Reservation is already checked in")
		default:
			return response.InternalServerError(c, "Failed to check in reservation")
		}
	}

	return response.Success(c, message, nil)
}

// FindOne gets a reservation by ID
// @Summary Get reservation
// @Description Get a single reservation by ID
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation/{id} [get]
func (h *ReservationHandler) FindOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	reservation, err := h.reservationService.FindOne(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		default:
			return response.InternalServerError(c, "Failed to get reservation")
		}
	}

	return response.Success(c, "Reservation retrieved successfully", fiber.Map{
		"reservation": reservation,
	})
}

// Update applies a partial update to a reservation
// @Summary Update reservation
// @Description Partially update a reservation, references are re-validated
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param body body UpdateReservationRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation/{id} [patch]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	var req UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateReservationInput{
		SeatID:       req.SeatID,
		RestaurantID: req.RestaurantID,
		CustomerID:   req.CustomerID,
		Date:         req.Date,
		Time:         req.Time,
		GuestCount:   req.GuestCount,
	}

	reservation, err := h.reservationService.Update(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrInvalidGuestCount):
			return response.BadRequest(c, "Guest count must be between 1 and 100")
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.NotFound(c, "Restaurant not found")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "Customer not found")
		case errors.Is(err, domain.ErrSeatNotFound):
			return response.NotFound(c, "Seat not found")
		case errors.Is(err, domain.ErrSeatRestaurantMismatch):
			return response.BadRequest(c, "Seat does not belong to this restaurant")
		case errors.Is(err, domain.ErrSeatTaken):
			return response.Conflict(c, "Seat is already reserved for this slot")
		default:
			return response.InternalServerError(c, "Failed to update reservation")
		}
	}

	return response.Success(c, "Reservation updated successfully", fiber.Map{
		"reservation": reservation,
	})
}

// Remove deletes a reservation
// @Summary Delete reservation
// @Description Delete a reservation (admin only)
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reservation/{id} [delete]
func (h *ReservationHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid reservation ID")
	}

	if err := h.reservationService.Remove(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		default:
			return response.InternalServerError(c, "Failed to delete reservation")
		}
	}

	return response.Success(c, "Reservation deleted successfully", nil)
}
