package services

import (
	"context"
	"errors"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"gorm.io/gorm"
)

// SeatService handles seat business logic and availability queries
type SeatService struct {
	seatRepo        repositories.SeatRepository
	reservationRepo repositories.ReservationRepository
	restaurantRepo  repositories.RestaurantRepository
}

// NewSeatService creates a new seat service
func NewSeatService(
	seatRepo repositories.SeatRepository,
	reservationRepo repositories.ReservationRepository,
	restaurantRepo repositories.RestaurantRepository,
) *SeatService {
	return &SeatService{
		seatRepo:        seatRepo,
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
	}
}

// CreateSeatInput represents seat creation input
type CreateSeatInput struct {
	RestaurantID uint   `json:"restaurant_id"`
	Capacity     int    `json:"capacity"`
	Price        string `json:"price"`
	IsVip        bool   `json:"is_vip"`
}

// UpdateSeatInput represents partial seat update input
type UpdateSeatInput struct {
	RestaurantID *uint   `json:"restaurant_id"`
	Capacity     *int    `json:"capacity"`
	Price        *string `json:"price"`
	IsVip        *bool   `json:"is_vip"`
}

// Create creates a seat attached to an existing restaurant
func (s *SeatService) Create(ctx context.Context, input *CreateSeatInput) (*models.Seat, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID); err != nil {
		return nil, domain.ErrRestaurantNotFound
	}

	seat := &models.Seat{
		RestaurantID: input.RestaurantID,
		Capacity:     input.Capacity,
		Price:        input.Price,
		IsVip:        input.IsVip,
	}

	if err := s.seatRepo.Create(ctx, seat); err != nil {
		return nil, err
	}
	return seat, nil
}

// FindAll lists all seats
func (s *SeatService) FindAll(ctx context.Context) ([]*models.Seat, error) {
	seats, err := s.seatRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, domain.ErrSeatNotFound
	}
	return seats, nil
}

// FindOne gets a seat by ID
func (s *SeatService) FindOne(ctx context.Context, id uint) (*models.Seat, error) {
	seat, err := s.seatRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSeatNotFound
		}
		return nil, err
	}
	return seat, nil
}

// Update applies a partial update; a changed restaurant must exist
func (s *SeatService) Update(ctx context.Context, id uint, input *UpdateSeatInput) (*models.Seat, error) {
	seat, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RestaurantID != nil && *input.RestaurantID != seat.RestaurantID {
		if _, err := s.restaurantRepo.GetByID(ctx, *input.RestaurantID); err != nil {
			return nil, domain.ErrRestaurantNotFound
		}
		seat.RestaurantID = *input.RestaurantID
	}
	if input.Capacity != nil {
		seat.Capacity = *input.Capacity
	}
	if input.Price != nil {
		seat.Price = *input.Price
	}
	if input.IsVip != nil {
		seat.IsVip = *input.IsVip
	}

	if err := s.seatRepo.Update(ctx, seat); err != nil {
		return nil, err
	}
	return seat, nil
}

// Remove deletes a seat
func (s *SeatService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	return s.seatRepo.Delete(ctx, id)
}

// FreeSeats computes the restaurant's seats not reserved for (date, time):
// freeSeats = seatsOf(restaurantID) − reservedSeatIDs(date, time).
// The two reads are sequential and non-transactional; a reservation created
// between them can make the result stale.
func (s *SeatService) FreeSeats(ctx context.Context, restaurantID uint, date, time string) ([]*models.Seat, error) {
	reservedIDs, err := s.reservationRepo.ReservedSeatIDs(ctx, date, time)
	if err != nil {
		return nil, err
	}

	return s.seatRepo.ListByRestaurantExcluding(ctx, restaurantID, reservedIDs)
}
