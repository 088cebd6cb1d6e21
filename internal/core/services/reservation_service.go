package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"gorm.io/gorm"
)

// ReservationService handles reservation consistency logic
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	restaurantRepo  repositories.RestaurantRepository
	seatRepo        repositories.SeatRepository
	userRepo        repositories.UserRepository
	mailer          Mailer
}

// NewReservationService creates a new reservation service
func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	restaurantRepo repositories.RestaurantRepository,
	seatRepo repositories.SeatRepository,
	userRepo repositories.UserRepository,
	mailer Mailer,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		seatRepo:        seatRepo,
		userRepo:        userRepo,
		mailer:          mailer,
	}
}

// CreateReservationInput represents reservation creation input
type CreateReservationInput struct {
	SeatID       uint   `json:"seat_id"`
	RestaurantID uint   `json:"restaurant_id"`
	CustomerID   uint   `json:"customer_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	GuestCount   int    `json:"guest_count"`
}

// UpdateReservationInput represents partial reservation update input
type UpdateReservationInput struct {
	SeatID       *uint   `json:"seat_id"`
	RestaurantID *uint   `json:"restaurant_id"`
	CustomerID   *uint   `json:"customer_id"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	GuestCount   *int    `json:"guest_count"`
}

// Create validates restaurant, customer and seat together, refuses a taken
// slot, persists the reservation and notifies the owning manager.
func (s *ReservationService) Create(ctx context.Context, input *CreateReservationInput) (*models.Reservation, error) {
	if input.GuestCount < 1 || input.GuestCount > 100 {
		return nil, domain.ErrInvalidGuestCount
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, domain.ErrRestaurantNotFound
	}

	if _, err := s.userRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, domain.ErrUserNotFound
	}

	seat, err := s.seatRepo.GetByID(ctx, input.SeatID)
	if err != nil {
		return nil, domain.ErrSeatNotFound
	}

	if seat.RestaurantID != input.RestaurantID {
		return nil, domain.ErrSeatRestaurantMismatch
	}

	// The unique index on (seat_id, date, time) backs this check, so a
	// concurrent create losing the race still fails at the insert.
	taken, err := s.reservationRepo.ExistsForSlot(ctx, input.SeatID, input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSeatTaken
	}

	reservation := &models.Reservation{
		SeatID:       input.SeatID,
		RestaurantID: input.RestaurantID,
		CustomerID:   input.CustomerID,
		Date:         input.Date,
		Time:         input.Time,
		GuestCount:   input.GuestCount,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.notifyManager(ctx, restaurant, reservation)

	return reservation, nil
}

// notifyManager sends a best-effort approval notice to the restaurant owner
func (s *ReservationService) notifyManager(ctx context.Context, restaurant *models.Restaurant, reservation *models.Reservation) {
	manager, err := s.userRepo.GetByID(ctx, restaurant.OwnerID)
	if err != nil {
		log.Printf("⚠️ Reservation %d: owner %d not found: %v", reservation.ID, restaurant.OwnerID, err)
		return
	}

	summary := ReservationSummary{
		ID:      reservation.ID,
		Date:    reservation.Date,
		Details: fmt.Sprintf("%s - %d guests", reservation.Time, reservation.GuestCount),
	}
	if err := s.mailer.NotifyManagerReservationPending(manager, summary); err != nil {
		log.Printf("⚠️ Failed to notify manager %s about reservation %d: %v", manager.Email, reservation.ID, err)
	}
}

// FindAll lists all reservations
func (s *ReservationService) FindAll(ctx context.Context) ([]*models.Reservation, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, domain.ErrReservationNotFound
	}
	return reservations, nil
}

// FindOne gets a reservation by ID
func (s *ReservationService) FindOne(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

// Update re-validates any changed reference and the effective seat/restaurant
// pairing, exactly as on create.
func (s *ReservationService) Update(ctx context.Context, id uint, input *UpdateReservationInput) (*models.Reservation, error) {
	reservation, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	prevSeatID, prevDate, prevTime := reservation.SeatID, reservation.Date, reservation.Time

	if input.GuestCount != nil {
		if *input.GuestCount < 1 || *input.GuestCount > 100 {
			return nil, domain.ErrInvalidGuestCount
		}
		reservation.GuestCount = *input.GuestCount
	}

	if input.RestaurantID != nil && *input.RestaurantID != reservation.RestaurantID {
		if _, err := s.restaurantRepo.GetByID(ctx, *input.RestaurantID); err != nil {
			return nil, domain.ErrRestaurantNotFound
		}
		reservation.RestaurantID = *input.RestaurantID
	}

	if input.CustomerID != nil && *input.CustomerID != reservation.CustomerID {
		if _, err := s.userRepo.GetByID(ctx, *input.CustomerID); err != nil {
			return nil, domain.ErrUserNotFound
		}
		reservation.CustomerID = *input.CustomerID
	}

	if input.SeatID != nil {
		reservation.SeatID = *input.SeatID
	}
	if input.Date != nil {
		reservation.Date = *input.Date
	}
	if input.Time != nil {
		reservation.Time = *input.Time
	}

	// The seat must belong to the reservation's restaurant after the merge,
	// whichever side of the pair changed.
	seat, err := s.seatRepo.GetByID(ctx, reservation.SeatID)
	if err != nil {
		return nil, domain.ErrSeatNotFound
	}
	if seat.RestaurantID != reservation.RestaurantID {
		return nil, domain.ErrSeatRestaurantMismatch
	}

	// A moved reservation lands on a new slot: re-check it exactly as on
	// create, or the insert-time unique index fires instead of a clean 409.
	if reservation.SeatID != prevSeatID || reservation.Date != prevDate || reservation.Time != prevTime {
		taken, err := s.reservationRepo.ExistsForSlot(ctx, reservation.SeatID, reservation.Date, reservation.Time)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSeatTaken
		}
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Remove deletes a reservation
func (s *ReservationService) Remove(ctx context.Context, id uint) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	return s.reservationRepo.Delete(ctx, id)
}

// CheckIn flips the checked-in flag. One-way: a checked-in reservation
// can never go back to booked.
func (s *ReservationService) CheckIn(ctx context.Context, id uint) (string, error) {
	reservation, err := s.FindOne(ctx, id)
	if err != nil {
		return "", err
	}
	if reservation.IsChecked {
		return "", domain.ErrAlreadyCheckedIn
	}

	reservation.IsChecked = true
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return "", err
	}

	return "Reservation checked in successfully", nil
}

// GetOwn returns the caller's reservation
func (s *ReservationService) GetOwn(ctx context.Context, customerID uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}
