package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService mails each manager a daily digest of the day's
// reservations for their restaurants. Delivery is best-effort.
type ReminderService struct {
	restaurantRepo  repositories.RestaurantRepository
	reservationRepo repositories.ReservationRepository
	userRepo        repositories.UserRepository
	mailer          Mailer
	cron            *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	restaurantRepo repositories.RestaurantRepository,
	reservationRepo repositories.ReservationRepository,
	userRepo repositories.UserRepository,
	mailer Mailer,
) *ReminderService {
	return &ReminderService{
		restaurantRepo:  restaurantRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		mailer:          mailer,
		cron:            cron.New(),
	}
}

// Start schedules the daily digest at 08:30
func (s *ReminderService) Start() {
	s.cron.AddFunc("30 8 * * *", s.sendDailyDigests)
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily digest at 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

// sendDailyDigests mails today's reservations to each restaurant owner
func (s *ReminderService) sendDailyDigests() {
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	restaurants, err := s.restaurantRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Reminder digest query error: %v", err)
		return
	}

	for _, restaurant := range restaurants {
		reservations, err := s.reservationRepo.ListByRestaurantAndDate(ctx, restaurant.ID, today)
		if err != nil {
			log.Printf("❌ Reminder digest error for restaurant %d: %v", restaurant.ID, err)
			continue
		}
		if len(reservations) == 0 {
			continue
		}

		manager, err := s.userRepo.GetByID(ctx, restaurant.OwnerID)
		if err != nil {
			log.Printf("⚠️ Reminder digest: owner %d not found: %v", restaurant.OwnerID, err)
			continue
		}

		for _, reservation := range reservations {
			summary := ReservationSummary{
				ID:      reservation.ID,
				Date:    reservation.Date,
				Details: fmt.Sprintf("%s - %d guests", reservation.Time, reservation.GuestCount),
			}
			if err := s.mailer.NotifyManagerReservationPending(manager, summary); err != nil {
				log.Printf("⚠️ Reminder digest delivery failed for %s: %v", manager.Email, err)
				break
			}
		}
	}
}
