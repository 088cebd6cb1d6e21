package services

import (
	"context"
	"testing"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCreate(t *testing.T) {
	seatRepo := newMemSeatRepo()
	restRepo := newMemRestaurantRepo()
	svc := NewSeatService(seatRepo, newMemReservationRepo(), restRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateSeatInput{RestaurantID: 1, Capacity: 4, Price: "100"})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	restaurant := &models.Restaurant{Name: "Bulivard Central", OwnerID: 1}
	require.NoError(t, restRepo.Create(ctx, restaurant))

	seat, err := svc.Create(ctx, &CreateSeatInput{RestaurantID: restaurant.ID, Capacity: 4, Price: "100", IsVip: true})
	require.NoError(t, err)
	assert.True(t, seat.IsVip)
}

func TestFreeSeats(t *testing.T) {
	seatRepo := newMemSeatRepo()
	restRepo := newMemRestaurantRepo()
	resvRepo := newMemReservationRepo()
	svc := NewSeatService(seatRepo, resvRepo, restRepo)
	ctx := context.Background()

	restaurant := &models.Restaurant{Name: "Bulivard Central", OwnerID: 1}
	require.NoError(t, restRepo.Create(ctx, restaurant))

	seats := make([]*models.Seat, 3)
	for i := range seats {
		seats[i] = &models.Seat{RestaurantID: restaurant.ID, Capacity: 2, Price: "50"}
		require.NoError(t, seatRepo.Create(ctx, seats[i]))
	}

	// Seat 2 is booked for the slot.
	require.NoError(t, resvRepo.Create(ctx, &models.Reservation{
		SeatID:       seats[1].ID,
		RestaurantID: restaurant.ID,
		CustomerID:   1,
		Date:         "2026-09-15",
		Time:         "19:00",
		GuestCount:   2,
	}))

	free, err := svc.FreeSeats(ctx, restaurant.ID, "2026-09-15", "19:00")
	require.NoError(t, err)

	ids := make([]uint, 0, len(free))
	for _, seat := range free {
		ids = append(ids, seat.ID)
	}
	assert.ElementsMatch(t, []uint{seats[0].ID, seats[2].ID}, ids)

	// A different slot frees all seats.
	free, err = svc.FreeSeats(ctx, restaurant.ID, "2026-09-15", "21:00")
	require.NoError(t, err)
	assert.Len(t, free, 3)

	// And so does a different date.
	free, err = svc.FreeSeats(ctx, restaurant.ID, "2026-09-16", "19:00")
	require.NoError(t, err)
	assert.Len(t, free, 3)
}

func TestSeatUpdateValidatesRestaurant(t *testing.T) {
	seatRepo := newMemSeatRepo()
	restRepo := newMemRestaurantRepo()
	svc := NewSeatService(seatRepo, newMemReservationRepo(), restRepo)
	ctx := context.Background()

	restaurant := &models.Restaurant{Name: "Bulivard Central", OwnerID: 1}
	require.NoError(t, restRepo.Create(ctx, restaurant))
	seat := &models.Seat{RestaurantID: restaurant.ID, Capacity: 2, Price: "50"}
	require.NoError(t, seatRepo.Create(ctx, seat))

	missing := uint(999)
	_, err := svc.Update(ctx, seat.ID, &UpdateSeatInput{RestaurantID: &missing})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	capacity := 6
	updated, err := svc.Update(ctx, seat.ID, &UpdateSeatInput{Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Capacity)
}
