package services

import (
	"context"
	"testing"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuFixture(t *testing.T) (*MenuService, *models.Restaurant) {
	t.Helper()
	restRepo := newMemRestaurantRepo()
	svc := NewMenuService(newMemMenuRepo(), newMemMenuImageRepo(), restRepo)

	restaurant := &models.Restaurant{Name: "Bulivard Central", OwnerID: 1}
	require.NoError(t, restRepo.Create(context.Background(), restaurant))
	return svc, restaurant
}

func TestMenuCreate(t *testing.T) {
	svc, restaurant := newMenuFixture(t)
	ctx := context.Background()

	_, err := svc.CreateMenu(ctx, &CreateMenuInput{RestaurantID: 999, Name: "Plov", Price: "250"})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	menu, err := svc.CreateMenu(ctx, &CreateMenuInput{RestaurantID: restaurant.ID, Name: "Plov", Price: "250"})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, menu.RestaurantID)
}

func TestMenuImageRequiresMenu(t *testing.T) {
	svc, restaurant := newMenuFixture(t)
	ctx := context.Background()

	_, err := svc.CreateImage(ctx, &CreateMenuImageInput{MenuID: 999, URL: "https://img.example/1.jpg"})
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)

	menu, err := svc.CreateMenu(ctx, &CreateMenuInput{RestaurantID: restaurant.ID, Name: "Lagman", Price: "200"})
	require.NoError(t, err)

	image, err := svc.CreateImage(ctx, &CreateMenuImageInput{MenuID: menu.ID, URL: "https://img.example/1.jpg"})
	require.NoError(t, err)
	assert.Equal(t, menu.ID, image.MenuID)

	// Re-pointing the image at a missing menu is rejected.
	missing := uint(999)
	_, err = svc.UpdateImage(ctx, image.ID, &UpdateMenuImageInput{MenuID: &missing})
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}
