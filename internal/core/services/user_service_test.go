package services

import (
	"context"
	"testing"

	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, &CreateUserInput{
		FullName:    "Admin One",
		Email:       "admin@example.com",
		PhoneNumber: "+996700000010",
		Password:    "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, password.Verify("password123", admin.Password))

	_, err = svc.CreateAdmin(ctx, &CreateUserInput{
		FullName:    "Admin Two",
		Email:       "admin@example.com",
		PhoneNumber: "+996700000011",
		Password:    "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserFindAll(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	seedUser(t, userRepo, "one@example.com", "password123", domain.RoleCustomer, true)
	seedUser(t, userRepo, "two@example.com", "password123", domain.RoleManager, true)

	_, err := svc.FindAll(ctx, "WIZARD")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	managers, err := svc.FindAll(ctx, domain.RoleManager)
	require.NoError(t, err)
	assert.Len(t, managers, 1)

	all, err := svc.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserUpdate(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	user := seedUser(t, userRepo, "three@example.com", "oldpassword", domain.RoleCustomer, true)

	newPass := "newpassword1"
	updated, err := svc.Update(ctx, user.ID, &UpdateUserInput{Password: &newPass})
	require.NoError(t, err)
	assert.True(t, password.Verify("newpassword1", updated.Password))

	_, err = svc.Update(ctx, 999, &UpdateUserInput{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRemove(t *testing.T) {
	userRepo := newMemUserRepo()
	svc := NewUserService(userRepo)
	ctx := context.Background()

	user := seedUser(t, userRepo, "four@example.com", "password123", domain.RoleCustomer, true)

	require.NoError(t, svc.Remove(ctx, user.ID))
	_, err := svc.FindOne(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, user.ID), domain.ErrUserNotFound)
}
