package services

import (
	"context"
	"testing"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *memUserRepo, *fakeMailer) {
	t.Helper()
	userRepo := newMemUserRepo()
	mailer := &fakeMailer{}
	return NewAuthService(userRepo, mailer, testConfig()), userRepo, mailer
}

func seedUser(t *testing.T, repo *memUserRepo, email, pass, role string, active bool) *models.User {
	t.Helper()
	hashed, err := password.Hash(pass)
	require.NoError(t, err)

	user := &models.User{
		FullName:    "Test User",
		Email:       email,
		PhoneNumber: "+996700" + email[:3],
		Password:    hashed,
		Role:        role,
		IsActive:    active,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestSignIn(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "alice@example.com", "password123", domain.RoleCustomer, true)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.SignIn(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(ctx, "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("success stores refresh fingerprint", func(t *testing.T) {
		result, err := svc.SignIn(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, password.Fingerprint(result.RefreshToken), user.Token)
	})
}

func TestRefreshRotation(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	ctx := context.Background()
	seedUser(t, userRepo, "bob@example.com", "password123", domain.RoleCustomer, true)

	first, err := svc.SignIn(ctx, "bob@example.com", "password123")
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)

	// The rotated-out token must no longer be accepted.
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	// The current one still works.
	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsBadTokens(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestLogout(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "carol@example.com", "password123", domain.RoleCustomer, true)

	t.Run("empty token", func(t *testing.T) {
		err := svc.Logout(ctx, "")
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("clears stored fingerprint", func(t *testing.T) {
		result, err := svc.SignIn(ctx, "carol@example.com", "password123")
		require.NoError(t, err)
		require.NotEmpty(t, user.Token)

		require.NoError(t, svc.Logout(ctx, result.RefreshToken))
		assert.Empty(t, user.Token)

		// The cleared session no longer refreshes.
		_, err = svc.Refresh(ctx, result.RefreshToken)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("customer gets activation mail", func(t *testing.T) {
		svc, userRepo, mailer := newAuthFixture(t)

		message, err := svc.Signup(ctx, &SignupInput{
			FullName:    "Dave",
			Email:       "dave@example.com",
			PhoneNumber: "+996700000001",
			Password:    "password123",
		}, domain.RoleCustomer)
		require.NoError(t, err)
		assert.Contains(t, message, "activate your account via link")
		assert.Equal(t, []string{"dave@example.com"}, mailer.activations)

		user, err := userRepo.GetByEmail(ctx, "dave@example.com")
		require.NoError(t, err)
		assert.False(t, user.IsActive)
		assert.NotEmpty(t, user.ActivationLink)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, userRepo, _ := newAuthFixture(t)
		seedUser(t, userRepo, "eve@example.com", "password123", domain.RoleCustomer, true)

		_, err := svc.Signup(ctx, &SignupInput{
			FullName:    "Eve Again",
			Email:       "eve@example.com",
			PhoneNumber: "+996700000002",
			Password:    "password123",
		}, domain.RoleCustomer)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("mail failure surfaces", func(t *testing.T) {
		svc, _, mailer := newAuthFixture(t)
		mailer.activationErr = domain.ErrMailDelivery

		_, err := svc.Signup(ctx, &SignupInput{
			FullName:    "Frank",
			Email:       "frank@example.com",
			PhoneNumber: "+996700000003",
			Password:    "password123",
		}, domain.RoleCustomer)
		assert.ErrorIs(t, err, domain.ErrMailDelivery)
	})

	t.Run("manager notifies admins", func(t *testing.T) {
		svc, userRepo, mailer := newAuthFixture(t)
		seedUser(t, userRepo, "admin@example.com", "password123", domain.RoleAdmin, true)

		message, err := svc.Signup(ctx, &SignupInput{
			FullName:    "Grace",
			Email:       "grace@example.com",
			PhoneNumber: "+996700000004",
			Password:    "password123",
		}, domain.RoleManager)
		require.NoError(t, err)
		assert.Contains(t, message, "wait till admin activate")
		assert.Equal(t, 1, mailer.adminNotices)
	})

	t.Run("manager signup survives admin notice failure", func(t *testing.T) {
		svc, _, mailer := newAuthFixture(t)
		mailer.adminsErr = domain.ErrMailDelivery

		_, err := svc.Signup(ctx, &SignupInput{
			FullName:    "Heidi",
			Email:       "heidi@example.com",
			PhoneNumber: "+996700000005",
			Password:    "password123",
		}, domain.RoleManager)
		assert.NoError(t, err)
	})
}

func TestActivate(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	ctx := context.Background()

	user := seedUser(t, userRepo, "ivan@example.com", "password123", domain.RoleCustomer, false)
	user.ActivationLink = "some-activation-link"
	require.NoError(t, userRepo.Update(ctx, user))

	t.Run("invalid link", func(t *testing.T) {
		_, err := svc.Activate(ctx, "wrong-link")
		assert.ErrorIs(t, err, domain.ErrInvalidActivation)
	})

	t.Run("success", func(t *testing.T) {
		_, err := svc.Activate(ctx, "some-activation-link")
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})
}

func TestActivateManager(t *testing.T) {
	svc, userRepo, mailer := newAuthFixture(t)
	ctx := context.Background()

	manager := seedUser(t, userRepo, "judy@example.com", "password123", domain.RoleManager, false)
	customer := seedUser(t, userRepo, "kate@example.com", "password123", domain.RoleCustomer, false)

	t.Run("customer ID is not a manager", func(t *testing.T) {
		_, err := svc.ActivateManager(ctx, customer.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidActivation)
	})

	t.Run("success notifies the manager", func(t *testing.T) {
		_, err := svc.ActivateManager(ctx, manager.ID)
		require.NoError(t, err)
		assert.True(t, manager.IsActive)
		assert.Equal(t, []string{"judy@example.com"}, mailer.approved)
	})

	t.Run("second activation fails", func(t *testing.T) {
		_, err := svc.ActivateManager(ctx, manager.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyActivated)
	})
}

func TestForgotPassword(t *testing.T) {
	svc, userRepo, mailer := newAuthFixture(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "leo@example.com", "password123", domain.RoleCustomer, true)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.ForgotPassword(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("stamps reset link and mails it", func(t *testing.T) {
		_, err := svc.ForgotPassword(ctx, "leo@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ResetLink)
		assert.Equal(t, []string{"leo@example.com"}, mailer.resets)
	})
}

func TestResetPassword(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	ctx := context.Background()

	user := seedUser(t, userRepo, "mallory@example.com", "oldpassword", domain.RoleCustomer, true)
	user.ResetLink = "reset-link"
	require.NoError(t, userRepo.Update(ctx, user))

	t.Run("mismatch is rejected before any lookup", func(t *testing.T) {
		_, err := svc.ResetPassword(ctx, "no-such-link", "newpassword1", "newpassword2")
		assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	})

	t.Run("invalid link", func(t *testing.T) {
		_, err := svc.ResetPassword(ctx, "no-such-link", "newpassword1", "newpassword1")
		assert.ErrorIs(t, err, domain.ErrInvalidResetLink)
	})

	t.Run("success rehashes and consumes the link", func(t *testing.T) {
		_, err := svc.ResetPassword(ctx, "reset-link", "newpassword1", "newpassword1")
		require.NoError(t, err)
		assert.Empty(t, user.ResetLink)
		assert.True(t, password.Verify("newpassword1", user.Password))
		assert.False(t, password.Verify("oldpassword", user.Password))
	})
}
