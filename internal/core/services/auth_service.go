package services

import (
	"context"
	"errors"
	"log"

	"github.com/mansurjr/Bulivard/internal/adapters/persistence/models"
	"github.com/mansurjr/Bulivard/internal/adapters/persistence/repositories"
	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/jwt"
	"github.com/mansurjr/Bulivard/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles identity and session business logic
type AuthService struct {
	userRepo repositories.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// SignupInput represents registration input
type SignupInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult represents a sign-in or refresh outcome
type AuthResult struct {
	Message      string
	AccessToken  string
	RefreshToken string
}

// SignIn authenticates a user by email and password
func (s *AuthService) SignIn(ctx context.Context, email, pass string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	// Single session per account: the new fingerprint replaces any prior one.
	user.Token = password.Fingerprint(tokens.RefreshToken)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResult{
		Message:      "User logged in successfully",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh rotates the token pair using a refresh token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}

	claims, err := jwt.Validate(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	// Rotation: only the most recently issued refresh token is honoured.
	if user.Token != password.Fingerprint(refreshToken) {
		return nil, domain.ErrInvalidToken
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	user.Token = password.Fingerprint(tokens.RefreshToken)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Tokens refreshed for user: %s", user.Email)

	return &AuthResult{
		Message:      "Tokens refreshed successfully",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout clears the stored refresh fingerprint.
// The token is decoded without signature verification: an expired or
// otherwise invalid session can still be terminated.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domain.ErrNotLoggedIn
	}

	claims, err := jwt.Decode(refreshToken)
	if err != nil {
		return domain.ErrNotLoggedIn
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return domain.ErrNotLoggedIn
	}

	user.Token = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ User logged out: %s", user.Email)
	return nil
}

// Signup registers a new customer or manager account
func (s *AuthService) Signup(ctx context.Context, input *SignupInput, role string) (string, error) {
	exists, err := s.userRepo.ExistsByEmailOrPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrEmailTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		FullName:       input.FullName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Password:       hashedPassword,
		Role:           role,
		IsActive:       false,
		ActivationLink: uuid.New().String(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	// Activation mail is account-critical: the caller must know if it failed.
	if err := s.mailer.SendActivation(user); err != nil {
		log.Printf("❌ Activation email failed for %s: %v", user.Email, err)
		return "", domain.ErrMailDelivery
	}

	if role == domain.RoleManager {
		// Best-effort: an unreachable admin inbox must not fail the signup.
		if err := s.notifyAdminsOfPendingManager(ctx, user); err != nil {
			log.Printf("⚠️ Failed to notify admins about manager %s: %v", user.Email, err)
		}
		return "You succesfully registered wait till admin activate your account", nil
	}

	return "Successfully registered. Please activate your account via link sent to your email.", nil
}

func (s *AuthService) notifyAdminsOfPendingManager(ctx context.Context, manager *models.User) error {
	admins, err := s.userRepo.List(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	creators, err := s.userRepo.List(ctx, domain.RoleCreator)
	if err != nil {
		return err
	}
	return s.mailer.NotifyAdminsManagerPending(manager, append(admins, creators...))
}

// Activate flips an account active via its one-time activation link
func (s *AuthService) Activate(ctx context.Context, activationLink string) (string, error) {
	user, err := s.userRepo.GetByActivationLink(ctx, activationLink)
	if err != nil {
		return "", domain.ErrInvalidActivation
	}

	user.IsActive = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return "Account activated successfully", nil
}

// ActivateManager approves a pending manager account
func (s *AuthService) ActivateManager(ctx context.Context, id uint) (string, error) {
	user, err := s.userRepo.GetManager(ctx, id)
	if err != nil {
		return "", domain.ErrInvalidActivation
	}
	if user.IsActive {
		return "", domain.ErrAlreadyActivated
	}

	user.IsActive = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	if err := s.mailer.NotifyManagerApproved(user); err != nil {
		log.Printf("⚠️ Failed to notify manager %s of approval: %v", user.Email, err)
	}

	return "Account activated successfully", nil
}

// ForgotPassword stamps a fresh one-time reset token and mails the link
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrUserNotFound
	}

	user.ResetLink = uuid.New().String()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	if err := s.mailer.SendReset(user); err != nil {
		log.Printf("❌ Reset email failed for %s: %v", user.Email, err)
		return "", domain.ErrMailDelivery
	}

	return "Password reset email sent", nil
}

// ResetPassword changes the password via a one-time reset token
func (s *AuthService) ResetPassword(ctx context.Context, resetLink, newPassword, confirmPassword string) (string, error) {
	if newPassword != confirmPassword {
		return "", domain.ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByResetLink(ctx, resetLink)
	if err != nil {
		return "", domain.ErrInvalidResetLink
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return "", err
	}

	user.Password = hashedPassword
	user.ResetLink = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return "Password reset successfully", nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(user *models.User) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		user.IsActive,
		s.cfg.JWT.AccessSecret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		user.ID,
		user.Email,
		user.Role,
		user.IsActive,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
