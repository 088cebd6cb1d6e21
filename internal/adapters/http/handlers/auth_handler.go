package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// SignupRequest represents registration request body
type SignupRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// SigninRequest represents login request body
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents password reset request body
type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignupCustomer registers a new customer account
// @Summary Register customer
// @Description Register a new customer account, activation link is emailed
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /auth/signup/customer [post]
func (h *AuthHandler) SignupCustomer(c *fiber.Ctx) error {
	return h.signup(c, domain.RoleCustomer)
}

// SignupManager registers a new manager account pending admin approval
// @Summary Register manager
// @Description Register a new manager account, admins are notified for approval
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /auth/signup/manager [post]
func (h *AuthHandler) SignupManager(c *fiber.Ctx) error {
	return h.signup(c, domain.RoleManager)
}

func (h *AuthHandler) signup(c *fiber.Ctx, role string) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FullName == "" {
		return response.BadRequest(c, "Full name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.PhoneNumber == "" {
		return response.BadRequest(c, "Phone number is required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	input := &services.SignupInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    req.Password,
	}

	message, err := h.authService.Signup(c.Context(), input, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email or phone number already registered")
		case errors.Is(err, domain.ErrMailDelivery):
			return response.ServiceUnavailable(c, "Could not send activation email, please try again later")
		default:
			return response.InternalServerError(c, "Failed to register")
		}
	}

	return response.Created(c, message, nil)
}

// Signin authenticates a user
// @Summary Sign in
// @Description Authenticate by email and password, sets the refresh cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SigninRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.authService.SignIn(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid email or password")
		default:
			return response.InternalServerError(c, "Failed to sign in")
		}
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return response.Success(c, result.Message, fiber.Map{
		"access_token": result.AccessToken,
	})
}

// Refresh rotates the token pair using the refresh cookie
// @Summary Refresh tokens
// @Description Rotate access and refresh tokens using the refresh cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh [get]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")

	result, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			h.clearRefreshCookie(c)
			return response.Unauthorized(c, "Refresh token expired, please sign in again")
		case errors.Is(err, domain.ErrInvalidToken):
			h.clearRefreshCookie(c)
			return response.Unauthorized(c, "Invalid refresh token")
		default:
			return response.InternalServerError(c, "Failed to refresh tokens")
		}
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return response.Success(c, result.Message, fiber.Map{
		"access_token": result.AccessToken,
	})
}

// Logout terminates the session and clears the refresh cookie
// @Summary Log out
// @Description Clear the stored session and the refresh cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")

	if err := h.authService.Logout(c.Context(), refreshToken); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotLoggedIn):
			return response.Unauthorized(c, "You are not logged in")
		default:
			return response.InternalServerError(c, "Failed to log out")
		}
	}

	h.clearRefreshCookie(c)

	return response.Success(c, "User logged out successfully", nil)
}

// Activate activates an account via its emailed link
// @Summary Activate account
// @Description Activate an account using the one-time activation link
// @Tags Auth
// @Produce json
// @Param link path string true "Activation link"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/activate/{link} [get]
func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	link := c.Params("link")

	message, err := h.authService.Activate(c.Context(), link)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidActivation):
			return response.BadRequest(c, "Invalid activation link")
		default:
			return response.InternalServerError(c, "Failed to activate account")
		}
	}

	return response.Success(c, message, nil)
}

// ActivateManager approves a pending manager account
// @Summary Approve manager
// @Description Approve a pending manager account by ID
// @Tags Auth
// @Produce json
// @Param id path int true "Manager ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/activate-manager/{id} [get]
func (h *AuthHandler) ActivateManager(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid manager ID")
	}

	message, err := h.authService.ActivateManager(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidActivation):
			return response.BadRequest(c, "Manager not found")
		case errors.Is(err, domain.ErrAlreadyActivated):
			return response.BadRequest(c, "Account is already activated")
		default:
			return response.InternalServerError(c, "Failed to activate manager")
		}
	}

	return response.Success(c, message, nil)
}

// ForgotPassword mails a one-time password reset link
// @Summary Forgot password
// @Description Send a one-time password reset link to the account email
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ForgotPasswordRequest true "Account email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	message, err := h.authService.ForgotPassword(c.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrMailDelivery):
			return response.ServiceUnavailable(c, "Could not send reset email, please try again later")
		default:
			return response.InternalServerError(c, "Failed to process request")
		}
	}

	return response.Success(c, message, nil)
}

// ResetPassword changes the password via a one-time reset link
// @Summary Reset password
// @Description Change the account password using the emailed reset link
// @Tags Auth
// @Accept json
// @Produce json
// @Param link path string true "Reset link"
// @Param body body ResetPasswordRequest true "New password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/reset-password/{link} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	link := c.Params("link")

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	message, err := h.authService.ResetPassword(c.Context(), link, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			return response.BadRequest(c, "Passwords do not match")
		case errors.Is(err, domain.ErrInvalidResetLink):
			return response.BadRequest(c, "Invalid or expired reset link")
		default:
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, message, nil)
}

// Me returns the current user info
// @Summary Get current user
// @Description Get the currently authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.authService.Me(c.Context(), userID)
	if err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// setRefreshCookie sets the HTTP-only refresh token cookie
func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   h.cfg.Cookie.MaxAgeDays * 24 * 60 * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearRefreshCookie clears the refresh token cookie
func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
