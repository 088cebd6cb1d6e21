package domain

import "errors"

// Common domain errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("resource not found")
	ErrInternalServer = errors.New("internal server error")
	ErrMailDelivery   = errors.New("mail delivery failed")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("password or email is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrNotLoggedIn        = errors.New("you are not logged in yet")
	ErrInvalidActivation  = errors.New("invalid activation link")
	ErrAlreadyActivated   = errors.New("account already activated")
	ErrInvalidResetLink   = errors.New("invalid reset link")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// User errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("this number or email already registered")
	ErrManagerNotFound = errors.New("manager not found")
	ErrInvalidRole     = errors.New("invalid role")
)

// Restaurant / seat / menu errors
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantExists   = errors.New("restaurant already exists")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrMenuImageNotFound  = errors.New("menu image not found")
)

// Reservation errors
var (
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrSeatRestaurantMismatch = errors.New("seat does not belong to the specified restaurant")
	ErrSeatTaken              = errors.New("seat already reserved for this date and time")
	ErrAlreadyCheckedIn       = errors.New("reservation already checked in")
	ErrInvalidGuestCount      = errors.New("guest count must be between 1 and 100")
)
