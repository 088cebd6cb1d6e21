package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims represents the JWT claims carried by both token kinds
type Claims struct {
	UserID   uint   `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a new access token
func GenerateAccessToken(userID uint, email, role string, isActive bool, secret string, expiryMinutes int) (string, error) {
	return generate(userID, email, role, isActive, secret, time.Duration(expiryMinutes)*time.Minute)
}

// GenerateRefreshToken generates a new refresh token
func GenerateRefreshToken(userID uint, email, role string, isActive bool, secret string, expiryDays int) (string, error) {
	return generate(userID, email, role, isActive, secret, time.Duration(expiryDays)*24*time.Hour)
}

func generate(userID uint, email, role string, isActive bool, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		IsActive: isActive,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique jti: tokens minted within the same second must still
			// differ, or rotation could re-issue the input token.
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "bulivard",
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate verifies a token's signature and expiry and returns its claims
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// Decode extracts claims without verifying the signature.
// Used only by logout, which clears the session regardless of token validity.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
