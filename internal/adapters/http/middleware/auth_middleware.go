package middleware

import (
	"strings"

	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/jwt"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.Validate(accessToken, cfg.JWT.AccessSecret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Inactive accounts hold a token but may not act
		if !claims.IsActive {
			return response.Forbidden(c, "Account is not activated")
		}

		// 6. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		c.Locals("isActive", claims.IsActive)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware.
// Denies by default: no role in context, or a role outside the allow
// list, yields 403.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// CreatorOnly middleware allows only CREATOR role
func CreatorOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleCreator)
}

// ManagerOrAdmin middleware allows MANAGER or ADMIN roles
func ManagerOrAdmin() fiber.Handler {
	return RoleMiddleware(domain.RoleManager, domain.RoleAdmin)
}
