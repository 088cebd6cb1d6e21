package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}

	app := fiber.New()
	app.Get("/admin-only",
		AuthMiddleware(cfg),
		RoleMiddleware(domain.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app, cfg
}

func requestWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	app, _ := testApp(t)

	resp := requestWithToken(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	app, cfg := testApp(t)

	t.Run("garbage", func(t *testing.T) {
		resp := requestWithToken(t, app, "not.a.token")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(1, "a@example.com", domain.RoleAdmin, true, "other-secret", 15)
		require.NoError(t, err)
		resp := requestWithToken(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(1, "a@example.com", domain.RoleAdmin, true, cfg.JWT.AccessSecret, -1)
		require.NoError(t, err)
		resp := requestWithToken(t, app, token)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthMiddlewareBlocksInactive(t *testing.T) {
	app, cfg := testApp(t)

	token, err := jwt.GenerateAccessToken(1, "a@example.com", domain.RoleAdmin, false, cfg.JWT.AccessSecret, 15)
	require.NoError(t, err)

	resp := requestWithToken(t, app, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRoleMiddlewareGating(t *testing.T) {
	app, cfg := testApp(t)

	t.Run("customer is denied", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(2, "c@example.com", domain.RoleCustomer, true, cfg.JWT.AccessSecret, 15)
		require.NoError(t, err)
		resp := requestWithToken(t, app, token)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("manager is denied", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(3, "m@example.com", domain.RoleManager, true, cfg.JWT.AccessSecret, 15)
		require.NoError(t, err)
		resp := requestWithToken(t, app, token)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := jwt.GenerateAccessToken(4, "a@example.com", domain.RoleAdmin, true, cfg.JWT.AccessSecret, 15)
		require.NoError(t, err)
		resp := requestWithToken(t, app, token)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRoleMiddlewareWithoutAuthContext(t *testing.T) {
	// RoleMiddleware mounted without AuthMiddleware has no role to read.
	app := fiber.New()
	app.Get("/bare", RoleMiddleware(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bare", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
