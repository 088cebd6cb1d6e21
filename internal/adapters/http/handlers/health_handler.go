package handlers

import (
	"time"

	"github.com/mansurjr/Bulivard/internal/config"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check returns the service health status
// @Summary Health check
// @Description Check the service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := config.HealthCheck(); err != nil {
		dbStatus = "down"
	}

	data := fiber.Map{
		"status":   "ok",
		"mode":     h.cfg.AppMode,
		"database": dbStatus,
		"time":     time.Now().Format(time.RFC3339),
	}

	if dbStatus == "down" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(response.Response{
			Success: false,
			Message: "Service degraded",
			Data:    data,
		})
	}

	return response.Success(c, "Service healthy", data)
}
