package api

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

const apiVersion = "3.0"

// HealthHandler reports process liveness.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{
		"status":         "healthy",
		"version":        apiVersion,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}
