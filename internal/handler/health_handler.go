package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmesh/portal-api/internal/config"
	"github.com/campusmesh/portal-api/internal/utils"
)

var processStart = time.Now()

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}

// HealthCheck reports service identity and uptime. It performs no dependency
// probes; a failing store surfaces through the endpoints that use it.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, "service healthy", HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Uptime:      time.Since(processStart).Round(time.Second).String(),
		})
	}
}
