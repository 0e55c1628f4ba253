package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// Pinger lo implementa storage.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func Health(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out := dto.HealthResponse{
			Status:    "ok",
			Service:   service,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  "ok",
		}
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				out.Status = "degraded"
				out.Database = "unavailable"
				return c.Status(fiber.StatusServiceUnavailable).JSON(out)
			}
		}
		return c.JSON(out)
	}
}
