package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/lotto-api/internal/errs"
	"github.com/deppfellow/lotto-api/internal/middleware"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler answers /status. The store is the only dependency the API
// has, so it is the only thing checked.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type storeCheck struct {
	Driver       string `json:"driver"`
	ResponseTime string `json:"response_time"`
}

type healthResponse struct {
	Status      string     `json:"status"`
	Timestamp   time.Time  `json:"timestamp"`
	Environment string     `json:"environment"`
	Store       storeCheck `json:"store"`
}

// CheckHealth pings the store. A failed ping becomes a 503 through the
// global error handler; the ping error itself is only logged.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	driver := h.server.Config.Database.Driver
	log := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Str("driver", driver).
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.server.DB.Ping(ctx)
	took := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("response_time", took).Msg("store health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"driver":           driver,
				"response_time_ms": took.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return errs.NewServiceUnavailableError("Database unavailable")
	}

	log.Debug().Dur("response_time", took).Msg("store health check passed")

	return c.JSON(http.StatusOK, healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Store: storeCheck{
			Driver:       driver,
			ResponseTime: took.String(),
		},
	})
}
