package router

import (
	"net/http"

	"github.com/deppfellow/lotto-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the users and
// lotto_draws API. /status also answers HEAD for load balancers that only
// look at the status code.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Match([]string{http.MethodGet, http.MethodHead}, "/status", h.Health.CheckHealth)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.Static("/static", handler.OpenAPIDir)
}
