// Package router builds the Echo instance: it installs the middleware
// chain, sets the global error handler and registers the resource and
// system routes.
package router

import (
	"net/http"

	"github.com/deppfellow/lotto-api/internal/handler"
	"github.com/deppfellow/lotto-api/internal/middleware"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires handlers h behind the global middleware chain. Order
// matters: the request id must exist before the context enhancer builds
// the request logger, and the New Relic transaction must exist before
// EnhanceTracing and the logger read it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h.Users)
	registerLottoDrawRoutes(router, h.LottoDraws)

	return router
}

func registerUserRoutes(r *echo.Echo, h *handler.UserHandler) {
	list := handler.Handle(h.Handler, h.ListUsers, http.StatusOK)

	// The root lists users.
	r.GET("/", list)

	users := r.Group("/users")
	users.GET("", list)
	users.GET("/:id", handler.Handle(h.Handler, h.GetUser, http.StatusOK))
	users.POST("", handler.Handle(h.Handler, h.CreateUser, http.StatusOK))
	users.PUT("/:id", handler.Handle(h.Handler, h.UpdateUser, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Handler, h.DeleteUser, http.StatusOK))
}

func registerLottoDrawRoutes(r *echo.Echo, h *handler.LottoDrawHandler) {
	draws := r.Group("/lotto_draws")
	draws.GET("", handler.Handle(h.Handler, h.ListLottoDraws, http.StatusOK))
	draws.GET("/:id", handler.Handle(h.Handler, h.GetLottoDraw, http.StatusOK))
	draws.POST("", handler.Handle(h.Handler, h.CreateLottoDraw, http.StatusOK))
	draws.PUT("/:id", handler.Handle(h.Handler, h.UpdateLottoDraw, http.StatusOK))
	draws.DELETE("/:id", handler.Handle(h.Handler, h.DeleteLottoDraw, http.StatusOK))
}
