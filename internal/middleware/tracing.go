package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/lotto-api/internal/server"
)

// TracingMiddleware owns the New Relic Echo middleware. nrApp is nil when
// New Relic is disabled.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or passes the
// request through when New Relic is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the resource being served
// (users, lotto_draws, ...) and the targeted row id, so slow or failing
// transactions can be grouped per table. Must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range RequestAttributes(c, tm.server.Config.Database.Driver) {
				txn.AddAttribute(key, value)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}
			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// RequestAttributes lists the per-request attributes recorded on a
// transaction. Empty values are left out.
func RequestAttributes(c echo.Context, driver string) map[string]string {
	attrs := map[string]string{
		"http.real_ip":      c.RealIP(),
		"http.user_agent":   c.Request().UserAgent(),
		"store.driver":      driver,
		"request.id":        GetRequestID(c),
		"lotto.resource":    ResourceOf(c.Path()),
		"lotto.resource_id": c.Param("id"),
	}
	for key, value := range attrs {
		if value == "" {
			delete(attrs, key)
		}
	}
	return attrs
}

// ResourceOf returns the first segment of a route path: "/users/:id" gives
// "users". The root route lists users.
func ResourceOf(route string) string {
	if route == "/" {
		return "users"
	}
	first, _, _ := strings.Cut(strings.TrimPrefix(route, "/"), "/")
	first = strings.TrimSuffix(first, "*")
	if strings.HasPrefix(first, ":") {
		return ""
	}
	return first
}
