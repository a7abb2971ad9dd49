package handler

import (
	"time"

	"github.com/deppfellow/lotto-api/internal/middleware"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/deppfellow/lotto-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by the resource handlers (UserHandler, LottoDrawHandler)
// and the system ones so they can reach config, logger and the store
// through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Payload is satisfied by a pointer to a request struct T. It lets Handle
// allocate a zero T for every request, so concurrent requests never bind
// into the same value.
type Payload[T any] interface {
	*T
	validation.Validatable
}

// HandlerFunc is a typed endpoint function that receives a bound and
// validated request payload.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// phase is one timed step of a request: binding or running the handler.
type phase struct {
	name  string
	start time.Time
}

func startPhase(name string) phase {
	return phase{name: name, start: time.Now()}
}

// end records the phase outcome on the transaction, if any, and returns
// how long it took.
func (p phase) end(txn *newrelic.Transaction, err error) time.Duration {
	took := time.Since(p.start)
	if txn == nil {
		return took
	}

	status := "success"
	if err != nil {
		status = "failed"
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
	txn.AddAttribute(p.name+".status", status)
	txn.AddAttribute(p.name+".duration_ms", took.Milliseconds())
	return took
}

// requestLogger scopes the request logger to the resource and row a
// handler works on.
func requestLogger(c echo.Context) zerolog.Logger {
	ctx := middleware.GetLogger(c).With().
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Str("resource", middleware.ResourceOf(c.Path()))
	if id := c.Param("id"); id != "" {
		ctx = ctx.Str("resource_id", id)
	}
	return ctx.Logger()
}

// handleRequest binds and validates req, runs fn and writes its result as
// JSON with status. Errors are returned untouched for GlobalErrorHandler.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	fn func(c echo.Context, req Req) (any, error),
	status int,
) error {
	start := time.Now()
	log := requestLogger(c)

	// Set by nrecho; nil when New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", c.Path())
	}

	bind := startPhase("validation")
	err := validation.BindAndValidate(c, req)
	bindTook := bind.end(txn, err)
	if err != nil {
		log.Warn().Err(err).Dur("validation_duration", bindTook).Msg("request validation failed")
		return err
	}

	run := startPhase("handler")
	result, err := fn(c, req)
	runTook := run.end(txn, err)
	if err != nil {
		log.Error().
			Err(err).
			Dur("handler_duration", runTook).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	if txn != nil {
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}
	log.Debug().
		Dur("validation_duration", bindTook).
		Dur("handler_duration", runTook).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}

// Handle adapts a typed handler into an echo.HandlerFunc. Each call binds
// into a fresh Req.
//
//	users.GET("/:id", handler.Handle(h.Handler, h.GetUser, http.StatusOK))
func Handle[T any, Req Payload[T], Res any](
	h Handler,
	fn HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, Req(new(T)), func(c echo.Context, req Req) (any, error) {
			return fn(c, req)
		}, status)
	}
}
