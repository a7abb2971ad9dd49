package handler

import (
	"os"
	"path/filepath"

	"github.com/deppfellow/lotto-api/internal/errs"
	"github.com/deppfellow/lotto-api/internal/middleware"
	"github.com/deppfellow/lotto-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIDir holds openapi.html and the openapi.json describing the users
// and lotto_draws routes.
const OpenAPIDir = "static"

// OpenAPIHandler serves the API reference UI from dir.
type OpenAPIHandler struct {
	Handler
	dir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		dir:     OpenAPIDir,
	}
}

// ServeOpenAPIUI serves openapi.html uncached so edits to the docs show up
// on reload. A missing page is a 404 rather than a 500 so a binary shipped
// without static/ still answers sensibly.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page := filepath.Join(h.dir, "openapi.html")
	if _, err := os.Stat(page); err != nil {
		middleware.GetLogger(c).Warn().Err(err).Str("page", page).Msg("API reference page unavailable")
		return errs.NewNotFoundError("API reference not available", nil)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.File(page)
}
