package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lotto-api/internal/database"
	"github.com/deppfellow/lotto-api/internal/errs"
	"github.com/deppfellow/lotto-api/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewMockServer(t, &testutil.MockGateway{}))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "http error",
			err:        errs.NewNotFoundError("User not found", nil),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found"}`,
		},
		{
			name: "field errors",
			err: errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{
				{Field: "email", Error: "is required"},
			}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","errors":[{"field":"email","error":"is required"}]}`,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Route not found"}`,
		},
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
		{
			name:       "wrapped storage error keeps native message",
			err:        fmt.Errorf("list users: %w", &database.StorageError{Op: "query", Err: errors.New("database is locked")}),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"database is locked"}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantStatus, statusOf(tt.err))
		})
	}
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	global := NewGlobalMiddlewares(testutil.NewMockServer(t, &testutil.MockGateway{}))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	global.GlobalErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestGetLogger_Fallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestEnhanceContext(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	s := testutil.NewMockServer(t, &testutil.MockGateway{})
	s.Logger = &log
	ce := NewContextEnhancer(s)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(RequestIDKey, "req-1")

	err := ce.EnhanceContext()(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		GetLogger(c).Info().Msg("from handler")
		return nil
	})(c)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var fields map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &fields))
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, http.MethodGet, fields["method"])
	}
}
