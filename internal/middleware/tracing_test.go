package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestResourceOf(t *testing.T) {
	tests := map[string]string{
		"/":                "users",
		"/users":           "users",
		"/users/:id":       "users",
		"/lotto_draws":     "lotto_draws",
		"/lotto_draws/:id": "lotto_draws",
		"/status":          "status",
		"/static*":         "static",
		"/*":               "",
		"/:id":             "",
		"":                 "",
	}

	for route, want := range tests {
		assert.Equal(t, want, ResourceOf(route), route)
	}
}

func TestRequestAttributes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/lotto_draws/7", nil)
	req.Header.Set("User-Agent", "monitor/1.0")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/lotto_draws/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	c.Set(RequestIDKey, "req-9")

	attrs := RequestAttributes(c, "sqlite")

	assert.Equal(t, "lotto_draws", attrs["lotto.resource"])
	assert.Equal(t, "7", attrs["lotto.resource_id"])
	assert.Equal(t, "sqlite", attrs["store.driver"])
	assert.Equal(t, "req-9", attrs["request.id"])
	assert.Equal(t, "monitor/1.0", attrs["http.user_agent"])
}

func TestRequestAttributes_OmitsEmpty(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), httptest.NewRecorder())
	c.SetPath("/users")

	attrs := RequestAttributes(c, "postgres")

	assert.Equal(t, "users", attrs["lotto.resource"])
	assert.NotContains(t, attrs, "lotto.resource_id")
	assert.NotContains(t, attrs, "request.id")
	assert.NotContains(t, attrs, "http.user_agent")
}
