package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMiddleware_RendersHandlerError(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/probe", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "taken")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMiddleware_PassesThroughSuccess(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/probe", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
