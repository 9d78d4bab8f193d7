package openapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, "/openapi.json")

	tests := []struct {
		name     string
		path     string
		status   int
		location string
		contains string
	}{
		{name: "ui", path: "/swagger/index.html", status: http.StatusOK, contains: `url: "/openapi.json"`},
		{name: "bare redirect", path: "/swagger", status: http.StatusMovedPermanently, location: "/swagger/index.html"},
		{name: "slash redirect", path: "/swagger/", status: http.StatusMovedPermanently, location: "/swagger/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}
