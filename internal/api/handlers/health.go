package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
)

const serviceName = "dynamic-pricing"

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	eng *engine.Engine
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(eng *engine.Engine) *HealthHandler {
	return &HealthHandler{eng: eng}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz returns 200 if the price store is reachable, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if err := h.eng.Ready(c.Request().Context()); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			map[string]string{"status": "unavailable"},
		)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// HealthOutput reports service status and the optional features in use.
type HealthOutput struct {
	Body struct {
		Status   string          `json:"status" example:"healthy"`
		Service  string          `json:"service" example:"dynamic-pricing"`
		Tiers    []string        `json:"tiers" doc:"Reference price lookup order"`
		Features engine.Features `json:"features"`
	}
}

// Health reports liveness and which optional collaborators are configured.
func (h *HealthHandler) Health(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "healthy"
	out.Body.Service = serviceName
	out.Body.Tiers = h.eng.Tiers()
	out.Body.Features = h.eng.Features()
	return out, nil
}

// RegisterHealthRoutes registers the feature health endpoint with the Huma
// API.
func RegisterHealthRoutes(api huma.API, h *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Description: "Returns service status and whether web search, LLM reports and specs lookup are enabled.",
		Tags:        []string{"health"},
	}, h.Health)
}
