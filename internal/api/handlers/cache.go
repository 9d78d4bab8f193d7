package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
)

// CacheHandler handles price cache maintenance.
type CacheHandler struct {
	eng *engine.Engine
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(eng *engine.Engine) *CacheHandler {
	return &CacheHandler{eng: eng}
}

// CacheOutput reports how many cache entries were removed.
type CacheOutput struct {
	Body struct {
		Status  string `json:"status" example:"purged"`
		Removed int    `json:"removed" example:"3"`
	}
}

// Purge removes expired cache entries.
func (h *CacheHandler) Purge(ctx context.Context, _ *struct{}) (*CacheOutput, error) {
	n, err := h.eng.PurgeExpiredCache(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	out := &CacheOutput{}
	out.Body.Status = "purged"
	out.Body.Removed = n
	return out, nil
}

// Clear removes every cache entry.
func (h *CacheHandler) Clear(ctx context.Context, _ *struct{}) (*CacheOutput, error) {
	n, err := h.eng.ClearCache(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	out := &CacheOutput{}
	out.Body.Status = "cleared"
	out.Body.Removed = n
	return out, nil
}

// RegisterCacheRoutes registers cache endpoints with the Huma API.
func RegisterCacheRoutes(api huma.API, h *CacheHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "purge-cache",
		Method:      http.MethodPost,
		Path:        "/cache/purge",
		Summary:     "Purge expired cache entries",
		Description: "Removes web search prices older than the cache expiry window.",
		Tags:        []string{"cache"},
	}, h.Purge)

	huma.Register(api, huma.Operation{
		OperationID: "clear-cache",
		Method:      http.MethodDelete,
		Path:        "/cache",
		Summary:     "Clear the price cache",
		Description: "Removes every cached web search price.",
		Tags:        []string{"cache"},
	}, h.Clear)
}
