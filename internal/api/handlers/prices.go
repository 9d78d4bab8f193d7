package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// PricesHandler handles price database administration.
type PricesHandler struct {
	eng *engine.Engine
}

// NewPricesHandler creates a new PricesHandler.
func NewPricesHandler(eng *engine.Engine) *PricesHandler {
	return &PricesHandler{eng: eng}
}

// --- Input/Output types ---

// ListPricesInput filters and pages the price database.
type ListPricesInput struct {
	Search   string `query:"search"   doc:"Substring match on brand or model"`
	Brand    string `query:"brand"    doc:"Exact brand (case-insensitive)"`
	Category string `query:"category" doc:"Exact category (case-insensitive)"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy  string `query:"order_by" doc:"Sort field"                     enum:"key,price,last_updated,"`
}

// ListPricesOutput is one page of price database entries.
type ListPricesOutput struct {
	Body struct {
		Prices []domain.PriceRecord `json:"prices"`
		Total  int                  `json:"total"`
		Limit  int                  `json:"limit"`
		Offset int                  `json:"offset"`
	}
}

// UpsertPriceInput is a price database entry to add or replace.
type UpsertPriceInput struct {
	Body struct {
		Brand    string  `json:"brand" minLength:"1" example:"Apple"`
		Model    string  `json:"model" minLength:"1" example:"iPhone 13"`
		Price    float64 `json:"price" exclusiveMinimum:"0" example:"20000"`
		Currency string  `json:"currency,omitempty" example:"EGP"`
		Source   string  `json:"source,omitempty" example:"Manual"`
		Category string  `json:"category,omitempty" example:"phone"`
	}
}

// PriceRecordOutput is a single price database entry.
type PriceRecordOutput struct {
	Body domain.PriceRecord
}

// DeletePriceInput names the entry to delete.
type DeletePriceInput struct {
	Brand string `path:"brand" doc:"Product brand"`
	Model string `path:"model" doc:"Product model"`
}

// PriceStatsOutput summarizes the price database.
type PriceStatsOutput struct {
	Body domain.PriceStats
}

// --- Handlers ---

// List returns price database entries with optional filters and paging.
func (h *PricesHandler) List(ctx context.Context, input *ListPricesInput) (*ListPricesOutput, error) {
	q := &store.PriceQuery{
		Search:  input.Search,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Brand != "" {
		q.Brand = &input.Brand
	}
	if input.Category != "" {
		q.Category = &input.Category
	}

	records, total, err := h.eng.ListPrices(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("price query failed: " + err.Error())
	}
	if records == nil {
		records = []domain.PriceRecord{}
	}

	resp := &ListPricesOutput{}
	resp.Body.Prices = records
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Upsert adds or replaces a price database entry.
func (h *PricesHandler) Upsert(ctx context.Context, input *UpsertPriceInput) (*PriceRecordOutput, error) {
	in := input.Body
	rec, err := h.eng.UpsertPrice(ctx, engine.PriceInput{
		Brand:    in.Brand,
		Model:    in.Model,
		Price:    in.Price,
		Currency: in.Currency,
		Source:   in.Source,
		Category: in.Category,
	})
	switch {
	case errors.Is(err, engine.ErrInvalidPrice):
		return nil, huma.Error400BadRequest(err.Error())
	case err != nil:
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &PriceRecordOutput{Body: *rec}, nil
}

// Delete removes a price database entry.
func (h *PricesHandler) Delete(ctx context.Context, input *DeletePriceInput) (*struct{}, error) {
	err := h.eng.DeletePrice(ctx, input.Brand, input.Model)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, huma.Error404NotFound("price not found for " + input.Brand + " " + input.Model)
	case err != nil:
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return nil, nil
}

// Stats returns counts by category and brand.
func (h *PricesHandler) Stats(ctx context.Context, _ *struct{}) (*PriceStatsOutput, error) {
	stats, err := h.eng.PriceStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &PriceStatsOutput{Body: *stats}, nil
}

// RegisterPricesRoutes registers price database endpoints with the Huma API.
func RegisterPricesRoutes(api huma.API, h *PricesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-prices",
		Method:      http.MethodGet,
		Path:        "/prices",
		Summary:     "List reference prices",
		Description: "Returns price database entries with optional search, brand and category filters.",
		Tags:        []string{"prices"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-price",
		Method:      http.MethodPut,
		Path:        "/prices",
		Summary:     "Add or replace a reference price",
		Description: "Stores a new price under the normalized brand_model key.",
		Tags:        []string{"prices"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Upsert)

	huma.Register(api, huma.Operation{
		OperationID: "price-stats",
		Method:      http.MethodGet,
		Path:        "/prices/stats",
		Summary:     "Price database statistics",
		Description: "Returns the number of products by category and brand.",
		Tags:        []string{"prices"},
	}, h.Stats)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-price",
		Method:        http.MethodDelete,
		Path:          "/prices/{brand}/{model}",
		Summary:       "Delete a reference price",
		Description:   "Removes the price database entry for a brand and model.",
		Tags:          []string{"prices"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)
}
