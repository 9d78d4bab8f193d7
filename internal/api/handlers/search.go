package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/search"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// SearchHandler handles web price search and specification lookup.
type SearchHandler struct {
	eng *engine.Engine
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(eng *engine.Engine) *SearchHandler {
	return &SearchHandler{eng: eng}
}

// ProductInput identifies a product.
type ProductInput struct {
	Body struct {
		Brand    string `json:"brand" minLength:"1" doc:"Product brand" example:"Samsung"`
		Model    string `json:"model" minLength:"1" doc:"Product model" example:"Galaxy S21"`
		Category string `json:"category,omitempty" doc:"Product category" example:"phone"`
	}
}

// SearchPriceOutput is the response body for the search-price endpoint.
type SearchPriceOutput struct {
	Body struct {
		Status   string              `json:"status" example:"success"`
		Brand    string              `json:"brand"`
		Model    string              `json:"model"`
		Category string              `json:"category,omitempty"`
		Price    float64             `json:"price" doc:"Median price of the priced offers"`
		Currency string              `json:"currency" example:"EGP"`
		Source   string              `json:"source"`
		Market   *domain.MarketStats `json:"market,omitempty"`
	}
}

// ExtractSpecsOutput is the response body for the extract-specs endpoint.
type ExtractSpecsOutput struct {
	Body domain.ProductSpecs
}

// SearchPrice runs a live web price search, bypassing the database and
// cache.
func (h *SearchHandler) SearchPrice(ctx context.Context, input *ProductInput) (*SearchPriceOutput, error) {
	in := input.Body
	quote, err := h.eng.SearchPrice(ctx, in.Brand, in.Model, in.Category)
	switch {
	case errors.Is(err, engine.ErrSearchDisabled):
		return nil, &SearchNotFoundError{Status: "not_found", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return nil, &SearchNotFoundError{
			Status:  "not_found",
			Message: "No prices found for " + in.Brand + " " + in.Model,
		}
	case errors.Is(err, search.ErrDailyLimitReached):
		return nil, huma.Error429TooManyRequests(err.Error())
	case err != nil:
		return nil, huma.Error502BadGateway("price search failed: " + err.Error())
	}

	out := &SearchPriceOutput{}
	out.Body.Status = "success"
	out.Body.Brand = in.Brand
	out.Body.Model = in.Model
	out.Body.Category = in.Category
	out.Body.Price = quote.Price
	out.Body.Currency = quote.Currency
	out.Body.Source = quote.Source
	out.Body.Market = quote.Market
	return out, nil
}

// ExtractSpecs looks up technical specifications. Lookup failures return
// the placeholder result, never an error.
func (h *SearchHandler) ExtractSpecs(ctx context.Context, input *ProductInput) (*ExtractSpecsOutput, error) {
	in := input.Body
	return &ExtractSpecsOutput{Body: h.eng.ExtractSpecs(ctx, in.Brand, in.Model, in.Category)}, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-price",
		Method:      http.MethodPost,
		Path:        "/search-price",
		Summary:     "Search the web for a new price",
		Description: "Searches online stores for the product and returns the median offer price with market statistics.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusBadGateway},
	}, h.SearchPrice)

	huma.Register(api, huma.Operation{
		OperationID: "extract-specs",
		Method:      http.MethodPost,
		Path:        "/extract-specs",
		Summary:     "Look up product specifications",
		Description: "Extracts display, processor, memory, storage, battery and camera specifications from search snippets.",
		Tags:        []string{"search"},
	}, h.ExtractSpecs)
}
