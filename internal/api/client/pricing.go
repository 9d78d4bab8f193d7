package client

import (
	"context"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/validate"
)

// PriceRequest identifies a product and its condition record.
type PriceRequest struct {
	Brand          string         `json:"brand,omitempty"`
	Model          string         `json:"model,omitempty"`
	Category       string         `json:"category,omitempty"`
	CVOutput       map[string]any `json:"cv_output"`
	ReferencePrice *float64       `json:"reference_price,omitempty"`
}

// ExplainRequest asks for a price justification.
type ExplainRequest struct {
	PriceRequest
	PricingData map[string]any `json:"pricing_data,omitempty"`
	Format      string         `json:"format,omitempty"`
}

// ReportRequest asks for a markdown pricing report.
type ReportRequest struct {
	PriceRequest
	UseLLM bool `json:"use_llm,omitempty"`
}

// Product identifies a product for search and specification lookup.
type Product struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Category string `json:"category,omitempty"`
}

// SearchResult is a live web price search result.
type SearchResult struct {
	Status   string              `json:"status"`
	Brand    string              `json:"brand"`
	Model    string              `json:"model"`
	Category string              `json:"category,omitempty"`
	Price    float64             `json:"price"`
	Currency string              `json:"currency"`
	Source   string              `json:"source"`
	Market   *domain.MarketStats `json:"market,omitempty"`
}

// Health is the service health report.
type Health struct {
	Status   string          `json:"status"`
	Service  string          `json:"service"`
	Tiers    []string        `json:"tiers"`
	Features engine.Features `json:"features"`
}

// CalculatePrice prices a used item.
func (c *Client) CalculatePrice(ctx context.Context, req *PriceRequest) (*domain.PricingResult, error) {
	var out domain.PricingResult
	if err := c.post(ctx, "/calculate-price", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Explain renders a price justification.
func (c *Client) Explain(ctx context.Context, req *ExplainRequest) (*engine.Explanation, error) {
	var out engine.Explanation
	if err := c.post(ctx, "/generate-explanation", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report writes a markdown pricing report.
func (c *Client) Report(ctx context.Context, req *ReportRequest) (*engine.Report, error) {
	var out engine.Report
	if err := c.post(ctx, "/generate-report", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateCV checks a condition record without pricing it.
func (c *Client) ValidateCV(ctx context.Context, record map[string]any) (*validate.Result, error) {
	var out validate.Result
	if err := c.post(ctx, "/validate-cv-output", record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPrice runs a live web price search.
func (c *Client) SearchPrice(ctx context.Context, p *Product) (*SearchResult, error) {
	var out SearchResult
	if err := c.post(ctx, "/search-price", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractSpecs looks up product specifications.
func (c *Client) ExtractSpecs(ctx context.Context, p *Product) (*domain.ProductSpecs, error) {
	var out domain.ProductSpecs
	if err := c.post(ctx, "/extract-specs", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health returns the service health report.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
