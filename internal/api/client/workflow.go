package client

import (
	"context"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
)

// WorkflowRequest is the input of the full inspection workflow.
type WorkflowRequest struct {
	ProductName     string         `json:"product_name"`
	ProductType     string         `json:"product_type"`
	UsageYears      float64        `json:"usage_years,omitempty"`
	AnalysisResults map[string]any `json:"analysis_results"`
}

// QuickPriceRequest prices a product assuming good condition.
type QuickPriceRequest struct {
	ProductName string  `json:"product_name"`
	ProductType string  `json:"product_type,omitempty"`
	UsageYears  float64 `json:"usage_years,omitempty"`
}

// CVToPricing runs the full workflow for an inspected item.
func (c *Client) CVToPricing(ctx context.Context, req *WorkflowRequest) (*engine.WorkflowResult, error) {
	var out engine.WorkflowResult
	if err := c.post(ctx, "/cv-to-pricing", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PricingOnly returns a quick price without inspection.
func (c *Client) PricingOnly(ctx context.Context, req *QuickPriceRequest) (*engine.PricingOnlyResult, error) {
	var out engine.PricingOnlyResult
	if err := c.post(ctx, "/pricing-only", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
