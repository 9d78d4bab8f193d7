package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
)

// WorkflowHandler handles the end-to-end pricing workflow.
type WorkflowHandler struct {
	eng *engine.Engine
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(eng *engine.Engine) *WorkflowHandler {
	return &WorkflowHandler{eng: eng}
}

// CVToPricingInput is the request body for the cv-to-pricing endpoint.
type CVToPricingInput struct {
	Body struct {
		ProductName     string         `json:"product_name" minLength:"1" doc:"Brand followed by model" example:"Apple iPhone 13"`
		ProductType     string         `json:"product_type" minLength:"1" doc:"Product category" example:"phone"`
		UsageYears      float64        `json:"usage_years,omitempty" minimum:"0" doc:"Years the item has been used" example:"1.5"`
		AnalysisResults map[string]any `json:"analysis_results" minProperties:"1" doc:"Vision analysis keyed by view (front, back, ...)"`
	}
}

// CVToPricingOutput is the response for the cv-to-pricing endpoint.
type CVToPricingOutput struct {
	Body engine.WorkflowResult
}

// PricingOnlyInput is the request body for the pricing-only endpoint.
type PricingOnlyInput struct {
	Body struct {
		ProductName string  `json:"product_name" minLength:"1" doc:"Brand followed by model" example:"Apple iPhone 13"`
		ProductType string  `json:"product_type,omitempty" doc:"Product category" example:"phone"`
		UsageYears  float64 `json:"usage_years,omitempty" minimum:"0" doc:"Years the item has been used"`
	}
}

// PricingOnlyOutput is the response for the pricing-only endpoint.
type PricingOnlyOutput struct {
	Body engine.PricingOnlyResult
}

// CVToPricing runs condition evaluation, specs lookup, pricing, price
// validation and bilingual report writing in one call.
func (h *WorkflowHandler) CVToPricing(ctx context.Context, input *CVToPricingInput) (*CVToPricingOutput, error) {
	in := input.Body
	analysis, err := condition.AnalysisFromRecord(in.AnalysisResults)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid analysis_results: " + err.Error())
	}

	result, err := h.eng.PriceItem(ctx, engine.WorkflowRequest{
		ProductName: in.ProductName,
		ProductType: in.ProductType,
		UsageYears:  in.UsageYears,
		Analysis:    analysis,
	})
	if err != nil {
		return nil, workflowError(err, in.ProductName)
	}
	return &CVToPricingOutput{Body: *result}, nil
}

// PricingOnly prices a product assuming good condition.
func (h *WorkflowHandler) PricingOnly(ctx context.Context, input *PricingOnlyInput) (*PricingOnlyOutput, error) {
	in := input.Body
	result, err := h.eng.PricingOnly(ctx, in.ProductName, in.ProductType, in.UsageYears)
	if err != nil {
		return nil, workflowError(err, in.ProductName)
	}
	return &PricingOnlyOutput{Body: *result}, nil
}

// RegisterWorkflowRoutes registers workflow endpoints with the Huma API.
func RegisterWorkflowRoutes(api huma.API, h *WorkflowHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "cv-to-pricing",
		Method:      http.MethodPost,
		Path:        "/cv-to-pricing",
		Summary:     "Price an inspected item",
		Description: "Evaluates the vision analysis, looks up specifications, prices the item, " +
			"sanity checks the price and writes an English and Arabic report.",
		Tags:   []string{"workflow"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.CVToPricing)

	huma.Register(api, huma.Operation{
		OperationID: "pricing-only",
		Method:      http.MethodPost,
		Path:        "/pricing-only",
		Summary:     "Quick price without inspection",
		Description: "Prices the product assuming good condition with no detected issues.",
		Tags:        []string{"workflow"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.PricingOnly)
}

func workflowError(err error, productName string) error {
	switch {
	case errors.Is(err, pricing.ErrPriceNotFound):
		return &WorkflowNotFoundError{
			Success: false,
			Code:    "price_not_found",
			Message: "Could not find a price for " + productName + " in the database or online",
		}
	case errors.Is(err, pricing.ErrInvalidRequest):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("processing failed: " + err.Error())
	}
}
