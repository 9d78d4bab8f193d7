// Package handlers implements HTTP handlers for the pricing justification API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/condition"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/validate"
)

// PricingHandler handles price calculation, explanation and report
// endpoints.
type PricingHandler struct {
	eng *engine.Engine
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(eng *engine.Engine) *PricingHandler {
	return &PricingHandler{eng: eng}
}

// --- Input/Output types ---

// CalculatePriceInput is the request body for the calculate-price endpoint.
type CalculatePriceInput struct {
	Body struct {
		Brand          string         `json:"brand" minLength:"1" doc:"Product brand" example:"Apple"`
		Model          string         `json:"model" minLength:"1" doc:"Product model" example:"iPhone 13"`
		CVOutput       map[string]any `json:"cv_output" doc:"Summarized condition record"`
		ReferencePrice *float64       `json:"reference_price,omitempty" exclusiveMinimum:"0" doc:"Manual new price; skips every lookup tier" example:"20000"`
		Category       string         `json:"category,omitempty" doc:"Product category" example:"phone"`
	}
}

// CalculatePriceOutput is the response for the calculate-price endpoint.
type CalculatePriceOutput struct {
	Body domain.PricingResult
}

// ExplainInput is the request body for the generate-explanation endpoint.
type ExplainInput struct {
	Body struct {
		CVOutput       map[string]any `json:"cv_output" doc:"Summarized condition record"`
		PricingData    map[string]any `json:"pricing_data,omitempty" doc:"Previously computed pricing; computed when omitted"`
		Brand          string         `json:"brand,omitempty" doc:"Product brand" example:"Canon"`
		Model          string         `json:"model,omitempty" doc:"Product model" example:"EOS 80D"`
		ReferencePrice *float64       `json:"reference_price,omitempty" exclusiveMinimum:"0" doc:"Manual new price"`
		Category       string         `json:"category,omitempty" doc:"Product category"`
		Format         string         `json:"format,omitempty" enum:"full,short,bullets" default:"full" doc:"Explanation format"`
	}
}

// ExplainOutput is the response for the generate-explanation endpoint.
type ExplainOutput struct {
	Body engine.Explanation
}

// ReportInput is the request body for the generate-report endpoint.
type ReportInput struct {
	Body struct {
		CVOutput       map[string]any `json:"cv_output" doc:"Summarized condition record"`
		Brand          string         `json:"brand" minLength:"1" doc:"Product brand" example:"Samsung"`
		Model          string         `json:"model" minLength:"1" doc:"Product model" example:"Galaxy S21"`
		ReferencePrice *float64       `json:"reference_price,omitempty" exclusiveMinimum:"0" doc:"Manual new price"`
		Category       string         `json:"category,omitempty" doc:"Product category"`
		UseLLM         bool           `json:"use_llm,omitempty" doc:"Write the report with the configured LLM"`
	}
}

// ReportOutput is the response for the generate-report endpoint.
type ReportOutput struct {
	Body engine.Report
}

// ValidateCVInput is a raw condition record to validate.
type ValidateCVInput struct {
	Body map[string]any
}

// ValidateCVOutput is the validation result.
type ValidateCVOutput struct {
	Body validate.Result
}

// --- Handlers ---

// CalculatePrice resolves a reference price and depreciates it by condition.
func (h *PricingHandler) CalculatePrice(
	ctx context.Context,
	input *CalculatePriceInput,
) (*CalculatePriceOutput, error) {
	in := input.Body
	result, err := h.eng.CalculatePrice(ctx, engine.PriceRequest{
		Brand:          in.Brand,
		Model:          in.Model,
		Category:       in.Category,
		ReferencePrice: in.ReferencePrice,
		Condition:      condition.SummaryFromRecord(in.CVOutput),
	})
	if err != nil {
		return nil, pricingError(err, in.Brand, in.Model)
	}
	return &CalculatePriceOutput{Body: *result}, nil
}

// GenerateExplanation renders a price justification in the requested format.
func (h *PricingHandler) GenerateExplanation(ctx context.Context, input *ExplainInput) (*ExplainOutput, error) {
	in := input.Body
	if res := validate.Condition(in.CVOutput); !res.Valid {
		return nil, validationError("invalid cv_output", "body.cv_output", res)
	}

	req := engine.ExplainRequest{
		PriceRequest: engine.PriceRequest{
			Brand:          orUnknown(in.Brand),
			Model:          orUnknown(in.Model),
			Category:       in.Category,
			ReferencePrice: in.ReferencePrice,
			Condition:      condition.SummaryFromRecord(in.CVOutput),
		},
		Format: in.Format,
	}
	if len(in.PricingData) > 0 {
		if res := validate.Pricing(in.PricingData); !res.Valid {
			return nil, validationError("invalid pricing_data", "body.pricing_data", res)
		}
		priced, err := decodePricing(in.PricingData)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid pricing_data: " + err.Error())
		}
		req.Pricing = priced
	}

	out, err := h.eng.Explain(ctx, req)
	if err != nil {
		return nil, pricingError(err, req.Brand, req.Model)
	}
	return &ExplainOutput{Body: *out}, nil
}

// GenerateReport prices the item and writes a markdown report.
func (h *PricingHandler) GenerateReport(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	in := input.Body
	out, err := h.eng.Report(ctx, engine.ReportRequest{
		PriceRequest: engine.PriceRequest{
			Brand:          in.Brand,
			Model:          in.Model,
			Category:       in.Category,
			ReferencePrice: in.ReferencePrice,
			Condition:      condition.SummaryFromRecord(in.CVOutput),
		},
		UseLLM: in.UseLLM,
	})
	if err != nil {
		return nil, pricingError(err, in.Brand, in.Model)
	}
	return &ReportOutput{Body: *out}, nil
}

// ValidateCV checks a summarized condition record and reports every
// violation.
func (*PricingHandler) ValidateCV(_ context.Context, input *ValidateCVInput) (*ValidateCVOutput, error) {
	return &ValidateCVOutput{Body: validate.Condition(input.Body)}, nil
}

// RegisterPricingRoutes registers pricing endpoints with the Huma API.
func RegisterPricingRoutes(api huma.API, h *PricingHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "calculate-price",
		Method:      http.MethodPost,
		Path:        "/calculate-price",
		Summary:     "Calculate a used price",
		Description: "Resolves a reference new price (manual, database, cache, web search) " +
			"and applies usage, condition and damage depreciation.",
		Tags:   []string{"pricing"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.CalculatePrice)

	huma.Register(api, huma.Operation{
		OperationID: "generate-explanation",
		Method:      http.MethodPost,
		Path:        "/generate-explanation",
		Summary:     "Explain a used price",
		Description: "Renders a full, short or bulleted justification of a used price.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GenerateExplanation)

	huma.Register(api, huma.Operation{
		OperationID: "generate-report",
		Method:      http.MethodPost,
		Path:        "/generate-report",
		Summary:     "Write a pricing report",
		Description: "Prices the item and writes a markdown report, with the LLM when requested and configured.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GenerateReport)

	huma.Register(api, huma.Operation{
		OperationID: "validate-cv-output",
		Method:      http.MethodPost,
		Path:        "/validate-cv-output",
		Summary:     "Validate a condition record",
		Description: "Checks required fields, ranges and vocabularies and lists every violation.",
		Tags:        []string{"pricing"},
	}, h.ValidateCV)
}

func pricingError(err error, brand, model string) error {
	switch {
	case errors.Is(err, pricing.ErrPriceNotFound):
		return newPriceNotFound(brand, model)
	case errors.Is(err, pricing.ErrInvalidRequest):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("pricing failed: " + err.Error())
	}
}

func validationError(msg, location string, res validate.Result) error {
	details := make([]error, len(res.Errors))
	for i, e := range res.Errors {
		details[i] = &huma.ErrorDetail{Message: e, Location: location}
	}
	return huma.Error400BadRequest(msg, details...)
}

func decodePricing(record map[string]any) (*domain.PricingResult, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var p domain.PricingResult
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
