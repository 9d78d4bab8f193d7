package handlers

import (
	"net/http"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// PriceNotFoundError is the 404 body returned when no reference price could
// be resolved. It tells the caller to supply one manually.
type PriceNotFoundError struct {
	Status      string `json:"status" example:"price_not_found"`
	Message     string `json:"message"`
	Instruction string `json:"instruction"`
}

func newPriceNotFound(brand, model string) *PriceNotFoundError {
	return &PriceNotFoundError{
		Status:      "price_not_found",
		Message:     "Price not found for " + brand + " " + model,
		Instruction: "Please provide reference_price manually",
	}
}

func (e *PriceNotFoundError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (*PriceNotFoundError) GetStatus() int { return http.StatusNotFound }

// SearchNotFoundError is the 404 body returned by the web price search.
type SearchNotFoundError struct {
	Status  string `json:"status" example:"not_found"`
	Message string `json:"message"`
}

func (e *SearchNotFoundError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (*SearchNotFoundError) GetStatus() int { return http.StatusNotFound }

// WorkflowNotFoundError is the 404 body of the full workflow.
type WorkflowNotFoundError struct {
	Success bool   `json:"success"`
	Code    string `json:"error" example:"price_not_found"`
	Message string `json:"message"`
}

func (e *WorkflowNotFoundError) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (*WorkflowNotFoundError) GetStatus() int { return http.StatusNotFound }
