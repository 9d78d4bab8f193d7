// Package specs looks up technical specifications for a product by feeding
// web search snippets to an LLM.
package specs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/metrics"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/search"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

const (
	searchResults  = 5
	contextResults = 4
)

// PlaceholderKey and PlaceholderValue make up the specification map returned
// when extraction fails.
const (
	PlaceholderKey   = "Status"
	PlaceholderValue = "Live data search limited"
)

// Fields are the specification keys the LLM is asked for.
var Fields = []string{"Display", "Processor", "RAM", "Storage", "Battery", "Camera"}

var errNoSnippets = errors.New("search returned no results")

// Searcher runs a web search.
type Searcher interface {
	Organic(ctx context.Context, query string, num int) ([]search.OrganicResult, error)
}

// Extractor combines a Searcher and an LLM backend.
type Extractor struct {
	searcher Searcher
	llm      report.LLMBackend
	log      *slog.Logger
}

// NewExtractor creates an Extractor. Either collaborator may be nil, in which
// case every lookup returns the placeholder.
func NewExtractor(searcher Searcher, llm report.LLMBackend, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{searcher: searcher, llm: llm, log: log}
}

// Enabled reports whether both collaborators are configured.
func (e *Extractor) Enabled() bool {
	return e.searcher != nil && e.llm != nil
}

// Extract returns the specifications of brand/model. It never fails: any
// problem yields the placeholder with status failed.
func (e *Extractor) Extract(ctx context.Context, brand, model, category string) domain.ProductSpecs {
	name := strings.TrimSpace(brand + " " + model)

	specs, err := e.extract(ctx, brand, model, category)
	if err != nil {
		e.log.Warn("specs extraction failed", "product", name, "error", err)
		metrics.SpecsExtractionsTotal.WithLabelValues(domain.SpecsFailed).Inc()
		return Placeholder(name)
	}

	metrics.SpecsExtractionsTotal.WithLabelValues(domain.SpecsExtracted).Inc()
	return domain.ProductSpecs{
		ProductName:      name,
		Specifications:   specs,
		ExtractionStatus: domain.SpecsExtracted,
	}
}

// Placeholder is the failed-extraction result for a product.
func Placeholder(name string) domain.ProductSpecs {
	return domain.ProductSpecs{
		ProductName:      name,
		Specifications:   map[string]string{PlaceholderKey: PlaceholderValue},
		ExtractionStatus: domain.SpecsFailed,
	}
}

func (e *Extractor) extract(ctx context.Context, brand, model, category string) (map[string]string, error) {
	if !e.Enabled() {
		return nil, errors.New("specs lookup not configured")
	}

	query := fmt.Sprintf("%s %s full technical specifications display processor camera battery", brand, model)
	if category != "" {
		query += " " + category
	}
	results, err := e.searcher.Organic(ctx, query, searchResults)
	if err != nil {
		return nil, fmt.Errorf("searching specs: %w", err)
	}
	if len(results) == 0 {
		return nil, errNoSnippets
	}

	snippets := make([]string, 0, contextResults)
	for _, r := range results[:min(len(results), contextResults)] {
		snippets = append(snippets, r.Title+": "+r.Snippet)
	}

	resp, err := e.llm.Generate(ctx, report.GenerateRequest{
		Prompt:      renderPrompt(brand, model, strings.Join(snippets, " ")),
		Format:      report.FormatJSON,
		Temperature: 0.1,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("calling LLM: %w", err)
	}

	return ParseSpecs(resp.Content)
}

func renderPrompt(brand, model, text string) string {
	keys := make([]string, len(Fields))
	for i, f := range Fields {
		keys[i] = "'" + f + "'"
	}
	return fmt.Sprintf(`Extract full tech specs for %s %s from text: %s.
Return ONLY a valid JSON object with keys: %s.
Be very detailed. No markdown formatting or backticks.`, brand, model, text, strings.Join(keys, ", "))
}

var fences = regexp.MustCompile("```(?:json)?")

// ParseSpecs decodes an LLM JSON answer, tolerating markdown code fences.
// Non-string values are rendered as compact JSON.
func ParseSpecs(raw string) (map[string]string, error) {
	clean := strings.TrimSpace(fences.ReplaceAllString(raw, ""))

	var decoded map[string]any
	if err := json.Unmarshal([]byte(clean), &decoded); err != nil {
		return nil, fmt.Errorf("parsing specs JSON: %w", err)
	}
	if len(decoded) == 0 {
		return nil, errors.New("empty specs object")
	}

	specs := make(map[string]string, len(decoded))
	for k, v := range decoded {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			specs[k] = val
		default:
			b, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("encoding spec %q: %w", k, err)
			}
			specs[k] = string(b)
		}
	}
	return specs, nil
}
