package report

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/pricing"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

// Report statuses.
const (
	StatusGenerated = "generated"
	StatusFallback  = "fallback"
)

// Input carries the facts a report is written from.
type Input struct {
	Brand       string
	Model       string
	ProductName string
	Currency    string
	Condition   domain.ConditionSummary
	Pricing     *domain.PricingResult
	Specs       *domain.ProductSpecs
}

func (in Input) withDefaults() Input {
	if in.Brand == "" && in.Pricing != nil {
		in.Brand = in.Pricing.PriceMetadata.Brand
	}
	if in.Model == "" && in.Pricing != nil {
		in.Model = in.Pricing.PriceMetadata.Model
	}
	if in.ProductName == "" {
		in.ProductName = strings.TrimSpace(in.Brand + " " + in.Model)
	}
	if in.Currency == "" && in.Pricing != nil {
		in.Currency = in.Pricing.PriceMetadata.Currency
	}
	if in.Currency == "" {
		in.Currency = pricing.DefaultCurrency
	}
	return in
}

// Generator writes reports through an LLM when one is configured and falls
// back to templates otherwise or on any generation failure.
type Generator struct {
	llm       LLMBackend
	maxTokens int
	log       *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLLM sets the generation backend. A nil backend disables generation.
func WithLLM(b LLMBackend) GeneratorOption {
	return func(g *Generator) {
		g.llm = b
	}
}

// WithMaxTokens sets the token budget per report.
func WithMaxTokens(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxTokens = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator creates a report Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		maxTokens: 2048,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled reports whether an LLM backend is configured.
func (g *Generator) Enabled() bool {
	return g.llm != nil
}

// Backend returns the configured backend name, or "none".
func (g *Generator) Backend() string {
	if g.llm == nil {
		return "none"
	}
	return g.llm.Name()
}

// Markdown writes a markdown pricing report. The boolean reports whether the
// LLM produced it.
func (g *Generator) Markdown(ctx context.Context, in Input) (string, bool) {
	in = in.withDefaults()
	if g.llm != nil && in.Pricing != nil {
		text, err := g.generate(ctx, RenderMarkdownPrompt, in)
		if err == nil {
			return text, true
		}
		g.log.Warn("markdown report generation failed, using template", "error", err)
	}
	return FallbackMarkdown(in), false
}

// Bilingual writes matching English and Arabic reports.
func (g *Generator) Bilingual(ctx context.Context, in Input) domain.BilingualReport {
	in = in.withDefaults()
	if g.llm != nil && in.Pricing != nil {
		text, err := g.generate(ctx, RenderBilingualPrompt, in)
		if err == nil {
			en, ar := SplitBilingual(text)
			if ar == "" {
				ar = fallbackArabic(in)
			}
			return domain.BilingualReport{English: en, Arabic: ar, Status: StatusGenerated}
		}
		g.log.Warn("bilingual report generation failed, using template", "error", err)
	}
	return domain.BilingualReport{
		English: fallbackEnglish(in),
		Arabic:  fallbackArabic(in),
		Status:  StatusFallback,
	}
}

func (g *Generator) generate(ctx context.Context, prompt func(Input) (string, error), in Input) (string, error) {
	p, err := prompt(in)
	if err != nil {
		return "", err
	}
	resp, err := g.llm.Generate(ctx, GenerateRequest{
		Prompt:      p,
		Temperature: 0.7,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", g.llm.Name(), err)
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", fmt.Errorf("empty report from %s", g.llm.Name())
	}
	return text, nil
}

var (
	englishSection = regexp.MustCompile(`(?s)\[REPORT_EN\](.*?)(?:\[REPORT_AR\]|$)`)
	arabicSection  = regexp.MustCompile(`(?s)\[REPORT_AR\](.*)$`)
)

// SplitBilingual separates generated text on its [REPORT_EN] and [REPORT_AR]
// markers. Without an English marker the whole text is English; a missing
// Arabic section yields "".
func SplitBilingual(text string) (english, arabic string) {
	english = strings.TrimSpace(text)
	if m := englishSection.FindStringSubmatch(text); m != nil {
		english = strings.TrimSpace(m[1])
	} else if i := strings.Index(text, "[REPORT_AR]"); i >= 0 {
		english = strings.TrimSpace(text[:i])
	}
	if m := arabicSection.FindStringSubmatch(text); m != nil {
		arabic = strings.TrimSpace(m[1])
	}
	return english, arabic
}
