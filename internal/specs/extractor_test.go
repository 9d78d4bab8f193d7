package specs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/search"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/specs"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/specs/mocks"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/logger"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
	reportmocks "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report/mocks"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	searcher := mocks.NewMockSearcher(t)
	searcher.EXPECT().
		Organic(mock.Anything, mock.MatchedBy(func(q string) bool {
			return strings.HasPrefix(q, "Samsung Galaxy S21 full technical specifications")
		}), 5).
		Return([]search.OrganicResult{
			{Title: "Galaxy S21 specs", Snippet: "6.2 inch"},
			{Title: "S21 review", Snippet: "Exynos 2100"},
		}, nil).
		Once()

	llm := reportmocks.NewMockLLMBackend(t)
	llm.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r report.GenerateRequest) bool {
			return r.Format == report.FormatJSON &&
				strings.Contains(r.Prompt, "Galaxy S21 specs: 6.2 inch S21 review: Exynos 2100") &&
				strings.Contains(r.Prompt, "'Display', 'Processor', 'RAM', 'Storage', 'Battery', 'Camera'")
		})).
		Return(report.GenerateResponse{Content: "```json\n{\"Display\": \"6.2 inch\", \"RAM\": \"8GB\"}\n```"}, nil).
		Once()

	got := specs.NewExtractor(searcher, llm, logger.Discard()).Extract(context.Background(), "Samsung", "Galaxy S21", "")
	assert.Equal(t, domain.SpecsExtracted, got.ExtractionStatus)
	assert.Equal(t, "Samsung Galaxy S21", got.ProductName)
	assert.Equal(t, map[string]string{"Display": "6.2 inch", "RAM": "8GB"}, got.Specifications)
}

func TestExtractor_Failures(t *testing.T) {
	t.Parallel()

	placeholder := map[string]string{specs.PlaceholderKey: specs.PlaceholderValue}

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		e := specs.NewExtractor(nil, nil, logger.Discard())
		assert.False(t, e.Enabled())
		got := e.Extract(context.Background(), "Apple", "iPhone 13", "")
		assert.Equal(t, domain.SpecsFailed, got.ExtractionStatus)
		assert.Equal(t, placeholder, got.Specifications)
		assert.Equal(t, "Apple iPhone 13", got.ProductName)
	})

	t.Run("search error", func(t *testing.T) {
		t.Parallel()
		searcher := mocks.NewMockSearcher(t)
		searcher.EXPECT().Organic(mock.Anything, mock.Anything, mock.Anything).Return(nil, search.ErrDailyLimitReached).Once()
		got := specs.NewExtractor(searcher, reportmocks.NewMockLLMBackend(t), logger.Discard()).
			Extract(context.Background(), "Apple", "iPhone 13", "")
		assert.Equal(t, placeholder, got.Specifications)
	})

	t.Run("no search results", func(t *testing.T) {
		t.Parallel()
		searcher := mocks.NewMockSearcher(t)
		searcher.EXPECT().Organic(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
		got := specs.NewExtractor(searcher, reportmocks.NewMockLLMBackend(t), logger.Discard()).
			Extract(context.Background(), "Apple", "iPhone 13", "")
		assert.Equal(t, domain.SpecsFailed, got.ExtractionStatus)
	})

	t.Run("llm error", func(t *testing.T) {
		t.Parallel()
		searcher := mocks.NewMockSearcher(t)
		searcher.EXPECT().Organic(mock.Anything, mock.Anything, mock.Anything).
			Return([]search.OrganicResult{{Title: "x"}}, nil).Once()
		llm := reportmocks.NewMockLLMBackend(t)
		llm.EXPECT().Generate(mock.Anything, mock.Anything).Return(report.GenerateResponse{}, errors.New("503")).Once()
		got := specs.NewExtractor(searcher, llm, logger.Discard()).Extract(context.Background(), "Apple", "iPhone 13", "")
		assert.Equal(t, placeholder, got.Specifications)
	})
}

func TestParseSpecs(t *testing.T) {
	t.Parallel()

	got, err := specs.ParseSpecs(`{"Display": "6.1", "Camera": {"main": "12MP"}, "Battery": 3240, "RAM": null}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Display": "6.1",
		"Camera":  `{"main":"12MP"}`,
		"Battery": "3240",
	}, got)

	_, err = specs.ParseSpecs("Sorry, I cannot help.")
	require.Error(t, err)

	_, err = specs.ParseSpecs("{}")
	require.Error(t, err)
}
