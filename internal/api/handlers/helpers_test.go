package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	storeMocks "github.com/aliaa039/Dynamic-Pricing-Justification/internal/store/mocks"
	domain "github.com/aliaa039/Dynamic-Pricing-Justification/pkg/types"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...engine.EngineOption) (*engine.Engine, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	base := []engine.EngineOption{
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		engine.WithClock(func() time.Time { return fixedNow }),
	}
	return engine.NewEngine(ms, append(base, opts...)...), ms
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v), resp.Body.String())
	return v
}

// stripSchema drops the $schema link huma adds to response bodies.
func stripSchema(t *testing.T, body []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m), string(body))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

func iphoneRecord() *domain.PriceRecord {
	return &domain.PriceRecord{
		Key:      "apple_iphone_13",
		Brand:    "Apple",
		Model:    "iPhone 13",
		Price:    20000,
		Currency: "EGP",
		Source:   "Manual",
		Category: "phone",
	}
}

func goodCVOutput() map[string]any {
	return map[string]any{
		"overall_condition": "good",
		"condition_score":   7.5,
		"usage_years":       1,
		"detected_issues":   []any{},
	}
}
