package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPPanicsTotal)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, PriceResolutionsTotal)
	assert.NotNil(t, PriceNotFoundTotal)
	assert.NotNil(t, DiscountPercentage)
	assert.NotNil(t, WorkflowDuration)
	assert.NotNil(t, CacheEvictionsTotal)
	assert.NotNil(t, CachePurgeLastRunTimestamp)
	assert.NotNil(t, SearchAPICallsTotal)
	assert.NotNil(t, SearchDailyUsage)
	assert.NotNil(t, SearchDailyLimitHits)
	assert.NotNil(t, SearchResultsExtracted)
	assert.NotNil(t, ReportsTotal)
	assert.NotNil(t, SpecsExtractionsTotal)
}

func TestPriceResolutionsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := PriceResolutionsTotal.WithLabelValues("metrics_test_tier", "hit")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.001)
}
