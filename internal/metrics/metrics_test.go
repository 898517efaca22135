package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, MeliAPICallsTotal)
	assert.NotNil(t, MeliAPIErrorsTotal)
	assert.NotNil(t, MeliDailyUsage)
	assert.NotNil(t, MeliDailyLimitHits)
	assert.NotNil(t, TokenRefreshTotal)
	assert.NotNil(t, TokenRefreshFailuresTotal)
	assert.NotNil(t, CategoryTreeNodesVisited)
	assert.NotNil(t, CategoryTreeDuration)
}
