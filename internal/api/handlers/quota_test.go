package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoflow/meli-gateway/internal/api/handlers"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

func TestQuotaHandler_Get(t *testing.T) {
	t.Parallel()

	limiter := meli.NewRateLimiter(100, 100, 10)
	require.NoError(t, limiter.Wait(context.Background()))
	require.NoError(t, limiter.Wait(context.Background()))

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(limiter))

	resp := api.Get("/meli/quota")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"daily_limit":10`)
	assert.Contains(t, body, `"daily_used":2`)
	assert.Contains(t, body, `"remaining":8`)
	assert.Contains(t, body, `"reset_at"`)
}

func TestQuotaHandler_NoLimiterConfigured(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(nil))

	resp := api.Get("/meli/quota")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"daily_limit":0`)
}
