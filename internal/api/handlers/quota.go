package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

// QuotaHandler exposes the marketplace call budget.
type QuotaHandler struct {
	rl *meli.RateLimiter
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(rl *meli.RateLimiter) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaData reports the daily budget state.
type QuotaData struct {
	DailyLimit int64     `json:"daily_limit" example:"10000" doc:"Configured daily API call limit"`
	DailyUsed  int64     `json:"daily_used" example:"142" doc:"Calls used in the current 24-hour window"`
	Remaining  int64     `json:"remaining" example:"9858" doc:"Calls remaining in the current window"`
	ResetAt    time.Time `json:"reset_at" doc:"When the current 24-hour window expires"`
}

// QuotaOutput is the enveloped response for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		MetaData respond.Meta `json:"metaData"`
		Data     QuotaData    `json:"data"`
	}
}

// Get returns the current marketplace API quota status.
func (h *QuotaHandler) Get(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	out := &QuotaOutput{}
	out.Body.MetaData = respond.OK("quota retrieved")
	if h.rl == nil {
		return out, nil
	}

	out.Body.Data = QuotaData{
		DailyLimit: h.rl.MaxDaily(),
		DailyUsed:  h.rl.DailyCount(),
		Remaining:  h.rl.Remaining(),
		ResetAt:    h.rl.ResetAt(),
	}
	return out, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/meli/quota",
		Summary:     "Get marketplace API quota status",
		Description: "Returns daily call usage, remaining budget, and window reset time.",
		Tags:        []string{"meta"},
	}, h.Get)
}
