package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

// RulesHandler serves the product validation rules document.
type RulesHandler struct{}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler() *RulesHandler {
	return &RulesHandler{}
}

// RulesOutput is the enveloped response for the rules endpoint.
type RulesOutput struct {
	Body struct {
		MetaData respond.Meta       `json:"metaData"`
		Data     meli.RulesDocument `json:"data"`
	}
}

// Get returns the listing validation rules frontend clients apply before
// submitting a product.
func (*RulesHandler) Get(_ context.Context, _ *struct{}) (*RulesOutput, error) {
	out := &RulesOutput{}
	out.Body.MetaData = respond.OK("rules retrieved")
	out.Body.Data = meli.ProductRules()
	return out, nil
}

// RegisterRulesRoutes registers the rules endpoint with the Huma API.
func RegisterRulesRoutes(api huma.API, h *RulesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "product-rules",
		Method:      http.MethodGet,
		Path:        "/meli/products/rules",
		Summary:     "Get product validation rules",
		Description: "Returns the field and picture rules a listing must satisfy.",
		Tags:        []string{"products"},
	}, h.Get)
}
