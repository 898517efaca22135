package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

// ProductHandler handles listing creation, verification, and updates.
type ProductHandler struct {
	client meli.MarketplaceClient
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(client meli.MarketplaceClient) *ProductHandler {
	return &ProductHandler{client: client}
}

// CreateProductInput is the request body for the product creation endpoint.
// The product document is passed through to the marketplace unmodified.
type CreateProductInput struct {
	Body struct {
		ShopID  string          `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		Product json.RawMessage `json:"product" doc:"Marketplace item document, forwarded as-is"`
	}
}

// ProductOutput is the enveloped response shared by the product endpoints.
type ProductOutput struct {
	Body struct {
		MetaData respond.Meta    `json:"metaData"`
		Data     json.RawMessage `json:"data"`
	}
}

// Create publishes a new listing.
func (h *ProductHandler) Create(ctx context.Context, input *CreateProductInput) (*ProductOutput, error) {
	result, err := h.client.CreateProduct(ctx, input.Body.ShopID, input.Body.Product)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &ProductOutput{}
	out.Body.MetaData = respond.Created("product created")
	out.Body.Data = result.Product
	return out, nil
}

// VerifyProductInput is the request body for the product verification endpoint.
type VerifyProductInput struct {
	Body struct {
		ShopID string `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		ItemID string `json:"item_id" minLength:"1" doc:"Marketplace item ID" example:"MLM123456789"`
	}
}

// Verify fetches a listing to confirm it exists and returns its document.
func (h *ProductHandler) Verify(ctx context.Context, input *VerifyProductInput) (*ProductOutput, error) {
	result, err := h.client.VerifyProduct(ctx, input.Body.ShopID, input.Body.ItemID)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &ProductOutput{}
	out.Body.MetaData = respond.OK("product verified")
	out.Body.Data = result.Product
	return out, nil
}

// UpdateProductInput is the request body for the product update endpoint.
// Only the fields present in update_data are sent upstream.
type UpdateProductInput struct {
	Body struct {
		ShopID     string                     `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		ItemID     string                     `json:"item_id" minLength:"1" doc:"Marketplace item ID" example:"MLM123456789"`
		UpdateData map[string]json.RawMessage `json:"update_data" doc:"Partial item document; present fields are updated"`
	}
}

// Update applies a partial update to an existing listing.
func (h *ProductHandler) Update(ctx context.Context, input *UpdateProductInput) (*ProductOutput, error) {
	result, err := h.client.UpdateProduct(ctx, input.Body.ShopID, input.Body.ItemID, input.Body.UpdateData)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &ProductOutput{}
	out.Body.MetaData = respond.OK("product updated")
	out.Body.Data = result.Product
	return out, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/meli/products",
		Summary:       "Create a listing",
		Description:   "Forwards an item document to the marketplace and returns the created listing.",
		Tags:          []string{"products"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "verify-product",
		Method:      http.MethodPost,
		Path:        "/meli/products/verify",
		Summary:     "Verify a listing",
		Description: "Fetches an item to confirm it exists and is visible to the shop's credential.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Verify)

	huma.Register(api, huma.Operation{
		OperationID: "update-product",
		Method:      http.MethodPost,
		Path:        "/meli/products/update",
		Summary:     "Update a listing",
		Description: "Applies a partial update to an existing item.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.Update)
}
