package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

// ImageHandler handles picture uploads.
type ImageHandler struct {
	client meli.MarketplaceClient
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(client meli.MarketplaceClient) *ImageHandler {
	return &ImageHandler{client: client}
}

// UploadImageInput is the request body for the image upload endpoint.
// The image field accepts a public URL, a server-local file path, or a
// base64-encoded payload.
type UploadImageInput struct {
	Body struct {
		ShopID string `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		Image  string `json:"image" minLength:"1" doc:"Image URL, file path, or base64 payload"`
	}
}

// UploadImageOutput is the enveloped response for the image upload endpoint.
type UploadImageOutput struct {
	Body struct {
		MetaData respond.Meta    `json:"metaData"`
		Data     json.RawMessage `json:"data"`
	}
}

// Upload pushes a picture to the marketplace and returns its descriptor.
func (h *ImageHandler) Upload(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error) {
	result, err := h.client.UploadImage(ctx, input.Body.ShopID, input.Body.Image)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &UploadImageOutput{}
	out.Body.MetaData = respond.Created("image uploaded")
	out.Body.Data = result.Image
	return out, nil
}

// RegisterImageRoutes registers the image endpoint with the Huma API.
func RegisterImageRoutes(api huma.API, h *ImageHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-image",
		Method:        http.MethodPost,
		Path:          "/meli/products/image",
		Summary:       "Upload a product picture",
		Description:   "Accepts a URL, file path, or base64 payload and uploads it to the marketplace.",
		Tags:          []string{"products"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.Upload)
}
