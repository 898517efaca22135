package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mercadoflow/meli-gateway/internal/api/handlers"
	"github.com/mercadoflow/meli-gateway/internal/meli"
	meliMocks "github.com/mercadoflow/meli-gateway/internal/meli/mocks"
)

func imageAPI(t *testing.T, setup func(*meliMocks.MockMarketplaceClient)) humatest.TestAPI {
	t.Helper()

	mc := meliMocks.NewMockMarketplaceClient(t)
	if setup != nil {
		setup(mc)
	}

	_, api := humatest.New(t)
	handlers.RegisterImageRoutes(api, handlers.NewImageHandler(mc))
	return api
}

func TestImageHandler_Upload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*meliMocks.MockMarketplaceClient)
		wantStatus int
		wantBody   string
	}{
		{
			name: "uploads from URL",
			body: map[string]any{
				"shop_id": testShopID,
				"image":   "https://cdn.example.com/shirt.jpg",
			},
			setupMock: func(m *meliMocks.MockMarketplaceClient) {
				m.EXPECT().
					UploadImage(mock.Anything, testShopID, "https://cdn.example.com/shirt.jpg").
					Return(&meli.ImageUploadResult{
						Image: json.RawMessage(`{"id":"pic-123"}`),
					}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"pic-123"`,
		},
		{
			name: "invalid payload maps to 400",
			body: map[string]any{
				"shop_id": testShopID,
				"image":   "!!! not base64 !!!",
			},
			setupMock: func(m *meliMocks.MockMarketplaceClient) {
				m.EXPECT().
					UploadImage(mock.Anything, testShopID, "!!! not base64 !!!").
					Return(nil, &meli.ValidationError{
						Message: "image_data is not a URL, a readable file path, or valid base64",
					}).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"is_error":true`,
		},
		{
			name:       "missing image is rejected",
			body:       map[string]any{"shop_id": testShopID},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := imageAPI(t, tt.setupMock)

			resp := api.Post("/meli/products/image", tt.body)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
