// Package handlers implements HTTP handlers for the meli-gateway API.
package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// CategoryHandler handles category discovery requests.
type CategoryHandler struct {
	client meli.MarketplaceClient
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(client meli.MarketplaceClient) *CategoryHandler {
	return &CategoryHandler{client: client}
}

// SuggestInput is the request body for the category suggestion endpoint.
type SuggestInput struct {
	Body struct {
		ShopID      string `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		ProductName string `json:"product_name" minLength:"1" doc:"Product title to classify" example:"Smartphone Samsung Galaxy S24"`
	}
}

// SuggestOutput is the enveloped response for the category suggestion endpoint.
type SuggestOutput struct {
	Body struct {
		MetaData respond.Meta                `json:"metaData"`
		Data     []domain.CategorySuggestion `json:"data"`
	}
}

// Suggest resolves the best marketplace categories for a product title.
func (h *CategoryHandler) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	result, err := h.client.SearchCategories(ctx, input.Body.ShopID, input.Body.ProductName)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &SuggestOutput{}
	out.Body.Data = result.Categories
	if result.Empty() {
		out.Body.Data = []domain.CategorySuggestion{}
		out.Body.MetaData = respond.OK(meli.NoMatchMessage)
		return out, nil
	}
	out.Body.MetaData = respond.OK("categories found")
	return out, nil
}

// AttributesInput is the request body for the category attributes endpoint.
type AttributesInput struct {
	Body struct {
		ShopID     string `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		CategoryID string `json:"category_id" minLength:"1" doc:"Marketplace category ID" example:"MLM1055"`
	}
}

// AttributesData partitions a category's attributes by obligatoriness.
type AttributesData struct {
	CategoryID string                     `json:"category_id"`
	Required   []domain.CategoryAttribute `json:"required_attributes"`
	Optional   []domain.CategoryAttribute `json:"optional_attributes"`
}

// AttributesOutput is the enveloped response for the category attributes endpoint.
type AttributesOutput struct {
	Body struct {
		MetaData respond.Meta   `json:"metaData"`
		Data     AttributesData `json:"data"`
	}
}

// Attributes returns a category's attributes split into required and optional.
func (h *CategoryHandler) Attributes(ctx context.Context, input *AttributesInput) (*AttributesOutput, error) {
	result, err := h.client.CategoryAttributes(ctx, input.Body.ShopID, input.Body.CategoryID)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &AttributesOutput{}
	out.Body.MetaData = respond.OK("attributes retrieved")
	out.Body.Data = AttributesData{
		CategoryID: result.CategoryID,
		Required:   result.Required,
		Optional:   result.Optional,
	}
	return out, nil
}

// TreeInput carries the query parameters for the category tree endpoint.
// max_depth is a free-form string: non-numeric input falls back to the
// default depth rather than failing the request.
type TreeInput struct {
	ShopID           string `query:"shop_id" required:"true" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
	SiteID           string `query:"site_id" doc:"Marketplace site (defaults to the configured site)" example:"MLM"`
	CategoryID       string `query:"category_id" doc:"Root category; omit to expand the site roots" example:"MLM1055"`
	MaxDepth         string `query:"max_depth" doc:"Recursion depth, clamped into [1,5]; non-numeric means 3" example:"3"`
	IncludeAncestors bool   `query:"include_ancestors" doc:"Fetch the named category's path from the site root"`
}

// TreeOutput is the enveloped response for the category tree endpoint.
type TreeOutput struct {
	Body struct {
		MetaData respond.Meta       `json:"metaData"`
		Data     *meli.CategoryTree `json:"data"`
	}
}

// Tree builds a bounded recursive category tree.
func (h *CategoryHandler) Tree(ctx context.Context, input *TreeInput) (*TreeOutput, error) {
	tree, err := h.client.CategoryTree(ctx, input.ShopID, meli.TreeRequest{
		SiteID:           input.SiteID,
		CategoryID:       input.CategoryID,
		MaxDepth:         meli.ParseMaxDepth(input.MaxDepth),
		IncludeAncestors: input.IncludeAncestors,
	})
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &TreeOutput{}
	out.Body.MetaData = respond.OK("category tree built")
	out.Body.Data = tree
	return out, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-categories",
		Method:      http.MethodPost,
		Path:        "/meli/products/category",
		Summary:     "Suggest categories for a product title",
		Description: "Queries marketplace domain discovery and returns the best category matches.",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Suggest)

	huma.Register(api, huma.Operation{
		OperationID: "category-attributes",
		Method:      http.MethodPost,
		Path:        "/meli/products/category/attributes",
		Summary:     "List category attributes",
		Description: "Returns a category's attributes partitioned into required and optional.",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Attributes)

	huma.Register(api, huma.Operation{
		OperationID: "category-tree",
		Method:      http.MethodGet,
		Path:        "/meli/products/category/tree",
		Summary:     "Build a category tree",
		Description: "Recursively expands a category (or the site roots) to a bounded depth.",
		Tags:        []string{"categories"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Tree)
}
