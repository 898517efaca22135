package meli

import (
	"context"
	"encoding/json"
)

// MarketplaceClient is the operation surface handlers depend on. *Client is
// the production implementation; tests substitute a generated mock.
type MarketplaceClient interface {
	SiteID() string

	SearchCategories(ctx context.Context, shopID, productName string) (*CategorySearchResult, error)
	CategoryAttributes(ctx context.Context, shopID, categoryID string) (*CategoryAttributesResult, error)
	CategoryTree(ctx context.Context, shopID string, req TreeRequest) (*CategoryTree, error)

	UploadImage(ctx context.Context, shopID, imageData string) (*ImageUploadResult, error)
	CreateProduct(ctx context.Context, shopID string, product json.RawMessage) (*ProductResult, error)
	VerifyProduct(ctx context.Context, shopID, itemID string) (*ProductResult, error)
	UpdateProduct(ctx context.Context, shopID, itemID string, updateData map[string]json.RawMessage) (*ProductResult, error)

	ListSizeCharts(ctx context.Context, shopID string, limit, offset int) (*SizeChartList, error)
	GetSizeChart(ctx context.Context, shopID, chartID string) (*SizeChartResult, error)
	CreateSizeChart(ctx context.Context, shopID string, chart SizeChartPayload) (*SizeChartResult, error)
	AssociateSizeChart(ctx context.Context, shopID, itemID, chartID string) (*AssociationResult, error)
	DomainRequiredAttributes(ctx context.Context, domainID, siteID string) (*DomainRequiredAttributesResult, error)
	SizeChartTemplate(ctx context.Context, req TemplateRequest) (*SizeChartTemplate, error)
	CreateSimpleSizeChart(ctx context.Context, req SimpleSizeChartRequest) (*SimpleSizeChartResult, error)
}

var _ MarketplaceClient = (*Client)(nil)
