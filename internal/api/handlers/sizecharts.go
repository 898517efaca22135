package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// SizeChartHandler handles size-chart discovery, creation, and association.
type SizeChartHandler struct {
	client meli.MarketplaceClient
}

// NewSizeChartHandler creates a new SizeChartHandler.
func NewSizeChartHandler(client meli.MarketplaceClient) *SizeChartHandler {
	return &SizeChartHandler{client: client}
}

// ListSizeChartsInput carries the query parameters for the chart listing endpoint.
type ListSizeChartsInput struct {
	ShopID string `query:"shop_id" required:"true" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
	Limit  int    `query:"limit" minimum:"1" maximum:"100" doc:"Page size (default 50)" example:"50"`
	Offset int    `query:"offset" minimum:"0" doc:"Page offset" example:"0"`
}

// ListSizeChartsOutput is the enveloped response for the chart listing endpoint.
type ListSizeChartsOutput struct {
	Body struct {
		MetaData   respond.Meta        `json:"metaData"`
		Data       json.RawMessage     `json:"data"`
		Pagination *respond.Pagination `json:"pagination,omitempty"`
	}
}

// List returns the shop owner's size charts, paged.
func (h *SizeChartHandler) List(ctx context.Context, input *ListSizeChartsInput) (*ListSizeChartsOutput, error) {
	result, err := h.client.ListSizeCharts(ctx, input.ShopID, input.Limit, input.Offset)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &ListSizeChartsOutput{}
	out.Body.MetaData = respond.OK("size charts retrieved")
	out.Body.Data = result.SizeCharts
	if result.Paging != nil {
		out.Body.Pagination = &respond.Pagination{
			Total:  result.Paging.Total,
			Limit:  result.Paging.Limit,
			Offset: result.Paging.Offset,
		}
	}
	return out, nil
}

// GetSizeChartInput identifies one chart.
type GetSizeChartInput struct {
	ChartID string `path:"id" doc:"Size chart ID" example:"175642"`
	ShopID  string `query:"shop_id" required:"true" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
}

// SizeChartOutput is the enveloped response shared by single-chart endpoints.
type SizeChartOutput struct {
	Body struct {
		MetaData respond.Meta    `json:"metaData"`
		Data     json.RawMessage `json:"data"`
	}
}

// Get fetches one size chart by ID.
func (h *SizeChartHandler) Get(ctx context.Context, input *GetSizeChartInput) (*SizeChartOutput, error) {
	result, err := h.client.GetSizeChart(ctx, input.ShopID, input.ChartID)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &SizeChartOutput{}
	out.Body.MetaData = respond.OK("size chart retrieved")
	out.Body.Data = result.SizeChart
	return out, nil
}

// CreateSizeChartInput is the request body for the raw chart creation endpoint.
type CreateSizeChartInput struct {
	Body struct {
		ShopID string                `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		Chart  meli.SizeChartPayload `json:"chart" doc:"Marketplace chart document in upstream schema"`
	}
}

// Create submits a chart document in the marketplace's native schema.
func (h *SizeChartHandler) Create(ctx context.Context, input *CreateSizeChartInput) (*SizeChartOutput, error) {
	result, err := h.client.CreateSizeChart(ctx, input.Body.ShopID, input.Body.Chart)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &SizeChartOutput{}
	out.Body.MetaData = respond.Created("size chart created")
	out.Body.Data = result.SizeChart
	return out, nil
}

// SimpleSizeChartInput is the request body for the simplified creation endpoint.
type SimpleSizeChartInput struct {
	Body struct {
		ShopID          string                 `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		DomainID        string                 `json:"domain_id" minLength:"1" doc:"Marketplace domain" example:"SNEAKERS"`
		SiteID          string                 `json:"site_id,omitempty" doc:"Marketplace site (defaults to the configured site)" example:"MLM"`
		ChartName       string                 `json:"chart_name" minLength:"1" doc:"Chart display name"`
		Brand           string                 `json:"brand" minLength:"1" doc:"Brand attribute value"`
		Gender          string                 `json:"gender" minLength:"1" doc:"Gender attribute value"`
		MainAttributeID string                 `json:"main_attribute_id" minLength:"1" doc:"Attribute used as the row key" example:"SIZE"`
		Rows            []domain.SimpleSizeRow `json:"rows" minItems:"1" doc:"Measurement rows keyed by size"`
	}
}

// SimpleSizeChartOutput is the enveloped response for the simplified creation endpoint.
type SimpleSizeChartOutput struct {
	Body struct {
		MetaData respond.Meta                `json:"metaData"`
		Data     *meli.SimpleSizeChartResult `json:"data"`
	}
}

// CreateSimple translates a flat chart description into the marketplace
// schema and creates it.
func (h *SizeChartHandler) CreateSimple(ctx context.Context, input *SimpleSizeChartInput) (*SimpleSizeChartOutput, error) {
	result, err := h.client.CreateSimpleSizeChart(ctx, meli.SimpleSizeChartRequest{
		ShopID:          input.Body.ShopID,
		DomainID:        input.Body.DomainID,
		SiteID:          input.Body.SiteID,
		ChartName:       input.Body.ChartName,
		Brand:           input.Body.Brand,
		Gender:          input.Body.Gender,
		MainAttributeID: input.Body.MainAttributeID,
		Rows:            input.Body.Rows,
	})
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &SimpleSizeChartOutput{}
	out.Body.MetaData = respond.Created(result.Message)
	out.Body.Data = result
	return out, nil
}

// TemplateInput is the request body for the template endpoint.
type TemplateInput struct {
	Body struct {
		ShopID     string                   `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
		DomainID   string                   `json:"domain_id" minLength:"1" doc:"Marketplace domain" example:"SNEAKERS"`
		SiteID     string                   `json:"site_id,omitempty" doc:"Marketplace site (defaults to the configured site)" example:"MLM"`
		Attributes []meli.TemplateAttribute `json:"attributes" minItems:"1" doc:"Pre-resolved required attribute values"`
	}
}

// TemplateOutput is the enveloped response for the template endpoint.
type TemplateOutput struct {
	Body struct {
		MetaData respond.Meta            `json:"metaData"`
		Data     *meli.SizeChartTemplate `json:"data"`
	}
}

// Template distills a domain's grid structure into an editable template.
func (h *SizeChartHandler) Template(ctx context.Context, input *TemplateInput) (*TemplateOutput, error) {
	result, err := h.client.SizeChartTemplate(ctx, meli.TemplateRequest{
		ShopID:     input.Body.ShopID,
		DomainID:   input.Body.DomainID,
		SiteID:     input.Body.SiteID,
		Attributes: input.Body.Attributes,
	})
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &TemplateOutput{}
	out.Body.MetaData = respond.OK("template retrieved")
	out.Body.Data = result
	return out, nil
}

// RequiredAttributesInput identifies the domain to inspect.
type RequiredAttributesInput struct {
	DomainID string `path:"domain_id" doc:"Marketplace domain" example:"SNEAKERS"`
	SiteID   string `query:"site_id" doc:"Marketplace site (defaults to the configured site)" example:"MLM"`
}

// RequiredAttributesOutput is the enveloped response for the required attributes endpoint.
type RequiredAttributesOutput struct {
	Body struct {
		MetaData respond.Meta                         `json:"metaData"`
		Data     *meli.DomainRequiredAttributesResult `json:"data"`
	}
}

// RequiredAttributes lists the attributes a domain demands before its
// size-chart template can be requested.
func (h *SizeChartHandler) RequiredAttributes(ctx context.Context, input *RequiredAttributesInput) (*RequiredAttributesOutput, error) {
	result, err := h.client.DomainRequiredAttributes(ctx, input.DomainID, input.SiteID)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &RequiredAttributesOutput{}
	out.Body.MetaData = respond.OK("required attributes retrieved")
	out.Body.Data = result
	return out, nil
}

// AssociateInput binds a chart to an item.
type AssociateInput struct {
	ItemID  string `path:"item_id" doc:"Marketplace item ID" example:"MLM123456789"`
	ChartID string `path:"size_chart_id" doc:"Size chart ID" example:"175642"`
	Body    struct {
		ShopID string `json:"shop_id" minLength:"1" doc:"Shop whose credential is used" example:"126526290"`
	}
}

// AssociateOutput is the enveloped response for the association endpoint.
type AssociateOutput struct {
	Body struct {
		MetaData respond.Meta            `json:"metaData"`
		Data     *meli.AssociationResult `json:"data"`
	}
}

// Associate attaches an existing size chart to a listing.
func (h *SizeChartHandler) Associate(ctx context.Context, input *AssociateInput) (*AssociateOutput, error) {
	result, err := h.client.AssociateSizeChart(ctx, input.Body.ShopID, input.ItemID, input.ChartID)
	if err != nil {
		return nil, respond.Error(err)
	}

	out := &AssociateOutput{}
	out.Body.MetaData = respond.OK("size chart associated")
	out.Body.Data = result
	return out, nil
}

// RegisterSizeChartRoutes registers size-chart endpoints with the Huma API.
func RegisterSizeChartRoutes(api huma.API, h *SizeChartHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-size-charts",
		Method:      http.MethodGet,
		Path:        "/meli/products/size_charts",
		Summary:     "List size charts",
		Description: "Returns the shop owner's size charts with upstream paging.",
		Tags:        []string{"size-charts"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-size-chart",
		Method:        http.MethodPost,
		Path:          "/meli/products/size_charts",
		Summary:       "Create a size chart",
		Description:   "Submits a chart document in the marketplace's native schema.",
		Tags:          []string{"size-charts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID:   "create-simple-size-chart",
		Method:        http.MethodPost,
		Path:          "/meli/products/size_charts/simple",
		Summary:       "Create a size chart from a flat description",
		Description:   "Translates name/brand/gender plus measurement rows into the marketplace schema.",
		Tags:          []string{"size-charts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.CreateSimple)

	huma.Register(api, huma.Operation{
		OperationID: "size-chart-template",
		Method:      http.MethodPost,
		Path:        "/meli/products/size_charts/template",
		Summary:     "Get a domain's size-chart template",
		Description: "Distills the domain's GRID technical spec into editable fields and an example payload.",
		Tags:        []string{"size-charts"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway},
	}, h.Template)

	huma.Register(api, huma.Operation{
		OperationID: "size-chart-required-attributes",
		Method:      http.MethodGet,
		Path:        "/meli/products/size_charts/domains/{domain_id}/required_attributes",
		Summary:     "List a domain's grid-template attributes",
		Description: "Returns the attributes tagged grid_template_required for the domain.",
		Tags:        []string{"size-charts"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.RequiredAttributes)

	huma.Register(api, huma.Operation{
		OperationID: "associate-size-chart",
		Method:      http.MethodPost,
		Path:        "/meli/products/items/{item_id}/size_charts/{size_chart_id}",
		Summary:     "Associate a size chart with a listing",
		Tags:        []string{"size-charts"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Associate)

	huma.Register(api, huma.Operation{
		OperationID: "get-size-chart",
		Method:      http.MethodGet,
		Path:        "/meli/products/size_charts/{id}",
		Summary:     "Get a size chart",
		Tags:        []string{"size-charts"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Get)
}
