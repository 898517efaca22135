package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// Paging mirrors the marketplace's paging block on list responses.
type Paging struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// SizeChartList is a page of the owner's size charts.
type SizeChartList struct {
	SizeCharts json.RawMessage `json:"size_charts"`
	Paging     *Paging         `json:"paging,omitempty"`
}

// ListSizeCharts lists the size charts owned by the shop's marketplace user.
func (c *Client) ListSizeCharts(ctx context.Context, shopID string, limit, offset int) (*SizeChartList, error) {
	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	query := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}

	raw, err := c.get(ctx, cred, fmt.Sprintf("/users/%d/size_charts", cred.OwnerID), query)
	if err != nil {
		return nil, err
	}

	result := &SizeChartList{SizeCharts: raw}

	// Paging is lifted out best-effort so the HTTP layer can fill the
	// envelope's pagination block; the raw document stays untouched.
	var page struct {
		Paging *Paging `json:"paging"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Paging != nil {
		result.Paging = page.Paging
	}

	return result, nil
}

// SizeChartResult wraps one size-chart document.
type SizeChartResult struct {
	SizeChart json.RawMessage `json:"size_chart"`
}

// GetSizeChart fetches a single size chart by ID.
func (c *Client) GetSizeChart(ctx context.Context, shopID, chartID string) (*SizeChartResult, error) {
	if chartID == "" {
		return nil, &ValidationError{Message: "size_chart_id is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, cred, fmt.Sprintf("/size_charts/%s", chartID), nil)
	if err != nil {
		return nil, err
	}
	return &SizeChartResult{SizeChart: raw}, nil
}

// SizeChartPayload is the marketplace's native chart creation schema,
// passed through untouched. CreateSimpleSizeChart builds one of these from
// the simplified shape.
type SizeChartPayload struct {
	Names         map[string]string `json:"names"`
	DomainID      string            `json:"domain_id"`
	SiteID        string            `json:"site_id"`
	Type          string            `json:"type,omitempty"`
	MainAttribute json.RawMessage   `json:"main_attribute,omitempty"`
	Attributes    json.RawMessage   `json:"attributes,omitempty"`
	Rows          json.RawMessage   `json:"rows,omitempty"`
}

// CreateSizeChart creates a chart from the marketplace's native schema.
func (c *Client) CreateSizeChart(ctx context.Context, shopID string, chart SizeChartPayload) (*SizeChartResult, error) {
	if chart.DomainID == "" {
		return nil, &ValidationError{Message: "domain_id is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, cred, "/catalog/charts", chart)
	if err != nil {
		return nil, err
	}
	return &SizeChartResult{SizeChart: raw}, nil
}

// AssociationResult wraps the marketplace's item/chart association document.
type AssociationResult struct {
	Association json.RawMessage `json:"association"`
}

// AssociateSizeChart attaches an existing size chart to a published item.
func (c *Client) AssociateSizeChart(ctx context.Context, shopID, itemID, chartID string) (*AssociationResult, error) {
	if itemID == "" || chartID == "" {
		return nil, &ValidationError{Message: "item_id and size_chart_id are required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, cred, fmt.Sprintf("/items/%s/size_charts/%s", itemID, chartID), nil)
	if err != nil {
		return nil, err
	}
	return &AssociationResult{Association: raw}, nil
}

// technicalSpecs is the subset of a domain's technical-spec document the
// size-chart flows need: groups of components carrying tagged attributes.
type technicalSpecs struct {
	Input struct {
		Groups []struct {
			Components []specComponent `json:"components"`
		} `json:"groups"`
	} `json:"input"`
}

type specComponent struct {
	Component  string          `json:"component"`
	Attributes []specAttribute `json:"attributes"`
	Components []specComponent `json:"components"`
}

type specAttribute struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	ValueType     string             `json:"value_type"`
	Tags          domain.TagSet      `json:"tags"`
	DefaultUnitID string             `json:"default_unit_id"`
	Units         []specUnit         `json:"units"`
	Values        []domain.PathEntry `json:"values"`
}

type specUnit struct {
	ID string `json:"id"`
}

// RequiredAttribute is one grid_template_required attribute of a domain.
type RequiredAttribute struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ValueType string             `json:"value_type"`
	Required  bool               `json:"required"`
	Values    []domain.PathEntry `json:"values"`
}

// DomainRequiredAttributesResult lists the attributes a domain requires
// before its size-chart template can be queried.
type DomainRequiredAttributesResult struct {
	DomainID           string              `json:"domain_id"`
	SiteID             string              `json:"site_id"`
	RequiredAttributes []RequiredAttribute `json:"required_attributes"`
	Total              int                 `json:"total_required_attributes"`
}

// DomainRequiredAttributes scans a domain's technical-spec document for
// attributes tagged grid_template_required. The endpoint is public, so
// this is the one operation that makes an anonymous marketplace call.
func (c *Client) DomainRequiredAttributes(ctx context.Context, domainID, siteID string) (*DomainRequiredAttributesResult, error) {
	if domainID == "" {
		return nil, &ValidationError{Message: "domain_id is required"}
	}
	if siteID == "" {
		siteID = c.siteID
	}

	raw, err := c.invoke(ctx, nil, apiRequest{
		method:    "GET",
		path:      fmt.Sprintf("/domains/%s-%s/technical_specs", siteID, domainID),
		anonymous: true,
	})
	if err != nil {
		return nil, err
	}

	var specs technicalSpecs
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing technical specs: %w", err)}
	}

	result := &DomainRequiredAttributesResult{
		DomainID:           domainID,
		SiteID:             siteID,
		RequiredAttributes: []RequiredAttribute{},
	}
	walkSpecAttributes(specs, func(attr specAttribute) {
		if !attr.Tags.Has("grid_template_required") {
			return
		}
		values := attr.Values
		if values == nil {
			values = []domain.PathEntry{}
		}
		result.RequiredAttributes = append(result.RequiredAttributes, RequiredAttribute{
			ID:        attr.ID,
			Name:      attr.Name,
			ValueType: attr.ValueType,
			Required:  true,
			Values:    values,
		})
	})
	result.Total = len(result.RequiredAttributes)

	return result, nil
}

// walkSpecAttributes visits every attribute in every component group,
// descending into nested components.
func walkSpecAttributes(specs technicalSpecs, visit func(specAttribute)) {
	var walk func(components []specComponent)
	walk = func(components []specComponent) {
		for _, component := range components {
			for _, attr := range component.Attributes {
				visit(attr)
			}
			walk(component.Components)
		}
	}
	for _, group := range specs.Input.Groups {
		walk(group.Components)
	}
}

// findGridComponent locates the GRID component that carries the size-chart
// structure, searching every group.
func findGridComponent(specs technicalSpecs) *specComponent {
	var find func(components []specComponent) *specComponent
	find = func(components []specComponent) *specComponent {
		for i := range components {
			if components[i].Component == "GRID" {
				return &components[i]
			}
			if found := find(components[i].Components); found != nil {
				return found
			}
		}
		return nil
	}
	for _, group := range specs.Input.Groups {
		if found := find(group.Components); found != nil {
			return found
		}
	}
	return nil
}
