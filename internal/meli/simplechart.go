package meli

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// SimpleSizeChartRequest is the simplified creation shape: a flat chart
// description plus free-form measurement rows, translated into the
// marketplace's nested schema before submission.
type SimpleSizeChartRequest struct {
	ShopID          string                 `json:"shop_id"`
	DomainID        string                 `json:"domain_id"`
	SiteID          string                 `json:"site_id,omitempty"`
	ChartName       string                 `json:"chart_name"`
	Brand           string                 `json:"brand"`
	Gender          string                 `json:"gender"`
	MainAttributeID string                 `json:"main_attribute_id"`
	Rows            []domain.SimpleSizeRow `json:"rows"`
}

// SimpleSizeChartResult reports the created chart plus its full detail
// document when the follow-up fetch succeeds.
type SimpleSizeChartResult struct {
	ChartID         string            `json:"chart_id"`
	Name            string            `json:"name"`
	DomainID        string            `json:"domain_id"`
	SiteID          string            `json:"site_id"`
	Brand           string            `json:"brand"`
	Gender          string            `json:"gender"`
	MainAttributeID string            `json:"main_attribute_id"`
	Message         string            `json:"message"`
	Details         *SizeChartDetails `json:"details,omitempty"`
}

// chartAttribute is the marketplace's attribute/value pair shape.
type chartAttribute struct {
	ID     string       `json:"id"`
	Values []chartValue `json:"values"`
}

type chartValue struct {
	Name string `json:"name"`
}

type chartRow struct {
	Attributes []chartAttribute `json:"attributes"`
}

// CreateSimpleSizeChart translates the simplified shape into the
// marketplace's nested schema and creates the chart. Each row's measurement
// map becomes an attribute list; a measurement with a unit renders as
// "<value> <unit>", one without renders bare. Rows that end up with zero
// attributes are dropped, not sent as empty placeholders. After creation
// the chart's detail document is fetched; that fetch failing is non-fatal.
func (c *Client) CreateSimpleSizeChart(ctx context.Context, req SimpleSizeChartRequest) (*SimpleSizeChartResult, error) {
	if req.ShopID == "" || req.DomainID == "" || req.ChartName == "" ||
		req.Brand == "" || req.Gender == "" || len(req.Rows) == 0 {
		return nil, &ValidationError{
			Message: "shop_id, domain_id, chart_name, brand, gender and rows are required",
		}
	}
	if req.MainAttributeID == "" {
		return nil, &ValidationError{Message: "main_attribute_id is required"}
	}

	siteID := req.SiteID
	if siteID == "" {
		siteID = c.siteID
	}

	cred, err := c.credentialForShop(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"names":     map[string]string{siteID: req.ChartName},
		"domain_id": req.DomainID,
		"site_id":   siteID,
		"type":      "SPECIFIC",
		"main_attribute": map[string]any{
			"attributes": []map[string]string{
				{"site_id": siteID, "id": req.MainAttributeID},
			},
		},
		"attributes": []chartAttribute{
			{ID: "GENDER", Values: []chartValue{{Name: req.Gender}}},
			{ID: "BRAND", Values: []chartValue{{Name: req.Brand}}},
		},
		"rows": buildChartRows(req.Rows),
	}

	c.log.Info("creating size chart", "domain_id", req.DomainID, "shop_id", req.ShopID)

	raw, err := c.post(ctx, cred, "/catalog/charts", payload)
	if err != nil {
		return nil, err
	}

	var created struct {
		ID json.Number `json:"id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing created chart: %w", err)}
	}

	result := &SimpleSizeChartResult{
		ChartID:         created.ID.String(),
		Name:            req.ChartName,
		DomainID:        req.DomainID,
		SiteID:          siteID,
		Brand:           req.Brand,
		Gender:          req.Gender,
		MainAttributeID: req.MainAttributeID,
		Message:         "size chart created successfully",
	}

	details, err := c.sizeChartDetails(ctx, cred, result.ChartID)
	if err != nil {
		c.log.Warn("fetching created chart details failed", "chart_id", result.ChartID, "error", err)
	} else {
		result.Details = details
	}

	return result, nil
}

// buildChartRows converts simplified rows into the marketplace's nested
// attribute/value shape. Measurements with empty values are skipped; rows
// that produce no attributes are dropped silently.
func buildChartRows(rows []domain.SimpleSizeRow) []chartRow {
	out := make([]chartRow, 0, len(rows))
	for _, row := range rows {
		converted := chartRow{Attributes: []chartAttribute{}}

		for measureID, measure := range row.Measurements {
			if measure.Value == "" {
				continue
			}
			converted.Attributes = append(converted.Attributes, chartAttribute{
				ID:     measureID,
				Values: []chartValue{{Name: measure.Render()}},
			})
		}

		if len(converted.Attributes) > 0 {
			out = append(out, converted)
		}
	}
	return out
}

// SizeChartDetails is the simplified detail view of a created chart,
// including the marketplace-assigned row IDs.
type SizeChartDetails struct {
	ID            json.Number       `json:"id"`
	Names         map[string]string `json:"names"`
	DomainID      string            `json:"domain_id"`
	Type          string            `json:"type"`
	MainAttribute json.RawMessage   `json:"main_attribute"`
	Rows          []ChartRowDetail  `json:"rows"`
}

// ChartRowDetail is one chart row with its attribute values flattened:
// single values collapse to a string, multiple values stay a list.
type ChartRowDetail struct {
	ID         json.Number    `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// sizeChartDetails fetches a catalog chart and flattens its rows.
func (c *Client) sizeChartDetails(ctx context.Context, cred *domain.Credential, chartID string) (*SizeChartDetails, error) {
	raw, err := c.get(ctx, cred, fmt.Sprintf("/catalog/charts/%s", chartID), nil)
	if err != nil {
		return nil, err
	}

	var doc struct {
		ID            json.Number       `json:"id"`
		Names         map[string]string `json:"names"`
		DomainID      string            `json:"domain_id"`
		Type          string            `json:"type"`
		MainAttribute json.RawMessage   `json:"main_attribute"`
		Rows          []struct {
			ID         json.Number      `json:"id"`
			Attributes []chartAttribute `json:"attributes"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing chart details: %w", err)}
	}

	details := &SizeChartDetails{
		ID:            doc.ID,
		Names:         doc.Names,
		DomainID:      doc.DomainID,
		Type:          doc.Type,
		MainAttribute: doc.MainAttribute,
		Rows:          []ChartRowDetail{},
	}

	for _, row := range doc.Rows {
		detail := ChartRowDetail{ID: row.ID, Attributes: map[string]any{}}
		for _, attr := range row.Attributes {
			switch len(attr.Values) {
			case 0:
			case 1:
				detail.Attributes[attr.ID] = attr.Values[0].Name
			default:
				names := make([]string, len(attr.Values))
				for i, v := range attr.Values {
					names[i] = v.Name
				}
				detail.Attributes[attr.ID] = names
			}
		}
		details.Rows = append(details.Rows, detail)
	}

	return details, nil
}
