package meli

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// TemplateAttribute is one pre-resolved domain attribute (typically from
// DomainRequiredAttributes) sent along with a template request.
type TemplateAttribute struct {
	ID        string `json:"id"`
	ValueID   string `json:"value_id,omitempty"`
	ValueName string `json:"value_name"`
}

// TemplateRequest asks for a domain's size-chart template.
type TemplateRequest struct {
	ShopID     string
	DomainID   string
	SiteID     string
	Attributes []TemplateAttribute
}

// TemplateField is one editable field of a size-chart template.
type TemplateField struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	DefaultUnit string             `json:"default_unit"`
	Units       []string           `json:"units"`
	Values      []domain.PathEntry `json:"values,omitempty"`
}

// MeasurementTypes classifies template fields by what they measure.
type MeasurementTypes struct {
	BodyMeasurements     []TemplateField `json:"body_measurements"`
	ClothingMeasurements []TemplateField `json:"clothing_measurements"`
}

// ExampleMeasurement is a placeholder measurement in the example payload.
type ExampleMeasurement struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// ExampleRow is one row of the synthesized example payload.
type ExampleRow struct {
	Size         string                        `json:"size"`
	Measurements map[string]ExampleMeasurement `json:"measurements"`
}

// ExampleFormat is a ready-to-edit CreateSimpleSizeChart payload synthesized
// from the template, so frontend clients can see the expected shape.
type ExampleFormat struct {
	ShopID          string       `json:"shop_id"`
	DomainID        string       `json:"domain_id"`
	SiteID          string       `json:"site_id"`
	ChartName       string       `json:"chart_name"`
	Brand           string       `json:"brand"`
	Gender          string       `json:"gender"`
	MainAttributeID string       `json:"main_attribute_id"`
	Rows            []ExampleRow `json:"rows"`
}

// SizeChartTemplate is the simplified template extracted from a domain's
// GRID technical-spec component.
type SizeChartTemplate struct {
	DomainID                string             `json:"domain_id"`
	SiteID                  string             `json:"site_id"`
	RequiredFields          []TemplateField    `json:"required_fields"`
	OptionalFields          []TemplateField    `json:"optional_fields"`
	MeasurementTypes        MeasurementTypes   `json:"measurement_types"`
	MainAttributeCandidates []domain.PathEntry `json:"main_attribute_candidates"`
	SizeAttribute           *TemplateField     `json:"size_attribute,omitempty"`
	ExampleFormat           *ExampleFormat     `json:"example_format"`
	ImportantNotes          []string           `json:"important_notes"`
}

// SizeChartTemplate fetches the grids section of a domain's technical spec
// and distills it: fields split by the "required" tag, measurements
// classified as body vs clothing by tag, main-attribute candidates
// collected, and an example creation payload synthesized. Hidden and
// read-only attributes are skipped.
func (c *Client) SizeChartTemplate(ctx context.Context, req TemplateRequest) (*SizeChartTemplate, error) {
	if req.ShopID == "" || req.DomainID == "" || len(req.Attributes) == 0 {
		return nil, &ValidationError{Message: "shop_id, domain_id and attributes are required"}
	}

	siteID := req.SiteID
	if siteID == "" {
		siteID = c.siteID
	}

	cred, err := c.credentialForShop(ctx, req.ShopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, cred,
		fmt.Sprintf("/domains/%s-%s/technical_specs?section=grids", siteID, req.DomainID),
		templatePayload(req.Attributes),
	)
	if err != nil {
		return nil, err
	}

	var specs technicalSpecs
	if err := json.Unmarshal(raw, &specs); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing grid technical specs: %w", err)}
	}

	grid := findGridComponent(specs)
	if grid == nil || len(grid.Components) == 0 {
		return nil, &ValidationError{Message: "domain has no size-chart grid structure"}
	}

	template := &SizeChartTemplate{
		DomainID:       req.DomainID,
		SiteID:         siteID,
		RequiredFields: []TemplateField{},
		OptionalFields: []TemplateField{},
		MeasurementTypes: MeasurementTypes{
			BodyMeasurements:     []TemplateField{},
			ClothingMeasurements: []TemplateField{},
		},
		MainAttributeCandidates: []domain.PathEntry{},
	}

	for _, sub := range grid.Components {
		for _, attr := range sub.Attributes {
			if attr.Tags.Has("hidden") || attr.Tags.Has("read_only") {
				continue
			}

			field := templateField(attr)

			if attr.Tags.Has("required") {
				template.RequiredFields = append(template.RequiredFields, field)
			} else {
				template.OptionalFields = append(template.OptionalFields, field)
			}

			switch {
			case attr.Tags.Has("BODY_MEASURE"):
				template.MeasurementTypes.BodyMeasurements = append(
					template.MeasurementTypes.BodyMeasurements, field)
			case attr.Tags.Has("CLOTHING_MEASURE"):
				template.MeasurementTypes.ClothingMeasurements = append(
					template.MeasurementTypes.ClothingMeasurements, field)
			}

			if attr.Tags.Has("main_attribute_candidate") {
				template.MainAttributeCandidates = append(
					template.MainAttributeCandidates,
					domain.PathEntry{ID: attr.ID, Name: attr.Name})
			}

			if attr.ID == "SIZE" && template.SizeAttribute == nil {
				template.SizeAttribute = &TemplateField{
					ID:   attr.ID,
					Name: attr.Name,
					Type: attr.ValueType,
				}
			}
		}
	}

	if template.SizeAttribute != nil && len(template.MainAttributeCandidates) == 0 {
		template.MainAttributeCandidates = append(template.MainAttributeCandidates,
			domain.PathEntry{ID: "SIZE", Name: template.SizeAttribute.Name})
	}
	if len(template.MainAttributeCandidates) == 0 {
		for _, field := range template.RequiredFields {
			if field.ID != "GENDER" && field.ID != "BRAND" {
				template.MainAttributeCandidates = append(template.MainAttributeCandidates,
					domain.PathEntry{ID: field.ID, Name: field.Name})
				break
			}
		}
	}

	template.ExampleFormat = exampleFormat(req, siteID, template)
	template.ImportantNotes = []string{
		"A main_attribute_id is required when creating the size chart.",
		"That attribute becomes the primary reference column of the table.",
		"It must be one of the entries listed in main_attribute_candidates.",
		"The simplified main_attribute_id is translated to the marketplace's main_attribute.attributes[].id shape on creation.",
	}

	return template, nil
}

func templateField(attr specAttribute) TemplateField {
	units := make([]string, 0, len(attr.Units))
	for _, unit := range attr.Units {
		units = append(units, unit.ID)
	}

	return TemplateField{
		ID:          attr.ID,
		Name:        attr.Name,
		Type:        attr.ValueType,
		DefaultUnit: attr.DefaultUnitID,
		Units:       units,
		Values:      attr.Values,
	}
}

// templatePayload formats pre-resolved attributes the way the technical-spec
// endpoint expects them.
func templatePayload(attrs []TemplateAttribute) map[string]any {
	formatted := make([]map[string]any, 0, len(attrs))
	for _, attr := range attrs {
		formatted = append(formatted, map[string]any{
			"id":           attr.ID,
			"name":         attr.ID,
			"value_id":     attr.ValueID,
			"value_name":   attr.ValueName,
			"value_struct": nil,
			"values": []map[string]any{
				{"id": attr.ValueID, "name": attr.ValueName, "struct": nil},
			},
			"attribute_group_id":   "OTHERS",
			"attribute_group_name": "Otros",
		})
	}
	return map[string]any{"attributes": formatted}
}

// exampleFormat synthesizes a creation payload: placeholder measurements
// for every required number_unit field, and a suggested main attribute.
func exampleFormat(req TemplateRequest, siteID string, template *SizeChartTemplate) *ExampleFormat {
	measurements := map[string]ExampleMeasurement{}
	for _, field := range template.RequiredFields {
		if field.ID == "GENDER" || field.ID == "BRAND" || field.ID == "SIZE" {
			continue
		}
		if field.Type != "number_unit" {
			continue
		}
		unit := field.DefaultUnit
		if unit == "" {
			unit = "cm"
		}
		measurements[field.ID] = ExampleMeasurement{Value: "example_value", Unit: unit}
	}

	mainAttribute := ""
	switch {
	case len(template.MainAttributeCandidates) > 0:
		mainAttribute = template.MainAttributeCandidates[0].ID
	case template.SizeAttribute != nil:
		mainAttribute = template.SizeAttribute.ID
	default:
		for _, field := range template.RequiredFields {
			if field.ID != "GENDER" && field.ID != "BRAND" {
				mainAttribute = field.ID
				break
			}
		}
	}

	gender := "gender_value"
	if len(req.Attributes) > 0 && req.Attributes[0].ID == "GENDER" {
		gender = req.Attributes[0].ValueName
	}

	return &ExampleFormat{
		ShopID:          "SHOP_ID",
		DomainID:        req.DomainID,
		SiteID:          siteID,
		ChartName:       "Size chart name",
		Brand:           "Brand",
		Gender:          gender,
		MainAttributeID: mainAttribute,
		Rows: []ExampleRow{
			{Size: "S", Measurements: measurements},
			{Size: "M", Measurements: measurements},
		},
	}
}
