package meli

import (
	"time"
)

// FieldRule describes the validation contract for one product field, in a
// shape frontend clients render as a dynamic form.
type FieldRule struct {
	Type        string               `json:"type"`
	Required    bool                 `json:"required"`
	IsShow      bool                 `json:"is_show"`
	Description string               `json:"description"`
	Min         *float64             `json:"min,omitempty"`
	Max         *float64             `json:"max,omitempty"`
	MinLength   *int                 `json:"min_length,omitempty"`
	MaxLength   *int                 `json:"max_length,omitempty"`
	Keys        map[string]FieldRule `json:"keys,omitempty"`
	Flexible    bool                 `json:"flexible,omitempty"`
	Note        string               `json:"note,omitempty"`
}

// PhotoTypeRule describes the marketplace's constraints for one picture slot.
type PhotoTypeRule struct {
	Type          string          `json:"type"`
	MaxQuantity   int             `json:"max_quantity"`
	MinQuantity   int             `json:"min_quantity"`
	SizesPx       []PhotoSizeRule `json:"sizes_px"`
	FileSizeMaxMB int             `json:"file_size_max_mb"`
	Description   string          `json:"description"`
}

// PhotoSizeRule bounds a picture's pixel dimensions.
type PhotoSizeRule struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Ratio string `json:"ratio"`
}

// PhotoRules groups the picture constraints.
type PhotoRules struct {
	Types   []PhotoTypeRule `json:"types"`
	Formats []string        `json:"formats"`
}

// RulesDocument is the normalized product validation specification served
// to frontend clients so they can validate listings before submission.
type RulesDocument struct {
	Rules      map[string]FieldRule `json:"rules"`
	PhotoRules PhotoRules           `json:"photos_types_rules"`
	Timestamp  string               `json:"timestamp"`
	Message    string               `json:"message"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// ProductRules returns the normalized validation rules for product
// creation: field types, required flags, and bounds mirroring the
// marketplace item schema, plus picture constraints.
func ProductRules() RulesDocument {
	rules := map[string]FieldRule{
		"uniqueId": {
			Type: "integer", Required: true, IsShow: false,
			Description: "Internal unique product ID",
		},
		"title": {
			Type: "string", Required: true, IsShow: true,
			Description: "Product title",
			MinLength:   intPtr(10), MaxLength: intPtr(60),
		},
		"category_id": {
			Type: "string", Required: true, IsShow: true,
			Description: "MercadoLibre category ID",
		},
		"price": {
			Type: "double", Required: true, IsShow: true,
			Description: "Listing price",
			Min:         floatPtr(1),
		},
		"currency_id": {
			Type: "string", Required: true, IsShow: true,
			Description: "Currency code",
		},
		"available_quantity": {
			Type: "integer", Required: true, IsShow: true,
			Description: "Units available for sale",
			Min:         floatPtr(1),
		},
		"buying_mode": {
			Type: "string", Required: true, IsShow: true,
			Description: "Buying mode",
		},
		"condition": {
			Type: "string", Required: true, IsShow: true,
			Description: "Item condition",
		},
		"listing_type_id": {
			Type: "string", Required: true, IsShow: true,
			Description: "Listing type",
		},
		"description": {
			Type: "object", Required: true, IsShow: true,
			Description: "Product description",
			Keys: map[string]FieldRule{
				"plain_text": {
					Type: "string", Required: true, IsShow: true,
					Description: "Plain-text description body",
					MinLength:   intPtr(20),
				},
			},
		},
		"sale_terms": {
			Type: "arrayObject", Required: false, IsShow: true,
			Description: "Sale terms",
			Keys: map[string]FieldRule{
				"id":         {Type: "string", Required: true, IsShow: true, Description: "Sale term ID"},
				"value_name": {Type: "string", Required: true, IsShow: true, Description: "Sale term value"},
			},
		},
		"pictures": {
			Type: "arrayObject", Required: true, IsShow: true,
			Description: "Product pictures",
			MinLength:   intPtr(1),
			Keys: map[string]FieldRule{
				"id": {Type: "string", Required: true, IsShow: true, Description: "Uploaded picture ID"},
			},
		},
		"attributes": {
			Type: "arrayObject", Required: true, IsShow: true,
			Description: "Product attributes",
			MinLength:   intPtr(1),
			Keys: map[string]FieldRule{
				"id":         {Type: "string", Required: true, IsShow: true, Description: "Attribute ID (e.g. BRAND)"},
				"value_name": {Type: "string", Required: true, IsShow: true, Description: "Attribute value"},
			},
			Note: "See /meli/products/category/attributes for category-specific requirements",
		},
		"variations": {
			Type: "arrayObject", Required: false, IsShow: true,
			Description: "Product variations (flexible structure)",
			Flexible:    true,
			Note:        "See /meli/products/category/attributes for attributes that allow variations",
		},
		"shipping": {
			Type: "object", Required: false, IsShow: true,
			Description: "Shipping configuration",
			Keys: map[string]FieldRule{
				"mode":          {Type: "string", IsShow: true, Description: "Shipping mode"},
				"local_pick_up": {Type: "boolean", IsShow: true, Description: "Allows local pickup"},
				"free_shipping": {Type: "boolean", IsShow: true, Description: "Seller pays shipping"},
				"dimensions":    {Type: "string", IsShow: true, Description: "Package dimensions"},
			},
		},
	}

	return RulesDocument{
		Rules: rules,
		PhotoRules: PhotoRules{
			Types: []PhotoTypeRule{
				{
					Type:        "MAIN",
					MaxQuantity: 1, MinQuantity: 1,
					SizesPx:       []PhotoSizeRule{{Min: 900, Max: 2200, Ratio: "1:1"}},
					FileSizeMaxMB: 3,
					Description:   "Main product picture",
				},
				{
					Type:        "DETAIL",
					MaxQuantity: 10, MinQuantity: 1,
					SizesPx:       []PhotoSizeRule{{Min: 900, Max: 2200, Ratio: "1:1"}},
					FileSizeMaxMB: 3,
					Description:   "Detail pictures",
				},
			},
			Formats: []string{"jpg", "jpeg", "png"},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   "Data specification for MercadoLibre listing validation",
	}
}
