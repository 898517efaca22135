// Package domain defines the core business types for the MercadoLibre
// listing gateway.
package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Credential is one shop's MercadoLibre identity: the OAuth token pair the
// marketplace issued for the shop's owner account. Exactly one access token
// is authoritative per owner at any time; a refresh replaces the pair.
type Credential struct {
	OwnerID      int64     `json:"user_id"       db:"owner_id"`
	ShopID       string    `json:"shop_id"       db:"shop_id"`
	AccessToken  string    `json:"access_token"  db:"access_token"`
	RefreshToken string    `json:"refresh_token" db:"refresh_token"`
	TokenType    string    `json:"token_type"    db:"token_type"`
	ExpiresIn    int       `json:"expires_in"    db:"expires_in"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// ExpiresAt returns the instant the access token stops being valid.
func (c *Credential) ExpiresAt() time.Time {
	return c.UpdatedAt.Add(time.Duration(c.ExpiresIn) * time.Second)
}

// TagSet is the set of marketplace tags attached to an attribute.
// MercadoLibre is inconsistent about the wire shape: category attribute
// endpoints return tags as a JSON object of booleans while technical-spec
// documents return a plain array of strings. TagSet accepts both.
type TagSet map[string]struct{}

// Has reports whether the tag is present in the set.
func (t TagSet) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// UnmarshalJSON decodes either `["required", ...]` or `{"required": true, ...}`.
func (t *TagSet) UnmarshalJSON(data []byte) error {
	set := TagSet{}

	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
	case strings.HasPrefix(trimmed, "["):
		var tags []string
		if err := json.Unmarshal(data, &tags); err != nil {
			return fmt.Errorf("decoding tag list: %w", err)
		}
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	default:
		var tags map[string]bool
		if err := json.Unmarshal(data, &tags); err != nil {
			return fmt.Errorf("decoding tag map: %w", err)
		}
		for tag, on := range tags {
			if on {
				set[tag] = struct{}{}
			}
		}
	}

	*t = set
	return nil
}

// MarshalJSON encodes the set as a sorted-free array of tag names.
func (t TagSet) MarshalJSON() ([]byte, error) {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	return json.Marshal(tags)
}

// CategorySuggestion is one entry from the domain-discovery search: the
// category the marketplace considers most relevant for a product title.
type CategorySuggestion struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	DomainID     string          `json:"domain_id"`
	DomainName   string          `json:"domain_name"`
	Attributes   json.RawMessage `json:"attributes,omitempty"`
}

// CategoryAttribute describes one attribute of a marketplace category.
type CategoryAttribute struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ValueType string          `json:"value_type,omitempty"`
	Tags      TagSet          `json:"tags,omitempty"`
	Values    json.RawMessage `json:"values,omitempty"`
}

// Required reports whether the marketplace marked the attribute mandatory.
func (a *CategoryAttribute) Required() bool {
	return a.Tags.Has("required")
}

// PathEntry is one ancestor step in a category path, oldest first.
type PathEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryNode is one node of a recursively expanded category tree.
// Path holds the node's ancestors oldest-first, Breadcrumb joins their
// names with " > ", and Children is populated down to the depth bound.
type CategoryNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Path       []PathEntry    `json:"path"`
	Breadcrumb string         `json:"breadcrumb"`
	Children   []CategoryNode `json:"children"`
}

// Depth is the number of ancestors above the node.
func (n *CategoryNode) Depth() int {
	return len(n.Path)
}

// MeasurementValue is a size-chart measurement value. Clients send numbers
// or strings interchangeably; either decodes to its literal representation.
type MeasurementValue string

// UnmarshalJSON accepts a JSON string or number.
func (v *MeasurementValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = MeasurementValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("measurement value must be a string or number: %w", err)
	}
	*v = MeasurementValue(n.String())
	return nil
}

// Measurement is one measurement in a simplified size-chart row.
// Unit is optional; when present it is appended to the rendered value.
type Measurement struct {
	Value MeasurementValue `json:"value"`
	Unit  string           `json:"unit,omitempty"`
}

// Render produces the marketplace value string: "<value> <unit>" when a
// unit is supplied, the bare value otherwise.
func (m Measurement) Render() string {
	if m.Unit != "" {
		return fmt.Sprintf("%s %s", m.Value, m.Unit)
	}
	return string(m.Value)
}

// SimpleSizeRow is one row of the simplified size-chart shape: a size label
// plus a free-form measurement map keyed by marketplace attribute ID.
type SimpleSizeRow struct {
	Size         string                 `json:"size"`
	Measurements map[string]Measurement `json:"measurements"`
}
