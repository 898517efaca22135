package meli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// CategorySearchResult holds the domain-discovery matches for a product
// name. An empty Categories slice is a soft result, not an error; callers
// that need to report it do so with NoMatchMessage.
type CategorySearchResult struct {
	Categories []domain.CategorySuggestion `json:"categories"`
}

// NoMatchMessage is the informational message reported when the
// marketplace returns zero category matches for a product name.
const NoMatchMessage = "no relevant categories found"

// Empty reports whether the search produced no matches.
func (r *CategorySearchResult) Empty() bool {
	return len(r.Categories) == 0
}

// SearchCategories queries the site's domain-discovery search with a
// free-text product name and maps each match into a CategorySuggestion.
func (c *Client) SearchCategories(ctx context.Context, shopID, productName string) (*CategorySearchResult, error) {
	if productName == "" {
		return nil, &ValidationError{Message: "product_name is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, cred,
		fmt.Sprintf("/sites/%s/domain_discovery/search", c.siteID),
		url.Values{"q": {productName}},
	)
	if err != nil {
		return nil, err
	}

	var matches []domain.CategorySuggestion
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing domain discovery response: %w", err)}
	}

	if len(matches) == 0 {
		c.log.Info("domain discovery returned no matches", "shop_id", shopID, "product_name", productName)
	}

	return &CategorySearchResult{Categories: matches}, nil
}

// CategoryAttributesResult partitions a category's attributes into the
// required and optional sets. The partition is total: every upstream
// attribute lands in exactly one of the two slices.
type CategoryAttributesResult struct {
	CategoryID string                     `json:"category_id"`
	Required   []domain.CategoryAttribute `json:"required_attributes"`
	Optional   []domain.CategoryAttribute `json:"optional_attributes"`
}

// CategoryAttributes fetches a category's attribute list and splits it by
// the "required" tag.
func (c *Client) CategoryAttributes(ctx context.Context, shopID, categoryID string) (*CategoryAttributesResult, error) {
	if categoryID == "" {
		return nil, &ValidationError{Message: "category_id is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, cred, fmt.Sprintf("/categories/%s/attributes", categoryID), nil)
	if err != nil {
		return nil, err
	}

	var attrs []domain.CategoryAttribute
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("parsing category attributes: %w", err)}
	}

	result := &CategoryAttributesResult{
		CategoryID: categoryID,
		Required:   []domain.CategoryAttribute{},
		Optional:   []domain.CategoryAttribute{},
	}
	for _, attr := range attrs {
		if attr.Required() {
			result.Required = append(result.Required, attr)
		} else {
			result.Optional = append(result.Optional, attr)
		}
	}

	return result, nil
}
