package meli

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProductResult wraps a marketplace item document.
type ProductResult struct {
	Product json.RawMessage `json:"product"`
}

// CreateProduct publishes a new listing. The product document is passed
// through to the marketplace as-is; shape validation happens at the HTTP
// boundary before this method is reached.
func (c *Client) CreateProduct(ctx context.Context, shopID string, product json.RawMessage) (*ProductResult, error) {
	if len(product) == 0 {
		return nil, &ValidationError{Message: "product_data is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.post(ctx, cred, "/items", product)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: raw}, nil
}

// VerifyProduct fetches the current state of a published listing.
func (c *Client) VerifyProduct(ctx context.Context, shopID, itemID string) (*ProductResult, error) {
	if itemID == "" {
		return nil, &ValidationError{Message: "item_id is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.get(ctx, cred, fmt.Sprintf("/items/%s", itemID), nil)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: raw}, nil
}

// UpdateProduct applies a partial update to a listing: only the fields
// present in updateData are sent upstream.
func (c *Client) UpdateProduct(ctx context.Context, shopID, itemID string, updateData map[string]json.RawMessage) (*ProductResult, error) {
	if itemID == "" {
		return nil, &ValidationError{Message: "item_id is required"}
	}
	if len(updateData) == 0 {
		return nil, &ValidationError{Message: "update_data must contain at least one field"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	raw, err := c.put(ctx, cred, fmt.Sprintf("/items/%s", itemID), updateData)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: raw}, nil
}
