package client

import (
	"context"
	"fmt"

	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
)

// ListProductsResponse is the body returned by the products listing endpoint.
type ListProductsResponse struct {
	Products []handlers.ProductView `json:"products"`
	Total    int                    `json:"total"`
}

// ListProducts returns every tracked product with its competitors.
func (c *Client) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	var out ListProductsResponse
	if err := c.get(ctx, "/api/v1/products", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*handlers.ProductView, error) {
	var out handlers.ProductView
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
