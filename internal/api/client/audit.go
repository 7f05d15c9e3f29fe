package client

import (
	"context"
	"fmt"
)

type auditResponse struct {
	Report string `json:"report"`
}

// GetAudit returns the plain-text pricing audit for a product.
func (c *Client) GetAudit(ctx context.Context, productID string) (string, error) {
	var out auditResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s/audit", productID), &out); err != nil {
		return "", err
	}
	return out.Report, nil
}
