package client

import (
	"context"
	"fmt"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// ListRuns returns recent monitoring runs, newest first.
func (c *Client) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	path := "/api/v1/runs"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var runs []domain.Run
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// TriggerRun starts a monitoring run and returns its record.
func (c *Client) TriggerRun(ctx context.Context) (*domain.Run, error) {
	var run domain.Run
	if err := c.post(ctx, "/api/v1/runs", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
