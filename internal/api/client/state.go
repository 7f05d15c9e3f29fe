package client

import (
	"context"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// StateResponse is the system state summary.
type StateResponse struct {
	Products    int         `json:"products"`
	Competitors int         `json:"competitors"`
	Activated   int         `json:"activated"`
	LastRun     *domain.Run `json:"last_run,omitempty"`
}

// GetState returns tracked entity counts and the most recent run.
func (c *Client) GetState(ctx context.Context) (*StateResponse, error) {
	var state StateResponse
	if err := c.get(ctx, "/api/v1/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
