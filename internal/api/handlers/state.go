package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// StateHandler serves the dashboard summary counts.
type StateHandler struct {
	store store.Reader
}

// NewStateHandler creates a StateHandler.
func NewStateHandler(s store.Reader) *StateHandler {
	return &StateHandler{store: s}
}

// GetStateOutput is the response for the system state summary.
type GetStateOutput struct {
	Body struct {
		Products    int         `json:"products"`
		Competitors int         `json:"competitors"`
		Activated   int         `json:"activated"`
		LastRun     *domain.Run `json:"last_run,omitempty"`
	}
}

// GetState returns tracked entity counts and the most recent run.
func (h *StateHandler) GetState(ctx context.Context, _ *struct{}) (*GetStateOutput, error) {
	products, err := h.store.ListProducts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing products: " + err.Error())
	}

	out := &GetStateOutput{}
	out.Body.Products = len(products)
	for i := range products {
		out.Body.Competitors += len(products[i].Competitors)
		if products[i].ActivatedChannelID != "" {
			out.Body.Activated++
		}
	}

	runs, err := h.store.ListRuns(ctx, 1)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing runs: " + err.Error())
	}
	if len(runs) > 0 {
		out.Body.LastRun = &runs[0]
	}

	return out, nil
}

// RegisterStateRoutes registers the state endpoint on the API.
func RegisterStateRoutes(api huma.API, h *StateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/state",
		Summary:     "System state summary",
		Tags:        []string{"state"},
	}, h.GetState)
}
