package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewar-labs/price-guardian/internal/engine"
	"github.com/pricewar-labs/price-guardian/internal/store"
)

// AuditHandler renders plain-text pricing audits from stored state.
type AuditHandler struct {
	store store.Reader
	now   func() time.Time
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(s store.Reader) *AuditHandler {
	return &AuditHandler{store: s, now: time.Now}
}

// GetAuditInput is the input for an audit request.
type GetAuditInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// GetAuditOutput is the response for an audit request.
type GetAuditOutput struct {
	Body struct {
		Report string `json:"report"`
	}
}

// GetAudit returns a text snapshot of a product's stored pricing state.
// The audit never fetches live prices and never writes; it reflects only
// what monitoring runs have committed.
func (h *AuditHandler) GetAudit(
	ctx context.Context,
	input *GetAuditInput,
) (*GetAuditOutput, error) {
	report, err := engine.BuildAuditReport(ctx, h.store, input.ID, h.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("building audit failed: " + err.Error())
	}

	resp := &GetAuditOutput{}
	resp.Body.Report = report
	return resp, nil
}

// RegisterAuditRoutes registers audit endpoints with the Huma API.
func RegisterAuditRoutes(api huma.API, h *AuditHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-product-audit",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/audit",
		Summary:     "Get a pricing audit for a product",
		Description: "Returns a plain-text audit of the product's stored client and competitor prices.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAudit)
}
