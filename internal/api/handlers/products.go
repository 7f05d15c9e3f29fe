package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pricewar-labs/price-guardian/internal/engine"
	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// ProductsHandler handles product query endpoints.
type ProductsHandler struct {
	store store.Reader
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s store.Reader) *ProductsHandler {
	return &ProductsHandler{store: s}
}

// --- Input/Output types ---

// CompetitorView is a competitor with its display gap against the client
// price.
type CompetitorView struct {
	domain.Competitor
	Gap string `json:"gap" example:"Gap: $15.00 more expensive"`
}

// ProductView is a product with display-oriented competitor rows.
type ProductView struct {
	domain.Product
	Competitors []CompetitorView `json:"competitors"`
}

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []ProductView `json:"products"`
		Total    int           `json:"total"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// GetProductOutput is the response for getting a single product.
type GetProductOutput struct {
	Body ProductView
}

// --- Handlers ---

func toView(p *domain.Product) ProductView {
	view := ProductView{
		Product:     *p,
		Competitors: make([]CompetitorView, 0, len(p.Competitors)),
	}
	for i := range p.Competitors {
		c := p.Competitors[i]
		view.Competitors = append(view.Competitors, CompetitorView{
			Competitor: c,
			Gap:        engine.GapText(p.ClientPrice, c.LastPrice),
		})
	}
	return view
}

// ListProducts returns every tracked product with its competitors, in
// insertion order.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	_ *struct{},
) (*ListProductsOutput, error) {
	products, err := h.store.ListProducts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing products failed: " + err.Error())
	}

	resp := &ListProductsOutput{}
	resp.Body.Products = make([]ProductView, 0, len(products))
	for i := range products {
		resp.Body.Products = append(resp.Body.Products, toView(&products[i]))
	}
	resp.Body.Total = len(products)

	return resp, nil
}

// GetProduct returns a single product by ID.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product failed: " + err.Error())
	}

	return &GetProductOutput{Body: toView(p)}, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns every tracked product with its competitors and current price gaps.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product by ID",
		Description: "Returns a single product with its competitors and current price gaps.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)
}
