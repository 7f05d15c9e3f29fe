package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
	"github.com/pricewar-labs/price-guardian/internal/store"
	storeMocks "github.com/pricewar-labs/price-guardian/internal/store/mocks"
)

func TestGetAudit_Success(t *testing.T) {
	t.Parallel()

	p := sampleProduct()
	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().GetProduct(mock.Anything, p.ID).Return(&p, nil).Once()

	h := handlers.NewAuditHandler(mr)

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, h)

	resp := api.Get("/api/v1/products/" + p.ID + "/audit")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Audit: Mechanical Keyboard")
	assert.Contains(t, resp.Body.String(), "$44.99")
}

func TestGetAudit_NotFound(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().GetProduct(mock.Anything, mock.Anything).
		Return(nil, store.ErrNotFound).Once()

	h := handlers.NewAuditHandler(mr)

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, h)

	resp := api.Get("/api/v1/products/33333333-3333-3333-3333-333333333333/audit")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "product not found")
}

func TestGetAudit_StoreError(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().GetProduct(mock.Anything, mock.Anything).
		Return(nil, errors.New("db error")).Once()

	h := handlers.NewAuditHandler(mr)

	_, api := humatest.New(t)
	handlers.RegisterAuditRoutes(api, h)

	resp := api.Get("/api/v1/products/33333333-3333-3333-3333-333333333333/audit")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "building audit failed")
}
