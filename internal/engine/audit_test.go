package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pricewar-labs/price-guardian/internal/store"
	storeMocks "github.com/pricewar-labs/price-guardian/internal/store/mocks"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

func TestFormatAudit(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := &domain.Product{
		Name:        "widget",
		ClientPrice: fptr(59.99),
		Competitors: []domain.Competitor{
			{Name: "rival-a", URL: "https://a.example.com/w", LastPrice: fptr(44.99)},
			{Name: "rival-b", URL: "https://b.example.com/w", LastPrice: fptr(64.99)},
			{Name: "rival-c", URL: "https://c.example.com/w"}, // never observed
		},
	}

	got := FormatAudit(p, now)

	want := "Audit: widget\n" +
		"Checked: 2025-06-01T12:00:00Z\n" +
		"Client price: $59.99\n" +
		"\n" +
		"Competitors:\n" +
		"- rival-a: $44.99 (gap: +$15.00) — https://a.example.com/w\n" +
		"- rival-b: $64.99 (gap: -$5.00) — https://b.example.com/w"

	assert.Equal(t, want, got)
}

func TestFormatAudit_NoObservations(t *testing.T) {
	t.Parallel()

	p := &domain.Product{
		Name: "widget",
		Competitors: []domain.Competitor{
			{Name: "rival-a", URL: "https://a.example.com/w"},
		},
	}

	got := FormatAudit(p, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, got, "Client price: n/a")
	assert.Contains(t, got, "- No competitor prices available")
}

func TestFormatAudit_GapOmittedWithoutClientPrice(t *testing.T) {
	t.Parallel()

	p := &domain.Product{
		Name: "widget",
		Competitors: []domain.Competitor{
			{Name: "rival-a", URL: "https://a.example.com/w", LastPrice: fptr(44.99)},
		},
	}

	got := FormatAudit(p, time.Now())
	assert.Contains(t, got, "- rival-a: $44.99 (gap: n/a) — https://a.example.com/w")
}

func TestBuildAuditReport(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	p := &domain.Product{Name: "widget", ClientPrice: fptr(59.99)}
	mr.EXPECT().GetProduct(mock.Anything, "p1").Return(p, nil).Once()

	got, err := BuildAuditReport(context.Background(), mr, "p1", time.Now())
	require.NoError(t, err)
	assert.Contains(t, got, "Audit: widget")
}

func TestBuildAuditReport_NotFound(t *testing.T) {
	t.Parallel()

	mr := storeMocks.NewMockReader(t)
	mr.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, store.ErrNotFound).Once()

	_, err := BuildAuditReport(context.Background(), mr, "missing", time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		client     *float64
		competitor *float64
		want       string
	}{
		{"more expensive", fptr(59.99), fptr(44.99), "Gap: $15.00 more expensive"},
		{"cheaper", fptr(39.99), fptr(44.99), "Gap: $5.00 cheaper"},
		{"matched", fptr(44.99), fptr(44.99), "Gap: Price Matched"},
		{"no client price", nil, fptr(44.99), "Gap: n/a"},
		{"no competitor price", fptr(59.99), nil, "Gap: n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GapText(tt.client, tt.competitor))
		})
	}
}
