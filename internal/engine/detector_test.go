package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

func fptr(v float64) *float64 { return &v }

func TestDetector_Activation(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)

	tests := []struct {
		name       string
		product    domain.Product
		wantEvent  bool
		wantReason string
	}{
		{
			name:       "never activated",
			product:    domain.Product{ID: "p1", Name: "widget", ChannelID: "C123"},
			wantEvent:  true,
			wantReason: domain.ReasonNewProduct,
		},
		{
			name: "channel reassigned",
			product: domain.Product{
				ID: "p1", Name: "widget",
				ChannelID: "C456", ActivatedChannelID: "C123",
			},
			wantEvent:  true,
			wantReason: domain.ReasonChannelChanged,
		},
		{
			name: "already activated",
			product: domain.Product{
				ID: "p1", Name: "widget",
				ChannelID: "C123", ActivatedChannelID: "C123",
			},
			wantEvent: false,
		},
		{
			name:      "no channel assigned",
			product:   domain.Product{ID: "p1", Name: "widget"},
			wantEvent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ev := d.Activation(&tt.product)
			if !tt.wantEvent {
				assert.Nil(t, ev)
				return
			}
			require.NotNil(t, ev)
			assert.Equal(t, domain.EventActivation, ev.Kind)
			assert.Equal(t, tt.wantReason, ev.Reason)
			assert.Equal(t, tt.product.ActivatedChannelID, ev.OldChannel)
			assert.Equal(t, tt.product.ChannelID, ev.NewChannel)
			assert.True(t, ev.Notifiable())
		})
	}
}

func TestDetector_Competitor_FirstObservation(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)
	p := &domain.Product{ID: "p1", Name: "widget"}
	c := &domain.Competitor{ID: "c1", Name: "rival", LastPrice: nil}

	ev := d.Competitor(p, c, 49.99, nil)

	assert.Equal(t, domain.EventFirstObservation, ev.Kind)
	assert.Nil(t, ev.OldPrice)
	assert.InDelta(t, 49.99, *ev.NewPrice, 0.001)
	assert.False(t, ev.Notifiable(), "baselines must never notify")
}

func TestDetector_Competitor_PriceChanged(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)
	p := &domain.Product{ID: "p1", Name: "widget"}
	c := &domain.Competitor{ID: "c1", Name: "rival", LastPrice: fptr(49.99)}

	ev := d.Competitor(p, c, 44.99, fptr(59.99))

	assert.Equal(t, domain.EventPriceChanged, ev.Kind)
	assert.InDelta(t, 49.99, *ev.OldPrice, 0.001)
	assert.InDelta(t, 44.99, *ev.NewPrice, 0.001)
	require.NotNil(t, ev.Gap)
	assert.InDelta(t, 15.00, *ev.Gap, 0.001)
	assert.True(t, ev.Notifiable())
}

func TestDetector_Competitor_NoChange(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)
	p := &domain.Product{ID: "p1", Name: "widget"}
	c := &domain.Competitor{ID: "c1", Name: "rival", LastPrice: fptr(49.99)}

	ev := d.Competitor(p, c, 49.99, fptr(59.99))

	assert.Equal(t, domain.EventNoChange, ev.Kind)
	assert.False(t, ev.Notifiable())
}

func TestDetector_Competitor_GapOmittedWithoutClientPrice(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)
	p := &domain.Product{ID: "p1", Name: "widget"}
	c := &domain.Competitor{ID: "c1", Name: "rival", LastPrice: fptr(49.99)}

	ev := d.Competitor(p, c, 44.99, nil)

	assert.Equal(t, domain.EventPriceChanged, ev.Kind)
	assert.Nil(t, ev.Gap)
}

func TestDetector_Competitor_Tolerance(t *testing.T) {
	t.Parallel()

	d := NewDetector(0.05)
	p := &domain.Product{ID: "p1", Name: "widget"}
	c := &domain.Competitor{ID: "c1", Name: "rival", LastPrice: fptr(49.99)}

	within := d.Competitor(p, c, 50.02, nil)
	assert.Equal(t, domain.EventNoChange, within.Kind)

	beyond := d.Competitor(p, c, 50.10, nil)
	assert.Equal(t, domain.EventPriceChanged, beyond.Kind)
}
