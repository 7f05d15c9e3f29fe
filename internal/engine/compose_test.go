package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

func TestCompose_Activation(t *testing.T) {
	t.Parallel()

	ev := &domain.ChangeEvent{
		Kind:        domain.EventActivation,
		ProductName: "Mechanical Keyboard",
	}

	assert.Equal(t, "Monitoring activated for Mechanical Keyboard.", Compose(ev))
}

func TestCompose_PriceChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gap  *float64
		want string
	}{
		{
			name: "client more expensive",
			gap:  fptr(15.00),
			want: "Price Change! KeebCo is now $44.99. You are $15.00 more expensive than them.",
		},
		{
			name: "client cheaper",
			gap:  fptr(-5.50),
			want: "Price Change! KeebCo is now $44.99. You are $5.50 cheaper than them.",
		},
		{
			name: "price matched",
			gap:  fptr(0),
			want: "Price Change! KeebCo is now $44.99. You are now price-matched.",
		},
		{
			name: "gap unavailable",
			gap:  nil,
			want: "Price Change! KeebCo is now $44.99.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ev := &domain.ChangeEvent{
				Kind:           domain.EventPriceChanged,
				CompetitorName: "KeebCo",
				NewPrice:       fptr(44.99),
				Gap:            tt.gap,
			}
			assert.Equal(t, tt.want, Compose(ev))
		})
	}
}

func TestCompose_SubCentGapIsPriceMatched(t *testing.T) {
	t.Parallel()

	ev := &domain.ChangeEvent{
		Kind:           domain.EventPriceChanged,
		CompetitorName: "KeebCo",
		NewPrice:       fptr(44.99),
		Gap:            fptr(0.001),
	}

	assert.Equal(t, "Price Change! KeebCo is now $44.99. You are now price-matched.", Compose(ev))
}

func TestCompose_NonNotifiableKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range []domain.EventKind{
		domain.EventFirstObservation,
		domain.EventNoChange,
		domain.EventFetchFailed,
	} {
		ev := &domain.ChangeEvent{Kind: kind, NewPrice: fptr(44.99)}
		assert.Empty(t, Compose(ev), "kind %s must not produce a message", kind)
	}
}
