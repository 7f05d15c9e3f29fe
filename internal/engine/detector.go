package engine

import (
	"math"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// Detector turns the stored state plus a fresh observation into a change
// verdict. It holds no I/O; price fetching and commits happen in the engine.
type Detector struct {
	tolerance float64
}

// NewDetector creates a detector. tolerance is the absolute price delta
// below which two observations are considered equal; zero means exact
// comparison.
func NewDetector(tolerance float64) *Detector {
	return &Detector{tolerance: tolerance}
}

// Activation reports whether the product needs an activation notification.
// Returns nil when the product has no channel assigned or the assigned
// channel has already been activated.
func (d *Detector) Activation(p *domain.Product) *domain.ChangeEvent {
	if p.ChannelID == "" || p.ChannelID == p.ActivatedChannelID {
		return nil
	}

	reason := domain.ReasonNewProduct
	if p.ActivatedChannelID != "" {
		reason = domain.ReasonChannelChanged
	}

	return &domain.ChangeEvent{
		Kind:        domain.EventActivation,
		ProductID:   p.ID,
		ProductName: p.Name,
		OldChannel:  p.ActivatedChannelID,
		NewChannel:  p.ChannelID,
		Reason:      reason,
	}
}

// Competitor classifies a fresh competitor observation against the stored
// last price. clientPrice may be nil when the client's own price could not
// be fetched this run; the gap is then omitted from the event.
func (d *Detector) Competitor(p *domain.Product, c *domain.Competitor, newPrice float64, clientPrice *float64) *domain.ChangeEvent {
	ev := &domain.ChangeEvent{
		ProductID:      p.ID,
		ProductName:    p.Name,
		CompetitorID:   c.ID,
		CompetitorName: c.Name,
		OldPrice:       c.LastPrice,
		NewPrice:       &newPrice,
	}

	if c.LastPrice == nil {
		ev.Kind = domain.EventFirstObservation
		return ev
	}

	if math.Abs(*c.LastPrice-newPrice) <= d.tolerance {
		ev.Kind = domain.EventNoChange
		return ev
	}

	ev.Kind = domain.EventPriceChanged
	if clientPrice != nil {
		gap := *clientPrice - newPrice
		ev.Gap = &gap
	}
	return ev
}
