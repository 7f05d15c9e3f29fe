package engine

import (
	"fmt"
	"math"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// Message templates are an external contract: recipients and downstream
// tooling key off the exact wording, so changes here are breaking.

// Compose renders the notification text for a notifiable event. It returns
// the empty string for events that never notify.
func Compose(e *domain.ChangeEvent) string {
	switch e.Kind {
	case domain.EventActivation:
		return fmt.Sprintf("Monitoring activated for %s.", e.ProductName)
	case domain.EventPriceChanged:
		msg := fmt.Sprintf("Price Change! %s is now $%.2f.", e.CompetitorName, *e.NewPrice)
		if s := gapSentence(e.Gap); s != "" {
			msg += " " + s
		}
		return msg
	}
	return ""
}

// gapSentence renders the client-vs-competitor gap in the recipient's
// terms. A nil gap (client price unavailable) yields no sentence.
func gapSentence(gap *float64) string {
	if gap == nil {
		return ""
	}
	// Compare at cent precision so a sub-cent float residue does not flip
	// the wording.
	cents := math.Round(*gap * 100)
	switch {
	case cents > 0:
		return fmt.Sprintf("You are $%.2f more expensive than them.", *gap)
	case cents < 0:
		return fmt.Sprintf("You are $%.2f cheaper than them.", math.Abs(*gap))
	default:
		return "You are now price-matched."
	}
}
