package engine

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// BuildAuditReport renders a plain-text snapshot of a product's stored
// pricing state. It reads only what previous runs committed; it never
// fetches or writes, so it is safe to call from the read-only API.
func BuildAuditReport(ctx context.Context, r store.Reader, productID string, now time.Time) (string, error) {
	p, err := r.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	return FormatAudit(p, now), nil
}

// FormatAudit renders the audit text for an already-loaded product.
func FormatAudit(p *domain.Product, now time.Time) string {
	lines := []string{
		fmt.Sprintf("Audit: %s", p.Name),
		fmt.Sprintf("Checked: %s", now.UTC().Format(time.RFC3339)),
		fmt.Sprintf("Client price: %s", formatPrice(p.ClientPrice)),
		"",
		"Competitors:",
	}

	observed := 0
	for i := range p.Competitors {
		c := &p.Competitors[i]
		if c.LastPrice == nil {
			continue
		}
		observed++

		var gap *float64
		if p.ClientPrice != nil {
			g := *p.ClientPrice - *c.LastPrice
			gap = &g
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (gap: %s) — %s",
			c.Name, formatPrice(c.LastPrice), formatSigned(gap), c.URL))
	}

	if observed == 0 {
		lines = append(lines, "- No competitor prices available")
	}

	return strings.Join(lines, "\n")
}

// GapText renders the client-vs-competitor relation for display surfaces
// (dashboard listings, not notifications).
func GapText(clientPrice, competitorPrice *float64) string {
	if clientPrice == nil || competitorPrice == nil {
		return "Gap: n/a"
	}
	diff := *clientPrice - *competitorPrice
	cents := math.Round(diff * 100)
	switch {
	case cents > 0:
		return fmt.Sprintf("Gap: $%.2f more expensive", diff)
	case cents < 0:
		return fmt.Sprintf("Gap: $%.2f cheaper", math.Abs(diff))
	default:
		return "Gap: Price Matched"
	}
}

func formatPrice(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func formatSigned(v *float64) string {
	if v == nil {
		return "n/a"
	}
	switch {
	case *v > 0:
		return fmt.Sprintf("+$%.2f", *v)
	case *v < 0:
		return fmt.Sprintf("-$%.2f", math.Abs(*v))
	default:
		return "$0.00"
	}
}
