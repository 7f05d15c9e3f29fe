// Package source provides the price source abstraction and its scraping
// implementations behind an interface for testability.
package source

import (
	"context"
	"fmt"
)

// PriceSource resolves a product URL to its current numeric price.
// Implementations must return within a bounded time; timeouts, network
// errors, and unparseable pages are all reported as a *FetchError.
type PriceSource interface {
	Fetch(ctx context.Context, url string) (float64, error)
}

// FetchError describes a failed price fetch. It is terminal for the
// affected entity for the current run; retries happen on the next
// scheduled run, never within one.
type FetchError struct {
	URL    string
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
