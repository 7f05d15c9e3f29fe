// Package store defines the datastore abstraction for price-guardian.
// Business logic depends on the Store interface, never on concrete
// implementations. Read-only consumers (dashboard, audit) receive the
// narrower Reader so they cannot reach the commit operations.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// ErrConflict is returned by commit operations when the stored value
// changed since it was read. Callers treat it as "another run already
// advanced this entity": skip, do not notify, do not raise.
var ErrConflict = errors.New("store: commit conflict")

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("store: not found")

// Reader defines the read-only data access surface.
type Reader interface {
	// ListProducts returns all tracked products with their competitors,
	// in insertion order. The order carries no semantics but keeps run
	// logs deterministic.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListRuns returns the most recent monitoring runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)

	Ping(ctx context.Context) error
}

// Store defines the full data access surface, including the optimistic
// commit operations used by the monitoring worker.
type Store interface {
	Reader

	// CommitProductChannel advances the product's activated channel from
	// oldChannelID to newChannelID. ErrConflict when the stored value is
	// no longer oldChannelID.
	CommitProductChannel(ctx context.Context, productID, oldChannelID, newChannelID string) error

	// CommitCompetitorPrice advances a competitor's recorded price.
	// oldPrice nil means "expected unobserved" (baseline commit).
	// ErrConflict when the stored last price is no longer oldPrice.
	CommitCompetitorPrice(ctx context.Context, competitorID string, oldPrice *float64, newPrice float64, checkedAt time.Time) error

	// UpdateClientPrice records the freshly fetched client price on the
	// product. Informational bookkeeping for the dashboard; no conflict
	// detection and never tied to a notification.
	UpdateClientPrice(ctx context.Context, productID string, price float64, checkedAt time.Time) error

	// Admin surface, used by the CLI; entities are otherwise created
	// externally.
	CreateProduct(ctx context.Context, p *domain.Product) error
	CreateCompetitor(ctx context.Context, c *domain.Competitor) error

	// Run bookkeeping.
	InsertRun(ctx context.Context) (string, error)
	CompleteRun(ctx context.Context, id, status, errText string, stats domain.RunStats) error

	Migrate(ctx context.Context) error
}
