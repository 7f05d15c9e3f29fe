// Package domain defines the core business types for price-guardian.
package domain

import (
	"time"
)

// Product is the client's own item being defended against competitors.
type Product struct {
	ID      string `json:"id"       db:"id"`
	Name    string `json:"name"     db:"name"`
	BaseURL string `json:"base_url" db:"base_url"`

	// ChannelID is the notification channel currently assigned to the
	// product. ActivatedChannelID is the last channel for which an
	// activation notification was committed; empty means the product has
	// never been activated.
	ChannelID          string `json:"channel_id"                     db:"channel_id"`
	ActivatedChannelID string `json:"activated_channel_id,omitempty" db:"activated_channel_id"`

	ClientPrice     *float64   `json:"client_price,omitempty"      db:"client_price"`
	ClientCheckedAt *time.Time `json:"client_checked_at,omitempty" db:"client_checked_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Competitors []Competitor `json:"competitors" db:"-"`
}

// Competitor is a rival offering tracked against exactly one product.
// LastPrice is nil until a baseline observation has been committed.
type Competitor struct {
	ID            string     `json:"id"                        db:"id"`
	ProductID     string     `json:"product_id"                db:"product_id"`
	Name          string     `json:"name"                      db:"name"`
	URL           string     `json:"url"                       db:"url"`
	LastPrice     *float64   `json:"last_price,omitempty"      db:"last_price"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty" db:"last_checked_at"`
	CreatedAt     time.Time  `json:"created_at"                db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"                db:"updated_at"`
}

// EventKind classifies a change-detection verdict.
type EventKind string

// Event kind constants.
const (
	// EventActivation covers both "product first seen" and "channel
	// reassigned"; at most one is emitted per product per run.
	EventActivation       EventKind = "activation"
	EventFirstObservation EventKind = "first_observation"
	EventPriceChanged     EventKind = "price_changed"
	EventNoChange         EventKind = "no_change"
	EventFetchFailed      EventKind = "fetch_failed"
)

// Activation reasons.
const (
	ReasonNewProduct     = "new_product"
	ReasonChannelChanged = "channel_changed"
)

// ChangeEvent is the ephemeral per-entity verdict produced by the change
// detector during a single run. It is never persisted; it only drives the
// composer and the subsequent commit.
type ChangeEvent struct {
	Kind EventKind

	ProductID   string
	ProductName string

	// Competitor fields are zero for product-level events.
	CompetitorID   string
	CompetitorName string

	// OldPrice is nil for first observations. Gap is client price minus
	// the competitor's current price; nil when the client price could not
	// be fetched this run.
	OldPrice *float64
	NewPrice *float64
	Gap      *float64

	OldChannel string
	NewChannel string

	// Reason carries the activation reason or the fetch failure text.
	Reason string
}

// Notifiable reports whether this event results in a notification.
// First observations establish a silent baseline and never notify.
func (e *ChangeEvent) Notifiable() bool {
	return e.Kind == EventActivation || e.Kind == EventPriceChanged
}

// RunStats aggregates per-run counters. Individual entity failures are
// counted here rather than failing the run.
type RunStats struct {
	ProductsChecked    int `json:"products_checked"    db:"products_checked"`
	CompetitorsChecked int `json:"competitors_checked" db:"competitors_checked"`
	PriceChanges       int `json:"price_changes"       db:"price_changes"`
	Baselines          int `json:"baselines"           db:"baselines"`
	NotificationsSent  int `json:"notifications_sent"  db:"notifications_sent"`
	FetchFailures      int `json:"fetch_failures"      db:"fetch_failures"`
	NotifyFailures     int `json:"notify_failures"     db:"notify_failures"`
	Conflicts          int `json:"conflicts"           db:"conflicts"`
}

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run records a single execution of the monitoring worker.
type Run struct {
	ID          string     `json:"id"                     db:"id"`
	StartedAt   time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status      string     `json:"status"                 db:"status"`
	ErrorText   string     `json:"error_text,omitempty"   db:"error_text"`

	RunStats
}
