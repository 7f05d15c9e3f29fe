package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pricewar-labs/price-guardian/internal/metrics"
	"github.com/pricewar-labs/price-guardian/internal/notify"
	"github.com/pricewar-labs/price-guardian/internal/source"
	"github.com/pricewar-labs/price-guardian/internal/store"
	domain "github.com/pricewar-labs/price-guardian/pkg/types"
)

// Engine orchestrates a monitoring run: fetch, detect, notify, commit.
//
// Per entity the order is strict: the notification must be delivered before
// the observation is committed. A failed delivery leaves the stored state
// untouched so the same change is re-detected on the next run. Losing the
// process between notify and commit therefore duplicates a notification at
// worst; it never loses one.
type Engine struct {
	store    store.Store
	source   source.PriceSource
	notifier notify.Notifier
	detector *Detector
	log      *slog.Logger
	now      func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	src source.PriceSource,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:    s,
		source:   src,
		notifier: n,
		detector: NewDetector(0),
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTolerance sets the absolute price delta treated as "no change".
func WithTolerance(tolerance float64) EngineOption {
	return func(e *Engine) {
		e.detector = NewDetector(tolerance)
	}
}

// WithClock sets the time source, used by tests for deterministic
// checked-at stamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Run executes one monitoring pass over all products and their competitors.
// Individual fetch and delivery failures are counted and skipped; only a
// failure to list the portfolio fails the run itself. The returned Run
// carries the run ID, final status, and counters.
func (eng *Engine) Run(ctx context.Context) (*domain.Run, error) {
	start := eng.now()
	metrics.RunsTotal.Inc()
	defer func() {
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("recording run start: %w", err)
	}

	run := &domain.Run{
		ID:        runID,
		StartedAt: start,
		Status:    domain.RunStatusRunning,
	}

	products, err := eng.store.ListProducts(ctx)
	if err != nil {
		err = fmt.Errorf("listing products: %w", err)
		eng.complete(ctx, run, err)
		return run, err
	}

	var runErr error
	for i := range products {
		if ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}
		eng.checkProduct(ctx, &products[i], &run.RunStats)
	}

	eng.complete(ctx, run, runErr)
	return run, runErr
}

// complete finalizes the run record. Bookkeeping survives cancellation of
// the run context.
func (eng *Engine) complete(ctx context.Context, run *domain.Run, runErr error) {
	run.Status = domain.RunStatusCompleted
	if runErr != nil {
		run.Status = domain.RunStatusFailed
		run.ErrorText = runErr.Error()
	}

	cctx := context.WithoutCancel(ctx)
	if err := eng.store.CompleteRun(cctx, run.ID, run.Status, run.ErrorText, run.RunStats); err != nil {
		eng.log.Error("completing run failed", "run_id", run.ID, "error", err)
	}

	eng.log.Info("run complete",
		"run_id", run.ID,
		"status", run.Status,
		"products_checked", run.ProductsChecked,
		"competitors_checked", run.CompetitorsChecked,
		"price_changes", run.PriceChanges,
		"baselines", run.Baselines,
		"notifications_sent", run.NotificationsSent,
		"fetch_failures", run.FetchFailures,
	)
}

func (eng *Engine) checkProduct(ctx context.Context, p *domain.Product, stats *domain.RunStats) {
	stats.ProductsChecked++
	metrics.ProductsCheckedTotal.Inc()

	clientPrice := eng.refreshClientPrice(ctx, p)

	if ev := eng.detector.Activation(p); ev != nil {
		eng.handleActivation(ctx, p, ev, stats)
	}

	for i := range p.Competitors {
		if ctx.Err() != nil {
			return
		}
		eng.checkCompetitor(ctx, p, &p.Competitors[i], clientPrice, stats)
	}
}

// refreshClientPrice fetches the client's own price and records it. This is
// bookkeeping for gap computation; a failure here never blocks competitor
// checks, it only suppresses the gap sentence for this run.
func (eng *Engine) refreshClientPrice(ctx context.Context, p *domain.Product) *float64 {
	price, err := eng.source.Fetch(ctx, p.BaseURL)
	if err != nil {
		eng.log.Warn("client price fetch failed", "product", p.Name, "error", err)
		return nil
	}

	if err := eng.store.UpdateClientPrice(ctx, p.ID, price, eng.now()); err != nil {
		eng.log.Error("recording client price failed", "product", p.Name, "error", err)
	}
	return &price
}

func (eng *Engine) handleActivation(ctx context.Context, p *domain.Product, ev *domain.ChangeEvent, stats *domain.RunStats) {
	if !eng.send(ctx, p.ChannelID, Compose(ev), stats) {
		return
	}

	err := eng.store.CommitProductChannel(ctx, p.ID, ev.OldChannel, ev.NewChannel)
	switch {
	case errors.Is(err, store.ErrConflict):
		// Another run activated this channel first; its notification
		// already went out, so ours is a benign duplicate.
		stats.Conflicts++
		metrics.CommitConflictsTotal.Inc()
	case err != nil:
		eng.log.Error("committing activation failed", "product", p.Name, "error", err)
	}
}

func (eng *Engine) checkCompetitor(ctx context.Context, p *domain.Product, c *domain.Competitor, clientPrice *float64, stats *domain.RunStats) {
	stats.CompetitorsChecked++

	price, err := eng.source.Fetch(ctx, c.URL)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		stats.FetchFailures++
		metrics.FetchFailuresTotal.Inc()
		eng.log.Warn("competitor fetch failed",
			"product", p.Name,
			"competitor", c.Name,
			"error", err,
		)
		return
	}

	ev := eng.detector.Competitor(p, c, price, clientPrice)
	switch ev.Kind {
	case domain.EventFirstObservation:
		// Silent baseline; no notification for a price never seen before.
		if eng.commitPrice(ctx, c, nil, price, stats) {
			stats.Baselines++
			metrics.BaselinesTotal.Inc()
		}

	case domain.EventPriceChanged:
		stats.PriceChanges++
		metrics.PriceChangesTotal.Inc()
		if !eng.send(ctx, p.ChannelID, Compose(ev), stats) {
			return
		}
		eng.commitPrice(ctx, c, c.LastPrice, price, stats)

	case domain.EventNoChange:
		// Unchanged observations are not recorded; last_checked_at only
		// advances when the stored price does.
	}
}

// send delivers a notification and accounts for the outcome. Returns false
// when delivery failed and the following commit must be skipped.
func (eng *Engine) send(ctx context.Context, channelID, text string, stats *domain.RunStats) bool {
	if err := eng.notifier.Send(ctx, channelID, text); err != nil {
		stats.NotifyFailures++
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Warn("notification failed", "channel", channelID, "error", err)
		return false
	}
	stats.NotificationsSent++
	metrics.NotificationsSentTotal.Inc()
	return true
}

func (eng *Engine) commitPrice(ctx context.Context, c *domain.Competitor, oldPrice *float64, newPrice float64, stats *domain.RunStats) bool {
	err := eng.store.CommitCompetitorPrice(ctx, c.ID, oldPrice, newPrice, eng.now())
	switch {
	case errors.Is(err, store.ErrConflict):
		// A concurrent run already advanced this competitor. Skip silently.
		stats.Conflicts++
		metrics.CommitConflictsTotal.Inc()
		return false
	case err != nil:
		eng.log.Error("committing competitor price failed", "competitor", c.Name, "error", err)
		return false
	}
	return true
}
