package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pricewar-labs/price-guardian/internal/config"
	"github.com/pricewar-labs/price-guardian/internal/engine"
	"github.com/pricewar-labs/price-guardian/internal/notify"
	"github.com/pricewar-labs/price-guardian/internal/source"
	"github.com/pricewar-labs/price-guardian/internal/store"
	"github.com/pricewar-labs/price-guardian/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a single monitoring pass and exit",
	Long: "Run one monitoring pass against all tracked products without the\n" +
		"API server or scheduler. Useful for cron-driven deployments and for\n" +
		"verifying configuration.",
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	src := source.NewClient(
		source.WithHTTPClient(&http.Client{Timeout: cfg.Source.Timeout}),
		source.WithRateLimit(cfg.Source.RateLimit.PerSecond, cfg.Source.RateLimit.Burst),
		source.WithReaderProxy(cfg.Source.ReaderProxyURL),
		source.WithUserAgent(cfg.Source.UserAgent),
	)

	var notifier notify.Notifier
	if cfg.Slack.Enabled {
		notifier = notify.NewSlackNotifier(cfg.Slack.BotToken, notify.WithAPIURL(cfg.Slack.APIURL))
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	eng := engine.NewEngine(st, src, notifier,
		engine.WithLogger(log),
		engine.WithTolerance(cfg.Monitoring.PriceTolerance),
	)

	run, err := eng.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("monitoring run: %w", err)
	}

	fmt.Printf("Run %s %s\n", run.ID, run.Status)
	fmt.Printf("  products checked:    %d\n", run.ProductsChecked)
	fmt.Printf("  competitors checked: %d\n", run.CompetitorsChecked)
	fmt.Printf("  price changes:       %d\n", run.PriceChanges)
	fmt.Printf("  baselines:           %d\n", run.Baselines)
	fmt.Printf("  notifications sent:  %d\n", run.NotificationsSent)
	fmt.Printf("  fetch failures:      %d\n", run.FetchFailures)
	fmt.Printf("  notify failures:     %d\n", run.NotifyFailures)
	fmt.Printf("  conflicts:           %d\n", run.Conflicts)
	return nil
}
