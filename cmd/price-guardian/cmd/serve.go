package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
	"github.com/pricewar-labs/price-guardian/internal/api/middleware"
	"github.com/pricewar-labs/price-guardian/internal/config"
	"github.com/pricewar-labs/price-guardian/internal/engine"
	"github.com/pricewar-labs/price-guardian/internal/notify"
	"github.com/pricewar-labs/price-guardian/internal/source"
	"github.com/pricewar-labs/price-guardian/internal/store"
	"github.com/pricewar-labs/price-guardian/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and monitoring scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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
		log.Warn("slack disabled, notifications are logged only")
		notifier = notify.NewNoOpNotifier(log)
	}

	eng := engine.NewEngine(st, src, notifier,
		engine.WithLogger(log),
		engine.WithTolerance(cfg.Monitoring.PriceTolerance),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.CheckInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Price Guardian API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(st))
	handlers.RegisterRunRoutes(api, handlers.NewRunsHandler(st, eng))
	handlers.RegisterAuditRoutes(api, handlers.NewAuditHandler(st))
	handlers.RegisterStateRoutes(api, handlers.NewStateHandler(st))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	log.Info("starting server", "addr", addr, "check_interval", cfg.Schedule.CheckInterval)

	// Start server in a goroutine.
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Let an in-flight monitoring run finish before closing the store.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop in time")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
