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
	"go.opentelemetry.io/otel"

	"github.com/aliaa039/Dynamic-Pricing-Justification/api/openapi"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/handlers"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/middleware"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/config"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/tracing"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/logger"
)

const apiTitle = "Dynamic Pricing Justification API"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and cache sweeper",
		Example: `  pricing-justifier serve
  pricing-justifier serve --config configs/config.yaml`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	var engineOpts []engine.EngineOption
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
			Endpoint:       cfg.Tracing.Endpoint,
			Insecure:       cfg.Tracing.Insecure,
			ServiceName:    cfg.Tracing.ServiceName,
			ServiceVersion: Version,
			SampleRatio:    cfg.Tracing.SampleRatio,
		})
		if err != nil {
			return fmt.Errorf("setting up tracing: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				log.Warn("flushing telemetry", "err", err)
			}
		}()
		engineOpts = append(engineOpts, engine.WithTracerProvider(otel.GetTracerProvider()))
		log.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}

	a, err := newApp(ctx, cfg, log, engineOpts...)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Storage.Backend == config.StorageJSON {
		if err := a.store.Migrate(ctx); err != nil {
			return fmt.Errorf("preparing data directory: %w", err)
		}
	}

	features := a.engine.Features()
	log.Info("engine ready",
		"storage", cfg.Storage.Backend,
		"tiers", a.engine.Tiers(),
		"web_search", features.WebSearch,
		"llm_reports", features.LLMReports,
		"specs", features.Specs,
	)

	if !cfg.Cache.DisablePurge {
		sched, err := engine.NewScheduler(a.engine, cfg.Cache.PurgeInterval, logger.Component(log, "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
	}

	e := newServer(a)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("starting server: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, probes, metrics and
// the huma API routes.
func newServer(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	httpLog := logger.Component(a.log, "http")
	e.Use(
		middleware.RequestLog(httpLog),
		middleware.Metrics(),
		middleware.Recovery(httpLog),
	)

	health := handlers.NewHealthHandler(a.engine)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e, "/openapi.json")

	api := humaecho.New(e, huma.DefaultConfig(apiTitle, Version))
	handlers.RegisterHealthRoutes(api, health)
	handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(a.engine))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(a.engine))
	handlers.RegisterWorkflowRoutes(api, handlers.NewWorkflowHandler(a.engine))
	handlers.RegisterPricesRoutes(api, handlers.NewPricesHandler(a.engine))
	handlers.RegisterCacheRoutes(api, handlers.NewCacheHandler(a.engine))

	return e
}
