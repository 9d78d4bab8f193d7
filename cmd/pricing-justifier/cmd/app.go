package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/config"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/engine"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/search"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/specs"
	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/store"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/logger"
	"github.com/aliaa039/Dynamic-Pricing-Justification/pkg/report"
)

// app holds the wired service components shared by the commands.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	store  store.Store
	engine *engine.Engine
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

// newApp opens the configured store and builds the fully wired engine
// around it. Callers must Close the app.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...engine.EngineOption) (*app, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		log:    log,
		store:  st,
		engine: buildEngine(cfg, st, log, opts...),
	}, nil
}

// newAdminApp opens the store with an engine limited to the price database
// and cache. Web search and LLM backends are not configured.
func newAdminApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:   cfg,
		log:   log,
		store: st,
		engine: engine.NewEngine(st,
			engine.WithLogger(logger.Component(log, "engine")),
			engine.WithCacheTTL(cfg.Cache.TTL()),
			engine.WithCurrency(cfg.Pricing.Currency),
		),
	}, nil
}

// withAdminApp runs fn against a store-only app built from the config flag.
func withAdminApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(commandContext(cmd), 60*time.Second)
	defer cancel()

	a, err := newAdminApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (a *app) Close() {
	a.store.Close()
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		return pg, nil
	default:
		js, err := store.NewJSONStore(cfg.Storage.PricesFile, cfg.Storage.CacheFile)
		if err != nil {
			return nil, fmt.Errorf("opening price files: %w", err)
		}
		return js, nil
	}
}

func buildEngine(cfg *config.Config, st store.Store, log *slog.Logger, extra ...engine.EngineOption) *engine.Engine {
	searcher := buildSearcher(cfg, log)
	llm := buildLLM(cfg, log)

	opts := []engine.EngineOption{
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithSearcher(searcher),
		engine.WithCacheTTL(cfg.Cache.TTL()),
		engine.WithCurrency(cfg.Pricing.Currency),
	}

	genOpts := []report.GeneratorOption{
		report.WithMaxTokens(cfg.LLM.MaxTokens),
		report.WithLogger(logger.Component(log, "report")),
	}
	if llm != nil {
		genOpts = append(genOpts, report.WithLLM(llm))
	}
	opts = append(opts, engine.WithReportWriter(report.NewGenerator(genOpts...)))

	if !cfg.Specs.Disabled {
		var s specs.Searcher
		if searcher.Enabled() {
			s = searcher
		}
		opts = append(opts, engine.WithSpecsExtractor(
			specs.NewExtractor(s, llm, logger.Component(log, "specs")),
		))
	}

	return engine.NewEngine(st, append(opts, extra...)...)
}

func buildSearcher(cfg *config.Config, log *slog.Logger) *search.Client {
	sc := cfg.Search
	return search.NewClient(cfg.Credentials.SerpAPIKey,
		search.WithEndpoint(sc.Endpoint),
		search.WithHTTPClient(tracedClient(sc.Timeout)),
		search.WithRateLimiter(search.NewRateLimiter(
			sc.RateLimit.PerSecond, sc.RateLimit.Burst, sc.RateLimit.DailyLimit,
		)),
		search.WithSites(sc.Sites),
		search.WithLocation(sc.Location),
		search.WithResultCount(sc.ResultCount),
		search.WithLogger(logger.Component(log, "search")),
	)
}

// buildLLM returns the configured LLM backend wrapped in the retrying
// client, or nil when the backend is disabled or has no credentials.
func buildLLM(cfg *config.Config, log *slog.Logger) report.LLMBackend {
	lc := cfg.LLM
	hc := tracedClient(lc.Timeout)
	key := cfg.LLMAPIKey()

	var backend report.LLMBackend
	switch lc.Backend {
	case config.LLMGemini:
		if key == "" {
			log.Warn("GEMINI_API_KEY not set, LLM reports disabled")
			return nil
		}
		backend = report.NewGeminiBackend(key,
			report.WithGeminiEndpoint(lc.Gemini.Endpoint),
			report.WithGeminiModel(lc.Gemini.Model),
			report.WithGeminiHTTPClient(hc),
		)
	case config.LLMAnthropic:
		if key == "" {
			log.Warn("ANTHROPIC_API_KEY not set, LLM reports disabled")
			return nil
		}
		backend = report.NewAnthropicBackend(key,
			report.WithAnthropicEndpoint(lc.Anthropic.Endpoint),
			report.WithAnthropicModel(lc.Anthropic.Model),
			report.WithAnthropicHTTPClient(hc),
		)
	case config.LLMOpenAICompat:
		if lc.OpenAICompat.Endpoint == "" {
			log.Warn("llm.openai_compat.endpoint not set, LLM reports disabled")
			return nil
		}
		backend = report.NewOpenAICompatBackend(lc.OpenAICompat.Endpoint, lc.OpenAICompat.Model,
			report.WithOpenAICompatHTTPClient(hc),
			report.WithOpenAICompatAPIKey(key),
		)
	default:
		return nil
	}

	return report.NewClient(backend,
		report.WithMaxAttempts(lc.MaxAttempts),
		report.WithRetryBase(lc.RetryBase),
		report.WithMinInterval(lc.MinInterval),
		report.WithClientLogger(logger.Component(log, "llm")),
	)
}

// tracedClient returns an HTTP client whose requests carry trace context.
func tracedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
