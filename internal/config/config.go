// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution. API credentials are
// read from the environment only.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

// LLM backends.
const (
	LLMGemini       = "gemini"
	LLMAnthropic    = "anthropic"
	LLMOpenAICompat = "openai_compat"
	LLMNone         = "none"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Pricing PricingConfig `yaml:"pricing"`
	Search  SearchConfig  `yaml:"search"`
	LLM     LLMConfig     `yaml:"llm"`
	Specs   SpecsConfig   `yaml:"specs"`
	Tracing TracingConfig `yaml:"tracing"`
	Logging LoggingConfig `yaml:"logging"`

	Credentials Credentials `yaml:"-"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// StorageConfig selects and configures the price database backend.
type StorageConfig struct {
	Backend    string         `yaml:"backend"` // json, postgres
	PricesFile string         `yaml:"prices_file"`
	CacheFile  string         `yaml:"cache_file"`
	Database   DatabaseConfig `yaml:"database"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// CacheConfig controls web price cache expiry and the purge sweeper.
type CacheConfig struct {
	ExpiryDays    int           `yaml:"expiry_days"`
	PurgeInterval time.Duration `yaml:"purge_interval"`
	DisablePurge  bool          `yaml:"disable_purge"`
}

// TTL returns the cache expiry as a duration.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryDays) * 24 * time.Hour
}

// PricingConfig defines pricing defaults.
type PricingConfig struct {
	Currency string `yaml:"currency"`
}

// SearchConfig defines the SerpAPI web price search settings.
type SearchConfig struct {
	Endpoint    string          `yaml:"endpoint"`
	Location    string          `yaml:"location"`
	Sites       []string        `yaml:"sites"`
	ResultCount int             `yaml:"result_count"`
	Timeout     time.Duration   `yaml:"timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines outbound search rate limiting.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LLMConfig defines the report and specification LLM backend.
type LLMConfig struct {
	Backend      string             `yaml:"backend"` // gemini, anthropic, openai_compat, none
	Gemini       GeminiConfig       `yaml:"gemini"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	MaxAttempts  int                `yaml:"max_attempts"`
	RetryBase    time.Duration      `yaml:"retry_base"`
	MinInterval  time.Duration      `yaml:"min_interval"`
	MaxTokens    int                `yaml:"max_tokens"`
	Timeout      time.Duration      `yaml:"timeout"`
}

// GeminiConfig defines Google Gemini API settings.
type GeminiConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings.
type AnthropicConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// SpecsConfig controls product specification lookup.
type SpecsConfig struct {
	Disabled bool `yaml:"disabled"`
}

// TracingConfig controls the OTLP trace and metric exporters.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Credentials holds API keys and secrets taken from the environment. Any of
// them may be empty; the matching feature is then disabled.
type Credentials struct {
	SerpAPIKey      string `env:"SERPAPI_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	DatabaseURL     string `env:"DATABASE_URL"`
}

// LoadCredentials reads Credentials from the environment.
func LoadCredentials() (Credentials, error) {
	var c Credentials
	if err := env.Parse(&c); err != nil {
		return Credentials{}, fmt.Errorf("parsing credentials: %w", err)
	}
	return c, nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	creds, err := LoadCredentials()
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// DatabaseURL returns the Postgres connection string, preferring
// DATABASE_URL over the storage.database section.
func (c *Config) DatabaseURL() string {
	if c.Credentials.DatabaseURL != "" {
		return c.Credentials.DatabaseURL
	}
	return c.Storage.Database.DSN()
}

// LLMAPIKey returns the credential for the configured LLM backend.
func (c *Config) LLMAPIKey() string {
	switch c.LLM.Backend {
	case LLMGemini:
		return c.Credentials.GeminiAPIKey
	case LLMAnthropic:
		return c.Credentials.AnthropicAPIKey
	case LLMOpenAICompat:
		return c.Credentials.OpenAIAPIKey
	default:
		return ""
	}
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStorageDefaults(&cfg.Storage)
	applyCacheDefaults(&cfg.Cache)
	applyPricingDefaults(&cfg.Pricing)
	applySearchDefaults(&cfg.Search)
	applyLLMDefaults(&cfg.LLM)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 120 * time.Second
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Backend == "" {
		s.Backend = StorageJSON
	}
	if s.PricesFile == "" {
		s.PricesFile = "data/price_database.json"
	}
	if s.CacheFile == "" {
		s.CacheFile = "data/price_cache.json"
	}
	if s.Database.Port == 0 {
		s.Database.Port = 5432
	}
	if s.Database.SSLMode == "" {
		s.Database.SSLMode = "disable"
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.ExpiryDays == 0 {
		c.ExpiryDays = 7
	}
	if c.PurgeInterval == 0 {
		c.PurgeInterval = 6 * time.Hour
	}
}

func applyPricingDefaults(p *PricingConfig) {
	if p.Currency == "" {
		p.Currency = "EGP"
	}
}

func applySearchDefaults(s *SearchConfig) {
	if s.Endpoint == "" {
		s.Endpoint = "https://serpapi.com/search"
	}
	if s.Location == "" {
		s.Location = "Egypt"
	}
	if s.ResultCount == 0 {
		s.ResultCount = 30
	}
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 1.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 2
	}
	if s.RateLimit.DailyLimit == 0 {
		s.RateLimit.DailyLimit = 100
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = LLMGemini
	}
	if l.Gemini.Model == "" {
		l.Gemini.Model = "gemini-2.5-flash"
	}
	if l.Anthropic.Model == "" {
		l.Anthropic.Model = "claude-sonnet-4-20250514"
	}
	if l.MaxAttempts == 0 {
		l.MaxAttempts = 3
	}
	if l.RetryBase == 0 {
		l.RetryBase = time.Second
	}
	if l.MinInterval == 0 {
		l.MinInterval = time.Second
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 2048
	}
	if l.Timeout == 0 {
		l.Timeout = 60 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "pricing-justifier"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 0 and 65535 (got %d)", cfg.Server.Port))
	}

	switch cfg.Storage.Backend {
	case StorageJSON:
	case StoragePostgres:
		if cfg.Credentials.DatabaseURL == "" {
			if cfg.Storage.Database.Host == "" {
				errs = append(errs, errors.New("storage.database.host is required when backend is postgres"))
			}
			if cfg.Storage.Database.Name == "" {
				errs = append(errs, errors.New("storage.database.name is required when backend is postgres"))
			}
			if cfg.Storage.Database.User == "" {
				errs = append(errs, errors.New("storage.database.user is required when backend is postgres"))
			}
		}
	default:
		errs = append(errs, fmt.Errorf(
			"storage.backend must be one of: json, postgres (got %q)", cfg.Storage.Backend,
		))
	}

	if cfg.Cache.ExpiryDays < 0 {
		errs = append(errs, errors.New("cache.expiry_days must not be negative"))
	}
	if cfg.Cache.PurgeInterval < time.Minute {
		errs = append(errs, fmt.Errorf("cache.purge_interval must be at least 1m (got %s)", cfg.Cache.PurgeInterval))
	}

	if cfg.Search.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("search.rate_limit.per_second must not be negative"))
	}

	switch cfg.LLM.Backend {
	case LLMGemini, LLMAnthropic, LLMNone:
	case LLMOpenAICompat:
		if cfg.LLM.OpenAICompat.Endpoint == "" {
			errs = append(errs, errors.New("llm.openai_compat.endpoint is required when backend is openai_compat"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"llm.backend must be one of: gemini, anthropic, openai_compat, none (got %q)",
			cfg.LLM.Backend,
		))
	}
	if cfg.LLM.MaxAttempts < 1 {
		errs = append(errs, errors.New("llm.max_attempts must be at least 1"))
	}

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("tracing.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
