// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	score "github.com/donaldgifford/localflipper/pkg/scorer"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Ebay          EbayConfig          `yaml:"ebay"`
	Source        SourceConfig        `yaml:"source"`
	Travel        TravelConfig        `yaml:"travel"`
	Pricing       PricingConfig       `yaml:"pricing"`
	Demand        DemandConfig        `yaml:"demand"`
	Engine        EngineConfig        `yaml:"engine"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings used to fetch comparables.
type EbayConfig struct {
	AppID            string          `yaml:"app_id"`
	CertID           string          `yaml:"cert_id"`
	TokenURL         string          `yaml:"token_url"`
	BrowseURL        string          `yaml:"browse_url"`
	Marketplace      string          `yaml:"marketplace"`
	ComparablesLimit int             `yaml:"comparables_limit"`
	MaxCallsPerCycle int             `yaml:"max_calls_per_cycle"`
	RateLimit        RateLimitConfig `yaml:"rate_limit"`
}

// Enabled reports whether eBay credentials are configured.
func (e *EbayConfig) Enabled() bool {
	return e.AppID != ""
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SourceConfig defines the scraper feed that supplies local listings.
type SourceConfig struct {
	FeedURL    string        `yaml:"feed_url"`
	APIKey     string        `yaml:"api_key"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxResults int           `yaml:"max_results"`
}

// TravelConfig describes where pickups start from and the vehicle used.
type TravelConfig struct {
	HomeLat        float64 `yaml:"home_lat"`
	HomeLon        float64 `yaml:"home_lon"`
	MPG            float64 `yaml:"mpg"`
	FuelPricePerGl float64 `yaml:"fuel_price_per_gallon"`
}

// PricingConfig holds pricing and deal filter thresholds.
type PricingConfig struct {
	MinMargin    float64 `yaml:"min_margin"`
	LowFraction  float64 `yaml:"low_fraction"`
	TrimFraction float64 `yaml:"trim_fraction"`
	MinProfit    float64 `yaml:"min_profit"`
	MinMarginPct float64 `yaml:"min_margin_pct"`
}

// DemandConfig holds the demand classification thresholds.
type DemandConfig struct {
	Window   time.Duration `yaml:"window"`
	MediumAt float64       `yaml:"medium_at"`
	HighAt   float64       `yaml:"high_at"`
}

// EngineConfig controls the evaluation pipeline.
type EngineConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	SearchInterval time.Duration `yaml:"search_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
	Username   string `yaml:"username"`
}

// TelemetryConfig defines OpenTelemetry export settings.
type TelemetryConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Endpoint     string        `yaml:"endpoint"`
	Insecure     bool          `yaml:"insecure"`
	ServiceName  string        `yaml:"service_name"`
	SampleRatio  float64       `yaml:"sample_ratio"`
	ExportPeriod time.Duration `yaml:"export_period"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ScorerParams returns the scoring thresholds as engine parameters.
func (c *Config) ScorerParams() score.Params {
	return score.Params{
		Demand: score.DemandThresholds{
			Window:   c.Demand.Window,
			MediumAt: c.Demand.MediumAt,
			HighAt:   c.Demand.HighAt,
		},
		Pricing: score.PricingParams{
			MinMargin:    c.Pricing.MinMargin,
			LowFraction:  c.Pricing.LowFraction,
			TrimFraction: c.Pricing.TrimFraction,
		},
	}
}

// FuelParams returns the configured vehicle as engine parameters.
func (c *Config) FuelParams() score.FuelParams {
	return score.FuelParams{
		PricePerGallon: c.Travel.FuelPricePerGl,
		MPG:            c.Travel.MPG,
	}
}

// Home returns the configured pickup origin.
func (c *Config) Home() domain.Location {
	return domain.Location{Lat: c.Travel.HomeLat, Lon: c.Travel.HomeLon}
}

// LoadEnv loads KEY=VALUE pairs from the given files (default ".env") into
// the process environment without overriding variables that are already
// set. Missing files are ignored.
func LoadEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		_ = godotenv.Load(p)
	}
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. Variables from a .env file in the working
// directory are loaded first.
func Load(path string) (*Config, error) {
	LoadEnv()

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied and no
// database or credentials set. It is meant for offline commands that only
// need the scoring parameters.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// setDefault replaces a zero value with def.
func setDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func applyDefaults(cfg *Config) {
	srv := &cfg.Server
	setDefault(&srv.Host, "0.0.0.0")
	setDefault(&srv.Port, 8080)
	setDefault(&srv.ReadTimeout, 30*time.Second)
	setDefault(&srv.WriteTimeout, 30*time.Second)

	db := &cfg.Database
	setDefault(&db.Port, 5432)
	setDefault(&db.SSLMode, "disable")
	setDefault(&db.PoolSize, 10)

	eb := &cfg.Ebay
	setDefault(&eb.TokenURL, "https://api.ebay.com/identity/v1/oauth2/token")
	setDefault(&eb.BrowseURL, "https://api.ebay.com/buy/browse/v1/item_summary/search")
	setDefault(&eb.Marketplace, "EBAY_US")
	setDefault(&eb.ComparablesLimit, 50)
	setDefault(&eb.MaxCallsPerCycle, 100)
	setDefault(&eb.RateLimit.PerSecond, 5.0)
	setDefault(&eb.RateLimit.Burst, 10)
	setDefault(&eb.RateLimit.DailyLimit, 5000)

	setDefault(&cfg.Source.Timeout, 30*time.Second)
	setDefault(&cfg.Source.MaxResults, 50)

	// Scoring defaults come from the scorer package.
	fuel := score.DefaultFuelParams()
	setDefault(&cfg.Travel.MPG, fuel.MPG)
	setDefault(&cfg.Travel.FuelPricePerGl, fuel.PricePerGallon)

	pricing := score.DefaultPricingParams()
	setDefault(&cfg.Pricing.MinMargin, pricing.MinMargin)
	setDefault(&cfg.Pricing.LowFraction, pricing.LowFraction)
	setDefault(&cfg.Pricing.TrimFraction, pricing.TrimFraction)

	demand := score.DefaultDemandThresholds()
	setDefault(&cfg.Demand.Window, demand.Window)
	setDefault(&cfg.Demand.MediumAt, demand.MediumAt)
	setDefault(&cfg.Demand.HighAt, demand.HighAt)

	setDefault(&cfg.Engine.Concurrency, 8)
	setDefault(&cfg.Schedule.SearchInterval, 30*time.Minute)

	setDefault(&cfg.Telemetry.ServiceName, "localflipper")
	setDefault(&cfg.Telemetry.SampleRatio, 1.0)
	setDefault(&cfg.Telemetry.ExportPeriod, 30*time.Second)

	setDefault(&cfg.Logging.Level, "info")
	setDefault(&cfg.Logging.Format, "text")
}

func validate(cfg *Config) error {
	var errs []error
	require := func(failed bool, msg string) {
		if failed {
			errs = append(errs, errors.New(msg))
		}
	}

	db := cfg.Database
	require(db.Host == "", "database.host is required")
	require(db.Name == "", "database.name is required")
	require(db.User == "", "database.user is required")

	require(cfg.Ebay.AppID != "" && cfg.Ebay.CertID == "",
		"ebay.cert_id is required when ebay.app_id is set")

	tr := cfg.Travel
	require(tr.MPG < 0, "travel.mpg must be > 0")
	require(tr.FuelPricePerGl < 0, "travel.fuel_price_per_gallon must be >= 0")
	require(tr.HomeLat < -90 || tr.HomeLat > 90, "travel.home_lat must be within [-90, 90]")
	require(tr.HomeLon < -180 || tr.HomeLon > 180, "travel.home_lon must be within [-180, 180]")

	params := cfg.ScorerParams()
	if err := params.Pricing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pricing: %w", err))
	}
	if err := params.Demand.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("demand: %w", err))
	}

	require(cfg.Engine.Concurrency < 0, "engine.concurrency must be > 0")

	require(cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "",
		"notifications.discord.webhook_url is required when discord is enabled")
	require(cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "",
		"telemetry.endpoint is required when telemetry is enabled")

	return errors.Join(errs...)
}
