package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/localflipper/pkg/types"
)

const minimalDB = `
database:
  host: localhost
  name: testdb
  user: testuser
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Minimal(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, minimalDB))
	require.NoError(t, err)

	assert.Equal(t, DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "testdb",
		User:     "testuser",
		SSLMode:  "disable",
		PoolSize: 10,
	}, cfg.Database)
	assert.False(t, cfg.Ebay.Enabled())
	assert.False(t, cfg.Notifications.Discord.Enabled)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	checks := []struct {
		name      string
		got, want any
	}{
		{"server addr", cfg.Server.Host, "0.0.0.0"},
		{"server port", cfg.Server.Port, 8080},
		{"read timeout", cfg.Server.ReadTimeout, 30 * time.Second},
		{"write timeout", cfg.Server.WriteTimeout, 30 * time.Second},
		{"marketplace", cfg.Ebay.Marketplace, "EBAY_US"},
		{"comparables limit", cfg.Ebay.ComparablesLimit, 50},
		{"ebay per second", cfg.Ebay.RateLimit.PerSecond, 5.0},
		{"ebay daily", cfg.Ebay.RateLimit.DailyLimit, int64(5000)},
		{"source timeout", cfg.Source.Timeout, 30 * time.Second},
		{"source max results", cfg.Source.MaxResults, 50},
		{"mpg", cfg.Travel.MPG, 22.0},
		{"fuel price", cfg.Travel.FuelPricePerGl, 4.50},
		{"min margin", cfg.Pricing.MinMargin, 20.0},
		{"low fraction", cfg.Pricing.LowFraction, 0.25},
		{"trim fraction", cfg.Pricing.TrimFraction, 0.10},
		{"demand window", cfg.Demand.Window, 30 * 24 * time.Hour},
		{"medium at", cfg.Demand.MediumAt, 1.0},
		{"high at", cfg.Demand.HighAt, 3.0},
		{"concurrency", cfg.Engine.Concurrency, 8},
		{"search interval", cfg.Schedule.SearchInterval, 30 * time.Minute},
		{"service name", cfg.Telemetry.ServiceName, "localflipper"},
		{"log level", cfg.Logging.Level, "info"},
		{"log format", cfg.Logging.Format, "text"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}

	params := cfg.ScorerParams()
	require.NoError(t, params.Pricing.Validate())
	require.NoError(t, params.Demand.Validate())
	assert.Positive(t, cfg.FuelParams().MPG)
}

func TestLoad_FullFile(t *testing.T) {
	t.Setenv("LFL_TEST_DB_PASSWORD", "s3cret")

	cfg, err := Load(filepath.Join("testdata", "redding.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{Host: "127.0.0.1", Port: 9090, ReadTimeout: time.Minute, WriteTimeout: time.Minute}, cfg.Server)
	assert.Equal(t, "host=db.internal port=5433 dbname=flipper_prod user=flipper password=s3cret sslmode=require",
		cfg.Database.DSN())
	assert.Equal(t, 20, cfg.Database.PoolSize)

	assert.True(t, cfg.Ebay.Enabled())
	assert.Equal(t, 25, cfg.Ebay.ComparablesLimit)
	assert.Equal(t, "http://scraper:9000/listings", cfg.Source.FeedURL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 120, cfg.Source.MaxResults)

	assert.Equal(t, domain.Location{Lat: 40.5865, Lon: -122.3917}, cfg.Home())
	fuel := cfg.FuelParams()
	assert.InDelta(t, 31.0, fuel.MPG, 1e-9)
	assert.InDelta(t, 5.10, fuel.PricePerGallon, 1e-9)

	params := cfg.ScorerParams()
	assert.Equal(t, 14*24*time.Hour, params.Demand.Window)
	assert.InDelta(t, 0.5, params.Demand.MediumAt, 1e-9)
	assert.InDelta(t, 2.0, params.Demand.HighAt, 1e-9)
	assert.InDelta(t, 35.0, params.Pricing.MinMargin, 1e-9)
	assert.InDelta(t, 0.3, params.Pricing.LowFraction, 1e-9)
	assert.InDelta(t, 0.2, params.Pricing.TrimFraction, 1e-9)
	assert.InDelta(t, 25.0, cfg.Pricing.MinProfit, 1e-9)
	assert.InDelta(t, 15.0, cfg.Pricing.MinMarginPct, 1e-9)

	assert.Equal(t, 16, cfg.Engine.Concurrency)
	assert.Equal(t, time.Hour, cfg.Schedule.SearchInterval)
	assert.Equal(t, DiscordConfig{
		Enabled:    true,
		WebhookURL: "https://discord.com/api/webhooks/123",
		Username:   "flipbot",
	}, cfg.Notifications.Discord)
	assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.InDelta(t, 0.25, cfg.Telemetry.SampleRatio, 1e-9)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json"}, cfg.Logging)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		extra   string
		noDB    string
		wantErr string
	}{
		"missing host":          {noDB: "database:\n  name: testdb\n  user: testuser\n", wantErr: "database.host is required"},
		"missing name":          {noDB: "database:\n  host: localhost\n  user: testuser\n", wantErr: "database.name is required"},
		"missing user":          {noDB: "database:\n  host: localhost\n  name: testdb\n", wantErr: "database.user is required"},
		"app id without cert":   {extra: "ebay:\n  app_id: my-app\n", wantErr: "ebay.cert_id is required when ebay.app_id is set"},
		"negative mpg":          {extra: "travel:\n  mpg: -3\n", wantErr: "travel.mpg must be > 0"},
		"latitude off the map":  {extra: "travel:\n  home_lat: 123\n", wantErr: "travel.home_lat must be within [-90, 90]"},
		"low fraction above 1":  {extra: "pricing:\n  low_fraction: 2\n", wantErr: "low fraction must be in [0, 1]"},
		"demand bands inverted": {extra: "demand:\n  medium_at: 4\n  high_at: 2\n", wantErr: "high threshold must be >= medium threshold"},
		"discord without hook":  {extra: "notifications:\n  discord:\n    enabled: true\n", wantErr: "notifications.discord.webhook_url is required"},
		"otel without endpoint": {extra: "telemetry:\n  enabled: true\n", wantErr: "telemetry.endpoint is required when telemetry is enabled"},
		"not yaml":              {noDB: "{{{not valid yaml", wantErr: "parsing config YAML"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			body := minimalDB + tt.extra
			if tt.noDB != "" {
				body = tt.noDB
			}
			_, err := Load(writeConfig(t, body))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LFL_TEST_FROM_DOTENV=hello\nLFL_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("LFL_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("LFL_TEST_FROM_DOTENV"))
	t.Setenv("LFL_TEST_PRESET", "from-env")

	LoadEnv(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "hello", os.Getenv("LFL_TEST_FROM_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("LFL_TEST_PRESET"), "existing variables are not overridden")
}
