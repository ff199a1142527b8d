package cmd

import (
	"log/slog"
	"time"

	"github.com/donaldgifford/localflipper/internal/config"
	"github.com/donaldgifford/localflipper/internal/ebay"
	"github.com/donaldgifford/localflipper/internal/engine"
	"github.com/donaldgifford/localflipper/internal/notify"
	"github.com/donaldgifford/localflipper/internal/source"
	"github.com/donaldgifford/localflipper/internal/store"
)

// eBay application quotas reset at midnight Pacific time.
const quotaTimezone = "America/Los_Angeles"

// newMarket builds the eBay comparables lookup. Without credentials it
// returns ebay.Unconfigured and a nil rate limiter.
func newMarket(cfg *config.Config, log *slog.Logger) (ebay.MarketData, *ebay.RateLimiter) {
	if !cfg.Ebay.Enabled() {
		log.Warn("eBay credentials not configured, live comparables disabled")
		return ebay.Unconfigured{}, nil
	}

	loc, err := time.LoadLocation(quotaTimezone)
	if err != nil {
		log.Warn("loading quota timezone failed, using UTC", "error", err)
		loc = time.UTC
	}

	rl := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
		ebay.WithQuotaLocation(loc),
	)
	tokens := ebay.NewOAuthTokenProvider(cfg.Ebay.AppID, cfg.Ebay.CertID,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
	)
	browse := ebay.NewBrowseClient(tokens,
		ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithRateLimiter(rl),
	)
	market := ebay.NewMarket(browse,
		ebay.WithComparablesLimit(cfg.Ebay.ComparablesLimit),
		ebay.WithMarketLogger(log),
	)
	return market, rl
}

func newSource(cfg *config.Config, log *slog.Logger) *source.FeedSource {
	if cfg.Source.FeedURL == "" {
		log.Warn("source.feed_url not configured, search runs will fail")
	}
	return source.NewFeedSource(cfg.Source.FeedURL,
		source.WithAPIKey(cfg.Source.APIKey),
		source.WithTimeout(cfg.Source.Timeout),
		source.WithDefaultMaxResults(cfg.Source.MaxResults),
		source.WithValidator(source.NewValidator(cfg.Home(), log)),
		source.WithFeedLogger(log),
	)
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL,
			notify.WithUsername(cfg.Notifications.Discord.Username),
		)
	}
	return notify.NewNoOpNotifier(log)
}

func newEngine(
	cfg *config.Config,
	st store.Store,
	src source.ListingSource,
	market ebay.MarketData,
	n notify.Notifier,
	log *slog.Logger,
) *engine.Engine {
	return engine.NewEngine(st, src, market, n,
		engine.WithLogger(log),
		engine.WithParams(cfg.ScorerParams()),
		engine.WithFuel(cfg.FuelParams()),
		engine.WithDealFilter(engine.DealFilter{
			MinProfit:    cfg.Pricing.MinProfit,
			MinMarginPct: cfg.Pricing.MinMarginPct,
		}),
		engine.WithConcurrency(cfg.Engine.Concurrency),
		engine.WithMaxCallsPerCycle(cfg.Ebay.MaxCallsPerCycle),
	)
}
