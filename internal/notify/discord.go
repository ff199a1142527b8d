package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/localflipper/internal/metrics"
	domain "github.com/donaldgifford/localflipper/pkg/types"
)

// Embed colors by demand label.
const (
	colorGreen  = 0x2ECC71
	colorYellow = 0xF1C40F
	colorOrange = 0xE67E22
)

// Discord rejects messages with more than ten embeds.
const maxEmbeds = 10

const defaultUsername = "LocalFlipper"

// RateLimitedError is returned when Discord answers 429. RetryAfter is the
// wait Discord asked for, zero when it gave none.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("discord rate limited (429), retry after %s", e.RetryAfter)
	}
	return "discord rate limited (429)"
}

// DiscordNotifier posts deal alerts to a Discord channel webhook.
type DiscordNotifier struct {
	webhookURL string
	username   string
	client     *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) { d.client = c }
}

// WithUsername overrides the name the webhook posts as.
func WithUsername(name string) DiscordOption {
	return func(d *DiscordNotifier) {
		if name != "" {
			d.username = name
		}
	}
}

// NewDiscordNotifier creates a DiscordNotifier for webhookURL.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		username:   defaultUsername,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type discordMessage struct {
	Username string         `json:"username,omitempty"`
	Content  string         `json:"content,omitempty"`
	Embeds   []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string         `json:"title"`
	URL         string         `json:"url,omitempty"`
	Color       int            `json:"color"`
	Description string         `json:"description,omitempty"`
	Fields      []discordField `json:"fields,omitempty"`
	Footer      *discordFooter `json:"footer,omitempty"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// SendAlert posts one deal as a single embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return d.send(ctx, discordMessage{Embeds: []discordEmbed{dealEmbed(alert)}})
}

// SendBatchAlert posts up to ten deals in one message. Anything past the
// tenth is folded into a closing summary embed.
func (d *DiscordNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, searchName string) error {
	shown := alerts[:min(len(alerts), maxEmbeds)]
	msg := discordMessage{
		Content: fmt.Sprintf("%d new deal(s) for **%s**", len(alerts), searchName),
		Embeds:  make([]discordEmbed, 0, len(shown)+1),
	}
	for i := range shown {
		msg.Embeds = append(msg.Embeds, dealEmbed(&shown[i]))
	}
	if extra := len(alerts) - len(shown); extra > 0 {
		msg.Embeds = append(msg.Embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more deals for %s", extra, searchName),
			Color:       colorYellow,
			Description: "Run `lfl deals list` for the full list.",
		})
	}
	return d.send(ctx, msg)
}

func dealEmbed(a *AlertPayload) discordEmbed {
	field := func(name, value string) discordField {
		return discordField{Name: name, Value: value, Inline: true}
	}
	return discordEmbed{
		Title: "Deal: " + a.Title,
		URL:   a.URL,
		Color: demandColor(a.Demand),
		Description: fmt.Sprintf("%s listing %.1f mi away, search %q",
			strings.ToUpper(a.Source), a.DistanceMiles, a.SearchName),
		Fields: []discordField{
			field("Asking", dollars(a.AskingPrice)),
			field("Fair Value", dollars(a.FairValue)),
			field("Profit", fmt.Sprintf("%s (%.0f%%)", dollars(a.Profit), a.MarginPct)),
			field("Buy Range", dollars(a.BuyRangeLow)+" - "+dollars(a.BuyRangeHigh)),
			field("Travel", dollars(a.TravelCost)),
			field("Condition", string(a.Condition)),
			field("Demand", string(a.Demand)),
			field("Seller", string(a.SellerRating)),
		},
		Footer: &discordFooter{Text: "verdict: " + string(a.Verdict)},
	}
}

func demandColor(d domain.DemandLabel) int {
	switch d {
	case domain.DemandHigh:
		return colorGreen
	case domain.DemandMedium:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) send(ctx context.Context, msg discordMessage) error {
	start := time.Now()
	defer func() { metrics.NotificationDuration.Observe(time.Since(start).Seconds()) }()

	if msg.Username == "" {
		msg.Username = d.username
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:errcheck // only used for the error text

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: retryAfter(resp.Header, body)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}

// retryAfter reads the wait from Discord's JSON body (seconds, fractional)
// and falls back to the Retry-After header.
func retryAfter(h http.Header, body []byte) time.Duration {
	var rl struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if json.Unmarshal(body, &rl) == nil && rl.RetryAfter > 0 {
		return time.Duration(rl.RetryAfter * float64(time.Second))
	}
	if secs, err := strconv.ParseFloat(h.Get("Retry-After"), 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return 0
}
