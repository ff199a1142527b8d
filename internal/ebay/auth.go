package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultScope    = "https://api.ebay.com/oauth/api_scope"

	// Tokens are refreshed this long before eBay says they expire.
	refreshBuffer = 60 * time.Second
	maxTokenBody  = 64 << 10
)

// grant is an issued application token.
type grant struct {
	token   string
	expires time.Time
}

func (g grant) usable(now time.Time) bool {
	return g.token != "" && now.Before(g.expires.Add(-refreshBuffer))
}

// OAuthTokenProvider implements TokenProvider with the eBay client
// credentials grant. One token is shared by all callers and refreshed
// shortly before it expires. Safe for concurrent use.
type OAuthTokenProvider struct {
	appID, certID string
	tokenURL      string
	scopes        []string
	hc            *http.Client
	now           func() time.Time

	mu      sync.Mutex
	current grant
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL points the provider at a different identity endpoint,
// e.g. the sandbox or a local mock.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) { p.tokenURL = u }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) { p.hc = c }
}

// WithScopes replaces the requested OAuth scopes.
func WithScopes(scopes ...string) OAuthOption {
	return func(p *OAuthTokenProvider) { p.scopes = scopes }
}

// WithNowFunc overrides the clock used for expiry checks.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) { p.now = f }
}

// NewOAuthTokenProvider returns a provider for the given application
// keyset. No request is made until the first Token call.
func NewOAuthTokenProvider(appID, certID string, opts ...OAuthOption) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		appID:    appID,
		certID:   certID,
		tokenURL: defaultTokenURL,
		scopes:   []string{defaultScope},
		hc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns the cached token, requesting a new grant when there is none
// or the current one is inside the refresh window. Concurrent callers wait
// on a single request.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current.usable(p.now()) {
		return p.current.token, nil
	}

	g, err := p.requestGrant(ctx)
	if err != nil {
		return "", err
	}
	p.current = g
	return g.token, nil
}

// Invalidate forgets the cached token. Called when the Browse API rejects a
// token that has not yet reached its advertised expiry.
func (p *OAuthTokenProvider) Invalidate() {
	p.mu.Lock()
	p.current = grant{}
	p.mu.Unlock()
}

func (p *OAuthTokenProvider) requestGrant(ctx context.Context) (grant, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", strings.Join(p.scopes, " "))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return grant{}, fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.appID, p.certID)

	issuedAt := p.now()
	resp, err := p.hc.Do(req)
	if err != nil {
		return grant{}, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBody))
	if err != nil {
		return grant{}, fmt.Errorf("reading token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return grant{}, grantError(resp.StatusCode, body)
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return grant{}, fmt.Errorf("parsing token response: %w", err)
	}
	if tr.AccessToken == "" {
		return grant{}, errors.New("token response did not include an access token")
	}

	return grant{
		token:   tr.AccessToken,
		expires: issuedAt.Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

// grantError describes a rejected grant, using eBay's OAuth error body when
// it is present.
func grantError(status int, body []byte) error {
	var e struct {
		Code        string `json:"error"`
		Description string `json:"error_description"`
	}
	if json.Unmarshal(body, &e) == nil && e.Code != "" {
		return fmt.Errorf("token grant rejected (status %d): %s: %s", status, e.Code, e.Description)
	}
	return fmt.Errorf("token grant failed (status %d)", status)
}
