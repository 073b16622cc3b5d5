// Package overpass is a client for Overpass API interpreter endpoints,
// with bounded retries, exponential backoff, and a liveness probe.
package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mapgrove/osmpoly/internal/resilience"
)

const (
	defaultEndpoint  = "https://overpass-api.de/api/interpreter"
	defaultUserAgent = "osmpoly/1.0 (github.com/mapgrove/osmpoly)"

	// The availability probe is independent of the configured retry
	// policy: one minimal query, short fixed timeout, no retries.
	probeQuery   = "[bbox:0,0,0.1,0.1];node;out count;"
	probeTimeout = 5 * time.Second
)

// Config holds the immutable per-client settings.
type Config struct {
	// Endpoint is the interpreter URL. Default: the public
	// overpass-api.de instance.
	Endpoint string

	// Timeout bounds each individual attempt. Default: 30s.
	Timeout time.Duration

	// MaxRetries is the total number of attempts per Query call, the
	// first try included. Default: 3.
	MaxRetries int

	// RetryDelay is the wait before the second attempt; it doubles after
	// every further failure. Default: 1s.
	RetryDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = 3
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = time.Second
	}
	return c
}

// Client issues Overpass QL queries against one endpoint.
type Client struct {
	cfg       Config
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRateLimit sets the requests-per-second budget against the endpoint.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a client. Zero-value config fields take the documented
// defaults.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:       cfg.withDefaults(),
		http:      &http.Client{},
		limiter:   rate.NewLimiter(2, 2), // public-instance etiquette
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryError reports a non-2xx interpreter response.
type QueryError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("overpass: query failed: %s: %s", e.Status, e.Body)
}

// Query runs one Overpass QL statement. Failed attempts (transport error,
// non-2xx status, or undecodable body) are retried with exponential
// backoff up to MaxRetries total attempts; the first success returns
// immediately. After the final failed attempt the last underlying error
// is returned as-is.
func (c *Client) Query(ctx context.Context, ql string) (*Response, error) {
	retryCfg := resilience.RetryConfig{
		MaxAttempts:    c.cfg.MaxRetries,
		InitialBackoff: c.cfg.RetryDelay,
		Multiplier:     2.0,
		ShouldRetry:    func(error) bool { return true },
		OnRetry:        resilience.RetryLogger("overpass", "query"),
	}
	return resilience.DoVal(ctx, retryCfg, func(ctx context.Context) (*Response, error) {
		return c.attempt(ctx, ql)
	})
}

func (c *Client) attempt(ctx context.Context, ql string) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := c.post(ctx, ql)
	if err != nil {
		return nil, err
	}
	return decodeResponse(body)
}

func (c *Client) post(ctx context.Context, ql string) ([]byte, error) {
	form := url.Values{"data": {ql}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &QueryError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// IsAvailable probes the endpoint with a minimal count query under a
// fixed 5-second timeout. It never retries and reports false on any
// transport failure or non-OK status.
func (c *Client) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	form := url.Values{"data": {probeQuery}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}
