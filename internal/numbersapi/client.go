package numbersapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/number-classifier/internal/common"
	"github.com/Veraticus/number-classifier/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Defaults applied by NewClient for zero-valued Config fields.
const (
	DefaultBaseURL           = "http://numbersapi.com"
	DefaultTimeout           = 5 * time.Second
	DefaultMaxAttempts       = 2
	DefaultRequestsPerMinute = 120

	// maxFactBytes bounds how much of a response body is read.
	maxFactBytes = 16 << 10
)

// Config configures the fact client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	MaxAttempts       int
	RequestsPerMinute int
}

// DefaultConfig returns the configuration used for the public Numbers API.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		Timeout:           DefaultTimeout,
		MaxAttempts:       DefaultMaxAttempts,
		RequestsPerMinute: DefaultRequestsPerMinute,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: facts base URL is required", common.ErrMissingConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: facts base URL: %v", common.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: facts base URL must be http or https, got %q", common.ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: facts timeout must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// Client implements service.FactFetcher against a Numbers API host.
type Client struct {
	httpClient *http.Client
	limiter    *rateLimiter
	baseURL    string
	retry      service.RetryOptions
}

var _ service.FactFetcher = (*Client)(nil)

// NewClient creates a fact client. Zero-valued fields in cfg take defaults.
// Call Close to release the rate limiter.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: newRateLimiter(cfg.RequestsPerMinute),
		retry: service.RetryOptions{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2,
		},
	}, nil
}

// Fact returns the math fact for number. The body is returned verbatim apart
// from trailing whitespace.
func (c *Client) Fact(ctx context.Context, number int64) (string, error) {
	var fact string
	err := common.WithRetry(ctx, func() error {
		if err := c.limiter.wait(ctx); err != nil {
			return common.Permanent(err)
		}
		var err error
		fact, err = c.fetch(ctx, number)
		return err
	}, c.retry)
	if err != nil {
		return "", err
	}
	return fact, nil
}

// Close stops background work owned by the client.
func (c *Client) Close() {
	c.limiter.close()
}

// FactURL returns the URL queried for number.
func (c *Client) FactURL(number int64) string {
	return c.baseURL + "/" + strconv.FormatInt(number, 10) + "/math"
}

func (c *Client) fetch(ctx context.Context, number int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FactURL(number), nil)
	if err != nil {
		return "", common.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "text/plain")

	slog.Debug("Requesting number fact", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrFactUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactBytes))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", common.ErrFactUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := fmt.Errorf("%w: status %d - %s", common.ErrFactUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %w", common.ErrRateLimit, statusErr)
		}
		if resp.StatusCode < 500 {
			return "", common.Permanent(statusErr)
		}
		return "", statusErr
	}

	return strings.TrimRight(string(body), " \t\r\n"), nil
}

// Static is a FactFetcher that always returns the same fact.
type Static string

// Fact returns s.
func (s Static) Fact(context.Context, int64) (string, error) {
	return string(s), nil
}
