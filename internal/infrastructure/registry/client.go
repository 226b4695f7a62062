// Package registry holds the HTTP plumbing shared by the government food registries.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds one registry request, body included
	DefaultTimeout = 15 * time.Second

	// maxBodyBytes caps how much of a registry response is read
	maxBodyBytes = 4 << 20

	userAgent = "AllergenLens/1.0"
)

// Options configures a registry client
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client performs paced GET requests against a registry API
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a registry client. Zero options fall back to defaults.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 5
	}
	if opts.Burst <= 0 {
		opts.Burst = 10
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst),
	}
}

// SetDebug enables logging of raw response bodies
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Get fetches endpoint?params and returns the body of a 200 response.
// Timeouts wrap domain.ErrUpstreamTimeout; every other failure wraps domain.ErrUpstreamFailure.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrUpstreamFailure, err)
	}

	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classify(err)
	}

	if c.debug {
		log.Debug().Str("url", endpoint).Int("status", resp.StatusCode).Str("body", truncate(string(body), 500)).Msg("registry response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	return body, nil
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrUpstreamFailure, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(err)
	}

	return resp, nil
}

// classify wraps a transport error in the matching domain sentinel
func classify(err error) error {
	if IsTimeout(err) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
}

// IsTimeout reports whether err is a deadline or network timeout
func IsTimeout(err error) bool {
	if errors.Is(err, domain.ErrUpstreamTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ResultFromError converts a Get or FirstItem error into a source result
func ResultFromError(err error) domain.SourceResult {
	switch {
	case errors.Is(err, domain.ErrNoItems):
		return domain.NotFound()
	case IsTimeout(err):
		return domain.TimedOut(err)
	default:
		return domain.Failed(err)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
