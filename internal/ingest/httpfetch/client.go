// Package httpfetch issues paced GET requests with a fixed per-request
// deadline. Requests run one at a time; callers never retry.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultThrottle = 300 * time.Millisecond

	maxBody = 32 << 20
)

// Cache stores response bodies by URL.
type Cache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Set(ctx context.Context, url string, body []byte, ttl time.Duration) error
}

// Options configure a Client. Zero values fall back to defaults, except
// Throttle where zero disables pacing.
type Options struct {
	Timeout   time.Duration
	Throttle  time.Duration
	UserAgent string
	Headers   map[string]string

	// Cache is consulted only when CacheTTL is positive.
	Cache    Cache
	CacheTTL time.Duration

	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client fetches URLs sequentially, waiting Throttle between requests.
type Client struct {
	http      *http.Client
	timeout   time.Duration
	userAgent string
	headers   map[string]string
	limiter   *rate.Limiter
	cache     Cache
	cacheTTL  time.Duration
	logger    *logging.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	return &Client{
		http:      opts.HTTPClient,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		headers:   opts.Headers,
		limiter:   NewLimiter(opts.Throttle),
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		logger:    opts.Logger.With("component", "httpfetch"),
	}
}

// NewLimiter allows one request immediately and then one per interval.
// A non-positive interval never waits.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d %s", e.Code, http.StatusText(e.Code))
}

// Status returns the HTTP status carried by err, if any.
func Status(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// Get returns the body of url. Transport failures and non-2xx statuses are
// RemoteFetch errors.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if body, ok := c.cached(ctx, url); ok {
		return body, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.RemoteFetch(err, "wait to fetch %s", url)
	}

	body, err := c.do(ctx, url)
	if err != nil {
		return nil, err
	}

	c.store(ctx, url, body)
	return body, nil
}

func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.RemoteFetch(err, "build request for %s", url)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.RemoteFetch(err, "GET %s", url)
	}
	defer resp.Body.Close()

	c.logger.Debug("fetched", "url", url, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errs.RemoteFetch(&StatusError{URL: url, Code: resp.StatusCode}, "GET %s", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errs.RemoteFetch(err, "read body of %s", url)
	}
	return body, nil
}

func (c *Client) cached(ctx context.Context, url string) ([]byte, bool) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, url)
	if err != nil {
		c.logger.Warn("cache read failed", "url", url, "error", err)
		return nil, false
	}
	if ok {
		c.logger.Debug("cache hit", "url", url)
	}
	return body, ok
}

func (c *Client) store(ctx context.Context, url string, body []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, url, body, c.cacheTTL); err != nil {
		c.logger.Warn("cache write failed", "url", url, "error", err)
	}
}
