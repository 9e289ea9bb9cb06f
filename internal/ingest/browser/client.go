// Package browser renders pages in headless Chrome for sites that refuse
// plain HTTP clients.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest/httpfetch"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const (
	DefaultTimeout = 30 * time.Second

	// renderDelay lets client-side scripts finish building tables.
	renderDelay = time.Second
)

// Options configure a Client.
type Options struct {
	Timeout   time.Duration
	Throttle  time.Duration
	UserAgent string
	Logger    *logging.Logger
}

// Client handles headless-browser fetches with rate limiting
type Client struct {
	timeout time.Duration
	limiter *rate.Limiter
	logger  *logging.Logger

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewClient starts a Chrome allocator. Call Close when done.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	return &Client{
		timeout:  opts.Timeout,
		limiter:  httpfetch.NewLimiter(opts.Throttle),
		logger:   opts.Logger.With("component", "browser"),
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

// Close releases resources
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Get navigates to url and returns the rendered document HTML.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errs.RemoteFetch(err, "wait to render %s", url)
	}

	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()
	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(renderDelay),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, errs.RemoteFetch(err, "render %s", url)
	}
	if html == "" {
		return nil, errs.RemoteFetch(nil, "render %s: empty document", url)
	}

	c.logger.Debug("rendered", "url", url, "bytes", len(html), "elapsed", time.Since(start))
	return []byte(html), nil
}
