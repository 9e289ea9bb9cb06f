// Package ingest wires the remote sources the pipeline reads from.
package ingest

import (
	"context"

	"github.com/fortuna/rb70/internal/cache"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/ingest/browser"
	"github.com/fortuna/rb70/internal/ingest/httpfetch"
	"github.com/fortuna/rb70/internal/platform/logging"
)

// Getter fetches the body behind a URL.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Source is a Getter plus the resources it holds.
type Source struct {
	Getter
	closers []func()
}

// Close releases the browser and cache connections, if any.
func (s *Source) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// NewHTTPSource builds a paced HTTP client from cfg. When RedisURL is set and
// CacheTTL is positive, responses are cached in Redis; a cache that cannot be
// reached is logged and skipped.
func NewHTTPSource(cfg config.Config, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.Default()
	}
	src := &Source{}
	opts := httpfetch.Options{
		Timeout:   cfg.HTTPTimeout,
		Throttle:  cfg.Throttle,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	}

	if cfg.RedisURL != "" && cfg.CacheTTL > 0 {
		rc, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Warn("response cache disabled", "error", err)
		} else {
			opts.Cache = rc
			opts.CacheTTL = cfg.CacheTTL
			src.closers = append(src.closers, func() { rc.Close() })
		}
	}

	src.Getter = httpfetch.New(opts)
	return src
}

// NewBrowserSource renders pages in headless Chrome.
func NewBrowserSource(cfg config.Config, logger *logging.Logger) *Source {
	bc := browser.NewClient(browser.Options{
		Timeout:   cfg.HTTPTimeout,
		Throttle:  cfg.Throttle,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	return &Source{Getter: bc, closers: []func(){bc.Close}}
}
