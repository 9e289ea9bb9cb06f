// Package app holds the start-up and shutdown steps shared by the commands.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/platform/logging"
)

// ErrUsage makes Run exit with status 2 without logging; the command has
// already printed its usage.
var ErrUsage = errors.New("usage")

// Func is a command body. Resources it defers are released before the
// process exits, whatever it returns.
type Func func(ctx context.Context, cfg config.Config, logger *logging.Logger) error

// Main runs fn and exits with the status Run reports.
func Main(name string, fn Func) {
	os.Exit(Run(name, fn))
}

// Run loads the environment config, installs the default logger, and calls
// fn under a context cancelled on SIGINT or SIGTERM. It returns 0 on
// success, 2 for ErrUsage and 1 for any other error, which is logged with
// its full detail.
func Run(name string, fn Func) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %+v\n", name, err)
		return 1
	}
	logger := logging.New(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel)).With("app", name)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = fn(ctx, cfg, logger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		logger.Error("fatal", "error", fmt.Sprintf("%+v", errors.Wrap(err, name)))
		return 1
	}
}
