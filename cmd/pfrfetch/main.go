package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fortuna/rb70/internal/app"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/ingest/pfr"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const appName = "pfrfetch"

func main() {
	app.Main(appName, run)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	var (
		season     = flag.Int("season", 0, "season year (required)")
		save       = flag.String("save", "", "output CSV path (default <data>/pfr_rushing_<season>.csv)")
		useBrowser = flag.Bool("browser", false, "render the page in headless Chrome")
	)
	flag.Parse()
	if *season <= 0 {
		fmt.Fprintln(os.Stderr, "-season is required")
		flag.Usage()
		return app.ErrUsage
	}
	path := *save
	if path == "" {
		path = filepath.Join(cfg.DataDir, fmt.Sprintf("pfr_rushing_%d.csv", *season))
	}

	var src *ingest.Source
	if *useBrowser {
		src = ingest.NewBrowserSource(cfg, logger)
	} else {
		src = ingest.NewHTTPSource(cfg, logger)
	}
	defer src.Close()

	t, err := pfr.NewScraper(src, cfg.PFRURL, logger).Fetch(ctx, *season)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(path); err != nil {
		return err
	}
	rows, cols := t.Shape()
	logger.Info("saved season rushing", "path", path, "rows", rows, "cols", cols)
	return nil
}
