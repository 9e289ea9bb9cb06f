package main

import (
	"context"
	"flag"

	"github.com/fortuna/rb70/internal/app"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/ingest/otc"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const appName = "otcfetch"

func main() {
	app.Main(appName, run)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	save := flag.String("save", cfg.Paths().ContractsRaw, "output CSV path")
	flag.Parse()

	src := ingest.NewHTTPSource(cfg, logger)
	defer src.Close()

	t, err := otc.NewScraper(src, cfg.OTCURL, logger).Fetch(ctx)
	if err != nil {
		return err
	}
	if err := t.WriteCSV(*save); err != nil {
		return err
	}
	rows, cols := t.Shape()
	logger.Info("saved contracts", "path", *save, "rows", rows, "cols", cols)
	return nil
}
