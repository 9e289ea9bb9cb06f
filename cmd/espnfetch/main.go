package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/app"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/ingest/espn"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const appName = "espnfetch"

func main() {
	app.Main(appName, run)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	var (
		season = flag.Int("season", 0, "season year (required)")
		save   = flag.String("save", "", "write the season document to this path")
	)
	flag.Parse()
	if *season <= 0 {
		fmt.Fprintln(os.Stderr, "-season is required")
		flag.Usage()
		return app.ErrUsage
	}

	src := ingest.NewHTTPSource(cfg, logger)
	defer src.Close()

	client := espn.New(src, cfg.ESPNSiteBase, cfg.ESPNCoreBase, logger)
	summaries, err := espn.NewFetcher(client, logger).FetchLeague(ctx, *season)
	if err != nil {
		return errors.Wrapf(err, "fetch season %d", *season)
	}

	if *save != "" {
		if err := espn.SaveSeason(*save, summaries); err != nil {
			return err
		}
		logger.Info("saved season document", "path", *save, "teams", len(summaries))
		return nil
	}

	doc := espn.Document(summaries)
	if len(doc) > 2 {
		doc = doc[:2]
	}
	out, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode summaries")
	}
	fmt.Println(string(out))
	return nil
}
