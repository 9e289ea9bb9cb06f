package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/fortuna/rb70/internal/app"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/pipeline"
	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/publisher"
)

const appName = "rbprep"

func usage() {
	names := make([]string, 0, len(pipeline.Stages()))
	for _, s := range pipeline.Stages() {
		names = append(names, string(s))
	}
	fmt.Fprintf(os.Stderr, "usage: %s <%s> [flags]\n", appName, strings.Join(names, "|"))
	flag.PrintDefaults()
}

func main() {
	app.Main(appName, run)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	flag.Usage = usage
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		usage()
		return app.ErrUsage
	}
	stage, err := pipeline.ParseStage(os.Args[1])
	if err != nil {
		return err
	}

	var (
		dataDir     = flag.String("data", cfg.DataDir, "data directory")
		threshold   = flag.Int("threshold", cfg.Threshold, "minimum rushing attempts")
		requireTeam = flag.Bool("require-team", false, "require and normalize a Team column when merging")
		writeXLSX   = flag.Bool("xlsx", false, "also write the master table as XLSX")
		season      = flag.Int("season", pipeline.DefaultSeason, "season stamped on the pasted season table")
	)
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		return app.ErrUsage
	}

	opts := pipeline.Options{
		Paths:       config.NewPaths(*dataDir),
		Threshold:   *threshold,
		RequireTeam: *requireTeam,
		WriteXLSX:   *writeXLSX,
		Season:      *season,
		RunID:       uuid.NewString(),
		Logger:      logger,
	}

	reporters := pipeline.MultiReporter{pipeline.NewConsoleReporter(logger)}
	if cfg.RedisURL != "" {
		pub, err := publisher.Dial(cfg.RedisURL, cfg.StageStream)
		if err != nil {
			logger.Warn("stage events disabled", "error", err)
		} else {
			defer pub.Close()
			reporters = append(reporters, pipeline.NewPublishingReporter(ctx, pub, opts.RunID, logger))
		}
	}

	runner := pipeline.NewRunner(opts, reporters)
	if err := runner.Run(ctx, stage); err != nil {
		return err
	}
	logger.Info("done", "stage", stage, "run_id", runner.RunID())
	return nil
}
