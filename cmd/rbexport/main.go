package main

import (
	"context"
	"flag"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/app"
	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/store"
	"github.com/fortuna/rb70/internal/table"
)

const appName = "rbexport"

func main() {
	app.Main(appName, run)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	var (
		in   = flag.String("in", cfg.Paths().Master, "CSV table to export")
		name = flag.String("table", "rb_analysis_master", "destination table")
	)
	flag.Parse()

	if cfg.DatabaseDSN == "" {
		return errors.New("RB_DATABASE_DSN is not set")
	}

	t, err := table.Load(*in, table.Schema{Name: *name})
	if err != nil {
		return err
	}
	t.CoerceNumeric(numericCandidates(t)...)

	db, err := store.NewDatabase(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.ExportTable(ctx, *name, t)
}

// numericCandidates returns the columns whose present cells all parse as
// numbers, so they export as DOUBLE PRECISION.
func numericCandidates(t *table.Table) []string {
	var out []string
	for _, c := range t.Columns() {
		ok := true
		for _, v := range t.Column(c) {
			if v.IsMissing() {
				continue
			}
			if _, isNum := v.Float(); !isNum {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}
