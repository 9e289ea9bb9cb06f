package pipeline

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/fortuna/rb70/internal/config"
	"github.com/fortuna/rb70/internal/contracts"
	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/reconciliation"
	"github.com/fortuna/rb70/internal/rushing"
	"github.com/fortuna/rb70/internal/table"
	"github.com/fortuna/rb70/internal/teamstats"
)

// DefaultSeason is the season normalized by StageSeason2024.
const DefaultSeason = 2024

// Options configure a Runner.
type Options struct {
	Paths     config.Paths
	Threshold int
	// RequireTeam makes the rushing merge demand and normalize a Team column.
	RequireTeam bool
	// WriteXLSX also writes the master table as a workbook.
	WriteXLSX bool
	// Season is stamped on the normalized pasted season table.
	Season int
	RunID  string
	Logger *logging.Logger
}

// Runner executes pipeline stages.
type Runner struct {
	opts     Options
	reporter Reporter
	logger   *logging.Logger
}

// NewRunner fills defaults and returns a runner. reporter may be nil.
func NewRunner(opts Options, reporter Reporter) *Runner {
	if opts.Threshold <= 0 {
		opts.Threshold = rushing.DefaultThreshold
	}
	if opts.Season == 0 {
		opts.Season = DefaultSeason
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if reporter == nil {
		reporter = MultiReporter{}
	}
	return &Runner{
		opts:     opts,
		reporter: reporter,
		logger:   opts.Logger.With("component", "pipeline", "run_id", opts.RunID),
	}
}

func (r *Runner) RunID() string { return r.opts.RunID }

// Run executes one stage, or the whole merge sequence for StageAll.
func (r *Runner) Run(ctx context.Context, stage Stage) error {
	if stage == StageAll {
		for _, st := range AllSequence {
			if err := r.Run(ctx, st); err != nil {
				return err
			}
		}
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var fn func() error
	switch stage {
	case StageSeason2024:
		fn = r.normalizeCurrentSeason
	case StageMergeRushing:
		fn = r.mergeRushing
	case StageFilterRB70:
		fn = r.filterRB70
	case StageFilterContracts:
		fn = r.filterContracts
	case StageMergeFinal:
		fn = r.mergeMaster
	case StageTeamStats:
		fn = r.flattenTeamStats
	default:
		return errors.Newf("unsupported stage %s", stage)
	}

	r.reporter.OnStageStart(stage)
	if err := fn(); err != nil {
		err = errors.Wrapf(err, "stage %s", stage)
		r.reporter.OnStageError(stage, err)
		return err
	}
	r.reporter.OnStageComplete(stage)
	return nil
}

func (r *Runner) normalizeCurrentSeason() error {
	p := r.opts.Paths
	raw, err := table.Load(p.CurrentRaw, rushing.RawSeasonSchema)
	if err != nil {
		return err
	}
	t, err := rushing.NormalizeSeasonTable(raw, r.opts.Season)
	if err != nil {
		return err
	}
	return r.save(StageSeason2024, t, p.Current)
}

func (r *Runner) mergeRushing() error {
	p := r.opts.Paths
	hist, err := table.Load(p.Historical, rushing.HistoricalSchema)
	if err != nil {
		return err
	}
	cur, err := table.Load(p.Current, rushing.CurrentSchema)
	if err != nil {
		return err
	}

	full, err := rushing.Combine(hist, cur, rushing.CombineOptions{RequireTeam: r.opts.RequireTeam})
	if err != nil {
		return err
	}
	return r.save(StageMergeRushing, full, p.RushingFull)
}

func (r *Runner) filterRB70() error {
	p := r.opts.Paths
	full, err := table.Load(p.RushingFull, rushing.CombinedSchema)
	if err != nil {
		return err
	}

	filtered, idx, err := rushing.FilterRB70(full, r.opts.Threshold)
	if err != nil {
		return err
	}
	r.reporter.OnStageProgress(StageFilterRB70,
		fmt.Sprintf("kept %d of %d rows with at least %d attempts", filtered.Len(), full.Len(), r.opts.Threshold))

	if err := r.save(StageFilterRB70, filtered, p.RB70); err != nil {
		return err
	}
	return r.save(StageFilterRB70, idx.Table(), p.RB70Names)
}

func (r *Runner) filterContracts() error {
	p := r.opts.Paths
	names, err := table.Load(p.RB70Names, rushing.NameIndexSchema)
	if err != nil {
		return err
	}
	raw, err := table.Load(p.ContractsRaw, contracts.RawSchema)
	if err != nil {
		return err
	}

	set := reconciliation.NewNameSet(names, rushing.PlayerColumn)
	r.reporter.OnStageProgress(StageFilterContracts, fmt.Sprintf("loaded %d unique RB names", len(set)))

	col, err := contracts.PlayerColumn(raw)
	if err != nil {
		return err
	}
	filtered := reconciliation.FilterByNames(raw, col, set)
	r.reporter.OnStageProgress(StageFilterContracts,
		fmt.Sprintf("filtered contracts: %d -> %d rows", raw.Len(), filtered.Len()))

	return r.save(StageFilterContracts, filtered, p.ContractsRB70)
}

func (r *Runner) mergeMaster() error {
	p := r.opts.Paths
	rb, err := table.Load(p.RB70, rushing.CombinedSchema)
	if err != nil {
		return err
	}
	otc, err := table.Load(p.ContractsRB70, contracts.FilteredSchema)
	if err != nil {
		return err
	}
	col, err := contracts.PlayerColumn(otc)
	if err != nil {
		return err
	}

	engine := reconciliation.NewEngine()
	merged, err := engine.LeftJoin(rb, otc, reconciliation.JoinOn{
		LeftColumn:  rushing.PlayerColumn,
		RightColumn: col,
		Suffix:      reconciliation.DefaultSuffix,
	})
	if err != nil {
		return err
	}

	m := engine.Metrics()
	r.reporter.OnStageProgress(StageMergeFinal, fmt.Sprintf(
		"joined %d season rows: %d matched, %d unmatched, %d with several contracts",
		m.LeftRows, m.Matched, m.Unmatched, m.FannedOut))

	if err := r.save(StageMergeFinal, merged, p.Master); err != nil {
		return err
	}
	if r.opts.WriteXLSX {
		if err := merged.WriteXLSX(p.MasterXLSX, "master"); err != nil {
			return err
		}
		rows, cols := merged.Shape()
		r.reporter.OnStageOutput(StageMergeFinal, p.MasterXLSX, rows, cols)
	}
	return nil
}

func (r *Runner) flattenTeamStats() error {
	p := r.opts.Paths
	t, files, err := teamstats.LoadDir(p.DataDir)
	if err != nil {
		return err
	}
	r.reporter.OnStageProgress(StageTeamStats, fmt.Sprintf("read %d season documents", files))
	return r.save(StageTeamStats, t, p.TeamStatsTable)
}

func (r *Runner) save(stage Stage, t *table.Table, path string) error {
	if err := t.WriteCSV(path); err != nil {
		return err
	}
	rows, cols := t.Shape()
	r.logger.Debug("wrote stage output", "stage", stage, "path", path, "rows", rows, "cols", cols)
	r.reporter.OnStageOutput(stage, path, rows, cols)
	return nil
}
