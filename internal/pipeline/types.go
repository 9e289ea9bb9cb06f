// Package pipeline runs the data-preparation stages in order. Each stage
// reads complete input files, fails on the first missing file or column, and
// rewrites its outputs in full.
package pipeline

import (
	"strings"

	"github.com/fortuna/rb70/internal/errs"
)

// Stage names a pipeline step.
type Stage string

const (
	StageSeason2024      Stage = "season-2024"
	StageMergeRushing    Stage = "merge-rushing"
	StageFilterRB70      Stage = "filter-rb70"
	StageFilterContracts Stage = "filter-contracts"
	StageMergeFinal      Stage = "merge-final"
	StageTeamStats       Stage = "team-stats"
	StageAll             Stage = "all"
)

var stages = []Stage{
	StageSeason2024,
	StageMergeRushing,
	StageFilterRB70,
	StageFilterContracts,
	StageMergeFinal,
	StageTeamStats,
	StageAll,
}

// AllSequence is what StageAll runs.
var AllSequence = []Stage{
	StageMergeRushing,
	StageFilterRB70,
	StageFilterContracts,
	StageMergeFinal,
}

// Stages lists every runnable stage.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

// ParseStage resolves a stage name.
func ParseStage(s string) (Stage, error) {
	for _, st := range stages {
		if string(st) == s {
			return st, nil
		}
	}
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = string(st)
	}
	return "", errs.Schemaf("unknown stage %q (want one of %s)", s, strings.Join(names, ", "))
}

// Reporter receives lifecycle callbacks from the runner.
type Reporter interface {
	OnStageStart(stage Stage)
	OnStageProgress(stage Stage, message string)
	OnStageOutput(stage Stage, path string, rows, cols int)
	OnStageComplete(stage Stage)
	OnStageError(stage Stage, err error)
}
