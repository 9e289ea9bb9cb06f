package reconciliation

import (
	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/table"
)

// DefaultSuffix is appended to right-hand columns whose name is already used
// on the left.
const DefaultSuffix = "_contract"

// JoinOn describes a left join.
type JoinOn struct {
	LeftColumn  string
	RightColumn string
	// Key defaults to NameKey.
	Key    KeyFunc
	Suffix string
}

// Metrics tracks what the last join did.
type Metrics struct {
	LeftRows   int
	OutputRows int
	Matched    int
	Unmatched  int
	// FannedOut counts left rows that matched more than one right row.
	FannedOut int
}

// Engine performs joins and keeps metrics for the most recent one.
type Engine struct {
	metrics Metrics
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Metrics() Metrics { return e.metrics }

// LeftJoin emits, for every left row in order, one row per matching right row
// in right order, or a single row with missing right cells when nothing
// matches. A right column whose name is already used gets Suffix appended
// until it is unique. The key is never added to the output.
func (e *Engine) LeftJoin(left, right *table.Table, on JoinOn) (*table.Table, error) {
	if err := left.Require(on.LeftColumn); err != nil {
		return nil, errors.Wrap(err, "left join: left side")
	}
	if err := right.Require(on.RightColumn); err != nil {
		return nil, errors.Wrap(err, "left join: right side")
	}
	key := on.Key
	if key == nil {
		key = NameKey
	}
	suffix := on.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	leftCols := left.Columns()
	rightCols := right.Columns()

	outCols := make([]string, 0, len(leftCols)+len(rightCols))
	outCols = append(outCols, leftCols...)
	taken := make(map[string]bool, cap(outCols))
	for _, c := range leftCols {
		taken[c] = true
	}
	for _, c := range rightCols {
		// the suffix repeats until the name is free, so "team" next to a left
		// "team_contract" becomes "team_contract_contract"
		for taken[c] {
			c += suffix
		}
		taken[c] = true
		outCols = append(outCols, c)
	}
	out := table.New(outCols...)

	matcher := NewMatcher(right, on.RightColumn, key)
	m := Metrics{LeftRows: left.Len()}

	for i := 0; i < left.Len(); i++ {
		lv := left.Values(i)
		matches := matcher.Matches(key(left.Get(i, on.LeftColumn)))

		switch {
		case len(matches) == 0:
			m.Unmatched++
			out.AppendRow(lv...)
			continue
		case len(matches) > 1:
			m.FannedOut++
		}
		m.Matched++

		for _, j := range matches {
			row := make([]table.Value, 0, len(outCols))
			row = append(row, lv...)
			row = append(row, right.Values(j)...)
			out.AppendRow(row...)
		}
	}

	m.OutputRows = out.Len()
	e.metrics = m
	return out, nil
}

// LeftJoin runs a one-off join with a fresh Engine.
func LeftJoin(left, right *table.Table, on JoinOn) (*table.Table, error) {
	return NewEngine().LeftJoin(left, right, on)
}
