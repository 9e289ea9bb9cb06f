package rushing

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/table"
)

// NumericColumns are coerced on every rushing source.
var NumericColumns = []string{
	"Age", "G", "GS", "rAtt", "Att", "rYds", "rTD", "r1D", "rLng",
	"rY/A", "rY/g", "Fmb", YearColumn,
}

var (
	// HistoricalSchema describes the cleaned 2001–2023 export.
	HistoricalSchema = table.Schema{
		Name:     "rushing_historical",
		Version:  1,
		Numeric:  NumericColumns,
		Required: []string{PlayerColumn},
	}

	// CurrentSchema describes the normalized current-season table.
	CurrentSchema = table.Schema{
		Name:     "rushing_current",
		Version:  1,
		Numeric:  NumericColumns,
		Required: []string{PlayerColumn},
	}

	// RawSeasonSchema describes a season table pasted from the stats site.
	// Numbers are coerced after the rename in NormalizeSeasonTable.
	RawSeasonSchema = table.Schema{
		Name:     "rushing_season_raw",
		Version:  1,
		Required: []string{PlayerColumn},
	}

	// CombinedSchema reads the merged all-years table back.
	CombinedSchema = table.Schema{
		Name:     "rushing_combined",
		Version:  1,
		Numeric:  NumericColumns,
		Required: []string{PlayerColumn},
	}

	// NameIndexSchema reads the RB70 name list.
	NameIndexSchema = table.Schema{
		Name:     "rb70_names",
		Version:  1,
		Numeric:  []string{YearColumn},
		Required: []string{PlayerColumn},
	}
)

// SeasonRename maps the stats-site headers onto the cleaned historical names.
var SeasonRename = map[string]string{
	"Att": "rAtt",
	"Yds": "rYds",
	"TD":  "rTD",
	"1D":  "r1D",
	"Lng": "rLng",
	"Y/A": "rY/A",
	"Y/G": "rY/g",
}

// SeasonColumns is the column layout shared by every season table.
var SeasonColumns = []string{
	PlayerColumn, "Age", "G", "GS", "rAtt", "rYds", "rTD", "r1D", "rLng",
	"rY/A", "rY/g", "Fmb", YearColumn,
}

// CombineOptions tune Combine.
type CombineOptions struct {
	// RequireTeam fails when either side lacks a Team column and normalizes
	// team codes to trimmed upper case.
	RequireTeam bool
}

// Combine stacks the historical and current tables.
func Combine(hist, cur *table.Table, opts CombineOptions) (*table.Table, error) {
	if opts.RequireTeam {
		if err := hist.Require(TeamColumn); err != nil {
			return nil, errors.Wrap(err, "historical rushing")
		}
		if err := cur.Require(TeamColumn); err != nil {
			return nil, errors.Wrap(err, "current rushing")
		}
	}

	full := table.Concat(hist, cur)
	full.CoerceNumeric(NumericColumns...)

	if opts.RequireTeam {
		full.MapColumn(TeamColumn, func(v table.Value) table.Value {
			if v.IsMissing() {
				return v
			}
			return table.Text(strings.ToUpper(strings.TrimSpace(v.String())))
		})
	}
	return full, nil
}

// NormalizeSeasonTable turns a pasted season table into the shared layout:
// rows without a player and repeated header rows are dropped, headers are
// renamed, Year is set to season and only SeasonColumns are kept, followed by
// Pos when the export carries it.
func NormalizeSeasonTable(raw *table.Table, season int) (*table.Table, error) {
	t := raw.Filter(func(r table.Row) bool {
		p := r.Get(PlayerColumn)
		if p.IsMissing() || p.String() == PlayerColumn {
			return false
		}
		return r.Get("Rk").String() != "Rk"
	})

	t.Rename(SeasonRename)
	t.AddColumn(YearColumn, func(table.Row) table.Value { return table.Int(season) })

	cols := SeasonColumns
	if t.Has(PositionColumn) {
		cols = append(append([]string(nil), SeasonColumns...), PositionColumn)
	}
	out, err := t.Select(cols...)
	if err != nil {
		return nil, errors.Wrapf(err, "season %d", season)
	}
	out.CoerceNumeric(NumericColumns...)
	return out, nil
}
