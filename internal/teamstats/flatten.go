package teamstats

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/table"
)

// FilePattern matches the season documents inside a data directory.
const FilePattern = "espn_team_stats_*.json"

var yearRe = regexp.MustCompile(`espn_team_stats_(\d{4})\.json$`)

// Columns of the flattened table.
var Columns = []string{
	"team_id", "team_name", "team_abbrev", "Year",
	"wins", "losses", "offense_rushing_yards", "offense_passing_yards",
	"games", "win_pct",
}

// FileName is the document name for a season.
func FileName(season int) string {
	return "espn_team_stats_" + strconv.Itoa(season) + ".json"
}

// LoadDir flattens every season document in dir, in file-name order.
func LoadDir(dir string) (*table.Table, int, error) {
	files, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, 0, errors.Wrap(err, "glob season documents")
	}
	if len(files) == 0 {
		return nil, 0, errs.MissingFile(filepath.Join(dir, FilePattern))
	}
	sort.Strings(files)

	out := table.New(Columns...)
	for _, path := range files {
		teams, err := ReadDocument(path)
		if err != nil {
			return nil, 0, err
		}
		fileYear := 0
		if m := yearRe.FindStringSubmatch(filepath.Base(path)); m != nil {
			fileYear, _ = strconv.Atoi(m[1])
		}
		for _, team := range teams {
			if team.Season == 0 {
				team.Season = fileYear
			}
			appendTeam(out, team)
		}
	}
	return out, len(files), nil
}

// Flatten turns one document's teams into table rows.
func Flatten(teams []TeamSeason) *table.Table {
	out := table.New(Columns...)
	for _, team := range teams {
		appendTeam(out, team)
	}
	return out
}

func appendTeam(t *table.Table, team TeamSeason) {
	var wins, losses, rushing, passing table.Value
	if team.Record != nil {
		wins = intValue(team.Record.Wins)
		losses = intValue(team.Record.Losses)
	}
	if team.Stats != nil {
		rushing = floatValue(team.Stats.OffenseRushingYards)
		passing = floatValue(team.Stats.OffensePassingYards)
	}

	year := table.Missing()
	if team.Season != 0 {
		year = table.Int(team.Season)
	}

	games, winPct := table.Missing(), table.Missing()
	w, wok := wins.Float()
	l, lok := losses.Float()
	if wok && lok {
		games = table.Number(w + l)
		if w+l != 0 {
			winPct = table.Number(w / (w + l))
		}
	}

	t.AppendRow(
		text(team.ID), text(team.Name), text(team.Abbrev), year,
		wins, losses, rushing, passing,
		games, winPct,
	)
}

func text(s string) table.Value {
	if s == "" {
		return table.Missing()
	}
	return table.Text(s)
}

func intValue(p *int) table.Value {
	if p == nil {
		return table.Missing()
	}
	return table.Int(*p)
}

func floatValue(p *float64) table.Value {
	if p == nil {
		return table.Missing()
	}
	return table.Number(*p)
}
