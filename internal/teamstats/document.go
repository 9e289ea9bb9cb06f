// Package teamstats reads the per-season team documents written by the ESPN
// fetcher and flattens them into one table.
package teamstats

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// TeamSeason is one element of a season document.
type TeamSeason struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Abbrev string  `json:"abbrev"`
	Season int     `json:"season"`
	Record *Record `json:"record"`
	Stats  *Stats  `json:"stats"`
}

// Record holds wins and losses, or the error that prevented fetching them.
type Record struct {
	Wins   *int   `json:"wins"`
	Losses *int   `json:"losses"`
	Error  string `json:"error,omitempty"`
}

// Stats holds offensive yardage, or the error that prevented fetching it.
type Stats struct {
	OffenseRushingYards *float64 `json:"offense_rushing_yards,omitempty"`
	OffensePassingYards *float64 `json:"offense_passing_yards,omitempty"`
	Error               string   `json:"error,omitempty"`
}

// ReadDocument decodes one season document.
func ReadDocument(path string) ([]TeamSeason, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var teams []TeamSeason
	if err := sonic.Unmarshal(raw, &teams); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return teams, nil
}

// WriteDocument replaces path with the indented JSON encoding of teams.
func WriteDocument(path string, teams []TeamSeason) error {
	if teams == nil {
		teams = []TeamSeason{}
	}
	raw, err := sonic.ConfigStd.MarshalIndent(teams, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode season document")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}
