package teamstats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/errs"
)

const season2019 = `[
  {"id": "1", "name": "Atlanta Falcons", "abbrev": "ATL", "season": 2019,
   "record": {"wins": 7, "losses": 9},
   "stats": {"offense_rushing_yards": 1361, "offense_passing_yards": 4714}},
  {"id": "2", "name": "Buffalo Bills", "abbrev": "BUF", "season": 2019,
   "record": {"wins": null, "losses": null, "error": "404 Not Found"},
   "stats": {"error": "timeout"}}
]`

const season2020NoSeason = `[
  {"id": "3", "name": "Chicago Bears", "abbrev": "CHI",
   "record": {"wins": 0, "losses": 0},
   "stats": {"offense_rushing_yards": 1714.5}}
]`

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, FileName(2020), season2020NoSeason)
	write(t, dir, FileName(2019), season2019)
	write(t, dir, "unrelated.json", `{}`)

	tb, files, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, files)
	assert.Equal(t, Columns, tb.Columns())
	require.Equal(t, 3, tb.Len())

	assert.Equal(t, "ATL", tb.Get(0, "team_abbrev").String())
	assert.Equal(t, "16", tb.Get(0, "games").String())
	assert.Equal(t, "0.4375", tb.Get(0, "win_pct").String())
	assert.Equal(t, "1361", tb.Get(0, "offense_rushing_yards").String())

	assert.True(t, tb.Get(1, "wins").IsMissing())
	assert.True(t, tb.Get(1, "games").IsMissing())
	assert.True(t, tb.Get(1, "win_pct").IsMissing())
	assert.True(t, tb.Get(1, "offense_passing_yards").IsMissing())

	assert.Equal(t, "2020", tb.Get(2, "Year").String())
	assert.Equal(t, "0", tb.Get(2, "games").String())
	assert.True(t, tb.Get(2, "win_pct").IsMissing())
	assert.Equal(t, "1714.5", tb.Get(2, "offense_rushing_yards").String())
}

func TestLoadDir_NoDocuments(t *testing.T) {
	_, _, err := LoadDir(t.TempDir())
	assert.True(t, errs.IsMissingFile(err))
}

func TestLoadDir_BadDocument(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, FileName(2001), `{"not": "a list"`)
	_, _, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	wins, losses := 10, 7
	rush := 2000.0
	teams := []TeamSeason{{
		ID: "33", Name: "Baltimore Ravens", Abbrev: "BAL", Season: 2023,
		Record: &Record{Wins: &wins, Losses: &losses},
		Stats:  &Stats{OffenseRushingYards: &rush, Error: ""},
	}}

	path := filepath.Join(t.TempDir(), "out", FileName(2023))
	require.NoError(t, WriteDocument(path, teams))

	back, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, teams, back)

	flat := Flatten(back)
	assert.Equal(t, "17", flat.Get(0, "games").String())
}
