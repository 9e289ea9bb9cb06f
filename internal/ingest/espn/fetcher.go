package espn

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/teamstats"
)

// Fetcher assembles team summaries for a whole league season.
type Fetcher struct {
	client *Client
	logger *logging.Logger
}

func NewFetcher(client *Client, logger *logging.Logger) *Fetcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Fetcher{client: client, logger: logger.With("component", "espn")}
}

// FetchLeague fetches every team's record and offensive yards for season,
// one request at a time. A failure of the team list aborts the run; a
// failure for a single team is kept in that team's summary. Teams without
// an id are skipped.
func (f *Fetcher) FetchLeague(ctx context.Context, season int) ([]TeamSummary, error) {
	teams, err := f.client.ListTeams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}

	out := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		if team.ID == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		f.logger.Info("fetching team", "team", team.Abbrev, "id", team.ID, "season", season)
		out = append(out, f.summary(ctx, team, season))
	}
	return out, nil
}

func (f *Fetcher) summary(ctx context.Context, team Team, season int) TeamSummary {
	s := TeamSummary{Team: team, Season: season}

	if rec, err := f.client.Record(ctx, team.ID, season); err != nil {
		f.logger.Warn("record fetch failed", "team", team.Abbrev, "error", err)
		s.Record = Fail[TeamRecord](err)
	} else {
		s.Record = Ok(rec)
	}

	if yards, err := f.client.OffenseYards(ctx, team.ID, season); err != nil {
		f.logger.Warn("statistics fetch failed", "team", team.Abbrev, "error", err)
		s.Yards = Fail[OffenseYards](err)
	} else {
		s.Yards = Ok(yards)
	}
	return s
}

// Document converts summaries to the season document layout. Failed parts
// carry the error text in place of their values.
func Document(summaries []TeamSummary) []teamstats.TeamSeason {
	out := make([]teamstats.TeamSeason, 0, len(summaries))
	for _, s := range summaries {
		doc := teamstats.TeamSeason{
			ID:     s.Team.ID,
			Name:   s.Team.Name,
			Abbrev: s.Team.Abbrev,
			Season: s.Season,
			Record: &teamstats.Record{},
			Stats:  &teamstats.Stats{},
		}
		if s.Record.OK() {
			doc.Record.Wins = s.Record.Value.Wins
			doc.Record.Losses = s.Record.Value.Losses
		} else {
			doc.Record.Error = s.Record.Err.Error()
		}
		if s.Yards.OK() {
			doc.Stats.OffenseRushingYards = s.Yards.Value.Rushing
			doc.Stats.OffensePassingYards = s.Yards.Value.Passing
		} else {
			doc.Stats.Error = s.Yards.Err.Error()
		}
		out = append(out, doc)
	}
	return out
}

// SaveSeason writes summaries as a season document at path.
func SaveSeason(path string, summaries []TeamSummary) error {
	return teamstats.WriteDocument(path, Document(summaries))
}
