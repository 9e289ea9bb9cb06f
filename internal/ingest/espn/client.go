package espn

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/platform/logging"
)

const (
	SiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	CoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl"

	// regularSeason is the ESPN season type for the regular season.
	regularSeason = 2
)

// Client handles ESPN API requests
type Client struct {
	getter   ingest.Getter
	siteBase string
	coreBase string
	logger   *logging.Logger
}

// New creates a client. Empty base URLs fall back to the public endpoints.
func New(getter ingest.Getter, siteBase, coreBase string, logger *logging.Logger) *Client {
	if siteBase == "" {
		siteBase = SiteBaseURL
	}
	if coreBase == "" {
		coreBase = CoreBaseURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		getter:   getter,
		siteBase: strings.TrimRight(siteBase, "/"),
		coreBase: strings.TrimRight(coreBase, "/"),
		logger:   logger.With("component", "espn"),
	}
}

// ListTeams fetches the league team list.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	body, err := c.getter.Get(ctx, c.siteBase+"/teams")
	if err != nil {
		return nil, err
	}
	teams, err := ParseTeams(body)
	if err != nil {
		return nil, errs.RemoteFetch(err, "team list")
	}
	return teams, nil
}

// Record fetches a team's regular-season record.
func (c *Client) Record(ctx context.Context, teamID string, season int) (TeamRecord, error) {
	body, err := c.getter.Get(ctx, c.teamURL(teamID, season, "record"))
	if err != nil {
		return TeamRecord{}, err
	}
	rec, err := ParseRecord(body)
	if err != nil {
		return TeamRecord{}, errs.RemoteFetch(err, "record for team %s", teamID)
	}
	return rec, nil
}

// OffenseYards fetches a team's regular-season statistics.
func (c *Client) OffenseYards(ctx context.Context, teamID string, season int) (OffenseYards, error) {
	body, err := c.getter.Get(ctx, c.teamURL(teamID, season, "statistics"))
	if err != nil {
		return OffenseYards{}, err
	}
	yards, err := ParseOffenseYards(body)
	if err != nil {
		return OffenseYards{}, errs.RemoteFetch(err, "statistics for team %s", teamID)
	}
	return yards, nil
}

func (c *Client) teamURL(teamID string, season int, resource string) string {
	return fmt.Sprintf("%s/seasons/%d/types/%d/teams/%s/%s", c.coreBase, season, regularSeason, teamID, resource)
}
