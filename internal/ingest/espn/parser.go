package espn

import (
	"math"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// ParseTeams reads the league team list. Only the first sport and league are
// used, matching the site API layout for a single league.
func ParseTeams(data []byte) ([]Team, error) {
	var p teamListPayload
	if err := sonic.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "decode team list")
	}
	if len(p.Sports) == 0 || len(p.Sports[0].Leagues) == 0 {
		return nil, nil
	}

	league := p.Sports[0].Leagues[0]
	teams := make([]Team, 0, len(league.Teams))
	for _, t := range league.Teams {
		teams = append(teams, Team{
			ID:     t.Team.ID,
			Name:   t.Team.DisplayName,
			Abbrev: t.Team.Abbreviation,
		})
	}
	return teams, nil
}

// ParseRecord reads wins and losses from a record payload. When a stat
// appears more than once the last occurrence wins.
func ParseRecord(data []byte) (TeamRecord, error) {
	var p recordPayload
	if err := sonic.Unmarshal(data, &p); err != nil {
		return TeamRecord{}, errors.Wrap(err, "decode record")
	}

	var rec TeamRecord
	for _, item := range p.Items {
		for _, stat := range item.Stats {
			switch stat.Name {
			case "wins":
				rec.Wins = toInt(stat.Value)
			case "losses":
				rec.Losses = toInt(stat.Value)
			}
		}
	}
	return rec, nil
}

// ParseOffenseYards pulls rushing and passing yards out of a statistics
// payload, whatever its nesting.
func ParseOffenseYards(data []byte) (OffenseYards, error) {
	root, err := DecodeTree(data)
	if err != nil {
		return OffenseYards{}, err
	}

	var out OffenseYards
	if v, ok := ExtractFirst(root, RushingYardsAliases); ok {
		out.Rushing = &v
	}
	if v, ok := ExtractFirst(root, PassingYardsAliases); ok {
		out.Passing = &v
	}
	return out, nil
}

func toInt(v *float64) *int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	i := int(*v)
	return &i
}
