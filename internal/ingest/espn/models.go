package espn

// Team identifies one franchise in the league team list.
type Team struct {
	ID     string
	Name   string
	Abbrev string
}

// TeamRecord is a regular-season win/loss line. Nil means the payload did not
// carry the stat or it was not integral.
type TeamRecord struct {
	Wins   *int
	Losses *int
}

// OffenseYards holds season offensive yardage. Nil means no alias matched.
type OffenseYards struct {
	Rushing *float64
	Passing *float64
}

// Result is the outcome of fetching one part of a team summary: a value or
// the error that replaced it.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

func (r Result[T]) OK() bool { return r.Err == nil }

// TeamSummary is one team's season: identity plus the two fetched parts.
type TeamSummary struct {
	Team   Team
	Season int
	Record Result[TeamRecord]
	Yards  Result[OffenseYards]
}

// payloads

type teamListPayload struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team struct {
					ID           string `json:"id"`
					DisplayName  string `json:"displayName"`
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type recordPayload struct {
	Items []struct {
		Stats []struct {
			Name  string   `json:"name"`
			Value *float64 `json:"value"`
		} `json:"stats"`
	} `json:"items"`
}
