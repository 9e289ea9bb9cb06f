package rushing

import (
	"sort"

	"github.com/fortuna/rb70/internal/table"
)

const (
	// DefaultThreshold is the minimum number of attempts for the RB70 set.
	DefaultThreshold = 70

	PlayerColumn   = "Player"
	YearColumn     = "Year"
	PositionColumn = "Pos"
	TeamColumn     = "Team"

	// RunningBack is matched exactly against PositionColumn.
	RunningBack = "RB"
)

// NameEntry is one (player, season) pair of the RB70 set.
type NameEntry struct {
	Player string
	Year   int
}

// NameIndex is the deduplicated, sorted list of RB70 players. Without a Year
// column it only carries names.
type NameIndex struct {
	HasYear bool
	Entries []NameEntry
}

func (n NameIndex) Len() int { return len(n.Entries) }

// Table renders the index as Player,Year (or Player).
func (n NameIndex) Table() *table.Table {
	if !n.HasYear {
		t := table.New(PlayerColumn)
		for _, e := range n.Entries {
			t.AppendRow(table.Text(e.Player))
		}
		return t
	}
	t := table.New(PlayerColumn, YearColumn)
	for _, e := range n.Entries {
		t.AppendRow(table.Text(e.Player), table.Int(e.Year))
	}
	return t
}

// FilterRB70 keeps rows where Pos is exactly "RB" (when a Pos column exists)
// and the attempts column is at least threshold. A missing Pos cell is not
// "RB" and is dropped, as are rows with missing attempts. The returned index
// is built from the surviving rows.
func FilterRB70(t *table.Table, threshold int) (*table.Table, NameIndex, error) {
	if t.Has(PositionColumn) {
		t = t.Filter(func(r table.Row) bool {
			v := r.Get(PositionColumn)
			return v.Kind() == table.KindText && v.String() == RunningBack
		})
	}

	att, err := ResolveAttemptsColumn(t)
	if err != nil {
		return nil, NameIndex{}, err
	}

	floor := float64(threshold)
	filtered := t.Filter(func(r table.Row) bool {
		f, ok := r.Get(att).Float()
		return ok && f >= floor
	})

	return filtered, BuildNameIndex(filtered), nil
}

// BuildNameIndex collects (Player, Year) pairs, dropping rows missing either,
// removing exact duplicates and sorting by year then name.
func BuildNameIndex(t *table.Table) NameIndex {
	idx := NameIndex{HasYear: t.Has(YearColumn)}
	seen := make(map[NameEntry]bool)

	for i := 0; i < t.Len(); i++ {
		p := t.Get(i, PlayerColumn)
		if p.IsMissing() {
			continue
		}
		e := NameEntry{Player: p.String()}
		if idx.HasYear {
			y, ok := t.Get(i, YearColumn).Int()
			if !ok {
				continue
			}
			e.Year = y
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		idx.Entries = append(idx.Entries, e)
	}

	sort.Slice(idx.Entries, func(i, j int) bool {
		a, b := idx.Entries[i], idx.Entries[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Player < b.Player
	})
	return idx
}
