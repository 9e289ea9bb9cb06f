package reconciliation

import (
	"github.com/fortuna/rb70/internal/table"
)

// KeyFunc derives a join key from a cell.
type KeyFunc func(table.Value) string

// Matcher indexes the rows of one table by key.
type Matcher struct {
	rows map[string][]int
}

// NewMatcher indexes every row of t by key(t[column]). Row indices for a key
// keep table order.
func NewMatcher(t *table.Table, column string, key KeyFunc) *Matcher {
	if key == nil {
		key = NameKey
	}
	m := &Matcher{rows: make(map[string][]int, t.Len())}
	for i, v := range t.Column(column) {
		k := key(v)
		m.rows[k] = append(m.rows[k], i)
	}
	return m
}

// Matches returns the row indices whose key equals k.
func (m *Matcher) Matches(k string) []int {
	return m.rows[k]
}

// Keys reports how many distinct keys were indexed.
func (m *Matcher) Keys() int { return len(m.rows) }

// NameSet is a set of normalized names.
type NameSet map[string]struct{}

// NewNameSet collects the NameKey of every present cell in column.
func NewNameSet(t *table.Table, column string) NameSet {
	set := make(NameSet)
	for _, v := range t.Column(column) {
		if v.IsMissing() {
			continue
		}
		set[NameKey(v)] = struct{}{}
	}
	return set
}

func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// FilterByNames keeps the rows of t whose column normalizes into set.
func FilterByNames(t *table.Table, column string, set NameSet) *table.Table {
	return t.Filter(func(r table.Row) bool {
		return set.Contains(NameKey(r.Get(column)))
	})
}
