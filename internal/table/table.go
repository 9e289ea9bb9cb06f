// Package table is the in-memory tabular model every stage passes around:
// ordered, uniquely named columns of tagged cell values.
package table

import (
	"fmt"
	"strings"

	"github.com/fortuna/rb70/internal/errs"
)

// Table is an ordered set of named columns and rows of cells.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]Value
}

// New creates an empty table. Duplicate names get a ".N" suffix.
func New(columns ...string) *Table {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range uniqueNames(columns) {
		t.index[c] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t
}

func uniqueNames(names []string) []string {
	taken := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		name := n
		for k := 1; taken[name]; k++ {
			name = fmt.Sprintf("%s.%d", n, k)
		}
		taken[name] = true
		out = append(out, name)
	}
	return out
}

// Row is a read-only view of one row.
type Row struct {
	t *Table
	i int
}

func (r Row) Index() int { return r.i }

func (r Row) Get(column string) Value { return r.t.Get(r.i, column) }

func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

func (t *Table) Index(column string) (int, bool) {
	i, ok := t.index[column]
	return i, ok
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Width() int { return len(t.cols) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return len(t.rows), len(t.cols) }

func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// AppendRow adds a row, padding with Missing or truncating to the table width.
func (t *Table) AppendRow(values ...Value) {
	row := make([]Value, len(t.cols))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// AppendRecord adds a row from a column→value mapping. Unknown columns are ignored.
func (t *Table) AppendRecord(record map[string]Value) {
	row := make([]Value, len(t.cols))
	for name, v := range record {
		if i, ok := t.index[name]; ok {
			row[i] = v
		}
	}
	t.rows = append(t.rows, row)
}

// Get returns the cell, or Missing when the column does not exist.
func (t *Table) Get(row int, column string) Value {
	i, ok := t.index[column]
	if !ok {
		return Missing()
	}
	return t.rows[row][i]
}

func (t *Table) Set(row int, column string, v Value) {
	if i, ok := t.index[column]; ok {
		t.rows[row][i] = v
	}
}

// Values returns a copy of the row's cells in column order.
func (t *Table) Values(row int) []Value {
	out := make([]Value, len(t.cols))
	copy(out, t.rows[row])
	return out
}

// Column returns a copy of one column's cells.
func (t *Table) Column(column string) []Value {
	i, ok := t.index[column]
	if !ok {
		return nil
	}
	out := make([]Value, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out
}

// AddColumn appends a column filled by fn, or overwrites it when it exists.
func (t *Table) AddColumn(column string, fn func(Row) Value) {
	i, ok := t.index[column]
	if !ok {
		i = len(t.cols)
		t.index[column] = i
		t.cols = append(t.cols, column)
		for r := range t.rows {
			t.rows[r] = append(t.rows[r], Value{})
		}
	}
	for r := range t.rows {
		t.rows[r][i] = fn(Row{t: t, i: r})
	}
}

// MapColumn replaces every cell of a present column with fn(cell).
func (t *Table) MapColumn(column string, fn func(Value) Value) {
	i, ok := t.index[column]
	if !ok {
		return
	}
	for r := range t.rows {
		t.rows[r][i] = fn(t.rows[r][i])
	}
}

// CoerceNumeric parses every cell of the named columns that are present.
// Cells that do not parse become Missing.
func (t *Table) CoerceNumeric(columns ...string) {
	for _, c := range columns {
		t.MapColumn(c, toNumber)
	}
}

func toNumber(v Value) Value {
	switch v.Kind() {
	case KindNumber, KindMissing:
		return v
	default:
		return ParseNumber(v.text)
	}
}

// Filter returns a new table holding the rows for which keep is true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := t.emptyLike()
	for r, row := range t.rows {
		if keep(Row{t: t, i: r}) {
			cp := make([]Value, len(row))
			copy(cp, row)
			out.rows = append(out.rows, cp)
		}
	}
	return out
}

// Select returns a new table with only the named columns, in that order.
func (t *Table) Select(columns ...string) (*Table, error) {
	idx := make([]int, len(columns))
	var missing []string
	for k, c := range columns {
		i, ok := t.index[c]
		if !ok {
			missing = append(missing, c)
			continue
		}
		idx[k] = i
	}
	if len(missing) > 0 {
		return nil, errs.Schemaf("columns not found: %s", strings.Join(missing, ", "))
	}

	out := New(columns...)
	for _, row := range t.rows {
		cp := make([]Value, len(idx))
		for k, i := range idx {
			cp[k] = row[i]
		}
		out.rows = append(out.rows, cp)
	}
	return out, nil
}

// Rename renames columns in place. A rename onto an existing name is skipped.
func (t *Table) Rename(mapping map[string]string) *Table {
	for i, c := range t.cols {
		to, ok := mapping[c]
		if !ok || to == c {
			continue
		}
		if _, taken := t.index[to]; taken {
			continue
		}
		delete(t.index, c)
		t.index[to] = i
		t.cols[i] = to
	}
	return t
}

// Drop removes the named columns in place. Absent names are ignored.
func (t *Table) Drop(columns ...string) *Table {
	drop := make(map[int]bool, len(columns))
	for _, c := range columns {
		if i, ok := t.index[c]; ok {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return t
	}

	keep := make([]int, 0, len(t.cols)-len(drop))
	for i := range t.cols {
		if !drop[i] {
			keep = append(keep, i)
		}
	}

	cols := make([]string, len(keep))
	for k, i := range keep {
		cols[k] = t.cols[i]
	}
	for r, row := range t.rows {
		cp := make([]Value, len(keep))
		for k, i := range keep {
			cp[k] = row[i]
		}
		t.rows[r] = cp
	}
	t.cols = cols
	t.index = make(map[string]int, len(cols))
	for i, c := range cols {
		t.index[c] = i
	}
	return t
}

func (t *Table) Clone() *Table {
	out := t.emptyLike()
	for _, row := range t.rows {
		cp := make([]Value, len(row))
		copy(cp, row)
		out.rows = append(out.rows, cp)
	}
	return out
}

func (t *Table) emptyLike() *Table {
	out := &Table{
		cols:  make([]string, len(t.cols)),
		index: make(map[string]int, len(t.cols)),
	}
	copy(out.cols, t.cols)
	for k, v := range t.index {
		out.index[k] = v
	}
	return out
}

// Concat stacks tables vertically. The result has the union of columns in
// first-seen order; cells a source table lacks are Missing.
func Concat(tables ...*Table) *Table {
	var cols []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.cols {
			if !seen[c] {
				seen[c] = true
				cols = append(cols, c)
			}
		}
	}

	out := New(cols...)
	for _, t := range tables {
		for _, row := range t.rows {
			cp := make([]Value, len(cols))
			for i, c := range t.cols {
				cp[out.index[c]] = row[i]
			}
			out.rows = append(out.rows, cp)
		}
	}
	return out
}
