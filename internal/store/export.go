package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"

	"github.com/fortuna/rb70/internal/table"
)

// ColumnType is the SQL type an exported column is created with.
type ColumnType string

const (
	TypeDouble ColumnType = "DOUBLE PRECISION"
	TypeText   ColumnType = "TEXT"
)

// Column is one exported column.
type Column struct {
	Name string
	Type ColumnType
}

// InferColumns types a column DOUBLE PRECISION when it has at least one
// present cell and every present cell is numeric, TEXT otherwise.
func InferColumns(t *table.Table) []Column {
	cols := t.Columns()
	out := make([]Column, len(cols))
	for i, c := range cols {
		typ := TypeText
		present := 0
		numeric := true
		for _, v := range t.Column(c) {
			switch v.Kind() {
			case table.KindMissing:
				continue
			case table.KindText:
				numeric = false
			}
			present++
		}
		if present > 0 && numeric {
			typ = TypeDouble
		}
		out[i] = Column{Name: c, Type: typ}
	}
	return out
}

// CreateTableSQL renders the CREATE TABLE statement for cols.
func CreateTableSQL(name string, cols []Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = pq.QuoteIdentifier(c.Name) + " " + string(c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pq.QuoteIdentifier(name), strings.Join(defs, ", "))
}

// DropTableSQL renders the DROP TABLE statement for name.
func DropTableSQL(name string) string {
	return "DROP TABLE IF EXISTS " + pq.QuoteIdentifier(name)
}

// RowArgs converts one table row into COPY arguments for cols. Missing cells
// are NULL.
func RowArgs(t *table.Table, row int, cols []Column) []any {
	args := make([]any, len(cols))
	for i, c := range cols {
		v := t.Get(row, c.Name)
		switch {
		case v.IsMissing():
			args[i] = nil
		case c.Type == TypeDouble:
			f, _ := v.Float()
			args[i] = f
		default:
			args[i] = v.String()
		}
	}
	return args
}

// ExportTable replaces the table name with the contents of t in one
// transaction: drop, create, then COPY every row.
func (db *Database) ExportTable(ctx context.Context, name string, t *table.Table) (err error) {
	if name == "" {
		return errors.New("export: empty table name")
	}
	cols := InferColumns(t)
	if len(cols) == 0 {
		return errors.Newf("export %s: table has no columns", name)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin export")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				db.logger.Warn("rollback export failed", "table", name, "error", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, DropTableSQL(name)); err != nil {
		return errors.Wrapf(err, "drop %s", name)
	}
	if _, err = tx.ExecContext(ctx, CreateTableSQL(name, cols)); err != nil {
		return errors.Wrapf(err, "create %s", name)
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(name, names...))
	if err != nil {
		return errors.Wrapf(err, "prepare copy into %s", name)
	}
	for r := 0; r < t.Len(); r++ {
		if _, err = stmt.ExecContext(ctx, RowArgs(t, r, cols)...); err != nil {
			stmt.Close()
			return errors.Wrapf(err, "copy row %d", r)
		}
	}
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return errors.Wrap(err, "flush copy")
	}
	if err = stmt.Close(); err != nil {
		return errors.Wrap(err, "close copy")
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit export")
	}

	db.logger.Info("exported table", "table", name, "rows", t.Len(), "cols", len(cols))
	return nil
}
