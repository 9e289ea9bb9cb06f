package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/table"
)

func master() *table.Table {
	t := table.New("Player", "rAtt", "apy", "team", "notes")
	t.AppendRow(table.Text("Derrick Henry"), table.Int(378), table.Number(8000000), table.Text("Ravens"))
	t.AppendRow(table.Text("Nick Chubb"), table.Int(190), table.Missing(), table.Missing())
	return t
}

func TestInferColumns(t *testing.T) {
	cols := InferColumns(master())
	assert.Equal(t, []Column{
		{Name: "Player", Type: TypeText},
		{Name: "rAtt", Type: TypeDouble},
		{Name: "apy", Type: TypeDouble},
		{Name: "team", Type: TypeText},
		{Name: "notes", Type: TypeText},
	}, cols)
}

func TestInferColumns_MixedIsText(t *testing.T) {
	tb := table.New("Age")
	tb.AppendRow(table.Int(25))
	tb.AppendRow(table.Text("unknown"))
	assert.Equal(t, TypeText, InferColumns(tb)[0].Type)
}

func TestCreateTableSQL_QuotesIdentifiers(t *testing.T) {
	sql := CreateTableSQL("rb_master", []Column{{Name: "rY/A", Type: TypeDouble}, {Name: "Player", Type: TypeText}})
	assert.Equal(t, `CREATE TABLE "rb_master" ("rY/A" DOUBLE PRECISION, "Player" TEXT)`, sql)
	assert.Equal(t, `DROP TABLE IF EXISTS "weird""name"`, DropTableSQL(`weird"name`))
}

func TestRowArgs(t *testing.T) {
	tb := master()
	cols := InferColumns(tb)

	args := RowArgs(tb, 0, cols)
	require.Len(t, args, 5)
	assert.Equal(t, "Derrick Henry", args[0])
	assert.Equal(t, 378.0, args[1])
	assert.Equal(t, 8000000.0, args[2])
	assert.Equal(t, "Ravens", args[3])
	assert.Nil(t, args[4])

	args = RowArgs(tb, 1, cols)
	assert.Nil(t, args[2])
	assert.Nil(t, args[3])
}

func TestRowArgs_NumberInTextColumn(t *testing.T) {
	tb := table.New("mixed")
	tb.AppendRow(table.Int(7))
	tb.AppendRow(table.Text("x"))
	assert.Equal(t, "7", RowArgs(tb, 0, InferColumns(tb))[0])
}
