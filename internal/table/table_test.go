package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/errs"
)

func sample() *Table {
	t := New("Player", "Year", "rAtt")
	t.AppendRow(Text("Derrick Henry"), Int(2020), Int(378))
	t.AppendRow(Text("Nick Chubb"), Int(2020), Int(190))
	t.AppendRow(Text("Jonathan Taylor"), Int(2021), Missing())
	return t
}

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.True(t, Number(math.NaN()).IsMissing())
	assert.Equal(t, KindNumber, Number(1.5).Kind())
	assert.Equal(t, KindText, Text("").Kind())

	f, ok := Text(" 71 ").Float()
	assert.True(t, ok)
	assert.Equal(t, 71.0, f)

	_, ok = Text("n/a").Float()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "2020", Int(2020).String())
	assert.Equal(t, "4.5", Number(4.5).String())
	assert.Equal(t, "", Missing().String())
	assert.Equal(t, "RB", Text("RB").String())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"12", Number(12)},
		{" -3.25 ", Number(-3.25)},
		{"", Missing()},
		{"abc", Missing()},
		{"1,200", Missing()},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseNumber(tt.raw)), "got %v", ParseNumber(tt.raw))
		})
	}
}

func TestNew_DeduplicatesNames(t *testing.T) {
	tb := New("Yds", "Yds", "Yds", "TD")
	assert.Equal(t, []string{"Yds", "Yds.1", "Yds.2", "TD"}, tb.Columns())
}

func TestFilterAndSelect(t *testing.T) {
	tb := sample()
	heavy := tb.Filter(func(r Row) bool {
		f, ok := r.Get("rAtt").Float()
		return ok && f >= 200
	})
	require.Equal(t, 1, heavy.Len())
	assert.Equal(t, "Derrick Henry", heavy.Get(0, "Player").String())

	sel, err := tb.Select("rAtt", "Player")
	require.NoError(t, err)
	assert.Equal(t, []string{"rAtt", "Player"}, sel.Columns())
	assert.Equal(t, "Nick Chubb", sel.Get(1, "Player").String())

	_, err = tb.Select("Player", "Team")
	assert.True(t, errs.IsSchema(err))
}

func TestFilter_DoesNotAliasSource(t *testing.T) {
	tb := sample()
	cp := tb.Filter(func(Row) bool { return true })
	cp.Set(0, "Player", Text("changed"))
	assert.Equal(t, "Derrick Henry", tb.Get(0, "Player").String())
}

func TestRenameAndDrop(t *testing.T) {
	tb := sample()
	tb.Rename(map[string]string{"rAtt": "Att", "Year": "Player"})
	assert.Equal(t, []string{"Player", "Year", "Att"}, tb.Columns())

	tb.Drop("Year", "absent")
	assert.Equal(t, []string{"Player", "Att"}, tb.Columns())
	assert.Equal(t, "378", tb.Get(0, "Att").String())
	assert.True(t, tb.Get(0, "Year").IsMissing())
}

func TestAddColumn(t *testing.T) {
	tb := sample()
	tb.AddColumn("double", func(r Row) Value {
		f, ok := r.Get("rAtt").Float()
		if !ok {
			return Missing()
		}
		return Number(f * 2)
	})
	assert.Equal(t, "756", tb.Get(0, "double").String())
	assert.True(t, tb.Get(2, "double").IsMissing())
	assert.Equal(t, 4, tb.Width())
}

func TestConcat_UnionsColumns(t *testing.T) {
	a := New("Player", "Year")
	a.AppendRow(Text("A"), Int(2001))
	b := New("Player", "Team")
	b.AppendRow(Text("B"), Text("TEN"))

	out := Concat(a, b)
	assert.Equal(t, []string{"Player", "Year", "Team"}, out.Columns())
	rows, cols := out.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.True(t, out.Get(0, "Team").IsMissing())
	assert.True(t, out.Get(1, "Year").IsMissing())
	assert.Equal(t, "TEN", out.Get(1, "Team").String())
}

func TestCoerceNumeric(t *testing.T) {
	tb := New("Age", "Player")
	tb.AppendRow(Text("25"), Text("A"))
	tb.AppendRow(Text("--"), Text("B"))
	tb.CoerceNumeric("Age", "missing-column")

	assert.Equal(t, KindNumber, tb.Get(0, "Age").Kind())
	assert.True(t, tb.Get(1, "Age").IsMissing())
	assert.Equal(t, KindText, tb.Get(0, "Player").Kind())
}
