package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/table"
)

func rawPage() *table.Table {
	t := table.New("Player", "Team", "Year Signed", "Years", "Value", "APY", "Guaranteed",
		"APY as % Of Cap At Signing", "Inflated Value", "Inflated APY", "Inflated Guaranteed ")
	t.AppendRow(
		table.Text("Christian McCaffrey"), table.Text("49ers"), table.Text("2024"), table.Text("2"),
		table.Text("$38,000,000"), table.Text("$19,000,000"), table.Text("$24,000,000"),
		table.Text("7.4%"), table.Text("$38,000,000"), table.Text("$19,000,000"), table.Text("-"),
	)
	t.AppendRow(table.Text("  "), table.Text("Jets"))
	t.AppendRow(table.Missing(), table.Text("Jets"))
	t.AppendRow(
		table.Text("Rookie Back"), table.Text("Bears"), table.Text("2023"), table.Text("4"),
		table.Text("—"), table.Text(""), table.Text("n/a"),
		table.Text(""), table.Missing(), table.Missing(), table.Missing(),
	)
	return t
}

func TestClean(t *testing.T) {
	out := Clean(rawPage())

	assert.Equal(t, []string{"player", "team", "year_signed", "years", "total_value", "apy",
		"guaranteed", "apy_cap_pct", "inflated_value", "inflated_apy", "inflated_guaranteed"}, out.Columns())
	require.Equal(t, 2, out.Len())

	assert.Equal(t, "38000000", out.Get(0, "total_value").String())
	assert.Equal(t, "19000000", out.Get(0, "apy").String())
	assert.Equal(t, "7.4", out.Get(0, "apy_cap_pct").String())
	assert.Equal(t, table.KindNumber, out.Get(0, "year_signed").Kind())
	assert.True(t, out.Get(0, "inflated_guaranteed").IsMissing())

	assert.True(t, out.Get(1, "total_value").IsMissing())
	assert.True(t, out.Get(1, "apy").IsMissing())
	assert.True(t, out.Get(1, "guaranteed").IsMissing())
}

func TestClean_LeavesSourceUntouched(t *testing.T) {
	raw := rawPage()
	Clean(raw)
	assert.True(t, raw.Has("Player"))
	assert.Equal(t, 4, raw.Len())
}

func TestPlayerColumn(t *testing.T) {
	c, err := PlayerColumn(table.New("team", "PLAYER"))
	require.NoError(t, err)
	assert.Equal(t, "PLAYER", c)

	_, err = PlayerColumn(table.New("name"))
	assert.True(t, errs.IsSchema(err))
}

func TestRecords(t *testing.T) {
	recs, err := Records(Clean(rawPage()))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	assert.Equal(t, "Christian McCaffrey", first.Player)
	require.NotNil(t, first.APY)
	assert.Equal(t, 19000000.0, *first.APY)
	require.NotNil(t, first.YearSigned)
	assert.Equal(t, 2024, *first.YearSigned)
	assert.Nil(t, first.InflatedGuaranteed)
	assert.Nil(t, recs[1].TotalValue)
}
