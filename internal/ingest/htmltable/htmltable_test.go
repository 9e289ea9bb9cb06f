package htmltable

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func first(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := ParseHTML([]byte(html))
	require.NoError(t, err)
	sel := doc.Find("table").First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestRead_WithHead(t *testing.T) {
	sel := first(t, `<table>
<thead>
  <tr><th colspan="3">Group</th></tr>
  <tr><th> Player </th><th>Yds</th><th>Yds</th></tr>
</thead>
<tbody>
  <tr><td>A</td><td>1,000</td><td></td></tr>
  <tr class="thead"><td>Player</td><td>Yds</td><td>Yds</td></tr>
  <tr><td>B</td><td>5</td><td>6</td><td>extra</td></tr>
</tbody>
</table>`)

	tb, err := Read(sel, Options{
		SkipRow: func(tr *goquery.Selection, _ []string) bool { return tr.HasClass("thead") },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "Yds", "Yds.1"}, tb.Columns())
	require.Equal(t, 2, tb.Len())
	assert.Equal(t, "1,000", tb.Get(0, "Yds").String())
	assert.True(t, tb.Get(0, "Yds.1").IsMissing())
	assert.Equal(t, "6", tb.Get(1, "Yds.1").String())
}

func TestRead_WithoutHead(t *testing.T) {
	sel := first(t, `<table>
<tr><th>Player</th><th>APY</th></tr>
<tr><td>A</td><td>$1</td></tr>
</table>`)

	tb, err := Read(sel, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Player", "APY"}, tb.Columns())
	assert.Equal(t, 1, tb.Len())
	assert.Equal(t, "$1", tb.Get(0, "APY").String())
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(first(t, `<table></table>`), Options{})
	assert.Error(t, err)
}
