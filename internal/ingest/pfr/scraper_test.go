package pfr

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest/httpfetch"
	"github.com/fortuna/rb70/internal/table"
)

const page = `<html><body>
<table id="rushing_advanced"><tr><th>Ignore</th></tr></table>
<table id="rushing">
<thead>
  <tr class="over_header"><th></th><th colspan="3">Rushing</th></tr>
  <tr><th>Rk</th><th>Player</th><th>Age</th><th>Att</th><th>Yds</th><th>Y/A</th></tr>
</thead>
<tbody>
  <tr><th>1</th><td>Saquon Barkley</td><td>27</td><td>345</td><td>2,005</td><td>5.8</td></tr>
  <tr class="thead"><th>Rk</th><td>Player</td><td>Age</td><td>Att</td><td>Yds</td><td>Y/A</td></tr>
  <tr><th>2</th><td>Derrick Henry</td><td>30</td><td>325</td><td>1,921</td><td>--</td></tr>
  <tr><th></th><td></td><td></td><td></td><td></td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	tb, err := Parse([]byte(page), 2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rk", "Player", "Age", "Att", "Yds", "Y/A", "Season"}, tb.Columns())
	require.Equal(t, 2, tb.Len())

	assert.Equal(t, "2005", tb.Get(0, "Yds").String())
	assert.Equal(t, table.KindNumber, tb.Get(0, "Yds").Kind())
	assert.Equal(t, "5.8", tb.Get(0, "Y/A").String())
	assert.True(t, tb.Get(1, "Y/A").IsMissing())
	assert.Equal(t, "2024", tb.Get(1, "Season").String())
	assert.Equal(t, "Derrick Henry", tb.Get(1, "Player").String())
}

func TestParse_FallsBackToRushingID(t *testing.T) {
	html := strings.Replace(page, `<table id="rushing">`, `<table id="rushing_and_receiving">`, 1)
	html = strings.Replace(html, `<table id="rushing_advanced"><tr><th>Ignore</th></tr></table>`, "", 1)
	tb, err := Parse([]byte(html), 2023)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Len())
}

func TestParse_NoTable(t *testing.T) {
	_, err := Parse([]byte(`<html><table id="passing"></table></html>`), 2024)
	assert.True(t, errs.IsRemoteFetch(err))
}

func TestFetch_ForbiddenExplainsManualExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	s := NewScraper(httpfetch.New(httpfetch.Options{}), srv.URL+"/years/%d/rushing.htm", nil)
	_, err := s.Fetch(context.Background(), 2024)
	require.Error(t, err)
	assert.True(t, errs.IsRemoteFetch(err))
	assert.Contains(t, err.Error(), "Get table as CSV")
	assert.Contains(t, err.Error(), "/years/2024/rushing.htm")
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/years/2024/rushing.htm", r.URL.Path)
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	s := NewScraper(httpfetch.New(httpfetch.Options{}), srv.URL+"/years/%d/rushing.htm", nil)
	tb, err := s.Fetch(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Len())
}
