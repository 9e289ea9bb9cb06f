package otc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest/httpfetch"
)

const page = `<html><body>
<table class="contract-history">
<thead><tr>
  <th>Player</th><th>Team</th><th>Year Signed</th><th>Years</th><th>Value</th>
  <th>APY</th><th>Guaranteed</th><th>APY as % Of Cap At Signing</th>
  <th>Inflated Value</th><th>Inflated APY</th><th>Inflated Guaranteed</th>
</tr></thead>
<tbody>
<tr><td>Christian McCaffrey</td><td>49ers</td><td>2024</td><td>2</td><td>$38,000,000</td>
    <td>$19,000,000</td><td>$24,000,000</td><td>7.4%</td><td>$38,000,000</td><td>$19,000,000</td><td>$24,000,000</td></tr>
<tr><td>Derrick Henry</td><td>Ravens</td><td>2024</td><td>2</td><td>$16,000,000</td>
    <td>$8,000,000</td><td>$9,000,000</td><td>3.1%</td><td>-</td><td>-</td><td>-</td></tr>
</tbody>
</table>
<table><tr><th>Other</th></tr></table>
</body></html>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	tb, err := NewScraper(httpfetch.New(httpfetch.Options{}), srv.URL, nil).Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, tb.Len())
	assert.True(t, tb.Has("apy_cap_pct"))
	assert.Equal(t, "19000000", tb.Get(0, "apy").String())
	assert.Equal(t, "3.1", tb.Get(1, "apy_cap_pct").String())
	assert.True(t, tb.Get(1, "inflated_value").IsMissing())
	assert.Equal(t, "2024", tb.Get(1, "year_signed").String())
}

func TestParse_NoTable(t *testing.T) {
	_, err := Parse([]byte(`<html><body><p>maintenance</p></body></html>`))
	assert.True(t, errs.IsRemoteFetch(err))
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewScraper(httpfetch.New(httpfetch.Options{}), srv.URL, nil).Fetch(context.Background())
	assert.True(t, errs.IsRemoteFetch(err))
}
