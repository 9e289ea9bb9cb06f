// Package pfr scrapes a season rushing table from Pro-Football-Reference.
// The site blocks most automated clients; the browser source is the usual
// way in, and a manual CSV export remains the fallback.
package pfr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/rb70/internal/cleaning"
	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/ingest/htmltable"
	"github.com/fortuna/rb70/internal/ingest/httpfetch"
	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/table"
)

// RushingURL is formatted with the season.
const RushingURL = "https://www.pro-football-reference.com/years/%d/rushing.htm"

const SeasonColumn = "Season"

// CountColumns are parsed as numbers after scraping.
var CountColumns = []string{
	"Age", "G", "GS", "Att", "Yds", "TD", "1D", "Lng", "Y/A", "Y/G",
	"Rec", "Yds.1", "Y/R", "Y/Tch", "YScm", "RRTD", "Fmb",
}

type Scraper struct {
	getter      ingest.Getter
	urlTemplate string
	logger      *logging.Logger
}

func NewScraper(getter ingest.Getter, urlTemplate string, logger *logging.Logger) *Scraper {
	if urlTemplate == "" {
		urlTemplate = RushingURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Scraper{getter: getter, urlTemplate: urlTemplate, logger: logger.With("component", "pfr")}
}

func (s *Scraper) URL(season int) string {
	return fmt.Sprintf(s.urlTemplate, season)
}

// Fetch downloads and parses one season.
func (s *Scraper) Fetch(ctx context.Context, season int) (*table.Table, error) {
	url := s.URL(season)
	body, err := s.getter.Get(ctx, url)
	if err != nil {
		if code, ok := httpfetch.Status(err); ok && code == http.StatusForbidden {
			return nil, errs.RemoteFetch(err,
				"%s refused automated access; use the page's 'Get table as CSV' export and save it locally", url)
		}
		return nil, err
	}

	t, err := Parse(body, season)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched rushing table", "season", season, "rows", t.Len())
	return t, nil
}

// Parse finds the rushing table, drops repeated header rows, adds the Season
// column and parses count columns.
func Parse(html []byte, season int) (*table.Table, error) {
	doc, err := htmltable.ParseHTML(html)
	if err != nil {
		return nil, errs.RemoteFetch(err, "rushing page")
	}

	sel := findRushingTable(doc)
	if sel == nil {
		return nil, errs.RemoteFetch(nil, "could not find rushing table on page")
	}

	t, err := htmltable.Read(sel, htmltable.Options{SkipRow: headerRepeat})
	if err != nil {
		return nil, errs.RemoteFetch(err, "rushing table")
	}

	t.AddColumn(SeasonColumn, func(table.Row) table.Value { return table.Int(season) })
	for _, c := range CountColumns {
		t.MapColumn(c, cleaning.CountValue)
	}
	return t, nil
}

func findRushingTable(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("table#rushing").First(); sel.Length() > 0 {
		return sel
	}
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		if id, _ := tbl.Attr("id"); strings.Contains(id, "rushing") {
			found = tbl
			return false
		}
		return true
	})
	return found
}

func headerRepeat(tr *goquery.Selection, cells []string) bool {
	if tr.HasClass("thead") {
		return true
	}
	return cells[0] == "" || cells[0] == "Player"
}
