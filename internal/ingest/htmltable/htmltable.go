// Package htmltable converts HTML <table> elements into tables.
package htmltable

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/table"
)

// ParseHTML converts raw HTML to a goquery Document for parsing
func ParseHTML(html []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}
	return doc, nil
}

// Options tune Read.
type Options struct {
	// SkipRow drops a body row. cells holds the trimmed cell texts.
	SkipRow func(tr *goquery.Selection, cells []string) bool
}

// Read converts one <table>. The header comes from the last <thead> row, or
// the first row when there is no <thead>. Empty cells are missing and
// duplicate header names get a ".N" suffix.
func Read(tbl *goquery.Selection, opts Options) (*table.Table, error) {
	var header []string
	var body *goquery.Selection

	if head := tbl.Find("thead tr"); head.Length() > 0 {
		header = cellTexts(head.Last())
		body = tbl.Find("tbody tr")
		if body.Length() == 0 {
			body = tbl.Find("tr").NotSelection(head)
		}
	} else {
		rows := tbl.Find("tr")
		if rows.Length() == 0 {
			return nil, errors.New("table has no rows")
		}
		header = cellTexts(rows.First())
		body = rows.Slice(1, rows.Length())
	}
	if len(header) == 0 {
		return nil, errors.New("table has no header cells")
	}

	out := table.New(header...)
	body.Each(func(_ int, tr *goquery.Selection) {
		cells := cellTexts(tr)
		if len(cells) == 0 {
			return
		}
		if opts.SkipRow != nil && opts.SkipRow(tr, cells) {
			return
		}
		row := make([]table.Value, len(cells))
		for i, c := range cells {
			if c != "" {
				row[i] = table.Text(c)
			}
		}
		out.AppendRow(row...)
	})
	return out, nil
}

func cellTexts(tr *goquery.Selection) []string {
	var out []string
	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.TrimSpace(cell.Text()))
	})
	return out
}
