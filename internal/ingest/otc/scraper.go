// Package otc scrapes the running-back contract history page.
package otc

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/contracts"
	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/ingest"
	"github.com/fortuna/rb70/internal/ingest/htmltable"
	"github.com/fortuna/rb70/internal/platform/logging"
	"github.com/fortuna/rb70/internal/table"
)

const ContractHistoryURL = "https://overthecap.com/contract-history/running-back"

type Scraper struct {
	getter ingest.Getter
	url    string
	logger *logging.Logger
}

func NewScraper(getter ingest.Getter, url string, logger *logging.Logger) *Scraper {
	if url == "" {
		url = ContractHistoryURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Scraper{getter: getter, url: url, logger: logger.With("component", "otc")}
}

// Fetch downloads the page and returns the cleaned contracts table.
func (s *Scraper) Fetch(ctx context.Context) (*table.Table, error) {
	body, err := s.getter.Get(ctx, s.url)
	if err != nil {
		return nil, errors.Wrap(err, "contract history")
	}
	t, err := Parse(body)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched contracts", "rows", t.Len(), "url", s.url)
	return t, nil
}

// Parse reads the first table of the page and cleans it.
func Parse(html []byte) (*table.Table, error) {
	doc, err := htmltable.ParseHTML(html)
	if err != nil {
		return nil, errs.RemoteFetch(err, "contract history page")
	}
	first := doc.Find("table").First()
	if first.Length() == 0 {
		return nil, errs.RemoteFetch(nil, "no tables found on contract history page")
	}
	raw, err := htmltable.Read(first, htmltable.Options{})
	if err != nil {
		return nil, errs.RemoteFetch(err, "contract history table")
	}
	return contracts.Clean(raw), nil
}
