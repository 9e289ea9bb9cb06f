// Package contracts cleans the running-back contract history table.
package contracts

import (
	"strings"

	"github.com/fortuna/rb70/internal/cleaning"
	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/table"
)

// RawColumns maps the contract-history page headers to stored names.
var RawColumns = map[string]string{
	"Player":                     "player",
	"Team":                       "team",
	"Year Signed":                "year_signed",
	"Years":                      "years",
	"Value":                      "total_value",
	"APY":                        "apy",
	"Guaranteed":                 "guaranteed",
	"APY as % Of Cap At Signing": "apy_cap_pct",
	"Inflated Value":             "inflated_value",
	"Inflated APY":               "inflated_apy",
	"Inflated Guaranteed":        "inflated_guaranteed",
}

var (
	MoneyColumns   = []string{"total_value", "apy", "guaranteed", "inflated_value", "inflated_apy", "inflated_guaranteed"}
	PercentColumns = []string{"apy_cap_pct"}
	CountColumns   = []string{"year_signed", "years"}

	// MergeNumeric are re-coerced when the cleaned table is read for the
	// master merge.
	MergeNumeric = []string{"apy", "guaranteed", "total_value"}
)

// RawSchema reads a saved raw scrape.
var RawSchema = table.Schema{Name: "contracts_raw", Version: 1}

// FilteredSchema reads the RB70 subset for the master merge.
var FilteredSchema = table.Schema{Name: "contracts_rb70", Version: 1, Numeric: MergeNumeric}

// Clean renames known headers, drops rows with a blank player and parses
// money, percent and count columns. Unparseable cells become missing.
func Clean(raw *table.Table) *table.Table {
	t := raw.Clone()

	trimmed := make(map[string]string)
	for _, c := range t.Columns() {
		if s := strings.TrimSpace(c); s != c {
			trimmed[c] = s
		}
	}
	t.Rename(trimmed)
	t.Rename(RawColumns)

	if t.Has("player") {
		t = t.Filter(func(r table.Row) bool {
			v := r.Get("player")
			return !v.IsMissing() && strings.TrimSpace(v.String()) != ""
		})
	}

	for _, c := range MoneyColumns {
		t.MapColumn(c, cleaning.MoneyValue)
	}
	for _, c := range PercentColumns {
		t.MapColumn(c, cleaning.PercentValue)
	}
	t.CoerceNumeric(CountColumns...)
	return t
}

// PlayerColumn returns the first column whose name is "player" in any case.
func PlayerColumn(t *table.Table) (string, error) {
	for _, c := range t.Columns() {
		if strings.ToLower(c) == "player" {
			return c, nil
		}
	}
	return "", errs.Schemaf("no player column in contracts table")
}
