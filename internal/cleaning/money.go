// Package cleaning turns display-formatted cells ("$32,700,000", "15.8%",
// "1,204") into plain numbers. Every function here is total: input that does
// not parse is reported as missing, never as an error.
package cleaning

import (
	"math"
	"strconv"
	"strings"

	"github.com/fortuna/rb70/internal/table"
)

// placeholders render an empty cell on the scraped pages.
var placeholders = map[string]bool{
	"":  true,
	"-": true,
	"—": true,
	"–": true,
}

var moneyReplacer = strings.NewReplacer("$", "", ",", "")

// ParseMoney parses a currency string such as "$32,700,000".
func ParseMoney(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if placeholders[s] {
		return 0, false
	}
	return parseFloat(moneyReplacer.Replace(s))
}

// ParsePercent parses "15.8%" as 15.8. Only a trailing percent sign is
// accepted. The value is not divided by 100.
func ParsePercent(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if placeholders[s] {
		return 0, false
	}
	return parseFloat(strings.TrimSuffix(s, "%"))
}

// ParseCount parses a stat cell with thousands separators. "--" is missing.
func ParseCount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "--" {
		return 0, false
	}
	return parseFloat(strings.ReplaceAll(s, ",", ""))
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MoneyValue applies ParseMoney to a cell. Numbers pass through.
func MoneyValue(v table.Value) table.Value { return apply(v, ParseMoney) }

// PercentValue applies ParsePercent to a cell. Numbers pass through.
func PercentValue(v table.Value) table.Value { return apply(v, ParsePercent) }

// CountValue applies ParseCount to a cell. Numbers pass through.
func CountValue(v table.Value) table.Value { return apply(v, ParseCount) }

func apply(v table.Value, parse func(string) (float64, bool)) table.Value {
	switch v.Kind() {
	case table.KindNumber:
		return v
	case table.KindText:
		if f, ok := parse(v.String()); ok {
			return table.Number(f)
		}
	}
	return table.Missing()
}
