// Package reconciliation matches rows from different sources on a
// normalized player name.
package reconciliation

import (
	"strings"

	"github.com/fortuna/rb70/internal/table"
)

// NormalizeName trims surrounding whitespace and lower-cases. Accents,
// punctuation and name order are left alone, so "D.J. Moore" and "DJ Moore"
// are different players.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NameKey is NormalizeName over a cell. A missing cell yields "".
func NameKey(v table.Value) string {
	if v.IsMissing() {
		return ""
	}
	return NormalizeName(v.String())
}
