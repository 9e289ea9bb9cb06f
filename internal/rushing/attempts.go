// Package rushing combines the per-season rushing tables and selects the
// running backs that clear the attempts threshold.
package rushing

import (
	"strings"

	"github.com/fortuna/rb70/internal/errs"
	"github.com/fortuna/rb70/internal/table"
)

// AttemptsCandidates lists the attempts column names used across source
// eras, most preferred first.
var AttemptsCandidates = []string{"rAtt", "Att", "ATT"}

// ResolveAttemptsColumn returns the first candidate present in t.
func ResolveAttemptsColumn(t *table.Table) (string, error) {
	for _, c := range AttemptsCandidates {
		if t.Has(c) {
			return c, nil
		}
	}
	return "", errs.Schemaf("no rushing attempts column found (tried %s)", strings.Join(AttemptsCandidates, ", "))
}
