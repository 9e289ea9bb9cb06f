// Package errs defines the failure kinds shared by every pipeline stage.
//
// MissingFile and Schema failures are fatal and propagate to the process
// boundary. RemoteFetch failures are fatal only where a caller decides so;
// fetchers record them per item instead. A cell that fails to parse is never
// an error, it becomes a missing value.
package errs

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrMissingFile = errors.New("missing input file")
	ErrSchema      = errors.New("schema mismatch")
	ErrRemoteFetch = errors.New("remote fetch failed")
)

// MissingFile reports that a required input file does not exist.
func MissingFile(path string) error {
	return errors.Mark(errors.Newf("missing %s", path), ErrMissingFile)
}

// Schemaf reports a required column that is absent.
func Schemaf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrSchema)
}

// RemoteFetch wraps a transport or status failure. cause may be nil.
func RemoteFetch(cause error, format string, args ...any) error {
	if cause == nil {
		return errors.Mark(errors.Newf(format, args...), ErrRemoteFetch)
	}
	return errors.Mark(errors.Wrapf(cause, format, args...), ErrRemoteFetch)
}

func IsMissingFile(err error) bool { return errors.Is(err, ErrMissingFile) }

func IsSchema(err error) bool { return errors.Is(err, ErrSchema) }

func IsRemoteFetch(err error) bool { return errors.Is(err, ErrRemoteFetch) }
