package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/rb70/internal/errs"
)

// IndexMarker prefixes the header of an index column left behind by an
// earlier serialization.
const IndexMarker = "Unnamed"

// Schema declares what a source is expected to carry.
type Schema struct {
	Name     string
	Version  int
	Numeric  []string
	Required []string
}

// Load reads a delimited file with a header row and applies the schema.
func Load(path string, schema Schema) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errs.MissingFile(path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	t, err := Read(f, schema)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

// Read parses CSV from r:
//   - columns whose header starts with IndexMarker (or is empty) are dropped
//   - header names are trimmed
//   - empty cells are Missing, everything else is Text
//   - schema.Numeric columns that are present are coerced to numbers
//   - every schema.Required column must be present
func Read(r io.Reader, schema Schema) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.Schemaf("%s: no header row", schemaName(schema))
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	keep := make([]int, 0, len(header))
	names := make([]string, 0, len(header))
	for i, h := range header {
		if h == "" || strings.HasPrefix(h, IndexMarker) {
			continue
		}
		keep = append(keep, i)
		names = append(names, strings.TrimSpace(h))
	}

	t := New(names...)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read record")
		}
		row := make([]Value, len(keep))
		for k, i := range keep {
			if i >= len(record) || record[i] == "" {
				continue
			}
			row[k] = Text(record[i])
		}
		t.rows = append(t.rows, row)
	}

	t.CoerceNumeric(schema.Numeric...)

	if err := t.Require(schema.Required...); err != nil {
		return nil, errors.Wrap(err, schemaName(schema))
	}
	return t, nil
}

// Require fails with a schema error naming the first absent column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.Has(c) {
			return errs.Schemaf("required column %q not found", c)
		}
	}
	return nil
}

func schemaName(s Schema) string {
	if s.Name == "" {
		return "table"
	}
	return s.Name
}
