package table

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

// Write writes the header and every row to w as CSV.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return errors.Wrap(err, "write header")
	}
	record := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the table as CSV to path. The file is replaced as a whole:
// rows go to a temporary sibling which is renamed over path on success.
func (t *Table) WriteCSV(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if err := t.Write(tmp); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}

// WriteXLSX writes the table as a single-sheet workbook.
func (t *Table) WriteXLSX(path, sheet string) error {
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "name sheet")
	}

	header := make([]interface{}, len(t.cols))
	for i, c := range t.cols {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for r, row := range t.rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			switch v.Kind() {
			case KindNumber:
				cells[i] = v.num
			case KindText:
				cells[i] = v.text
			default:
				cells[i] = ""
			}
		}
		anchor, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.Wrapf(err, "row %d", r)
		}
		if err := f.SetSheetRow(sheet, anchor, &cells); err != nil {
			return errors.Wrapf(err, "write row %d", r)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
