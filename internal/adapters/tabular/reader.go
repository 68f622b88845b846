// Package tabular parses uploaded review exports into domain.Table.
// CSV goes through encoding/csv, spreadsheets through excelize. A
// parse failure here is terminal for the upload: no partial table is
// ever returned.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"reviewlens/internal/domain"
)

var ErrEmptyTable = errors.New("no header row found")

// Format reports the reader used for a filename, for metrics labels.
func Format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return "excel"
	default:
		return "csv"
	}
}

// Read parses the upload, choosing the reader by file extension.
func Read(filename string, r io.Reader) (domain.Table, error) {
	var (
		t   domain.Table
		err error
	)
	if Format(filename) == "excel" {
		t, err = readExcel(r)
	} else {
		t, err = readCSV(r)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	return t, nil
}

func readCSV(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports are frequently ragged
	cr.TrimLeadingSpace = true

	var t domain.Table
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Table{}, err
		}
		if t.Columns == nil {
			t.Columns = rec
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	if t.Columns == nil {
		return domain.Table{}, ErrEmptyTable
	}
	return t, nil
}

func readExcel(r io.Reader) (domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Table{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, ErrEmptyTable
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, err
	}
	if len(rows) == 0 {
		return domain.Table{}, ErrEmptyTable
	}
	return domain.Table{Columns: rows[0], Rows: rows[1:]}, nil
}
