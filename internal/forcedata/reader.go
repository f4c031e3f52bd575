package forcedata

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Expected column layout of the input sheet. Row 1 is a header and is
// always skipped.
const (
	colPosition = 0
	colForce    = 1
	colKind     = 2
)

// ReadWorkbook reads force records from the first sheet of an Excel
// workbook. Malformed rows are skipped and reported as warnings on the
// returned Table; the caller decides how loudly to surface them.
func ReadWorkbook(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s: %w", path, ErrNoData)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	table := &Table{Sheet: sheet}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1
		if isBlank(row) {
			continue
		}

		ld, err := parseRow(row)
		if err != nil {
			table.Warnings = append(table.Warnings, &RowError{Row: rowNum, Err: err})
			continue
		}
		table.Loads = append(table.Loads, ld)
	}

	if len(table.Loads) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrNoData)
	}
	return table, nil
}

func parseRow(row []string) (Load, error) {
	if len(row) <= colKind {
		return Load{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}

	pos, err := parseFloat(row[colPosition])
	if err != nil {
		return Load{}, fmt.Errorf("position: %w", err)
	}
	mag, err := parseFloat(row[colForce])
	if err != nil {
		return Load{}, fmt.Errorf("force: %w", err)
	}
	kind, err := ParseKind(row[colKind])
	if err != nil {
		return Load{}, err
	}

	if pos < 0 {
		return Load{}, fmt.Errorf("position %.3f is negative", pos)
	}
	return Load{Position: pos, Magnitude: mag, Kind: kind}, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
