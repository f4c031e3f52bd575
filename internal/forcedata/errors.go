package forcedata

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("input file not found")

// ErrNoData indicates the sheet contains no force records below the header.
var ErrNoData = errors.New("no force records in sheet")

// RowError describes a row that could not be parsed and was skipped.
type RowError struct {
	Row int // 1-based spreadsheet row number
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
