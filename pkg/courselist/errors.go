package courselist

import (
	"errors"
	"fmt"

	"github.com/ukaji3/courselist-go/pkg/courselist/output"
	"github.com/ukaji3/courselist-go/pkg/courselist/workbook"
)

// ErrInvalidInput indicates a required setting is missing or inconsistent.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidColumn indicates a column label that cannot be resolved.
var ErrInvalidColumn = errors.New("invalid column")

// ErrFileAccess indicates the source workbook could not be opened or read.
var ErrFileAccess = errors.New("cannot access file")

// ErrNoSheetLoaded indicates extraction was attempted without a sheet.
var ErrNoSheetLoaded = errors.New("no worksheet loaded")

// ErrRecordParse indicates a row with a malformed id or price.
var ErrRecordParse = errors.New("cannot parse record")

// Errors raised by the workbook and output packages.
var (
	ErrUnsupportedFormat = workbook.ErrUnsupportedFormat
	ErrSheetNotFound     = workbook.ErrSheetNotFound
	ErrDestination       = output.ErrDestination
	ErrWrite             = output.ErrWrite
)

// RecordError reports the row and cell that failed to parse.
type RecordError struct {
	// Row is the 1-based sheet row.
	Row int
	// Column is the 0-based column of the offending cell.
	Column int
	// Field names the record field ("id" or "price").
	Field string
	// Value is the cell content as text.
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %s %q in column %s: %v",
		e.Row, e.Field, e.Value, ColumnLabel(e.Column), e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is makes every RecordError match ErrRecordParse.
func (e *RecordError) Is(target error) bool {
	return target == ErrRecordParse
}
