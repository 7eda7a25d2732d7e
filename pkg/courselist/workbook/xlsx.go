package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSX reads Office Open XML workbooks through excelize.
type XLSX struct {
	f *excelize.File
}

// OpenXLSX opens an xlsx-family workbook.
func OpenXLSX(path string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	return NewXLSX(f), nil
}

// NewXLSX wraps an already opened excelize file.
func NewXLSX(f *excelize.File) *XLSX {
	return &XLSX{f: f}
}

// SheetNames returns the sheet names in workbook order.
func (x *XLSX) SheetNames() []string {
	return x.f.GetSheetList()
}

// Sheet reads every row of the named sheet into typed cells.
func (x *XLSX) Sheet(name string) (*Sheet, error) {
	if idx, err := x.f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	rows, err := x.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &SheetError{SheetName: name, Err: err}
	}

	result := make([][]Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]Cell, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, &SheetError{SheetName: name, Err: err}
			}
			typ, err := x.f.GetCellType(name, cellName)
			if err != nil {
				return nil, &SheetError{SheetName: name, Err: err}
			}
			cells[colIdx] = typedCell(typ, raw)
		}
		result[rowIdx] = cells
	}

	return NewSheet(name, result), nil
}

// Close closes the underlying file.
func (x *XLSX) Close() error {
	return x.f.Close()
}

// typedCell converts a raw cell value to a Cell using the stored cell type.
// Plain numeric cells carry no type attribute, so untyped values are parsed.
func typedCell(typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeBool:
		return BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return ErrorCell(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeDate:
		return StringCell(raw)
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns a number cell on success, or a string cell otherwise.
func parseValue(s string) Cell {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(f)
	}
	return StringCell(s)
}
