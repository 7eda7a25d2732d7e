package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a fully materialized worksheet.
type Sheet struct {
	name string
	rows [][]Cell
}

// NewSheet creates a sheet from rows of cells. Rows may have different lengths.
func NewSheet(name string, rows [][]Cell) *Sheet {
	return &Sheet{name: name, rows: rows}
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Rows returns the sheet rows in order. Callers must not modify them.
func (s *Sheet) Rows() [][]Cell { return s.rows }

// Len returns the number of rows.
func (s *Sheet) Len() int { return len(s.rows) }

// Cell returns the cell at the zero-based row and column.
// Positions outside the populated area read as Empty.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.rows) {
		return Empty
	}
	return RowCell(s.rows[row], col)
}

// RowCell returns the cell at col in row, or Empty when row is too short.
func RowCell(row []Cell, col int) Cell {
	if col < 0 || col >= len(row) {
		return Empty
	}
	return row[col]
}

// Bounds returns the zero-based bounding box of non-empty cells.
// ok is false when the sheet holds no values.
func (s *Sheet) Bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range s.rows {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return minRow, maxRow, minCol, maxCol, minRow >= 0
}

// UsedRange returns the used area in A1 notation (e.g. "A1:M120"),
// or an empty string for an empty sheet.
func (s *Sheet) UsedRange() string {
	minRow, maxRow, minCol, maxCol, ok := s.Bounds()
	if !ok {
		return ""
	}
	start, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}
