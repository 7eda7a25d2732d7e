package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "C2", true))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "123\r\n456"))
	require.NoError(t, f.SetCellValue(sheetName, "C4", "42"))
	_, err := f.NewSheet("Second")
	require.NoError(t, err)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	wb, err := Open(tmpFile)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Sheet1", "Second"}, wb.SheetNames())

	sheet, err := wb.Sheet(sheetName)
	require.NoError(t, err)
	require.Equal(t, 4, sheet.Len())

	assert.Equal(t, StringCell("Header1"), sheet.Cell(0, 0))
	assert.Equal(t, NumberCell(100), sheet.Cell(1, 0))
	assert.Equal(t, NumberCell(200.5), sheet.Cell(1, 1))
	assert.Equal(t, BoolCell(true), sheet.Cell(1, 2))
	assert.True(t, sheet.Cell(2, 0).IsEmpty())
	assert.Equal(t, StringCell("123\r\n456"), sheet.Cell(3, 0))
	assert.True(t, sheet.Cell(3, 1).IsEmpty())
	// Text that looks numeric stays text
	assert.Equal(t, StringCell("42"), sheet.Cell(3, 2))
}

func TestXLSXSheetNotFound(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	wb := NewXLSX(f)
	_, err := wb.Sheet("Missing")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected Cell
	}{
		{"123", NumberCell(123)},
		{"123.45", NumberCell(123.45)},
		{"-100", NumberCell(-100)},
		{"hello", StringCell("hello")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}
