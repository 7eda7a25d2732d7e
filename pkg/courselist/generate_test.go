package courselist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/courselist-go/pkg/courselist/output"
)

// writeRegistration saves a registration workbook with a 30-row header block
// and the given data rows (id, name, group, phone, email) into dir.
func writeRegistration(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Anmeldungen"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	require.NoError(t, f.SetCellValue(sheet, "A1", "Anmeldeformular"))
	require.NoError(t, f.SetCellValue(sheet, "D10", "Kurs"))

	for i, r := range rows {
		rowNum := DefaultHeaderRows + 1 + i
		cells := map[string]interface{}{"A": r[0], "C": r[1], "D": r[2], "H": r[3], "L": r[4]}
		for col, v := range cells {
			if v == nil {
				continue
			}
			cell, err := excelize.JoinCellName(col, rowNum)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(dir, "registration.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestGenerateCSV(t *testing.T) {
	dir := t.TempDir()
	src := writeRegistration(t, dir, [][]interface{}{
		{5, "Jane Doe", "MathX", "123\r\n456", "jane@x.com"},
		{3, "Bauer", "Yoga", "0711", "b@x.de"},
		{1, "Bauer", "MathX", nil, nil},
		{9, "Abel", 17, nil, nil},
		{9, "Abel", "Yoga", nil, nil},
	})
	dest := filepath.Join(dir, "out.csv")

	summary, err := Generate(Request{
		Source:      src,
		Sheet:       "Anmeldungen",
		Column:      "D",
		Destination: dest,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Groups)
	assert.Equal(t, 4, summary.Participants)
	assert.Equal(t, dest, summary.Destination)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	expected := "Customer-ID,Group,Name,Phone,Email\n" +
		"9,Yoga,Abel,,\n" +
		"1,MathX,Bauer,,\n" +
		"3,Yoga,Bauer,0711,b@x.de\n" +
		"5,MathX,Jane Doe,123;456,jane@x.com\n"
	assert.Equal(t, expected, string(data))
}

func TestGenerateByGroupXLSX(t *testing.T) {
	dir := t.TempDir()
	src := writeRegistration(t, dir, [][]interface{}{
		{3, "Bauer", "Yoga", nil, nil},
		{1, "Zorn", "Math", nil, nil},
	})
	dest := filepath.Join(dir, "out.xlsx")

	_, err := Generate(Request{
		Source:      src,
		Sheet:       "Anmeldungen",
		Column:      "d",
		Destination: dest,
		ByGroup:     true,
		Output:      output.Options{Headers: output.GermanHeaders},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Kundennummer", rows[0][0])
	assert.Equal(t, "Zorn", rows[1][2])
	assert.Equal(t, "Bauer", rows[2][2])
}

func TestGenerateFailFastWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeRegistration(t, dir, [][]interface{}{
		{5, "Jane Doe", "MathX", nil, nil},
		{"n/a", "Broken", "MathX", nil, nil},
	})
	dest := filepath.Join(dir, "out.csv")

	_, err := Generate(Request{Source: src, Sheet: "Anmeldungen", Column: "D", Destination: dest})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordParse)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "destination must not be created")
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(Request{Sheet: "S", Column: "D"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "source path")
	assert.Contains(t, err.Error(), "destination path")
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	src := writeRegistration(t, dir, nil)

	tests := []struct {
		name    string
		path    string
		sheet   string
		column  string
		wantErr error
	}{
		{"empty column", src, "Anmeldungen", "", ErrInvalidColumn},
		{"digit column", src, "Anmeldungen", "42", ErrInvalidColumn},
		{"missing sheet", src, "Missing", "D", ErrSheetNotFound},
		{"unsupported format", filepath.Join(dir, "list.csv"), "S", "D", ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "list"), "S", "D", ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.xlsx"), "S", "D", ErrFileAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Read(tt.path, tt.sheet, tt.column, DefaultOptions())
			assert.Nil(t, list)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListSheets(t *testing.T) {
	dir := t.TempDir()
	src := writeRegistration(t, dir, [][]interface{}{
		{5, "Jane Doe", "MathX", nil, "jane@x.com"},
	})

	sheets, err := ListSheets(src)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, SheetInfo{Name: "Anmeldungen", UsedRange: "A1:L31"}, sheets[0])
}
