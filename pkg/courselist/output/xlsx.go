package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
	"github.com/xuri/excelize/v2"
)

// Column widths in characters.
const (
	widthID        = 5
	widthGroup     = 30
	widthName      = 20
	widthPhone     = 15
	widthEmail     = 30
	widthPrice     = 10
	widthAuxiliary = 40
)

// CurrencyFormat is the number format of the price column.
const CurrencyFormat = "#,##0.00 €;-#,##0.00 €"

// WriteXLSX writes list as a single-sheet workbook with a styled header row.
func WriteXLSX(w io.Writer, list *models.CourseList, headers Headers) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	header := HeaderRow(list, headers)
	if err := setColumns(f, sheet, list, styles); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, r := range list.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := xlsxRow(list, r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type styleSet struct {
	header   int
	id       int
	currency int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	s.id, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create id style: %w", err)
	}

	currency := CurrencyFormat
	s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currency})
	if err != nil {
		return s, fmt.Errorf("failed to create currency style: %w", err)
	}

	return s, nil
}

// setColumns applies the fixed column widths and column formats.
func setColumns(f *excelize.File, sheet string, list *models.CourseList, styles styleSet) error {
	widths := []float64{widthID, widthGroup, widthName, widthPhone, widthEmail}
	switch list.Kind {
	case models.ExtraPrice:
		widths = append(widths, widthPrice)
	default:
		for range list.Auxiliaries {
			widths = append(widths, widthAuxiliary)
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	if err := f.SetColStyle(sheet, "A", styles.id); err != nil {
		return fmt.Errorf("failed to set id column style: %w", err)
	}
	if list.Kind == models.ExtraPrice {
		if err := f.SetColStyle(sheet, "F", styles.currency); err != nil {
			return fmt.Errorf("failed to set price column style: %w", err)
		}
	}
	return nil
}

func xlsxRow(list *models.CourseList, r models.Record) []interface{} {
	row := []interface{}{r.ID, r.Group, r.Name, r.Telephone, r.Email}
	switch list.Kind {
	case models.ExtraPrice:
		row = append(row, r.Extra.PriceOrZero())
	default:
		for _, v := range auxiliaryValues(list, r) {
			row = append(row, v)
		}
	}
	return row
}
