package courselist

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
	"github.com/ukaji3/courselist-go/pkg/courselist/workbook"
)

// Extract builds the course list from sheet. groupColumn is the zero-based
// grouping column; rows whose grouping cell is not text are skipped.
//
// A row with a malformed id or price aborts the whole extraction and no
// records are returned.
func Extract(sheet *workbook.Sheet, groupColumn int, opts Options) (*models.CourseList, error) {
	if sheet == nil {
		return nil, ErrNoSheetLoaded
	}
	if groupColumn < 0 {
		return nil, fmt.Errorf("%w: negative column index %d", ErrInvalidColumn, groupColumn)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	layout := opts.EffectiveLayout()
	kind := opts.Kind()
	aux := resolveAuxiliaries(opts.Auxiliaries)

	list := &models.CourseList{
		SheetName: sheet.Name(),
		Kind:      kind,
		Records:   []models.Record{},
	}
	for _, a := range aux {
		list.Auxiliaries = append(list.Auxiliaries, a.label)
	}

	keep := groupFilter(opts.Groups)
	rows := sheet.Rows()
	scanned := 0

	for rowIdx := layout.HeaderRows; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		scanned++

		groupCell := workbook.RowCell(row, groupColumn)
		if !groupCell.IsString() || groupCell.Str == "" {
			continue
		}

		record, err := buildRecord(row, rowIdx, groupColumn, layout, kind, aux)
		if err != nil {
			return nil, err
		}
		if !keep(record.Group) {
			continue
		}
		list.Records = append(list.Records, record)
	}

	slog.Debug("extracted course list",
		slog.String("sheet", sheet.Name()),
		slog.String("group_column", ColumnLabel(groupColumn)),
		slog.Int("rows_scanned", scanned),
		slog.Int("records", len(list.Records)))

	return list, nil
}

type resolvedAuxiliary struct {
	label  string
	column int
}

// resolveAuxiliaries resolves auxiliary column labels once. Auxiliaries that
// do not resolve are left out of the list entirely.
func resolveAuxiliaries(auxiliaries []Auxiliary) []resolvedAuxiliary {
	var resolved []resolvedAuxiliary
	for _, a := range auxiliaries {
		col, err := ResolveColumn(a.Column)
		if err != nil {
			slog.Warn("skipping auxiliary column",
				slog.String("label", a.Label),
				slog.String("column", a.Column),
				slog.Any("error", err))
			continue
		}
		label := a.Label
		if label == "" {
			label = ColumnLabel(col)
		}
		resolved = append(resolved, resolvedAuxiliary{label: label, column: col})
	}
	return resolved
}

func groupFilter(groups []string) func(string) bool {
	if len(groups) == 0 {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		set[g] = struct{}{}
	}
	return func(g string) bool {
		_, ok := set[g]
		return ok
	}
}

func buildRecord(row []workbook.Cell, rowIdx, groupColumn int, layout Layout, kind models.ExtraKind, aux []resolvedAuxiliary) (models.Record, error) {
	idCell := workbook.RowCell(row, layout.IDColumn)
	id, err := strconv.Atoi(strings.TrimSpace(idCell.String()))
	if err != nil {
		return models.Record{}, &RecordError{
			Row:    rowIdx + 1,
			Column: layout.IDColumn,
			Field:  "id",
			Value:  idCell.String(),
			Err:    err,
		}
	}

	record := models.Record{
		ID:        id,
		Group:     workbook.RowCell(row, groupColumn).Str,
		Name:      workbook.RowCell(row, layout.NameColumn).String(),
		Telephone: NormalizeTelephone(workbook.RowCell(row, layout.PhoneColumn).String()),
		Email:     workbook.RowCell(row, layout.EmailColumn).String(),
	}

	switch kind {
	case models.ExtraPrice:
		priceColumn := groupColumn + layout.PriceOffset
		price, err := parsePrice(workbook.RowCell(row, priceColumn))
		if err != nil {
			return models.Record{}, &RecordError{
				Row:    rowIdx + 1,
				Column: priceColumn,
				Field:  "price",
				Value:  workbook.RowCell(row, priceColumn).String(),
				Err:    err,
			}
		}
		record.Extra = models.PriceExtra(price)
	default:
		fields := make([]models.Field, 0, len(aux))
		for _, a := range aux {
			fields = append(fields, models.Field{
				Label: a.label,
				Value: workbook.RowCell(row, a.column).String(),
			})
		}
		record.Extra = models.AuxiliaryExtra(fields)
	}

	return record, nil
}

func parsePrice(c workbook.Cell) (float64, error) {
	if c.Kind == workbook.KindNumber {
		return c.Num, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(c.String()), 64)
}

// NormalizeTelephone joins multi-line telephone entries with ";".
func NormalizeTelephone(s string) string {
	s = strings.ReplaceAll(s, "\r\n", ";")
	return strings.ReplaceAll(s, "\n", ";")
}
