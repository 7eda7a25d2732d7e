package courselist

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
	"github.com/ukaji3/courselist-go/pkg/courselist/output"
	"github.com/ukaji3/courselist-go/pkg/courselist/workbook"
)

// Request is one complete generation run. Paths must already be expanded.
type Request struct {
	Source      string `validate:"required"`
	Sheet       string `validate:"required"`
	Column      string `validate:"required"`
	Destination string `validate:"required"`

	Options Options
	// ByGroup orders by group before name and id.
	ByGroup bool
	Output  output.Options
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldNames = map[string]string{
	"Source":      "source path",
	"Sheet":       "sheet name",
	"Column":      "column",
	"Destination": "destination path",
}

// Validate checks that every required setting is present.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			name, ok := fieldNames[fe.Field()]
			if !ok {
				name = fe.Field()
			}
			missing = append(missing, name)
		}
		return fmt.Errorf("%w: %s not set", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return r.Options.Validate()
}

// Generate reads, sorts and exports the course list described by req.
// Nothing is written when reading fails.
func Generate(req Request) (models.Summary, error) {
	if err := req.Validate(); err != nil {
		return models.Summary{}, err
	}

	list, err := Read(req.Source, req.Sheet, req.Column, req.Options)
	if err != nil {
		return models.Summary{}, err
	}

	Sort(list, req.ByGroup)

	if err := Export(req.Destination, list, req.Output); err != nil {
		return models.Summary{}, err
	}

	summary := list.Summarize(req.Destination)
	slog.Info("course list generated",
		slog.Int("groups", summary.Groups),
		slog.Int("participants", summary.Participants),
		slog.String("destination", summary.Destination))

	return summary, nil
}

// Read opens the workbook at path and extracts the course list from sheet,
// grouping by the column with the given label.
func Read(path, sheet, column string, opts Options) (*models.CourseList, error) {
	groupColumn, err := ResolveColumn(column)
	if err != nil {
		return nil, err
	}

	wb, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	s, err := wb.Sheet(sheet)
	if err != nil {
		return nil, sheetError(err)
	}

	return Extract(s, groupColumn, opts)
}

// Sort orders records by name then id, or by group first when byGroup is set.
func Sort(list *models.CourseList, byGroup bool) {
	if byGroup {
		models.SortRecordsByGroup(list.Records)
		return
	}
	models.SortRecords(list.Records)
}

// Export writes the list to destination. Records are written as given;
// sort them first.
func Export(destination string, list *models.CourseList, opts output.Options) error {
	return output.Write(destination, list, opts)
}

// SheetInfo describes one sheet of a workbook.
type SheetInfo struct {
	Name string `json:"name"`
	// UsedRange is the bounding range of non-empty cells, e.g. "A1:M120".
	UsedRange string `json:"used_range"`
}

// ListSheets returns the sheets of the workbook at path in document order.
func ListSheets(path string) ([]SheetInfo, error) {
	wb, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	var infos []SheetInfo
	for _, name := range wb.SheetNames() {
		s, err := wb.Sheet(name)
		if err != nil {
			return nil, sheetError(err)
		}
		infos = append(infos, SheetInfo{Name: name, UsedRange: s.UsedRange()})
	}
	return infos, nil
}

func openWorkbook(path string) (workbook.Workbook, error) {
	wb, err := workbook.Open(path)
	switch {
	case err == nil:
		return wb, nil
	case errors.Is(err, workbook.ErrOpen):
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	default:
		return nil, err
	}
}

func sheetError(err error) error {
	var se *workbook.SheetError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return err
}
