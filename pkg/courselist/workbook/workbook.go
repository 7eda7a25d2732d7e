package workbook

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates the file extension is not a known workbook format.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrOpen indicates the workbook file could not be opened or parsed.
var ErrOpen = errors.New("cannot open workbook")

// Workbook is an opened spreadsheet document.
type Workbook interface {
	// SheetNames returns the sheet names in document order.
	SheetNames() []string
	// Sheet loads the named sheet. It fails with ErrSheetNotFound when absent.
	Sheet(name string) (*Sheet, error)
	// Close releases resources held by the workbook.
	Close() error
}

// Format identifies a workbook backend.
type Format string

const (
	// FormatXLSX covers the Office Open XML spreadsheet family.
	FormatXLSX Format = "xlsx"
	// FormatODS is the OpenDocument spreadsheet format.
	FormatODS Format = "ods"
)

// DetectFormat chooses the backend from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xlam", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".ods":
		return FormatODS, nil
	case "":
		return "", fmt.Errorf("%w: file %q has no extension", ErrUnsupportedFormat, filepath.Base(path))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Open opens the workbook at path using the backend selected by its extension.
func Open(path string) (Workbook, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("opening workbook", "path", path, "format", string(format))

	switch format {
	case FormatODS:
		return OpenODS(path)
	default:
		return OpenXLSX(path)
	}
}

// SheetError describes a failure to read one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
