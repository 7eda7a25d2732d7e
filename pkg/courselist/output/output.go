// Package output writes course lists to CSV, xlsx and JSON files.
package output

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
)

// ErrDestination indicates the destination file could not be created.
var ErrDestination = errors.New("cannot create destination")

// ErrWrite indicates a failure while writing the export. The destination
// file may be left incomplete.
var ErrWrite = errors.New("write failed")

// ErrUnknownFormat indicates the output format could not be determined.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DetectFormat chooses the format from the destination file extension.
func DetectFormat(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, filepath.Base(path))
	}
	return ParseFormat(ext)
}

// Options configures an export.
type Options struct {
	// Format selects the writer. If empty, it is detected from the path.
	Format Format
	// Headers holds the column titles. Zero value means EnglishHeaders.
	Headers Headers
	// CSV configures CSV output.
	CSV CSVOptions
	// Pretty indents JSON output.
	Pretty bool
}

// ExportError describes a failed export.
type ExportError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s to %q: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Write exports list to path, replacing any existing file.
// Records are written in the order given.
func Write(path string, list *models.CourseList, opts Options) error {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(path); err != nil {
			return err
		}
	}
	switch format {
	case FormatCSV, FormatXLSX, FormatJSON:
	default:
		return &ExportError{Path: path, Format: format, Err: fmt.Errorf("%w: %q", ErrUnknownFormat, format)}
	}
	headers := opts.Headers
	if headers == (Headers{}) {
		headers = EnglishHeaders
	}

	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Format: format, Err: fmt.Errorf("%w: %v", ErrDestination, err)}
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(f, list, headers, opts.CSV)
	case FormatXLSX:
		err = WriteXLSX(f, list, headers)
	case FormatJSON:
		err = WriteJSON(f, list, opts.Pretty)
	}

	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return &ExportError{Path: path, Format: format, Err: fmt.Errorf("%w: %v", ErrWrite, err)}
	}

	slog.Info("course list written",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("records", len(list.Records)))

	return nil
}
