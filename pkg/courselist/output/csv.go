package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSVOptions configures CSV output.
type CSVOptions struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// BOM prefixes UTF-8 output with a byte order mark for Excel. It is
	// rejected together with a legacy encoding.
	BOM bool
	// Encoding is "utf-8" (default) or "windows-1252".
	Encoding string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a header row followed by one row per record.
func WriteCSV(w io.Writer, list *models.CourseList, headers Headers, opts CSVOptions) error {
	out := w
	var closer io.Closer

	switch strings.ToLower(opts.Encoding) {
	case "", "utf-8", "utf8":
		if opts.BOM {
			if _, err := w.Write(utf8BOM); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}
	case "windows-1252", "cp1252":
		if opts.BOM {
			return fmt.Errorf("byte order mark requires utf-8, not %q", opts.Encoding)
		}
		tw := transform.NewWriter(w, charmap.Windows1252.NewEncoder())
		out, closer = tw, tw
	default:
		return fmt.Errorf("unsupported encoding %q", opts.Encoding)
	}

	cw := csv.NewWriter(out)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}

	if err := cw.Write(HeaderRow(list, headers)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range list.Records {
		if err := cw.Write(csvRow(list, r)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}
	}
	return nil
}

func csvRow(list *models.CourseList, r models.Record) []string {
	row := make([]string, 0, fixedColumns+len(list.Auxiliaries)+1)
	row = append(row, strconv.Itoa(r.ID), r.Group, r.Name, r.Telephone, r.Email)
	switch list.Kind {
	case models.ExtraPrice:
		row = append(row, strconv.FormatFloat(r.Extra.PriceOrZero(), 'f', 2, 64))
	default:
		row = append(row, auxiliaryValues(list, r)...)
	}
	return row
}
