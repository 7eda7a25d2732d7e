package courselist

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ResolveColumn converts a spreadsheet column label to a zero-based index:
// "A" is 0, "Z" is 25, "AA" is 26. Letters are case-insensitive.
//
// Characters other than ASCII letters are ignored, so "A1" resolves like "A".
// A label that is empty, or holds no letters at all, fails with ErrInvalidColumn.
func ResolveColumn(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: column is empty", ErrInvalidColumn)
	}

	n, letters := 0, 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			continue
		}
		n = n*26 + int(r-'A'+1)
		letters++
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: column %q is too large", ErrInvalidColumn, label)
		}
	}

	if letters == 0 {
		return 0, fmt.Errorf("%w: column %q contains no letters", ErrInvalidColumn, label)
	}
	return n - 1, nil
}

// ColumnLabel converts a zero-based index back to its letter label.
// Indexes outside the sheet column range yield "?".
func ColumnLabel(index int) string {
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return "?"
	}
	return name
}
