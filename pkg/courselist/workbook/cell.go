// Package workbook provides a format-independent view of spreadsheet sheets
// as rows of typed cells.
package workbook

import "strconv"

// Kind is the type of value held by a Cell.
type Kind int

const (
	// KindEmpty is an empty or unset cell.
	KindEmpty Kind = iota
	// KindString is a text cell.
	KindString
	// KindNumber is a numeric cell (including dates stored as serial numbers).
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindError is a cell holding a formula error such as #DIV/0!.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindError:
		return "error"
	default:
		return "empty"
	}
}

// Cell is a single typed cell value.
type Cell struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Empty is the zero cell.
var Empty = Cell{}

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: KindString, Str: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// ErrorCell returns a cell holding a formula error code.
func ErrorCell(code string) Cell { return Cell{Kind: KindError, Str: code} }

// IsString reports whether the cell holds text.
func (c Cell) IsString() bool { return c.Kind == KindString }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String renders the cell value as text. Numbers use the shortest
// representation, so 5.0 renders as "5".
func (c Cell) String() string {
	switch c.Kind {
	case KindString, KindError:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindBool:
		if c.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
