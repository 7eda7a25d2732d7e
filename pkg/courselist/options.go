// Package courselist extracts participant records from a registration sheet
// and exports them as a sorted contact list.
package courselist

import (
	"fmt"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
)

// DefaultHeaderRows is the number of leading rows the registration sheet
// reserves for its form header.
const DefaultHeaderRows = 30

// Layout describes where the fixed fields sit in the source sheet.
// Columns are zero-based.
type Layout struct {
	// HeaderRows is the number of leading rows skipped before data starts.
	HeaderRows int `yaml:"header_rows"`
	// IDColumn holds the customer number.
	IDColumn int `yaml:"id_column"`
	// NameColumn holds the participant name.
	NameColumn int `yaml:"name_column"`
	// PhoneColumn holds telephone numbers.
	PhoneColumn int `yaml:"phone_column"`
	// EmailColumn holds the email address.
	EmailColumn int `yaml:"email_column"`
	// PriceOffset is the distance from the grouping column to the price column.
	PriceOffset int `yaml:"price_offset"`
}

// DefaultLayout returns the layout of the registration office sheet:
// 30 header rows, id in A, name in C, phone in H, email in L and the
// outstanding balance eight columns right of the grouping column.
func DefaultLayout() Layout {
	return Layout{
		HeaderRows:  DefaultHeaderRows,
		IDColumn:    0,
		NameColumn:  2,
		PhoneColumn: 7,
		EmailColumn: 11,
		PriceOffset: 8,
	}
}

func (l Layout) validate() error {
	if l.HeaderRows < 0 {
		return fmt.Errorf("%w: header rows must not be negative", ErrInvalidInput)
	}
	if l.IDColumn < 0 || l.NameColumn < 0 || l.PhoneColumn < 0 || l.EmailColumn < 0 {
		return fmt.Errorf("%w: layout columns must not be negative", ErrInvalidInput)
	}
	return nil
}

// Auxiliary is an extra column copied verbatim into the export.
type Auxiliary struct {
	// Label is the header of the exported column.
	// If empty, the column label is used.
	Label string `yaml:"label"`
	// Column is the source column label, e.g. "AB".
	Column string `yaml:"column"`
}

// Options configures extraction.
type Options struct {
	// Layout locates the fixed fields. If nil, DefaultLayout is used.
	Layout *Layout
	// ShowPrice adds the price column. It cannot be combined with Auxiliaries.
	ShowPrice bool
	// Auxiliaries lists extra columns in export order.
	Auxiliaries []Auxiliary
	// Groups restricts the result to these group values. Empty keeps all.
	Groups []string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveLayout returns the configured layout or DefaultLayout.
func (o Options) EffectiveLayout() Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return DefaultLayout()
}

// Kind returns the extra-column mode selected by the options.
func (o Options) Kind() models.ExtraKind {
	if o.ShowPrice {
		return models.ExtraPrice
	}
	return models.ExtraAuxiliaries
}

// Validate checks the options for contradictions.
func (o Options) Validate() error {
	if o.ShowPrice && len(o.Auxiliaries) > 0 {
		return fmt.Errorf("%w: price column and auxiliary columns are mutually exclusive", ErrInvalidInput)
	}
	return o.EffectiveLayout().validate()
}
