package models

// ExtraKind selects which optional columns a course list carries.
type ExtraKind string

const (
	// ExtraAuxiliaries lists zero or more labeled auxiliary columns.
	ExtraAuxiliaries ExtraKind = "auxiliaries"
	// ExtraPrice adds a single price column.
	ExtraPrice ExtraKind = "price"
)

// Field is a labeled auxiliary value copied from a source column.
type Field struct {
	// Label is the header text for the column.
	Label string `json:"label"`
	// Value is the cell text.
	Value string `json:"value"`
}

// Extra holds the optional columns of a record.
// Only the member matching Kind is meaningful.
type Extra struct {
	Kind ExtraKind `json:"kind"`
	// Price is set in price mode; nil exports as 0.
	Price *float64 `json:"price,omitempty"`
	// Fields lists auxiliary values in configured order.
	Fields []Field `json:"fields,omitempty"`
}

// PriceExtra returns price-mode extras.
func PriceExtra(price float64) Extra {
	return Extra{Kind: ExtraPrice, Price: &price}
}

// AuxiliaryExtra returns auxiliary-mode extras.
func AuxiliaryExtra(fields []Field) Extra {
	return Extra{Kind: ExtraAuxiliaries, Fields: fields}
}

// PriceOrZero returns the price, or 0 when unset.
func (e Extra) PriceOrZero() float64 {
	if e.Price == nil {
		return 0
	}
	return *e.Price
}
