// Package models defines data structures for course list extraction and export.
package models

import (
	"cmp"
	"slices"
	"strings"
)

// Record represents one participant row taken from the registration sheet.
type Record struct {
	// ID is the customer number from the first column.
	ID int `json:"id"`
	// Group is the value of the grouping column (e.g. the course code).
	Group string `json:"group"`
	// Name is the participant name.
	Name string `json:"name"`
	// Telephone holds one or more numbers separated by ";".
	Telephone string `json:"telephone"`
	// Email is the contact address.
	Email string `json:"email"`
	// Extra holds the price or auxiliary fields, depending on the list mode.
	Extra Extra `json:"extra"`
}

// Compare orders records by name, then by id.
func (r Record) Compare(other Record) int {
	if c := strings.Compare(r.Name, other.Name); c != 0 {
		return c
	}
	return cmp.Compare(r.ID, other.ID)
}

// Less reports whether r sorts before other.
func (r Record) Less(other Record) bool {
	return r.Compare(other) < 0
}

// Equal reports whether r and other have the same name and id.
// Other fields are not considered.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name && r.ID == other.ID
}

// SortRecords sorts records by name, then id.
func SortRecords(records []Record) {
	slices.SortStableFunc(records, Record.Compare)
}

// SortRecordsByGroup sorts records by group, then name, then id.
func SortRecordsByGroup(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		if c := strings.Compare(a.Group, b.Group); c != 0 {
			return c
		}
		return a.Compare(b)
	})
}
