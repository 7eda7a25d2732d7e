package models

// CourseList is the result of one extraction pass.
type CourseList struct {
	// SheetName is the sheet the records were read from.
	SheetName string `json:"sheet_name"`
	// Kind is the extra-column mode shared by all records.
	Kind ExtraKind `json:"kind"`
	// Auxiliaries lists the labels of auxiliary columns that resolved,
	// in configured order. Empty in price mode.
	Auxiliaries []string `json:"auxiliaries,omitempty"`
	// Records holds the extracted rows.
	Records []Record `json:"records"`
}

// Summary describes a written course list.
type Summary struct {
	Groups       int    `json:"groups"`
	Participants int    `json:"participants"`
	Destination  string `json:"destination"`
}

// Groups returns the distinct group values in first-seen order.
func (l *CourseList) Groups() []string {
	seen := make(map[string]struct{})
	var groups []string
	for _, r := range l.Records {
		if _, ok := seen[r.Group]; ok {
			continue
		}
		seen[r.Group] = struct{}{}
		groups = append(groups, r.Group)
	}
	return groups
}

// Summarize returns counts for the list written to destination.
func (l *CourseList) Summarize(destination string) Summary {
	return Summary{
		Groups:       len(l.Groups()),
		Participants: len(l.Records),
		Destination:  destination,
	}
}
