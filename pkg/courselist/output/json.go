package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
)

// WriteJSON serializes the course list.
func WriteJSON(w io.Writer, list *models.CourseList, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(list)
}
