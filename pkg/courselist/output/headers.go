package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/courselist-go/pkg/courselist/models"
)

// Headers holds the titles of the fixed columns and the price column.
type Headers struct {
	ID    string `yaml:"id"`
	Group string `yaml:"group"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
	Price string `yaml:"price"`
}

// EnglishHeaders are the default column titles.
var EnglishHeaders = Headers{
	ID:    "Customer-ID",
	Group: "Group",
	Name:  "Name",
	Phone: "Phone",
	Email: "Email",
	Price: "Balance/Price",
}

// GermanHeaders are the titles used by the registration office.
var GermanHeaders = Headers{
	ID:    "Kundennummer",
	Group: "Gruppe",
	Name:  "Name",
	Phone: "Telefon",
	Email: "E-Mail",
	Price: "Restbetrag",
}

// HeadersFor returns the header set for a language code ("en" or "de").
func HeadersFor(lang string) (Headers, error) {
	switch strings.ToLower(lang) {
	case "", "en":
		return EnglishHeaders, nil
	case "de":
		return GermanHeaders, nil
	default:
		return Headers{}, fmt.Errorf("unsupported header language %q", lang)
	}
}

// fixedColumns is the number of columns present in every export.
const fixedColumns = 5

// HeaderRow returns the header titles for list: the fixed columns followed by
// either the price column or one column per auxiliary label.
func HeaderRow(list *models.CourseList, h Headers) []string {
	row := []string{h.ID, h.Group, h.Name, h.Phone, h.Email}
	switch list.Kind {
	case models.ExtraPrice:
		row = append(row, h.Price)
	default:
		row = append(row, list.Auxiliaries...)
	}
	return row
}

// auxiliaryValues returns one value per auxiliary column of list.
// Fields are positional; a record with fewer fields yields empty values.
func auxiliaryValues(list *models.CourseList, r models.Record) []string {
	values := make([]string, len(list.Auxiliaries))
	for i := range values {
		if i < len(r.Extra.Fields) {
			values[i] = r.Extra.Fields[i].Value
		}
	}
	return values
}
