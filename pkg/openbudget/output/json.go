package output

import (
	"encoding/json"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
)

// TableJSON is the JSON form of a dataset.
type TableJSON struct {
	// Name is the table name.
	Name string `json:"name"`
	// Columns lists labels in column order.
	Columns []string `json:"columns"`
	// Rows holds one entry per fiscal year.
	Rows []RowJSON `json:"rows"`
}

// RowJSON is one fiscal year of a dataset.
type RowJSON struct {
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// ToJSON serializes d.
func ToJSON(d *dataset.Dataset, pretty bool) ([]byte, error) {
	t := TableJSON{
		Name:    d.Name(),
		Columns: d.Columns(),
		Rows:    []RowJSON{},
	}
	for _, rec := range d.Rows() {
		t.Rows = append(t.Rows, RowJSON{Year: rec.Year, Values: rec.Values})
	}

	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}
