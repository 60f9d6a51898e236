package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
)

// WriteCSV writes d with a header of labels and one line per fiscal year.
// The first column is the year index; missing values are empty.
func WriteCSV(w io.Writer, d *dataset.Dataset) error {
	columns := d.Columns()
	cw := csv.NewWriter(w)

	header := append([]string{""}, columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range d.Rows() {
		line := make([]string, 0, len(columns)+1)
		line = append(line, yearIndex(rec.Year))
		for _, label := range columns {
			if v, ok := rec.Get(label); ok {
				line = append(line, formatAmount(v))
			} else {
				line = append(line, "")
			}
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToCSV renders d as CSV bytes.
func ToCSV(d *dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
