// Package output serializes accumulated datasets.
package output

import (
	"fmt"
	"strconv"
)

// Format is an export file format.
type Format string

const (
	// FormatCSV writes one delimited file per table.
	FormatCSV Format = "csv"
	// FormatXLSX writes one workbook sheet per table.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes one JSON document per table.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatXLSX, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be csv, xlsx, or json)", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// yearIndex renders a fiscal year the way the row index is exported.
func yearIndex(year int) string {
	return fmt.Sprintf("%04d-01-01", year)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
