package output

import (
	"fmt"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX saves the datasets into one workbook, one sheet per dataset
// named after it. Amounts are stored as numbers.
func WriteXLSX(path string, sets ...*dataset.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, d := range sets {
		sheetName := d.Name()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheetName); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := writeSheet(f, sheetName, d); err != nil {
			return fmt.Errorf("sheet %q: %w", sheetName, err)
		}
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheetName string, d *dataset.Dataset) error {
	columns := d.Columns()

	header := make([]interface{}, 0, len(columns)+1)
	header = append(header, "")
	for _, c := range columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, rec := range d.Rows() {
		row := make([]interface{}, 0, len(columns)+1)
		row = append(row, yearIndex(rec.Year))
		for _, label := range columns {
			if v, ok := rec.Get(label); ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
