package parser

import (
	"fmt"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbookGrids reads one grid per sheet, in sheet order. Leading and
// trailing empty rows are dropped; columns keep their sheet positions since
// schemas address cells by index. Empty sheets are skipped.
func ReadWorkbookGrids(f *excelize.File) ([]models.Grid, error) {
	var grids []models.Grid
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		if g := trimRows(rows); g != nil {
			grids = append(grids, g)
		}
	}
	return grids, nil
}

// trimRows returns the rows between the first and last non-empty row,
// padded to the rightmost non-empty column.
func trimRows(rows [][]string) models.Grid {
	minRow, maxRow, _, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	trimmed := make([][]string, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		out := make([]string, maxCol+1)
		copy(out, row)
		trimmed = append(trimmed, out)
	}
	return models.NewGrid(trimmed)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
