package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

// reYear matches fiscal years 2000-2099.
var reYear = regexp.MustCompile(`20[0-9]{2}`)

// YearFromName returns the first fiscal year found in a file name.
func YearFromName(name string) (int, bool) {
	m := reYear.FindString(filepath.Base(name))
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

// extractorOutput is the JSON document written by the table extractor.
type extractorOutput struct {
	Tables [][][]any `json:"tables"`
}

// ReadJSONGrids decodes extractor output. Both {"tables": [...]} and a bare
// array of grids are accepted. Null cells become "" and numbers keep their
// literal text.
func ReadJSONGrids(r io.Reader) ([]models.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw [][][]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		err = dec.Decode(&raw)
	} else {
		var out extractorOutput
		err = dec.Decode(&out)
		raw = out.Tables
	}
	if err != nil {
		return nil, fmt.Errorf("decode grids: %w", err)
	}

	grids := make([]models.Grid, 0, len(raw))
	for _, table := range raw {
		rows := make([][]string, len(table))
		for i, row := range table {
			rows[i] = make([]string, len(row))
			for j, cell := range row {
				rows[i][j] = cellText(cell)
			}
		}
		grids = append(grids, models.NewGrid(rows))
	}
	return grids, nil
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
