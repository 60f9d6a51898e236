package models

// RawTable is one grid of the extractor's output for a document, tagged with
// its ordinal position in that output.
type RawTable struct {
	// Index is the 0-based position in the extractor's output sequence.
	Index int `json:"index"`
	// Grid holds the cell text.
	Grid Grid `json:"grid"`
}

// Document is the extractor output for one source file.
type Document struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Year is the fiscal year derived from Name.
	Year int `json:"year"`
	// Tables are the raw grids in reading order.
	Tables []RawTable `json:"tables"`
}

// Grids returns the grids of d in reading order.
func (d Document) Grids() []Grid {
	grids := make([]Grid, len(d.Tables))
	for i, t := range d.Tables {
		grids[i] = t.Grid
	}
	return grids
}
