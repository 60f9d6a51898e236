package parser

import (
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

// Repair describes one split-merge correction attempted on a grid.
type Repair struct {
	// Row and Col locate the merged cell.
	Row int
	Col int
	// Text is the original cell content.
	Text string
	// Target is the neighbouring column that received half of the text,
	// or -1 when no empty neighbour was available.
	Target int
}

// Ambiguous reports whether the merged cell had to be left intact.
func (r Repair) Ambiguous() bool {
	return r.Target < 0
}

// SplitMergeCell detects two values the extractor concatenated into one
// cell: a trailing amount followed by the next item's enumerated label,
// e.g. "24,458.43二、财政专户管理资金". A marker at offset 0 is a plain label.
func SplitMergeCell(text string) (bool, [2]string) {
	if text == "" {
		return false, [2]string{}
	}
	loc := reMerge.FindStringIndex(text)
	if loc == nil || loc[0] == 0 {
		return false, [2]string{}
	}
	return true, [2]string{text[:loc[0]], text[loc[0]:]}
}

// Correct splits merged cells into an empty neighbour, preferring the
// column to the left. The grid is modified in place and returned; callers
// hand over ownership. Cells with no empty neighbour are left as they are
// and reported with Target -1.
func Correct(g models.Grid) (models.Grid, []Repair) {
	var repairs []Repair
	for r, row := range g {
		for c, text := range row {
			merged, parts := SplitMergeCell(text)
			if !merged {
				continue
			}
			rep := Repair{Row: r, Col: c, Text: text, Target: -1}
			switch {
			case c >= 1 && row[c-1] == "":
				row[c-1], row[c] = parts[0], parts[1]
				rep.Target = c - 1
			case c <= len(row)-2 && row[c+1] == "":
				row[c], row[c+1] = parts[0], parts[1]
				rep.Target = c + 1
			}
			repairs = append(repairs, rep)
		}
	}
	return g, repairs
}
