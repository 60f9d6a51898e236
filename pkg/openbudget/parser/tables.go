package parser

import (
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

// DefaultMaxFragments is the maximum number of consecutive raw grids a
// single logical table may span.
const DefaultMaxFragments = 4

// Locate checks whether a table of schema s starts at grids[index] and, if
// so, concatenates following grids until the schema's tail row appears.
// It returns the assembled grid and the index after the last grid consumed.
// When no table is found, or the tail is not reached within maxFragments
// grids, it returns (nil, index, false).
//
// The assembled grid is a fresh copy; the raw grids are not modified.
func Locate(grids []models.Grid, index int, s Schema, maxFragments int) (models.Grid, int, bool) {
	if index < 0 || index >= len(grids) || !s.HasHead(grids[index]) {
		return nil, index, false
	}
	if maxFragments <= 0 {
		maxFragments = DefaultMaxFragments
	}

	end := index + maxFragments
	if end > len(grids) {
		end = len(grids)
	}

	var assembled models.Grid
	for i := index; i < end; i++ {
		assembled = assembled.Append(grids[i])
		if s.HasTail(assembled) {
			return assembled, i + 1, true
		}
	}
	return nil, index, false
}
