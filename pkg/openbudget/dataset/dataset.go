// Package dataset accumulates per-year records of one table schema.
package dataset

import (
	"strings"
	"sync"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

// Merge records two columns folded together by CorrectWrongNewLine.
type Merge struct {
	// Kept is the longer label that survives.
	Kept string
	// Dropped is the removed label.
	Dropped string
	// Filled is the number of years whose value moved into Kept.
	Filled int
}

// Dataset is an ordered table with one row per fiscal year and one column
// per label, in first-seen order. It is safe for concurrent use;
// appends are serialized.
type Dataset struct {
	mu      sync.Mutex
	name    string
	columns []string
	known   map[string]bool
	seen    []string
	seenSet map[string]bool
	years   []int
	rows    map[int]map[string]float64
}

// New creates an empty Dataset.
func New(name string) *Dataset {
	return &Dataset{
		name:    name,
		known:   make(map[string]bool),
		seenSet: make(map[string]bool),
		rows:    make(map[int]map[string]float64),
	}
}

// Name returns the table name.
func (d *Dataset) Name() string {
	return d.name
}

// Append adds rec as the row for its year. A year that already has a row is
// merged, with rec's values winning on collision. Rows keep the order in
// which their year first appeared. After every append the column set is
// reconciled with CorrectWrongNewLine and the merges performed are returned.
func (d *Dataset) Append(rec models.Record) []Merge {
	d.mu.Lock()
	defer d.mu.Unlock()

	row, ok := d.rows[rec.Year]
	if !ok {
		row = make(map[string]float64, len(rec.Labels))
		d.rows[rec.Year] = row
		d.years = append(d.years, rec.Year)
	}
	for _, label := range rec.Labels {
		row[label] = rec.Values[label]
		if !d.seenSet[label] {
			d.seenSet[label] = true
			d.seen = append(d.seen, label)
		}
		if !d.known[label] {
			d.known[label] = true
			d.columns = append(d.columns, label)
		}
	}

	return d.correctWrongNewLine()
}

// CorrectWrongNewLine folds together columns that hold one logical field
// split by an errant line break. Two labels qualify when one is a prefix of
// the other and every row holds a value in exactly one of them. The longer
// label keeps its position and absorbs the other's values; the shorter
// column is dropped. Passes repeat until no pair qualifies.
func (d *Dataset) CorrectWrongNewLine() []Merge {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.correctWrongNewLine()
}

func (d *Dataset) correctWrongNewLine() []Merge {
	// A single row cannot tell a split field from two unrelated ones.
	if len(d.years) < 2 {
		return nil
	}

	var merges []Merge
	for {
		kept, dropped, found := d.findComplementary()
		if !found {
			return merges
		}
		merges = append(merges, d.mergeColumns(kept, dropped))
	}
}

// findComplementary returns the first qualifying pair in column order.
func (d *Dataset) findComplementary() (kept, dropped string, found bool) {
	for i, a := range d.columns {
		for _, b := range d.columns[i+1:] {
			if !strings.HasPrefix(a, b) && !strings.HasPrefix(b, a) {
				continue
			}
			if !d.exclusive(a, b) {
				continue
			}
			if len(a) >= len(b) {
				return a, b, true
			}
			return b, a, true
		}
	}
	return "", "", false
}

// exclusive reports whether every row has exactly one of a and b.
func (d *Dataset) exclusive(a, b string) bool {
	for _, year := range d.years {
		row := d.rows[year]
		_, hasA := row[a]
		_, hasB := row[b]
		if hasA == hasB {
			return false
		}
	}
	return true
}

func (d *Dataset) mergeColumns(kept, dropped string) Merge {
	m := Merge{Kept: kept, Dropped: dropped}
	for _, year := range d.years {
		row := d.rows[year]
		if v, ok := row[dropped]; ok {
			row[kept] = v
			delete(row, dropped)
			m.Filled++
		}
	}

	for i, c := range d.columns {
		if c == dropped {
			d.columns = append(d.columns[:i], d.columns[i+1:]...)
			break
		}
	}
	delete(d.known, dropped)
	return m
}

// Columns returns the current labels in first-seen order.
func (d *Dataset) Columns() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.columns...)
}

// Seen returns every label ever appended, in first-seen order, including
// labels later dropped by CorrectWrongNewLine. It only grows.
func (d *Dataset) Seen() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.seen...)
}

// Years returns the fiscal years in row order.
func (d *Dataset) Years() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.years...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.years)
}

// Value returns the amount for label in year.
func (d *Dataset) Value(year int, label string) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.rows[year][label]
	return v, ok
}

// Rows returns a snapshot of every row as a Record whose labels follow the
// column order. Absent cells are omitted.
func (d *Dataset) Rows() []models.Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.Record, 0, len(d.years))
	for _, year := range d.years {
		rec := models.NewRecord(year)
		row := d.rows[year]
		for _, label := range d.columns {
			if v, ok := row[label]; ok {
				rec.Set(label, v)
			}
		}
		out = append(out, rec)
	}
	return out
}
