package openbudget

import (
	"errors"
	"fmt"
)

// EventKind classifies a diagnostic recorded during a run.
type EventKind string

const (
	// EventSkipped is a raw grid no schema could assemble a table from.
	EventSkipped EventKind = "skipped"
	// EventAmbiguousRepair is a merged cell with no empty neighbour.
	EventAmbiguousRepair EventKind = "ambiguous_repair"
	// EventSchemaViolation is a matched table with unexpected sub-headers.
	EventSchemaViolation EventKind = "schema_violation"
	// EventNoYear is a file name without a fiscal year.
	EventNoYear EventKind = "no_year"
	// EventLoadFailed is an input file that could not be read.
	EventLoadFailed EventKind = "load_failed"
	// EventColumnsMerged is a pair of complementary columns folded together.
	EventColumnsMerged EventKind = "columns_merged"
)

// Event is one diagnostic.
type Event struct {
	Kind     EventKind
	Document string
	Schema   string
	// Table is the raw grid index, or -1 when not applicable.
	Table  int
	Detail string
}

func (e Event) String() string {
	s := fmt.Sprintf("[%s] %s", e.Kind, e.Document)
	if e.Schema != "" {
		s += " (" + e.Schema + ")"
	}
	if e.Table >= 0 {
		s += fmt.Sprintf(" table %d", e.Table)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// Report accumulates the outcome of a run. Failures never stop a run; they
// are collected here and reported at the end.
type Report struct {
	// Documents is the number of documents seen.
	Documents int
	// Tables is the number of tables parsed into records.
	Tables int
	// Events lists diagnostics in the order they occurred.
	Events []Event
	// Errors lists per-document failures.
	Errors []error
}

func (r *Report) add(e Event) {
	r.Events = append(r.Events, e)
}

func (r *Report) merge(other *Report) {
	r.Documents += other.Documents
	r.Tables += other.Tables
	r.Events = append(r.Events, other.Events...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Count returns the number of events of kind k.
func (r *Report) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Err joins all per-document errors, or returns nil.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}
