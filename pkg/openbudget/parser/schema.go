package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

// ErrSchemaViolation indicates a head/tail-matched table whose fixed
// sub-header rows do not match the schema.
var ErrSchemaViolation = errors.New("schema violation")

// SchemaViolation reports the sub-header row that failed verification.
type SchemaViolation struct {
	Schema string
	Row    int
	Want   []string
	Got    []string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("%s: row %d: want [%s], got [%s]", e.Schema, e.Row,
		strings.Join(e.Want, " | "), strings.Join(e.Got, " | "))
}

func (e *SchemaViolation) Unwrap() error {
	return ErrSchemaViolation
}

// Schema recognizes and parses one kind of budget table.
type Schema interface {
	// Name is the table's display name, also used to name exports.
	Name() string
	// HasHead reports whether g starts a table of this kind.
	HasHead(g models.Grid) bool
	// HasTail reports whether the last row of g ends a table of this kind.
	HasTail(g models.Grid) bool
	// Parse extracts the record of an assembled table. g is owned by Parse
	// and may be repaired in place.
	Parse(g models.Grid, year int) (models.Record, []Repair, error)
}

// TailCell is an exact value expected at a column of a table's last row.
type TailCell struct {
	Col   int
	Value string
}

// SubHeader is a fixed row that must match exactly.
type SubHeader struct {
	Row   int
	Cells []string
}

// ColumnPair selects a label column and its amount column.
type ColumnPair struct {
	Label int
	Value int
}

// TableSchema is a declarative Schema.
type TableSchema struct {
	Title      string
	Head       []string
	Tail       []TailCell
	SubHeaders []SubHeader
	Pairs      []ColumnPair
}

var _ Schema = (*TableSchema)(nil)

// Name returns the table title.
func (s *TableSchema) Name() string {
	return s.Title
}

// HasHead checks the first row against the head signature.
func (s *TableSchema) HasHead(g models.Grid) bool {
	return g.RowEquals(0, s.Head)
}

// HasTail checks the designated cells of the last row.
func (s *TableSchema) HasTail(g models.Grid) bool {
	if g.Rows() == 0 {
		return false
	}
	last := g.Rows() - 1
	for _, tc := range s.Tail {
		if tc.Col >= g.Cols() || g.Cell(last, tc.Col) != tc.Value {
			return false
		}
	}
	return true
}

// Parse verifies the sub-headers, repairs merged cells and collects every
// non-zero amount under its normalized label.
func (s *TableSchema) Parse(g models.Grid, year int) (models.Record, []Repair, error) {
	for _, sh := range s.SubHeaders {
		if !g.RowEquals(sh.Row, sh.Cells) {
			var got []string
			if sh.Row < g.Rows() {
				got = g[sh.Row]
			}
			return models.Record{}, nil, &SchemaViolation{Schema: s.Title, Row: sh.Row, Want: sh.Cells, Got: got}
		}
	}

	g, repairs := Correct(g)

	rec := models.NewRecord(year)
	for _, p := range s.Pairs {
		for r := 0; r < g.Rows(); r++ {
			v, ok := ParseFloat(g.Cell(r, p.Value))
			if !ok || v == 0 {
				continue
			}
			label := NormalizeLabel(g.Cell(r, p.Label))
			if label == "" {
				continue
			}
			rec.Set(label, v)
		}
	}
	return rec, repairs, nil
}

// Registry holds schemas in dispatch order.
type Registry struct {
	schemas []Schema
	byName  map[string]Schema
}

// NewRegistry creates a registry containing schemas, in order.
func NewRegistry(schemas ...Schema) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Schema)}
	for _, s := range schemas {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// DefaultRegistry returns a registry with every built-in schema.
func DefaultRegistry() *Registry {
	reg, _ := NewRegistry(BalanceSchema())
	return reg
}

// Register appends s. Schema names must be unique.
func (r *Registry) Register(s Schema) error {
	if _, ok := r.byName[s.Name()]; ok {
		return fmt.Errorf("schema %q already registered", s.Name())
	}
	r.schemas = append(r.schemas, s)
	r.byName[s.Name()] = s
	return nil
}

// Schemas returns the registered schemas in dispatch order.
func (r *Registry) Schemas() []Schema {
	return append([]Schema(nil), r.schemas...)
}

// Lookup finds a schema by name.
func (r *Registry) Lookup(name string) (Schema, bool) {
	s, ok := r.byName[name]
	return s, ok
}
