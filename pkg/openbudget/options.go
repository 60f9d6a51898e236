// Package openbudget reconstructs budget tables from extracted PDF grids
// into per-year datasets.
package openbudget

import (
	"log/slog"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/parser"
)

// Options configures processing behavior.
type Options struct {
	// MaxFragments caps how many consecutive raw grids one table may span.
	// Zero means parser.DefaultMaxFragments.
	MaxFragments int
	// Workers is the number of documents parsed concurrently. Records are
	// still appended in input order. Zero means 1.
	Workers int
	// Registry lists the schemas to recognize, in dispatch order.
	// If nil, parser.DefaultRegistry() is used.
	Registry *parser.Registry
	// Logger receives diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		MaxFragments: parser.DefaultMaxFragments,
		Workers:      1,
	}
}

// MaxFragmentsOrDefault returns the assembly cap.
func (o Options) MaxFragmentsOrDefault() int {
	if o.MaxFragments > 0 {
		return o.MaxFragments
	}
	return parser.DefaultMaxFragments
}

// WorkersOrDefault returns the document parallelism.
func (o Options) WorkersOrDefault() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return 1
}

// RegistryOrDefault returns the schema registry.
func (o Options) RegistryOrDefault() *parser.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return parser.DefaultRegistry()
}

// LoggerOrDefault returns the logger.
func (o Options) LoggerOrDefault() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
