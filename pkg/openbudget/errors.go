package openbudget

import (
	"errors"
	"fmt"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/parser"
)

// ErrSchemaViolation indicates a matched table whose fixed sub-header rows
// did not match. It aborts the document it occurred in.
var ErrSchemaViolation = parser.ErrSchemaViolation

// ErrNoYear indicates a file name without a fiscal year.
var ErrNoYear = errors.New("no fiscal year in file name")

// ErrUnsupportedInput indicates an input file of unknown format.
var ErrUnsupportedInput = errors.New("unsupported input format")

// DocumentError represents a failure confined to one document.
type DocumentError struct {
	Document string
	Schema   string // empty when no schema was involved
	Err      error
}

func (e *DocumentError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("document %q: %v", e.Document, e.Err)
	}
	return fmt.Sprintf("document %q (%s): %v", e.Document, e.Schema, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(document, schema string, err error) *DocumentError {
	return &DocumentError{
		Document: document,
		Schema:   schema,
		Err:      err,
	}
}
