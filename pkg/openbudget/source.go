package openbudget

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/parser"
	"github.com/xuri/excelize/v2"
)

// LoadDocument reads the extractor output stored at path. JSON dumps and
// xlsx workbooks (one sheet per grid) are supported. The fiscal year is
// taken from the file name.
func LoadDocument(path string) (models.Document, error) {
	name := filepath.Base(path)
	doc := models.Document{Name: name}

	year, ok := parser.YearFromName(name)
	if !ok {
		return doc, fmt.Errorf("%s: %w", name, ErrNoYear)
	}
	doc.Year = year

	var grids []models.Grid
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return doc, err
		}
		defer f.Close()
		if grids, err = parser.ReadJSONGrids(f); err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
		defer f.Close()
		if grids, err = parser.ReadWorkbookGrids(f); err != nil {
			return doc, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return doc, fmt.Errorf("%s: %w", name, ErrUnsupportedInput)
	}

	for i, g := range grids {
		doc.Tables = append(doc.Tables, models.RawTable{Index: i, Grid: g})
	}
	return doc, nil
}

// DepartmentResult is the outcome of processing one department directory.
type DepartmentResult struct {
	// Name is the department (directory) name.
	Name string
	// Dir is the directory holding the department's documents.
	Dir string
	// Datasets holds one dataset per schema.
	Datasets []*dataset.Dataset
	// Report collects diagnostics.
	Report *Report
}

// RunDirectory processes dir as a single department when it holds only
// files, and otherwise treats each sub-directory as a department.
func RunDirectory(ctx context.Context, dir string, opts Options) ([]DepartmentResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	allFiles := true
	for _, e := range entries {
		if e.IsDir() {
			allFiles = false
			break
		}
	}
	if allFiles {
		res, err := ProcessDepartment(ctx, filepath.Base(dir), dir, opts)
		if err != nil {
			return nil, err
		}
		return []DepartmentResult{res}, nil
	}

	var results []DepartmentResult
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		res, err := ProcessDepartment(ctx, e.Name(), filepath.Join(dir, e.Name()), opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ProcessDepartment loads every document in dir and processes them with a
// fresh Processor. Files that cannot be loaded are reported and skipped.
func ProcessDepartment(ctx context.Context, name, dir string, opts Options) (DepartmentResult, error) {
	logger := opts.LoggerOrDefault()
	registry := opts.RegistryOrDefault()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return DepartmentResult{}, err
	}

	report := &Report{}
	var docs []models.Document
	for _, e := range entries {
		if e.IsDir() || !isInputFile(e.Name(), registry) {
			continue
		}
		doc, err := LoadDocument(filepath.Join(dir, e.Name()))
		switch {
		case errors.Is(err, ErrNoYear):
			logger.Warn("no fiscal year in file name, document skipped", "department", name, "document", e.Name())
			report.add(Event{Kind: EventNoYear, Document: e.Name(), Table: -1})
			continue
		case err != nil:
			logger.Error("cannot load document", "department", name, "document", e.Name(), "error", err)
			report.add(Event{Kind: EventLoadFailed, Document: e.Name(), Table: -1, Detail: err.Error()})
			report.Errors = append(report.Errors, NewDocumentError(e.Name(), "", err))
			continue
		}
		docs = append(docs, doc)
	}

	opts.Registry = registry
	p := NewProcessor(opts)
	report.merge(p.Run(ctx, docs))

	logger.Info("department processed", "department", name, "documents", report.Documents,
		"tables", report.Tables, "errors", len(report.Errors))
	return DepartmentResult{
		Name:     name,
		Dir:      dir,
		Datasets: p.Datasets(),
		Report:   report,
	}, nil
}

// isInputFile reports whether name looks like extractor output rather than
// an export written by a previous run.
func isInputFile(name string, registry *parser.Registry) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".json" && ext != ".xlsx" {
		return false
	}
	_, isExport := registry.Lookup(strings.TrimSuffix(name, filepath.Ext(name)))
	return !isExport
}
