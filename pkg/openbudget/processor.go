package openbudget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/parser"
	"golang.org/x/sync/errgroup"
)

// Processor drives table reconstruction over documents and accumulates one
// Dataset per schema.
type Processor struct {
	opts     Options
	logger   *slog.Logger
	schemas  []parser.Schema
	datasets map[string]*dataset.Dataset
}

// NewProcessor creates a Processor with empty datasets.
func NewProcessor(opts Options) *Processor {
	p := &Processor{
		opts:     opts,
		logger:   opts.LoggerOrDefault(),
		schemas:  opts.RegistryOrDefault().Schemas(),
		datasets: make(map[string]*dataset.Dataset),
	}
	for _, s := range p.schemas {
		p.datasets[s.Name()] = dataset.New(s.Name())
	}
	return p
}

// Datasets returns the accumulated datasets in schema order.
func (p *Processor) Datasets() []*dataset.Dataset {
	out := make([]*dataset.Dataset, 0, len(p.schemas))
	for _, s := range p.schemas {
		out = append(out, p.datasets[s.Name()])
	}
	return out
}

// Dataset returns the dataset of the named schema.
func (p *Processor) Dataset(name string) (*dataset.Dataset, bool) {
	d, ok := p.datasets[name]
	return d, ok
}

// parsedTable is a record waiting to be appended.
type parsedTable struct {
	schema string
	record models.Record
}

// docResult is the outcome of parsing one document.
type docResult struct {
	done      bool
	tables    []parsedTable
	report    Report
	cancelled error
}

// ProcessDocument parses one document and appends its records.
func (p *Processor) ProcessDocument(ctx context.Context, doc models.Document) *Report {
	return p.Run(ctx, []models.Document{doc})
}

// Run parses documents, up to Options.Workers at a time, then appends the
// records to the datasets in input order. A failure in one document never
// affects the others; everything is collected in the returned Report.
func (p *Processor) Run(ctx context.Context, docs []models.Document) *Report {
	results := make([]docResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.WorkersOrDefault())
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			results[i] = p.parse(gctx, doc)
			return results[i].cancelled
		})
	}
	waitErr := g.Wait()

	report := &Report{}
	for i := range results {
		if !results[i].done {
			continue
		}
		p.apply(docs[i], &results[i], report)
	}
	if waitErr != nil {
		p.logger.Error("run interrupted", "error", waitErr)
		report.Errors = append(report.Errors, waitErr)
	}
	return report
}

// parse assembles and parses every table of doc without touching the
// datasets. A schema violation stops the document; tables parsed before it
// are kept.
func (p *Processor) parse(ctx context.Context, doc models.Document) docResult {
	res := docResult{}
	res.report.Documents = 1

	if doc.Year == 0 {
		p.logger.Warn("no fiscal year in file name, document skipped", "document", doc.Name)
		res.report.add(Event{Kind: EventNoYear, Document: doc.Name, Table: -1})
		res.done = true
		return res
	}

	grids := doc.Grids()
	for i := 0; i < len(grids); {
		if err := ctx.Err(); err != nil {
			res.cancelled = err
			return res
		}
		next, err := p.parseAt(doc, grids, i, &res)
		if err != nil {
			res.report.Errors = append(res.report.Errors, err)
			break
		}
		i = next
	}
	res.done = true
	return res
}

// parseAt tries every schema at grids[i] and returns the next index.
func (p *Processor) parseAt(doc models.Document, grids []models.Grid, i int, res *docResult) (int, error) {
	maxFragments := p.opts.MaxFragmentsOrDefault()
	reason := "no matching head"

	for _, s := range p.schemas {
		g, next, ok := parser.Locate(grids, i, s, maxFragments)
		if !ok {
			if s.HasHead(grids[i]) {
				reason = fmt.Sprintf("%s head without tail within %d grids", s.Name(), maxFragments)
			}
			continue
		}

		rec, repairs, err := s.Parse(g, doc.Year)
		p.reportRepairs(doc, s, i, repairs, &res.report)
		if err != nil {
			p.logger.Error("unexpected table layout, document aborted",
				"document", doc.Name, "schema", s.Name(), "table", i, "error", err)
			res.report.add(Event{Kind: EventSchemaViolation, Document: doc.Name, Schema: s.Name(), Table: i, Detail: err.Error()})
			return i, NewDocumentError(doc.Name, s.Name(), err)
		}

		p.logger.Debug("table parsed", "document", doc.Name, "schema", s.Name(),
			"tables", fmt.Sprintf("%d-%d", i, next-1), "labels", rec.Len())
		res.tables = append(res.tables, parsedTable{schema: s.Name(), record: rec})
		res.report.Tables++
		return next, nil
	}

	p.logger.Debug("table skipped", "document", doc.Name, "table", i, "reason", reason)
	res.report.add(Event{Kind: EventSkipped, Document: doc.Name, Table: i, Detail: reason})
	return i + 1, nil
}

func (p *Processor) reportRepairs(doc models.Document, s parser.Schema, table int, repairs []parser.Repair, report *Report) {
	for _, r := range repairs {
		if !r.Ambiguous() {
			p.logger.Debug("merged cell split", "document", doc.Name, "row", r.Row, "col", r.Col, "text", r.Text)
			continue
		}
		p.logger.Warn("cell split may be wrong", "document", doc.Name, "schema", s.Name(),
			"table", table, "row", r.Row, "col", r.Col, "text", r.Text)
		report.add(Event{
			Kind:     EventAmbiguousRepair,
			Document: doc.Name,
			Schema:   s.Name(),
			Table:    table,
			Detail:   fmt.Sprintf("[%d][%d] %s", r.Row, r.Col, r.Text),
		})
	}
}

// apply appends the records of a parsed document.
func (p *Processor) apply(doc models.Document, res *docResult, report *Report) {
	report.merge(&res.report)
	for _, t := range res.tables {
		for _, m := range p.datasets[t.schema].Append(t.record) {
			p.logger.Info("complementary columns merged", "schema", t.schema,
				"kept", m.Kept, "dropped", m.Dropped, "filled", m.Filled)
			report.add(Event{
				Kind:     EventColumnsMerged,
				Document: doc.Name,
				Schema:   t.schema,
				Table:    -1,
				Detail:   fmt.Sprintf("%s <- %s", m.Kept, m.Dropped),
			})
		}
	}
}
