// Package main provides the CLI entry point for openbudget-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/openbudget-go/pkg/openbudget"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/dataset"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/output"
)

var (
	outputDir    string
	format       string
	pretty       bool
	workers      int
	maxFragments int
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "openbudget [dir]",
		Short: "Rebuild budget tables from extracted PDF grids",
		Long: `openbudget-go reads table grids extracted from department budget PDFs
(JSON dumps or xlsx workbooks, one per fiscal year) and writes one
year-by-label table per recognized schema.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: each department's directory)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, xlsx, json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Documents parsed concurrently")
	rootCmd.Flags().IntVar(&maxFragments, "max-fragments", openbudget.DefaultOptions().MaxFragments, "Maximum raw grids one table may span")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every skipped table and repair")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputDir := args[0]

	// Validate input directory exists
	if info, err := os.Stat(inputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", inputDir)
	}

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := openbudget.DefaultOptions()
	opts.Workers = workers
	opts.MaxFragments = maxFragments
	opts.Logger = logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := openbudget.RunDirectory(ctx, inputDir, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	for _, res := range results {
		dir := res.Dir
		if outputDir != "" {
			dir = filepath.Join(outputDir, res.Name)
		}
		if err := writeDatasets(dir, res.Datasets, outFormat); err != nil {
			return fmt.Errorf("failed to write output for %s: %w", res.Name, err)
		}
		printSummary(cmd, res)
	}

	return nil
}

func writeDatasets(dir string, sets []*dataset.Dataset, f output.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, d := range sets {
		if d.Len() == 0 {
			continue
		}
		filename := filepath.Join(dir, d.Name()+f.Ext())

		switch f {
		case output.FormatXLSX:
			if err := output.WriteXLSX(filename, d); err != nil {
				return err
			}
		case output.FormatJSON:
			data, err := output.ToJSON(d, pretty)
			if err != nil {
				return err
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return err
			}
		default:
			data, err := output.ToCSV(d)
			if err != nil {
				return err
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}

func printSummary(cmd *cobra.Command, res openbudget.DepartmentResult) {
	r := res.Report
	cmd.PrintErrf("%s: %d documents, %d tables, %d skipped, %d ambiguous repairs, %d errors\n",
		res.Name, r.Documents, r.Tables,
		r.Count(openbudget.EventSkipped), r.Count(openbudget.EventAmbiguousRepair), len(r.Errors))
	for _, err := range r.Errors {
		cmd.PrintErrln("  " + err.Error())
	}
}
