// =============================================================================
// QMS Defect Extractor - Extraction Pipeline
// =============================================================================
//
// This module contains the core extraction logic. It orchestrates one run,
// from reading the defect-tracking worksheet to writing both JSON artifacts.
//
// EXTRACTION PIPELINE:
//   1. Read the configured worksheet below its header row
//   2. Check the key column exists and warn about missing mapped columns
//   3. Map every data row into a DefectRecord, skipping rows without a key
//   4. Write the defects artifact
//   5. Assign supplier codes and access codes
//   6. Write the suppliers artifact
//   7. Print the console summary
//
// A fatal error in steps 1-2 aborts before any file is written. A failure
// while writing one artifact leaves the other as it was.
//
// CONCURRENCY:
//   A run is single-threaded and processes rows strictly in sheet order.
//
// =============================================================================

package extract

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DekoMao/qms-mao-brasil/internal/config"
	"github.com/DekoMao/qms-mao-brasil/internal/mapping"
	"github.com/DekoMao/qms-mao-brasil/internal/report"
	"github.com/DekoMao/qms-mao-brasil/internal/supplier"
	"github.com/DekoMao/qms-mao-brasil/internal/xlsxreader"
	"github.com/DekoMao/qms-mao-brasil/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one extraction run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Defects are the extracted records in sheet order.
	Defects []mapping.DefectRecord

	// Suppliers are the coded suppliers in alphabetical order.
	Suppliers []supplier.Record

	// DefectsFile is the path the defects artifact was written to.
	DefectsFile string

	// SuppliersFile is the path the suppliers artifact was written to.
	SuppliersFile string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about the run.
type Stats struct {
	// RowsRead is the number of data rows below the header.
	RowsRead int

	// RowsSkipped is the number of rows without a key.
	RowsSkipped int

	// MissingColumns are mapped source columns absent from the sheet.
	MissingColumns []string

	// Elapsed is the time taken by the run.
	Elapsed time.Duration
}

// =============================================================================
// EXTRACTOR STRUCTURE
// =============================================================================

// Extractor runs the extraction for one configuration.
type Extractor struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	random supplier.IntN
}

// New creates an Extractor.
//
// PARAMETERS:
//   - cfg: The run configuration. Defaults must already be applied.
//   - logger: Diagnostic logger; nil means slog.Default().
//   - out: Destination of progress lines and the summary; nil discards them.
//
// RETURNS:
//   - A new Extractor whose access codes come from cfg.RandomSeed.
func New(cfg *config.Config, logger *slog.Logger, out io.Writer) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = io.Discard
	}
	return &Extractor{
		cfg:    cfg,
		logger: logger,
		out:    out,
		random: supplier.NewRandSource(cfg.RandomSeed),
	}
}

// WithRandom replaces the access code randomness source.
func (e *Extractor) WithRandom(src supplier.IntN) *Extractor {
	e.random = src
	return e
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the extraction pipeline.
func (e *Extractor) Run() (*Result, error) {
	startTime := time.Now()
	result := &Result{RunID: uuid.NewString()}
	logger := e.logger.With("run_id", result.RunID)

	// =========================================================================
	// STEP 1: READ THE WORKSHEET
	// =========================================================================

	fmt.Fprintf(e.out, "Reading workbook: %s\n", e.cfg.WorkbookPath)
	logger.Info("reading workbook", "path", e.cfg.WorkbookPath, "sheet", e.cfg.SheetName)

	table, err := xlsxreader.Open(e.cfg.WorkbookPath, e.cfg.ReaderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	fmt.Fprintf(e.out, "Columns found: [%s]\n", strings.Join(quote(table.Headers), ", "))
	fmt.Fprintf(e.out, "Total rows: %d\n", len(table.Rows))

	// =========================================================================
	// STEP 2: CHECK COLUMNS
	// =========================================================================
	// Only the key column is required. Any other mapped column that is not
	// in the sheet leaves its field absent on every record.

	if err := table.Require(e.cfg.KeyColumn); err != nil {
		return nil, err
	}

	result.Stats.MissingColumns = table.MissingColumns(mapping.Headers())
	if len(result.Stats.MissingColumns) > 0 {
		logger.Warn("mapped columns missing from sheet; their fields will be null",
			"count", len(result.Stats.MissingColumns),
			"columns", result.Stats.MissingColumns,
		)
	}

	// =========================================================================
	// STEP 3: MAP ROWS
	// =========================================================================

	mapper := mapping.NewMapper(e.cfg.KeyColumn, logger)
	for _, row := range table.Rows {
		mapper.Add(row.Number, row)
	}
	mapped := mapper.Result()

	result.Defects = mapped.Records
	result.Stats.RowsRead = mapped.RowsRead
	result.Stats.RowsSkipped = mapped.RowsSkipped
	if mapped.RowsSkipped > 0 {
		fmt.Fprintf(e.out, "Rows skipped without %q: %d\n", e.cfg.KeyColumn, mapped.RowsSkipped)
	}
	logger.Debug("mapped rows",
		"read", mapped.RowsRead,
		"skipped", mapped.RowsSkipped,
		"suppliers", mapped.Suppliers.Len(),
	)

	// =========================================================================
	// STEP 4: WRITE DEFECTS
	// =========================================================================

	if err := utils.EnsureParentDirs(e.cfg.DefectsOutput, e.cfg.SuppliersOutput); err != nil {
		return nil, fmt.Errorf("failed to create output directories: %w", err)
	}

	opts := e.reportOptions()
	if err := report.WriteDefects(e.cfg.DefectsOutput, result.Defects, opts); err != nil {
		return nil, fmt.Errorf("failed to write defects: %w", err)
	}
	result.DefectsFile = e.cfg.DefectsOutput
	fmt.Fprintf(e.out, "Defects data saved to: %s\n", result.DefectsFile)

	// =========================================================================
	// STEP 5: ASSIGN SUPPLIER CODES
	// =========================================================================

	format := supplier.CodeFormat{Prefix: e.cfg.SupplierCodePrefix, Width: e.cfg.SupplierCodeWidth}
	codes := supplier.NewAccessCodeGenerator(e.random, e.cfg.AccessCodeLength)
	result.Suppliers = supplier.Assign(mapped.Suppliers, format, codes)

	// =========================================================================
	// STEP 6: WRITE SUPPLIERS
	// =========================================================================

	if err := report.WriteSuppliers(e.cfg.SuppliersOutput, result.Suppliers, opts); err != nil {
		return nil, fmt.Errorf("failed to write suppliers: %w", err)
	}
	result.SuppliersFile = e.cfg.SuppliersOutput
	fmt.Fprintf(e.out, "Suppliers data saved to: %s\n", result.SuppliersFile)

	// =========================================================================
	// STEP 7: SUMMARY
	// =========================================================================

	fmt.Fprintln(e.out)
	report.PrintSummary(e.out, result.Defects, result.Suppliers, opts)

	result.Stats.Elapsed = time.Since(startTime)
	logger.Info("extraction complete",
		"defects", len(result.Defects),
		"suppliers", len(result.Suppliers),
		"elapsed", result.Stats.Elapsed,
	)

	return result, nil
}

// reportOptions derives the report settings from the configuration.
func (e *Extractor) reportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.SampleDefects = e.cfg.SampleDefects
	opts.SampleSuppliers = e.cfg.SampleSuppliers
	opts.PreviewLength = e.cfg.PreviewLength
	return opts
}

func quote(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
