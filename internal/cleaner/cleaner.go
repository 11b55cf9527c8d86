// =============================================================================
// Sales Data Cleaner - Cleaner Module
// =============================================================================
//
// This module contains the core pipeline logic. It orchestrates the whole
// run for a single input file, from reading raw rows to writing the JSON
// document.
//
// PIPELINE:
//   1. Read raw rows (CSV or XLSX, chosen by extension)
//   2. Parse and normalize rows into CleanRecords
//   3. Remove duplicate records (first occurrence of name+price wins)
//   4. Convert prices from USD to INR at the configured rate
//   5. Write the JSON output document
//   6. Optionally archive the input file and write a warning log
//
// Stages run strictly in order; each consumes the full output of the
// previous one. The transform stages are pure, so the cleaner as a whole is
// a deterministic function from input bytes to output bytes plus warnings.
//
// =============================================================================

package cleaner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-cleaner/internal/config"
	"github.com/ginjaninja78/sales-data-cleaner/internal/csvreader"
	"github.com/ginjaninja78/sales-data-cleaner/internal/currency"
	"github.com/ginjaninja78/sales-data-cleaner/internal/dedupe"
	"github.com/ginjaninja78/sales-data-cleaner/internal/jsonwriter"
	"github.com/ginjaninja78/sales-data-cleaner/internal/normalize"
	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
	"github.com/ginjaninja78/sales-data-cleaner/internal/xlsxreader"
	"github.com/ginjaninja78/sales-data-cleaner/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of cleaning a single file.
type Result struct {
	// InputPath is the input file that was processed.
	InputPath string

	// OutputPath is the written JSON document. Empty on failure and on
	// dry runs.
	OutputPath string

	// Warnings lists every row skipped with a reason, in row order.
	Warnings []types.SkippedRow

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about one run.
type Stats struct {
	// RowsRead is the number of raw rows read from the input.
	RowsRead int

	// RecordsParsed is the number of rows that became CleanRecords.
	RecordsParsed int

	// RowsSkipped is the number of rows dropped with a warning.
	RowsSkipped int

	// DuplicatesRemoved is the number of records dropped by dedupe.
	DuplicatesRemoved int

	// RecordsWritten is the number of records in the output document.
	RecordsWritten int

	// Elapsed is the time taken for the whole run.
	Elapsed time.Duration
}

// =============================================================================
// CLEANER
// =============================================================================

// Cleaner runs the pipeline for one input file.
type Cleaner struct {
	cfg    *config.Config
	logger *slog.Logger

	// dryRun parses, dedupes and converts but writes nothing.
	dryRun bool
}

// New creates a Cleaner for the given configuration. A nil logger
// falls back to slog's default.
func New(cfg *config.Config, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{cfg: cfg, logger: logger}
}

// SetDryRun toggles dry-run mode.
func (c *Cleaner) SetDryRun(dry bool) { c.dryRun = dry }

// Run executes the pipeline and returns the Result. File-level failures
// (unreadable input, unwritable output) are returned as errors and abort
// the run; row-level problems only land in Result.Warnings.
func (c *Cleaner) Run() (Result, error) {
	start := time.Now()
	result := Result{InputPath: c.cfg.InputPath}

	// Stage 1: read and parse.
	rows, err := c.readRows()
	if err != nil {
		return result, err
	}
	result.Stats.RowsRead = len(rows)

	report := normalize.Rows(rows)
	result.Warnings = report.Skipped
	result.Stats.RecordsParsed = len(report.Records)
	result.Stats.RowsSkipped = len(report.Skipped)
	c.logger.Debug("parsed input",
		"rows", len(rows),
		"records", len(report.Records),
		"skipped", len(report.Skipped),
	)

	// Stage 2: dedupe on the pre-conversion price.
	unique := dedupe.Records(report.Records)
	result.Stats.DuplicatesRemoved = len(report.Records) - len(unique)
	c.logger.Debug("removed duplicates",
		"removed", result.Stats.DuplicatesRemoved,
		"remaining", len(unique),
	)

	// Stage 3: convert USD to INR.
	rate := decimal.NewFromFloat(c.cfg.Rate)
	converted := currency.Convert(unique, rate)
	c.logger.Debug("converted prices", "rate", c.cfg.Rate)

	// Stage 4: serialize.
	if c.dryRun {
		result.Stats.RecordsWritten = len(converted)
		result.Stats.Elapsed = time.Since(start)
		return result, nil
	}

	written, err := jsonwriter.Write(converted, c.cfg.OutputPath)
	if err != nil {
		return result, err
	}
	result.OutputPath = c.cfg.OutputPath
	result.Stats.RecordsWritten = written

	// Post-run bookkeeping. Neither step can fail the run once the
	// output document is on disk; problems are logged and ignored.
	if c.cfg.WarningsLogDir != "" && len(result.Warnings) > 0 {
		if logPath, err := utils.WriteWarningLog(c.cfg.WarningsLogDir, c.cfg.InputPath, result.Warnings); err != nil {
			c.logger.Warn("failed to write warning log", "error", err)
		} else {
			c.logger.Debug("wrote warning log", "path", logPath)
		}
	}
	if c.cfg.Archive.Enabled {
		if archived, err := utils.ArchiveInput(c.cfg.InputPath, c.cfg.Archive.Dir); err != nil {
			c.logger.Warn("failed to archive input", "error", err)
		} else {
			c.logger.Debug("archived input", "path", archived)
		}
	}

	result.Stats.Elapsed = time.Since(start)
	return result, nil
}

// readRows loads raw rows from the input file, choosing the reader by
// file extension.
func (c *Cleaner) readRows() ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(c.cfg.InputPath))
	if ext == ".xlsx" {
		rows, err := xlsxreader.Read(c.cfg.InputPath, c.cfg.XLSX, c.cfg.CSV.HeaderRows)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", c.cfg.InputPath, err)
		}
		return rows, nil
	}

	rows, err := csvreader.Read(c.cfg.InputPath, c.cfg.CSV)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.cfg.InputPath, err)
	}
	return rows, nil
}
