// =============================================================================
// Sales Data Cleaner - Clean Command
// =============================================================================
//
// This file defines the 'clean' command, which runs the cleaning pipeline
// for one input file.
//
// COMMAND USAGE:
//   sales-cleaner clean [flags]
//
// FLAGS:
//   --input    : Input file, overrides the configured input_path
//   --output   : Output file, overrides the configured output_path
//   --rate     : INR-per-USD rate, overrides the configured rate
//   --dry-run  : Run the pipeline but write nothing
//
// The command layer owns all console output: it configures logging,
// reports per-stage counts, and surfaces row warnings collected by the
// pipeline. The pipeline itself never prints.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-data-cleaner/internal/cleaner"
	"github.com/ginjaninja78/sales-data-cleaner/internal/config"
)

// Flags local to the clean command.
var (
	inputFlag  string
	outputFlag string
	rateFlag   float64
	dryRun     bool
)

// cleanCmd represents the 'clean' command.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a sales export and write the JSON result",
	Long: `The clean command reads the configured sales export, normalizes every
field, drops rows whose price cannot be parsed, removes duplicate records by
product name and price, converts the remaining prices from USD to INR, and
writes the result as a JSON document.

Rows with problems are skipped with a warning and never abort the run; a
missing input file or an unwritable output destination does.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean()
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(
		&inputFlag,
		"input",
		"",
		"Input file (.csv or .xlsx), overrides the configured input_path",
	)

	cleanCmd.Flags().StringVar(
		&outputFlag,
		"output",
		"",
		"Output JSON file, overrides the configured output_path",
	)

	cleanCmd.Flags().Float64Var(
		&rateFlag,
		"rate",
		0,
		"INR-per-USD conversion rate, overrides the configured rate",
	)

	cleanCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing the output file",
	)
}

// runClean loads configuration, wires up logging, and executes the pipeline.
func runClean() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags beat file values.
	if inputFlag != "" {
		cfg.InputPath = inputFlag
	}
	if outputFlag != "" {
		cfg.OutputPath = outputFlag
	}
	if rateFlag != 0 {
		cfg.Rate = rateFlag
	}

	logger := newLogger(cfg.LogLevel)

	logger.Info("starting clean",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"rate", cfg.Rate,
		"dry_run", dryRun,
	)

	c := cleaner.New(cfg, logger)
	c.SetDryRun(dryRun)

	result, err := c.Run()
	if err != nil {
		logger.Error("clean failed", "error", err)
		return err
	}

	// Surface the row warnings collected by the pipeline, in row order.
	for _, w := range result.Warnings {
		if w.Value != "" {
			logger.Warn("skipped row", "row", w.Line, "reason", w.Reason, "value", w.Value)
		} else {
			logger.Warn("skipped row", "row", w.Line, "reason", w.Reason)
		}
	}

	logger.Info("clean complete",
		"rows_read", result.Stats.RowsRead,
		"records_parsed", result.Stats.RecordsParsed,
		"rows_skipped", result.Stats.RowsSkipped,
		"duplicates_removed", result.Stats.DuplicatesRemoved,
		"records_written", result.Stats.RecordsWritten,
		"elapsed", result.Stats.Elapsed,
	)

	if dryRun {
		fmt.Printf("Dry run: %d record(s) would be written to %s\n",
			result.Stats.RecordsWritten, cfg.OutputPath)
	} else {
		fmt.Printf("Saved %d record(s) to %s\n",
			result.Stats.RecordsWritten, result.OutputPath)
	}

	return nil
}

// newLogger builds the application logger. --verbose forces debug level
// regardless of the configured log_level.
func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}
