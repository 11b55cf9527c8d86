// =============================================================================
// Sales Data Cleaner - CSV Reader Module
// =============================================================================
//
// This module reads delimited sales exports into raw rows for the pipeline.
// It deliberately does nothing but splitting: field cleanup, price parsing
// and row-level error policy all live in the normalize package, so that the
// reader stays a thin I/O concern.
//
// FEATURES:
//   - Configurable delimiter with aliases for common cases (tab, pipe, ...)
//   - Optional leading header rows skipped before data
//   - Tolerant of inconsistent field counts and lazy quoting
//
// =============================================================================

package csvreader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ginjaninja78/sales-data-cleaner/internal/config"
)

// Read parses a delimited text file and returns its raw rows, in file order.
//
// Header rows (per settings.HeaderRows) are dropped here so that downstream
// stages only ever see data rows. Rows are returned exactly as split; empty
// rows are preserved because skipping them silently is the parser's
// documented job, not the reader's.
func Read(filePath string, settings config.CSVSettings) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if settings.HeaderRows >= len(rows) {
		return nil, nil
	}
	return rows[settings.HeaderRows:], nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	// Resolve the delimiter, accepting a few spelled-out aliases.
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Sales exports are messy: field counts vary and quotes do not
	// always follow strict CSV rules. Shape problems are handled per
	// row by the parser, not here.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// Leading space is stripped again during normalization; trimming
	// here keeps quoted fields consistent with unquoted ones.
	reader.TrimLeadingSpace = true
}
