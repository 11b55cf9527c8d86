// =============================================================================
// Sales Data Cleaner - Parser / Normalizer Module
// =============================================================================
//
// This module turns raw rows into CleanRecords. It is the only stage that
// can drop data for content reasons, and it does so one row at a time:
//   - Empty rows are skipped silently.
//   - Rows with fewer than four fields are skipped with a warning.
//   - Rows whose price does not parse are skipped with a warning.
//
// Skips are returned as values on the Report, never printed. The stage is a
// pure function of its input rows, which keeps it testable in isolation.
//
// FIELD LAYOUT (positional, no header):
//   0: product_id   1: product_name   2: price (USD, possibly "$"-prefixed
//   and quoted)     3: country
//
// =============================================================================

package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

// fieldCount is the number of fields every non-empty row must carry.
const fieldCount = 4

// Report is the outcome of parsing one batch of raw rows.
type Report struct {
	// Records are the successfully parsed rows, in input order.
	Records []types.CleanRecord

	// Skipped lists every row that was dropped with a warning, in input
	// order. Silently skipped empty rows do not appear here.
	Skipped []types.SkippedRow
}

// Field returns one text field with surrounding whitespace, embedded
// double quotes, and dollar signs removed. No other characters change.
//
// The function is total and idempotent: it never fails, and normalizing an
// already-normalized field returns it unchanged.
func Field(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "$", "")
	return s
}

// Rows parses a batch of raw rows into CleanRecords, applying Field to each
// of the four positional fields and parsing the price as a decimal.
//
// Rows that fail are recorded on the Report and do not halt parsing; the
// output preserves the input order of the rows that survive.
func Rows(rows [][]string) Report {
	report := Report{}

	for i, row := range rows {
		line := i + 1

		if rowIsEmpty(row) {
			continue
		}

		if len(row) < fieldCount {
			report.Skipped = append(report.Skipped, types.SkippedRow{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(row)),
			})
			continue
		}

		priceText := Field(row[2])
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			report.Skipped = append(report.Skipped, types.SkippedRow{
				Line:   line,
				Value:  priceText,
				Reason: "could not convert price to number",
			})
			continue
		}

		report.Records = append(report.Records, types.CleanRecord{
			ProductID:   Field(row[0]),
			ProductName: Field(row[1]),
			Price:       price,
			Country:     Field(row[3]),
		})
	}

	return report
}

// rowIsEmpty reports whether a row has no fields or only blank ones.
func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
