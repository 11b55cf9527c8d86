// =============================================================================
// Sales Data Cleaner - JSON Writer Module
// =============================================================================
//
// This module serializes the cleaned records as a JSON document: a
// top-level array with one object per record, keys product_id,
// product_name, price_inr, country, indented with two spaces.
//
// The whole document is marshalled in memory and written in one shot, so
// there is no partial-output state to recover from. An unwritable
// destination surfaces as an error and aborts the run.
//
// =============================================================================

package jsonwriter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

// Generate renders the record sequence as an indented JSON document.
//
// An empty sequence produces an empty array document ("[]"), not "null";
// consumers of the output should never have to special-case a clean run
// that matched zero rows.
func Generate(records []types.CleanRecord) ([]byte, error) {
	out := make([]types.OutputRecord, len(records))
	for i, record := range records {
		out[i] = types.OutputRecord{
			ProductID:   record.ProductID,
			ProductName: record.ProductName,
			PriceINR:    record.Price.InexactFloat64(),
			Country:     record.Country,
		}
	}

	doc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return append(doc, '\n'), nil
}

// Write generates the document and writes it to outputPath, returning the
// number of records written.
func Write(records []types.CleanRecord, outputPath string) (int, error) {
	doc, err := Generate(records)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outputPath, doc, 0644); err != nil {
		return 0, fmt.Errorf("failed to write output file: %w", err)
	}
	return len(records), nil
}
