// =============================================================================
// Sales Data Cleaner - Deduplicator Module
// =============================================================================
//
// This module drops repeated sales entries. Two records are duplicates when
// they share a product name and a price; the first occurrence in input
// order always wins, and later duplicates are discarded even if their
// product id or country differ.
//
// Dedupe runs on pre-conversion prices. The identity key exists only for
// the duration of the pass and is not stored anywhere.
//
// =============================================================================

package dedupe

import (
	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

// key identifies a record for duplicate detection.
//
// The price is keyed by its canonical string form so that numerically equal
// values with different scales ("10.0" vs "10.00") collapse to one entry;
// Decimal.String trims trailing zeros.
type key struct {
	name  string
	price string
}

// Records filters a record sequence down to first occurrences of each
// (product_name, price) pair, preserving the relative order of the records
// that are kept.
func Records(records []types.CleanRecord) []types.CleanRecord {
	seen := make(map[key]struct{}, len(records))
	unique := make([]types.CleanRecord, 0, len(records))

	for _, record := range records {
		k := key{name: record.ProductName, price: record.Price.String()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, record)
	}

	return unique
}
