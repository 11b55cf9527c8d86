// =============================================================================
// Sales Data Cleaner - Currency Converter Module
// =============================================================================
//
// This module converts record prices from USD to INR at a fixed rate. The
// rate is an explicit argument, passed down from configuration; there is no
// process-wide rate state.
//
// ROUNDING:
//   Converted prices are rounded to two decimal places, half away from
//   zero (Decimal.Round semantics). 99.995 * 83 = 8299.585 rounds to
//   8299.59.
//
// =============================================================================

package currency

import (
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

// DefaultRate is the INR-per-USD rate used when none is configured.
const DefaultRate = 83.0

// Convert replaces every record's price with price * rate, rounded to two
// decimal places. The sequence keeps its length and order; conversion is
// purely a value mutation.
func Convert(records []types.CleanRecord, rate decimal.Decimal) []types.CleanRecord {
	for i := range records {
		records[i].Price = records[i].Price.Mul(rate).Round(2)
	}
	return records
}
