// =============================================================================
// Sales Data Cleaner - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - normalize
//   - dedupe
//   - currency
//   - jsonwriter
//   - cleaner
//
// =============================================================================

package types

import "github.com/shopspring/decimal"

// =============================================================================
// RECORD TYPES
// =============================================================================

// CleanRecord is one sales entry after parsing and normalization.
//
// The Price field holds whatever currency the record is in at its current
// pipeline position: USD as produced by the parser, INR after conversion.
// A CleanRecord is never constructed with an unparseable price; rows that
// fail the price parse are reported as SkippedRow instead.
type CleanRecord struct {
	// ProductID is the normalized product identifier.
	ProductID string

	// ProductName is the normalized product name.
	ProductName string

	// Price is the record's price. Decimal arithmetic keeps the
	// two-place rounding of the currency stage exact.
	Price decimal.Decimal

	// Country is the normalized country field.
	Country string
}

// SkippedRow describes one input row that was dropped during parsing.
// Skips are returned as values rather than printed so that the transform
// stages stay pure; the cmd layer decides how to surface them.
type SkippedRow struct {
	// Line is the 1-indexed position of the row in the input file.
	Line int

	// Value is the offending field value, when one exists.
	// Empty for structural skips such as a wrong field count.
	Value string

	// Reason explains why the row was dropped.
	Reason string
}

// OutputRecord is the JSON shape of one cleaned record. The price field
// is INR only; the USD price does not survive conversion.
//
// Field order here fixes the key order in the output document.
type OutputRecord struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	PriceINR    float64 `json:"price_inr"`
	Country     string  `json:"country"`
}
