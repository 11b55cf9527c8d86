package dedupe

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

func record(id, name, price, country string) types.CleanRecord {
	return types.CleanRecord{
		ProductID:   id,
		ProductName: name,
		Price:       decimal.RequireFromString(price),
		Country:     country,
	}
}

func TestRecordsFirstOccurrenceWins(t *testing.T) {
	// Same name and price but different id and country: still a duplicate,
	// and the first row is the one that survives.
	in := []types.CleanRecord{
		record("P1", "Widget", "10.00", "US"),
		record("P2", "Widget", "10.00", "IN"),
	}

	out := Records(in)

	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0].ProductID != "P1" || out[0].Country != "US" {
		t.Errorf("kept record = %+v, want the first occurrence (P1/US)", out[0])
	}
}

func TestRecordsDistinctKeysKept(t *testing.T) {
	in := []types.CleanRecord{
		record("P1", "Widget", "10.00", "US"),
		record("P2", "Widget", "12.00", "US"),
		record("P3", "Gadget", "10.00", "US"),
	}

	out := Records(in)

	if len(out) != 3 {
		t.Fatalf("got %d records, want 3 (no false duplicates)", len(out))
	}
}

func TestRecordsEqualPricesDifferentScale(t *testing.T) {
	// "10.0" and "10.00" are the same price and must collapse to one key.
	in := []types.CleanRecord{
		record("P1", "Widget", "10.0", "US"),
		record("P2", "Widget", "10.00", "IN"),
	}

	out := Records(in)

	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
}

func TestRecordsPreservesOrder(t *testing.T) {
	in := []types.CleanRecord{
		record("P1", "Widget", "10.00", "US"),
		record("P2", "Gadget", "5.00", "US"),
		record("P3", "Widget", "10.00", "US"),
		record("P4", "Doohickey", "3.00", "US"),
	}

	out := Records(in)

	if len(out) != 3 {
		t.Fatalf("got %d records, want 3", len(out))
	}
	for i, wantID := range []string{"P1", "P2", "P4"} {
		if out[i].ProductID != wantID {
			t.Errorf("out[%d].ProductID = %q, want %q", i, out[i].ProductID, wantID)
		}
	}
}

func TestRecordsEmptyInput(t *testing.T) {
	out := Records(nil)
	if len(out) != 0 {
		t.Fatalf("got %d records, want 0", len(out))
	}
}
