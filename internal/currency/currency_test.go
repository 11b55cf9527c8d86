package currency

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/sales-data-cleaner/internal/types"
)

func records(prices ...string) []types.CleanRecord {
	out := make([]types.CleanRecord, len(prices))
	for i, p := range prices {
		out[i] = types.CleanRecord{
			ProductID:   "P1",
			ProductName: "Widget",
			Price:       decimal.RequireFromString(p),
			Country:     "US",
		}
	}
	return out
}

func TestConvert(t *testing.T) {
	rate := decimal.NewFromFloat(83.0)

	tests := []struct {
		price string
		want  string
	}{
		{"10.00", "830"},
		{"1", "83"},
		{"0", "0"},
		{"2.5", "207.5"},
		{"19.99", "1659.17"},
	}

	for _, tt := range tests {
		out := Convert(records(tt.price), rate)
		want := decimal.RequireFromString(tt.want)
		if !out[0].Price.Equal(want) {
			t.Errorf("Convert(%s) price = %s, want %s", tt.price, out[0].Price, want)
		}
	}
}

func TestConvertRoundsHalfAwayFromZero(t *testing.T) {
	// 99.995 * 83 = 8299.585 exactly; half away from zero gives 8299.59.
	rate := decimal.NewFromFloat(83.0)
	out := Convert(records("99.995"), rate)

	want := decimal.RequireFromString("8299.59")
	if !out[0].Price.Equal(want) {
		t.Errorf("price = %s, want %s", out[0].Price, want)
	}
}

func TestConvertPreservesCountAndOrder(t *testing.T) {
	rate := decimal.NewFromFloat(83.0)
	in := records("1", "2", "3")
	in[0].ProductID, in[1].ProductID, in[2].ProductID = "A", "B", "C"

	out := Convert(in, rate)

	if len(out) != 3 {
		t.Fatalf("got %d records, want 3", len(out))
	}
	for i, wantID := range []string{"A", "B", "C"} {
		if out[i].ProductID != wantID {
			t.Errorf("out[%d].ProductID = %q, want %q", i, out[i].ProductID, wantID)
		}
	}
}

func TestConvertAtMostTwoDecimalPlaces(t *testing.T) {
	rate := decimal.NewFromFloat(83.0)
	out := Convert(records("0.333"), rate)

	// 0.333 * 83 = 27.639 -> 27.64
	want := decimal.RequireFromString("27.64")
	if !out[0].Price.Equal(want) {
		t.Errorf("price = %s, want %s", out[0].Price, want)
	}
	if out[0].Price.Exponent() < -2 {
		t.Errorf("price %s has more than two decimal places", out[0].Price)
	}
}
