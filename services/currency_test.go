package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSupportedCurrency(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "GBP", "IDR"} {
		if !SupportedCurrency(code) {
			t.Errorf("expected %s to be supported", code)
		}
	}
	for _, code := range []string{"usd", "XYZ", ""} {
		if SupportedCurrency(code) {
			t.Errorf("expected %s to be unsupported", code)
		}
	}
}

func TestConvertAmount(t *testing.T) {
	cases := []struct {
		amount string
		from   string
		to     string
		want   string
	}{
		{"100", "USD", "USD", "100"},
		{"100", "USD", "EUR", "92"},
		{"92", "EUR", "USD", "100"},
		{"10", "USD", "JPY", "1495"},
	}

	for _, tc := range cases {
		got, err := ConvertAmount(decimal.RequireFromString(tc.amount), tc.from, tc.to)
		if err != nil {
			t.Fatalf("ConvertAmount(%s, %s, %s) error: %v", tc.amount, tc.from, tc.to, err)
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ConvertAmount(%s, %s, %s) = %s, want %s", tc.amount, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestConvertAmountUnsupported(t *testing.T) {
	if _, err := ConvertAmount(decimal.NewFromInt(1), "XYZ", "USD"); err == nil {
		t.Error("expected error for unsupported source currency")
	}
	if _, err := ConvertAmount(decimal.NewFromInt(1), "USD", "XYZ"); err == nil {
		t.Error("expected error for unsupported target currency")
	}
}

// A factor below a cent must survive unrounded, otherwise converting
// away from a high-denomination currency zeroes every amount.
func TestConversionFactorNotRounded(t *testing.T) {
	factor, err := ConversionFactor("IDR", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if factor.IsZero() {
		t.Fatal("IDR to USD factor must not round to zero")
	}

	got, err := ConvertAmount(decimal.NewFromInt(156000), "IDR", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("156000 IDR = %s USD, want 10", got)
	}
}

// Converting there and back must round-trip within rounding error.
func TestConvertAmountRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1234.56")
	eur, err := ConvertAmount(amount, "USD", "EUR")
	if err != nil {
		t.Fatal(err)
	}
	back, err := ConvertAmount(eur, "EUR", "USD")
	if err != nil {
		t.Fatal(err)
	}

	diff := back.Sub(amount).Abs()
	if diff.GreaterThan(decimal.RequireFromString("0.02")) {
		t.Errorf("round trip drifted by %s (got %s)", diff, back)
	}
}
