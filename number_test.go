package accounting

import (
	"math"
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		number float64
		opts   []Option
		want   string
	}{
		// Defaults
		{0, nil, "0.00"},
		{123, nil, "123.00"},
		{1234.5, nil, "1,234.50"},
		{123456789, nil, "123,456,789.00"},
		{-1234.567, nil, "-1,234.57"},
		{-0.001, nil, "-0.00"},
		{0.615, nil, "0.62"},

		// Precision
		{98765432.12, []Option{WithPrecision(0)}, "98,765,432"},
		{98765432.12, []Option{WithPrecision(3)}, "98,765,432.120"},
		{123.456789, []Option{WithPrecision(-4)}, "123.4568"},

		// Separators
		{98765432.12, []Option{WithPrecision(0), WithThousand("|")}, "98|765|432"},
		{123456789.1234, []Option{WithThousand("."), WithDecimal(","), WithPrecision(3)}, "123.456.789,123"},
		{12345.12345, []Option{WithThousand(""), WithDecimal("")}, "1234512"},
		{1234567.5, []Option{WithThousand(" "), WithDecimal("·")}, "1 234 567·50"},
		{1234567.5, []Option{WithThousand("'"), WithDecimal(".-")}, "1'234'567.-50"},

		// Grouping
		{1234567, []Option{WithGrouping(2), WithPrecision(0)}, "1,23,45,67"},
		{1234567.891, []Option{WithGrouping(4), WithPrecision(0)}, "123,4568"},
		{1234567, []Option{WithGrouping(0), WithPrecision(0)}, "1,234,567"},
		{123, []Option{WithGrouping(3), WithPrecision(0)}, "123"},

		// Trailing zeros
		{98765432.12, []Option{WithPrecision(3), WithStripZeros(true)}, "98,765,432.12"},
		{98765432.012, []Option{WithStripZeros(true)}, "98,765,432.01"},
		{98765432, []Option{WithStripZeros(true)}, "98,765,432"},
		{98765432.1, []Option{WithStripZeros(true), WithDecimal(",")}, "98,765,432,1"},
		{1.5, []Option{WithStripZeros(true), WithDecimal("")}, "150"},
		{100, []Option{WithStripZeros(true), WithPrecision(0)}, "100"},

		// Rounding
		{3.1415, []Option{WithRound(RoundUp)}, "3.15"},
		{12.56, []Option{WithRound(RoundDown), WithPrecision(1)}, "12.5"},
		{-12.56, []Option{WithRound(RoundDown), WithPrecision(1)}, "-12.5"},

		// Special values
		{math.NaN(), nil, "NaN"},
		{math.Inf(1), nil, "+Inf"},
		{math.Inf(-1), nil, "-Inf"},
	}
	for _, tt := range tests {
		useDefault(t, NewSettings())
		got := FormatNumber(tt.number, tt.opts...)
		if got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestFormatNumberNested(t *testing.T) {
	useDefault(t, NewSettings())
	numbers := List(Values(123, 456.7), Scalar(-7.0), List[float64]())
	got := FormatNumberNested(numbers, WithPrecision(1)).String()
	want := `[["123.0" "456.7"] "-7.0" []]`
	if got != want {
		t.Errorf("FormatNumberNested(%v) = %v, want %v", numbers, got, want)
	}
}

func TestStripInsignificantZeros(t *testing.T) {
	tests := []struct {
		str, decimal string
		want         string
	}{
		{"1.500", ".", "1.5"},
		{"1.000", ".", "1"},
		{"1,000.000", ".", "1,000"},
		{"1.000,500", ",", "1.000,5"},
		{"100", ".", "100"},
		{"10.10", "", "10.10"},
		{"1.-000", ".-", "1"},
		{"-0.00", ".", "-0"},
	}
	for _, tt := range tests {
		got := stripInsignificantZeros(tt.str, tt.decimal)
		if got != tt.want {
			t.Errorf("stripInsignificantZeros(%q, %q) = %q, want %q", tt.str, tt.decimal, got, tt.want)
		}
	}
}

func TestFormatNumber_Overflow(t *testing.T) {
	tests := []struct {
		number float64
		prec   int
	}{
		{1e307, 2},
		{-1e307, 2},
		{1e300, 10},
		{-2e306, 2},
	}
	for _, tt := range tests {
		useDefault(t, NewSettings())
		got := FormatNumber(tt.number, WithPrecision(tt.prec))
		if strings.Contains(got, "Inf") {
			t.Errorf("FormatNumber(%v) = %q, want finite digits", tt.number, got)
			continue
		}
		intpart, frac, _ := strings.Cut(got, ".")
		if len(frac) != tt.prec {
			t.Errorf("FormatNumber(%v) = %q, want %v fractional digits", tt.number, got, tt.prec)
		}
		if n := strings.Count(intpart, ","); n != (len(strings.TrimPrefix(intpart, "-"))-n-1)/3 {
			t.Errorf("FormatNumber(%v) = %q, digits are not grouped by 3", tt.number, got)
		}
		if back := Unformat(got); back != tt.number {
			t.Errorf("Unformat(FormatNumber(%v)) = %v", tt.number, back)
		}
	}

	money := FormatMoney(-2e306)
	if !strings.HasPrefix(money, "$-") || !strings.HasSuffix(money, ".00") || strings.Contains(money, "Inf") {
		t.Errorf("FormatMoney(-2e306) = %q, want $-...00", money)
	}
}
