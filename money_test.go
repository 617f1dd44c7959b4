package accounting

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		opts   []Option
		want   string
	}{
		// Defaults
		{123, nil, "$123.00"},
		{123.45, nil, "$123.45"},
		{12345.67, nil, "$12,345.67"},
		{12345678, nil, "$12,345,678.00"},
		{-123, nil, "$-123.00"},
		{-12345.67, nil, "$-12,345.67"},
		{0, nil, "$0.00"},

		// Symbol and separators
		{4999.99, []Option{WithSymbol("€"), WithThousand("."), WithDecimal(",")}, "€4.999,99"},
		{-500000, []Option{WithSymbol("£ "), WithPrecision(0)}, "£ -500,000"},
		{5318008, []Option{WithPrecision(0)}, "$5,318,008"},
		{1, []Option{WithSymbol("%v")}, "%v1.00"},
		{1, []Option{WithSymbol("")}, "1.00"},

		// Templates
		{5318008, []Option{WithSymbol("GBP"), WithFormat(Template("%v %s"))}, "5,318,008.00 GBP"},
		{-1, []Option{WithSymbol("EUR"), WithFormat(Template("%v %s"))}, "-1.00 EUR"},
		{-1, []Option{WithFormat(Template("%s -%v"))}, "$ -1.00"},
		{1, []Option{WithFormat(Template("%v"))}, "1.00"},
		{1, []Option{WithFormat(Template("%s%v %d"))}, "$1.00 %d"},
		{1, []Option{WithFormat(Template("no value"))}, "$1.00"},

		// Currency formats
		{5, []Option{WithFormat(CurrencyFormat{Pos: "%s %v", Neg: "%s (%v)", Zero: "%s -- %v"})}, "$ 5.00"},
		{-5, []Option{WithFormat(CurrencyFormat{Pos: "%s %v", Neg: "%s (%v)", Zero: "%s -- %v"})}, "$ (5.00)"},
		{0, []Option{WithFormat(CurrencyFormat{Pos: "%s %v", Neg: "%s (%v)", Zero: "%s -- %v"})}, "$ -- 0.00"},
		{0.001, []Option{WithFormat(CurrencyFormat{Pos: "%s %v", Neg: "%s (%v)", Zero: "%s -- %v"})}, "$ 0.00"},
		{-0.001, []Option{WithFormat(CurrencyFormat{Pos: "%s %v", Neg: "%s (%v)", Zero: "%s -- %v"})}, "$ (0.00)"},
		{0, []Option{WithFormat(CurrencyFormat{Pos: "%s%v", Zero: "free"})}, "$0.00"},
		{-2, []Option{WithFormat(CurrencyFormat{Pos: "%v %s"})}, "-2.00 $"},

		// Format functions
		{1, []Option{WithFormat(FormatFunc(func() FormatSpec { return Template("%v%s") }))}, "1.00$"},

		// Special values
		{math.NaN(), nil, "$NaN"},
	}
	for _, tt := range tests {
		useDefault(t, NewSettings())
		got := FormatMoney(tt.amount, tt.opts...)
		if got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatMoneyNested(t *testing.T) {
	useDefault(t, NewSettings())
	amounts := List(Values(123, 456.7), Scalar(-7.0))
	got := FormatMoneyNested(amounts, WithSymbol("GBP "), WithPrecision(0)).String()
	want := `[["GBP 123" "GBP 457"] "GBP -7"]`
	if got != want {
		t.Errorf("FormatMoneyNested(%v) = %v, want %v", amounts, got, want)
	}
}

func TestSettings_FormatMoney(t *testing.T) {
	s := Settings{
		Symbol:    "kr",
		Format:    Template("%v %s"),
		Decimal:   ",",
		Thousand:  " ",
		Precision: 2,
	}
	got := s.FormatMoney(-1234567.891)
	want := "-1 234 567,89 kr"
	if got != want {
		t.Errorf("FormatMoney(-1234567.891) = %q, want %q", got, want)
	}
}
