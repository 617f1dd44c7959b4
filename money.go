package accounting

import "math"

// FormatMoney returns the amount formatted as money using [Default]
// settings, overridden by the options.
//
//	FormatMoney(12345678)
//	// $12,345,678.00
//	FormatMoney(-500000, WithSymbol("£ "), WithPrecision(0))
//	// £ -500,000
//	FormatMoney(5318008, WithSymbol("GBP"), WithFormat(Template("%v %s")))
//	// 5,318,008.00 GBP
//
// See also method [Settings.FormatMoney].
func FormatMoney(amount float64, opts ...Option) string {
	return current(opts).FormatMoney(amount)
}

// FormatMoneyNested is like [FormatMoney] but formats every amount of
// a nested list, preserving its shape.
func FormatMoneyNested(amounts Nested[float64], opts ...Option) Nested[string] {
	return current(opts).FormatMoneyNested(amounts)
}

// FormatMoney returns the amount formatted as money.
// The template is chosen by the sign of the amount before rounding, so
// 0.001 with precision 2 uses the positive template.
// The absolute value of the amount, formatted by [Settings.FormatNumber],
// replaces %v and the symbol replaces %s.
func (s Settings) FormatMoney(amount float64) string {
	str, _ := s.formatMoney(s.CurrencyFormat(), amount)
	return str
}

// FormatMoneyNested is like [Settings.FormatMoney] but formats every
// amount of a nested list, preserving its shape.
func (s Settings) FormatMoneyNested(amounts Nested[float64]) Nested[string] {
	f := s.CurrencyFormat()
	return Map(amounts, func(amount float64) string {
		str, _ := s.formatMoney(f, amount)
		return str
	})
}

// formatMoney also returns the byte offset right after the symbol,
// or -1 if the template has no symbol.
func (s Settings) formatMoney(f CurrencyFormat, amount float64) (string, int) {
	return expand(f.template(amount), s.Symbol, s.FormatNumber(math.Abs(amount)))
}
