package accounting

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber returns the number with grouped thousands and
// [Default] precision and separators, overridden by the options.
// See also method [Settings.FormatNumber].
func FormatNumber(number float64, opts ...Option) string {
	return current(opts).FormatNumber(number)
}

// FormatNumberNested is like [FormatNumber] but formats every number of
// a nested list, preserving its shape.
func FormatNumberNested(numbers Nested[float64], opts ...Option) Nested[string] {
	return current(opts).FormatNumberNested(numbers)
}

// FormatNumber returns the number rounded to the precision of the settings,
// with the integer digits grouped by the thousands separator and the
// fractional digits separated by the decimal separator.
// Empty separators are allowed.
// If StripZeros is set, trailing zeros of the fractional part are removed.
//
// NaN and infinite numbers are formatted as "NaN", "+Inf", and "-Inf".
func (s Settings) FormatNumber(number float64) string {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return strconv.FormatFloat(number, 'f', -1, 64)
	}

	prec := s.precision()
	fixed := toFixed(math.Abs(number), prec, s.Round)
	intdigs, fracdigs, _ := strings.Cut(fixed, ".")

	// Leading group
	group := s.grouping()
	mod := 0
	if len(intdigs) > group {
		mod = len(intdigs) % group
	}

	var b strings.Builder
	b.Grow(len(fixed) + len(intdigs)/group*len(s.Thousand) + len(s.Decimal))

	// Arithmetic sign
	if number < 0 {
		b.WriteByte('-')
	}

	// Integer digits
	if mod > 0 {
		b.WriteString(intdigs[:mod])
		b.WriteString(s.Thousand)
	}
	for i := mod; i < len(intdigs); i += group {
		if i > mod {
			b.WriteString(s.Thousand)
		}
		b.WriteString(intdigs[i:min(i+group, len(intdigs))])
	}

	// Fractional digits
	if prec > 0 {
		b.WriteString(s.Decimal)
		b.WriteString(fracdigs)
	}

	if s.StripZeros {
		return stripInsignificantZeros(b.String(), s.Decimal)
	}
	return b.String()
}

// FormatNumberNested is like [Settings.FormatNumber] but formats every
// number of a nested list, preserving its shape.
func (s Settings) FormatNumberNested(numbers Nested[float64]) Nested[string] {
	return Map(numbers, s.FormatNumber)
}

// stripInsignificantZeros removes trailing zeros after the first decimal
// separator, and the separator itself if no digits are left.
func stripInsignificantZeros(str, decimal string) string {
	if decimal == "" {
		return str
	}
	intpart, fracpart, ok := strings.Cut(str, decimal)
	if !ok {
		return str
	}
	fracpart = strings.TrimRight(fracpart, "0")
	if fracpart == "" {
		return intpart
	}
	return intpart + decimal + fracpart
}
