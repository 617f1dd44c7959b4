package accounting

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unformat returns the number contained in a formatted string, using the
// [Default] decimal separator and fallback, overridden by the options.
// See also method [Settings.Unformat].
func Unformat(value string, opts ...Option) float64 {
	return current(opts).Unformat(value)
}

// ParseValue is like [Unformat] but reports whether the string contained
// a number instead of returning the fallback.
// See also method [Settings.ParseValue].
func ParseValue(value string, opts ...Option) (float64, bool) {
	return current(opts).ParseValue(value)
}

// UnformatNested is like [Unformat] but parses every string of a nested
// list, preserving its shape.
// Strings without a number are replaced with the fallback one by one.
func UnformatNested(values Nested[string], opts ...Option) Nested[float64] {
	return current(opts).UnformatNested(values)
}

// UnformatAny returns the number contained in a value of any type:
//   - values of integer and floating-point types, including named types
//     such as type Price float64, are returned unchanged;
//   - strings, including named string types, byte slices, and
//     [fmt.Stringer] values are parsed using the decimal separator;
//   - other values and strings without a number are replaced with
//     the fallback, which is returned as is and may be of any type,
//     including nil.
func UnformatAny(value any, decimal string, fallback any) any {
	var str string
	switch v := value.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return v
	case string:
		str = v
	case []byte:
		str = string(v)
	case fmt.Stringer:
		str = v.String()
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return value
		case reflect.String:
			str = rv.String()
		default:
			return fallback
		}
	}
	f, ok := Settings{Decimal: decimal}.ParseValue(str)
	if !ok {
		return fallback
	}
	return f
}

// Unformat returns the number contained in a formatted string.
// It removes currency symbols, thousands separators, and any other
// characters, treats numbers in brackets as negative, and returns
// [Settings.Fallback] if no number can be found:
//
//	"£ 12,345,678.90 GBP" → 12345678.9
//	"$ (1.99)"            → -1.99
//	"-(100)"              → 100
//	"string"              → Fallback
//
// The settings must specify the decimal separator used in the string.
// See also method [Settings.ParseValue].
func (s Settings) Unformat(value string) float64 {
	f, ok := s.ParseValue(value)
	if !ok {
		return s.Fallback
	}
	return f
}

// UnformatNested is like [Settings.Unformat] but parses every string of
// a nested list, preserving its shape.
func (s Settings) UnformatNested(values Nested[string]) Nested[float64] {
	return Map(values, s.Unformat)
}

// ParseValue is like [Settings.Unformat] but returns false instead of the
// fallback if the string does not contain a number.
//
// The sign of the result is determined by the number of minus signs,
// counting a number in brackets as one minus sign, so both "(-123)" and
// "--123" are parsed to 123.
func (s Settings) ParseValue(value string) (float64, bool) {
	str := keepNumeric(value, s.Decimal)
	if s.Decimal != "" {
		str = strings.Replace(str, s.Decimal, ".", 1)
	}
	str = negateBrackets(str)
	str = removeBrackets(str)

	// Arithmetic sign
	neg := strings.Count(str, "-")%2 == 1
	str = strings.ReplaceAll(str, "-", "")

	f, ok := parseFloatPrefix(str)
	if !ok {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

// keepNumeric removes everything except digits, minus signs, brackets,
// and the characters of the decimal separator.
func keepNumeric(str, decimal string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, r := range str {
		switch {
		case r >= '0' && r <= '9', r == '-', r == '(', r == ')':
			b.WriteRune(r)
		case r != utf8.RuneError && strings.ContainsRune(decimal, r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// negateBrackets rewrites every numeric value in brackets, such as (123)
// or (1.5), as a negative value.
func negateBrackets(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for i := 0; i < len(str); i++ {
		if str[i] == '(' {
			if j := strings.IndexByte(str[i+1:], ')'); j >= 0 {
				content := str[i+1 : i+1+j]
				if isBracketNumber(content) {
					b.WriteByte('-')
					b.WriteString(content)
					i += j + 1
					continue
				}
			}
		}
		b.WriteByte(str[i])
	}
	return b.String()
}

// isBracketNumber reports whether the content of brackets is a number:
// optional minus signs followed by digits with at most one other
// character, ending in a digit.
func isBracketNumber(content string) bool {
	digits := strings.TrimLeft(content, "-")
	if digits == "" {
		return false
	}
	if c := digits[len(digits)-1]; c < '0' || c > '9' {
		return false
	}
	others := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			others++
		}
	}
	return others <= 1
}

// removeBrackets removes the first opening bracket, the last closing bracket
// after it, and everything in between.
func removeBrackets(str string) string {
	i := strings.IndexByte(str, '(')
	if i < 0 {
		return str
	}
	j := strings.LastIndexByte(str, ')')
	if j < i {
		return str
	}
	return str[:i] + str[j+1:]
}

// parseFloatPrefix parses the longest prefix of digits with an optional
// decimal point, ignoring anything after it, so "12.3.4" is parsed to 12.3.
func parseFloatPrefix(str string) (float64, bool) {
	end, digits, point := 0, 0, false
loop:
	for ; end < len(str); end++ {
		switch c := str[end]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !point:
			point = true
		default:
			break loop
		}
	}
	if digits == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(str[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
