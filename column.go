package accounting

import (
	"reflect"
	"strings"

	"github.com/mattn/go-runewidth"
)

// displayWidth measures strings in terminal cells.
// Characters of ambiguous width, such as €, are treated as narrow
// regardless of the locale of the process.
var displayWidth = &runewidth.Condition{StrictEmojiNeutral: true}

// Value is the constraint of the values accepted by [FormatColumn].
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// FormatColumn formats a list of amounts as money and pads the results with
// spaces to the same display width, lining up symbols, separators, and
// decimal points:
//
//	FormatColumn(Values(123.5, 3456.49, -5432), WithSymbol("$ "))
//	// ["$    123.50" "$  3,456.49" "$ -5,432.00"]
//
// Strings are parsed with [Settings.Unformat] before formatting.
// If the symbol precedes the value in the positive template, the padding is
// inserted right after the symbol; otherwise it is inserted at the start.
// Nested lists are aligned independently of each other.
// See also method [Settings.FormatColumn].
func FormatColumn[T Value](list Nested[T], opts ...Option) Nested[string] {
	s := current(opts)
	return s.FormatColumn(Map(list, func(v T) float64 { return s.amount(v) }))
}

// FormatColumn is like the package-level [FormatColumn] but uses the
// settings and accepts only numbers.
func (s Settings) FormatColumn(list Nested[float64]) Nested[string] {
	f := s.CurrencyFormat()
	return s.formatColumn(f, f.symbolFirst(), list)
}

func (s Settings) formatColumn(f CurrencyFormat, afterSymbol bool, list Nested[float64]) Nested[string] {
	if !list.IsList() {
		str, _ := s.formatMoney(f, list.Value())
		return Scalar(str)
	}

	type cell struct {
		str   string
		end   int // offset right after the symbol
		width int
	}

	// Formatting
	items := list.Items()
	cells := make([]cell, len(items))
	column := make([]Nested[string], len(items))
	maxwidth := 0
	for i, item := range items {
		if item.IsList() {
			column[i] = s.formatColumn(f, afterSymbol, item)
			continue
		}
		str, end := s.formatMoney(f, item.Value())
		w := displayWidth.StringWidth(str)
		cells[i] = cell{str: str, end: end, width: w}
		maxwidth = max(maxwidth, w)
	}

	// Padding
	for i, item := range items {
		if item.IsList() {
			continue
		}
		c := cells[i]
		str := c.str
		if pad := maxwidth - c.width; pad > 0 {
			spaces := strings.Repeat(" ", pad)
			if afterSymbol && c.end >= 0 {
				str = str[:c.end] + spaces + str[c.end:]
			} else {
				str = spaces + str
			}
		}
		column[i] = Scalar(str)
	}
	return List(column...)
}

// amount converts a column value to a number.
func (s Settings) amount(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return s.Unformat(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return s.Fallback
	}
}
