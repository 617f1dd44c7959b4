package accounting

import (
	"errors"
	"strings"
)

const (
	symbolPlaceholder = "%s"
	valuePlaceholder  = "%v"
)

// defaultTemplate is used when neither the settings nor [Default] hold
// a valid format.
const defaultTemplate Template = "%s%v"

var errInvalidFormat = errors.New("invalid format")

// FormatSpec describes how a formatted value and the currency symbol are
// combined into the final string.
// It is one of [Template], [CurrencyFormat], or [FormatFunc].
// A nil FormatSpec, or one without the %v placeholder, is replaced with
// the format of [Default].
type FormatSpec interface {
	currencyFormat() (CurrencyFormat, bool)
}

// Template type represents a single template for all amounts, such as
// "%s%v" or "%v %s".
// The template must contain the value placeholder %v, the symbol
// placeholder %s is optional.
//
// For negative amounts, any "-" in the template is removed and a minus sign
// is placed directly in front of the value.
// Zero amounts use the template as is.
type Template string

// CurrencyFormat type represents separate templates for positive,
// negative, and zero amounts.
// Pos must contain the %v placeholder.
// If Neg is empty or does not contain %v, it is derived from Pos the same
// way as for a [Template].
// If Zero is empty or does not contain %v, Pos is used instead.
type CurrencyFormat struct {
	Pos  string `json:"pos" yaml:"pos" toml:"pos"`
	Neg  string `json:"neg,omitempty" yaml:"neg,omitempty" toml:"neg,omitempty"`
	Zero string `json:"zero,omitempty" yaml:"zero,omitempty" toml:"zero,omitempty"`
}

// FormatFunc type represents a format that is computed on every use.
// A nil FormatFunc, or one that returns nil, is treated as a missing format.
type FormatFunc func() FormatSpec

// hasValue reports whether the template contains the value placeholder.
func hasValue(tmpl string) bool {
	return strings.Contains(tmpl, valuePlaceholder)
}

// negTemplate makes the minus sign explicit and avoids duplicating it.
func negTemplate(tmpl string) string {
	tmpl = strings.Replace(tmpl, "-", "", 1)
	return strings.Replace(tmpl, valuePlaceholder, "-"+valuePlaceholder, 1)
}

func (t Template) currencyFormat() (CurrencyFormat, bool) {
	if !hasValue(string(t)) {
		return CurrencyFormat{}, false
	}
	s := string(t)
	return CurrencyFormat{Pos: s, Neg: negTemplate(s), Zero: s}, true
}

func (f CurrencyFormat) currencyFormat() (CurrencyFormat, bool) {
	if !hasValue(f.Pos) {
		return CurrencyFormat{}, false
	}
	if !hasValue(f.Neg) {
		f.Neg = negTemplate(f.Pos)
	}
	if !hasValue(f.Zero) {
		f.Zero = f.Pos
	}
	return f, true
}

func (fn FormatFunc) currencyFormat() (CurrencyFormat, bool) {
	if fn == nil {
		return CurrencyFormat{}, false
	}
	spec := fn()
	if spec == nil {
		return CurrencyFormat{}, false
	}
	return spec.currencyFormat()
}

// template returns the template for the sign class of the amount.
// NaN is treated as zero.
func (f CurrencyFormat) template(amount float64) string {
	switch {
	case amount > 0:
		return f.Pos
	case amount < 0:
		return f.Neg
	default:
		return f.Zero
	}
}

// symbolFirst reports whether the symbol placeholder precedes the value
// placeholder in the positive template.
func (f CurrencyFormat) symbolFirst() bool {
	s := strings.Index(f.Pos, symbolPlaceholder)
	return s >= 0 && s < strings.Index(f.Pos, valuePlaceholder)
}

// resolveFormat returns the currency format described by spec.
// Invalid or missing formats fall back to the format of [Default],
// which is resolved once and cached back into [Default].
func resolveFormat(spec FormatSpec) CurrencyFormat {
	if spec != nil {
		if f, ok := spec.currencyFormat(); ok {
			return f
		}
	}
	return defaultFormat()
}

func defaultFormat() CurrencyFormat {
	if Default.Format != nil {
		if f, ok := Default.Format.currencyFormat(); ok {
			switch spec := Default.Format.(type) {
			case FormatFunc:
				// computed on every use
			case CurrencyFormat:
				if spec != f {
					Default.Format = f
				}
			default:
				Default.Format = f
			}
			return f
		}
	}
	f, _ := defaultTemplate.currencyFormat()
	return f
}

// CurrencyFormat returns the positive, negative, and zero templates used
// by the settings.
// See also type [FormatSpec].
func (s Settings) CurrencyFormat() CurrencyFormat {
	return resolveFormat(s.Format)
}

// expand substitutes the first symbol and value placeholders of the template.
// Placeholders inside the substituted strings are not expanded.
// The second result is the byte offset right after the substituted symbol,
// or -1 if the template does not contain the symbol placeholder.
func expand(tmpl, symbol, value string) (string, int) {
	si := strings.Index(tmpl, symbolPlaceholder)
	vi := strings.Index(tmpl, valuePlaceholder)
	vend := vi + len(valuePlaceholder)
	if vi < 0 {
		vi, vend, value = len(tmpl), len(tmpl), ""
	}
	var b strings.Builder
	b.Grow(len(tmpl) + len(symbol) + len(value))
	end := -1
	switch {
	case si < 0:
		b.WriteString(tmpl[:vi])
		b.WriteString(value)
		b.WriteString(tmpl[vend:])
	case si < vi:
		b.WriteString(tmpl[:si])
		b.WriteString(symbol)
		end = b.Len()
		b.WriteString(tmpl[si+len(symbolPlaceholder) : vi])
		b.WriteString(value)
		b.WriteString(tmpl[vend:])
	default:
		b.WriteString(tmpl[:vi])
		b.WriteString(value)
		b.WriteString(tmpl[vend:si])
		b.WriteString(symbol)
		end = b.Len()
		b.WriteString(tmpl[si+len(symbolPlaceholder):])
	}
	return b.String(), end
}
