package accounting

// Settings type represents the options of number and currency formatting.
// The zero value formats numbers without a symbol, separators, or fractional
// digits; use [NewSettings] or a copy of [Default] as a starting point.
//
// Settings is a value type: the methods never modify the receiver, and a
// Settings value may be shared by multiple goroutines as long as none of
// them changes it.
type Settings struct {
	Symbol     string       // currency symbol, substituted for %s
	Format     FormatSpec   // templates for positive, negative, and zero amounts
	Decimal    string       // decimal separator
	Thousand   string       // thousands separator
	Precision  int          // number of digits after the decimal point
	Grouping   int          // number of digits in a group, 3 if not positive
	StripZeros bool         // whether to remove trailing zeros of the fractional part
	Fallback   float64      // value of unparsable strings
	Round      RoundingMode // rounding direction
}

// Default holds the settings used by the package-level functions.
// Changes to Default are visible to all later calls.
//
// The package does not synchronize access to Default.
// Programs that modify it while other goroutines use the package-level
// functions must protect it with a mutex, or use their own [Settings].
var Default = NewSettings()

// NewSettings returns the built-in default settings:
//
//	symbol     $
//	format     %s%v
//	decimal    .
//	thousand   ,
//	precision  2
//	grouping   3
//
// Zeros are not stripped, the fallback is 0, and values are rounded to the
// nearest.
func NewSettings() *Settings {
	return &Settings{
		Symbol:    "$",
		Format:    defaultTemplate,
		Decimal:   ".",
		Thousand:  ",",
		Precision: 2,
		Grouping:  3,
	}
}

// Option type represents a per-call override of a setting.
type Option func(*Settings)

// WithSymbol sets the currency symbol.
func WithSymbol(symbol string) Option {
	return func(s *Settings) { s.Symbol = symbol }
}

// WithFormat sets the currency templates.
// The format is usually a [Template] or a [CurrencyFormat].
func WithFormat(format FormatSpec) Option {
	return func(s *Settings) { s.Format = format }
}

// WithDecimal sets the decimal separator.
// An empty separator joins the integer and fractional digits.
func WithDecimal(decimal string) Option {
	return func(s *Settings) { s.Decimal = decimal }
}

// WithThousand sets the thousands separator.
// An empty separator disables grouping.
func WithThousand(thousand string) Option {
	return func(s *Settings) { s.Thousand = thousand }
}

// WithPrecision sets the number of digits after the decimal point.
// Negative values are replaced with their absolute value.
func WithPrecision(precision int) Option {
	return func(s *Settings) { s.Precision = checkPrecision(float64(precision), s.Precision) }
}

// WithGrouping sets the number of digits in a group of the integer part.
func WithGrouping(grouping int) Option {
	return func(s *Settings) { s.Grouping = grouping }
}

// WithStripZeros sets whether trailing zeros of the fractional part are removed.
func WithStripZeros(strip bool) Option {
	return func(s *Settings) { s.StripZeros = strip }
}

// WithFallback sets the value returned for strings that cannot be parsed.
func WithFallback(fallback float64) Option {
	return func(s *Settings) { s.Fallback = fallback }
}

// WithRound sets the rounding direction.
func WithRound(mode RoundingMode) Option {
	return func(s *Settings) { s.Round = mode }
}

// With returns a copy of the settings with the options applied.
func (s Settings) With(opts ...Option) Settings {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// current returns [Default] with the options applied.
func current(opts []Option) Settings {
	return Default.With(opts...)
}

// precision returns the number of fractional digits, fixing out of range values.
func (s Settings) precision() int {
	return checkPrecision(float64(s.Precision), 0)
}

// grouping returns the size of digit groups.
func (s Settings) grouping() int {
	if s.Grouping <= 0 {
		return 3
	}
	return s.Grouping
}
