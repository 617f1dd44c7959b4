package accounting

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// MaxPrecision is the maximum number of digits after the decimal point
// that the package can produce.
const MaxPrecision = 100

// epsilon compensates for binary representation errors before rounding,
// so that 0.615 (stored as 0.61499999999999999112) is rounded to 0.62.
const epsilon = 1e-8

var errInvalidRoundingMode = errors.New("invalid rounding mode")

// RoundingMode type represents the direction in which values are rounded
// to the required precision.
// The zero value is [RoundNearest].
type RoundingMode int8

const (
	// RoundNearest rounds to the nearest value, with halves rounded
	// toward positive infinity.
	RoundNearest RoundingMode = 0
	// RoundUp rounds toward positive infinity.
	RoundUp RoundingMode = 1
	// RoundDown rounds toward negative infinity.
	RoundDown RoundingMode = -1
)

// ParseRoundingMode converts a string to a rounding mode.
// The input string must be in one of the following formats:
//
//	nearest
//	up
//	down
//	0
//	1
//	-1
//
// Any positive number is treated as [RoundUp] and any negative number as
// [RoundDown], which matches the numeric round setting of older
// configurations.
// ParseRoundingMode returns an error if the string is not a rounding mode.
func ParseRoundingMode(mode string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "nearest", "":
		return RoundNearest, nil
	case "up", "ceil":
		return RoundUp, nil
	case "down", "floor":
		return RoundDown, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(mode), 64)
	if err != nil || math.IsNaN(f) {
		return RoundNearest, fmt.Errorf("%w: %q", errInvalidRoundingMode, mode)
	}
	return roundingModeOf(f), nil
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rounding modes.
func MustParseRoundingMode(mode string) RoundingMode {
	m, err := ParseRoundingMode(mode)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingMode(%q) failed: %v", mode, err))
	}
	return m
}

// roundingModeOf maps the sign of a legacy numeric round setting to a mode.
func roundingModeOf(f float64) RoundingMode {
	switch {
	case f > 0:
		return RoundUp
	case f < 0:
		return RoundDown
	default:
		return RoundNearest
	}
}

// String method implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch {
	case m > 0:
		return "up"
	case m < 0:
		return "down"
	default:
		return "nearest"
	}
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundNearest, err)
	}
	return nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both strings and numbers are accepted.
// See also constructor [ParseRoundingMode].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *RoundingMode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*m, err = ParseRoundingMode(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundNearest, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns one of "nearest", "up", or "down".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m RoundingMode) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 9)
	text = append(text, '"')
	text = append(text, m.String()...)
	text = append(text, '"')
	return text, nil
}

// round applies the rounding mode to a value that is already scaled.
func (m RoundingMode) round(x float64) float64 {
	switch {
	case m > 0:
		return math.Ceil(x)
	case m < 0:
		return math.Floor(x)
	default:
		return math.Floor(x + 0.5)
	}
}

// checkPrecision returns a usable number of fractional digits.
// The value is rounded to the nearest integer and its absolute value is taken.
// NaN and infinite values are replaced with the fallback.
func checkPrecision(v float64, fallback int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = float64(fallback)
	}
	v = math.Abs(math.Round(v))
	return int(min(v, MaxPrecision))
}

// ToFixed returns a decimal representation of the value with exactly
// precision digits after the decimal point, using "." as the separator.
// If mode is omitted, [Default] rounding mode is used.
//
// Unlike [strconv.FormatFloat], ToFixed treats the float as a decimal
// number, so ToFixed(0.615, 2) returns "0.62" rather than "0.61".
// The correction adds 1e-8 to the value before rounding, so it becomes
// visible from precision 8 on: ToFixed(0.1, 9) returns "0.100000010".
// See also method [Settings.ToFixed].
func ToFixed(value float64, precision int, mode ...RoundingMode) string {
	m := Default.Round
	if len(mode) > 0 {
		m = mode[0]
	}
	return toFixed(value, checkPrecision(float64(precision), 0), m)
}

// ToFixed is like the package-level [ToFixed] but uses the precision and
// rounding mode of the settings.
func (s Settings) ToFixed(value float64) string {
	return toFixed(value, s.precision(), s.Round)
}

func toFixed(value float64, prec int, mode RoundingMode) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	power := math.Pow10(prec)
	coef := mode.round((value + epsilon) * power)
	if coef == 0 {
		coef = 0 // negative zero
	}

	// Exact conversion of the scaled coefficient
	if prec <= decimal.MaxScale && coef > math.MinInt64 && coef < math.MaxInt64 {
		d, err := decimal.New(int64(coef), prec)
		if err == nil {
			return d.String()
		}
	}

	// Scaled value beyond the float range
	if math.IsInf(coef, 0) {
		return strconv.FormatFloat(value, 'f', prec, 64)
	}

	// Values beyond the decimal range
	return strconv.FormatFloat(coef/power, 'f', prec, 64)
}
