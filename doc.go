/*
Package accounting implements number and currency formatting for display
and the tolerant parsing of formatted values back into numbers.
It is intended for user interfaces and reports of financial software,
where amounts are kept as binary floating-point numbers but must be shown
the way an accountant expects them.

# Features

  - Fixed-point rounding that corrects binary floating-point errors
    (for example, 0.615 is rounded to 0.62, not 0.61)
  - Custom currency symbols, thousand and decimal separators, and digit grouping
  - Separate templates for positive, negative, and zero amounts
  - Parsing of formatted strings, including currency symbols and
    accounting-style bracketed negatives
  - Alignment of amounts into columns of equal display width
  - Nested lists of values, formatted and parsed element by element
  - Settings decoding from JSON, YAML, and TOML

# Settings

Every operation is controlled by a [Settings] value.
The package-level functions read the process-wide [Default] settings and
apply per-call [Option] values to a copy of them:

	accounting.FormatMoney(4999.99, accounting.WithSymbol("€"), accounting.WithThousand("."), accounting.WithDecimal(","))
	// €4.999,99

Changes to [Default] are visible to all later calls of the package-level
functions.
[Default] is not safe for concurrent modification; programs that change it
while other goroutines format values must synchronize access themselves,
or pass their own [Settings] values instead.

# Templates

A template is a string where %s stands for the currency symbol and %v for
the formatted value.
A [Template] such as "%s %v" is expanded into a [CurrencyFormat] with
separate templates for positive, negative, and zero amounts.
Any other sequence starting with % is left untouched.

# Rounding

Values are rounded to [Settings.Precision] digits after the decimal point
using one of the modes [RoundNearest], [RoundUp], or [RoundDown].
Before rounding, a tiny epsilon of 1e-8 is added to the value to compensate
for binary representation errors.

# Errors

Formatting and parsing never fail.
Invalid templates fall back to the default template, and strings that do not
contain a number are parsed to [Settings.Fallback].
Errors are returned only when decoding settings from JSON, YAML, or TOML.
*/
package accounting
