package accounting

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = Settings{}
	_ json.Unmarshaler = (*Settings)(nil)
	_ yaml.Marshaler   = Settings{}
	_ yaml.Unmarshaler = (*Settings)(nil)
	_ toml.Unmarshaler = (*Settings)(nil)
)

// patch holds decoded settings.
// Fields missing from the input are nil and leave the settings unchanged.
type patch struct {
	Symbol     *string       `json:"symbol" yaml:"symbol"`
	Decimal    *string       `json:"decimal" yaml:"decimal"`
	Thousand   *string       `json:"thousand" yaml:"thousand"`
	Precision  *float64      `json:"precision" yaml:"precision"`
	Grouping   *int          `json:"grouping" yaml:"grouping"`
	StripZeros *bool         `json:"stripZeros" yaml:"stripZeros"`
	Fallback   *float64      `json:"fallback" yaml:"fallback"`
	Round      *RoundingMode `json:"round" yaml:"round"`
}

func (p patch) apply(s *Settings) {
	if p.Symbol != nil {
		s.Symbol = *p.Symbol
	}
	if p.Decimal != nil {
		s.Decimal = *p.Decimal
	}
	if p.Thousand != nil {
		s.Thousand = *p.Thousand
	}
	if p.Precision != nil {
		s.Precision = checkPrecision(*p.Precision, s.Precision)
	}
	if p.Grouping != nil {
		s.Grouping = *p.Grouping
	}
	if p.StripZeros != nil {
		s.StripZeros = *p.StripZeros
	}
	if p.Fallback != nil {
		s.Fallback = *p.Fallback
	}
	if p.Round != nil {
		s.Round = *p.Round
	}
}

// document is the encoded form of settings.
type document struct {
	Symbol     string       `json:"symbol" yaml:"symbol"`
	Format     FormatSpec   `json:"format,omitempty" yaml:"format,omitempty"`
	Decimal    string       `json:"decimal" yaml:"decimal"`
	Thousand   string       `json:"thousand" yaml:"thousand"`
	Precision  int          `json:"precision" yaml:"precision"`
	Grouping   int          `json:"grouping" yaml:"grouping"`
	StripZeros bool         `json:"stripZeros" yaml:"stripZeros"`
	Fallback   float64      `json:"fallback" yaml:"fallback"`
	Round      RoundingMode `json:"round" yaml:"round"`
}

func (s Settings) document() document {
	format := s.Format
	if fn, ok := format.(FormatFunc); ok {
		// Functions cannot be encoded
		if f, ok := fn.currencyFormat(); ok {
			format = f
		} else {
			format = nil
		}
	}
	return document{
		Symbol:     s.Symbol,
		Format:     format,
		Decimal:    s.Decimal,
		Thousand:   s.Thousand,
		Precision:  s.Precision,
		Grouping:   s.Grouping,
		StripZeros: s.StripZeros,
		Fallback:   s.Fallback,
		Round:      s.Round,
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Keys missing from the object leave the corresponding settings unchanged,
// so decoding into a copy of [Default] overrides only the given settings.
// The format may be a string or an object with "pos", "neg", and "zero" keys.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (s *Settings) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw struct {
		patch
		Format json.RawMessage `json:"format"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Settings{}, err)
	}
	format, err := unmarshalFormatJSON(raw.Format)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Settings{}, err)
	}
	raw.patch.apply(s)
	if format != nil {
		s.Format = format
	}
	return nil
}

func unmarshalFormatJSON(data json.RawMessage) (FormatSpec, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	switch data[0] {
	case '"':
		var t string
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, err
		}
		return Template(t), nil
	case '{':
		var f CurrencyFormat
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %s", errInvalidFormat, data)
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
// A [FormatFunc] is encoded as the [CurrencyFormat] it returns.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// It follows the same rules as [Settings.UnmarshalJSON].
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		patch  `yaml:",inline"`
		Format yaml.Node `yaml:"format"`
	}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Settings{}, err)
	}
	format, err := unmarshalFormatYAML(&raw.Format)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Settings{}, err)
	}
	raw.patch.apply(s)
	if format != nil {
		s.Format = format
	}
	return nil
}

func unmarshalFormatYAML(node *yaml.Node) (FormatSpec, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		return Template(node.Value), nil
	case yaml.MappingNode:
		var f CurrencyFormat
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: line %v", errInvalidFormat, node.Line)
	}
}

// MarshalYAML implements the [yaml.Marshaler] interface.
// A [FormatFunc] is encoded as the [CurrencyFormat] it returns.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (s Settings) MarshalYAML() (any, error) {
	return s.document(), nil
}

// UnmarshalTOML implements the [toml.Unmarshaler] interface.
// It follows the same rules as [Settings.UnmarshalJSON].
//
// [toml.Unmarshaler]: https://pkg.go.dev/github.com/BurntSushi/toml#Unmarshaler
func (s *Settings) UnmarshalTOML(data any) error {
	if _, ok := data.(map[string]any); !ok {
		return fmt.Errorf("unmarshaling %T: TOML type %T is not supported", Settings{}, data)
	}
	text, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Settings{}, err)
	}
	return s.UnmarshalJSON(text)
}
