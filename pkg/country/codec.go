package country

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// The wire form of a Country is its alpha-2 code. Decoding resolves codes
// against the default registry and fails with a *DecodeError for unknown
// codes.

var jsonNull = []byte("null")

// MarshalText implements encoding.TextMarshaler.
func (c Country) MarshalText() ([]byte, error) {
	return []byte(c.Alpha2()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Country) UnmarshalText(text []byte) error {
	decoded, err := Default().Decode(string(text))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON encodes c as a JSON string, or null for the zero Country.
func (c Country) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(c.Alpha2())
}

// UnmarshalJSON decodes a JSON string holding an alpha-2 code. null yields
// the zero Country.
func (c *Country) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*c = Country{}
		return nil
	}
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return &DecodeError{Input: string(data), Err: err}
	}
	return c.UnmarshalText([]byte(code))
}

// MarshalYAML implements yaml.Marshaler.
func (c Country) MarshalYAML() (any, error) {
	if c.IsZero() {
		return nil, nil
	}
	return c.Alpha2(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Country) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &DecodeError{Input: node.Value, Err: errors.New("expected a scalar")}
	}
	if node.Tag == "!!null" {
		*c = Country{}
		return nil
	}
	return c.UnmarshalText([]byte(node.Value))
}
