package country

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var referenceData []byte

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	records, err := DecodeRecords(bytes.NewReader(referenceData))
	if err != nil {
		return nil, err
	}
	return NewRegistry(records)
})

// Default returns the registry built from the embedded ISO 3166-1 reference
// data. It is built on first use and shared by every caller afterwards.
//
// Default panics if the embedded data is invalid; that is a build defect
// caught by this package's tests.
func Default() *Registry {
	r, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("country: invalid reference data: %v", err))
	}
	return r
}

// ReferenceRecords decodes a fresh copy of the embedded reference data.
func ReferenceRecords() ([]Record, error) {
	return DecodeRecords(bytes.NewReader(referenceData))
}

// DecodeRecords reads a YAML sequence of records. Unknown fields are
// rejected.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var records []Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// ByNumericValue resolves n in the default registry.
func ByNumericValue(n int) (Country, error) { return Default().ByNumericValue(n) }

// ByNumericCode resolves a zero-padded numeric code in the default registry.
func ByNumericCode(code string) (Country, error) { return Default().ByNumericCode(code) }

// ByAlpha2 resolves a two-letter code in the default registry.
func ByAlpha2(code string) (Country, error) { return Default().ByAlpha2(code) }

// ByAlpha3 resolves a three-letter code in the default registry.
func ByAlpha3(code string) (Country, error) { return Default().ByAlpha3(code) }

// ByName resolves a separator-free canonical name in the default registry.
func ByName(name string) (Country, error) { return Default().ByName(name) }

// ByIdentifier resolves a snake_case name in the default registry.
func ByIdentifier(ident string) (Country, error) { return Default().ByIdentifier(ident) }

// ByAlias resolves an alias in the default registry.
func ByAlias(alias string) (Country, error) { return Default().ByAlias(alias) }

// Parse resolves any supported identifier in the default registry.
func Parse(input string) (Country, error) { return Default().Parse(input) }

// Lookup is Parse reporting which key space matched.
func Lookup(input string) (Match, error) { return Default().Lookup(input) }

// LookupIn resolves input in one key space of the default registry.
func LookupIn(space Space, input string) (Match, error) { return Default().LookupIn(space, input) }

// All returns every country of the default registry ordered by name.
func All() []Country { return Default().All() }
