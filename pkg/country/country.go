package country

import (
	"cmp"
	"slices"
	"strconv"
)

// Record is the plain input form of a country, as found in reference data.
type Record struct {
	Numeric string  `yaml:"numeric" json:"numeric"`
	Alpha2  string  `yaml:"alpha2" json:"alpha2"`
	Alpha3  string  `yaml:"alpha3" json:"alpha3"`
	Name    string  `yaml:"name" json:"name"`
	Aliases []Alias `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

type record struct {
	numeric string
	value   int
	alpha2  string
	alpha3  string
	name    string
	display string
	key     string
	ident   string
	aliases []Alias
}

// Country is a handle to one canonical record of a Registry.
//
// Countries are immutable and comparable. Two values obtained from the same
// registry compare equal with == exactly when they denote the same record,
// whichever index produced them. The zero value denotes no country.
type Country struct {
	r *record
}

func newRecord(rec Record) (*record, error) {
	value, err := strconv.Atoi(rec.Numeric)
	if err != nil {
		return nil, err
	}
	return &record{
		numeric: rec.Numeric,
		value:   value,
		alpha2:  rec.Alpha2,
		alpha3:  rec.Alpha3,
		name:    rec.Name,
		display: compact(rec.Name),
		key:     nameKey(rec.Name),
		ident:   identifier(rec.Name),
		aliases: slices.Clone(rec.Aliases),
	}, nil
}

// IsZero reports whether c is the zero Country.
func (c Country) IsZero() bool { return c.r == nil }

// Numeric returns the three-digit, zero-padded numeric code.
func (c Country) Numeric() string {
	if c.r == nil {
		return ""
	}
	return c.r.numeric
}

// Value returns the numeric code as an integer.
func (c Country) Value() int {
	if c.r == nil {
		return 0
	}
	return c.r.value
}

// Alpha2 returns the uppercase two-letter code.
func (c Country) Alpha2() string {
	if c.r == nil {
		return ""
	}
	return c.r.alpha2
}

// Alpha3 returns the uppercase three-letter code.
func (c Country) Alpha3() string {
	if c.r == nil {
		return ""
	}
	return c.r.alpha3
}

// Name returns the canonical long name, e.g. "The Russian Federation".
func (c Country) Name() string {
	if c.r == nil {
		return ""
	}
	return c.r.name
}

// Display returns the canonical display form: the canonical name without
// whitespace or punctuation, e.g. "TheRussianFederation". ByName resolves
// it back to c.
func (c Country) Display() string {
	if c.r == nil {
		return ""
	}
	return c.r.display
}

// String implements fmt.Stringer using Display.
func (c Country) String() string {
	return c.Display()
}

// NameKey returns the normalized display form, the key of the name index.
func (c Country) NameKey() string {
	if c.r == nil {
		return ""
	}
	return c.r.key
}

// Identifier returns the snake_case form of the canonical name, e.g.
// "the_united_states_of_america".
func (c Country) Identifier() string {
	if c.r == nil {
		return ""
	}
	return c.r.ident
}

// SortKey returns the identity key used for ordering and hashing.
func (c Country) SortKey() string {
	return c.NameKey()
}

// Aliases returns a copy of the country's aliases in registration order.
func (c Country) Aliases() []Alias {
	if c.r == nil {
		return nil
	}
	return slices.Clone(c.r.aliases)
}

// Record returns the plain data of c.
func (c Country) Record() Record {
	return Record{
		Numeric: c.Numeric(),
		Alpha2:  c.Alpha2(),
		Alpha3:  c.Alpha3(),
		Name:    c.Name(),
		Aliases: c.Aliases(),
	}
}

// Equal reports whether c and o denote the same canonical record. Countries
// from different registries are equal when every field matches.
func (c Country) Equal(o Country) bool {
	if c.r == o.r {
		return true
	}
	if c.r == nil || o.r == nil {
		return false
	}
	return c.r.numeric == o.r.numeric &&
		c.r.value == o.r.value &&
		c.r.alpha2 == o.r.alpha2 &&
		c.r.alpha3 == o.r.alpha3 &&
		c.r.name == o.r.name &&
		slices.Equal(c.r.aliases, o.r.aliases)
}

// Compare orders countries by normalized canonical name. The zero Country
// sorts first.
func (c Country) Compare(o Country) int {
	return cmp.Compare(c.SortKey(), o.SortKey())
}
