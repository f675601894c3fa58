package country

import (
	"slices"
	"strconv"
)

// ByNumericValue resolves the integer value of a numeric code; 4 and 004
// denote the same code.
func (r *Registry) ByNumericValue(n int) (Country, error) {
	if c, ok := r.byValue[n]; ok {
		return c, nil
	}
	return Country{}, notFound(strconv.Itoa(n), SpaceValue)
}

// ByNumericCode resolves a zero-padded numeric code. Padding is part of the
// key: "004" resolves, "4" and "04" do not.
func (r *Registry) ByNumericCode(code string) (Country, error) {
	return lookup(r.byNumeric, code, SpaceNumeric)
}

// ByAlpha2 resolves a two-letter code, ignoring case.
func (r *Registry) ByAlpha2(code string) (Country, error) {
	return lookup(r.byAlpha2, code, SpaceAlpha2)
}

// ByAlpha3 resolves a three-letter code, ignoring case.
func (r *Registry) ByAlpha3(code string) (Country, error) {
	return lookup(r.byAlpha3, code, SpaceAlpha3)
}

// ByName resolves a canonical name written without separators, ignoring
// case, e.g. "theunitedstatesofamerica". It does not consult aliases.
func (r *Registry) ByName(name string) (Country, error) {
	return lookup(r.byName, name, SpaceName)
}

// ByIdentifier resolves the snake_case form of a canonical name, ignoring
// case, e.g. "the_united_states_of_america".
func (r *Registry) ByIdentifier(ident string) (Country, error) {
	return lookup(r.byIdent, ident, SpaceIdentifier)
}

// ByAlias resolves an alias, current or deprecated, ignoring case. It does
// not fall back to names or codes.
func (r *Registry) ByAlias(alias string) (Country, error) {
	if e, ok := r.byAlias[Normalize(alias)]; ok {
		return e.Country, nil
	}
	return Country{}, notFound(alias, SpaceAlias)
}

// Parse resolves input against every key space at once: numeric code,
// numeric value, alpha-2, alpha-3, canonical name, snake_case identifier or
// any alias.
func (r *Registry) Parse(input string) (Country, error) {
	m, err := r.Lookup(input)
	return m.Country, err
}

// Lookup is Parse reporting which key space matched.
func (r *Registry) Lookup(input string) (Match, error) {
	if m, ok := r.unified[Normalize(input)]; ok {
		return m, nil
	}
	return Match{}, notFound(input, SpaceAny)
}

// LookupIn resolves input in a single key space. For SpaceValue the input
// is parsed as a decimal integer.
func (r *Registry) LookupIn(space Space, input string) (Match, error) {
	key := Normalize(input)
	switch space {
	case SpaceAny:
		return r.Lookup(input)
	case SpaceValue:
		n, err := strconv.Atoi(input)
		if err != nil {
			return Match{}, notFound(input, SpaceValue)
		}
		if c, ok := r.byValue[n]; ok {
			return Match{Country: c, Space: SpaceValue, Key: strconv.Itoa(n)}, nil
		}
		return Match{}, notFound(input, SpaceValue)
	case SpaceAlias:
		if e, ok := r.byAlias[key]; ok {
			return Match{Country: e.Country, Space: SpaceAlias, Key: key, Alias: e.Alias}, nil
		}
		return Match{}, notFound(input, SpaceAlias)
	}

	var idx map[string]Country
	switch space {
	case SpaceNumeric:
		idx = r.byNumeric
	case SpaceAlpha2:
		idx = r.byAlpha2
	case SpaceAlpha3:
		idx = r.byAlpha3
	case SpaceName:
		idx = r.byName
	case SpaceIdentifier:
		idx = r.byIdent
	}
	if c, ok := idx[key]; ok {
		return Match{Country: c, Space: space, Key: key}, nil
	}
	return Match{}, notFound(input, space)
}

// Decode resolves the wire form of a country, its alpha-2 code.
func (r *Registry) Decode(alpha2 string) (Country, error) {
	c, err := r.ByAlpha2(alpha2)
	if err != nil {
		return Country{}, &DecodeError{Input: alpha2, Err: err}
	}
	return c, nil
}

// All returns every country ordered by normalized canonical name.
func (r *Registry) All() []Country {
	return slices.Clone(r.sorted)
}

// Len returns the number of countries.
func (r *Registry) Len() int {
	return len(r.countries)
}

// Aliases returns every alias in registration order.
func (r *Registry) Aliases() []AliasEntry {
	return slices.Clone(r.aliases)
}

// DeprecatedAliases returns the aliases marked deprecated, in registration
// order.
func (r *Registry) DeprecatedAliases() []AliasEntry {
	var out []AliasEntry
	for _, e := range r.aliases {
		if e.Alias.Deprecated {
			out = append(out, e)
		}
	}
	return out
}

// Conflicts returns the keys that lost to an earlier registration.
func (r *Registry) Conflicts() []Conflict {
	return slices.Clone(r.conflicts)
}

func lookup(idx map[string]Country, input string, space Space) (Country, error) {
	if c, ok := idx[Normalize(input)]; ok {
		return c, nil
	}
	return Country{}, notFound(input, space)
}
