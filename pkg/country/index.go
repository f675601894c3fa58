package country

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Space identifies a key space of the registry.
type Space int

// Key spaces. SpaceAny is the unified index used by Parse and Lookup.
const (
	SpaceAny Space = iota
	SpaceNumeric
	SpaceValue
	SpaceAlpha2
	SpaceAlpha3
	SpaceName
	SpaceAlias
	// SpaceIdentifier holds snake_case names such as "guinea_bissau".
	SpaceIdentifier
)

var spaceNames = [...]string{
	SpaceAny:     "any",
	SpaceNumeric: "numeric",
	SpaceValue:   "value",
	SpaceAlpha2:  "alpha2",
	SpaceAlpha3:  "alpha3",
	SpaceName:    "name",
	SpaceAlias:   "alias",

	SpaceIdentifier: "identifier",
}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return "Space(" + strconv.Itoa(int(s)) + ")"
	}
	return spaceNames[s]
}

// ParseSpace parses a key space name as printed by Space.String.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "", "any":
		return SpaceAny, nil
	case "numeric", "code":
		return SpaceNumeric, nil
	case "value":
		return SpaceValue, nil
	case "alpha2":
		return SpaceAlpha2, nil
	case "alpha3":
		return SpaceAlpha3, nil
	case "name":
		return SpaceName, nil
	case "alias":
		return SpaceAlias, nil
	case "identifier", "ident":
		return SpaceIdentifier, nil
	default:
		return 0, fmt.Errorf("invalid key space: %s (expected any, numeric, value, alpha2, alpha3, name, identifier or alias)", name)
	}
}

// Match is the result of a lookup: the country and how it was found.
type Match struct {
	Country Country
	Space   Space
	Key     string
	// Alias is set when Space is SpaceAlias.
	Alias Alias
}

// Deprecated reports whether the match went through a deprecated alias.
func (m Match) Deprecated() bool {
	return m.Space == SpaceAlias && m.Alias.Deprecated
}

// Registry is an immutable set of countries with one index per key space.
// It is safe for concurrent use.
type Registry struct {
	countries []Country
	sorted    []Country

	byNumeric map[string]Country
	byValue   map[int]Country
	byAlpha2  map[string]Country
	byAlpha3  map[string]Country
	byName    map[string]Country
	byIdent   map[string]Country
	byAlias   map[string]AliasEntry
	unified   map[string]Match

	aliases   []AliasEntry
	conflicts []Conflict
}

// NewRegistry validates records and builds every index once.
//
// Numeric codes, alpha-2 codes, alpha-3 codes, name keys and identifiers
// must be unique; the first violation is returned as a *DuplicateKeyError.
// Colliding aliases do not fail: the first registered wins and the loser is
// reported by Conflicts. An alias shadowed by another country's canonical
// key in the unified index is reported the same way.
func NewRegistry(records []Record) (*Registry, error) {
	countries := make([]Country, 0, len(records))
	for i, rec := range records {
		if err := validate(i, rec); err != nil {
			return nil, err
		}
		rec.Alpha2 = strings.ToUpper(rec.Alpha2)
		rec.Alpha3 = strings.ToUpper(rec.Alpha3)
		r, err := newRecord(rec)
		if err != nil {
			return nil, &InvalidRecordError{Index: i, Field: "numeric", Value: rec.Numeric, Reason: err.Error()}
		}
		countries = append(countries, Country{r: r})
	}

	reg := &Registry{countries: countries}
	var err error
	if reg.byNumeric, err = buildIndex(SpaceNumeric, countries, Country.Numeric); err != nil {
		return nil, err
	}
	if reg.byValue, err = buildIndex(SpaceValue, countries, Country.Value); err != nil {
		return nil, err
	}
	if reg.byAlpha2, err = buildIndex(SpaceAlpha2, countries, lowered(Country.Alpha2)); err != nil {
		return nil, err
	}
	if reg.byAlpha3, err = buildIndex(SpaceAlpha3, countries, lowered(Country.Alpha3)); err != nil {
		return nil, err
	}
	if reg.byName, err = buildIndex(SpaceName, countries, Country.NameKey); err != nil {
		return nil, err
	}
	if reg.byIdent, err = buildIndex(SpaceIdentifier, countries, Country.Identifier); err != nil {
		return nil, err
	}
	reg.buildAliases()
	reg.buildUnified()

	reg.sorted = slices.Clone(countries)
	slices.SortFunc(reg.sorted, Country.Compare)
	return reg, nil
}

func validate(i int, rec Record) error {
	switch {
	case len(rec.Numeric) != 3 || !isASCIIDigits(rec.Numeric):
		return &InvalidRecordError{Index: i, Field: "numeric", Value: rec.Numeric, Reason: "want three digits"}
	case len(rec.Alpha2) != 2 || !isASCIILetters(rec.Alpha2):
		return &InvalidRecordError{Index: i, Field: "alpha2", Value: rec.Alpha2, Reason: "want two letters"}
	case len(rec.Alpha3) != 3 || !isASCIILetters(rec.Alpha3):
		return &InvalidRecordError{Index: i, Field: "alpha3", Value: rec.Alpha3, Reason: "want three letters"}
	case nameKey(rec.Name) == "":
		return &InvalidRecordError{Index: i, Field: "name", Value: rec.Name, Reason: "empty"}
	}
	for _, a := range rec.Aliases {
		if a.Key() == "" {
			return &InvalidRecordError{Index: i, Field: "alias", Value: a.Text, Reason: "empty"}
		}
	}
	return nil
}

func lowered(f func(Country) string) func(Country) string {
	return func(c Country) string { return Normalize(f(c)) }
}

// buildIndex maps key(c) to c for every country, rejecting duplicates.
func buildIndex[K comparable](space Space, countries []Country, key func(Country) K) (map[K]Country, error) {
	idx := make(map[K]Country, len(countries))
	for _, c := range countries {
		k := key(c)
		if prev, ok := idx[k]; ok {
			return nil, &DuplicateKeyError{
				Space:  space,
				Key:    fmt.Sprint(k),
				First:  prev.Name(),
				Second: c.Name(),
			}
		}
		idx[k] = c
	}
	return idx, nil
}

func (r *Registry) buildAliases() {
	r.byAlias = make(map[string]AliasEntry)
	for _, c := range r.countries {
		for _, a := range c.r.aliases {
			entry := AliasEntry{Country: c, Alias: a}
			r.aliases = append(r.aliases, entry)

			k := a.Key()
			prev, ok := r.byAlias[k]
			if !ok {
				r.byAlias[k] = entry
				continue
			}
			if prev.Country != c {
				r.conflicts = append(r.conflicts, Conflict{
					Space:   SpaceAlias,
					Key:     k,
					Country: c,
					Winner:  Match{Country: prev.Country, Space: SpaceAlias, Key: k, Alias: prev.Alias},
				})
			}
		}
	}
}

// buildUnified folds every index into one map. Earlier spaces take
// precedence: numeric code, numeric value, alpha-2, alpha-3, name,
// identifier, alias.
func (r *Registry) buildUnified() {
	r.unified = make(map[string]Match, len(r.countries)*6+len(r.aliases))
	put := func(m Match) {
		prev, ok := r.unified[m.Key]
		if !ok {
			r.unified[m.Key] = m
			return
		}
		if prev.Country != m.Country {
			r.conflicts = append(r.conflicts, Conflict{
				Space:   m.Space,
				Key:     m.Key,
				Country: m.Country,
				Winner:  prev,
			})
		}
	}

	spaces := []struct {
		space Space
		key   func(Country) string
	}{
		{SpaceNumeric, Country.Numeric},
		{SpaceValue, func(c Country) string { return strconv.Itoa(c.Value()) }},
		{SpaceAlpha2, lowered(Country.Alpha2)},
		{SpaceAlpha3, lowered(Country.Alpha3)},
		{SpaceName, Country.NameKey},
		{SpaceIdentifier, Country.Identifier},
	}
	for _, s := range spaces {
		for _, c := range r.countries {
			put(Match{Country: c, Space: s.space, Key: s.key(c)})
		}
	}
	for _, e := range r.aliases {
		k := e.Alias.Key()
		if owner, ok := r.byAlias[k]; ok && owner.Country != e.Country {
			// Already reported while building the alias index.
			continue
		}
		put(Match{Country: e.Country, Space: SpaceAlias, Key: k, Alias: e.Alias})
	}
}
