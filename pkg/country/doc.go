// Package country resolves ISO 3166-1 country identifiers to canonical
// country records.
//
// A country can be looked up by its numeric code ("840"), numeric value
// (840), alpha-2 code ("US"), alpha-3 code ("USA"), canonical name written
// without separators ("TheUnitedStatesOfAmerica"), snake_case name
// ("the_united_states_of_america") or one of its aliases ("America",
// "UnitedStates"). All string lookups ignore case. Parse tries
// every key space at once:
//
//	us, err := country.Parse("usa")
//	gb, err := country.Parse("England")
//	mk, err := country.Parse("Macedonia") // deprecated alias of North Macedonia
//
// Former official names stay resolvable as deprecated aliases of the current
// record. Lookup reports the matched key space and alias so callers can warn
// about deprecated input.
//
// The package-level functions use a registry built lazily from embedded
// reference data. NewRegistry builds an independent registry from custom
// records. Registries are immutable and safe for concurrent use.
//
// A Country encodes to JSON, YAML and text as its alpha-2 code.
package country
