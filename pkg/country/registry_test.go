package country

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceDataSize(t *testing.T) {
	reg := Default()
	if reg.Len() != 250 {
		t.Errorf("Expected 250 countries, got %d", reg.Len())
	}
}

// shadowedAliases returns the alias keys of the default registry that
// resolve to another country's canonical key in the unified index.
func shadowedAliases() map[string]bool {
	keys := map[string]bool{}
	for _, c := range Default().Conflicts() {
		keys[c.Key] = true
	}
	return keys
}

func TestReferenceDataConflicts(t *testing.T) {
	conflicts := Default().Conflicts()
	for _, c := range conflicts {
		// Only aliases may lose, and only to a canonical key.
		if c.Space != SpaceAlias || c.Winner.Space == SpaceAlias {
			t.Errorf("%s key %q of %s shadowed by %s (%s)",
				c.Space, c.Key, c.Country.Name(), c.Winner.Country.Name(), c.Winner.Space)
		}
	}

	require.Len(t, conflicts, 1)
	assert.Equal(t, "samoa", conflicts[0].Key)
	assert.Equal(t, "AS", conflicts[0].Country.Alpha2())
	assert.Equal(t, "WS", conflicts[0].Winner.Country.Alpha2())
	assert.Equal(t, SpaceName, conflicts[0].Winner.Space)
}

func TestShadowedAliasStillResolvesAsAlias(t *testing.T) {
	byAlias, err := ByAlias("samoa")
	require.NoError(t, err)
	assert.Equal(t, "AS", byAlias.Alpha2())

	m, err := LookupIn(SpaceAlias, "Samoa")
	require.NoError(t, err)
	assert.Equal(t, "AS", m.Country.Alpha2())

	parsed, err := Parse("samoa")
	require.NoError(t, err)
	assert.Equal(t, "WS", parsed.Alpha2())
}

func TestReferenceDataUniqueness(t *testing.T) {
	records, err := ReferenceRecords()
	require.NoError(t, err)

	seen := map[string]map[string]string{
		"numeric": {}, "alpha2": {}, "alpha3": {}, "name": {}, "identifier": {},
	}
	check := func(space, key, name string) {
		if prev, ok := seen[space][key]; ok {
			t.Errorf("%s %q shared by %s and %s", space, key, prev, name)
		}
		seen[space][key] = name
	}
	for _, r := range records {
		check("numeric", r.Numeric, r.Name)
		check("alpha2", strings.ToUpper(r.Alpha2), r.Name)
		check("alpha3", strings.ToUpper(r.Alpha3), r.Name)
		check("name", nameKey(r.Name), r.Name)
		check("identifier", identifier(r.Name), r.Name)
	}
}

func TestRoundTripCompleteness(t *testing.T) {
	shadowed := shadowedAliases()
	for _, c := range All() {
		got, err := ByNumericCode(c.Numeric())
		require.NoError(t, err, "ByNumericCode(%s)", c.Numeric())
		assert.Equal(t, c, got)

		got, err = ByNumericValue(c.Value())
		require.NoError(t, err, "ByNumericValue(%d)", c.Value())
		assert.Equal(t, c, got)

		got, err = ByAlpha2(c.Alpha2())
		require.NoError(t, err, "ByAlpha2(%s)", c.Alpha2())
		assert.Equal(t, c, got)

		got, err = ByAlpha3(c.Alpha3())
		require.NoError(t, err, "ByAlpha3(%s)", c.Alpha3())
		assert.Equal(t, c, got)

		got, err = ByName(c.NameKey())
		require.NoError(t, err, "ByName(%s)", c.NameKey())
		assert.Equal(t, c, got)

		got, err = ByName(c.String())
		require.NoError(t, err, "ByName(%s)", c)
		assert.Equal(t, c, got)

		got, err = ByIdentifier(c.Identifier())
		require.NoError(t, err, "ByIdentifier(%s)", c.Identifier())
		assert.Equal(t, c, got)

		for _, key := range []string{c.Numeric(), strconv.Itoa(c.Value()), c.Alpha2(), c.Alpha3(), c.String(), c.Identifier()} {
			got, err = Parse(key)
			require.NoError(t, err, "Parse(%s)", key)
			assert.Equal(t, c, got, "Parse(%s)", key)
		}

		for _, a := range c.Aliases() {
			got, err = ByAlias(a.Text)
			require.NoError(t, err, "ByAlias(%s)", a.Text)
			assert.Equal(t, c, got, "ByAlias(%s)", a.Text)

			if shadowed[a.Key()] {
				continue
			}
			got, err = Parse(a.Text)
			require.NoError(t, err, "Parse(%s)", a.Text)
			assert.Equal(t, c, got, "Parse(%s)", a.Text)
		}
	}
}

func TestNumericCodeScenario(t *testing.T) {
	c, err := ByNumericCode("004")
	require.NoError(t, err)
	assert.Equal(t, "AF", c.Alpha2())

	for _, code := range []string{"4", "04", "0004", " 004"} {
		_, err := ByNumericCode(code)
		assert.ErrorIs(t, err, ErrNotFound, "ByNumericCode(%q)", code)
	}

	byValue, err := ByNumericValue(4)
	require.NoError(t, err)
	assert.Equal(t, c, byValue)

	byAny, err := Parse("4")
	require.NoError(t, err)
	assert.Equal(t, c, byAny)

	_, err = Parse("04")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNegativeLookups(t *testing.T) {
	_, err := Parse("zzzznotacountry")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ByAlpha2("zz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ByNumericValue(1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ByNumericValue(-4)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	_, err = ByAlias("us")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "us", nf.Input)
	assert.Equal(t, SpaceAlias, nf.Space)
}

func TestIndexesDoNotFallBack(t *testing.T) {
	// Aliases are not names.
	_, err := ByName("russianfederation")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = ByName("unitedstatesofamerica")
	assert.ErrorIs(t, err, ErrNotFound)

	// Codes are not aliases.
	_, err = ByAlias("us")
	assert.ErrorIs(t, err, ErrNotFound)

	// Names are not aliases.
	_, err = ByAlias("theunitedstatesofamerica")
	assert.ErrorIs(t, err, ErrNotFound)

	// Spaces are not stripped from input.
	_, err = ByName("The United States Of America")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseEquivalentInputs(t *testing.T) {
	tests := []struct {
		alpha2 string
		inputs []string
	}{
		{"US", []string{"USA", "US", "840", "America", "UnitedStates", "TheUnitedStatesOfAmerica",
			"united states", "the_united_states_of_america", "united_states_of_america"}},
		{"GB", []string{"England", "gb", "Scotland", "NorthernIreland", "TheUnitedKingdomOfGreatBritainAndNorthernIreland"}},
		{"RU", []string{"Russia", "rus", "643", "RussianFederation", "TheRussianFederation"}},
		{"NL", []string{"Holland", "Netherlands", "NLD"}},
		{"TW", []string{"Taiwan", "台灣", "中華民國", "RepublicOfChina", "TaiwanRepublicOfChina",
			"taiwan,republicofchina", "taiwan_republic_of_china"}},
		{"WS", []string{"samoa", "WSM", "882"}},
		{"AS", []string{"AmericanSamoa", "american_samoa", "ASM", "16"}},
		{"AX", []string{"aland_islands", "AlandIslands"}},
		{"GW", []string{"guinea_bissau", "GuineaBissau"}},
		{"CI", []string{"coted_ivoire", "CotedIvoire"}},
		{"NL", []string{"the_netherlands"}},
		{"SX", []string{"SintMaarten", "sintmaarten", "dutch_part_sint_maarten"}},
		{"TR", []string{"türkiye", "Turkiye", "Turkey"}},
	}

	for _, tc := range tests {
		t.Run(tc.alpha2, func(t *testing.T) {
			for _, input := range tc.inputs {
				c, err := Parse(input)
				require.NoError(t, err, "Parse(%q)", input)
				assert.Equal(t, tc.alpha2, c.Alpha2(), "Parse(%q)", input)
			}
		})
	}
}

func TestDeprecatedAliasStability(t *testing.T) {
	tests := []struct {
		former  string
		current string
		alpha2  string
	}{
		{"Macedonia", "RepublicOfNorthMacedonia", "MK"},
		{"FormerYugoslavRepublicOfMacedonia", "RepublicOfNorthMacedonia", "MK"},
		{"Turkey", "Türkiye", "TR"},
		{"Burma", "Myanmar", "MM"},
		{"Swaziland", "Eswatini", "SZ"},
		{"CapeVerde", "CaboVerde", "CV"},
		{"IvoryCoast", "CotedIvoire", "CI"},
	}

	for _, tc := range tests {
		t.Run(tc.former, func(t *testing.T) {
			current, err := ByName(tc.current)
			require.NoError(t, err)
			assert.Equal(t, tc.alpha2, current.Alpha2())

			former, err := ByAlias(tc.former)
			require.NoError(t, err)
			assert.Equal(t, current, former)

			m, err := Lookup(tc.former)
			require.NoError(t, err)
			assert.Equal(t, current, m.Country)
			assert.Equal(t, SpaceAlias, m.Space)
			assert.True(t, m.Deprecated())
			assert.NotEmpty(t, m.Alias.Note)
		})
	}
}

func TestCurrentAliasIsNotDeprecated(t *testing.T) {
	m, err := Lookup("Turkiye")
	require.NoError(t, err)
	assert.Equal(t, "TR", m.Country.Alpha2())
	assert.False(t, m.Deprecated())

	m, err = Lookup("TR")
	require.NoError(t, err)
	assert.Equal(t, SpaceAlpha2, m.Space)
	assert.False(t, m.Deprecated())
}

func TestDiacriticsAreDistinctKeys(t *testing.T) {
	byName, err := ByName("türkiye")
	require.NoError(t, err)

	// "turkiye" is only reachable because it is registered as an alias.
	_, err = ByName("turkiye")
	assert.ErrorIs(t, err, ErrNotFound)

	byAlias, err := ByAlias("TURKIYE")
	require.NoError(t, err)
	assert.Equal(t, byName, byAlias)

	withDiacritic, err := ByAlias("Türkiye")
	require.NoError(t, err)
	assert.Equal(t, byName, withDiacritic)
}

func TestDeprecatedAliases(t *testing.T) {
	deprecated := Default().DeprecatedAliases()
	require.NotEmpty(t, deprecated)

	var texts []string
	for _, e := range deprecated {
		assert.True(t, e.Alias.Deprecated)
		texts = append(texts, e.Alias.Text)
	}
	assert.Subset(t, texts, []string{"Macedonia", "Turkey", "Burma", "Swaziland", "CapeVerde", "IvoryCoast"})
	assert.Less(t, len(deprecated), len(Default().Aliases()))
}

func TestLookupIn(t *testing.T) {
	tests := []struct {
		space  Space
		input  string
		alpha2 string
	}{
		{SpaceAny, "holland", "NL"},
		{SpaceNumeric, "528", "NL"},
		{SpaceValue, "4", "AF"},
		{SpaceValue, "004", "AF"},
		{SpaceAlpha2, "nl", "NL"},
		{SpaceAlpha3, "nld", "NL"},
		{SpaceName, "TheNetherlands", "NL"},
		{SpaceAlias, "Holland", "NL"},
		{SpaceIdentifier, "The_Netherlands", "NL"},
	}

	for _, tc := range tests {
		m, err := LookupIn(tc.space, tc.input)
		require.NoError(t, err, "LookupIn(%s, %q)", tc.space, tc.input)
		assert.Equal(t, tc.alpha2, m.Country.Alpha2())
		if tc.space != SpaceAny {
			assert.Equal(t, tc.space, m.Space)
		}
	}

	misses := []struct {
		space Space
		input string
	}{
		{SpaceValue, "four"},
		{SpaceValue, "9999"},
		{SpaceNumeric, "4"},
		{SpaceAlpha2, "nld"},
		{SpaceAlias, "nl"},
		{SpaceIdentifier, "thenetherlands"},
		{Space(99), "nl"},
	}
	for _, tc := range misses {
		_, err := LookupIn(tc.space, tc.input)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf, "LookupIn(%s, %q)", tc.space, tc.input)
		assert.Equal(t, tc.input, nf.Input)
	}
}

func TestAllIsSortedAndCopied(t *testing.T) {
	all := All()
	require.Len(t, all, Default().Len())
	for i := 1; i < len(all); i++ {
		if all[i-1].Compare(all[i]) >= 0 {
			t.Errorf("All() not sorted at %d: %s >= %s", i, all[i-1], all[i])
		}
	}

	all[0] = Country{}
	assert.False(t, All()[0].IsZero())
}

func TestDefaultConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	regs := make([]*Registry, 16)
	for i := range regs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			regs[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, r := range regs {
		assert.Same(t, regs[0], r)
	}
}
