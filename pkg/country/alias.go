package country

// Alias is an alternate identifier of a country. Text is stored without
// separators ("UnitedKingdom", not "United Kingdom").
//
// Deprecated marks a former official designation, such as "Swaziland" for
// Eswatini. It is documentation only: deprecated aliases resolve exactly like
// current ones.
type Alias struct {
	Text       string `yaml:"text" json:"text"`
	Deprecated bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Note       string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Key returns the alias-index key of a.
func (a Alias) Key() string {
	return Normalize(a.Text)
}

// AliasEntry pairs an alias with the country it resolves to.
type AliasEntry struct {
	Country Country
	Alias   Alias
}

// Conflict records a key that could not be registered because an earlier
// entry already owns it in the unified or alias index. The earlier entry
// wins.
type Conflict struct {
	Space   Space
	Key     string
	Country Country
	Winner  Match
}
