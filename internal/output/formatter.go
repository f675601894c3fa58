// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hightemp/isocountry/internal/config"
	"github.com/hightemp/isocountry/pkg/country"
)

// TextFormatter is implemented by every printable result.
type TextFormatter interface {
	FormatText() string
}

// LookupResult contains the result of a country lookup.
type LookupResult struct {
	Input      string `json:"input" yaml:"input"`
	Alpha2     string `json:"alpha2,omitempty" yaml:"alpha2,omitempty"`
	Alpha3     string `json:"alpha3,omitempty" yaml:"alpha3,omitempty"`
	Numeric    string `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Display    string `json:"display,omitempty" yaml:"display,omitempty"`
	MatchedBy  string `json:"matched_by,omitempty" yaml:"matched_by,omitempty"`
	Alias      string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Note       string `json:"note,omitempty" yaml:"note,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewLookupResult builds a result row from a lookup outcome.
func NewLookupResult(input string, m country.Match, err error) *LookupResult {
	result := &LookupResult{Input: input}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	c := m.Country
	result.Alpha2 = c.Alpha2()
	result.Alpha3 = c.Alpha3()
	result.Numeric = c.Numeric()
	result.Name = c.Name()
	result.Display = c.Display()
	result.MatchedBy = m.Space.String()
	if m.Space == country.SpaceAlias {
		result.Alias = m.Alias.Text
		result.Deprecated = m.Alias.Deprecated
		result.Note = m.Alias.Note
	}
	return result
}

// FormatText formats result as tab-separated text.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return FormatError(r.Input, r.Error)
	}

	line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s",
		r.Input,
		r.Alpha2,
		r.Alpha3,
		r.Numeric,
		r.Name,
		r.MatchedBy,
	)
	if r.Deprecated {
		line += "\tDEPRECATED: " + r.Alias
		if r.Note != "" {
			line += " (" + r.Note + ")"
		}
	}
	return line
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	return formatJSON(r)
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	return formatJSON(b.Results)
}

// Failed returns the number of results carrying an error.
func (b *BatchResult) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Error != "" {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the batch as a bare array.
func (b *BatchResult) MarshalJSON() ([]byte, error) {
	if b.Results == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.Results)
}

// MarshalYAML encodes the batch as a bare sequence.
func (b *BatchResult) MarshalYAML() (any, error) {
	if b.Results == nil {
		return []*LookupResult{}, nil
	}
	return b.Results, nil
}

// CountryRow is one country in a listing.
type CountryRow struct {
	Numeric string   `json:"numeric" yaml:"numeric"`
	Alpha2  string   `json:"alpha2" yaml:"alpha2"`
	Alpha3  string   `json:"alpha3" yaml:"alpha3"`
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// NewCountryRow builds a listing row for c.
func NewCountryRow(c country.Country) CountryRow {
	row := CountryRow{
		Numeric: c.Numeric(),
		Alpha2:  c.Alpha2(),
		Alpha3:  c.Alpha3(),
		Name:    c.Name(),
	}
	for _, a := range c.Aliases() {
		row.Aliases = append(row.Aliases, a.Text)
	}
	return row
}

// CountryList is a listing of countries.
type CountryList []CountryRow

// FormatText formats the listing with one country per line.
func (l CountryList) FormatText() string {
	lines := make([]string, 0, len(l))
	for _, r := range l {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s", r.Numeric, r.Alpha2, r.Alpha3, r.Name))
	}
	return strings.Join(lines, "\n")
}

// AliasRow is one alias in a listing.
type AliasRow struct {
	Alias      string `json:"alias" yaml:"alias"`
	Alpha2     string `json:"alpha2" yaml:"alpha2"`
	Name       string `json:"name" yaml:"name"`
	Deprecated bool   `json:"deprecated" yaml:"deprecated"`
	Note       string `json:"note,omitempty" yaml:"note,omitempty"`
}

// AliasList is a listing of aliases.
type AliasList []AliasRow

// NewAliasList builds a listing from alias entries.
func NewAliasList(entries []country.AliasEntry) AliasList {
	list := make(AliasList, 0, len(entries))
	for _, e := range entries {
		list = append(list, AliasRow{
			Alias:      e.Alias.Text,
			Alpha2:     e.Country.Alpha2(),
			Name:       e.Country.Name(),
			Deprecated: e.Alias.Deprecated,
			Note:       e.Alias.Note,
		})
	}
	return list
}

// FormatText formats the listing with one alias per line.
func (l AliasList) FormatText() string {
	lines := make([]string, 0, len(l))
	for _, r := range l {
		line := fmt.Sprintf("%s\t%s\t%s", r.Alias, r.Alpha2, r.Name)
		if r.Deprecated {
			line += "\tDEPRECATED"
			if r.Note != "" {
				line += ": " + r.Note
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Render writes v to w in the given format followed by a newline.
func Render(w io.Writer, format string, v TextFormatter) error {
	var (
		out string
		err error
	)
	switch format {
	case config.FormatJSON:
		out, err = formatJSON(v)
	case config.FormatYAML:
		out, err = formatYAML(v)
	case config.FormatText, "":
		out = v.FormatText()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// FormatError formats an error line for batch output.
func FormatError(input, msg string) string {
	return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", input, msg)
}

func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
