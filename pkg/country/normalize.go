package country

import (
	"strings"
	"unicode"
)

// Normalize returns the lookup key for s. It only lowercases: separators,
// surrounding whitespace and diacritics are kept, so "Türkiye" and "Turkiye"
// stay distinct keys.
func Normalize(s string) string {
	return strings.ToLower(s)
}

// compact drops whitespace and punctuation, keeping letter case.
// "Taiwan, Republic Of China" becomes "TaiwanRepublicOfChina".
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}

// nameKey is the stored name-index key for a canonical name.
func nameKey(name string) string {
	return Normalize(compact(name))
}

// identifier is the snake_case form of a canonical name: words split on
// whitespace and dashes, other punctuation dropped, joined by underscores.
// "Guinea-Bissau" becomes "guinea_bissau".
func identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.Is(unicode.Pd, r)
	})
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w = compact(w); w != "" {
			parts = append(parts, Normalize(w))
		}
	}
	return strings.Join(parts, "_")
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return s != ""
}
