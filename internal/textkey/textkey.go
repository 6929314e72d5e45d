// Package textkey canonicalizes free-text identifiers (color and size
// names) so that lookups are stable across accents, casing and stray
// whitespace in catalog data.
package textkey

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize returns the comparison key for a display string: trimmed,
// decomposed, combining marks dropped, lower-cased. It is pure and total;
// empty input yields "". Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(stripMarks(norm.NFD, s))
}

// Slugify derives a URL-safe identifier: decomposed, marks dropped,
// lower-cased, with every run outside [a-z0-9] collapsed to a single
// hyphen and leading/trailing hyphens trimmed.
func Slugify(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(stripMarks(norm.NFKD, s))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func stripMarks(form norm.Form, s string) string {
	t := transform.Chain(form, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
