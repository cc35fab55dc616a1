// Package slug builds URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	dashes     = regexp.MustCompile(`-+`)
)

// Make lowercases name, strips accents, drops anything that is not an ASCII
// word character, whitespace or dash, and joins words with single dashes.
//
//	Make("Gianini Guitarras") == "gianini-guitarras"
//	Make("Tagima São Paulo")  == "tagima-sao-paulo"
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = stripMarks(s)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// stripMarks decomposes s and removes combining marks, so "ç" becomes "c".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
