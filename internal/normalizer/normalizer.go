package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean canonicalizes raw scraped text: NFKC compatibility folding brings
// full-width digits, Latin letters and form variants down to their
// half-width equivalents (００８ → 008, ＡＢＣ → ABC), then every whitespace
// codepoint is dropped, including the ideographic space U+3000, tabs and
// newlines. Total and idempotent; empty input comes back unchanged.
func Clean(text string) string {
	if text == "" {
		return text
	}
	t := transform.Chain(norm.NFKC, runes.Remove(runes.Predicate(unicode.IsSpace)))
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
