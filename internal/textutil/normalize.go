package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowedPattern = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize folds text into the comparison form used everywhere two names are
// compared: lowercase, diacritics stripped, "&" spelled "and", punctuation
// removed, and whitespace collapsed. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	out := strings.Map(asciiSpace, stripMarks(strings.ToLower(text)))
	out = strings.ReplaceAll(out, "&", "and")
	out = disallowedPattern.ReplaceAllString(out, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// asciiSpace maps Unicode spacing (no-break, thin, ideographic) to ' ' so the
// ASCII-only patterns below collapse it instead of deleting it.
func asciiSpace(r rune) rune {
	if r != ' ' && unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// stripMarks decomposes runes and drops the combining marks left behind.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
