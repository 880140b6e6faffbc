package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	RePhone    = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reDashes   = regexp.MustCompile(`[\s\-]`)
	reNonPhone = regexp.MustCompile(`[^\d+]`)
)

var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeSpace collapses all whitespace, embedded newlines included, to
// single spaces and trims the ends.
func NormalizeSpace(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// NormalizePhone strips spacing and keeps only digits plus a single leading "+".
func NormalizePhone(raw string) string {
	s := reDashes.ReplaceAllString(raw, "")
	plus := strings.HasPrefix(s, "+")
	s = reNonPhone.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "+", "")
	if plus {
		return "+" + s
	}
	return s
}

// StripDiacritics removes combining marks after NFKD decomposition.
func StripDiacritics(input string) string {
	out, _, err := transform.String(deaccent, input)
	if err != nil {
		return input
	}
	return out
}

// LetterPrefix2 returns the first two ASCII letters of the accent-stripped,
// lowercased input.
func LetterPrefix2(input string) string {
	if input == "" {
		return ""
	}
	s := StripDiacritics(input)
	letters := strings.Builder{}
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters.WriteRune(unicode.ToLower(r))
			if letters.Len() == 2 {
				break
			}
		}
	}
	return letters.String()
}

func StringPtr(s string) *string { return &s }
