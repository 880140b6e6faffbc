package extract

import (
	"regexp"
	"strings"

	"cohortsplit/internal"
	"cohortsplit/internal/util"
)

var (
	// Trailing-slash artifact: "15/08/" -> "15/08".
	reDateArtifact = regexp.MustCompile(`\b(\d{1,2}/\d{2})/(\s|$)`)
	// Dates like 15/08 or 15/08/2024; only day/month make it into the token.
	reDate      = regexp.MustCompile(`\b(\d{1,2})/(\d{2})(?:/(\d{2,4}))?\b`)
	reDigitsRun = regexp.MustCompile(`\d+`)
)

// SplitComments pulls embedded date and time tokens out of a narrative cell.
// Dates come first in order of appearance, then standalone 4-digit times,
// both deduplicated; every collected token is removed from the text as a
// whole word. Tokens are purely textual, with no calendar validation.
func SplitComments(text string) internal.CommentSplit {
	if text == "" {
		return internal.CommentSplit{}
	}

	t := reDateArtifact.ReplaceAllString(text, "$1$2")

	tokens := []string{}
	seen := map[string]bool{}
	for _, m := range reDate.FindAllStringSubmatch(t, -1) {
		token := m[1] + "/" + m[2]
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	// Times like 0515. RE2 has no lookaround, so runs of exactly four digits
	// stand in for (?<!\d)\d{4}(?!\d).
	for _, run := range reDigitsRun.FindAllString(t, -1) {
		if len(run) == 4 && !seen[run] {
			seen[run] = true
			tokens = append(tokens, run)
		}
	}

	cleaned := t
	for _, token := range tokens {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
		cleaned = re.ReplaceAllString(cleaned, " ")
	}

	return internal.CommentSplit{
		Tokens: strings.Join(tokens, " "),
		Text:   util.NormalizeSpace(cleaned),
	}
}
