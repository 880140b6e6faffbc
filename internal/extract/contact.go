package extract

import (
	"regexp"
	"strings"

	"cohortsplit/internal"
	"cohortsplit/internal/util"
)

const (
	slotPrimary = iota
	slotWhatsApp
	slotAlternate
)

// Label rules are evaluated top-to-bottom per line; the first matching rule
// claims the line's first phone token.
var contactRules = []struct {
	label *regexp.Regexp
	slot  int
}{
	{regexp.MustCompile(`(?i)whats\s*app|whatsapp`), slotWhatsApp},
	{regexp.MustCompile(`(?i)altern|alt`), slotAlternate},
	{regexp.MustCompile(`(?i)kontak|bel|call|primary`), slotPrimary},
}

// Contacts splits a free-text contact cell into primary/WhatsApp/alternate
// numbers. Pass one assigns labeled lines; pass two fills the remaining slots
// in order from unassigned phone tokens. Zero matches is not an error.
func Contacts(text string) internal.ContactTriple {
	if text == "" {
		return internal.ContactTriple{}
	}

	lines := nonBlankLines(text)
	var slots [3]*string

	for _, line := range lines {
		phone := util.RePhone.FindString(line)
		if phone == "" {
			continue
		}
		num := util.NormalizePhone(phone)
		for _, rule := range contactRules {
			if rule.label.MatchString(line) {
				if slots[rule.slot] == nil {
					slots[rule.slot] = util.StringPtr(num)
				}
				break
			}
		}
	}

	assigned := map[string]bool{}
	for _, s := range slots {
		if s != nil {
			assigned[*s] = true
		}
	}
	remaining := []string{}
	for _, line := range lines {
		for _, phone := range util.RePhone.FindAllString(line, -1) {
			num := util.NormalizePhone(phone)
			if !assigned[num] {
				remaining = append(remaining, num)
			}
		}
	}
	for _, num := range remaining {
		switch {
		case slots[slotPrimary] == nil:
			slots[slotPrimary] = util.StringPtr(num)
		case slots[slotWhatsApp] == nil:
			slots[slotWhatsApp] = util.StringPtr(num)
		case slots[slotAlternate] == nil:
			slots[slotAlternate] = util.StringPtr(num)
		}
	}

	return internal.ContactTriple{
		Primary:   slots[slotPrimary],
		WhatsApp:  slots[slotWhatsApp],
		Alternate: slots[slotAlternate],
	}
}

func nonBlankLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
