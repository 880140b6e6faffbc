package extract

import (
	"regexp"
	"strings"

	"cohortsplit/internal"
	"cohortsplit/internal/util"
)

// Afrikaans guardian labels as they appear in the roster's free-text block.
var (
	reParentName = regexp.MustCompile(`(?i)Ouer/Voog\s*se\s*volle\s*naam\s*(.*)`)
	reParentOf   = regexp.MustCompile(`(?i)Ouer/Voog\s*van\s*(.*)`)
	reParentTel  = regexp.MustCompile(`(?i)Kontak\s*nr\s*([+\d][\d\s\-]+)`)
)

// Parent extracts a guardian name and contact number from one free-text cell.
// The literal placeholder "NA" clears a name; an unlabeled phone token serves
// as the contact fallback. No match yields absent fields, not an error.
func Parent(text string) internal.ParentInfo {
	if text == "" {
		return internal.ParentInfo{}
	}

	var name, contact *string

	if m := reParentName.FindStringSubmatch(text); m != nil {
		val := strings.TrimSpace(m[1])
		if val != "" && !strings.EqualFold(val, "NA") {
			name = util.StringPtr(val)
		}
	}
	if m := reParentOf.FindStringSubmatch(text); m != nil {
		val := strings.TrimSpace(m[1])
		if val != "" && !strings.EqualFold(val, "NA") {
			if name != nil && !strings.Contains(*name, val) {
				name = util.StringPtr(*name + " " + val)
			} else if name == nil {
				name = util.StringPtr(val)
			}
		}
	}

	if m := reParentTel.FindStringSubmatch(text); m != nil {
		contact = util.StringPtr(util.NormalizePhone(m[1]))
	}
	if contact == nil {
		if phone := util.RePhone.FindString(text); phone != "" {
			contact = util.StringPtr(util.NormalizePhone(phone))
		}
	}

	if name != nil {
		name = util.StringPtr(util.NormalizeSpace(*name))
	}
	return internal.ParentInfo{Name: name, Contact: contact}
}
