package identity

import (
	"fmt"
	"strconv"

	"cohortsplit/internal/util"
)

// Registry tracks how often each identifier base has been issued in one run.
// It is explicit state handed to the caller, never package-level, so runs are
// deterministic and isolated.
type Registry struct {
	counts map[string]int
}

func NewRegistry() *Registry {
	return &Registry{counts: map[string]int{}}
}

// Assign derives the join key for one input row: two letters of the given
// name, two of the surname, plus the cohort year. Rows with no usable letters
// fall back to a base keyed on the 1-indexed row ordinal. Repeated bases get
// the occurrence count appended, so keys are unique within a run.
func (r *Registry) Assign(name, surname string, year, rowIndex int) string {
	n2 := util.LetterPrefix2(name)
	s2 := util.LetterPrefix2(surname)
	base := fmt.Sprintf("%s%s%d", n2, s2, year)
	if n2 == "" && s2 == "" {
		base = fmt.Sprintf("unk%dr%d", year, rowIndex+1)
	}
	count := r.counts[base]
	r.counts[base] = count + 1
	if count == 0 {
		return base
	}
	return base + strconv.Itoa(count+1)
}
