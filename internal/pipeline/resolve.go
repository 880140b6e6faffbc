package pipeline

import (
	"strings"

	"cohortsplit/internal"
)

// Resolver maps requested field names onto reconciled headers: exact
// case-insensitive match first, then the first case-insensitive substring hit.
// A miss is an ordinary (empty, false) result for the caller to handle.
type Resolver struct {
	headers []string
	exact   map[string]string
}

func NewResolver(headers []string) *Resolver {
	exact := make(map[string]string, len(headers))
	for _, h := range headers {
		exact[strings.ToLower(h)] = h
	}
	return &Resolver{headers: headers, exact: exact}
}

func (r *Resolver) Lookup(name string) (string, bool) {
	key := strings.ToLower(name)
	if h, ok := r.exact[key]; ok {
		return h, true
	}
	for _, h := range r.headers {
		if h != "" && strings.Contains(strings.ToLower(h), key) {
			return h, true
		}
	}
	return "", false
}

// First resolves the first name in the probe list that maps to a header.
func (r *Resolver) First(names ...string) (string, bool) {
	for _, name := range names {
		if h, ok := r.Lookup(name); ok {
			return h, true
		}
	}
	return "", false
}

// GroupText joins the usable cells of one super-header group with newlines,
// skipping the placeholder columns and the "NA"/"-" markers.
func GroupText(plan internal.HeaderPlan, row internal.Row, label string) string {
	vals := []string{}
	for _, i := range plan.Groups[label] {
		if i >= len(plan.Headers) {
			continue
		}
		name := plan.Headers[i]
		switch name {
		case internal.PlaceholderR1, internal.PlaceholderR2, internal.PlaceholderR3:
			continue
		}
		v := row[name]
		if v == "" || strings.ToUpper(v) == "NA" || v == "-" {
			continue
		}
		vals = append(vals, v)
	}
	return strings.Join(vals, "\n")
}
