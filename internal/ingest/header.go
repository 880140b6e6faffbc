package ingest

import (
	"fmt"

	"cohortsplit/internal"
	"cohortsplit/internal/util"
)

// Reconcile merges the two-row header of a roster export into one unique
// ordered header list and zips every data row into a Row. Fewer than two
// records yields an empty plan and no rows.
func Reconcile(records [][]string) (internal.HeaderPlan, []internal.Row) {
	if len(records) < 2 {
		return internal.HeaderPlan{}, nil
	}

	super := make([]string, len(records[0]))
	for i, h := range records[0] {
		super[i] = util.NormalizeSpace(h)
	}

	headers := make([]string, len(records[1]))
	for i, h := range records[1] {
		val := util.NormalizeSpace(h)
		// Blank detail cells take the super-header group label.
		if val == "" && i < len(super) {
			val = super[i]
		}
		headers[i] = val
	}

	uniquify(headers)

	if len(headers) >= 3 {
		headers[len(headers)-3] = internal.PlaceholderR1
		headers[len(headers)-2] = internal.PlaceholderR2
		headers[len(headers)-1] = internal.PlaceholderR3
	}

	groups := map[string][]int{}
	for i, label := range super {
		if label == "" {
			continue
		}
		groups[label] = append(groups[label], i)
	}

	rows := make([]internal.Row, 0, len(records)-2)
	for _, record := range records[2:] {
		row := internal.Row{}
		for i, name := range headers {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return internal.HeaderPlan{Headers: headers, Groups: groups}, rows
}

// uniquify renames repeated names left-to-right with "_2", "_3" suffixes,
// leaving the trailing three placeholder positions alone.
func uniquify(headers []string) {
	n := len(headers)
	stop := n - 3
	if stop < 0 {
		stop = 0
	}
	seen := map[string]int{}
	for i := 0; i < stop; i++ {
		key := headers[i]
		if key == "" {
			key = "Unnamed"
		}
		count := seen[key]
		seen[key] = count + 1
		if count == 0 {
			headers[i] = key
		} else {
			headers[i] = fmt.Sprintf("%s_%d", key, count+1)
		}
	}
}
