package note

import (
	"sort"
	"strings"
)

// Filter keeps the summaries whose title contains query, ignoring case.
// An empty query keeps everything.
func Filter(notes []Summary, query string) []Summary {
	q := strings.ToLower(query)
	out := make([]Summary, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) {
			out = append(out, n)
		}
	}
	return out
}

// SortByDate orders summaries most recent first. A pair where either date
// did not parse compares equal, so undated notes keep their relative
// position and are never dropped.
func SortByDate(notes []Summary) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		if !a.Dated() || !b.Dated() {
			return false
		}
		return a.Time.After(b.Time)
	})
}
