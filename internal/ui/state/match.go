package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/roster/internal/roster"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatchIndex picks the row the cursor should land on after the filter
// term changes. Exact name or roll number matches win, then prefixes, then
// the closest fuzzy match over name and roll number.
func BestMatchIndex(items []roster.Record, term string) int {
	if len(items) == 0 || term == "" {
		return 0
	}
	lower := strings.ToLower(term)
	for i, item := range items {
		if strings.ToLower(item.Name) == lower || strings.ToLower(item.RollNo) == lower {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Name), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.RollNo), lower) {
			return i
		}
	}

	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = item.Name + " " + item.RollNo
	}
	ranks := fuzzy.RankFindNormalizedFold(term, targets)
	if len(ranks) == 0 {
		return 0
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].OriginalIndex
}
