package roster

import "strings"

// Matches reports whether rec's name or roll number contains term, ignoring
// case. The empty term matches everything.
func Matches(rec Record, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(rec.Name), lower) ||
		strings.Contains(strings.ToLower(rec.RollNo), lower)
}

// Filter returns the records matching term in their original order. The
// input slice is never modified.
func Filter(records []Record, term string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, term) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
