package search

import "strings"

// Matches reports whether needle fuzzily matches haystack. An empty needle
// matches everything; an empty haystack matches nothing else. Both sides are
// case-folded. Exact substrings win immediately; otherwise the needle matches
// when its characters appear in the haystack in order, not necessarily
// adjacent. This is a boolean predicate, not a ranking; result order is the
// caller's concern.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	if haystack == "" {
		return false
	}

	h := strings.ToLower(haystack)
	n := strings.ToLower(needle)
	if strings.Contains(h, n) {
		return true
	}

	want := []rune(n)
	i := 0
	for _, r := range h {
		if r == want[i] {
			i++
			if i == len(want) {
				return true
			}
		}
	}
	return false
}

// MatchesAny reports whether needle matches at least one of the fields.
func MatchesAny(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if Matches(f, needle) {
			return true
		}
	}
	return false
}
