package cards

import "github.com/bmatcuk/doublestar/v4"

// MatchesFilter reports whether a hierarchy path is selected by the given
// glob patterns. Patterns are combined with OR; an empty pattern set selects
// everything. `*` matches within a path segment and `**` matches across
// segments. Invalid patterns match nothing.
func MatchesFilter(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
