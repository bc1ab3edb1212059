package save

import "regexp"

// sourceRepoPattern matches the SOURCE_REPO assignment embedded in the save's
// Lua script. The quoted value must be an http(s) URL or a bare www. hostname
// with at least one dot-separated label.
var sourceRepoPattern = regexp.MustCompile(
	`SOURCE_REPO\s?=\s?'(https?://(?:www\.)?[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.[^\s']{2,}|www\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.[^\s']{2,})'`,
)

// ExtractSourceURL scans the embedded script text for the content repository
// URL. It returns the first configured URL and true, or "" and false when the
// script does not configure one.
func ExtractSourceURL(script string) (string, bool) {
	m := sourceRepoPattern.FindStringSubmatch(script)
	if m == nil {
		return "", false
	}
	return m[1], true
}
