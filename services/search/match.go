package search

import "strings"

func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// containsKeyword reports whether keyword occurs in content, ignoring case.
func containsKeyword(content string, keyword string) bool {
	keyword = normalizeKeyword(keyword)
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(content), keyword)
}
