package rewriting

import "strings"

// containsAnyPhrase reports whether text contains one of phrases verbatim.
func containsAnyPhrase(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if phrase != "" && strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
