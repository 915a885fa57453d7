package rewriting

import (
	"strings"
	"unicode/utf8"
)

// lengthFloor is the minimum share of the original trimmed length a stage may leave behind
const lengthFloor = 0.3

// tooShort reports whether rewritten has collapsed below the length floor of original.
func tooShort(rewritten, original string) bool {
	if rewritten == "" {
		return true
	}
	return float64(ComputeLengthChars(rewritten)) < float64(ComputeLengthChars(original))*lengthFloor
}

// ComputeLengthChars returns the rune length of text with surrounding whitespace removed.
func ComputeLengthChars(text string) int {
	return utf8.RuneCountInString(strings.TrimSpace(text))
}

// withinLengthFloor reports whether rewritten is an acceptable replacement for original:
// either long enough or identical to it.
func withinLengthFloor(rewritten, original string) bool {
	return rewritten == original || !tooShort(rewritten, original)
}
