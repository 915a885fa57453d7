package rewriting

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/docx-humanizer/internal/patterns"
	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	dropCommaChance  = 0.1
	extraSpaceChance = 0.05
	lowercaseChance  = 0.08
)

// introduceImperfections adds small slips: a dropped comma, a stray blank,
// lowercase sentence starts. Doubled words are always collapsed.
func (h *Humanizer) introduceImperfections(text string, _ types.StylePreferences) string {
	if h.chance(dropCommaChance) {
		text = strings.Replace(text, ",", "", 1)
	}

	if h.chance(extraSpaceChance) {
		if words := strings.Fields(text); len(words) > 2 {
			words = insertWord(words, h.between(1, len(words)-1), " ")
			text = strings.Join(words, " ")
		}
	}

	text = CollapseDoubledWords(text)

	if h.chance(lowercaseChance) {
		text = lowercaseSentenceStarts(text)
	}

	return text
}

// CollapseDoubledWords reduces "the the", "and and" and "to to" to one word.
func CollapseDoubledWords(text string) string {
	for _, d := range patterns.DoubledWords {
		text = d.Pattern.ReplaceAllLiteralString(text, d.Word)
	}
	return text
}

// lowercaseSentenceStarts lowercases the initial of every ". "-separated
// segment after the first.
func lowercaseSentenceStarts(text string) string {
	segments := strings.Split(text, ". ")
	if len(segments) < 2 {
		return text
	}

	for i := 1; i < len(segments); i++ {
		r, _ := utf8.DecodeRuneInString(segments[i])
		if segments[i] != "" && unicode.IsUpper(r) {
			segments[i] = lowerFirst(segments[i])
		}
	}
	return strings.Join(segments, ". ")
}
