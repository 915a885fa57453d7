package rewriting

import (
	"strings"

	"github.com/jonathan/docx-humanizer/internal/patterns"
	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	connectorChance   = 0.2
	emphasisChance    = 0.25
	hedgeChance       = 0.18
	hedgeInlineChance = 0.5
	perspectiveChance = 0.2

	minSpeechWords      = 4
	minPerspectiveWords = 6
)

// addSpeechPatterns sprinkles connectors, emphasis and hedges between words.
func (h *Humanizer) addSpeechPatterns(text string, _ types.StylePreferences) string {
	words := strings.Fields(text)
	if len(words) < minSpeechWords {
		return text
	}

	if h.chance(connectorChance) {
		words = insertWord(words, h.between(1, len(words)-2), h.pick(patterns.HumanSpeech.CasualConnectors))
	}

	if h.chance(emphasisChance) {
		words = insertWord(words, h.between(0, len(words)-1), h.pick(patterns.HumanSpeech.EmphasisWords))
	}

	if h.chance(hedgeChance) {
		hedge := h.pick(patterns.HumanSpeech.HedgingWords)
		if hedge == "like" && h.chance(hedgeInlineChance) {
			words = insertWord(words, h.between(1, len(words)-1), hedge)
		} else {
			words = insertWord(words, 0, hedge)
		}
	}

	return strings.Join(words, " ")
}

// addPerspective prefixes longer ". "-separated segments with a personal framing.
func (h *Humanizer) addPerspective(text string, _ types.StylePreferences) string {
	segments := strings.Split(text, ". ")

	for i, segment := range segments {
		if wordCount(segment) < minPerspectiveWords || !h.chance(perspectiveChance) {
			continue
		}
		if containsAnyPhrase(segment, patterns.Perspectives) {
			continue
		}
		segments[i] = h.pick(patterns.Perspectives) + ", " + lowerFirst(segment)
	}

	return strings.Join(segments, ". ")
}
