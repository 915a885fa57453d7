package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/docx-humanizer/internal/patterns"
	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	// fragmentGate and fragmentChance are rolled independently; both must pass.
	fragmentGate      = 0.3
	fragmentChance    = 0.1
	questionChance    = 0.05
	exclamationChance = 0.08
	starterChance     = 0.15
	restructureChance = 0.3
	combineChance     = 0.3
	endingChance      = 0.1

	minVariedWords   = 3
	minFragmentWords = 5
	maxCombinedWords = 8
)

var (
	terminatedSentence = regexp.MustCompile(`([.!?]+)\s*`)
	sentenceTerminator = regexp.MustCompile(`[.!?]+`)
	sentenceEndings    = []string{".", "!", "..."}
)

// varySentenceFlow rewrites sentences one at a time, keeping each sentence's
// terminator, then occasionally restructures the result.
func (h *Humanizer) varySentenceFlow(text string, _ types.StylePreferences) string {
	var sb strings.Builder
	position := 0
	emit := func(sentence, terminator string) {
		if sentence = strings.TrimSpace(sentence); sentence != "" {
			sb.WriteString(h.varySentence(sentence, terminator, position))
			sb.WriteString(" ")
		}
		position++
	}

	prev := 0
	for _, m := range terminatedSentence.FindAllStringSubmatchIndex(text, -1) {
		emit(text[prev:m[0]], text[m[2]:m[3]])
		prev = m[1]
	}
	emit(text[prev:], ".")

	result := strings.TrimSpace(sb.String())
	if h.chance(restructureChance) {
		result = h.restructureSentences(result)
	}
	return result
}

// varySentence applies the per-sentence variations to sentence and returns it
// with its terminator. Sentences under three words come back untouched.
func (h *Humanizer) varySentence(sentence, terminator string, position int) string {
	words := strings.Fields(sentence)
	if len(words) < minVariedWords {
		return sentence + terminator
	}

	if h.chance(fragmentGate) && h.chance(fragmentChance) && len(words) >= minFragmentWords {
		return strings.Join(words[:h.between(2, len(words)-1)], " ") + terminator
	}

	sentence += terminator

	if h.chance(questionChance) && !strings.HasSuffix(sentence, "?") {
		sentence = strings.TrimRight(sentence, ".!") + "?"
	}

	if h.chance(exclamationChance) && !strings.HasSuffix(sentence, "!") {
		sentence = strings.TrimRight(sentence, ".?") + "!"
	}

	if position > 0 && h.chance(starterChance) {
		sentence = h.pick(patterns.HumanSpeech.SentenceStarters) + " " + lowerFirst(sentence)
	}

	return sentence
}

// restructureSentences occasionally joins short neighbouring sentences and
// varies sentence endings. Text with fewer than two sentences is returned as is.
func (h *Humanizer) restructureSentences(text string) string {
	var sentences []string
	for _, s := range sentenceTerminator.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) < 2 {
		return text
	}

	if h.chance(combineChance) {
		combined := make([]string, 0, len(sentences))
		for i := 0; i < len(sentences); {
			if i < len(sentences)-1 &&
				wordCount(sentences[i]) < maxCombinedWords &&
				wordCount(sentences[i+1]) < maxCombinedWords {
				combined = append(combined, sentences[i]+", and "+lowerFirst(sentences[i+1]))
				i += 2
				continue
			}
			combined = append(combined, sentences[i])
			i++
		}
		sentences = combined
	}

	var sb strings.Builder
	for _, s := range sentences {
		ending := "."
		if h.chance(endingChance) {
			ending = h.pick(sentenceEndings)
		}
		sb.WriteString(s)
		sb.WriteString(ending)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
