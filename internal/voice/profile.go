// Package voice derives document-wide style preferences from a sample of its prose.
package voice

import (
	"regexp"
	"strings"

	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	// formalMarkerRatio is the share of sentences that must carry a formal connective
	formalMarkerRatio = 0.1
	// contractionRatio is the share of sentences that must carry a contraction
	contractionRatio = 0.3
)

var (
	sentenceSplitter = regexp.MustCompile(`[.!?]+`)
	formalMarkers    = regexp.MustCompile(`(?i)\b(however|moreover|thus|therefore|consequently)\b`)
	contractionShape = regexp.MustCompile(`\w+'\w+`)
)

// Analyze returns the style preferences for sample. It is deterministic and
// returns the zero (neutral) preferences for an empty sample.
func Analyze(sample string) types.StylePreferences {
	return Profile(sample).Preferences
}

// Profile computes the sentence statistics behind Analyze.
func Profile(sample string) types.StyleProfile {
	if strings.TrimSpace(sample) == "" {
		return types.StyleProfile{}
	}

	// The trailing piece after the final terminator is counted, matching a plain split.
	sentences := sentenceSplitter.Split(sample, -1)
	sentenceCount := len(sentences)

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}

	profile := types.StyleProfile{
		SentenceCount:         sentenceCount,
		AverageSentenceLength: float64(totalWords) / float64(max(sentenceCount, 1)),
		FormalMarkers:         len(formalMarkers.FindAllStringIndex(sample, -1)),
		Contractions:          len(contractionShape.FindAllStringIndex(sample, -1)),
	}

	if float64(profile.FormalMarkers) > float64(sentenceCount)*formalMarkerRatio {
		profile.Preferences.Formality = types.FormalityFormal
	} else {
		profile.Preferences.Formality = types.FormalityCasual
	}

	if float64(profile.Contractions) > float64(sentenceCount)*contractionRatio {
		profile.Preferences.ContractionDensity = types.ContractionsHigh
	} else {
		profile.Preferences.ContractionDensity = types.ContractionsLow
	}

	return profile
}

// SampleBuilder accumulates the opening paragraphs of a document into a profiling sample.
type SampleBuilder struct {
	limit int
	seen  int
	sb    strings.Builder
}

// NewSampleBuilder returns a builder that keeps at most limit non-empty paragraphs.
func NewSampleBuilder(limit int) *SampleBuilder {
	return &SampleBuilder{limit: limit}
}

// Add offers a paragraph to the sample. Blank paragraphs are skipped and
// paragraphs past the limit are ignored.
func (b *SampleBuilder) Add(paragraph string) {
	if b.seen >= b.limit || strings.TrimSpace(paragraph) == "" {
		return
	}
	b.seen++
	b.sb.WriteString(paragraph)
	b.sb.WriteString(" ")
}

// Full reports whether the limit has been reached.
func (b *SampleBuilder) Full() bool {
	return b.seen >= b.limit
}

// String returns the accumulated sample.
func (b *SampleBuilder) String() string {
	return b.sb.String()
}
