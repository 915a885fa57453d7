package rewriting

import (
	"strings"

	"github.com/jonathan/docx-humanizer/internal/types"
)

// Stage names, in pipeline order.
const (
	StageSubstitution  = "substitution"
	StageContractions  = "contractions"
	StageSentenceFlow  = "sentence_flow"
	StageSpeech        = "speech_patterns"
	StageImperfections = "imperfections"
	StageFormality     = "formality"
	StagePerspective   = "perspective"
)

type stage struct {
	name  string
	apply func(text string, prefs types.StylePreferences) string
}

// Result is the outcome of humanizing one paragraph.
type Result struct {
	Text string
	// Reverted is set when the length guard discarded the transformation.
	Reverted bool
	// RevertedAt names the stage whose output tripped the guard.
	RevertedAt string
}

// Humanizer runs the seven rewrite stages over paragraph text. The pattern
// tables it reads are shared and immutable; the only state it carries is its
// random source, so one Humanizer per goroutine is required.
type Humanizer struct {
	rng    Rand
	stages []stage
}

// New returns a Humanizer drawing from rng. A nil rng uses the process-wide source.
func New(rng Rand) *Humanizer {
	if rng == nil {
		rng = globalRand{}
	}
	h := &Humanizer{rng: rng}
	h.stages = []stage{
		{StageSubstitution, h.replacePatterns},
		{StageContractions, h.addContractions},
		{StageSentenceFlow, h.varySentenceFlow},
		{StageSpeech, h.addSpeechPatterns},
		{StageImperfections, h.introduceImperfections},
		{StageFormality, h.adjustFormality},
		{StagePerspective, h.addPerspective},
	}
	return h
}

// Humanize rewrites text and returns the new paragraph text.
func (h *Humanizer) Humanize(text string, prefs types.StylePreferences) string {
	return h.Rewrite(text, prefs).Text
}

// Rewrite rewrites text and reports whether the length guard reverted it.
// Empty and whitespace-only text is returned unchanged.
func (h *Humanizer) Rewrite(text string, prefs types.StylePreferences) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: text}
	}

	original := text
	for _, s := range h.stages {
		text = s.apply(text, prefs)
		if !withinLengthFloor(text, original) {
			return Result{Text: original, Reverted: true, RevertedAt: s.name}
		}
	}

	return Result{Text: text}
}
