package rewriting

import (
	"github.com/jonathan/docx-humanizer/internal/patterns"
	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	contractionChanceHigh = 0.8
	contractionChanceLow  = 0.6
	formalitySwapChance   = 0.7
)

// replacePatterns swaps cliché and jargon phrases. Each matching rule picks one
// candidate per call and uses it for every occurrence.
func (h *Humanizer) replacePatterns(text string, _ types.StylePreferences) string {
	for _, table := range []patterns.Table{patterns.AICliches, patterns.CorporateJargon} {
		for _, rule := range table {
			if !rule.Match(text) {
				continue
			}
			text = rule.ReplaceAll(text, h.pick(rule.Candidates))
		}
	}
	return text
}

// addContractions contracts expanded forms, each rule rolled independently.
func (h *Humanizer) addContractions(text string, prefs types.StylePreferences) string {
	p := contractionChanceLow
	if prefs.HighContractions() {
		p = contractionChanceHigh
	}

	for _, rule := range patterns.Contractions {
		if h.chance(p) {
			text = rule.ReplaceAll(text, rule.Candidates[0])
		}
	}
	return text
}

// adjustFormality relaxes formal vocabulary in casual (or unprofiled) documents.
func (h *Humanizer) adjustFormality(text string, prefs types.StylePreferences) string {
	if !prefs.IsCasual() {
		return text
	}

	for _, rule := range patterns.FormalToCasual {
		if h.chance(formalitySwapChance) {
			text = rule.ReplaceAll(text, rule.Candidates[0])
		}
	}
	return text
}
