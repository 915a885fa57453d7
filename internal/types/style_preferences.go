// Package types provides type definitions for structured data used throughout the docx-humanizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Formality is the document-wide formality level derived from a text sample.
type Formality string

// ContractionDensity is the document-wide contraction preference derived from a text sample.
type ContractionDensity string

const (
	FormalityUnset  Formality = ""
	FormalityFormal Formality = "formal"
	FormalityCasual Formality = "casual"

	ContractionsUnset ContractionDensity = ""
	ContractionsHigh  ContractionDensity = "high"
	ContractionsLow   ContractionDensity = "low"
)

// StylePreferences holds the two document-wide preferences used to bias the
// randomized rewrite stages. The zero value is the neutral preference set.
type StylePreferences struct {
	Formality          Formality          `json:"formality,omitempty"`
	ContractionDensity ContractionDensity `json:"contraction_density,omitempty"`
}

// IsCasual reports whether casual substitutions apply. Unset counts as casual.
func (p StylePreferences) IsCasual() bool {
	return p.Formality != FormalityFormal
}

// HighContractions reports whether the document favors contractions. Unset counts as low.
func (p StylePreferences) HighContractions() bool {
	return p.ContractionDensity == ContractionsHigh
}

// IsZero reports whether no preference has been derived.
func (p StylePreferences) IsZero() bool {
	return p.Formality == FormalityUnset && p.ContractionDensity == ContractionsUnset
}

// StyleProfile holds the statistics gathered while deriving StylePreferences.
type StyleProfile struct {
	Preferences           StylePreferences `json:"preferences"`
	SentenceCount         int              `json:"sentence_count"`
	AverageSentenceLength float64          `json:"average_sentence_length"`
	FormalMarkers         int              `json:"formal_markers"`
	Contractions          int              `json:"contractions"`
}
