package types

// Violation is one telltale phrase found in a document paragraph
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Phrase   string `json:"phrase"`
	Count    int    `json:"count"`

	// Where the phrase was found
	Location       string `json:"location"`
	ParagraphIndex int    `json:"paragraph_index"`
}

// Violations represents the result of scanning one document
type Violations struct {
	InputPath         string      `json:"input_path"`
	ParagraphsScanned int         `json:"paragraphs_scanned"`
	Violations        []Violation `json:"violations"`
}

// CountByType sums phrase occurrences per violation type.
func (v *Violations) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, violation := range v.Violations {
		counts[violation.Type] += violation.Count
	}
	return counts
}
