// Package validation scans documents for the phrases the humanizer is meant to remove.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/docx-humanizer/internal/docx"
	"github.com/jonathan/docx-humanizer/internal/patterns"
	"github.com/jonathan/docx-humanizer/internal/types"
)

// Violation types
const (
	TypeAICliche        = "ai_cliche"
	TypeCorporateJargon = "corporate_jargon"
	TypeDoubledWord     = "doubled_word"
)

// Locations
const (
	LocationBody  = "body"
	LocationTable = "table"
)

const severityWarning = "warning"

// CheckParagraph returns one violation per telltale phrase found in text.
// Location and index are left for the caller to fill in.
func CheckParagraph(text string) []types.Violation {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var violations []types.Violation
	check := func(kind string, table patterns.Table) {
		for _, rule := range table {
			if n := len(rule.Regexp().FindAllStringIndex(text, -1)); n > 0 {
				violations = append(violations, types.Violation{Type: kind, Severity: severityWarning, Phrase: rule.Phrase, Count: n})
			}
		}
	}
	check(TypeAICliche, patterns.AICliches)
	check(TypeCorporateJargon, patterns.CorporateJargon)

	for _, dw := range patterns.DoubledWords {
		if n := len(dw.Pattern.FindAllStringIndex(text, -1)); n > 0 {
			violations = append(violations, types.Violation{Type: TypeDoubledWord, Severity: severityWarning, Phrase: dw.Word + " " + dw.Word, Count: n})
		}
	}
	return violations
}

// ScanDocument checks every non-empty paragraph in the order the humanizer
// visits them, body first and then table cells. Table paragraphs are numbered
// across all tables.
func ScanDocument(doc *docx.Document) *types.Violations {
	result := &types.Violations{Violations: []types.Violation{}}

	scan := func(location string, index int, p *docx.Paragraph) {
		text := p.Text()
		if strings.TrimSpace(text) == "" {
			return
		}
		result.ParagraphsScanned++
		for _, v := range CheckParagraph(text) {
			v.Location = location
			v.ParagraphIndex = index
			v.Details = fmt.Sprintf("%s paragraph %d contains %q %s", location, index, v.Phrase, times(v.Count))
			result.Violations = append(result.Violations, v)
		}
	}

	for i, p := range doc.Paragraphs() {
		scan(LocationBody, i, p)
	}

	i := 0
	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					scan(LocationTable, i, p)
					i++
				}
			}
		}
	}
	return result
}

func times(n int) string {
	if n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", n)
}
