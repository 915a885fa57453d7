// Package observability provides the CLI's structured logger and formatted
// output utilities for verbose mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/docx-humanizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

func orNeutral[T ~string](v T) string {
	if v == "" {
		return "neutral"
	}
	return string(v)
}

// PrintStyleProfile outputs the sentence statistics and derived preferences.
func (p *Printer) PrintStyleProfile(profile *types.StyleProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Formality:     %s\n", orNeutral(profile.Preferences.Formality)))
	sb.WriteString(fmt.Sprintf("Contractions:  %s\n", orNeutral(profile.Preferences.ContractionDensity)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Sentences:        %d\n", profile.SentenceCount))
	sb.WriteString(fmt.Sprintf("Avg length:       %.1f words\n", profile.AverageSentenceLength))
	sb.WriteString(fmt.Sprintf("Formal markers:   %d\n", profile.FormalMarkers))
	sb.WriteString(fmt.Sprintf("Contractions:     %d", profile.Contractions))

	p.printBox("STYLE PROFILE", sb.String())
}

// PrintRunReport outputs the counts for one processed document.
func (p *Printer) PrintRunReport(report *types.RunReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input:   %s\n", report.InputPath))
	sb.WriteString(fmt.Sprintf("Output:  %s\n", report.OutputPath))
	sb.WriteString(fmt.Sprintf("Style:   %s / %s contractions\n",
		orNeutral(report.Preferences.Formality), orNeutral(report.Preferences.ContractionDensity)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Body paragraphs:    %d\n", report.BodyParagraphs))
	sb.WriteString(fmt.Sprintf("Table paragraphs:   %d\n", report.TableParagraphs))
	sb.WriteString(fmt.Sprintf("Tables:             %d\n", report.Tables))

	// Only show the exception counters when something happened
	if report.GuardReverts > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Kept original:    %d\n", report.GuardReverts))
	}
	if report.FormattingSkipped > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Format skipped:   %d\n", report.FormattingSkipped))
	}
	sb.WriteString(fmt.Sprintf("Duration:           %dms", report.DurationMilliseconds))

	p.printBox("RUN REPORT", sb.String())
}

// PrintBatchSummary outputs one line per document and the batch totals.
func (p *Printer) PrintBatchSummary(reports []*types.RunReport) {
	if len(reports) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for i, r := range reports {
		total += r.TotalParagraphs()
		if i < maxItemsToShow {
			sb.WriteString(fmt.Sprintf("• %s (%d paragraphs)\n", r.OutputPath, r.TotalParagraphs()))
		}
	}
	if len(reports) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more documents\n", len(reports)-maxItemsToShow))
	}
	sb.WriteString(fmt.Sprintf("\nDocuments: %d   Paragraphs: %d", len(reports), total))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintRewrite outputs a paragraph before and after humanizing.
func (p *Printer) PrintRewrite(original, rewritten string, reverted bool) {
	var sb strings.Builder
	sb.WriteString("Before:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", original))
	sb.WriteString("\nAfter:\n")
	sb.WriteString(fmt.Sprintf("  %s", rewritten))
	if reverted {
		sb.WriteString("\n\n⚠ rewrite discarded, original kept")
	}

	p.printBox("REWRITE", sb.String())
}

// PrintViolations outputs the telltale phrases found by a document scan.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO TELLTALE PHRASES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d phrases in %d paragraphs:\n\n", len(violations.Violations), violations.ParagraphsScanned))

	count := min(len(violations.Violations), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		v := violations.Violations[i]
		sb.WriteString(fmt.Sprintf("⚠ %s: %q\n", v.Type, v.Phrase))
		sb.WriteString(fmt.Sprintf("  %s paragraph %d (x%d)\n", v.Location, v.ParagraphIndex, v.Count))
	}
	if len(violations.Violations) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(violations.Violations)-count))
	}

	byType := violations.CountByType()
	kinds := make([]string, 0, len(byType))
	for kind := range byType {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	sb.WriteString("\nTotals:")
	for _, t := range kinds {
		sb.WriteString(fmt.Sprintf(" %s=%d", t, byType[t]))
	}

	p.printBox("TELLTALE PHRASES", sb.String())
}
