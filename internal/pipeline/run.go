// Package pipeline drives the humanizer over every paragraph of a Word document.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/docx-humanizer/internal/docx"
	"github.com/jonathan/docx-humanizer/internal/rewriting"
	"github.com/jonathan/docx-humanizer/internal/types"
	"github.com/jonathan/docx-humanizer/internal/voice"
)

const (
	// DefaultOutputPath is where a humanized document is written unless overridden
	DefaultOutputPath = "completely_human_document.docx"
	// DefaultSampleParagraphs is how many non-empty paragraphs feed the style profile
	DefaultSampleParagraphs = 10
	// DefaultProgressInterval is how many body paragraphs pass between progress events
	DefaultProgressInterval = 25
)

// Progress steps
const (
	StepProfile    = "profile"
	StepParagraphs = "paragraphs"
	StepTables     = "tables"
	StepSave       = "save"
)

// ProgressEvent represents a progress update during a document run
type ProgressEvent struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	RunID     string `json:"run_id,omitempty"`
	Processed int    `json:"processed,omitempty"`
	Total     int    `json:"total,omitempty"`
}

// ProgressCallback is called when a run makes progress
type ProgressCallback func(event ProgressEvent)

// Rewriter transforms a single paragraph's text.
type Rewriter interface {
	Rewrite(text string, prefs types.StylePreferences) rewriting.Result
}

// RunOptions holds configuration for processing one document
type RunOptions struct {
	InputPath        string
	OutputPath       string
	SampleParagraphs int
	ProgressInterval int
	Seed             *int64
	// Rewriter overrides the default humanizer, mainly for tests.
	Rewriter   Rewriter
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

func (o *RunOptions) applyDefaults() {
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputPath
	}
	if o.SampleParagraphs <= 0 {
		o.SampleParagraphs = DefaultSampleParagraphs
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = DefaultProgressInterval
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Rewriter == nil {
		var rng rewriting.Rand
		if o.Seed != nil {
			rng = rewriting.NewSeededRand(uint64(*o.Seed))
		}
		o.Rewriter = rewriting.New(rng)
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
}

// RunDocument loads the document at opts.InputPath, humanizes it and saves the
// result. On any load, processing or save failure no report is returned.
func RunDocument(ctx context.Context, opts RunOptions) (*types.RunReport, error) {
	opts.applyDefaults()

	doc, err := docx.Open(opts.InputPath)
	if err != nil {
		return nil, err
	}

	report, err := Process(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	if err := doc.Save(opts.OutputPath); err != nil {
		return nil, err
	}
	emitProgress(&opts, ProgressEvent{Step: StepSave, RunID: report.RunID, Message: fmt.Sprintf("Saved %s", opts.OutputPath)})
	opts.Logger.Info("document saved", zap.String("run_id", report.RunID), zap.String("output", opts.OutputPath))

	report.DurationMilliseconds = time.Since(report.StartedAt).Milliseconds()
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run report: %w", err)
	}
	return report, nil
}

// Process humanizes doc in place: body paragraphs first, then every table
// cell paragraph in row order.
func Process(ctx context.Context, doc *docx.Document, opts RunOptions) (*types.RunReport, error) {
	opts.applyDefaults()
	logger := opts.Logger

	report := &types.RunReport{
		RunID:      uuid.NewString(),
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Seed:       opts.Seed,
		StartedAt:  time.Now(),
	}
	logger = logger.With(zap.String("run_id", report.RunID))

	paragraphs := doc.Paragraphs()

	sample := voice.NewSampleBuilder(opts.SampleParagraphs)
	for _, p := range paragraphs {
		if sample.Full() {
			break
		}
		sample.Add(p.Text())
	}
	prefs := voice.Analyze(sample.String())
	report.Preferences = prefs

	if prefs.IsZero() {
		logger.Debug("no sample text, using neutral style preferences")
	} else {
		logger.Debug("style profiled",
			zap.String("formality", string(prefs.Formality)),
			zap.String("contractions", string(prefs.ContractionDensity)))
	}
	emitProgress(&opts, ProgressEvent{Step: StepProfile, RunID: report.RunID,
		Message: fmt.Sprintf("Analyzed writing style (formality=%s, contractions=%s)", orNeutral(string(prefs.Formality)), orNeutral(string(prefs.ContractionDensity)))})

	total := 0
	for _, p := range paragraphs {
		if hasText(p) {
			total++
		}
	}
	emitProgress(&opts, ProgressEvent{Step: StepParagraphs, RunID: report.RunID, Total: total,
		Message: fmt.Sprintf("Humanizing %d paragraphs", total)})

	for _, p := range paragraphs {
		if !hasText(p) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("document processing cancelled: %w", err)
		}

		processParagraph(p, prefs, opts.Rewriter, report, logger)
		report.BodyParagraphs++

		if report.BodyParagraphs%opts.ProgressInterval == 0 {
			logger.Info("progress", zap.Int("processed", report.BodyParagraphs), zap.Int("total", total))
			emitProgress(&opts, ProgressEvent{Step: StepParagraphs, RunID: report.RunID,
				Processed: report.BodyParagraphs, Total: total,
				Message: fmt.Sprintf("Progress: %d/%d", report.BodyParagraphs, total)})
		}
	}

	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					if !hasText(p) {
						continue
					}
					if err := ctx.Err(); err != nil {
						return nil, fmt.Errorf("document processing cancelled: %w", err)
					}
					processParagraph(p, prefs, opts.Rewriter, report, logger)
					report.TableParagraphs++
				}
			}
		}
		report.Tables++
	}

	if report.Tables > 0 {
		emitProgress(&opts, ProgressEvent{Step: StepTables, RunID: report.RunID, Processed: report.Tables,
			Message: fmt.Sprintf("Processed %d tables", report.Tables)})
	}

	logger.Info("document humanized",
		zap.Int("body_paragraphs", report.BodyParagraphs),
		zap.Int("table_paragraphs", report.TableParagraphs),
		zap.Int("tables", report.Tables),
		zap.Int("guard_reverts", report.GuardReverts),
		zap.Int("formatting_skipped", report.FormattingSkipped))

	report.DurationMilliseconds = time.Since(report.StartedAt).Milliseconds()
	return report, nil
}

func hasText(p *docx.Paragraph) bool {
	return strings.TrimSpace(p.Text()) != ""
}

func orNeutral(v string) string {
	if v == "" {
		return "neutral"
	}
	return v
}

// processParagraph rewrites one paragraph and rebuilds it as a single run
// carrying the first original run's formatting.
func processParagraph(p *docx.Paragraph, prefs types.StylePreferences, rw Rewriter, report *types.RunReport, logger *zap.Logger) {
	var firstFont *docx.Font
	if runs := p.Runs(); len(runs) > 0 {
		f := runs[0].Font()
		firstFont = &f
	}
	alignment := p.Alignment()
	style := p.Style()

	result := rw.Rewrite(p.Text(), prefs)
	if result.Reverted {
		report.GuardReverts++
		logger.Debug("length guard reverted paragraph", zap.String("stage", result.RevertedAt))
	}

	run := p.SetText(result.Text)

	restorations := restoreFont(run, firstFont)
	restorations = append(restorations, restoreParagraph(p, alignment, style)...)
	for _, r := range restorations {
		if r.OK() {
			continue
		}
		report.FormattingSkipped++
		logger.Debug("formatting not restored", zap.String("field", r.Field), zap.Error(r.Err))
	}
}
