package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RunReport summarizes a single document run and is written as JSON when requested.
type RunReport struct {
	RunID                string           `json:"run_id" validate:"required,uuid"`
	InputPath            string           `json:"input_path" validate:"required"`
	OutputPath           string           `json:"output_path" validate:"required"`
	Preferences          StylePreferences `json:"preferences"`
	BodyParagraphs       int              `json:"body_paragraphs" validate:"gte=0"`
	TableParagraphs      int              `json:"table_paragraphs" validate:"gte=0"`
	Tables               int              `json:"tables" validate:"gte=0"`
	GuardReverts         int              `json:"guard_reverts" validate:"gte=0"`
	FormattingSkipped    int              `json:"formatting_skipped" validate:"gte=0"`
	Seed                 *int64           `json:"seed,omitempty"`
	StartedAt            time.Time        `json:"started_at"`
	DurationMilliseconds int64            `json:"duration_ms" validate:"gte=0"`
}

// Validate validates the RunReport using the validator.
func (r *RunReport) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TotalParagraphs returns the number of paragraphs sent through the pipeline.
func (r *RunReport) TotalParagraphs() int {
	return r.BodyParagraphs + r.TableParagraphs
}
