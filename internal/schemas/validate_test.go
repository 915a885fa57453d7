package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "valid_json.json")

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "invalid_json.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := filepath.Join("testdata", "valid_schema.json")
	jsonPath := filepath.Join("testdata", "type_mismatch.json")

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "count", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", filepath.Join("testdata", "valid_json.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(filepath.Join("testdata", "valid_schema.json"), "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	malformedJSON := filepath.Join(t.TempDir(), "malformed.json")
	require.NoError(t, os.WriteFile(malformedJSON, []byte("{ invalid json }"), 0644))

	err := ValidateJSON(filepath.Join("testdata", "valid_schema.json"), malformedJSON)
	require.Error(t, err)
}

func TestValidateJSON_ReportSchema(t *testing.T) {
	schemaPath := filepath.Join("..", "..", ReportSchemaPath)

	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{name: "fixture", content: "", wantError: false},
		{name: "unknown formality", content: `{"run_id":"3f1c2a9e-6b7d-4e2f-9a1b-0c8d7e6f5a4b","input_path":"a","output_path":"b","preferences":{"formality":"stiff"},"body_paragraphs":0,"table_paragraphs":0,"tables":0,"guard_reverts":0,"formatting_skipped":0,"started_at":"2026-10-16T09:30:00Z","duration_ms":0}`, wantError: true},
		{name: "negative count", content: `{"run_id":"3f1c2a9e-6b7d-4e2f-9a1b-0c8d7e6f5a4b","input_path":"a","output_path":"b","preferences":{},"body_paragraphs":-1,"table_paragraphs":0,"tables":0,"guard_reverts":0,"formatting_skipped":0,"started_at":"2026-10-16T09:30:00Z","duration_ms":0}`, wantError: true},
		{name: "missing run id", content: `{"input_path":"a","output_path":"b","preferences":{},"body_paragraphs":0,"table_paragraphs":0,"tables":0,"guard_reverts":0,"formatting_skipped":0,"started_at":"2026-10-16T09:30:00Z","duration_ms":0}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := filepath.Join("testdata", "report.json")
			if tt.content != "" {
				jsonPath = filepath.Join(t.TempDir(), "report.json")
				require.NoError(t, os.WriteFile(jsonPath, []byte(tt.content), 0644))
			}

			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestResolveSchemaPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	// From internal/schemas the repository root is two levels up.
	got := ResolveSchemaPath(ReportSchemaPath)
	assert.Equal(t, filepath.Join(wd, "..", "..", ReportSchemaPath), got)

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}
