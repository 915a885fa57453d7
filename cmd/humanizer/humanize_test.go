package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docx-humanizer/internal/types"
)

func TestHumanizeCommand_MissingInFlag(t *testing.T) {
	_, err := executeCommand(t, nil, "humanize", "--out", filepath.Join(t.TempDir(), "out.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)
}

func TestHumanizeCommand_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.docx")

	_, err := executeCommand(t, nil, "humanize", "--in", filepath.Join(dir, "nope.docx"), "--out", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to humanize document")
	assert.NoFileExists(t, output)
}

func TestHumanizeCommand_WritesDocumentAndReport(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", sampleParagraphs...)
	output := filepath.Join(dir, "out.docx")
	reportPath := filepath.Join(dir, "reports", "run.json")

	_, err := executeCommand(t, nil, "humanize", "--in", input, "--out", output, "--report", reportPath, "--seed", "11")
	require.NoError(t, err)

	texts := paragraphTexts(t, output)
	require.Len(t, texts, 5)
	for _, text := range texts {
		assert.NotEmpty(t, text)
	}

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.NoError(t, report.Validate())
	assert.Equal(t, input, report.InputPath)
	assert.Equal(t, output, report.OutputPath)
	assert.Equal(t, 3, report.BodyParagraphs)
	assert.Equal(t, 2, report.TableParagraphs)
	assert.Equal(t, 1, report.Tables)
	assert.Equal(t, types.FormalityFormal, report.Preferences.Formality)
	require.NotNil(t, report.Seed)
	assert.Equal(t, int64(11), *report.Seed)
}

func TestHumanizeCommand_SeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", sampleParagraphs...)
	first := filepath.Join(dir, "first.docx")
	second := filepath.Join(dir, "second.docx")

	_, err := executeCommand(t, nil, "humanize", "--in", input, "--out", first, "--seed", "99")
	require.NoError(t, err)
	_, err = executeCommand(t, nil, "humanize", "--in", input, "--out", second, "--seed", "99")
	require.NoError(t, err)

	assert.Equal(t, paragraphTexts(t, first), paragraphTexts(t, second))
}

func TestHumanizeCommand_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", sampleParagraphs...)
	fromConfig := filepath.Join(dir, "from_config.docx")
	reportPath := filepath.Join(dir, "report.json")

	configPath := filepath.Join(dir, "config.json")
	cfg := `{"output": "` + filepath.ToSlash(fromConfig) + `", "report": "` + filepath.ToSlash(reportPath) + `", "seed": 3}`
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0644))

	_, err := executeCommand(t, nil, "humanize", "--config", configPath, "--in", input)
	require.NoError(t, err)
	assert.FileExists(t, fromConfig)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotNil(t, report.Seed)
	assert.Equal(t, int64(3), *report.Seed)

	// --out wins over the config file
	override := filepath.Join(dir, "override.docx")
	_, err = executeCommand(t, nil, "humanize", "--config", configPath, "--in", input, "--out", override, "--seed", "4")
	require.NoError(t, err)
	assert.FileExists(t, override)

	data, err = os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, override, report.OutputPath)
	assert.Equal(t, int64(4), *report.Seed)
}

func TestHumanizeCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", "Hello.")

	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"output": "out.pdf"}`), 0644))

	_, err := executeCommand(t, nil, "humanize", "--config", configPath, "--in", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'output'")
}

func TestHumanizeCommand_SeedFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", sampleParagraphs...)
	reportPath := filepath.Join(dir, "report.json")

	resetFlags(rootCmd)
	t.Setenv("HUMANIZER_SEED", "21")
	rootCmd.SetArgs([]string{"humanize", "--in", input, "--out", filepath.Join(dir, "out.docx"), "--report", reportPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotNil(t, report.Seed)
	assert.Equal(t, int64(21), *report.Seed)
}
