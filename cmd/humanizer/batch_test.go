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

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeSampleDocx(t, dir, "alpha.docx", sampleParagraphs[0]),
		writeSampleDocx(t, dir, "beta.docx", sampleParagraphs[1], sampleParagraphs[2]),
	}
	outDir := filepath.Join(dir, "out")
	reportDir := filepath.Join(dir, "reports")

	args := append([]string{"batch", "--out-dir", outDir, "--report-dir", reportDir, "--seed", "5", "-c", "2"}, inputs...)
	_, err := executeCommand(t, nil, args...)
	require.NoError(t, err)

	assert.Len(t, paragraphTexts(t, filepath.Join(outDir, "alpha.docx")), 3)
	assert.Len(t, paragraphTexts(t, filepath.Join(outDir, "beta.docx")), 4)

	data, err := os.ReadFile(filepath.Join(reportDir, "beta.report.json"))
	require.NoError(t, err)
	var report types.RunReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 2, report.BodyParagraphs)
	require.NotNil(t, report.Seed)
	assert.Equal(t, int64(6), *report.Seed)
}

func TestBatchCommand_RequiresFiles(t *testing.T) {
	_, err := executeCommand(t, nil, "batch", "--out-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestBatchCommand_RequiresOutputDir(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "alpha.docx", "Hello.")

	_, err := executeCommand(t, nil, "batch", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory is required")
}

func TestBatchCommand_FailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, nil, "batch", "--out-dir", filepath.Join(dir, "out"), filepath.Join(dir, "ghost.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.docx")
}

func TestBatchCommand_RefusesInputDirectoryAsOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "alpha.docx", sampleParagraphs[0])
	before := paragraphTexts(t, input)

	_, err := executeCommand(t, nil, "batch", "--out-dir", dir, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite the input")
	assert.Equal(t, before, paragraphTexts(t, input))
}
