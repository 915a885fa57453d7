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

func TestScanCommand_WritesViolations(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", "We leverage synergy.", "Nothing odd.")
	output := filepath.Join(dir, "violations.json")

	_, err := executeCommand(t, nil, "scan", "--in", input, "--out", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var result types.Violations
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, input, result.InputPath)
	assert.Equal(t, 4, result.ParagraphsScanned)
	// two body phrases plus the table cell's "It is important to note that"
	require.Len(t, result.Violations, 3)
	assert.Equal(t, "leverage", result.Violations[0].Phrase)
	assert.Equal(t, "table", result.Violations[2].Location)
}

func TestScanCommand_Fail(t *testing.T) {
	dir := t.TempDir()
	input := writeSampleDocx(t, dir, "in.docx", "Moreover, yes.")

	_, err := executeCommand(t, nil, "scan", "--in", input, "--fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telltale phrases")
}
