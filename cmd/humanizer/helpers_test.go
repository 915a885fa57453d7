package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docx-humanizer/internal/config"
	"github.com/jonathan/docx-humanizer/internal/docx"
)

// executeCommand runs the root command in-process with args and returns what
// the command wrote to its output writer.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv(config.SeedEnvVar, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writeSampleDocx saves a document with the given body paragraphs and a
// 1x2 table to dir/name.
func writeSampleDocx(t *testing.T, dir, name string, paragraphs ...string) string {
	t.Helper()
	doc := docx.New()
	for _, p := range paragraphs {
		doc.AddParagraph(p)
	}
	table := doc.AddTable(1, 2)
	cellParagraph(t, table, 0, 0).SetText("Quarterly numbers are in.")
	cellParagraph(t, table, 0, 1).SetText("It is important to note that the trend holds.")

	path := filepath.Join(dir, name)
	require.NoError(t, doc.Save(path))
	return path
}

func paragraphTexts(t *testing.T, path string) []string {
	t.Helper()
	doc, err := docx.Open(path)
	require.NoError(t, err)
	var texts []string
	for _, p := range doc.Paragraphs() {
		texts = append(texts, p.Text())
	}
	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					texts = append(texts, p.Text())
				}
			}
		}
	}
	return texts
}

// cellParagraph returns the first paragraph of the table cell at (row, col).
func cellParagraph(t *testing.T, table *docx.Table, row, col int) *docx.Paragraph {
	t.Helper()
	rows := table.Rows()
	require.Greater(t, len(rows), row)
	cells := rows[row].Cells()
	require.Greater(t, len(cells), col)
	paragraphs := cells[col].Paragraphs()
	require.NotEmpty(t, paragraphs)
	return paragraphs[0]
}

var sampleParagraphs = []string{
	"However, it is important to note that the results were significant. Moreover, the team will leverage these findings.",
	"In conclusion, we do not believe the approach is flawed. Therefore, we will continue to utilize it.",
	"The committee met on Tuesday and reviewed the proposal in detail before making a decision.",
}
