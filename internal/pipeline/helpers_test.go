package pipeline

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/docx-humanizer/internal/docx"
	"github.com/jonathan/docx-humanizer/internal/rewriting"
	"github.com/jonathan/docx-humanizer/internal/types"
)

const testNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const testStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + testNamespace + `"><w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style></w:styles>`

// writeDocx writes a package holding body as the document body plus a style
// part that defines Normal and Heading1.
func writeDocx(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	parts := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="` + testNamespace + `"><w:body>` + body + `<w:sectPr/></w:body></w:document>`,
		"word/styles.xml": testStyles,
	}
	for partName, content := range parts {
		w, err := zw.Create(partName)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func bodyOf(texts ...string) string {
	var b strings.Builder
	for _, text := range texts {
		b.WriteString(para(text))
	}
	return b.String()
}

// recordingRewriter prefixes every paragraph and remembers what it saw.
type recordingRewriter struct {
	mu     sync.Mutex
	seen   []string
	prefs  []types.StylePreferences
	revert bool
}

func (r *recordingRewriter) Rewrite(text string, prefs types.StylePreferences) rewriting.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, text)
	r.prefs = append(r.prefs, prefs)
	if r.revert {
		return rewriting.Result{Text: text, Reverted: true, RevertedAt: rewriting.StageSentenceFlow}
	}
	return rewriting.Result{Text: "new " + text}
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
