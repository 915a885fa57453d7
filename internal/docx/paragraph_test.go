package docx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraph_ClearKeepsProperties(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("first run")
	require.NoError(t, p.SetStyle("Heading1"))
	p.SetAlignment(AlignRight)
	p.AddRun(" second run")

	p.Clear()

	assert.Empty(t, p.Text())
	assert.Empty(t, p.Runs())
	assert.Equal(t, "Heading1", p.Style())
	assert.Equal(t, AlignRight, p.Alignment())
}

func TestParagraph_AddRunSpecialCharacters(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("")
	p.AddRun("a\tb\nc <&> \"d\"")

	reopened := roundTrip(t, doc)
	assert.Equal(t, "a\tb\nc <&> \"d\"", reopened.Paragraphs()[0].Text())
}

func TestParagraph_AddRunPreservesSpaces(t *testing.T) {
	doc := New()
	doc.AddParagraph("  padded   text ")

	reopened := roundTrip(t, doc)
	assert.Equal(t, "  padded   text ", reopened.Paragraphs()[0].Text())
}

func TestParagraph_SetStyle(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("x")

	require.NoError(t, p.SetStyle("ListParagraph"))
	assert.Equal(t, "ListParagraph", p.Style())

	err := p.SetStyle("Ghost")
	var styleErr *StyleNotFoundError
	require.True(t, errors.As(err, &styleErr))
	assert.Equal(t, "Ghost", styleErr.StyleID)
	assert.Equal(t, "ListParagraph", p.Style())

	require.NoError(t, p.SetStyle(""))
	assert.Equal(t, "", p.Style())
}

func TestParagraph_PropertyOrder(t *testing.T) {
	doc := New()
	p := doc.AddParagraph("x")
	p.SetAlignment(AlignCenter)
	require.NoError(t, p.SetStyle("Heading1"))

	pPr := p.n.child("w:pPr")
	require.NotNil(t, pPr)
	require.Len(t, pPr.children, 2)
	assert.Equal(t, "w:pStyle", pPr.children[0].name)
	assert.Equal(t, "w:jc", pPr.children[1].name)

	p.SetAlignment(AlignInherit)
	assert.Equal(t, AlignInherit, p.Alignment())
}

func TestHasStyle_WithoutStylePart(t *testing.T) {
	doc := &Document{}
	assert.True(t, doc.HasStyle("Anything"))
}
