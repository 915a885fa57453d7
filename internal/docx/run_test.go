package docx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FormattingRoundTrip(t *testing.T) {
	doc := New()
	r := doc.AddParagraph("styled").Runs()[0]
	r.SetSize(24)
	r.SetBold(true)
	r.SetItalic(false)
	r.SetUnderline("double")
	require.NoError(t, r.SetColor("00ff00"))

	reopened := roundTrip(t, doc)
	font := reopened.Paragraphs()[0].Runs()[0].Font()

	require.NotNil(t, font.Size)
	assert.Equal(t, 24, *font.Size)
	require.NotNil(t, font.Bold)
	assert.True(t, *font.Bold)
	require.NotNil(t, font.Italic)
	assert.False(t, *font.Italic)
	require.NotNil(t, font.Underline)
	assert.Equal(t, "double", *font.Underline)
	assert.Equal(t, "00FF00", font.Color)

	rPr := reopened.Paragraphs()[0].Runs()[0].n.child("w:rPr")
	var names []string
	for _, c := range rPr.children {
		names = append(names, c.name)
	}
	assert.Equal(t, []string{"w:b", "w:i", "w:color", "w:sz", "w:u"}, names)
}

func TestRun_FontUnset(t *testing.T) {
	doc := New()
	font := doc.AddParagraph("plain").Runs()[0].Font()

	assert.Nil(t, font.Size)
	assert.Nil(t, font.Bold)
	assert.Nil(t, font.Italic)
	assert.Nil(t, font.Underline)
	assert.Empty(t, font.Color)
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		el       *node
		expected *bool
	}{
		{"absent", nil, nil},
		{"bare", newElement("w:b"), boolPtr(true)},
		{"zero", newElement("w:b", "w:val", "0"), boolPtr(false)},
		{"false", newElement("w:b", "w:val", "false"), boolPtr(false)},
		{"on", newElement("w:b", "w:val", "on"), boolPtr(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toggle(tt.el))
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		value    string
		expected string
		wantErr  bool
	}{
		{"ff0000", "FF0000", false},
		{"AUTO", "auto", false},
		{"red", "", true},
		{"12345", "", true},
		{"GG0000", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColor(tt.value)
			if tt.wantErr {
				var colorErr *ColorError
				require.True(t, errors.As(err, &colorErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func boolPtr(v bool) *bool {
	return &v
}
