package pipeline

import (
	"github.com/jonathan/docx-humanizer/internal/docx"
)

// Restoration is the outcome of re-applying one formatting attribute.
// A failed restoration is reported, never propagated.
type Restoration struct {
	Field string
	Err   error
}

// OK reports whether the attribute was restored.
func (r Restoration) OK() bool {
	return r.Err == nil
}

// restoreFont copies the set attributes of font onto run. A nil font means the
// paragraph had no runs and the new run stays plain.
func restoreFont(run *docx.Run, font *docx.Font) []Restoration {
	if font == nil {
		return nil
	}

	var out []Restoration
	if font.Size != nil {
		run.SetSize(*font.Size)
		out = append(out, Restoration{Field: "size"})
	}
	if font.Bold != nil {
		run.SetBold(*font.Bold)
		out = append(out, Restoration{Field: "bold"})
	}
	if font.Italic != nil {
		run.SetItalic(*font.Italic)
		out = append(out, Restoration{Field: "italic"})
	}
	if font.Underline != nil {
		run.SetUnderline(*font.Underline)
		out = append(out, Restoration{Field: "underline"})
	}
	if font.Color != "" {
		out = append(out, Restoration{Field: "color", Err: run.SetColor(font.Color)})
	}
	return out
}

// restoreParagraph re-applies alignment and style.
func restoreParagraph(p *docx.Paragraph, alignment docx.Alignment, style string) []Restoration {
	var out []Restoration
	if alignment != docx.AlignInherit {
		p.SetAlignment(alignment)
		out = append(out, Restoration{Field: "alignment"})
	}
	if style != "" {
		out = append(out, Restoration{Field: "style", Err: p.SetStyle(style)})
	}
	return out
}
