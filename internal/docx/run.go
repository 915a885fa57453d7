package docx

import (
	"strconv"
	"strings"
)

// Run is a w:r element: a stretch of text sharing one set of character properties.
type Run struct {
	n *node
}

// Font is the subset of run properties that survives a rewrite.
// Nil pointers and empty strings mean "not set on this run".
type Font struct {
	// Size is in half-points, as stored in w:sz.
	Size      *int
	Bold      *bool
	Italic    *bool
	Underline *string
	Color     string
}

func runText(r *node) string {
	var sb strings.Builder
	for _, c := range r.children {
		if c.kind != elementNode {
			continue
		}
		switch c.name {
		case "w:t":
			sb.WriteString(c.text())
		case "w:tab":
			sb.WriteByte('\t')
		case "w:br", "w:cr":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Text returns the run's text.
func (r *Run) Text() string {
	return runText(r.n)
}

func (r *Run) properties() *node {
	if rPr := r.n.child("w:rPr"); rPr != nil {
		return rPr
	}
	rPr := newElement("w:rPr")
	r.n.children = append([]*node{rPr}, r.n.children...)
	return rPr
}

// Font reads the run's explicit character properties.
func (r *Run) Font() Font {
	var f Font
	rPr := r.n.child("w:rPr")
	if rPr == nil {
		return f
	}

	if sz := rPr.child("w:sz"); sz != nil {
		if v, ok := sz.attr("w:val"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				f.Size = &n
			}
		}
	}
	f.Bold = toggle(rPr.child("w:b"))
	f.Italic = toggle(rPr.child("w:i"))
	if u := rPr.child("w:u"); u != nil {
		v, ok := u.attr("w:val")
		if !ok {
			v = "single"
		}
		f.Underline = &v
	}
	if c := rPr.child("w:color"); c != nil {
		f.Color, _ = c.attr("w:val")
	}
	return f
}

// toggle decodes an OOXML on/off property; a bare element means on.
func toggle(el *node) *bool {
	if el == nil {
		return nil
	}
	on := true
	if v, ok := el.attr("w:val"); ok {
		switch strings.ToLower(v) {
		case "0", "false", "off":
			on = false
		}
	}
	return &on
}

func onOff(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// SetSize sets the font size in half-points.
func (r *Run) SetSize(halfPoints int) {
	v := strconv.Itoa(halfPoints)
	r.properties().ensureOrderedChild("w:sz", runPropertyOrder).setAttr("w:val", v)
}

// SetBold sets or clears bold.
func (r *Run) SetBold(v bool) {
	r.properties().ensureOrderedChild("w:b", runPropertyOrder).setAttr("w:val", onOff(v))
}

// SetItalic sets or clears italic.
func (r *Run) SetItalic(v bool) {
	r.properties().ensureOrderedChild("w:i", runPropertyOrder).setAttr("w:val", onOff(v))
}

// SetUnderline sets the underline style ("single", "double", "none", ...).
func (r *Run) SetUnderline(style string) {
	r.properties().ensureOrderedChild("w:u", runPropertyOrder).setAttr("w:val", style)
}

// SetColor sets the text color from a six-digit hex RGB value or "auto".
func (r *Run) SetColor(value string) error {
	rgb, err := ParseColor(value)
	if err != nil {
		return err
	}
	r.properties().ensureOrderedChild("w:color", runPropertyOrder).setAttr("w:val", rgb)
	return nil
}

// ParseColor normalizes a w:color value to upper-case hex, accepting "auto".
func ParseColor(value string) (string, error) {
	if strings.EqualFold(value, "auto") {
		return "auto", nil
	}
	if len(value) != 6 {
		return "", &ColorError{Value: value}
	}
	if _, err := strconv.ParseUint(value, 16, 32); err != nil {
		return "", &ColorError{Value: value}
	}
	return strings.ToUpper(value), nil
}
