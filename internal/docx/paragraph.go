package docx

import "strings"

// Alignment is a paragraph justification value (w:jc).
type Alignment string

const (
	AlignInherit Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignBoth    Alignment = "both"
)

// Paragraph is a w:p element.
type Paragraph struct {
	n   *node
	doc *Document
}

func wrapParagraphs(d *Document, parent *node) []*Paragraph {
	var out []*Paragraph
	for _, n := range parent.childrenNamed("w:p") {
		out = append(out, &Paragraph{n: n, doc: d})
	}
	return out
}

// runContainers hold runs that still belong to the paragraph's visible text.
var runContainers = map[string]bool{
	"w:hyperlink": true,
	"w:ins":       true,
	"w:smartTag":  true,
	"w:fldSimple": true,
}

// Text returns the visible text of the paragraph, including hyperlinked runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	var walk func(*node)
	walk = func(parent *node) {
		for _, c := range parent.children {
			if c.kind != elementNode {
				continue
			}
			switch {
			case c.name == "w:r":
				sb.WriteString(runText(c))
			case runContainers[c.name]:
				walk(c)
			}
		}
	}
	walk(p.n)
	return sb.String()
}

// Runs returns the runs directly under the paragraph.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, n := range p.n.childrenNamed("w:r") {
		out = append(out, &Run{n: n})
	}
	return out
}

func (p *Paragraph) properties() *node {
	if pPr := p.n.child("w:pPr"); pPr != nil {
		return pPr
	}
	pPr := newElement("w:pPr")
	p.n.children = append([]*node{pPr}, p.n.children...)
	return pPr
}

// Alignment returns the explicit justification, or AlignInherit.
func (p *Paragraph) Alignment() Alignment {
	if pPr := p.n.child("w:pPr"); pPr != nil {
		if jc := pPr.child("w:jc"); jc != nil {
			v, _ := jc.attr("w:val")
			return Alignment(v)
		}
	}
	return AlignInherit
}

// SetAlignment sets the justification. AlignInherit removes it.
func (p *Paragraph) SetAlignment(a Alignment) {
	if a == AlignInherit {
		if pPr := p.n.child("w:pPr"); pPr != nil {
			pPr.removeChild("w:jc")
		}
		return
	}
	p.properties().ensureOrderedChild("w:jc", paragraphPropertyOrder).setAttr("w:val", string(a))
}

// Style returns the paragraph style id, or "" for the default style.
func (p *Paragraph) Style() string {
	if pPr := p.n.child("w:pPr"); pPr != nil {
		if ps := pPr.child("w:pStyle"); ps != nil {
			v, _ := ps.attr("w:val")
			return v
		}
	}
	return ""
}

// SetStyle applies the style id. An id the document does not define is rejected.
func (p *Paragraph) SetStyle(id string) error {
	if id == "" {
		if pPr := p.n.child("w:pPr"); pPr != nil {
			pPr.removeChild("w:pStyle")
		}
		return nil
	}
	if !p.doc.HasStyle(id) {
		return &StyleNotFoundError{StyleID: id}
	}
	p.properties().ensureOrderedChild("w:pStyle", paragraphPropertyOrder).setAttr("w:val", id)
	return nil
}

// Clear removes all content from the paragraph, keeping its properties.
func (p *Paragraph) Clear() {
	kept := p.n.children[:0]
	for _, c := range p.n.children {
		if c.kind == elementNode && c.name == "w:pPr" {
			kept = append(kept, c)
		}
	}
	p.n.children = kept
}

// AddRun appends a run holding text. Tabs and newlines become w:tab and w:br.
func (p *Paragraph) AddRun(text string) *Run {
	r := newElement("w:r")
	var seg strings.Builder
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		t := newElement("w:t", "xml:space", "preserve")
		t.appendChild(newText(seg.String()))
		r.appendChild(t)
		seg.Reset()
	}
	for _, ch := range text {
		switch ch {
		case '\t':
			flush()
			r.appendChild(newElement("w:tab"))
		case '\n':
			flush()
			r.appendChild(newElement("w:br"))
		default:
			seg.WriteRune(ch)
		}
	}
	flush()

	p.n.appendChild(r)
	return &Run{n: r}
}

// SetText replaces the paragraph content with a single unformatted run and
// returns that run. Paragraph properties are kept.
func (p *Paragraph) SetText(text string) *Run {
	p.Clear()
	return p.AddRun(text)
}
