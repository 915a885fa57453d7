package docx

// Table is a w:tbl element.
type Table struct {
	n   *node
	doc *Document
}

// Row is a w:tr element.
type Row struct {
	n   *node
	doc *Document
}

// Cell is a w:tc element.
type Cell struct {
	n   *node
	doc *Document
}

// Rows returns the table rows in order.
func (t *Table) Rows() []*Row {
	var out []*Row
	for _, n := range t.n.childrenNamed("w:tr") {
		out = append(out, &Row{n: n, doc: t.doc})
	}
	return out
}

// cell returns the cell at (row, col), or nil when out of range.
func (t *Table) cell(row, col int) *Cell {
	rows := t.Rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	cells := rows[row].Cells()
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []*Cell {
	var out []*Cell
	for _, n := range r.n.childrenNamed("w:tc") {
		out = append(out, &Cell{n: n, doc: r.doc})
	}
	return out
}

// Paragraphs returns the paragraphs directly inside the cell.
func (c *Cell) Paragraphs() []*Paragraph {
	return wrapParagraphs(c.doc, c.n)
}

// setText replaces the cell's first paragraph content with text.
func (c *Cell) setText(text string) {
	paragraphs := c.Paragraphs()
	if len(paragraphs) == 0 {
		p := &Paragraph{n: c.n.appendChild(newElement("w:p")), doc: c.doc}
		p.AddRun(text)
		return
	}
	paragraphs[0].SetText(text)
}
