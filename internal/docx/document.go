// Package docx reads and writes the paragraph and table text of Word (.docx)
// documents while leaving every part it does not edit byte-for-byte intact.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"time"
)

type part struct {
	name     string
	method   uint16
	modified time.Time
	data     []byte
}

// Document is an opened .docx package.
type Document struct {
	parts  []*part
	root   *node
	body   *node
	styles map[string]bool
}

// Open reads the document at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Read parses a .docx package from r.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &LoadError{Message: "not a valid .docx package", Cause: err}
	}

	doc := &Document{}
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to read part %s", f.Name), Cause: err}
		}
		doc.parts = append(doc.parts, &part{name: f.Name, method: f.Method, modified: f.Modified, data: data})
	}

	if err := doc.parse(); err != nil {
		return nil, err
	}
	return doc, nil
}

// New returns an empty document with a default style part.
func New() *Document {
	doc := &Document{}
	now := time.Now()
	for _, p := range blankParts {
		doc.parts = append(doc.parts, &part{name: p.name, method: zip.Deflate, modified: now, data: []byte(p.data)})
	}
	if err := doc.parse(); err != nil {
		panic(fmt.Sprintf("blank document template is invalid: %v", err))
	}
	return doc
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

func (d *Document) part(name string) *part {
	for _, p := range d.parts {
		if p.name == name {
			return p
		}
	}
	return nil
}

func (d *Document) parse() error {
	mainPart := d.part(documentPart)
	if mainPart == nil {
		return &LoadError{Message: "missing " + documentPart}
	}

	root, err := parseXML(bytes.NewReader(mainPart.data))
	if err != nil {
		return &LoadError{Message: "malformed " + documentPart, Cause: err}
	}
	bindWordPrefix(root)

	docEl := root.firstElement()
	if docEl == nil || docEl.name != "w:document" {
		return &LoadError{Message: "document part has no w:document root"}
	}
	body := docEl.child("w:body")
	if body == nil {
		return &LoadError{Message: "document part has no w:body"}
	}

	d.root = root
	d.body = body

	if sp := d.part(stylesPart); sp != nil {
		styles, err := parseXML(bytes.NewReader(sp.data))
		if err != nil {
			return &LoadError{Message: "malformed " + stylesPart, Cause: err}
		}
		bindWordPrefix(styles)
		d.styles = make(map[string]bool)
		if stylesEl := styles.firstElement(); stylesEl != nil {
			for _, s := range stylesEl.childrenNamed("w:style") {
				if id, ok := s.attr("w:styleId"); ok {
					d.styles[id] = true
				}
			}
		}
	}
	return nil
}

// HasStyle reports whether id is defined. Documents without a style part accept any id.
func (d *Document) HasStyle(id string) bool {
	if d.styles == nil {
		return true
	}
	return d.styles[id]
}

// Paragraphs returns the paragraphs directly under the document body.
func (d *Document) Paragraphs() []*Paragraph {
	return wrapParagraphs(d, d.body)
}

// Tables returns the tables directly under the document body.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, n := range d.body.childrenNamed("w:tbl") {
		out = append(out, &Table{n: n, doc: d})
	}
	return out
}

// AddParagraph appends a paragraph holding text to the body.
func (d *Document) AddParagraph(text string) *Paragraph {
	p := &Paragraph{n: newElement("w:p"), doc: d}
	d.insertBlock(p.n)
	if text != "" {
		p.AddRun(text)
	}
	return p
}

// AddTable appends a rows x cols table of empty cells to the body.
func (d *Document) AddTable(rows, cols int) *Table {
	tbl := newElement("w:tbl")
	tblPr := tbl.appendChild(newElement("w:tblPr"))
	tblPr.appendChild(newElement("w:tblStyle", "w:val", "TableGrid"))
	tblPr.appendChild(newElement("w:tblW", "w:w", "0", "w:type", "auto"))

	grid := tbl.appendChild(newElement("w:tblGrid"))
	for c := 0; c < cols; c++ {
		grid.appendChild(newElement("w:gridCol"))
	}
	for r := 0; r < rows; r++ {
		tr := tbl.appendChild(newElement("w:tr"))
		for c := 0; c < cols; c++ {
			tc := tr.appendChild(newElement("w:tc"))
			tc.appendChild(newElement("w:p"))
		}
	}

	d.insertBlock(tbl)
	return &Table{n: tbl, doc: d}
}

// insertBlock appends a block element, keeping a trailing w:sectPr last.
func (d *Document) insertBlock(el *node) {
	for i := len(d.body.children) - 1; i >= 0; i-- {
		c := d.body.children[i]
		if c.kind != elementNode {
			continue
		}
		if c.name == "w:sectPr" {
			d.body.children = slices.Insert(d.body.children, i, el)
			return
		}
		break
	}
	d.body.appendChild(el)
}

// Write serializes the package to w.
func (d *Document) Write(w io.Writer) error {
	d.part(documentPart).data = d.root.encode()

	zw := zip.NewWriter(w)
	for _, p := range d.parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: p.method, Modified: p.modified})
		if err != nil {
			return err
		}
		if _, err := fw.Write(p.data); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Save writes the package to path, replacing any existing file.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return &SaveError{Path: path, Message: "failed to serialize package", Cause: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &SaveError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
