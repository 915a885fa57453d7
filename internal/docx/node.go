package docx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

type nodeKind int

const (
	rootNode nodeKind = iota
	elementNode
	textNode
	commentNode
	procInstNode
	directiveNode
)

// node is a namespace-preserving XML tree. Element and attribute names keep
// their source prefixes ("w:p", "xml:space") so that a parsed part can be
// written back without the encoder inventing namespace declarations.
type node struct {
	kind     nodeKind
	name     string
	attrs    []xml.Attr
	children []*node
	data     string
	target   string
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func parseXML(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	root := &node{kind: rootNode}
	stack := []*node{root}

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			el := &node{kind: elementNode, name: qualified(t.Name)}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, xml.Attr{Name: xml.Name{Local: qualified(a.Name)}, Value: a.Value})
			}
			top.children = append(top.children, el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 1 || top.name != qualified(t.Name) {
				return nil, fmt.Errorf("unexpected end element </%s>", qualified(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			top.children = append(top.children, &node{kind: textNode, data: string(t)})
		case xml.Comment:
			top.children = append(top.children, &node{kind: commentNode, data: string(t)})
		case xml.ProcInst:
			top.children = append(top.children, &node{kind: procInstNode, target: t.Target, data: string(t.Inst)})
		case xml.Directive:
			top.children = append(top.children, &node{kind: directiveNode, data: string(t)})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].name)
	}
	return root, nil
}

func (n *node) encode() []byte {
	var buf bytes.Buffer
	n.writeTo(&buf)
	return buf.Bytes()
}

func (n *node) writeTo(buf *bytes.Buffer) {
	switch n.kind {
	case rootNode:
		for _, c := range n.children {
			c.writeTo(buf)
		}
	case textNode:
		_ = xml.EscapeText(buf, []byte(n.data))
	case commentNode:
		buf.WriteString("<!--")
		buf.WriteString(n.data)
		buf.WriteString("-->")
	case procInstNode:
		buf.WriteString("<?")
		buf.WriteString(n.target)
		if n.data != "" {
			buf.WriteByte(' ')
			buf.WriteString(n.data)
		}
		buf.WriteString("?>")
	case directiveNode:
		buf.WriteString("<!")
		buf.WriteString(n.data)
		buf.WriteByte('>')
	case elementNode:
		buf.WriteByte('<')
		buf.WriteString(n.name)
		for _, a := range n.attrs {
			buf.WriteByte(' ')
			buf.WriteString(a.Name.Local)
			buf.WriteString(`="`)
			_ = xml.EscapeText(buf, []byte(a.Value))
			buf.WriteByte('"')
		}
		if len(n.children) == 0 {
			buf.WriteString("/>")
			return
		}
		buf.WriteByte('>')
		for _, c := range n.children {
			c.writeTo(buf)
		}
		buf.WriteString("</")
		buf.WriteString(n.name)
		buf.WriteByte('>')
	}
}

func newElement(name string, attrs ...string) *node {
	el := &node{kind: elementNode, name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.setAttr(attrs[i], attrs[i+1])
	}
	return el
}

func newText(s string) *node {
	return &node{kind: textNode, data: s}
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *node) setAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name.Local == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.kind == elementNode && c.name == name {
			return c
		}
	}
	return nil
}

func (n *node) childrenNamed(name string) []*node {
	var out []*node
	for _, c := range n.children {
		if c.kind == elementNode && c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (n *node) firstElement() *node {
	for _, c := range n.children {
		if c.kind == elementNode {
			return c
		}
	}
	return nil
}

func (n *node) appendChild(c *node) *node {
	n.children = append(n.children, c)
	return c
}

func (n *node) removeChild(name string) {
	n.children = slices.DeleteFunc(n.children, func(c *node) bool {
		return c.kind == elementNode && c.name == name
	})
}

// text concatenates every character data node beneath n.
func (n *node) text() string {
	var buf bytes.Buffer
	var walk func(*node)
	walk = func(x *node) {
		if x.kind == textNode {
			buf.WriteString(x.data)
			return
		}
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// ensureOrderedChild returns the child called name, creating it at the
// position the schema sequence order requires.
func (n *node) ensureOrderedChild(name string, order []string) *node {
	if c := n.child(name); c != nil {
		return c
	}

	rank := slices.Index(order, name)
	el := newElement(name)
	for i, c := range n.children {
		if c.kind != elementNode {
			continue
		}
		if r := slices.Index(order, c.name); r > rank && rank >= 0 {
			n.children = slices.Insert(n.children, i, el)
			return el
		}
	}
	n.children = append(n.children, el)
	return el
}

// wordPrefix is the prefix every WordprocessingML lookup in this package uses.
const wordPrefix = "w"

// bindWordPrefix rewrites a part whose root binds the WordprocessingML
// namespace to another prefix, or to the default namespace, so that its
// elements and attributes use the w prefix. The root gains an xmlns:w
// declaration when it lacks one and keeps its original one, so the written
// part stays well formed. A root that binds w to another namespace is left as is.
func bindWordPrefix(root *node) {
	el := root.firstElement()
	if el == nil {
		return
	}
	declared, hasWord := el.attr("xmlns:" + wordPrefix)
	if hasWord && declared != wordNamespace {
		return
	}

	from, found := "", false
	for _, a := range el.attrs {
		if a.Value != wordNamespace || a.Name.Local == "xmlns:"+wordPrefix {
			continue
		}
		if a.Name.Local == "xmlns" {
			from, found = "", true
			break
		}
		if prefix, ok := strings.CutPrefix(a.Name.Local, "xmlns:"); ok {
			from, found = prefix, true
			break
		}
	}
	if !found {
		return
	}

	if !hasWord {
		el.attrs = append(el.attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + wordPrefix}, Value: wordNamespace})
	}
	el.rebindPrefix(from)
}

// rebindPrefix renames names bound through from to the w prefix. Subtrees that
// rebind from to another namespace are left alone.
func (n *node) rebindPrefix(from string) {
	if n.kind == elementNode {
		decl := "xmlns"
		if from != "" {
			decl += ":" + from
		}
		if v, ok := n.attr(decl); ok && v != wordNamespace {
			return
		}

		n.name = rebindName(n.name, from)
		if from != "" {
			// Unprefixed attributes belong to no namespace, so only prefixed ones move.
			for i := range n.attrs {
				if local, ok := strings.CutPrefix(n.attrs[i].Name.Local, from+":"); ok {
					n.attrs[i].Name.Local = wordPrefix + ":" + local
				}
			}
		}
	}
	for _, c := range n.children {
		c.rebindPrefix(from)
	}
}

func rebindName(name, from string) string {
	if from == "" {
		if strings.Contains(name, ":") {
			return name
		}
		return wordPrefix + ":" + name
	}
	if local, ok := strings.CutPrefix(name, from+":"); ok {
		return wordPrefix + ":" + local
	}
	return name
}
