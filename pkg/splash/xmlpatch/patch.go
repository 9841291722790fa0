package xmlpatch

import (
	"fmt"
	"strings"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// UpsertValue sets the value of <tag name="name"> directly below the root
// element, which must be named root. An existing entry keeps its position
// and attributes and only its content is replaced; a new entry is inserted
// before the root's close tag.
func UpsertValue(src []byte, root, tag, name, value string) ([]byte, error) {
	doc, err := parseRoot(src, root)
	if err != nil {
		return nil, err
	}

	node := NewNode(tag, "name", name).WithText(value)
	el := doc.Root.Child(keyOf(node, "name"))
	if el == nil {
		return insertBeforeClose(doc, doc.Root, node), nil
	}
	if el.SelfClosing || len(el.Children) > 0 {
		node.Attrs = append([]Attr(nil), el.Attrs...)
		return replaceElement(doc, el, node), nil
	}
	return splice(src, el.OpenEnd, el.CloseStart, textEscaper.Replace(value)), nil
}

// UpsertElement replaces the whole root-level element identified by node's
// keyAttr value, nested content included, or inserts node before the
// root's close tag. Other elements sharing the tag are left untouched.
func UpsertElement(src []byte, root, keyAttr string, node Node) ([]byte, error) {
	doc, err := parseRoot(src, root)
	if err != nil {
		return nil, err
	}

	if el := doc.Root.Child(keyOf(node, keyAttr)); el != nil {
		return replaceElement(doc, el, node), nil
	}
	return insertBeforeClose(doc, doc.Root, node), nil
}

// UpsertChildren finds the first element selected by anchor and, for each
// node, replaces the child with the same keyAttr value or inserts the node
// right after the anchor's open tag. New nodes keep their relative order.
func UpsertChildren(src []byte, anchor Match, keyAttr string, nodes ...Node) ([]byte, error) {
	out := src
	for i := len(nodes) - 1; i >= 0; i-- {
		doc, parent, err := findAnchor(out, anchor)
		if err != nil {
			return nil, err
		}

		if el := parent.Child(keyOf(nodes[i], keyAttr)); el != nil {
			out = replaceElement(doc, el, nodes[i])
		} else {
			out = insertAfterOpen(doc, parent, nodes[i])
		}
	}
	return out, nil
}

// RemoveChildren deletes the children of the anchor element selected by
// keys. Missing children are ignored.
func RemoveChildren(src []byte, anchor Match, keys ...Match) ([]byte, error) {
	out := src
	for _, key := range keys {
		doc, parent, err := findAnchor(out, anchor)
		if err != nil {
			return nil, err
		}
		if el := parent.Child(key); el != nil {
			out = removeElement(doc, el)
		}
	}
	return out, nil
}

func parseRoot(src []byte, root string) (*Document, error) {
	doc, err := Parse(src)
	if err != nil {
		return nil, err
	}
	if doc.Root.Name != root {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", splasherrors.ErrPatchAnchorNotFound, doc.Root.Name, root)
	}
	return doc, nil
}

func findAnchor(src []byte, anchor Match) (*Document, *Element, error) {
	doc, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	parent := doc.Root.Find(anchor.Matches)
	if parent == nil {
		return nil, nil, fmt.Errorf("%w: no <%s %s=%q>", splasherrors.ErrPatchAnchorNotFound, anchor.Tag, anchor.Attr, anchor.Value)
	}
	return doc, parent, nil
}

func replaceElement(doc *Document, el *Element, node Node) []byte {
	indent := lineLeading(doc.src, el.Start)
	return doc.splice(el.Start, el.End, node.Render(indent, doc.indentStep()))
}

func removeElement(doc *Document, el *Element) []byte {
	src := doc.src
	if _, lineStart, ok := lineIndent(src, el.Start); ok {
		if end, ok := lineEnd(src, el.End); ok {
			return doc.splice(lineStart, end, "")
		}
	}
	return doc.splice(el.Start, el.End, "")
}

// childIndent returns the indentation used for parent's children: that of
// an existing child on its own line, else the parent's plus one step.
func childIndent(doc *Document, parent *Element, preferLast bool) string {
	children := parent.Children
	for i := range children {
		c := children[i]
		if preferLast {
			c = children[len(children)-1-i]
		}
		if indent, _, ok := lineIndent(doc.src, c.Start); ok {
			return indent
		}
	}
	return lineLeading(doc.src, parent.Start) + doc.indentStep()
}

func insertBeforeClose(doc *Document, parent *Element, nodes ...Node) []byte {
	src := doc.src
	step := doc.indentStep()
	if parent.SelfClosing {
		return expand(doc, parent, nodes)
	}

	indent := childIndent(doc, parent, true)
	var b strings.Builder

	if _, lineStart, ok := lineIndent(src, parent.CloseStart); ok {
		for _, n := range nodes {
			b.WriteString(indent)
			b.WriteString(n.Render(indent, step))
			b.WriteString("\n")
		}
		return doc.splice(lineStart, lineStart, b.String())
	}

	for _, n := range nodes {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(n.Render(indent, step))
	}
	b.WriteString("\n")
	b.WriteString(lineLeading(src, parent.Start))
	return doc.splice(parent.CloseStart, parent.CloseStart, b.String())
}

func insertAfterOpen(doc *Document, parent *Element, nodes ...Node) []byte {
	src := doc.src
	step := doc.indentStep()
	if parent.SelfClosing {
		return expand(doc, parent, nodes)
	}

	indent := childIndent(doc, parent, false)
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(n.Render(indent, step))
	}

	// Keep the close tag on its own line when nothing else separates it
	// from the open tag.
	if len(parent.Children) == 0 {
		if _, _, ok := lineIndent(src, parent.CloseStart); !ok {
			b.WriteString("\n")
			b.WriteString(lineLeading(src, parent.Start))
		}
	}
	return doc.splice(parent.OpenEnd, parent.OpenEnd, b.String())
}

// expand rewrites a self-closing element as an open/close pair holding nodes.
func expand(doc *Document, parent *Element, nodes []Node) []byte {
	src := doc.src
	step := doc.indentStep()
	parentIndent := lineLeading(src, parent.Start)
	indent := parentIndent + step

	open := strings.TrimSuffix(string(src[parent.Start:parent.OpenEnd]), "/>")
	open = strings.TrimRight(open, " \t\r\n")

	var b strings.Builder
	b.WriteString(open)
	b.WriteString(">")
	for _, n := range nodes {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(n.Render(indent, step))
	}
	b.WriteString("\n")
	b.WriteString(parentIndent)
	b.WriteString("</")
	b.WriteString(parent.Name)
	b.WriteString(">")
	return doc.splice(parent.Start, parent.OpenEnd, b.String())
}
