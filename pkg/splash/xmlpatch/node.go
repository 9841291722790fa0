package xmlpatch

import (
	"strings"
)

// Node is markup to be written into a document.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []Node
}

// NewNode builds a node with attributes given as name/value pairs.
func NewNode(name string, attrs ...string) Node {
	n := Node{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attrs = append(n.Attrs, Attr{Name: attrs[i], Value: attrs[i+1]})
	}
	return n
}

// WithText returns a copy of n holding text.
func (n Node) WithText(text string) Node {
	n.Text = text
	return n
}

// WithChildren returns a copy of n holding children.
func (n Node) WithChildren(children ...Node) Node {
	n.Children = children
	return n
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Render writes n with its first line unindented and nested lines indented
// by indent plus one step per level.
func (n Node) Render(indent, step string) string {
	var b strings.Builder
	n.render(&b, indent, step)
	return b.String()
}

func (n Node) render(b *strings.Builder, indent, step string) {
	b.WriteString("<")
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteString(`"`)
	}

	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")

	if len(n.Children) == 0 {
		b.WriteString(textEscaper.Replace(n.Text))
	} else {
		for _, c := range n.Children {
			b.WriteString("\n")
			b.WriteString(indent + step)
			c.render(b, indent+step, step)
		}
		b.WriteString("\n")
		b.WriteString(indent)
	}

	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteString(">")
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// Match selects elements by tag and, optionally, an identifying attribute.
// A Value beginning with "." also matches attribute values that end with
// it, so ".MainActivity" finds "com.example.app.MainActivity".
type Match struct {
	Tag   string
	Attr  string
	Value string
}

// Matches reports whether e is selected.
func (m Match) Matches(e *Element) bool {
	if e.Name != m.Tag {
		return false
	}
	if m.Attr == "" {
		return true
	}
	v, ok := e.Attr(m.Attr)
	if !ok {
		return false
	}
	if v == m.Value {
		return true
	}
	return strings.HasPrefix(m.Value, ".") && strings.HasSuffix(v, m.Value)
}

func keyOf(n Node, keyAttr string) Match {
	return Match{Tag: n.Name, Attr: keyAttr, Value: n.Attr(keyAttr)}
}
