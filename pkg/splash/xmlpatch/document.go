// Package xmlpatch applies keyed, idempotent edits to XML resource files
// (Android resources and manifests, Apple property lists).
//
// A file is parsed into a minimal element tree that remembers the byte span
// of every open and close tag. Edits locate entries by tag and identifying
// attribute and splice freshly rendered markup into the original bytes, so
// everything outside the edited entry is preserved exactly.
package xmlpatch

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// Attr is an attribute with its prefixed name, e.g. "android:name".
type Attr struct {
	Name  string
	Value string
}

// Element is a parsed element and the byte spans of its tags.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string // direct character data, concatenated
	Parent   *Element
	Children []*Element

	Start       int // offset of '<' of the open tag
	OpenEnd     int // offset just past the open tag
	CloseStart  int // offset of the close tag; OpenEnd when self-closing
	End         int // offset just past the close tag
	SelfClosing bool
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first element in document order, starting with e
// itself, for which match returns true.
func (e *Element) Find(match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// Child returns the first direct child accepted by m.
func (e *Element) Child(m Match) *Element {
	for _, c := range e.Children {
		if m.Matches(c) {
			return c
		}
	}
	return nil
}

// Document is a parsed XML file.
type Document struct {
	src     []byte
	newline string
	Root    *Element
}

// Parse builds the element tree for src. Syntax errors wrap
// ErrMalformedResource; a missing root element or a missing close tag
// wraps ErrPatchAnchorNotFound.
func Parse(src []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))
	doc := &Document{src: src, newline: detectNewline(src)}
	var stack []*Element

	for {
		start := int(dec.InputOffset())
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", splasherrors.ErrMalformedResource, err)
		}
		end := int(dec.InputOffset())

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: qualified(t.Name), Start: start, OpenEnd: end}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				el.Parent = parent
				parent.Children = append(parent.Children, el)
			} else if doc.Root == nil {
				doc.Root = el
			} else {
				return nil, fmt.Errorf("%w: second root element <%s> at offset %d", splasherrors.ErrMalformedResource, el.Name, start)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualified(t.Name)
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s> at offset %d", splasherrors.ErrMalformedResource, name, start)
			}
			el := stack[len(stack)-1]
			if el.Name != name {
				return nil, fmt.Errorf("%w: </%s> at offset %d closes <%s>", splasherrors.ErrMalformedResource, name, start, el.Name)
			}
			stack = stack[:len(stack)-1]

			// A self-closing tag yields a synthetic end token without
			// consuming input.
			if start == end {
				el.SelfClosing = true
				el.CloseStart, el.End = el.OpenEnd, el.OpenEnd
			} else {
				el.CloseStart, el.End = start, end
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: closing </%s> not found", splasherrors.ErrPatchAnchorNotFound, stack[len(stack)-1].Name)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("%w: no root element", splasherrors.ErrPatchAnchorNotFound)
	}
	return doc, nil
}

// Bytes returns the source the document was parsed from.
func (d *Document) Bytes() []byte { return d.src }

// indentStep guesses the unit of indentation used by the document: the
// difference between the first nested element's indentation and its
// parent's. Documents without nesting fall back to a tab when any line is
// tab-indented, four spaces otherwise.
func (d *Document) indentStep() string {
	if step := findStep(d.src, d.Root); step != "" {
		return step
	}
	if bytes.Contains(d.src, []byte("\n\t")) {
		return "\t"
	}
	return "    "
}

func findStep(src []byte, e *Element) string {
	parentIndent := lineLeading(src, e.Start)
	for _, c := range e.Children {
		if indent, _, ok := lineIndent(src, c.Start); ok {
			if len(indent) > len(parentIndent) && strings.HasPrefix(indent, parentIndent) {
				return indent[len(parentIndent):]
			}
		}
		if step := findStep(src, c); step != "" {
			return step
		}
	}
	return ""
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// lineIndent returns the whitespace between the start of pos's line and
// pos, if nothing else precedes pos on that line.
func lineIndent(src []byte, pos int) (indent string, lineStart int, ok bool) {
	i := pos
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}
	if i == 0 || src[i-1] == '\n' {
		return string(src[i:pos]), i, true
	}
	return "", 0, false
}

// lineLeading returns the leading whitespace of the line containing pos.
func lineLeading(src []byte, pos int) string {
	start := bytes.LastIndexByte(src[:pos], '\n') + 1
	end := start
	for end < pos && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

// lineEnd returns the offset just past the newline that ends pos's line,
// if only whitespace follows pos on that line.
func lineEnd(src []byte, pos int) (int, bool) {
	j := pos
	for j < len(src) && (src[j] == ' ' || src[j] == '\t' || src[j] == '\r') {
		j++
	}
	if j == len(src) {
		return j, true
	}
	if src[j] == '\n' {
		return j + 1, true
	}
	return 0, false
}

// detectNewline returns the line ending of the first line in src.
func detectNewline(src []byte) string {
	if i := bytes.IndexByte(src, '\n'); i > 0 && src[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// splice replaces src[from:to] with insert, whose line endings are
// rewritten to match the document.
func (d *Document) splice(from, to int, insert string) []byte {
	if d.newline != "\n" {
		insert = strings.ReplaceAll(strings.ReplaceAll(insert, "\r\n", "\n"), "\n", d.newline)
	}
	return splice(d.src, from, to, insert)
}

func splice(src []byte, from, to int, insert string) []byte {
	out := make([]byte, 0, len(src)-(to-from)+len(insert))
	out = append(out, src[:from]...)
	out = append(out, insert...)
	out = append(out, src[to:]...)
	return out
}
