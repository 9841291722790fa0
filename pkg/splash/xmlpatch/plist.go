package xmlpatch

import (
	"fmt"
	"strings"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// SetPlistString sets key to a <string> value in the top-level <dict> of a
// property list. An existing value element is replaced in place; a missing
// key is appended to the dict.
func SetPlistString(src []byte, key, value string) ([]byte, error) {
	doc, err := parseRoot(src, "plist")
	if err != nil {
		return nil, err
	}

	dict := doc.Root.Child(Match{Tag: "dict"})
	if dict == nil {
		return nil, fmt.Errorf("%w: <plist> has no <dict>", splasherrors.ErrPatchAnchorNotFound)
	}

	valueNode := NewNode("string").WithText(value)
	children := dict.Children
	for i, c := range children {
		if c.Name != "key" || strings.TrimSpace(c.Text) != key {
			continue
		}
		if i+1 < len(children) && children[i+1].Name != "key" {
			return replaceElement(doc, children[i+1], valueNode), nil
		}
		// Key without a value: add one right after it.
		indent := lineLeading(doc.src, c.Start)
		return doc.splice(c.End, c.End, "\n"+indent+valueNode.Render(indent, doc.indentStep())), nil
	}

	keyNode := NewNode("key").WithText(key)
	return insertBeforeClose(doc, dict, keyNode, valueNode), nil
}

// PlistString returns the <string> value stored under key in the top-level
// <dict>, if any.
func PlistString(src []byte, key string) (string, bool) {
	doc, err := parseRoot(src, "plist")
	if err != nil {
		return "", false
	}
	dict := doc.Root.Child(Match{Tag: "dict"})
	if dict == nil {
		return "", false
	}
	children := dict.Children
	for i, c := range children {
		if c.Name == "key" && strings.TrimSpace(c.Text) == key && i+1 < len(children) && children[i+1].Name == "string" {
			return children[i+1].Text, true
		}
	}
	return "", false
}
