package arxml

import (
	"encoding/json"
	"strings"

	"github.com/beevik/etree"
)

// Node is the JSON representation of one element: tag name, attribute
// mapping, trimmed text content, and children in document order. The
// "attributes" and "children" keys are always present; "text" is omitted
// when the element has no non-whitespace text.
type Node struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes"`
	Text       string            `json:"text,omitempty"`
	Children   []*Node           `json:"children"`
}

// ExportTree converts the tree rooted at root into its Node representation.
// The conversion is pure and idempotent; the tree is not modified. XML
// comments and processing instructions are not represented; namespace
// prefixes are folded into tag and attribute names as they appear in the
// source.
func ExportTree(root *etree.Element) *Node {
	if root == nil {
		return nil
	}

	node := &Node{
		Tag:        fullTag(root),
		Attributes: make(map[string]string, len(root.Attr)),
		Text:       strings.TrimSpace(root.Text()),
		Children:   []*Node{},
	}
	for _, attr := range root.Attr {
		node.Attributes[fullKey(attr)] = attr.Value
	}
	for _, child := range root.ChildElements() {
		node.Children = append(node.Children, ExportTree(child))
	}
	return node
}

// MarshalIndent renders the node as UTF-8 JSON with the given number of
// spaces per indentation level. An indent of zero or less produces compact
// output. Attribute keys are emitted in sorted order, keeping the output
// deterministic.
func (n *Node) MarshalIndent(indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(n)
	}
	return json.MarshalIndent(n, "", strings.Repeat(" ", indent))
}
