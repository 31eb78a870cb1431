package arxml

import "github.com/beevik/etree"

// Finder locates elements within a document tree. Searches are
// descendant-or-self: the element a search starts from can itself match.
// Results are in document order (depth-first, pre-order).
type Finder struct{}

// NewFinder creates a new element finder.
func NewFinder() *Finder {
	return &Finder{}
}

// ByTag returns every element in the tree rooted at root whose tag equals
// tag. Matching is exact and case-sensitive; no match yields an empty
// result, not an error.
func (f *Finder) ByTag(root *etree.Element, tag string) []*etree.Element {
	var matches []*etree.Element
	walkElements(root, func(el *etree.Element) {
		if fullTag(el) == tag {
			matches = append(matches, el)
		}
	})
	return matches
}

// ByPath compiles expr with ParsePath and evaluates it against root. A
// malformed expression produces a path syntax error.
func (f *Finder) ByPath(root *etree.Element, expr string) ([]*etree.Element, error) {
	path, err := ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return path.Evaluate(root), nil
}

// ByAttribute returns every element in the tree rooted at root whose
// attribute name equals value exactly. Elements without the attribute never
// match.
func (f *Finder) ByAttribute(root *etree.Element, name, value string) []*etree.Element {
	var matches []*etree.Element
	walkElements(root, func(el *etree.Element) {
		if attr := selectAttr(el, name); attr != nil && attr.Value == value {
			matches = append(matches, el)
		}
	})
	return matches
}

func walkElements(el *etree.Element, visit func(*etree.Element)) {
	if el == nil {
		return
	}
	visit(el)
	for _, child := range el.ChildElements() {
		walkElements(child, visit)
	}
}
