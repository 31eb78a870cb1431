package arxml

import "github.com/beevik/etree"

// Editor performs attribute sweeps over a document tree. Each sweep is a
// single synchronous pass with no rollback: attribute writes on individual
// elements cannot fail once the element is in hand.
type Editor struct {
	finder *Finder
}

// NewEditor creates a new attribute editor.
func NewEditor() *Editor {
	return &Editor{finder: NewFinder()}
}

// AddAttributeByTag sets attribute name to value on every element matching
// tag, overwriting any existing value. It returns the number of elements
// touched; zero matches is a no-op, not an error.
func (ed *Editor) AddAttributeByTag(root *etree.Element, tag, name, value string) int {
	elements := ed.finder.ByTag(root, tag)
	for _, el := range elements {
		el.CreateAttr(name, value)
	}
	return len(elements)
}

// EditAttributeByTag updates attribute name to value on every element
// matching tag that already carries the attribute. Elements matching the tag
// but lacking the attribute are left untouched. It reports whether at least
// one element was updated.
func (ed *Editor) EditAttributeByTag(root *etree.Element, tag, name, value string) bool {
	updated := false
	for _, el := range ed.finder.ByTag(root, tag) {
		if selectAttr(el, name) != nil {
			el.CreateAttr(name, value)
			updated = true
		}
	}
	return updated
}

// DeleteAttributeByTag removes attribute name from every element matching
// tag that carries it. It returns the number of attributes removed.
func (ed *Editor) DeleteAttributeByTag(root *etree.Element, tag, name string) int {
	removed := 0
	for _, el := range ed.finder.ByTag(root, tag) {
		if el.RemoveAttr(name) != nil {
			removed++
		}
	}
	return removed
}
