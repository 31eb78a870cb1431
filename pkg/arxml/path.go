package arxml

import (
	"strings"

	"github.com/beevik/etree"
)

// Path is a compiled restricted-XPath expression. Zero value matches
// nothing; obtain one through ParsePath.
type Path struct {
	anchor   pathAnchor
	segments []pathSegment
}

type pathAnchor int

const (
	// Relative expression: the first segment matches the root's children.
	anchorChildren pathAnchor = iota
	// Leading "/": the first segment matches the root element itself.
	anchorRoot
	// Leading "//": the first segment matches the root and every descendant.
	anchorDescend
)

type pathSegment struct {
	tag      string
	wildcard bool
	pred     *attrPredicate
}

type attrPredicate struct {
	name  string
	value string
}

// ParsePath compiles a restricted XPath expression. The supported grammar
// is:
//
//	path      = [ "//" | "/" ] segment { "/" segment }
//	segment   = ( "*" | NAME ) [ predicate ]
//	predicate = "[@" NAME "='" VALUE "']"
//
// with at most one predicate per segment. NAME is any run of characters
// excluding "/[]@='*", and VALUE excludes quotes and "]". There are no
// functions, no parent or sibling axes, and no interior "//". Malformed
// input produces a path syntax error.
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return Path{}, NewPathSyntaxError(expr, 0, "empty expression")
	}

	rest := expr
	pos := 0
	anchor := anchorChildren
	if strings.HasPrefix(rest, "//") {
		anchor = anchorDescend
		rest = rest[2:]
		pos = 2
	} else if strings.HasPrefix(rest, "/") {
		anchor = anchorRoot
		rest = rest[1:]
		pos = 1
	}
	if rest == "" {
		return Path{}, NewPathSyntaxError(expr, pos, "expected a segment")
	}

	// Split on '/' outside predicate brackets.
	var raws []string
	var offsets []int
	segStart := 0
	inPred := false
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '[':
			if inPred {
				return Path{}, NewPathSyntaxError(expr, pos+i, "nested '[' in predicate")
			}
			inPred = true
		case ']':
			if !inPred {
				return Path{}, NewPathSyntaxError(expr, pos+i, "unmatched ']'")
			}
			inPred = false
		case '/':
			if !inPred {
				raws = append(raws, rest[segStart:i])
				offsets = append(offsets, pos+segStart)
				segStart = i + 1
			}
		}
	}
	if inPred {
		return Path{}, NewPathSyntaxError(expr, pos+len(rest), "unterminated predicate")
	}
	raws = append(raws, rest[segStart:])
	offsets = append(offsets, pos+segStart)

	path := Path{anchor: anchor}
	for i, raw := range raws {
		seg, err := parseSegment(expr, raw, offsets[i])
		if err != nil {
			return Path{}, err
		}
		path.segments = append(path.segments, seg)
	}
	return path, nil
}

func parseSegment(expr, raw string, off int) (pathSegment, error) {
	if raw == "" {
		return pathSegment{}, NewPathSyntaxError(expr, off, "empty segment")
	}

	name := raw
	predRaw := ""
	hasPred := false
	if i := strings.IndexByte(raw, '['); i >= 0 {
		if !strings.HasSuffix(raw, "]") {
			return pathSegment{}, NewPathSyntaxError(expr, off+len(raw)-1, "unexpected characters after predicate")
		}
		name = raw[:i]
		predRaw = raw[i+1 : len(raw)-1]
		hasPred = true
	}

	if name == "" {
		return pathSegment{}, NewPathSyntaxError(expr, off, "missing tag name before predicate")
	}
	seg := pathSegment{tag: name, wildcard: name == "*"}
	if !seg.wildcard && strings.ContainsAny(name, "*@=']\"") {
		return pathSegment{}, NewPathSyntaxError(expr, off, "invalid character in tag name")
	}

	if hasPred {
		pred, err := parsePredicate(expr, predRaw, off+len(name)+1)
		if err != nil {
			return pathSegment{}, err
		}
		seg.pred = pred
	}
	return seg, nil
}

func parsePredicate(expr, raw string, off int) (*attrPredicate, error) {
	if raw == "" {
		return nil, NewPathSyntaxError(expr, off, "empty predicate")
	}
	if raw[0] != '@' {
		return nil, NewPathSyntaxError(expr, off, "predicate must start with '@'")
	}

	rest := raw[1:]
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return nil, NewPathSyntaxError(expr, off, "expected '=' in predicate")
	}
	name := rest[:eq]
	if name == "" {
		return nil, NewPathSyntaxError(expr, off, "missing attribute name in predicate")
	}

	val := rest[eq+1:]
	if len(val) < 2 || val[0] != '\'' || val[len(val)-1] != '\'' {
		return nil, NewPathSyntaxError(expr, off+1+eq+1, "attribute value must be single-quoted")
	}
	inner := val[1 : len(val)-1]
	if strings.ContainsRune(inner, '\'') {
		return nil, NewPathSyntaxError(expr, off+1+eq+1, "unexpected quote inside attribute value")
	}
	return &attrPredicate{name: name, value: inner}, nil
}

func (s pathSegment) matches(el *etree.Element) bool {
	if !s.wildcard && fullTag(el) != s.tag {
		return false
	}
	if s.pred != nil {
		attr := selectAttr(el, s.pred.name)
		if attr == nil || attr.Value != s.pred.value {
			return false
		}
	}
	return true
}

// Evaluate returns the elements selected by the path in document order,
// rooted at root. A nil root yields no matches.
func (p Path) Evaluate(root *etree.Element) []*etree.Element {
	if root == nil || len(p.segments) == 0 {
		return nil
	}

	first := p.segments[0]
	var current []*etree.Element
	switch p.anchor {
	case anchorRoot:
		if first.matches(root) {
			current = append(current, root)
		}
	case anchorDescend:
		walkElements(root, func(el *etree.Element) {
			if first.matches(el) {
				current = append(current, el)
			}
		})
	default:
		for _, child := range root.ChildElements() {
			if first.matches(child) {
				current = append(current, child)
			}
		}
	}

	for _, seg := range p.segments[1:] {
		var next []*etree.Element
		for _, el := range current {
			for _, child := range el.ChildElements() {
				if seg.matches(child) {
					next = append(next, child)
				}
			}
		}
		current = next
	}
	return current
}

// fullTag folds a namespace prefix into the tag name, matching how the tag
// appears in the source document.
func fullTag(el *etree.Element) string {
	if el.Space != "" {
		return el.Space + ":" + el.Tag
	}
	return el.Tag
}

func fullKey(a etree.Attr) string {
	if a.Space != "" {
		return a.Space + ":" + a.Key
	}
	return a.Key
}

func selectAttr(el *etree.Element, name string) *etree.Attr {
	for i := range el.Attr {
		if fullKey(el.Attr[i]) == name {
			return &el.Attr[i]
		}
	}
	return nil
}
