package arxml

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

// Document holds one parsed ARXML tree together with the path it was loaded
// from. The tree is mutable and shared by reference; the finder, editor, and
// exporter all operate on it directly without copying.
type Document struct {
	tree *etree.Document
	path string
}

// LoadDocument parses the file at path into an in-memory tree. It returns a
// not-found error if the path does not exist, an IO error if the path exists
// but cannot be read, and a parse error if the content is not well-formed
// XML.
func LoadDocument(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewNotFoundError(path)
		}
		return nil, NewIOError("load", path, err)
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, NewIOError("load", path, err)
		}
		return nil, NewParseError(path, err)
	}

	if tree.Root() == nil {
		return nil, NewParseError(path, errors.New("missing root element"))
	}

	return &Document{tree: tree, path: path}, nil
}

// Root returns the root element of the tree.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// Path returns the path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Save serializes the tree to path as UTF-8 XML, creating parent directories
// as needed. A positive indent re-indents the output by that many spaces per
// level; the serialized copy is indented, not the in-memory tree. Failures
// are reported as IO errors.
func (d *Document) Save(path string, indent int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewIOError("save", path, err)
		}
	}

	out := d.tree.Copy()
	if indent > 0 {
		out.Indent(indent)
	}

	if err := out.WriteToFile(path); err != nil {
		return NewIOError("save", path, err)
	}

	return nil
}
