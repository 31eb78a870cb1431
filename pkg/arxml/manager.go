package arxml

import (
	"errors"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Manager composes document loading, element search, attribute editing, and
// JSON export behind a single entry point. Every operation except Load
// requires a successfully loaded document and fails with a no-document error
// otherwise.
//
// Each Manager owns at most one document; Load replaces it wholly. A Manager
// is not safe for concurrent use without external locking.
type Manager struct {
	config *Config
	logger *zap.Logger
	finder *Finder
	editor *Editor
	doc    *Document
}

// Option represents a configuration option for a Manager.
type Option func(*Manager)

// WithConfig returns an option that sets the manager configuration.
func WithConfig(config *Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithLogger returns an option that sets the manager's logger. Without it
// the manager is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithFinder returns an option that substitutes a custom element finder.
func WithFinder(finder *Finder) Option {
	return func(m *Manager) {
		m.finder = finder
	}
}

// WithEditor returns an option that substitutes a custom attribute editor.
func WithEditor(editor *Editor) Option {
	return func(m *Manager) {
		m.editor = editor
	}
}

// NewManager creates a manager with the given options applied over
// defaults. Each call returns an independent instance with its own document
// state; there is no process-wide shared manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		logger: zap.NewNop(),
		finder: NewFinder(),
		editor: NewEditor(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewStandardManager returns a ready-to-use manager with default
// configuration.
func NewStandardManager() *Manager {
	return NewManager()
}

// Load parses the ARXML file at path and makes it the manager's current
// document. On failure the previously loaded document, if any, is left
// unchanged.
func (m *Manager) Load(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	m.doc = doc
	m.logger.Info("loaded ARXML file", zap.String("path", path))
	return nil
}

// Loaded reports whether a document is currently loaded.
func (m *Manager) Loaded() bool {
	return m.doc != nil
}

// Path returns the path of the currently loaded document, or "" if none is
// loaded.
func (m *Manager) Path() string {
	if m.doc == nil {
		return ""
	}
	return m.doc.Path()
}

// Save writes the current document to path. An empty path writes back to
// the path the document was loaded from.
func (m *Manager) Save(path string) error {
	if err := m.requireDocument("save"); err != nil {
		return err
	}
	if path == "" {
		path = m.doc.Path()
	}
	if path == "" {
		return NewIOError("save", "", errors.New("no output path specified"))
	}
	if err := m.doc.Save(path, m.config.XMLIndent); err != nil {
		return err
	}
	m.logger.Info("saved ARXML file", zap.String("path", path))
	return nil
}

// FindByTag returns every element in the document whose tag equals tag.
func (m *Manager) FindByTag(tag string) ([]*etree.Element, error) {
	if err := m.requireDocument("find by tag"); err != nil {
		return nil, err
	}
	return m.finder.ByTag(m.doc.Root(), tag), nil
}

// FindByPath evaluates a restricted XPath expression against the document.
// See ParsePath for the supported grammar.
func (m *Manager) FindByPath(expr string) ([]*etree.Element, error) {
	if err := m.requireDocument("find by path"); err != nil {
		return nil, err
	}
	return m.finder.ByPath(m.doc.Root(), expr)
}

// FindByAttribute returns every element carrying attribute name with
// exactly the given value.
func (m *Manager) FindByAttribute(name, value string) ([]*etree.Element, error) {
	if err := m.requireDocument("find by attribute"); err != nil {
		return nil, err
	}
	return m.finder.ByAttribute(m.doc.Root(), name, value), nil
}

// AddAttributeByTag sets attribute name to value on every element matching
// tag and returns the number of elements touched.
func (m *Manager) AddAttributeByTag(tag, name, value string) (int, error) {
	if err := m.requireDocument("add attribute"); err != nil {
		return 0, err
	}
	count := m.editor.AddAttributeByTag(m.doc.Root(), tag, name, value)
	m.logger.Debug("added attribute",
		zap.String("tag", tag),
		zap.String("name", name),
		zap.Int("count", count))
	return count, nil
}

// EditAttributeByTag updates attribute name on every element matching tag
// that already carries it, reporting whether at least one was updated.
func (m *Manager) EditAttributeByTag(tag, name, value string) (bool, error) {
	if err := m.requireDocument("edit attribute"); err != nil {
		return false, err
	}
	updated := m.editor.EditAttributeByTag(m.doc.Root(), tag, name, value)
	m.logger.Debug("edited attribute",
		zap.String("tag", tag),
		zap.String("name", name),
		zap.Bool("updated", updated))
	return updated, nil
}

// DeleteAttributeByTag removes attribute name from every element matching
// tag and returns the number of attributes removed.
func (m *Manager) DeleteAttributeByTag(tag, name string) (int, error) {
	if err := m.requireDocument("delete attribute"); err != nil {
		return 0, err
	}
	count := m.editor.DeleteAttributeByTag(m.doc.Root(), tag, name)
	m.logger.Debug("deleted attribute",
		zap.String("tag", tag),
		zap.String("name", name),
		zap.Int("count", count))
	return count, nil
}

// Export converts the document tree to its Node representation.
func (m *Manager) Export() (*Node, error) {
	if err := m.requireDocument("export"); err != nil {
		return nil, err
	}
	return ExportTree(m.doc.Root()), nil
}

// ExportJSON renders the document tree as JSON using the configured indent.
func (m *Manager) ExportJSON() ([]byte, error) {
	node, err := m.Export()
	if err != nil {
		return nil, err
	}
	return node.MarshalIndent(m.config.JSONIndent)
}

func (m *Manager) requireDocument(operation string) error {
	if m.doc == nil {
		return NewNoDocumentError(operation)
	}
	return nil
}
