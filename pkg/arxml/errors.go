package arxml

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a load path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// NewNotFoundError creates a new not-found error for a load path.
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

// ParseError indicates content that is not well-formed XML.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid XML in %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("invalid XML in %s", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error for malformed XML content.
func NewParseError(path string, cause error) error {
	return &ParseError{Path: path, Cause: cause}
}

// PathSyntaxError indicates a malformed path expression.
type PathSyntaxError struct {
	Expr     string
	Position int
	Message  string
}

func (e *PathSyntaxError) Error() string {
	return fmt.Sprintf("invalid path expression %q at position %d: %s", e.Expr, e.Position, e.Message)
}

// NewPathSyntaxError creates a new path syntax error with position information.
func NewPathSyntaxError(expr string, position int, message string) error {
	return &PathSyntaxError{Expr: expr, Position: position, Message: message}
}

// NoDocumentError indicates an operation invoked before a successful Load.
type NoDocumentError struct {
	Operation string
}

func (e *NoDocumentError) Error() string {
	return fmt.Sprintf("%s: no ARXML file loaded", e.Operation)
}

// NewNoDocumentError creates a new no-document error for the named operation.
func NewNoDocumentError(operation string) error {
	return &NoDocumentError{Operation: operation}
}

// IOError indicates a read or write failure on an existing path.
type IOError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NewIOError creates a new IO error for the named operation and path.
func NewIOError(operation, path string, cause error) error {
	return &IOError{Operation: operation, Path: path, Cause: cause}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsParse reports whether err is an XML parse error.
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsPathSyntax reports whether err is a path syntax error.
func IsPathSyntax(err error) bool {
	var target *PathSyntaxError
	return errors.As(err, &target)
}

// IsNoDocument reports whether err is a no-document error.
func IsNoDocument(err error) bool {
	var target *NoDocumentError
	return errors.As(err, &target)
}

// IsIO reports whether err is an IO error.
func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}
