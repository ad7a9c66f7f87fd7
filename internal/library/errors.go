package library

import (
	"errors"
	"fmt"
)

// ErrInvalidProject is returned when adding a project without a name.
var ErrInvalidProject = errors.New("invalid project")

// PersistenceError reports a document that could not be read, parsed
// or written.
type PersistenceError struct {
	Op   string // "load", "save", "bootstrap" or "restore"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SchemaError reports a parseable document with the wrong shape:
// a missing field, a wrong type or an unknown status token.
// It is always wrapped in a PersistenceError.
type SchemaError struct {
	Field string // e.g. "projects[2].status"; empty for the document root
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema violation at %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("schema violation: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
