package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema is the sentinel every SchemaError wraps. Callers that
// only care "was this a schema problem" should use errors.Is against this
// value rather than type-asserting SchemaError directly.
var ErrInvalidSchema = errors.New("invalid schema")

// SchemaError reports an internal inconsistency in the schema algebra
// itself: a duplicate table name, an FK pointing at an unknown target, a
// MatchIndexToField naming a field the item schema doesn't have, a
// VariantObj discriminant absent from its own base fields. It is raised
// during schema construction or the DDL lowering's first pass, never
// during decode of a particular file.
type SchemaError struct {
	// Path names where in the schema the problem was found, e.g.
	// "CommonEvent.list -> EventCommand.variants[111]".
	Path string
	Err  error
}

func NewSchemaError(path string, err error) *SchemaError {
	return &SchemaError{Path: path, Err: err}
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema error: %v", e.Err)
	}
	return fmt.Sprintf("schema error at %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }
