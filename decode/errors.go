package decode

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every ParseError wraps.
var ErrParse = errors.New("schema/marshal mismatch")

// ParseError reports that a Marshal node did not conform to the schema
// node it was decoded against: a class name mismatch, a missing or extra
// instance variable, an out-of-range integer, an unknown variant
// discriminant. It carries enough context to locate the offense (spec
// §7): the schema kind expected, the Marshal kind observed, and the
// field/index path from the file root.
type ParseError struct {
	Path     string
	Expected string
	Observed string
	Err      error
}

func NewParseError(path, expected, observed string, err error) *ParseError {
	return &ParseError{Path: path, Expected: expected, Observed: observed, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: expected %s, observed %s: %v", e.Path, e.Expected, e.Observed, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
