package codec

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrMissingField     = errors.New("codec: missing required property")
	ErrTypeMismatch     = errors.New("codec: type mismatch")
	ErrUnsupportedType  = errors.New("codec: unsupported type")
	ErrUnsupportedValue = errors.New("codec: unsupported value")
	ErrEnumOutOfRange   = errors.New("codec: value is not a declared enumerator")
)

// location is the position of a failure inside the value being converted,
// e.g. "outer.inner.values[2]". Empty means the root.
type location struct {
	Path string
}

func (l *location) prepend(segment string) {
	switch {
	case l.Path == "":
		l.Path = segment
	case strings.HasPrefix(l.Path, "["):
		l.Path = segment + l.Path
	default:
		l.Path = segment + "." + l.Path
	}
}

func (l *location) at() string {
	if l.Path == "" {
		return ""
	}
	return " at " + l.Path
}

type located interface {
	prepend(segment string)
}

// MissingFieldError is returned in strict mode when a declared property is
// absent from the input object. Path locates the object, not the property.
type MissingFieldError struct {
	location
	Property string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("codec: missing required property %q%s", e.Property, e.at())
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func AsMissingFieldError(err error) (*MissingFieldError, bool) {
	var me *MissingFieldError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// TypeMismatchError is returned when a node cannot be converted to the
// declared type of its destination.
type TypeMismatchError struct {
	location
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("codec: type mismatch%s: expected %s, got %s", e.at(), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func AsTypeMismatchError(err error) (*TypeMismatchError, bool) {
	var te *TypeMismatchError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// PathError attaches a location to any other failure.
type PathError struct {
	location
	Cause error
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s%s", e.Cause.Error(), e.at())
}

func (e *PathError) Unwrap() error {
	return e.Cause
}

// withPath records that err happened below segment.
func withPath(err error, segment string) error {
	var l located
	if errors.As(err, &l) {
		l.prepend(segment)
		return err
	}

	pe := &PathError{Cause: err}
	pe.prepend(segment)
	return pe
}

func index(i int) string {
	return fmt.Sprintf("[%d]", i)
}
