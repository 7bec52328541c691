package wire

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidVariant is returned when a discriminant is outside the
	// variant range of its sum type.
	ErrInvalidVariant = errors.New("invalid variant index")

	// ErrTooDeep is returned when decoding a tree that nests deeper than
	// the configured maximum depth.
	ErrTooDeep = errors.New("maximum nesting depth exceeded")

	// ErrNilNode is returned when encoding a nil node where the schema
	// requires a value.
	ErrNilNode = errors.New("nil node")

	// ErrTrailingBytes is returned when input remains after a complete tree
	// was decoded.
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

// Error reports a fault together with where it happened: the byte offset
// in the stream, the innermost type being processed, and the field path
// from the root of the tree.
type Error struct {
	Err    error
	Offset int64
	Type   string

	// path segments, innermost first.
	path []string
}

// Path returns the location of the fault, e.g.
// Code.statement_list[0].If.condition.
func (e *Error) Path() string {
	var sb strings.Builder
	for i := len(e.path) - 1; i >= 0; i-- {
		sb.WriteString(e.path[i])
	}
	return sb.String()
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if p := e.Path(); p != "" {
		fmt.Fprintf(&sb, " at %s", p)
	}
	fmt.Fprintf(&sb, " (offset %d)", e.Offset)
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// fault turns err into an *Error positioned at offset, unless it already is
// one.
func fault(err error, typ string, offset int64) error {
	var e *Error
	if errors.As(err, &e) {
		if e.Type == "" {
			e.Type = typ
		}
		return err
	}

	return &Error{Err: err, Offset: offset, Type: typ}
}

// annotate prepends a path segment to the location of err.
func annotate(err error, seg string) error {
	var e *Error
	if errors.As(err, &e) {
		e.path = append(e.path, seg)
	}
	return err
}
