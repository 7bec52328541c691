package dynamic

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrTypeMismatch is returned when encoding a value whose shape differs
	// from the schema type it is encoded as.
	ErrTypeMismatch = errors.New("value does not match schema")

	// ErrInvalidJSON is returned by ParseJSON when the document does not
	// describe a value of the requested type.
	ErrInvalidJSON = errors.New("invalid json tree")
)

func mismatch(want string, got Value) error {
	return errors.Wrapf(ErrTypeMismatch, "expected %s, got %T", want, got)
}
