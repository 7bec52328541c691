package encoding

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrTruncated is returned when the input ends before a primitive was
	// fully read.
	ErrTruncated = errors.New("truncated input")

	// ErrInvalidEncoding is returned when a primitive is malformed: a flag byte
	// other than 0 or 1, a string that is not valid UTF-8, a non-canonical or
	// overflowing ULEB128, or a length above the configured limit.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidEncoding, format, args...)
}
