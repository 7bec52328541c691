package astwire

import (
	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/dynamic"
	"github.com/astwire/astwire/internal/encoding"
	"github.com/astwire/astwire/internal/schema"
	"github.com/astwire/astwire/internal/wire"
)

var (
	// ErrTruncated is returned when the input ends in the middle of a value.
	ErrTruncated = encoding.ErrTruncated

	// ErrInvalidEncoding is returned for primitives that are not well formed,
	// like a boolean byte other than 0 or 1, a non-canonical ULEB128 or a
	// string that is not valid UTF-8.
	ErrInvalidEncoding = encoding.ErrInvalidEncoding

	// ErrInvalidVariant is returned when a variant index is out of the range
	// of its sum type.
	ErrInvalidVariant = wire.ErrInvalidVariant

	// ErrTooDeep is returned when decoding a tree that nests deeper than
	// Options.MaxDepth.
	ErrTooDeep = wire.ErrTooDeep

	// ErrNilNode is returned when encoding a tree with a nil node where a
	// value is required.
	ErrNilNode = wire.ErrNilNode

	// ErrTrailingBytes is returned by Unmarshal when input remains after the
	// tree.
	ErrTrailingBytes = wire.ErrTrailingBytes

	// ErrUnsupportedType is returned when the type argument is not a node
	// type of the ast package.
	ErrUnsupportedType = ast.ErrUnsupportedType

	// ErrUnknownType is returned by Inspect and Assemble for unknown type
	// names.
	ErrUnknownType = schema.ErrUnknownType

	// ErrInvalidJSON is returned by Assemble when the document does not
	// describe a tree of the requested type.
	ErrInvalidJSON = dynamic.ErrInvalidJSON
)

// Error locates a failure within a tree. Use errors.As to retrieve it.
type Error = wire.Error
