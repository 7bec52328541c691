package astwire

import (
	"io"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/encoding"
	"github.com/astwire/astwire/internal/wire"
	"github.com/cockroachdb/errors"
)

// EncodeTo encodes v and writes it to w. Nothing is written if encoding
// fails.
func EncodeTo[T any](w io.Writer, v T, opts *Options) error {
	e, buf := opts.withDefaults().newEncoder()
	if err := ast.Encode(e, v); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}

// A Decoder reads trees written back to back on a stream. It never reads
// past the end of the tree being decoded.
type Decoder struct {
	d *wire.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts *Options) *Decoder {
	opts = opts.withDefaults()
	return &Decoder{
		d: opts.newDecoder(encoding.NewStreamReader(r, opts.Format)),
	}
}

// Offset returns the number of bytes consumed so far.
func (dec *Decoder) Offset() int64 {
	return dec.d.Offset()
}

// DecodeNext decodes the next tree of type T from dec. It returns io.EOF if
// the stream ends before the first byte of a tree, and an error wrapping
// ErrTruncated if it ends inside one.
func DecodeNext[T any](dec *Decoder) (T, error) {
	start := dec.d.Offset()

	v, err := ast.Decode[T](dec.d)
	if err != nil && dec.d.Offset() == start && errors.Is(err, ErrTruncated) {
		var zero T
		return zero, io.EOF
	}
	return v, err
}
