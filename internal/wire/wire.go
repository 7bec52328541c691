// Package wire implements the generic parts of the tree codec: records,
// sum types, sequences and optional values, on top of the primitive codec.
//
// Node types describe themselves with these building blocks; the package
// knows nothing about any particular schema.
package wire

import (
	"github.com/astwire/astwire/internal/encoding"
	"github.com/cockroachdb/errors"
)

// DefaultMaxDepth is the decoding nesting limit used when none is
// configured.
const DefaultMaxDepth = 500

// An Encoder writes one tree to a Writer. Trees are trusted in-memory data,
// so encoding accepts any depth.
type Encoder struct {
	*encoding.Writer

	// open records and sum types.
	frames int
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w *encoding.Writer) *Encoder {
	return &Encoder{Writer: w}
}

// Offset returns the number of bytes written so far.
func (e *Encoder) Offset() int64 {
	return int64(e.Len())
}

// Nil reports an absent node of type typ.
func (e *Encoder) Nil(typ string) error {
	return fault(errors.Wrapf(ErrNilNode, "%s", typ), typ, e.Offset())
}

func (e *Encoder) enter() {
	e.frames++
}

func (e *Encoder) leave(typ string, err error) error {
	e.frames--
	if err != nil && e.frames == 0 {
		annotate(err, typ)
	}
	return err
}

// A Decoder reads one tree from a Reader.
//
// The depth of a tree is the nesting of its sum types. A record adds a level
// only when it is not the payload of a variant, so that recursion through
// records alone stays bounded too.
type Decoder struct {
	*encoding.Reader

	maxDepth int
	depth    int
	frames   int

	// set while the next record read is the payload of a variant.
	payload bool
}

// NewDecoder returns a Decoder reading from r. A maxDepth <= 0 selects
// DefaultMaxDepth.
func NewDecoder(r *encoding.Reader, maxDepth int) *Decoder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Decoder{Reader: r, maxDepth: maxDepth}
}

// Finish checks that a slice-backed input was consumed entirely.
func (d *Decoder) Finish() error {
	if n := d.Remaining(); n > 0 {
		return fault(errors.Wrapf(ErrTrailingBytes, "%d bytes", n), "", d.Offset())
	}
	return nil
}

func (d *Decoder) enter(typ string, counted bool) error {
	d.frames++
	if !counted {
		return nil
	}

	d.depth++
	if d.depth > d.maxDepth {
		return fault(errors.Wrapf(ErrTooDeep, "limit %d", d.maxDepth), typ, d.Offset())
	}
	return nil
}

func (d *Decoder) leave(typ string, counted bool, err error) error {
	d.frames--
	if counted {
		d.depth--
	}
	if err != nil && d.frames == 0 {
		annotate(err, typ)
	}
	return err
}

// Primitive codecs in the shape expected by Get, Put and the sequence
// and option helpers.

func I32(d *Decoder) (int32, error) {
	return d.ReadI32()
}

func Bool(d *Decoder) (bool, error) {
	return d.ReadBool()
}

func Str(d *Decoder) (string, error) {
	return d.ReadStr()
}

func PutI32(e *Encoder, x int32) error {
	e.WriteI32(x)
	return nil
}

func PutBool(e *Encoder, x bool) error {
	e.WriteBool(x)
	return nil
}

func PutStr(e *Encoder, x string) error {
	return e.WriteStr(x)
}
