package astwire

import (
	"runtime"

	"github.com/astwire/astwire/ast"
	"github.com/astwire/astwire/internal/encoding"
	"github.com/astwire/astwire/internal/wire"
)

// A Format selects how lengths and variant indexes are written.
type Format = encoding.Format

const (
	Bincode = encoding.Bincode
	BCS     = encoding.BCS
)

// Options configure encoding and decoding. A nil *Options and zero fields
// select the defaults.
type Options struct {
	// Format of lengths and variant indexes. Defaults to Bincode.
	Format Format

	// MaxDepth bounds the depth of decoded trees, counted in nested sum
	// types: a chain of n binary operations is n+1 deep. Encoding accepts
	// any depth. Defaults to 500.
	MaxDepth int

	// MaxLength bounds the length of decoded sequences and strings.
	// Defaults to math.MaxInt32.
	MaxLength int

	// Concurrency bounds the number of trees processed at once by
	// MarshalAll and UnmarshalAll. Defaults to GOMAXPROCS.
	Concurrency int
}

func defaultOptions() *Options {
	return &Options{
		Format:      Bincode,
		MaxDepth:    wire.DefaultMaxDepth,
		MaxLength:   encoding.MaxLength,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

func (o *Options) withDefaults() *Options {
	opts := defaultOptions()
	if o == nil {
		return opts
	}

	opts.Format = o.Format
	if o.MaxDepth > 0 {
		opts.MaxDepth = o.MaxDepth
	}
	if o.MaxLength > 0 {
		opts.MaxLength = o.MaxLength
	}
	if o.Concurrency > 0 {
		opts.Concurrency = o.Concurrency
	}
	return opts
}

func (o *Options) newEncoder() (*wire.Encoder, *encoding.Writer) {
	w := encoding.NewWriter(o.Format)
	return wire.NewEncoder(w), w
}

func (o *Options) newDecoder(r *encoding.Reader) *wire.Decoder {
	r.SetMaxLength(o.MaxLength)
	return wire.NewDecoder(r, o.MaxDepth)
}

// Marshal encodes v with the default options. T is a node type of the ast
// package: a record, by value or by pointer, or a sum type interface.
func Marshal[T any](v T) ([]byte, error) {
	return MarshalWith(v, nil)
}

// MarshalWith encodes v using opts.
func MarshalWith[T any](v T, opts *Options) ([]byte, error) {
	e, w := opts.withDefaults().newEncoder()
	if err := ast.Encode(e, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes a tree of type T with the default options. b must hold
// exactly one tree.
func Unmarshal[T any](b []byte) (T, error) {
	return UnmarshalWith[T](b, nil)
}

// UnmarshalWith decodes a tree of type T using opts. b must hold exactly one
// tree.
func UnmarshalWith[T any](b []byte, opts *Options) (T, error) {
	opts = opts.withDefaults()
	d := opts.newDecoder(encoding.NewReader(b, opts.Format))

	v, err := ast.Decode[T](d)
	if err == nil {
		err = d.Finish()
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
