package wire

import (
	"github.com/cockroachdb/errors"
)

// A Case is one variant of a sum type: its name and the decoder of its
// payload.
type Case[T any] struct {
	Name   string
	Decode func(*Decoder) (T, error)
}

// Unit returns the case of a variant without payload, always decoding to v.
func Unit[T any](name string, v T) Case[T] {
	return Case[T]{
		Name: name,
		Decode: func(*Decoder) (T, error) {
			return v, nil
		},
	}
}

// A Union dispatches on the discriminant of a sum type. The discriminant of
// a case is its position in the table.
type Union[T any] struct {
	name  string
	cases []Case[T]
}

// NewUnion returns the dispatcher of the sum type name.
func NewUnion[T any](name string, cases ...Case[T]) *Union[T] {
	return &Union[T]{name: name, cases: cases}
}

// Name returns the name of the sum type.
func (u *Union[T]) Name() string {
	return u.name
}

// Len returns the number of variants.
func (u *Union[T]) Len() int {
	return len(u.cases)
}

// CaseName returns the name of the variant with discriminant idx, or the
// empty string if there is none.
func (u *Union[T]) CaseName(idx uint32) string {
	if int64(idx) >= int64(len(u.cases)) {
		return ""
	}
	return u.cases[idx].Name
}

func (u *Union[T]) invalid(idx uint32) error {
	return errors.Wrapf(ErrInvalidVariant, "%s discriminant %d out of %d variants", u.name, idx, len(u.cases))
}

// Decode reads a discriminant and decodes the payload of exactly that
// variant.
func (u *Union[T]) Decode(d *Decoder) (T, error) {
	var zero T

	d.payload = false
	if err := d.enter(u.name, true); err != nil {
		return zero, d.leave(u.name, true, err)
	}

	off := d.Offset()
	idx, err := d.ReadVariantIndex()
	if err != nil {
		return zero, d.leave(u.name, true, fault(err, u.name, off))
	}
	if int64(idx) >= int64(len(u.cases)) {
		return zero, d.leave(u.name, true, fault(u.invalid(idx), u.name, off))
	}

	c := u.cases[idx]
	off = d.Offset()
	d.payload = true
	v, err := c.Decode(d)
	d.payload = false
	if err != nil {
		return zero, d.leave(u.name, true, annotate(fault(err, u.name, off), "."+c.Name))
	}

	return v, d.leave(u.name, true, nil)
}

// Encode writes the discriminant idx followed by the payload. payload is nil
// for variants without payload.
func (u *Union[T]) Encode(e *Encoder, idx uint32, payload func(*Encoder) error) error {
	e.enter()

	if int64(idx) >= int64(len(u.cases)) {
		return e.leave(u.name, fault(u.invalid(idx), u.name, e.Offset()))
	}

	e.WriteVariantIndex(idx)
	if payload == nil {
		return e.leave(u.name, nil)
	}

	off := e.Offset()
	if err := payload(e); err != nil {
		return e.leave(u.name, annotate(fault(err, u.name, off), "."+u.cases[idx].Name))
	}

	return e.leave(u.name, nil)
}
