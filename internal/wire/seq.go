package wire

import (
	"strconv"
)

// maxPrealloc caps the capacity reserved from an untrusted length prefix.
const maxPrealloc = 1024

// EncodeSeq writes the length of xs followed by each element encoded with fn.
func EncodeSeq[T any](e *Encoder, xs []T, fn func(*Encoder, T) error) error {
	off := e.Offset()
	if err := e.WriteLen(len(xs)); err != nil {
		return fault(err, "", off)
	}

	for i, x := range xs {
		off = e.Offset()
		if err := fn(e, x); err != nil {
			return annotate(fault(err, "", off), "["+strconv.Itoa(i)+"]")
		}
	}

	return nil
}

// DecodeSeq reads a length and then exactly that many elements decoded with
// fn. The returned slice is never nil.
func DecodeSeq[T any](d *Decoder, fn func(*Decoder) (T, error)) ([]T, error) {
	d.payload = false
	off := d.Offset()
	n, err := d.ReadLen()
	if err != nil {
		return nil, fault(err, "", off)
	}

	xs := make([]T, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		off = d.Offset()
		x, err := fn(d)
		if err != nil {
			return nil, annotate(fault(err, "", off), "["+strconv.Itoa(i)+"]")
		}
		xs = append(xs, x)
	}

	return xs, nil
}

// SeqOf adapts an element codec into a sequence codec, for use with Get.
func SeqOf[T any](fn func(*Decoder) (T, error)) func(*Decoder) ([]T, error) {
	return func(d *Decoder) ([]T, error) {
		return DecodeSeq(d, fn)
	}
}

// PutSeqOf adapts an element codec into a sequence codec, for use with Put.
func PutSeqOf[T any](fn func(*Encoder, T) error) func(*Encoder, []T) error {
	return func(e *Encoder, xs []T) error {
		return EncodeSeq(e, xs, fn)
	}
}

// EncodeOption writes the presence flag of v, followed by *v encoded with fn
// when v is not nil.
func EncodeOption[T any](e *Encoder, v *T, fn func(*Encoder, T) error) error {
	e.WriteOptionTag(v != nil)
	if v == nil {
		return nil
	}
	return fn(e, *v)
}

// DecodeOption reads a presence flag and, if set, a value decoded with fn.
// It returns nil when the value is absent.
func DecodeOption[T any](d *Decoder, fn func(*Decoder) (T, error)) (*T, error) {
	d.payload = false
	off := d.Offset()
	present, err := d.ReadOptionTag()
	if err != nil {
		return nil, fault(err, "", off)
	}
	if !present {
		return nil, nil
	}

	v, err := fn(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionOf adapts a value codec into an optional codec, for use with Get.
func OptionOf[T any](fn func(*Decoder) (T, error)) func(*Decoder) (*T, error) {
	return func(d *Decoder) (*T, error) {
		return DecodeOption(d, fn)
	}
}

// PutOptionOf adapts a value codec into an optional codec, for use with Put.
func PutOptionOf[T any](fn func(*Encoder, T) error) func(*Encoder, *T) error {
	return func(e *Encoder, v *T) error {
		return EncodeOption(e, v, fn)
	}
}
