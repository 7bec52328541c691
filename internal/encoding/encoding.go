// Package encoding implements the primitive codec: self-delimiting
// encoding of fixed-width numbers, booleans, lengths, variant indexes,
// option tags and length-prefixed UTF-8 strings.
//
// A Writer is the byte sink and a Reader the byte source of the tree codec.
// Neither is safe for concurrent use.
package encoding

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// A Writer appends primitives to an in-memory buffer.
type Writer struct {
	buf    []byte
	format Format
}

// NewWriter returns an empty Writer using the given format.
func NewWriter(f Format) *Writer {
	return &Writer{format: f}
}

func (w *Writer) Format() Format { return w.format }

func (w *Writer) WriteI8(x int8)   { w.buf = appendFixed(w.buf, x, width8) }
func (w *Writer) WriteI16(x int16) { w.buf = appendFixed(w.buf, x, width16) }
func (w *Writer) WriteI32(x int32) { w.buf = appendFixed(w.buf, x, width32) }
func (w *Writer) WriteI64(x int64) { w.buf = appendFixed(w.buf, x, width64) }

func (w *Writer) WriteU8(x uint8)   { w.buf = appendFixed(w.buf, x, width8) }
func (w *Writer) WriteU16(x uint16) { w.buf = appendFixed(w.buf, x, width16) }
func (w *Writer) WriteU32(x uint32) { w.buf = appendFixed(w.buf, x, width32) }
func (w *Writer) WriteU64(x uint64) { w.buf = appendFixed(w.buf, x, width64) }

func (w *Writer) WriteF32(x float32) { w.buf = EncodeFloat32(w.buf, x) }
func (w *Writer) WriteF64(x float64) { w.buf = EncodeFloat64(w.buf, x) }

func (w *Writer) WriteBool(x bool) { w.buf = EncodeBoolean(w.buf, x) }

// WriteOptionTag writes the presence flag of an optional value.
func (w *Writer) WriteOptionTag(present bool) { w.buf = EncodeBoolean(w.buf, present) }

// WriteVariantIndex writes the discriminant of a sum type variant.
func (w *Writer) WriteVariantIndex(idx uint32) {
	w.buf = EncodeVariantIndex(w.buf, w.format, idx)
}

// WriteLen writes the element count of a sequence.
func (w *Writer) WriteLen(l int) error {
	buf, err := EncodeLength(w.buf, w.format, l)
	if err != nil {
		return err
	}
	w.buf = buf
	return nil
}

func (w *Writer) WriteStr(x string) error {
	buf, err := EncodeText(w.buf, w.format, x)
	if err != nil {
		return err
	}
	w.buf = buf
	return nil
}

func (w *Writer) WriteBytes(x []byte) error {
	buf, err := EncodeBlob(w.buf, w.format, x)
	if err != nil {
		return err
	}
	w.buf = buf
	return nil
}

// Bytes returns the encoded bytes. The slice is valid until the next write
// or Reset.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reset empties the buffer but keeps its capacity.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// WriteTo writes the buffered bytes to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	n, err := out.Write(w.buf)
	return int64(n), errors.Wrap(err, "write")
}

// chunkSize bounds the allocation made ahead of reading a length-prefixed
// string from a stream.
const chunkSize = 64 << 10

// A Reader reads primitives either from a byte slice or from an io.Reader.
type Reader struct {
	format    Format
	maxLength int

	b   []byte
	pos int

	r       io.Reader
	off     int64
	scratch [width64]byte
}

// NewReader returns a Reader consuming b.
func NewReader(b []byte, f Format) *Reader {
	return &Reader{b: b, format: f, maxLength: MaxLength}
}

// NewStreamReader returns a Reader consuming r. It never reads past the last
// byte of the primitives it is asked to read.
func NewStreamReader(r io.Reader, f Format) *Reader {
	return &Reader{r: r, format: f, maxLength: MaxLength}
}

func (r *Reader) Format() Format { return r.format }

// SetMaxLength lowers the largest accepted sequence or string length.
func (r *Reader) SetMaxLength(n int) {
	if n > 0 && n < MaxLength {
		r.maxLength = n
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	if r.r != nil {
		return r.off
	}
	return int64(r.pos)
}

// Remaining returns the number of unread bytes, or -1 for stream readers.
func (r *Reader) Remaining() int {
	if r.r != nil {
		return -1
	}
	return len(r.b) - r.pos
}

// next returns the next n bytes, n <= 8. For stream readers the returned
// slice is only valid until the next call.
func (r *Reader) next(n int) ([]byte, error) {
	if r.r == nil {
		if len(r.b)-r.pos < n {
			return nil, ErrTruncated
		}
		b := r.b[r.pos : r.pos+n]
		r.pos += n
		return b, nil
	}

	m, err := io.ReadFull(r.r, r.scratch[:n])
	r.off += int64(m)
	if err != nil {
		return nil, streamErr(err)
	}
	return r.scratch[:n], nil
}

func streamErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return errors.Wrap(err, "read")
}

func (r *Reader) ReadI8() (int8, error) {
	b, err := r.next(width8)
	if err != nil {
		return 0, err
	}
	return decodeFixed[int8](b, width8), nil
}

func (r *Reader) ReadI16() (int16, error) {
	b, err := r.next(width16)
	if err != nil {
		return 0, err
	}
	return decodeFixed[int16](b, width16), nil
}

func (r *Reader) ReadI32() (int32, error) {
	b, err := r.next(width32)
	if err != nil {
		return 0, err
	}
	return DecodeInt32(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	b, err := r.next(width64)
	if err != nil {
		return 0, err
	}
	return decodeFixed[int64](b, width64), nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.next(width8)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.next(width16)
	if err != nil {
		return 0, err
	}
	return decodeFixed[uint16](b, width16), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.next(width32)
	if err != nil {
		return 0, err
	}
	return DecodeUint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.next(width64)
	if err != nil {
		return 0, err
	}
	return DecodeUint64(b), nil
}

func (r *Reader) ReadF32() (float32, error) {
	b, err := r.next(width32)
	if err != nil {
		return 0, err
	}
	return DecodeFloat32(b), nil
}

func (r *Reader) ReadF64() (float64, error) {
	b, err := r.next(width64)
	if err != nil {
		return 0, err
	}
	return DecodeFloat64(b), nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.next(width8)
	if err != nil {
		return false, err
	}
	return DecodeBoolean(b)
}

// ReadOptionTag reads the presence flag of an optional value.
func (r *Reader) ReadOptionTag() (bool, error) {
	return r.ReadBool()
}

// ReadVariantIndex reads the discriminant of a sum type variant. It does not
// check the value against any variant count.
func (r *Reader) ReadVariantIndex() (uint32, error) {
	if r.format == BCS {
		return r.readULEB128()
	}
	return r.ReadU32()
}

// ReadLen reads a sequence or string length and checks it against the
// configured limit.
func (r *Reader) ReadLen() (int, error) {
	var l uint64
	if r.format == BCS {
		x, err := r.readULEB128()
		if err != nil {
			return 0, err
		}
		l = uint64(x)
	} else {
		x, err := r.ReadU64()
		if err != nil {
			return 0, err
		}
		l = x
	}

	if l > uint64(r.maxLength) {
		return 0, invalidf("length %d exceeds limit %d", l, r.maxLength)
	}
	return int(l), nil
}

func (r *Reader) readULEB128() (uint32, error) {
	if r.r == nil {
		x, n, err := DecodeULEB128(r.b[r.pos:])
		if err != nil {
			return 0, err
		}
		r.pos += n
		return x, nil
	}

	var i int
	for i < maxULEB128Len {
		m, err := io.ReadFull(r.r, r.scratch[i:i+1])
		r.off += int64(m)
		if err != nil {
			return 0, streamErr(err)
		}
		i++
		if r.scratch[i-1]&0x80 == 0 {
			break
		}
	}

	x, _, err := DecodeULEB128(r.scratch[:i])
	return x, err
}

// ReadBytes reads a length-prefixed byte string. The returned slice is
// owned by the caller.
func (r *Reader) ReadBytes() ([]byte, error) {
	l, err := r.ReadLen()
	if err != nil {
		return nil, err
	}
	return r.readN(l)
}

// ReadStr reads a length-prefixed UTF-8 string.
func (r *Reader) ReadStr() (string, error) {
	l, err := r.ReadLen()
	if err != nil {
		return "", err
	}

	if r.r == nil {
		if len(r.b)-r.pos < l {
			return "", ErrTruncated
		}
		b := r.b[r.pos : r.pos+l]
		if !utf8.Valid(b) {
			return "", invalidf("string is not valid utf-8")
		}
		r.pos += l
		return string(b), nil
	}

	b, err := r.readN(l)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", invalidf("string is not valid utf-8")
	}
	return string(b), nil
}

func (r *Reader) readN(n int) ([]byte, error) {
	if r.r == nil {
		if len(r.b)-r.pos < n {
			return nil, ErrTruncated
		}
		b := make([]byte, n)
		copy(b, r.b[r.pos:])
		r.pos += n
		return b, nil
	}

	var buf bytes.Buffer
	buf.Grow(min(n, chunkSize))
	m, err := io.CopyN(&buf, r.r, int64(n))
	r.off += m
	if err != nil {
		return nil, streamErr(err)
	}
	return buf.Bytes(), nil
}
