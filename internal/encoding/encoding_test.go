package encoding_test

import (
	"bytes"
	"math"
	"testing"
	"testing/iotest"

	"github.com/astwire/astwire/internal/encoding"
	"github.com/stretchr/testify/require"
)

func writeAll(w *encoding.Writer) {
	w.WriteI8(-2)
	w.WriteI16(-300)
	w.WriteI32(math.MinInt32)
	w.WriteI64(math.MaxInt64)
	w.WriteU8(200)
	w.WriteU16(60000)
	w.WriteU32(math.MaxUint32)
	w.WriteU64(1 << 60)
	w.WriteF32(1.5)
	w.WriteF64(-0.25)
	w.WriteBool(true)
	w.WriteOptionTag(false)
	w.WriteVariantIndex(300)
	_ = w.WriteLen(7)
	_ = w.WriteStr("hello")
	_ = w.WriteBytes([]byte{1, 2, 3})
}

func readAll(t *testing.T, r *encoding.Reader) {
	t.Helper()

	i8, err := r.ReadI8()
	require.NoError(t, err)
	require.Equal(t, int8(-2), i8)
	i16, err := r.ReadI16()
	require.NoError(t, err)
	require.Equal(t, int16(-300), i16)
	i32, err := r.ReadI32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), i32)
	i64, err := r.ReadI64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), i64)
	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(200), u8)
	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(60000), u16)
	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)
	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<60), u64)
	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)
	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.Equal(t, -0.25, f64)
	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)
	tag, err := r.ReadOptionTag()
	require.NoError(t, err)
	require.False(t, tag)
	idx, err := r.ReadVariantIndex()
	require.NoError(t, err)
	require.Equal(t, uint32(300), idx)
	l, err := r.ReadLen()
	require.NoError(t, err)
	require.Equal(t, 7, l)
	s, err := r.ReadStr()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
	bs, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, bs)
}

func TestWriterReader(t *testing.T) {
	for _, f := range []encoding.Format{encoding.Bincode, encoding.BCS} {
		t.Run(f.String(), func(t *testing.T) {
			w := encoding.NewWriter(f)
			writeAll(w)

			t.Run("slice", func(t *testing.T) {
				r := encoding.NewReader(w.Bytes(), f)
				readAll(t, r)
				require.Equal(t, 0, r.Remaining())
				require.Equal(t, int64(w.Len()), r.Offset())
			})

			t.Run("stream", func(t *testing.T) {
				r := encoding.NewStreamReader(iotest.OneByteReader(bytes.NewReader(w.Bytes())), f)
				readAll(t, r)
				require.Equal(t, -1, r.Remaining())
				require.Equal(t, int64(w.Len()), r.Offset())
			})
		})
	}
}

func TestFixedWidthLayout(t *testing.T) {
	w := encoding.NewWriter(encoding.Bincode)
	w.WriteI32(1)
	w.WriteI32(-1)
	w.WriteVariantIndex(6)
	require.Equal(t, []byte{
		1, 0, 0, 0,
		0xff, 0xff, 0xff, 0xff,
		6, 0, 0, 0,
	}, w.Bytes())

	w = encoding.NewWriter(encoding.BCS)
	w.WriteVariantIndex(6)
	w.WriteI32(2)
	require.Equal(t, []byte{6, 2, 0, 0, 0}, w.Bytes())
}

func TestReaderTruncated(t *testing.T) {
	w := encoding.NewWriter(encoding.Bincode)
	writeAll(w)
	full := w.Bytes()

	for i := 0; i < len(full); i++ {
		for _, r := range []*encoding.Reader{
			encoding.NewReader(full[:i], encoding.Bincode),
			encoding.NewStreamReader(bytes.NewReader(full[:i]), encoding.Bincode),
		} {
			err := readAllTolerant(r)
			require.ErrorIs(t, err, encoding.ErrTruncated, "prefix of length %d", i)
		}
	}
}

// readAllTolerant reads the same sequence as readAll and returns the first error.
func readAllTolerant(r *encoding.Reader) error {
	steps := []func() error{
		func() error { _, err := r.ReadI8(); return err },
		func() error { _, err := r.ReadI16(); return err },
		func() error { _, err := r.ReadI32(); return err },
		func() error { _, err := r.ReadI64(); return err },
		func() error { _, err := r.ReadU8(); return err },
		func() error { _, err := r.ReadU16(); return err },
		func() error { _, err := r.ReadU32(); return err },
		func() error { _, err := r.ReadU64(); return err },
		func() error { _, err := r.ReadF32(); return err },
		func() error { _, err := r.ReadF64(); return err },
		func() error { _, err := r.ReadBool(); return err },
		func() error { _, err := r.ReadOptionTag(); return err },
		func() error { _, err := r.ReadVariantIndex(); return err },
		func() error { _, err := r.ReadLen(); return err },
		func() error { _, err := r.ReadStr(); return err },
		func() error { _, err := r.ReadBytes(); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func TestReadBoolInvalid(t *testing.T) {
	_, err := encoding.NewReader([]byte{2}, encoding.Bincode).ReadBool()
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)

	_, err = encoding.NewReader(nil, encoding.Bincode).ReadBool()
	require.ErrorIs(t, err, encoding.ErrTruncated)
}

func TestWriterReset(t *testing.T) {
	w := encoding.NewWriter(encoding.Bincode)
	w.WriteU8(1)
	w.Reset()
	require.Zero(t, w.Len())

	w.WriteU8(2)
	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, []byte{2}, buf.Bytes())
}
