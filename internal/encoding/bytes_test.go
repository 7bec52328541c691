package encoding_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/astwire/astwire/internal/encoding"
	"github.com/stretchr/testify/require"
)

func makeLength(f encoding.Format, n int) []byte {
	b, err := encoding.EncodeLength(nil, f, n)
	if err != nil {
		panic(err)
	}
	return b
}

func TestEncodeDecodeText(t *testing.T) {
	for _, f := range []encoding.Format{encoding.Bincode, encoding.BCS} {
		a200 := append(makeLength(f, 200), bytes.Repeat([]byte{'a'}, 200)...)
		tests := []struct {
			input string
			want  []byte
		}{
			{"", makeLength(f, 0)},
			{"a", append(makeLength(f, 1), 'a')},
			{"日本", append(makeLength(f, 6), "日本"...)},
			{strings.Repeat("a", 200), a200},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("%s/%.10q", f, test.input), func(t *testing.T) {
				got, err := encoding.EncodeText(nil, f, test.input)
				require.NoError(t, err)
				require.Equal(t, test.want, got)

				r := encoding.NewReader(got, f)
				x, err := r.ReadStr()
				require.NoError(t, err)
				require.Equal(t, test.input, x)
				require.Equal(t, 0, r.Remaining())
			})
		}
	}
}

func TestEncodeTextInvalidUTF8(t *testing.T) {
	_, err := encoding.EncodeText(nil, encoding.Bincode, "\xff")
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
}

func TestDecodeTextInvalidUTF8(t *testing.T) {
	b := append(makeLength(encoding.BCS, 2), 0xc3, 0x28)
	_, err := encoding.NewReader(b, encoding.BCS).ReadStr()
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
}

func TestEncodeDecodeBlob(t *testing.T) {
	tests := []struct {
		input []byte
		want  []byte
	}{
		{[]byte{}, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{[]byte{'a'}, []byte{1, 0, 0, 0, 0, 0, 0, 0, 'a'}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			got, err := encoding.EncodeBlob(nil, encoding.Bincode, test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, got)

			x, err := encoding.NewReader(got, encoding.Bincode).ReadBytes()
			require.NoError(t, err)
			require.Equal(t, test.input, x)
		})
	}
}

func TestReadLenLimit(t *testing.T) {
	r := encoding.NewReader(makeLength(encoding.Bincode, 11), encoding.Bincode)
	r.SetMaxLength(10)
	_, err := r.ReadLen()
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)

	huge := encoding.EncodeUint64(nil, 1<<40)
	_, err = encoding.NewReader(huge, encoding.Bincode).ReadLen()
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
}

func TestEncodeLengthRange(t *testing.T) {
	_, err := encoding.EncodeLength(nil, encoding.Bincode, -1)
	require.ErrorIs(t, err, encoding.ErrInvalidEncoding)
}
