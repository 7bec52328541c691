package encoding_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/astwire/astwire/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestULEB128(t *testing.T) {
	tests := []struct {
		x    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.x), func(t *testing.T) {
			got := encoding.EncodeULEB128(nil, test.x)
			require.Equal(t, test.want, got)

			x, n, err := encoding.DecodeULEB128(got)
			require.NoError(t, err)
			require.Equal(t, test.x, x)
			require.Equal(t, len(got), n)
		})
	}
}

func TestULEB128Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", []byte{}, encoding.ErrTruncated},
		{"unterminated", []byte{0x80}, encoding.ErrTruncated},
		{"non-canonical", []byte{0x80, 0x00}, encoding.ErrInvalidEncoding},
		{"overflow", []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, encoding.ErrInvalidEncoding},
		{"too long", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, encoding.ErrInvalidEncoding},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := encoding.DecodeULEB128(test.input)
			require.ErrorIs(t, err, test.want)
		})
	}
}
