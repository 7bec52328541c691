package encoding

import (
	"math"

	"golang.org/x/exp/constraints"
)

func appendFixed[T constraints.Integer](dst []byte, x T, width int) []byte {
	n := uint64(x)
	for i := 0; i < width; i++ {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}

func decodeFixed[T constraints.Integer](b []byte, width int) T {
	var n uint64
	for i := 0; i < width; i++ {
		n |= uint64(b[i]) << (8 * i)
	}
	return T(n)
}

// EncodeInt32 appends x as a little-endian 32-bit integer.
func EncodeInt32(dst []byte, x int32) []byte {
	return appendFixed(dst, x, width32)
}

// DecodeInt32 decodes a little-endian 32-bit integer. b must hold at least 4 bytes.
func DecodeInt32(b []byte) int32 {
	return decodeFixed[int32](b, width32)
}

func EncodeUint32(dst []byte, x uint32) []byte {
	return appendFixed(dst, x, width32)
}

func DecodeUint32(b []byte) uint32 {
	return decodeFixed[uint32](b, width32)
}

func EncodeUint64(dst []byte, x uint64) []byte {
	return appendFixed(dst, x, width64)
}

func DecodeUint64(b []byte) uint64 {
	return decodeFixed[uint64](b, width64)
}

func EncodeFloat32(dst []byte, x float32) []byte {
	return appendFixed(dst, math.Float32bits(x), width32)
}

func DecodeFloat32(b []byte) float32 {
	return math.Float32frombits(decodeFixed[uint32](b, width32))
}

func EncodeFloat64(dst []byte, x float64) []byte {
	return appendFixed(dst, math.Float64bits(x), width64)
}

func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(decodeFixed[uint64](b, width64))
}

func EncodeBoolean(dst []byte, x bool) []byte {
	if x {
		return append(dst, TrueValue)
	}

	return append(dst, FalseValue)
}

// DecodeBoolean decodes a flag byte. Any value other than 0 or 1 is invalid.
func DecodeBoolean(b []byte) (bool, error) {
	switch b[0] {
	case FalseValue:
		return false, nil
	case TrueValue:
		return true, nil
	}

	return false, invalidf("invalid flag byte %#x", b[0])
}
