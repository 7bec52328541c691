package encoding

import (
	"unicode/utf8"
)

// EncodeText appends the length of x followed by its bytes, using the
// length convention of f. It fails if x is not valid UTF-8.
func EncodeText(dst []byte, f Format, x string) ([]byte, error) {
	if !utf8.ValidString(x) {
		return nil, invalidf("string is not valid utf-8")
	}

	dst, err := EncodeLength(dst, f, len(x))
	if err != nil {
		return nil, err
	}
	return append(dst, x...), nil
}

// EncodeBlob appends the length of x followed by x, using the
// length convention of f.
func EncodeBlob(dst []byte, f Format, x []byte) ([]byte, error) {
	dst, err := EncodeLength(dst, f, len(x))
	if err != nil {
		return nil, err
	}
	return append(dst, x...), nil
}

// EncodeLength appends a sequence or string length.
func EncodeLength(dst []byte, f Format, l int) ([]byte, error) {
	if l < 0 || l > MaxLength {
		return nil, invalidf("length %d out of range", l)
	}

	if f == BCS {
		return EncodeULEB128(dst, uint32(l)), nil
	}
	return EncodeUint64(dst, uint64(l)), nil
}

// EncodeVariantIndex appends the discriminant of a sum type variant.
func EncodeVariantIndex(dst []byte, f Format, idx uint32) []byte {
	if f == BCS {
		return EncodeULEB128(dst, idx)
	}
	return EncodeUint32(dst, idx)
}
