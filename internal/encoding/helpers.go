package encoding

// maxULEB128Len is the number of bytes needed to encode any uint32.
const maxULEB128Len = 5

// EncodeULEB128 appends x as an unsigned LEB128 integer.
func EncodeULEB128(dst []byte, x uint32) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// DecodeULEB128 decodes an unsigned LEB128 integer that must fit in 32 bits
// and must use the shortest possible encoding. It returns the value and the
// number of bytes read. If b ends before the last byte, it returns
// ErrTruncated.
func DecodeULEB128(b []byte) (uint32, int, error) {
	var x uint64
	for i := 0; i < maxULEB128Len; i++ {
		if i == len(b) {
			return 0, 0, ErrTruncated
		}

		c := b[i]
		x |= uint64(c&0x7f) << (7 * i)
		if c&0x80 != 0 {
			continue
		}

		if i > 0 && c == 0 {
			return 0, 0, invalidf("non-canonical uleb128")
		}
		if x > 0xffffffff {
			return 0, 0, invalidf("uleb128 overflows u32")
		}
		return uint32(x), i + 1, nil
	}

	return 0, 0, invalidf("uleb128 overflows u32")
}
