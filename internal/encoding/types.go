package encoding

import (
	"math"
)

// A Format selects the conventions used to encode lengths and variant
// indexes. Every other primitive is encoded the same way in all formats.
type Format uint8

const (
	// Bincode encodes lengths as little-endian u64 and variant indexes as
	// little-endian u32.
	Bincode Format = iota

	// BCS encodes lengths and variant indexes as canonical ULEB128 u32.
	BCS
)

func (f Format) String() string {
	switch f {
	case Bincode:
		return "bincode"
	case BCS:
		return "bcs"
	}

	return "unknown"
}

// Flag bytes used for booleans and option tags.
const (
	FalseValue byte = 0
	TrueValue  byte = 1
)

// MaxLength is the largest sequence or string length accepted by default.
// BCS cannot represent anything larger.
const MaxLength = math.MaxInt32

// Widths in bytes of the fixed-width primitives.
const (
	width8  = 1
	width16 = 2
	width32 = 4
	width64 = 8
)
