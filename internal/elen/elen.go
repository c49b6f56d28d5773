// Package elen implements an order-preserving encoding for signed
// double-precision floats.
//
// It stands in for the external "elen" collaborator the codec's encoding
// registry entries are specified against: EncodeFloat64 and DecodeFloat64
// are the entire contract, and nothing outside this package depends on how
// the bytes are built. A real standalone elen module could be dropped in
// without touching anything else.
package elen

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeFloat64 encodes x into 8 bytes whose natural byte ordering matches
// the numeric ordering of x. The caller must not pass NaN; behavior is
// undefined if it does.
//
// IEEE-754 bit patterns already order correctly for positive floats when
// compared as big-endian unsigned integers, and in reverse for negative
// floats. Flipping the sign bit of a positive value, and every bit of a
// negative value, folds both cases into a single unsigned ordering:
// negative values (top bit ends up 0) sort before positive ones (top bit
// ends up 1), and within each half magnitude order is preserved or
// reversed as needed.
func EncodeFloat64(x float64) []byte {
	bits := math.Float64bits(x)
	if x >= 0 {
		bits |= 1 << 63
	} else {
		bits = ^bits
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, bits)
	return buf
}

// DecodeFloat64 is the inverse of EncodeFloat64.
func DecodeFloat64(data []byte) (float64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("elen: encoded float must be 8 bytes, got %d", len(data))
	}
	bits := binary.BigEndian.Uint64(data)
	if bits&(1<<63) != 0 {
		bits &^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits), nil
}
