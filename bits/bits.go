// Package bits provides fixed-width bit and bitfield primitives shared by the
// instruction decoders and the interpreters.
//
// All helpers are generic over the unsigned word types. Bit ranges are
// half-open: Field(w, lo, hi) selects bits lo through hi-1. Precondition
// violations (a range outside the word) are programming errors and panic.
package bits

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the size in bits of T.
func Width[T constraints.Unsigned]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// Ones returns a mask with the low n bits set. n may equal the width of T.
func Ones[T constraints.Unsigned](n uint) T {
	if n > Width[T]() {
		panic(fmt.Sprintf("bits: mask width %d exceeds %d", n, Width[T]()))
	}
	if n == Width[T]() {
		return ^T(0)
	}
	return (T(1) << n) - 1
}

// Bit returns bit i of w as 0 or 1.
func Bit[T constraints.Unsigned](w T, i uint) T {
	if i >= Width[T]() {
		panic(fmt.Sprintf("bits: bit %d out of range for %d-bit word", i, Width[T]()))
	}
	return (w >> i) & 1
}

// IsSet reports whether bit i of w is 1.
func IsSet[T constraints.Unsigned](w T, i uint) bool {
	return Bit(w, i) == 1
}

// Field extracts bits [lo, hi) of w, right-aligned.
func Field[T constraints.Unsigned](w T, lo, hi uint) T {
	checkRange[T](lo, hi)
	return (w >> lo) & Ones[T](hi-lo)
}

// Insert returns w with bits [lo, hi) replaced by v. It panics if v does not
// fit in the field.
func Insert[T constraints.Unsigned](w T, lo, hi uint, v T) T {
	checkRange[T](lo, hi)
	mask := Ones[T](hi - lo)
	if v&^mask != 0 {
		panic(fmt.Sprintf("bits: value %#x does not fit in [%d, %d)", uint64(v), lo, hi))
	}
	return (w &^ (mask << lo)) | (v << lo)
}

// Fits reports whether v is representable in n unsigned bits.
func Fits[T constraints.Unsigned](v T, n uint) bool {
	return v&^Ones[T](n) == 0
}

// FitsSigned reports whether v is representable as an n-bit two's complement
// value.
func FitsSigned(v int64, n uint) bool {
	if n == 0 || n > 64 {
		panic(fmt.Sprintf("bits: signed width %d out of range", n))
	}
	if n == 64 {
		return true
	}
	lim := int64(1) << (n - 1)
	return v >= -lim && v < lim
}

// SignExtend treats the low n bits of v as a two's complement value.
func SignExtend[T constraints.Unsigned](v T, n uint) int64 {
	if n == 0 || n > 64 {
		panic(fmt.Sprintf("bits: sign extension width %d out of range", n))
	}
	shift := 64 - n
	return int64(uint64(v)<<shift) >> shift
}

// ZeroExtend keeps the low n bits of v.
func ZeroExtend[T constraints.Unsigned](v T, n uint) uint64 {
	if n == 0 || n > 64 {
		panic(fmt.Sprintf("bits: zero extension width %d out of range", n))
	}
	return uint64(v) & Ones[uint64](n)
}

func checkRange[T constraints.Unsigned](lo, hi uint) {
	if lo >= hi || hi > Width[T]() {
		panic(fmt.Sprintf("bits: invalid range [%d, %d) for %d-bit word", lo, hi, Width[T]()))
	}
}
