package bits

import (
	"hash/crc32"
	mathbits "math/bits"

	"golang.org/x/exp/constraints"
)

var (
	ieeeTable       = crc32.MakeTable(crc32.IEEE)
	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
)

// RotateRight32 rotates x right by n bits.
func RotateRight32(x uint32, n uint) uint32 {
	return mathbits.RotateLeft32(x, -int(n%32))
}

// RotateRight64 rotates x right by n bits.
func RotateRight64(x uint64, n uint) uint64 {
	return mathbits.RotateLeft64(x, -int(n%64))
}

// Replicate repeats the low esize bits of v until width bits are filled.
// width must be a multiple of esize.
func Replicate(v uint64, esize, width uint) uint64 {
	if esize == 0 || width%esize != 0 || width > 64 {
		panic("bits: invalid replication geometry")
	}
	elem := v & Ones[uint64](esize)
	var out uint64
	for i := uint(0); i < width; i += esize {
		out |= elem << i
	}
	return out
}

// CountLeadingSign32 counts the bits below the sign bit that equal it.
func CountLeadingSign32(x uint32) uint {
	return uint(mathbits.LeadingZeros32((x ^ (x << 1)) | 1))
}

// CountLeadingSign64 counts the bits below the sign bit that equal it.
func CountLeadingSign64(x uint64) uint {
	return uint(mathbits.LeadingZeros64((x ^ (x << 1)) | 1))
}

// ReverseBits32 reverses the bit order of x.
func ReverseBits32(x uint32) uint32 { return mathbits.Reverse32(x) }

// ReverseBits64 reverses the bit order of x.
func ReverseBits64(x uint64) uint64 { return mathbits.Reverse64(x) }

// ReverseBytes16In32 swaps the bytes of each halfword (REV16, 32-bit).
func ReverseBytes16In32(x uint32) uint32 {
	return (x&0x00ff00ff)<<8 | (x>>8)&0x00ff00ff
}

// ReverseBytes16In64 swaps the bytes of each halfword (REV16, 64-bit).
func ReverseBytes16In64(x uint64) uint64 {
	return (x&0x00ff00ff00ff00ff)<<8 | (x>>8)&0x00ff00ff00ff00ff
}

// ReverseBytes32In64 reverses the bytes of each word (REV32).
func ReverseBytes32In64(x uint64) uint64 {
	lo := uint64(mathbits.ReverseBytes32(uint32(x)))
	hi := uint64(mathbits.ReverseBytes32(uint32(x >> 32)))
	return hi<<32 | lo
}

// SaturatingAdd returns a+b clamped to the maximum value of T.
func SaturatingAdd[T constraints.Unsigned](a, b T) T {
	s := a + b
	if s < a {
		return ^T(0)
	}
	return s
}

// SaturatingSub returns a-b clamped at zero.
func SaturatingSub[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

// WrappingAdd returns a+b modulo the width of T.
func WrappingAdd[T constraints.Unsigned](a, b T) T { return a + b }

// WrappingSub returns a-b modulo the width of T.
func WrappingSub[T constraints.Unsigned](a, b T) T { return a - b }

// CRC32Raw folds the low size bytes of data into acc, least significant byte
// first, with no pre- or post-inversion. size is 1, 2, 4 or 8.
func CRC32Raw(acc uint32, data uint64, size int, castagnoli bool) uint32 {
	tab := ieeeTable
	if castagnoli {
		tab = castagnoliTable
	}
	var buf [8]byte
	for i := 0; i < size; i++ {
		buf[i] = byte(data >> (8 * i))
	}
	return ^crc32.Update(^acc, tab, buf[:size])
}
