package a64

import (
	mathbits "math/bits"

	"github.com/sarchlab/diss/bits"
)

// rorElem rotates the low esize bits of x right by r.
func rorElem(x uint64, r, esize uint) uint64 {
	if esize == 64 {
		return bits.RotateRight64(x, r)
	}
	mask := bits.Ones[uint64](esize)
	x &= mask
	r %= esize
	if r == 0 {
		return x
	}
	return ((x >> r) | (x << (esize - r))) & mask
}

// DecodeBitMasks expands the N:immr:imms logical-immediate fields into the
// bit pattern they denote, replicated to width (32 or 64) bits. ok is false
// for the reserved encodings: no element size, or an all-ones element.
func DecodeBitMasks(n, imms, immr uint32, width uint) (mask uint64, ok bool) {
	combined := (n&1)<<6 | (^imms & 0x3f)
	if combined == 0 {
		return 0, false
	}
	length := uint(mathbits.Len32(combined)) - 1
	if length < 1 {
		return 0, false
	}
	esize := uint(1) << length
	if esize > width {
		return 0, false
	}

	levels := uint32(esize - 1)
	s := imms & levels
	r := immr & levels
	if s == levels {
		return 0, false
	}

	elem := rorElem(bits.Ones[uint64](uint(s)+1), uint(r), esize)
	return bits.Replicate(elem, esize, width), true
}

// elementSize returns the element size selected by n and imms, or 0 when
// there is none.
func elementSize(n, imms uint32) uint32 {
	combined := (n&1)<<6 | (^imms & 0x3f)
	if combined == 0 {
		return 0
	}
	return uint32(1) << (mathbits.Len32(combined) - 1)
}

// keepImmr puts immr back into the logical-immediate word w when it differs
// from w's rotation only in the bits above the element size, which the
// architecture ignores.
func keepImmr(w uint32, immr uint8) uint32 {
	l := DecodeLogicalImm(w)
	esize := elementSize(l.N, l.Imms)
	if esize == 0 || immr >= 64 || uint32(immr)&(esize-1) != l.Immr {
		return w
	}
	l.Immr = uint32(immr)
	return l.Encode()
}

// EncodeBitMasks finds the N:immr:imms fields that encode imm as a logical
// immediate of width bits. ok is false when imm is not a replicated,
// rotated run of ones.
func EncodeBitMasks(imm uint64, width uint) (n, immr, imms uint32, ok bool) {
	if width != 64 {
		if imm>>width != 0 {
			return 0, 0, 0, false
		}
	}
	full := bits.Ones[uint64](width)
	if imm == 0 || imm == full {
		return 0, 0, 0, false
	}

	esize := uint(2)
	for ; esize < width; esize <<= 1 {
		if bits.Replicate(imm, esize, width) == imm {
			break
		}
	}

	elem := imm & bits.Ones[uint64](esize)
	ones := uint(mathbits.OnesCount64(elem))
	run := bits.Ones[uint64](ones)
	for r := uint(0); r < esize; r++ {
		if rorElem(run, r, esize) != elem {
			continue
		}
		s := uint32(ones - 1)
		imms = (^uint32(2*esize-1) & 0x3f) | s
		if esize == 64 {
			n = 1
		}
		return n, uint32(r), imms, true
	}

	return 0, 0, 0, false
}
