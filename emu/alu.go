package emu

import (
	"math/bits"

	"github.com/sarchlab/diss/insts/a64"
)

// ALU implements A64 arithmetic and logic on a register file. Every
// operation works at the operand width sz; W results are zero-extended.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

func widthMask(sz a64.Size) uint64 {
	if sz == a64.X {
		return ^uint64(0)
	}
	return 0xffffffff
}

// lowMask returns a mask of the low n bits, 1 <= n <= 64.
func lowMask(n uint) uint64 {
	return ^uint64(0) >> (64 - n)
}

func signBit(sz a64.Size, v uint64) bool {
	return v>>(sz.Bits()-1)&1 == 1
}

// Read reads rn at width sz.
func (a *ALU) Read(sz a64.Size, rn a64.Reg) uint64 {
	return a.regFile.ReadReg(rn) & widthMask(sz)
}

// Write writes v to rd at width sz.
func (a *ALU) Write(sz a64.Size, rd a64.Reg, v uint64) {
	a.regFile.WriteReg(rd, v&widthMask(sz))
}

// AddWithCarry returns x + y + carry at width sz and, when setFlags is set,
// updates NZCV. Subtraction is AddWithCarry(x, ^y, true).
func (a *ALU) AddWithCarry(sz a64.Size, x, y uint64, carry, setFlags bool) uint64 {
	var cin uint64
	if carry {
		cin = 1
	}

	mask := widthMask(sz)
	x, y = x&mask, y&mask

	var result uint64
	var c bool
	if sz == a64.X {
		var cout uint64
		result, cout = bits.Add64(x, y, cin)
		c = cout == 1
	} else {
		full := x + y + cin
		result = full & mask
		c = full>>32 != 0
	}

	if setFlags {
		a.regFile.PSTATE = PSTATE{
			N: signBit(sz, result),
			Z: result == 0,
			C: c,
			V: signBit(sz, (x^result)&(y^result)),
		}
	}
	return result
}

// Sub returns x - y, updating NZCV when setFlags is set.
func (a *ALU) Sub(sz a64.Size, x, y uint64, setFlags bool) uint64 {
	return a.AddWithCarry(sz, x, ^y, true, setFlags)
}

// Logic sets N and Z from result and clears C and V.
func (a *ALU) Logic(sz a64.Size, result uint64) {
	result &= widthMask(sz)
	a.regFile.PSTATE = PSTATE{N: signBit(sz, result), Z: result == 0}
}

// Shift applies a register shift at width sz.
func Shift(sz a64.Size, v uint64, shift a64.ShiftType, amount uint8) uint64 {
	n := sz.Bits()
	v &= widthMask(sz)
	amt := uint(amount) % n

	switch shift {
	case a64.ShiftLSR:
		return v >> amt
	case a64.ShiftASR:
		if sz == a64.X {
			return uint64(int64(v) >> amt)
		}
		return uint64(uint32(int32(uint32(v)) >> amt))
	case a64.ShiftROR:
		if sz == a64.X {
			return bits.RotateLeft64(v, -int(amt))
		}
		return uint64(bits.RotateLeft32(uint32(v), -int(amt)))
	default:
		return v << amt & widthMask(sz)
	}
}

// ExtendReg extends the low bits of v and shifts the result left.
func ExtendReg(v uint64, ext a64.Extend, amount uint8) uint64 {
	n := ext.Bits()
	v &= lowMask(n)
	if ext.Signed() && v>>(n-1)&1 == 1 {
		v |= ^lowMask(n)
	}
	return v << amount
}

// Bitfield implements BFM, SBFM and UBFM. When immr <= imms the field
// Rn<imms:immr> moves to bit 0; otherwise Rn<imms:0> moves to bit
// width-immr. BFM keeps the other bits of dst.
func Bitfield(sz a64.Size, src, dst uint64, immr, imms uint8, signed, insert bool) uint64 {
	r, s := uint(immr), uint(imms)

	var width, pos uint
	field := src
	if s >= r {
		width = s - r + 1
		field >>= r
	} else {
		width = s + 1
		pos = sz.Bits() - r
	}

	mask := lowMask(width)
	field &= mask

	var result uint64
	switch {
	case insert:
		result = dst&^(mask<<pos) | field<<pos
	case signed && field>>(width-1)&1 == 1:
		result = (field | ^mask) << pos
	default:
		result = field << pos
	}
	return result & widthMask(sz)
}

// Extract returns the sz-wide window of the concatenation hi:lo starting at
// bit lsb.
func Extract(sz a64.Size, hi, lo uint64, lsb uint8) uint64 {
	if lsb == 0 {
		return lo & widthMask(sz)
	}
	if sz == a64.X {
		return lo>>lsb | hi<<(64-uint(lsb))
	}
	joined := (hi&0xffffffff)<<32 | lo&0xffffffff
	return joined >> lsb & 0xffffffff
}

// CountLeadingSign returns the number of bits below the sign bit that
// equal it.
func CountLeadingSign(sz a64.Size, v uint64) uint64 {
	n := sz.Bits()
	v &= widthMask(sz)
	diff := (v>>1 ^ v) & lowMask(n-1)
	return uint64(bits.LeadingZeros64(diff) - int(64-n) - 1)
}

// ReverseBits reverses the bit order of v at width sz.
func ReverseBits(sz a64.Size, v uint64) uint64 {
	if sz == a64.X {
		return bits.Reverse64(v)
	}
	return uint64(bits.Reverse32(uint32(v)))
}

// ReverseBytesIn reverses the bytes inside each chunk-bit container. A
// chunk of 64 reverses the whole register.
func ReverseBytesIn(sz a64.Size, v uint64, chunk uint) uint64 {
	v &= widthMask(sz)
	switch chunk {
	case 16:
		return (v&0xff00ff00ff00ff00)>>8 | (v&0x00ff00ff00ff00ff)<<8
	case 32:
		return bits.RotateLeft64(bits.ReverseBytes64(v), 32) & widthMask(sz)
	default:
		if sz == a64.X {
			return bits.ReverseBytes64(v)
		}
		return uint64(bits.ReverseBytes32(uint32(v)))
	}
}

// MulHigh returns the high 64 bits of the 128-bit product.
func MulHigh(x, y uint64, signed bool) uint64 {
	hi, _ := bits.Mul64(x, y)
	if signed {
		if int64(x) < 0 {
			hi -= y
		}
		if int64(y) < 0 {
			hi -= x
		}
	}
	return hi
}

// MulHighSignedUnsigned returns the high 64 bits of signed x times
// unsigned y.
func MulHighSignedUnsigned(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	if int64(x) < 0 {
		hi -= y
	}
	return hi
}
