package riscv

import "github.com/sarchlab/diss/bits"

// Base (32-bit) instruction layouts. Each DecodeX/Encode pair is a mutual
// inverse over in-range field values; Encode panics on a field that does not
// fit, so callers validate operands first.

// R is the register-register layout.
type R struct {
	Opcode, Rd, Funct3, Rs1, Rs2, Funct7 uint32
}

// DecodeR splits w into R fields.
func DecodeR(w uint32) R {
	return R{
		Opcode: bits.Field(w, 0, 7),
		Rd:     bits.Field(w, 7, 12),
		Funct3: bits.Field(w, 12, 15),
		Rs1:    bits.Field(w, 15, 20),
		Rs2:    bits.Field(w, 20, 25),
		Funct7: bits.Field(w, 25, 32),
	}
}

// Encode packs the fields.
func (l R) Encode() uint32 {
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, l.Rd)
	w = bits.Insert(w, 12, 15, l.Funct3)
	w = bits.Insert(w, 15, 20, l.Rs1)
	w = bits.Insert(w, 20, 25, l.Rs2)
	return bits.Insert(w, 25, 32, l.Funct7)
}

// R4 is the fused multiply-add layout.
type R4 struct {
	Opcode, Rd, Funct3, Rs1, Rs2, Funct2, Rs3 uint32
}

// DecodeR4 splits w into R4 fields.
func DecodeR4(w uint32) R4 {
	return R4{
		Opcode: bits.Field(w, 0, 7),
		Rd:     bits.Field(w, 7, 12),
		Funct3: bits.Field(w, 12, 15),
		Rs1:    bits.Field(w, 15, 20),
		Rs2:    bits.Field(w, 20, 25),
		Funct2: bits.Field(w, 25, 27),
		Rs3:    bits.Field(w, 27, 32),
	}
}

// Encode packs the fields.
func (l R4) Encode() uint32 {
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, l.Rd)
	w = bits.Insert(w, 12, 15, l.Funct3)
	w = bits.Insert(w, 15, 20, l.Rs1)
	w = bits.Insert(w, 20, 25, l.Rs2)
	w = bits.Insert(w, 25, 27, l.Funct2)
	return bits.Insert(w, 27, 32, l.Rs3)
}

// I is the register-immediate layout with a 12-bit signed immediate.
type I struct {
	Opcode, Rd, Funct3, Rs1 uint32
	Imm                     int32
}

// DecodeI splits w into I fields.
func DecodeI(w uint32) I {
	return I{
		Opcode: bits.Field(w, 0, 7),
		Rd:     bits.Field(w, 7, 12),
		Funct3: bits.Field(w, 12, 15),
		Rs1:    bits.Field(w, 15, 20),
		Imm:    int32(bits.SignExtend(bits.Field(w, 20, 32), 12)),
	}
}

// Encode packs the fields.
func (l I) Encode() uint32 {
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, l.Rd)
	w = bits.Insert(w, 12, 15, l.Funct3)
	w = bits.Insert(w, 15, 20, l.Rs1)
	return bits.Insert(w, 20, 32, signedField(int64(l.Imm), 12))
}

// S is the store layout; the immediate is split across [31:25] and [11:7].
type S struct {
	Opcode, Funct3, Rs1, Rs2 uint32
	Imm                      int32
}

// DecodeS splits w into S fields.
func DecodeS(w uint32) S {
	imm := bits.Field(w, 25, 32)<<5 | bits.Field(w, 7, 12)
	return S{
		Opcode: bits.Field(w, 0, 7),
		Funct3: bits.Field(w, 12, 15),
		Rs1:    bits.Field(w, 15, 20),
		Rs2:    bits.Field(w, 20, 25),
		Imm:    int32(bits.SignExtend(imm, 12)),
	}
}

// Encode packs the fields.
func (l S) Encode() uint32 {
	imm := signedField(int64(l.Imm), 12)
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, bits.Field(imm, 0, 5))
	w = bits.Insert(w, 12, 15, l.Funct3)
	w = bits.Insert(w, 15, 20, l.Rs1)
	w = bits.Insert(w, 20, 25, l.Rs2)
	return bits.Insert(w, 25, 32, bits.Field(imm, 5, 12))
}

// B is the conditional branch layout. Imm is a 13-bit signed, even offset
// scattered as imm[12|10:5] in [31:25] and imm[4:1|11] in [11:7].
type B struct {
	Opcode, Funct3, Rs1, Rs2 uint32
	Imm                      int32
}

// DecodeB splits w into B fields.
func DecodeB(w uint32) B {
	imm := bits.Field(w, 31, 32)<<12 |
		bits.Field(w, 7, 8)<<11 |
		bits.Field(w, 25, 31)<<5 |
		bits.Field(w, 8, 12)<<1
	return B{
		Opcode: bits.Field(w, 0, 7),
		Funct3: bits.Field(w, 12, 15),
		Rs1:    bits.Field(w, 15, 20),
		Rs2:    bits.Field(w, 20, 25),
		Imm:    int32(bits.SignExtend(imm, 13)),
	}
}

// Encode packs the fields. It panics on an odd offset.
func (l B) Encode() uint32 {
	if l.Imm&1 != 0 {
		panic("riscv: odd branch offset")
	}
	imm := signedField(int64(l.Imm), 13)
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 8, bits.Field(imm, 11, 12))
	w = bits.Insert(w, 8, 12, bits.Field(imm, 1, 5))
	w = bits.Insert(w, 12, 15, l.Funct3)
	w = bits.Insert(w, 15, 20, l.Rs1)
	w = bits.Insert(w, 20, 25, l.Rs2)
	w = bits.Insert(w, 25, 31, bits.Field(imm, 5, 11))
	return bits.Insert(w, 31, 32, bits.Field(imm, 12, 13))
}

// U is the upper-immediate layout. Imm holds the value as placed in the
// register: bits [31:12] of the word, low 12 bits zero.
type U struct {
	Opcode, Rd uint32
	Imm        int32
}

// DecodeU splits w into U fields.
func DecodeU(w uint32) U {
	return U{
		Opcode: bits.Field(w, 0, 7),
		Rd:     bits.Field(w, 7, 12),
		Imm:    int32(w & 0xfffff000),
	}
}

// Encode packs the fields. It panics if the low 12 bits of Imm are set.
func (l U) Encode() uint32 {
	if l.Imm&0xfff != 0 {
		panic("riscv: upper immediate has low bits set")
	}
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, l.Rd)
	return w | uint32(l.Imm)
}

// J is the jump layout. Imm is a 21-bit signed, even offset scattered as
// imm[20|10:1|11|19:12] in [31:12].
type J struct {
	Opcode, Rd uint32
	Imm        int32
}

// DecodeJ splits w into J fields.
func DecodeJ(w uint32) J {
	imm := bits.Field(w, 31, 32)<<20 |
		bits.Field(w, 12, 20)<<12 |
		bits.Field(w, 20, 21)<<11 |
		bits.Field(w, 21, 31)<<1
	return J{
		Opcode: bits.Field(w, 0, 7),
		Rd:     bits.Field(w, 7, 12),
		Imm:    int32(bits.SignExtend(imm, 21)),
	}
}

// Encode packs the fields. It panics on an odd offset.
func (l J) Encode() uint32 {
	if l.Imm&1 != 0 {
		panic("riscv: odd jump offset")
	}
	imm := signedField(int64(l.Imm), 21)
	var w uint32
	w = bits.Insert(w, 0, 7, l.Opcode)
	w = bits.Insert(w, 7, 12, l.Rd)
	w = bits.Insert(w, 12, 20, bits.Field(imm, 12, 20))
	w = bits.Insert(w, 20, 21, bits.Field(imm, 11, 12))
	w = bits.Insert(w, 21, 31, bits.Field(imm, 1, 11))
	return bits.Insert(w, 31, 32, bits.Field(imm, 20, 21))
}

// signedField returns the low n bits of v after checking v fits.
func signedField(v int64, n uint) uint32 {
	if !bits.FitsSigned(v, n) {
		panic("riscv: immediate out of range")
	}
	return uint32(bits.ZeroExtend(uint64(v), n))
}
