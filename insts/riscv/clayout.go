package riscv

import "github.com/sarchlab/diss/bits"

// Compressed (16-bit) layouts. Immediate chunks are kept raw, exactly as they
// sit in the halfword; the per-family helpers below gather and scatter them.
// Register fields named with a P hold 3-bit prime indices.

// CR is the compressed register layout.
type CR struct {
	Op, Rs2, Rd, Funct4 uint16
}

// DecodeCR splits w into CR fields.
func DecodeCR(w uint16) CR {
	return CR{
		Op:     bits.Field(w, 0, 2),
		Rs2:    bits.Field(w, 2, 7),
		Rd:     bits.Field(w, 7, 12),
		Funct4: bits.Field(w, 12, 16),
	}
}

// Encode packs the fields.
func (l CR) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 7, l.Rs2)
	w = bits.Insert(w, 7, 12, l.Rd)
	return bits.Insert(w, 12, 16, l.Funct4)
}

// CI is the compressed immediate layout: imm[12], rd[11:7], imm[6:2].
type CI struct {
	Op, ImmLo, Rd, ImmHi, Funct3 uint16
}

// DecodeCI splits w into CI fields.
func DecodeCI(w uint16) CI {
	return CI{
		Op:     bits.Field(w, 0, 2),
		ImmLo:  bits.Field(w, 2, 7),
		Rd:     bits.Field(w, 7, 12),
		ImmHi:  bits.Field(w, 12, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CI) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 7, l.ImmLo)
	w = bits.Insert(w, 7, 12, l.Rd)
	w = bits.Insert(w, 12, 13, l.ImmHi)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// CSS is the compressed stack-relative store layout: imm[12:7], rs2[6:2].
type CSS struct {
	Op, Rs2, Imm, Funct3 uint16
}

// DecodeCSS splits w into CSS fields.
func DecodeCSS(w uint16) CSS {
	return CSS{
		Op:     bits.Field(w, 0, 2),
		Rs2:    bits.Field(w, 2, 7),
		Imm:    bits.Field(w, 7, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CSS) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 7, l.Rs2)
	w = bits.Insert(w, 7, 13, l.Imm)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// CIW is the compressed wide-immediate layout: imm[12:5], rd'[4:2].
type CIW struct {
	Op, RdP, Imm, Funct3 uint16
}

// DecodeCIW splits w into CIW fields.
func DecodeCIW(w uint16) CIW {
	return CIW{
		Op:     bits.Field(w, 0, 2),
		RdP:    bits.Field(w, 2, 5),
		Imm:    bits.Field(w, 5, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CIW) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 5, l.RdP)
	w = bits.Insert(w, 5, 13, l.Imm)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// CL is the compressed load layout: imm[12:10], rs1'[9:7], imm[6:5], rd'[4:2].
type CL struct {
	Op, RdP, ImmLo, Rs1P, ImmHi, Funct3 uint16
}

// DecodeCL splits w into CL fields.
func DecodeCL(w uint16) CL {
	return CL{
		Op:     bits.Field(w, 0, 2),
		RdP:    bits.Field(w, 2, 5),
		ImmLo:  bits.Field(w, 5, 7),
		Rs1P:   bits.Field(w, 7, 10),
		ImmHi:  bits.Field(w, 10, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CL) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 5, l.RdP)
	w = bits.Insert(w, 5, 7, l.ImmLo)
	w = bits.Insert(w, 7, 10, l.Rs1P)
	w = bits.Insert(w, 10, 13, l.ImmHi)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// CS is the compressed store layout; it shares CL's geometry with rs2' in
// place of rd'.
type CS struct {
	Op, Rs2P, ImmLo, Rs1P, ImmHi, Funct3 uint16
}

// DecodeCS splits w into CS fields.
func DecodeCS(w uint16) CS {
	l := DecodeCL(w)
	return CS{Op: l.Op, Rs2P: l.RdP, ImmLo: l.ImmLo, Rs1P: l.Rs1P, ImmHi: l.ImmHi, Funct3: l.Funct3}
}

// Encode packs the fields.
func (l CS) Encode() uint16 {
	return CL{Op: l.Op, RdP: l.Rs2P, ImmLo: l.ImmLo, Rs1P: l.Rs1P, ImmHi: l.ImmHi, Funct3: l.Funct3}.Encode()
}

// CA is the compressed arithmetic layout: funct6[15:10], rd'[9:7],
// funct2[6:5], rs2'[4:2].
type CA struct {
	Op, Rs2P, Funct2, RdP, Funct6 uint16
}

// DecodeCA splits w into CA fields.
func DecodeCA(w uint16) CA {
	return CA{
		Op:     bits.Field(w, 0, 2),
		Rs2P:   bits.Field(w, 2, 5),
		Funct2: bits.Field(w, 5, 7),
		RdP:    bits.Field(w, 7, 10),
		Funct6: bits.Field(w, 10, 16),
	}
}

// Encode packs the fields.
func (l CA) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 5, l.Rs2P)
	w = bits.Insert(w, 5, 7, l.Funct2)
	w = bits.Insert(w, 7, 10, l.RdP)
	return bits.Insert(w, 10, 16, l.Funct6)
}

// CB is the compressed branch layout: off[12:10], rs1'[9:7], off[6:2].
// The shift and ANDI forms keep their funct2 selector in ImmHi's low two bits.
type CB struct {
	Op, ImmLo, Rs1P, ImmHi, Funct3 uint16
}

// DecodeCB splits w into CB fields.
func DecodeCB(w uint16) CB {
	return CB{
		Op:     bits.Field(w, 0, 2),
		ImmLo:  bits.Field(w, 2, 7),
		Rs1P:   bits.Field(w, 7, 10),
		ImmHi:  bits.Field(w, 10, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CB) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 7, l.ImmLo)
	w = bits.Insert(w, 7, 10, l.Rs1P)
	w = bits.Insert(w, 10, 13, l.ImmHi)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// CJ is the compressed jump layout: target[12:2].
type CJ struct {
	Op, Target, Funct3 uint16
}

// DecodeCJ splits w into CJ fields.
func DecodeCJ(w uint16) CJ {
	return CJ{
		Op:     bits.Field(w, 0, 2),
		Target: bits.Field(w, 2, 13),
		Funct3: bits.Field(w, 13, 16),
	}
}

// Encode packs the fields.
func (l CJ) Encode() uint16 {
	var w uint16
	w = bits.Insert(w, 0, 2, l.Op)
	w = bits.Insert(w, 2, 13, l.Target)
	return bits.Insert(w, 13, 16, l.Funct3)
}

// Immediate families. Each gather takes the whole halfword; each scatter
// returns only the immediate bits, ready to be OR-ed into a halfword.

type scatter struct {
	from, to, width uint // insn bit, value bit, field width
}

func gather(w uint16, pieces []scatter) uint32 {
	var v uint32
	for _, p := range pieces {
		v |= uint32(bits.Field(w, p.from, p.from+p.width)) << p.to
	}
	return v
}

func spread(v uint32, pieces []scatter) uint16 {
	var w uint16
	for _, p := range pieces {
		w |= uint16(bits.Field(v, p.to, p.to+p.width)) << p.from
	}
	return w
}

// Each table lists (instruction bit, value bit, width) runs.
var (
	// nzuimm[5:4|9:6|2|3] = insn[12:11|10:7|6|5]
	addi4spnImm = []scatter{{11, 4, 2}, {7, 6, 4}, {6, 2, 1}, {5, 3, 1}}
	// uimm[5:3] = insn[12:10], uimm[2] = insn[6], uimm[6] = insn[5]
	wordOffImm = []scatter{{10, 3, 3}, {6, 2, 1}, {5, 6, 1}}
	// uimm[5:3] = insn[12:10], uimm[7:6] = insn[6:5]
	dwordOffImm = []scatter{{10, 3, 3}, {5, 6, 2}}
	// imm[5] = insn[12], imm[4:0] = insn[6:2]
	ciImm = []scatter{{12, 5, 1}, {2, 0, 5}}
	// nzimm[9|4|6|8:7|5] = insn[12|6|5|4:3|2]
	addi16spImm = []scatter{{12, 9, 1}, {6, 4, 1}, {5, 6, 1}, {3, 7, 2}, {2, 5, 1}}
	// nzimm[17|16:12] = insn[12|6:2]
	luiImm = []scatter{{12, 17, 1}, {2, 12, 5}}
	// off[8|4:3|7:6|2:1|5] = insn[12|11:10|6:5|4:3|2]
	cbImm = []scatter{{12, 8, 1}, {10, 3, 2}, {5, 6, 2}, {3, 1, 2}, {2, 5, 1}}
	// off[11|4|9:8|10|6|7|3:1|5] = insn[12|11|10:9|8|7|6|5:3|2]
	cjImm = []scatter{{12, 11, 1}, {11, 4, 1}, {9, 8, 2}, {8, 10, 1}, {7, 6, 1}, {6, 7, 1}, {3, 1, 3}, {2, 5, 1}}
	// uimm[5] = insn[12], uimm[4:2] = insn[6:4], uimm[7:6] = insn[3:2]
	lwspImm = []scatter{{12, 5, 1}, {4, 2, 3}, {2, 6, 2}}
	// uimm[5] = insn[12], uimm[4:3] = insn[6:5], uimm[8:6] = insn[4:2]
	ldspImm = []scatter{{12, 5, 1}, {5, 3, 2}, {2, 6, 3}}
	// uimm[5:2] = insn[12:9], uimm[7:6] = insn[8:7]
	swspImm = []scatter{{9, 2, 4}, {7, 6, 2}}
	// uimm[5:3] = insn[12:10], uimm[8:6] = insn[9:7]
	sdspImm = []scatter{{10, 3, 3}, {7, 6, 3}}
)
