package riscv

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/diss/bits"
	"github.com/sarchlab/diss/insts"
)

const arch = insts.ArchRV64GC

var majorNames = map[uint32]string{
	opLOAD:    "LOAD",
	opLOADFP:  "LOAD-FP",
	opMISCMEM: "MISC-MEM",
	opOPIMM:   "OP-IMM",
	opAUIPC:   "AUIPC",
	opOPIMM32: "OP-IMM-32",
	opSTORE:   "STORE",
	opSTOREFP: "STORE-FP",
	opAMO:     "AMO",
	opOP:      "OP",
	opLUI:     "LUI",
	opOP32:    "OP-32",
	opMADD:    "MADD",
	opMSUB:    "MSUB",
	opNMSUB:   "NMSUB",
	opNMADD:   "NMADD",
	opOPFP:    "OP-FP",
	opOPV:     "OP-V",
	opBRANCH:  "BRANCH",
	opJALR:    "JALR",
	opJAL:     "JAL",
	opSYSTEM:  "SYSTEM",
}

var (
	major      = buildMajorTable()
	compressed = buildCompressedTable()
)

// Length returns the byte length of the instruction whose low bits are in
// word: 4 when the two low bits are both set, 2 otherwise.
func Length(word uint32) int {
	if word&0b11 == 0b11 {
		return 4
	}
	return 2
}

// Decode decodes one instruction. A compressed instruction is taken from the
// low 16 bits of word.
func Decode(word uint32) (Inst, error) {
	if Length(word) == 2 {
		return compressed.Lookup(uint16(word))
	}
	return major.Lookup(word)
}

// DecodeBytes decodes the instruction at the start of b, which is
// little-endian. It returns the instruction length even on error.
func DecodeBytes(b []byte) (Inst, int, error) {
	if len(b) < 2 {
		var w uint32
		if len(b) == 1 {
			w = uint32(b[0])
		}
		return Inst{}, 2, insts.Truncated(arch, w, fmt.Sprintf("%d of 2 bytes", len(b)))
	}

	lo := binary.LittleEndian.Uint16(b)
	if Length(uint32(lo)) == 2 {
		inst, err := Decode(uint32(lo))
		return inst, 2, err
	}

	if len(b) < 4 {
		return Inst{}, 4, insts.Truncated(arch, uint32(lo), fmt.Sprintf("%d of 4 bytes", len(b)))
	}

	inst, err := Decode(binary.LittleEndian.Uint32(b))
	return inst, 4, err
}

// Disassemble decodes word and hands the result to v. An error returned by
// v is wrapped in *insts.HandlerError.
func Disassemble[T any](v Visitor[T], word uint32) (T, error) {
	inst, err := Decode(word)
	if err != nil {
		var zero T
		return zero, err
	}

	out, err := Visit(v, inst)
	if err != nil {
		if inst.Len == 2 {
			word &= 0xffff
		}
		return out, &insts.HandlerError{Arch: arch, Word: word, Op: inst.Op.String(), Err: err}
	}
	return out, nil
}

func buildMajorTable() *insts.Table[uint32, Inst] {
	byOpcode := make(map[uint32][]insts.Rule[uint32, Inst])
	var order []uint32
	for _, e := range encodings {
		o := e.match & 0x7f
		if _, ok := byOpcode[o]; !ok {
			order = append(order, o)
		}
		byOpcode[o] = append(byOpcode[o], insts.Rule[uint32, Inst]{
			Name:   e.op.String(),
			Mask:   e.mask,
			Match:  e.match,
			Decode: operands(e),
		})
	}

	var rules []insts.Rule[uint32, Inst]
	for _, o := range order {
		sub := insts.NewTable(arch, majorNames[o], byOpcode[o]...)
		lookup := sub.Lookup
		switch o {
		case opSYSTEM:
			lookup = systemLookup(sub)
		case opLOADFP, opSTOREFP:
			lookup = floatMemLookup(sub)
		}
		rules = append(rules, insts.Rule[uint32, Inst]{
			Name: majorNames[o], Mask: 0x7f, Match: o, Decode: lookup,
		})
	}

	for _, o := range []uint32{opAMO, opOPV} {
		name := majorNames[o]
		rules = append(rules, insts.Rule[uint32, Inst]{
			Name: name, Mask: 0x7f, Match: o,
			Decode: func(w uint32) (Inst, error) {
				return Inst{}, insts.Unimplemented(arch, w, name)
			},
		})
	}

	return insts.NewTable(arch, "major opcode", rules...)
}

// systemLookup reports the privileged instructions (funct3 0 other than
// ECALL and EBREAK) as unimplemented rather than unallocated.
func systemLookup(sub *insts.Table[uint32, Inst]) func(uint32) (Inst, error) {
	return func(w uint32) (Inst, error) {
		inst, err := sub.Lookup(w)
		if err != nil && bits.Field(w, 12, 15) == 0 {
			return Inst{}, insts.Unimplemented(arch, w, "privileged SYSTEM")
		}
		return inst, err
	}
}

// floatMemLookup reports vector loads and stores, which share the LOAD-FP
// and STORE-FP opcodes, as unimplemented.
func floatMemLookup(sub *insts.Table[uint32, Inst]) func(uint32) (Inst, error) {
	return func(w uint32) (Inst, error) {
		inst, err := sub.Lookup(w)
		if err != nil {
			switch bits.Field(w, 12, 15) {
			case 0, 5, 6, 7:
				return Inst{}, insts.Unimplemented(arch, w, "vector memory access")
			}
		}
		return inst, err
	}
}

// operands returns the decoder for one encoding: it extracts the operand
// fields the encoding's shape names.
func operands(e encoding) func(uint32) (Inst, error) {
	op, sh := e.op, e.shape
	return func(w uint32) (Inst, error) {
		inst := Inst{Op: op, Len: 4}
		rd := NewReg(bits.Field(w, 7, 12))
		rs1 := NewReg(bits.Field(w, 15, 20))
		rs2 := NewReg(bits.Field(w, 20, 25))
		frd := NewFReg(rd.Index())
		frs1 := NewFReg(rs1.Index())
		frs2 := NewFReg(rs2.Index())
		rm := RoundingMode(bits.Field(w, 12, 15))

		switch sh {
		case shapeNone:
		case shapeU:
			inst.Rd, inst.Imm = rd, int64(DecodeU(w).Imm)
		case shapeJ:
			inst.Rd, inst.Imm = rd, int64(DecodeJ(w).Imm)
		case shapeI, shapeMem:
			inst.Rd, inst.Rs1, inst.Imm = rd, rs1, int64(DecodeI(w).Imm)
		case shapeShift:
			inst.Rd, inst.Rs1, inst.Imm = rd, rs1, int64(bits.Field(w, 20, 26))
		case shapeShiftW:
			inst.Rd, inst.Rs1, inst.Imm = rd, rs1, int64(bits.Field(w, 20, 25))
		case shapeR:
			inst.Rd, inst.Rs1, inst.Rs2 = rd, rs1, rs2
		case shapeB:
			inst.Rs1, inst.Rs2, inst.Imm = rs1, rs2, int64(DecodeB(w).Imm)
		case shapeS:
			inst.Rs1, inst.Rs2, inst.Imm = rs1, rs2, int64(DecodeS(w).Imm)
		case shapeCSR:
			inst.Rd, inst.Rs1, inst.CSR = rd, rs1, uint16(bits.Field(w, 20, 32))
		case shapeCSRImm:
			inst.Rd, inst.Imm, inst.CSR = rd, int64(rs1), uint16(bits.Field(w, 20, 32))
		case shapeFence:
			inst.FM = uint8(bits.Field(w, 28, 32))
			inst.Pred = uint8(bits.Field(w, 24, 28))
			inst.Succ = uint8(bits.Field(w, 20, 24))
		case shapeFLoad:
			inst.FRd, inst.Rs1, inst.Imm = frd, rs1, int64(DecodeI(w).Imm)
		case shapeFStore:
			inst.Rs1, inst.FRs2, inst.Imm = rs1, frs2, int64(DecodeS(w).Imm)
		case shapeR4:
			inst.FRd, inst.FRs1, inst.FRs2 = frd, frs1, frs2
			inst.FRs3, inst.RM = NewFReg(bits.Field(w, 27, 32)), rm
		case shapeFArith:
			inst.FRd, inst.FRs1, inst.FRs2, inst.RM = frd, frs1, frs2, rm
		case shapeFUnary:
			inst.FRd, inst.FRs1, inst.RM = frd, frs1, rm
		case shapeFNoRM:
			inst.FRd, inst.FRs1, inst.FRs2 = frd, frs1, frs2
		case shapeFCompare:
			inst.Rd, inst.FRs1, inst.FRs2 = rd, frs1, frs2
		case shapeFToInt:
			inst.Rd, inst.FRs1, inst.RM = rd, frs1, rm
		case shapeIntToF:
			inst.FRd, inst.Rs1, inst.RM = frd, rs1, rm
		case shapeFMoveX:
			inst.Rd, inst.FRs1 = rd, frs1
		case shapeXMoveF:
			inst.FRd, inst.Rs1 = frd, rs1
		}

		if sh.hasRM() && !rm.Valid() {
			return Inst{}, insts.Unallocated(arch, w, "reserved rounding mode")
		}
		return inst, nil
	}
}

func (s shape) hasRM() bool {
	switch s {
	case shapeR4, shapeFArith, shapeFUnary, shapeFToInt, shapeIntToF:
		return true
	}
	return false
}
