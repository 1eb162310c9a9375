package a64

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/diss/bits"
	"github.com/sarchlab/diss/insts"
)

const arch = insts.ArchA64

type rule = insts.Rule[uint32, Inst]

var top = buildTopTable()

// Decode decodes one A64 instruction word.
func Decode(word uint32) (Inst, error) {
	return top.Lookup(word)
}

// DecodeBytes decodes the little-endian word at the start of b. It always
// reports a length of 4.
func DecodeBytes(b []byte) (Inst, int, error) {
	if len(b) < 4 {
		var w uint32
		for i, c := range b {
			w |= uint32(c) << (8 * i)
		}
		return Inst{}, 4, insts.Truncated(arch, w, fmt.Sprintf("%d of 4 bytes", len(b)))
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
		return out, &insts.HandlerError{Arch: arch, Word: word, Op: inst.Op.String(), Err: err}
	}
	return out, nil
}

func unimplemented(name string) func(uint32) (Inst, error) {
	return func(w uint32) (Inst, error) {
		return Inst{}, insts.Unimplemented(arch, w, name)
	}
}

func unallocated(w uint32, detail string) (Inst, error) {
	return Inst{}, insts.Unallocated(arch, w, detail)
}

// buildTopTable dispatches on op0, bits [28:25].
func buildTopTable() *insts.Table[uint32, Inst] {
	return insts.NewTable(arch, "top level",
		rule{Name: "reserved", Mask: 0x9e000000, Match: 0x00000000, Decode: decodeReserved},
		rule{Name: "SME", Mask: 0x9e000000, Match: 0x80000000, Decode: unimplemented("SME")},
		rule{Name: "SVE", Mask: 0x1e000000, Match: 0x04000000, Decode: unimplemented("SVE")},
		rule{Name: "data processing immediate", Mask: 0x1c000000, Match: 0x10000000, Decode: buildDPImmTable().Lookup},
		rule{Name: "branch, exception and system", Mask: 0x1c000000, Match: 0x14000000, Decode: buildBranchTable().Lookup},
		rule{Name: "load and store", Mask: 0x0a000000, Match: 0x08000000, Decode: unimplemented("load and store")},
		rule{Name: "data processing register", Mask: 0x0e000000, Match: 0x0a000000, Decode: buildDPRegTable().Lookup},
		rule{Name: "SIMD and floating point", Mask: 0x0e000000, Match: 0x0e000000, Decode: unimplemented("SIMD and floating point")},
	)
}

func decodeReserved(w uint32) (Inst, error) {
	if w&0x61ff0000 != 0 {
		return unallocated(w, "reserved")
	}
	return Inst{Op: OpUDF, Imm: uint64(w & 0xffff)}, nil
}

// form builds a rule that claims the words whose masked bits equal the op's
// fixed bits and extracts operands with decode.
func form(op Op, mask uint32, decode func(Op, uint32) Inst) rule {
	return rule{
		Name:  op.String(),
		Mask:  mask,
		Match: opTable[op].base & mask,
		Decode: func(w uint32) (Inst, error) {
			return decode(op, w), nil
		},
	}
}

func sizeOf(w uint32) Size { return Size(w >> 31) }

func rd(w uint32) uint32 { return bits.Field(w, 0, 5) }
func rn(w uint32) uint32 { return bits.Field(w, 5, 10) }
func ra(w uint32) uint32 { return bits.Field(w, 10, 15) }
func rm(w uint32) uint32 { return bits.Field(w, 16, 21) }

// Data processing, immediate.

func buildDPImmTable() *insts.Table[uint32, Inst] {
	return insts.NewTable(arch, "data processing immediate",
		rule{Name: "pc-relative", Mask: 0x1f000000, Match: 0x10000000, Decode: decodePCRel},
		rule{Name: "add/sub immediate", Mask: 0x1f800000, Match: 0x11000000, Decode: decodeAddSubImm},
		rule{Name: "add/sub immediate with tags", Mask: 0x1f800000, Match: 0x11800000, Decode: decodeTags},
		rule{Name: "logical immediate", Mask: 0x1f800000, Match: 0x12000000, Decode: decodeLogicalImm},
		rule{Name: "move wide", Mask: 0x1f800000, Match: 0x12800000, Decode: decodeMoveWide},
		rule{Name: "bitfield", Mask: 0x1f800000, Match: 0x13000000, Decode: decodeBitfield},
		rule{Name: "extract", Mask: 0x1f800000, Match: 0x13800000, Decode: decodeExtract},
	)
}

func decodePCRel(w uint32) (Inst, error) {
	l := DecodePCRel(w)
	imm := bits.SignExtend(l.ImmHi<<2|l.ImmLo, 21)
	if l.Op == 1 {
		return Inst{Op: OpADRP, Size: X, Rd: OpADRP.reg(0, l.Rd), Offset: imm << 12}, nil
	}
	return Inst{Op: OpADR, Size: X, Rd: OpADR.reg(0, l.Rd), Offset: imm}, nil
}

func decodeAddSubImm(w uint32) (Inst, error) {
	l := DecodeAddSubImm(w)
	op := [4]Op{OpADDImm, OpADDSImm, OpSUBImm, OpSUBSImm}[l.Op<<1|l.S]
	return Inst{
		Op: op, Size: Size(l.Sf),
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn),
		Imm: uint64(l.Imm12), Amount: uint8(l.Sh * 12),
	}, nil
}

func decodeTags(w uint32) (Inst, error) {
	l := DecodeAddSubImmTags(w)
	if l.Sf != 1 || l.S != 0 || l.O2 != 0 || l.Op3 != 0 {
		return unallocated(w, "add/sub immediate with tags")
	}
	op := OpADDG
	if l.Op == 1 {
		op = OpSUBG
	}
	return Inst{
		Op: op, Size: X,
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn),
		Imm: uint64(l.UImm6) << 4, Imm2: uint8(l.UImm4),
	}, nil
}

func decodeLogicalImm(w uint32) (Inst, error) {
	l := DecodeLogicalImm(w)
	size := Size(l.Sf)
	if size == W && l.N == 1 {
		return unallocated(w, "32-bit logical immediate with N set")
	}
	mask, ok := DecodeBitMasks(l.N, l.Imms, l.Immr, size.Bits())
	if !ok {
		return unallocated(w, "reserved bitmask immediate")
	}
	op := [4]Op{OpANDImm, OpORRImm, OpEORImm, OpANDSImm}[l.Opc]
	return Inst{
		Op: op, Size: size, Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Imm: mask,
		Immr: uint8(l.Immr), Imms: uint8(l.Imms),
	}, nil
}

func decodeMoveWide(w uint32) (Inst, error) {
	l := DecodeMoveWide(w)
	if l.Opc == 1 {
		return unallocated(w, "move wide opc 01")
	}
	if l.Sf == 0 && l.Hw >= 2 {
		return unallocated(w, "32-bit move wide with hw >= 2")
	}
	op := [4]Op{OpMOVN, OpUnknown, OpMOVZ, OpMOVK}[l.Opc]
	return Inst{
		Op: op, Size: Size(l.Sf), Rd: op.reg(0, l.Rd),
		Imm: uint64(l.Imm16), Amount: uint8(l.Hw * 16),
	}, nil
}

func decodeBitfield(w uint32) (Inst, error) {
	l := DecodeBitfield(w)
	switch {
	case l.Opc == 3:
		return unallocated(w, "bitfield opc 11")
	case l.N != l.Sf:
		return unallocated(w, "bitfield N differs from sf")
	case l.Sf == 0 && (l.Immr >= 32 || l.Imms >= 32):
		return unallocated(w, "32-bit bitfield position out of range")
	}
	op := [3]Op{OpSBFM, OpBFM, OpUBFM}[l.Opc]
	return Inst{
		Op: op, Size: Size(l.Sf), Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn),
		Immr: uint8(l.Immr), Imms: uint8(l.Imms),
	}, nil
}

func decodeExtract(w uint32) (Inst, error) {
	l := DecodeExtract(w)
	switch {
	case l.Op21 != 0 || l.O0 != 0 || l.N != l.Sf:
		return unallocated(w, "extract")
	case l.Sf == 0 && l.Imms >= 32:
		return unallocated(w, "32-bit extract lsb out of range")
	}
	return Inst{
		Op: OpEXTR, Size: Size(l.Sf),
		Rd: OpEXTR.reg(0, l.Rd), Rn: OpEXTR.reg(1, l.Rn), Rm: OpEXTR.reg(2, l.Rm),
		Imms: uint8(l.Imms),
	}, nil
}

// Data processing, register.

func buildDPRegTable() *insts.Table[uint32, Inst] {
	return insts.NewTable(arch, "data processing register",
		rule{Name: "logical shifted register", Mask: 0x1f000000, Match: 0x0a000000, Decode: decodeLogicalShifted},
		rule{Name: "add/sub shifted register", Mask: 0x1f200000, Match: 0x0b000000, Decode: decodeAddSubShifted},
		rule{Name: "add/sub extended register", Mask: 0x1f200000, Match: 0x0b200000, Decode: decodeAddSubExtended},
		rule{Name: "carry and flags", Mask: 0x1fe00000, Match: 0x1a000000, Decode: decodeCarryFlags},
		rule{Name: "conditional compare", Mask: 0x1fe00000, Match: 0x1a400000, Decode: decodeCondCompare},
		rule{Name: "conditional select", Mask: 0x1fe00000, Match: 0x1a800000, Decode: decodeCondSelect},
		rule{Name: "two source", Mask: 0x5fe00000, Match: 0x1ac00000, Decode: buildDP2Table().Lookup},
		rule{Name: "one source", Mask: 0x5fe00000, Match: 0x5ac00000, Decode: buildDP1Table().Lookup},
		rule{Name: "three source", Mask: 0x1f000000, Match: 0x1b000000, Decode: buildDP3Table().Lookup},
	)
}

func decodeLogicalShifted(w uint32) (Inst, error) {
	l := DecodeLogicalShifted(w)
	if l.Sf == 0 && l.Imm6 >= 32 {
		return unallocated(w, "32-bit shift amount out of range")
	}
	op := [8]Op{OpAND, OpBIC, OpORR, OpORN, OpEOR, OpEON, OpANDS, OpBICS}[l.Opc<<1|l.N]
	return Inst{
		Op: op, Size: Size(l.Sf),
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Rm: op.reg(2, l.Rm),
		Shift: ShiftType(l.Shift), Amount: uint8(l.Imm6),
	}, nil
}

func decodeAddSubShifted(w uint32) (Inst, error) {
	l := DecodeAddSubShifted(w)
	switch {
	case ShiftType(l.Shift) == ShiftROR:
		return unallocated(w, "add/sub with ROR shift")
	case l.Sf == 0 && l.Imm6 >= 32:
		return unallocated(w, "32-bit shift amount out of range")
	}
	op := [4]Op{OpADD, OpADDS, OpSUB, OpSUBS}[l.Op<<1|l.S]
	return Inst{
		Op: op, Size: Size(l.Sf),
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Rm: op.reg(2, l.Rm),
		Shift: ShiftType(l.Shift), Amount: uint8(l.Imm6),
	}, nil
}

func decodeAddSubExtended(w uint32) (Inst, error) {
	l := DecodeAddSubExtended(w)
	switch {
	case l.Opt != 0:
		return unallocated(w, "add/sub extended opt")
	case l.Imm3 > 4:
		return unallocated(w, "extend shift above 4")
	}
	op := [4]Op{OpADDExt, OpADDSExt, OpSUBExt, OpSUBSExt}[l.Op<<1|l.S]
	return Inst{
		Op: op, Size: Size(l.Sf),
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Rm: op.reg(2, l.Rm),
		Extend: Extend(l.Option), Amount: uint8(l.Imm3),
	}, nil
}

// decodeCarryFlags splits the op2=0000 group on op3, bits [15:10].
func decodeCarryFlags(w uint32) (Inst, error) {
	op3 := bits.Field(w, 10, 16)
	switch {
	case op3 == 0:
		l := DecodeAddSubCarry(w)
		op := [4]Op{OpADC, OpADCS, OpSBC, OpSBCS}[l.Op<<1|l.S]
		return Inst{
			Op: op, Size: Size(l.Sf),
			Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Rm: op.reg(2, l.Rm),
		}, nil

	case op3&0x1f == 0b00001:
		if w&0xe0000010 != 0xa0000000 {
			return unallocated(w, "rotate into flags")
		}
		l := DecodeRotateFlags(w)
		return Inst{
			Op: OpRMIF, Size: X, Rn: OpRMIF.reg(0, l.Rn),
			Imms: uint8(l.Imm6), NZCV: uint8(l.Mask),
		}, nil

	case op3&0xf == 0b0010:
		if w&0xe01f801f != 0x2000000d {
			return unallocated(w, "evaluate into flags")
		}
		l := DecodeEvalFlags(w)
		op := OpSETF8
		if l.Sz == 1 {
			op = OpSETF16
		}
		return Inst{Op: op, Rn: op.reg(0, l.Rn)}, nil
	}

	return unallocated(w, "carry and flags")
}

func decodeCondCompare(w uint32) (Inst, error) {
	l := DecodeCondCompare(w)
	switch {
	case l.S == 0:
		return unallocated(w, "conditional compare without S")
	case l.O2 == 1 || l.O3 == 1:
		return unallocated(w, "conditional compare o2/o3")
	}
	if l.Imm == 1 {
		op := [2]Op{OpCCMNImm, OpCCMPImm}[l.Op]
		return Inst{
			Op: op, Size: Size(l.Sf), Rn: op.reg(0, l.Rn),
			Imm: uint64(l.Rm), NZCV: uint8(l.NZCV), Cond: Cond(l.Cond),
		}, nil
	}
	op := [2]Op{OpCCMNReg, OpCCMPReg}[l.Op]
	return Inst{
		Op: op, Size: Size(l.Sf), Rn: op.reg(0, l.Rn), Rm: op.reg(1, l.Rm),
		NZCV: uint8(l.NZCV), Cond: Cond(l.Cond),
	}, nil
}

func decodeCondSelect(w uint32) (Inst, error) {
	l := DecodeCondSelect(w)
	switch {
	case l.S == 1:
		return unallocated(w, "conditional select with S")
	case l.Op2 >= 2:
		return unallocated(w, "conditional select op2")
	}
	op := [4]Op{OpCSEL, OpCSINC, OpCSINV, OpCSNEG}[l.Op<<1|l.Op2]
	return Inst{
		Op: op, Size: Size(l.Sf),
		Rd: op.reg(0, l.Rd), Rn: op.reg(1, l.Rn), Rm: op.reg(2, l.Rm),
		Cond: Cond(l.Cond),
	}, nil
}

func regs3(op Op, w uint32) Inst {
	return Inst{
		Op: op, Size: sizeOf(w),
		Rd: op.reg(0, rd(w)), Rn: op.reg(1, rn(w)), Rm: op.reg(2, rm(w)),
	}
}

func regs3X(op Op, w uint32) Inst {
	inst := regs3(op, w)
	inst.Size = X
	return inst
}

func crc(op Op, w uint32) Inst {
	inst := regs3(op, w)
	inst.Size = 0
	return inst
}

func regs2(op Op, w uint32) Inst {
	return Inst{Op: op, Size: sizeOf(w), Rd: op.reg(0, rd(w)), Rn: op.reg(1, rn(w))}
}

func regs1X(op Op, w uint32) Inst {
	return Inst{Op: op, Size: X, Rd: op.reg(0, rd(w))}
}

func regs4(op Op, w uint32) Inst {
	inst := regs3(op, w)
	inst.Ra = op.reg(3, ra(w))
	return inst
}

// Sized forms leave sf free; fixed forms match it.
const (
	dp2Sized = 0x7fe0fc00
	dp2Fixed = 0xffe0fc00
	dp1Sized = 0x7ffffc00
	dp1Fixed = 0xfffffc00
	dp1NoRn  = 0xffffffe0
	dp3Sized = 0x7fe08000
	dp3Long  = 0xffe08000
	dp3High  = 0xffe0fc00
)

func buildDP2Table() *insts.Table[uint32, Inst] {
	rules := []rule{
		form(OpUDIV, dp2Sized, regs3),
		form(OpSDIV, dp2Sized, regs3),
		form(OpLSLV, dp2Sized, regs3),
		form(OpLSRV, dp2Sized, regs3),
		form(OpASRV, dp2Sized, regs3),
		form(OpRORV, dp2Sized, regs3),
		form(OpSUBP, dp2Fixed, regs3X),
		form(OpSUBPS, dp2Fixed, regs3X),
		form(OpIRG, dp2Fixed, regs3X),
		form(OpGMI, dp2Fixed, regs3X),
		form(OpPACGA, dp2Fixed, regs3X),
	}
	for _, op := range []Op{
		OpCRC32B, OpCRC32H, OpCRC32W, OpCRC32X,
		OpCRC32CB, OpCRC32CH, OpCRC32CW, OpCRC32CX,
	} {
		rules = append(rules, form(op, dp2Fixed, crc))
	}
	return insts.NewTable(arch, "two source", rules...)
}

func buildDP1Table() *insts.Table[uint32, Inst] {
	rules := []rule{
		form(OpRBIT, dp1Sized, regs2),
		form(OpREV16, dp1Sized, regs2),
		form(OpCLZ, dp1Sized, regs2),
		form(OpCLS, dp1Sized, regs2),
		form(OpREV32, dp1Fixed, regs2),
		form(OpREV, dp1Fixed, regs2),
		{Name: "rev", Mask: dp1Fixed, Match: revX, Decode: func(w uint32) (Inst, error) {
			return regs2(OpREV, w), nil
		}},
	}
	for _, op := range []Op{
		OpPACIA, OpPACIB, OpPACDA, OpPACDB, OpAUTIA, OpAUTIB, OpAUTDA, OpAUTDB,
	} {
		rules = append(rules, form(op, dp1Fixed, func(op Op, w uint32) Inst {
			inst := regs2(op, w)
			inst.Size = X
			return inst
		}))
	}
	for _, op := range []Op{
		OpPACIZA, OpPACIZB, OpPACDZA, OpPACDZB, OpAUTIZA, OpAUTIZB, OpAUTDZA, OpAUTDZB,
		OpXPACI, OpXPACD,
	} {
		rules = append(rules, form(op, dp1NoRn, regs1X))
	}
	return insts.NewTable(arch, "one source", rules...)
}

// revX is the 64-bit REV, whose opcode differs from the 32-bit form.
const revX = 0xdac00c00

func buildDP3Table() *insts.Table[uint32, Inst] {
	long := func(op Op, w uint32) Inst {
		inst := regs4(op, w)
		inst.Size = X
		return inst
	}
	return insts.NewTable(arch, "three source",
		form(OpMADD, dp3Sized, regs4),
		form(OpMSUB, dp3Sized, regs4),
		form(OpSMADDL, dp3Long, long),
		form(OpSMSUBL, dp3Long, long),
		form(OpUMADDL, dp3Long, long),
		form(OpUMSUBL, dp3Long, long),
		form(OpSMULH, dp3High, regs3X),
		form(OpUMULH, dp3High, regs3X),
	)
}

// Branch, exception and system.

func buildBranchTable() *insts.Table[uint32, Inst] {
	return insts.NewTable(arch, "branch, exception and system",
		rule{Name: "conditional branch", Mask: 0xfe000000, Match: 0x54000000, Decode: decodeCondBranch},
		rule{Name: "exception", Mask: 0xff000000, Match: 0xd4000000, Decode: buildExceptionTable().Lookup},
		rule{Name: "system", Mask: 0xffc00000, Match: 0xd5000000, Decode: decodeSystem},
		rule{Name: "branch register", Mask: 0xfe000000, Match: 0xd6000000, Decode: branchRegLookup(buildBranchRegTable())},
		rule{Name: "branch immediate", Mask: 0x7c000000, Match: 0x14000000, Decode: decodeBranchImm},
		rule{Name: "compare and branch", Mask: 0x7e000000, Match: 0x34000000, Decode: decodeCompareBranch},
		rule{Name: "test and branch", Mask: 0x7e000000, Match: 0x36000000, Decode: decodeTestBranch},
	)
}

func decodeCondBranch(w uint32) (Inst, error) {
	l := DecodeCondBranch(w)
	if l.O1 == 1 {
		return unallocated(w, "conditional branch o1")
	}
	op := OpBCond
	if l.O0 == 1 {
		op = OpBCCond
	}
	return Inst{Op: op, Cond: Cond(l.Cond), Offset: int64(l.Imm19) * 4}, nil
}

func buildExceptionTable() *insts.Table[uint32, Inst] {
	imm16 := func(op Op, w uint32) Inst {
		return Inst{Op: op, Imm: uint64(DecodeException(w).Imm16)}
	}
	return insts.NewTable(arch, "exception",
		form(OpSVC, 0xffe0001f, imm16),
		form(OpHVC, 0xffe0001f, imm16),
		form(OpSMC, 0xffe0001f, imm16),
		form(OpBRK, 0xffe0001f, imm16),
		form(OpHLT, 0xffe0001f, imm16),
		rule{Name: "dcps", Mask: 0xffe0001c, Match: 0xd4a00000, Decode: unimplemented("debug state change")},
	)
}

var namedHints = [...]Op{OpNOP, OpYIELD, OpWFE, OpWFI, OpSEV, OpSEVL}

// decodeSystem decodes the hint space. Register moves, barriers and PSTATE
// accesses are reported as unimplemented.
func decodeSystem(w uint32) (Inst, error) {
	if w&0xfffff01f != 0xd503201f {
		return Inst{}, insts.Unimplemented(arch, w, "system")
	}
	n := DecodeHint(w).Number()
	if n < uint32(len(namedHints)) {
		return Inst{Op: namedHints[n]}, nil
	}
	return Inst{Op: OpHINT, Imm: uint64(n)}, nil
}

func buildBranchRegTable() *insts.Table[uint32, Inst] {
	target := func(op Op, w uint32) Inst {
		return Inst{Op: op, Size: X, Rn: op.reg(0, rn(w))}
	}
	bare := func(op Op, _ uint32) Inst { return Inst{Op: op} }
	return insts.NewTable(arch, "branch register",
		form(OpBR, 0xfffffc1f, target),
		form(OpBLR, 0xfffffc1f, target),
		form(OpRET, 0xfffffc1f, target),
		form(OpERET, 0xffffffff, bare),
		form(OpDRPS, 0xffffffff, bare),
	)
}

// branchRegLookup reports the pointer-authenticating branches as
// unimplemented rather than unallocated.
func branchRegLookup(sub *insts.Table[uint32, Inst]) func(uint32) (Inst, error) {
	return func(w uint32) (Inst, error) {
		inst, err := sub.Lookup(w)
		if err != nil {
			l := DecodeUncondBranchReg(w)
			if l.Opc >= 8 || l.Op3 == 2 || l.Op3 == 3 {
				return Inst{}, insts.Unimplemented(arch, w, "pointer authentication branch")
			}
		}
		return inst, err
	}
}

func decodeBranchImm(w uint32) (Inst, error) {
	l := DecodeUncondBranchImm(w)
	op := OpB
	if l.Op == 1 {
		op = OpBL
	}
	return Inst{Op: op, Offset: int64(l.Imm26) * 4}, nil
}

func decodeCompareBranch(w uint32) (Inst, error) {
	l := DecodeCompareBranch(w)
	op := OpCBZ
	if l.Op == 1 {
		op = OpCBNZ
	}
	return Inst{Op: op, Size: Size(l.Sf), Rd: op.reg(0, l.Rt), Offset: int64(l.Imm19) * 4}, nil
}

func decodeTestBranch(w uint32) (Inst, error) {
	l := DecodeTestBranch(w)
	op := OpTBZ
	if l.Op == 1 {
		op = OpTBNZ
	}
	return Inst{
		Op: op, Rd: op.reg(0, l.Rt),
		Imm: uint64(l.B5<<5 | l.B40), Offset: int64(l.Imm14) * 4,
	}, nil
}
