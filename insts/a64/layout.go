package a64

import (
	"fmt"

	"github.com/sarchlab/diss/bits"
)

// Encoding-class layouts. DecodeX extracts the variable fields of a word in
// that class; Encode packs them back over the class's fixed bits. Encode
// panics on a field that does not fit, so callers validate operands first.

func field(w uint32, lo, hi uint) uint32 { return bits.Field(w, lo, hi) }

func signedField(w uint32, lo, hi uint) int32 {
	return int32(bits.SignExtend(bits.Field(w, lo, hi), hi-lo))
}

func insertSigned(w uint32, lo, hi uint, v int32) uint32 {
	if !bits.FitsSigned(int64(v), hi-lo) {
		panic(fmt.Sprintf("a64: signed value %d does not fit in [%d, %d)", v, lo, hi))
	}
	return bits.Insert(w, lo, hi, uint32(v)&bits.Ones[uint32](hi-lo))
}

// PCRel is ADR and ADRP.
type PCRel struct {
	Op, ImmLo, ImmHi, Rd uint32
}

// DecodePCRel splits w into PCRel fields.
func DecodePCRel(w uint32) PCRel {
	return PCRel{Op: field(w, 31, 32), ImmLo: field(w, 29, 31), ImmHi: field(w, 5, 24), Rd: field(w, 0, 5)}
}

// Encode packs the fields.
func (l PCRel) Encode() uint32 {
	w := uint32(0x10000000)
	w = bits.Insert(w, 31, 32, l.Op)
	w = bits.Insert(w, 29, 31, l.ImmLo)
	w = bits.Insert(w, 5, 24, l.ImmHi)
	return bits.Insert(w, 0, 5, l.Rd)
}

// AddSubImm is add/subtract with a 12-bit immediate.
type AddSubImm struct {
	Sf, Op, S, Sh, Imm12, Rn, Rd uint32
}

// DecodeAddSubImm splits w into AddSubImm fields.
func DecodeAddSubImm(w uint32) AddSubImm {
	return AddSubImm{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30),
		Sh: field(w, 22, 23), Imm12: field(w, 10, 22), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l AddSubImm) Encode() uint32 {
	w := uint32(0x11000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 22, 23, l.Sh)
	w = bits.Insert(w, 10, 22, l.Imm12)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// AddSubImmTags is ADDG and SUBG.
type AddSubImmTags struct {
	Sf, Op, S, O2, UImm6, Op3, UImm4, Rn, Rd uint32
}

// DecodeAddSubImmTags splits w into AddSubImmTags fields.
func DecodeAddSubImmTags(w uint32) AddSubImmTags {
	return AddSubImmTags{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30), O2: field(w, 22, 23),
		UImm6: field(w, 16, 22), Op3: field(w, 14, 16), UImm4: field(w, 10, 14),
		Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l AddSubImmTags) Encode() uint32 {
	w := uint32(0x11800000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 22, 23, l.O2)
	w = bits.Insert(w, 16, 22, l.UImm6)
	w = bits.Insert(w, 14, 16, l.Op3)
	w = bits.Insert(w, 10, 14, l.UImm4)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// LogicalImm is AND, ORR, EOR and ANDS with a bitmask immediate.
type LogicalImm struct {
	Sf, Opc, N, Immr, Imms, Rn, Rd uint32
}

// DecodeLogicalImm splits w into LogicalImm fields.
func DecodeLogicalImm(w uint32) LogicalImm {
	return LogicalImm{
		Sf: field(w, 31, 32), Opc: field(w, 29, 31), N: field(w, 22, 23),
		Immr: field(w, 16, 22), Imms: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l LogicalImm) Encode() uint32 {
	w := uint32(0x12000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Opc)
	w = bits.Insert(w, 22, 23, l.N)
	w = bits.Insert(w, 16, 22, l.Immr)
	w = bits.Insert(w, 10, 16, l.Imms)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// MoveWide is MOVN, MOVZ and MOVK.
type MoveWide struct {
	Sf, Opc, Hw, Imm16, Rd uint32
}

// DecodeMoveWide splits w into MoveWide fields.
func DecodeMoveWide(w uint32) MoveWide {
	return MoveWide{
		Sf: field(w, 31, 32), Opc: field(w, 29, 31), Hw: field(w, 21, 23),
		Imm16: field(w, 5, 21), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l MoveWide) Encode() uint32 {
	w := uint32(0x12800000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Opc)
	w = bits.Insert(w, 21, 23, l.Hw)
	w = bits.Insert(w, 5, 21, l.Imm16)
	return bits.Insert(w, 0, 5, l.Rd)
}

// Bitfield is SBFM, BFM and UBFM.
type Bitfield struct {
	Sf, Opc, N, Immr, Imms, Rn, Rd uint32
}

// DecodeBitfield splits w into Bitfield fields.
func DecodeBitfield(w uint32) Bitfield {
	return Bitfield{
		Sf: field(w, 31, 32), Opc: field(w, 29, 31), N: field(w, 22, 23),
		Immr: field(w, 16, 22), Imms: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l Bitfield) Encode() uint32 {
	w := uint32(0x13000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Opc)
	w = bits.Insert(w, 22, 23, l.N)
	w = bits.Insert(w, 16, 22, l.Immr)
	w = bits.Insert(w, 10, 16, l.Imms)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// Extract is EXTR.
type Extract struct {
	Sf, Op21, N, O0, Rm, Imms, Rn, Rd uint32
}

// DecodeExtract splits w into Extract fields.
func DecodeExtract(w uint32) Extract {
	return Extract{
		Sf: field(w, 31, 32), Op21: field(w, 29, 31), N: field(w, 22, 23), O0: field(w, 21, 22),
		Rm: field(w, 16, 21), Imms: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l Extract) Encode() uint32 {
	w := uint32(0x13800000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Op21)
	w = bits.Insert(w, 22, 23, l.N)
	w = bits.Insert(w, 21, 22, l.O0)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 10, 16, l.Imms)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// DP2Src is data processing with two register sources.
type DP2Src struct {
	Sf, S, Rm, Opcode, Rn, Rd uint32
}

// DecodeDP2Src splits w into DP2Src fields.
func DecodeDP2Src(w uint32) DP2Src {
	return DP2Src{
		Sf: field(w, 31, 32), S: field(w, 29, 30), Rm: field(w, 16, 21),
		Opcode: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l DP2Src) Encode() uint32 {
	w := uint32(0x1ac00000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 10, 16, l.Opcode)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// DP1Src is data processing with one register source.
type DP1Src struct {
	Sf, S, Opcode2, Opcode, Rn, Rd uint32
}

// DecodeDP1Src splits w into DP1Src fields.
func DecodeDP1Src(w uint32) DP1Src {
	return DP1Src{
		Sf: field(w, 31, 32), S: field(w, 29, 30), Opcode2: field(w, 16, 21),
		Opcode: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l DP1Src) Encode() uint32 {
	w := uint32(0x5ac00000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 16, 21, l.Opcode2)
	w = bits.Insert(w, 10, 16, l.Opcode)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// LogicalShifted is the logical shifted-register class.
type LogicalShifted struct {
	Sf, Opc, Shift, N, Rm, Imm6, Rn, Rd uint32
}

// DecodeLogicalShifted splits w into LogicalShifted fields.
func DecodeLogicalShifted(w uint32) LogicalShifted {
	return LogicalShifted{
		Sf: field(w, 31, 32), Opc: field(w, 29, 31), Shift: field(w, 22, 24), N: field(w, 21, 22),
		Rm: field(w, 16, 21), Imm6: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l LogicalShifted) Encode() uint32 {
	w := uint32(0x0a000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Opc)
	w = bits.Insert(w, 22, 24, l.Shift)
	w = bits.Insert(w, 21, 22, l.N)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 10, 16, l.Imm6)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// AddSubShifted is the add/subtract shifted-register class.
type AddSubShifted struct {
	Sf, Op, S, Shift, Rm, Imm6, Rn, Rd uint32
}

// DecodeAddSubShifted splits w into AddSubShifted fields.
func DecodeAddSubShifted(w uint32) AddSubShifted {
	return AddSubShifted{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30), Shift: field(w, 22, 24),
		Rm: field(w, 16, 21), Imm6: field(w, 10, 16), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l AddSubShifted) Encode() uint32 {
	w := uint32(0x0b000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 22, 24, l.Shift)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 10, 16, l.Imm6)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// AddSubExtended is the add/subtract extended-register class.
type AddSubExtended struct {
	Sf, Op, S, Opt, Rm, Option, Imm3, Rn, Rd uint32
}

// DecodeAddSubExtended splits w into AddSubExtended fields.
func DecodeAddSubExtended(w uint32) AddSubExtended {
	return AddSubExtended{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30), Opt: field(w, 22, 24),
		Rm: field(w, 16, 21), Option: field(w, 13, 16), Imm3: field(w, 10, 13),
		Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l AddSubExtended) Encode() uint32 {
	w := uint32(0x0b200000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 22, 24, l.Opt)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 13, 16, l.Option)
	w = bits.Insert(w, 10, 13, l.Imm3)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// AddSubCarry is ADC, ADCS, SBC and SBCS.
type AddSubCarry struct {
	Sf, Op, S, Rm, Rn, Rd uint32
}

// DecodeAddSubCarry splits w into AddSubCarry fields.
func DecodeAddSubCarry(w uint32) AddSubCarry {
	return AddSubCarry{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30),
		Rm: field(w, 16, 21), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l AddSubCarry) Encode() uint32 {
	w := uint32(0x1a000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// RotateFlags is RMIF.
type RotateFlags struct {
	Imm6, Rn, Mask uint32
}

// DecodeRotateFlags splits w into RotateFlags fields.
func DecodeRotateFlags(w uint32) RotateFlags {
	return RotateFlags{Imm6: field(w, 15, 21), Rn: field(w, 5, 10), Mask: field(w, 0, 4)}
}

// Encode packs the fields.
func (l RotateFlags) Encode() uint32 {
	w := uint32(0xba000400)
	w = bits.Insert(w, 15, 21, l.Imm6)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 4, l.Mask)
}

// EvalFlags is SETF8 and SETF16.
type EvalFlags struct {
	Sz, Rn, Mask uint32
}

// DecodeEvalFlags splits w into EvalFlags fields.
func DecodeEvalFlags(w uint32) EvalFlags {
	return EvalFlags{Sz: field(w, 14, 15), Rn: field(w, 5, 10), Mask: field(w, 0, 4)}
}

// Encode packs the fields.
func (l EvalFlags) Encode() uint32 {
	w := uint32(0x3a000800)
	w = bits.Insert(w, 14, 15, l.Sz)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 4, l.Mask)
}

// CondCompare is CCMN and CCMP. Imm selects the immediate form, in which Rm
// carries imm5.
type CondCompare struct {
	Sf, Op, S, Rm, Cond, Imm, O2, Rn, O3, NZCV uint32
}

// DecodeCondCompare splits w into CondCompare fields.
func DecodeCondCompare(w uint32) CondCompare {
	return CondCompare{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30), Rm: field(w, 16, 21),
		Cond: field(w, 12, 16), Imm: field(w, 11, 12), O2: field(w, 10, 11),
		Rn: field(w, 5, 10), O3: field(w, 4, 5), NZCV: field(w, 0, 4),
	}
}

// Encode packs the fields.
func (l CondCompare) Encode() uint32 {
	w := uint32(0x1a400000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 12, 16, l.Cond)
	w = bits.Insert(w, 11, 12, l.Imm)
	w = bits.Insert(w, 10, 11, l.O2)
	w = bits.Insert(w, 5, 10, l.Rn)
	w = bits.Insert(w, 4, 5, l.O3)
	return bits.Insert(w, 0, 4, l.NZCV)
}

// CondSelect is CSEL, CSINC, CSINV and CSNEG.
type CondSelect struct {
	Sf, Op, S, Rm, Cond, Op2, Rn, Rd uint32
}

// DecodeCondSelect splits w into CondSelect fields.
func DecodeCondSelect(w uint32) CondSelect {
	return CondSelect{
		Sf: field(w, 31, 32), Op: field(w, 30, 31), S: field(w, 29, 30), Rm: field(w, 16, 21),
		Cond: field(w, 12, 16), Op2: field(w, 10, 12), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l CondSelect) Encode() uint32 {
	w := uint32(0x1a800000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 30, 31, l.Op)
	w = bits.Insert(w, 29, 30, l.S)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 12, 16, l.Cond)
	w = bits.Insert(w, 10, 12, l.Op2)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// DP3Src is the three-source multiply class.
type DP3Src struct {
	Sf, Op54, Op31, Rm, O0, Ra, Rn, Rd uint32
}

// DecodeDP3Src splits w into DP3Src fields.
func DecodeDP3Src(w uint32) DP3Src {
	return DP3Src{
		Sf: field(w, 31, 32), Op54: field(w, 29, 31), Op31: field(w, 21, 24), Rm: field(w, 16, 21),
		O0: field(w, 15, 16), Ra: field(w, 10, 15), Rn: field(w, 5, 10), Rd: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l DP3Src) Encode() uint32 {
	w := uint32(0x1b000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 29, 31, l.Op54)
	w = bits.Insert(w, 21, 24, l.Op31)
	w = bits.Insert(w, 16, 21, l.Rm)
	w = bits.Insert(w, 15, 16, l.O0)
	w = bits.Insert(w, 10, 15, l.Ra)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Rd)
}

// CondBranch is B.cond and BC.cond. Imm19 counts words.
type CondBranch struct {
	O1    uint32
	Imm19 int32
	O0    uint32
	Cond  uint32
}

// DecodeCondBranch splits w into CondBranch fields.
func DecodeCondBranch(w uint32) CondBranch {
	return CondBranch{O1: field(w, 24, 25), Imm19: signedField(w, 5, 24), O0: field(w, 4, 5), Cond: field(w, 0, 4)}
}

// Encode packs the fields.
func (l CondBranch) Encode() uint32 {
	w := uint32(0x54000000)
	w = bits.Insert(w, 24, 25, l.O1)
	w = insertSigned(w, 5, 24, l.Imm19)
	w = bits.Insert(w, 4, 5, l.O0)
	return bits.Insert(w, 0, 4, l.Cond)
}

// UncondBranchImm is B and BL. Imm26 counts words.
type UncondBranchImm struct {
	Op    uint32
	Imm26 int32
}

// DecodeUncondBranchImm splits w into UncondBranchImm fields.
func DecodeUncondBranchImm(w uint32) UncondBranchImm {
	return UncondBranchImm{Op: field(w, 31, 32), Imm26: signedField(w, 0, 26)}
}

// Encode packs the fields.
func (l UncondBranchImm) Encode() uint32 {
	w := uint32(0x14000000)
	w = bits.Insert(w, 31, 32, l.Op)
	return insertSigned(w, 0, 26, l.Imm26)
}

// CompareBranch is CBZ and CBNZ. Imm19 counts words.
type CompareBranch struct {
	Sf, Op uint32
	Imm19  int32
	Rt     uint32
}

// DecodeCompareBranch splits w into CompareBranch fields.
func DecodeCompareBranch(w uint32) CompareBranch {
	return CompareBranch{Sf: field(w, 31, 32), Op: field(w, 24, 25), Imm19: signedField(w, 5, 24), Rt: field(w, 0, 5)}
}

// Encode packs the fields.
func (l CompareBranch) Encode() uint32 {
	w := uint32(0x34000000)
	w = bits.Insert(w, 31, 32, l.Sf)
	w = bits.Insert(w, 24, 25, l.Op)
	w = insertSigned(w, 5, 24, l.Imm19)
	return bits.Insert(w, 0, 5, l.Rt)
}

// TestBranch is TBZ and TBNZ. The tested bit is B5:B40; Imm14 counts words.
type TestBranch struct {
	B5, Op, B40 uint32
	Imm14       int32
	Rt          uint32
}

// DecodeTestBranch splits w into TestBranch fields.
func DecodeTestBranch(w uint32) TestBranch {
	return TestBranch{
		B5: field(w, 31, 32), Op: field(w, 24, 25), B40: field(w, 19, 24),
		Imm14: signedField(w, 5, 19), Rt: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l TestBranch) Encode() uint32 {
	w := uint32(0x36000000)
	w = bits.Insert(w, 31, 32, l.B5)
	w = bits.Insert(w, 24, 25, l.Op)
	w = bits.Insert(w, 19, 24, l.B40)
	w = insertSigned(w, 5, 19, l.Imm14)
	return bits.Insert(w, 0, 5, l.Rt)
}

// Exception is the exception-generation class.
type Exception struct {
	Opc, Imm16, Op2, LL uint32
}

// DecodeException splits w into Exception fields.
func DecodeException(w uint32) Exception {
	return Exception{Opc: field(w, 21, 24), Imm16: field(w, 5, 21), Op2: field(w, 2, 5), LL: field(w, 0, 2)}
}

// Encode packs the fields.
func (l Exception) Encode() uint32 {
	w := uint32(0xd4000000)
	w = bits.Insert(w, 21, 24, l.Opc)
	w = bits.Insert(w, 5, 21, l.Imm16)
	w = bits.Insert(w, 2, 5, l.Op2)
	return bits.Insert(w, 0, 2, l.LL)
}

// UncondBranchReg is the unconditional branch-to-register class.
type UncondBranchReg struct {
	Opc, Op2, Op3, Rn, Op4 uint32
}

// DecodeUncondBranchReg splits w into UncondBranchReg fields.
func DecodeUncondBranchReg(w uint32) UncondBranchReg {
	return UncondBranchReg{
		Opc: field(w, 21, 25), Op2: field(w, 16, 21), Op3: field(w, 10, 16),
		Rn: field(w, 5, 10), Op4: field(w, 0, 5),
	}
}

// Encode packs the fields.
func (l UncondBranchReg) Encode() uint32 {
	w := uint32(0xd6000000)
	w = bits.Insert(w, 21, 25, l.Opc)
	w = bits.Insert(w, 16, 21, l.Op2)
	w = bits.Insert(w, 10, 16, l.Op3)
	w = bits.Insert(w, 5, 10, l.Rn)
	return bits.Insert(w, 0, 5, l.Op4)
}

// Hint is the hint space of the system class.
type Hint struct {
	CRm, Op2 uint32
}

// DecodeHint splits w into Hint fields.
func DecodeHint(w uint32) Hint {
	return Hint{CRm: field(w, 8, 12), Op2: field(w, 5, 8)}
}

// Encode packs the fields.
func (l Hint) Encode() uint32 {
	w := uint32(0xd503201f)
	w = bits.Insert(w, 8, 12, l.CRm)
	return bits.Insert(w, 5, 8, l.Op2)
}

// Number returns the hint number CRm:op2.
func (l Hint) Number() uint32 {
	return l.CRm<<3 | l.Op2
}
