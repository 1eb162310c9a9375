package a64

import "github.com/sarchlab/diss/insts"

// Inst is a decoded A64 instruction. Op selects the variant; only the operand
// fields that variant uses are populated.
type Inst struct {
	Op Op

	// Size is the operand width. Forms that only exist at 64 bits carry X;
	// forms without a width operand leave it zero.
	Size Size

	Rd, Rn, Rm, Ra Reg // Rd doubles as Rt for compare and test branches

	// Imm holds the unsigned immediate: add/sub imm12, the logical bit
	// pattern, imm16, the tag offset, the ccmp imm5, the test bit or the
	// hint number.
	Imm  uint64
	Imm2 uint8 // tag offset of ADDG/SUBG

	// Offset is the signed byte offset of branches and PC-relative forms.
	Offset int64

	Shift  ShiftType
	Amount uint8 // shift amount, extend amount or move-wide shift
	Extend Extend
	Cond   Cond

	Immr, Imms uint8 // bitfield and raw logical-immediate fields; Imms also carries EXTR lsb and RMIF lsb
	NZCV       uint8 // ccmp flags or RMIF mask
}

// Class returns the coarse class of the instruction.
func (i Inst) Class() insts.Class {
	return i.Op.Class()
}

// String renders the instruction in assembly syntax.
func (i Inst) String() string {
	return Format(i)
}
