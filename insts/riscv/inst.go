package riscv

import "github.com/sarchlab/diss/insts"

// Inst is a decoded RV64GC instruction. Op selects the variant; only the
// operand fields that variant uses are populated, the rest stay zero.
type Inst struct {
	Op  Op
	Len uint8 // 2 or 4

	Rd, Rs1, Rs2          Reg
	FRd, FRs1, FRs2, FRs3 FReg

	// Imm is the sign- or zero-extended immediate, already scaled. Shift
	// amounts and CSR immediates also live here.
	Imm int64
	RM  RoundingMode
	CSR uint16

	// FENCE fields.
	FM, Pred, Succ uint8
}

// Class returns the coarse class of the instruction.
func (i Inst) Class() insts.Class {
	return i.Op.Class()
}

// Compressed reports whether the instruction came from a 16-bit word.
func (i Inst) Compressed() bool {
	return i.Len == 2
}

// String renders the instruction with ABI register names.
func (i Inst) String() string {
	return Format(i)
}
