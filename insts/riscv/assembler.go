package riscv

import (
	"errors"
	"fmt"

	"github.com/sarchlab/diss/bits"
)

// ErrOperand reports an operand the encoder cannot represent.
var ErrOperand = errors.New("invalid operand")

// Assembler encodes instructions. Its methods return the instruction word;
// compressed instructions occupy the low 16 bits.
type Assembler struct{}

// Encode returns the word for inst.
func Encode(inst Inst) (uint32, error) {
	return Visit(Assembler{}, inst)
}

var fixedBits = indexEncodings()

func indexEncodings() [numOps]pattern {
	var t [numOps]pattern
	for _, e := range encodings {
		t[e.op] = e.pattern
	}
	return t
}

func operandError(op Op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrOperand, fmt.Sprintf(format, args...))
}

func checkRegs(op Op, rs ...Reg) error {
	for _, r := range rs {
		if !r.Valid() {
			return operandError(op, "register %s", r)
		}
	}
	return nil
}

func checkFRegs(op Op, rs ...FReg) error {
	for _, r := range rs {
		if !r.Valid() {
			return operandError(op, "register %s", r)
		}
	}
	return nil
}

func checkSigned(op Op, what string, v int64, n uint) error {
	if !bits.FitsSigned(v, n) {
		return operandError(op, "%s %d does not fit in %d signed bits", what, v, n)
	}
	return nil
}

func checkEven(op Op, v int64) error {
	if v&1 != 0 {
		return operandError(op, "offset %d is odd", v)
	}
	return nil
}

func checkRM(op Op, rm RoundingMode) error {
	if rm != noRM && !rm.Valid() {
		return operandError(op, "rounding mode %s", rm)
	}
	return nil
}

// placeRM puts rm in funct3 unless the op has no rounding-mode field.
func placeRM(w uint32, rm RoundingMode) uint32 {
	if rm == noRM {
		return w
	}
	return bits.Insert(w, 12, 15, uint32(rm))
}

func (a Assembler) encU(op Op, rd Reg, imm int32) (uint32, error) {
	if err := checkRegs(op, rd); err != nil {
		return 0, err
	}
	if imm&0xfff != 0 {
		return 0, operandError(op, "upper immediate %#x has low bits set", imm)
	}
	return fixedBits[op].match | U{Rd: rd.Index(), Imm: imm}.Encode(), nil
}

func (a Assembler) encJ(op Op, rd Reg, off int32) (uint32, error) {
	if err := errors.Join(checkRegs(op, rd), checkEven(op, int64(off)),
		checkSigned(op, "offset", int64(off), 21)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | J{Rd: rd.Index(), Imm: off}.Encode(), nil
}

func (a Assembler) encI(op Op, rd, rs1 Reg, imm int32) (uint32, error) {
	if err := errors.Join(checkRegs(op, rd, rs1), checkSigned(op, "immediate", int64(imm), 12)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | I{Rd: rd.Index(), Rs1: rs1.Index(), Imm: imm}.Encode(), nil
}

func (a Assembler) shift(op Op, rd, rs1 Reg, shamt uint8, width uint) (uint32, error) {
	if err := checkRegs(op, rd, rs1); err != nil {
		return 0, err
	}
	if !bits.Fits(shamt, width) {
		return 0, operandError(op, "shift amount %d", shamt)
	}
	return fixedBits[op].match | I{Rd: rd.Index(), Rs1: rs1.Index(), Imm: int32(shamt)}.Encode(), nil
}

func (a Assembler) encShift(op Op, rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.shift(op, rd, rs1, shamt, 6)
}

func (a Assembler) encShiftW(op Op, rd, rs1 Reg, shamt uint8) (uint32, error) {
	return a.shift(op, rd, rs1, shamt, 5)
}

func (a Assembler) encR(op Op, rd, rs1, rs2 Reg) (uint32, error) {
	if err := checkRegs(op, rd, rs1, rs2); err != nil {
		return 0, err
	}
	return fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index(), Rs2: rs2.Index()}.Encode(), nil
}

func (a Assembler) encB(op Op, rs1, rs2 Reg, off int32) (uint32, error) {
	if err := errors.Join(checkRegs(op, rs1, rs2), checkEven(op, int64(off)),
		checkSigned(op, "offset", int64(off), 13)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | B{Rs1: rs1.Index(), Rs2: rs2.Index(), Imm: off}.Encode(), nil
}

func (a Assembler) encS(op Op, rs1, rs2 Reg, imm int32) (uint32, error) {
	if err := errors.Join(checkRegs(op, rs1, rs2), checkSigned(op, "immediate", int64(imm), 12)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | S{Rs1: rs1.Index(), Rs2: rs2.Index(), Imm: imm}.Encode(), nil
}

func (a Assembler) csrWord(op Op, rd Reg, src uint32, csr uint16) (uint32, error) {
	if !bits.Fits(csr, 12) {
		return 0, operandError(op, "csr %#x", csr)
	}
	w := fixedBits[op].match
	w = bits.Insert(w, 7, 12, rd.Index())
	w = bits.Insert(w, 15, 20, src)
	return bits.Insert(w, 20, 32, uint32(csr)), nil
}

func (a Assembler) encCSR(op Op, rd, rs1 Reg, csr uint16) (uint32, error) {
	if err := checkRegs(op, rd, rs1); err != nil {
		return 0, err
	}
	return a.csrWord(op, rd, rs1.Index(), csr)
}

func (a Assembler) encCSRI(op Op, rd Reg, uimm uint8, csr uint16) (uint32, error) {
	if err := checkRegs(op, rd); err != nil {
		return 0, err
	}
	if !bits.Fits(uimm, 5) {
		return 0, operandError(op, "immediate %d", uimm)
	}
	return a.csrWord(op, rd, uint32(uimm), csr)
}

func (a Assembler) encFence(op Op, fm, pred, succ uint8) (uint32, error) {
	if !bits.Fits(fm, 4) || !bits.Fits(pred, 4) || !bits.Fits(succ, 4) {
		return 0, operandError(op, "fence fields %d/%d/%d", fm, pred, succ)
	}
	w := fixedBits[op].match
	w = bits.Insert(w, 20, 24, uint32(succ))
	w = bits.Insert(w, 24, 28, uint32(pred))
	return bits.Insert(w, 28, 32, uint32(fm)), nil
}

func (a Assembler) encFixed(op Op) (uint32, error) {
	return fixedBits[op].match, nil
}

func (a Assembler) encFloatLoad(op Op, rd FReg, rs1 Reg, imm int32) (uint32, error) {
	if err := errors.Join(checkFRegs(op, rd), checkRegs(op, rs1),
		checkSigned(op, "immediate", int64(imm), 12)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | I{Rd: rd.Index(), Rs1: rs1.Index(), Imm: imm}.Encode(), nil
}

func (a Assembler) encFloatStore(op Op, rs1 Reg, rs2 FReg, imm int32) (uint32, error) {
	if err := errors.Join(checkRegs(op, rs1), checkFRegs(op, rs2),
		checkSigned(op, "immediate", int64(imm), 12)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | S{Rs1: rs1.Index(), Rs2: rs2.Index(), Imm: imm}.Encode(), nil
}

func (a Assembler) encR4(op Op, rd, rs1, rs2, rs3 FReg, rm RoundingMode) (uint32, error) {
	if err := errors.Join(checkFRegs(op, rd, rs1, rs2, rs3), checkRM(op, rm)); err != nil {
		return 0, err
	}
	l := R4{Rd: rd.Index(), Funct3: uint32(rm), Rs1: rs1.Index(), Rs2: rs2.Index(), Rs3: rs3.Index()}
	return fixedBits[op].match | l.Encode(), nil
}

func (a Assembler) encFloatRRR(op Op, rd, rs1, rs2 FReg, rm RoundingMode) (uint32, error) {
	if err := errors.Join(checkFRegs(op, rd, rs1, rs2), checkRM(op, rm)); err != nil {
		return 0, err
	}
	w := fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index(), Rs2: rs2.Index()}.Encode()
	return placeRM(w, rm), nil
}

func (a Assembler) encFloatRR(op Op, rd, rs1 FReg, rm RoundingMode) (uint32, error) {
	if err := errors.Join(checkFRegs(op, rd, rs1), checkRM(op, rm)); err != nil {
		return 0, err
	}
	w := fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index()}.Encode()
	return placeRM(w, rm), nil
}

func (a Assembler) encFloatCompare(op Op, rd Reg, rs1, rs2 FReg) (uint32, error) {
	if err := errors.Join(checkRegs(op, rd), checkFRegs(op, rs1, rs2)); err != nil {
		return 0, err
	}
	return fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index(), Rs2: rs2.Index()}.Encode(), nil
}

func (a Assembler) encFloatToInt(op Op, rd Reg, rs1 FReg, rm RoundingMode) (uint32, error) {
	if err := errors.Join(checkRegs(op, rd), checkFRegs(op, rs1), checkRM(op, rm)); err != nil {
		return 0, err
	}
	w := fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index()}.Encode()
	return placeRM(w, rm), nil
}

func (a Assembler) encIntToFloat(op Op, rd FReg, rs1 Reg, rm RoundingMode) (uint32, error) {
	if err := errors.Join(checkFRegs(op, rd), checkRegs(op, rs1), checkRM(op, rm)); err != nil {
		return 0, err
	}
	w := fixedBits[op].match | R{Rd: rd.Index(), Rs1: rs1.Index()}.Encode()
	return placeRM(w, rm), nil
}
