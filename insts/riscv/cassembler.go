package riscv

import (
	"errors"

	"github.com/sarchlab/diss/bits"
)

// Compressed encoders. Each rejects the operand combinations the decoder
// treats as reserved or as hints, so every word they produce decodes back to
// the same instruction.

func prime(op Op, r Reg) (uint16, error) {
	k, ok := r.Prime()
	if !ok {
		return 0, operandError(op, "register %s is not one of x8..x15", r)
	}
	return uint16(k), nil
}

func fprime(op Op, r FReg) (uint16, error) {
	k, ok := r.Prime()
	if !ok {
		return 0, operandError(op, "register %s is not one of f8..f15", r)
	}
	return uint16(k), nil
}

// scaled checks an unsigned offset is a multiple of align below limit.
func scaled(op Op, v uint16, align, limit uint16) error {
	if v%align != 0 || v >= limit {
		return operandError(op, "offset %d must be a multiple of %d below %d", v, align, limit)
	}
	return nil
}

func nonZero(op Op, r Reg, what string) error {
	if r == X0 || !r.Valid() {
		return operandError(op, "%s must be x1..x31, got %s", what, r)
	}
	return nil
}

func cword(w uint16) (uint32, error) {
	return uint32(w), nil
}

func (a Assembler) CAddi4spn(rd Reg, uimm uint16) (uint32, error) {
	p, err := prime(OpCADDI4SPN, rd)
	if err != nil {
		return 0, err
	}
	if uimm == 0 {
		return 0, operandError(OpCADDI4SPN, "zero immediate")
	}
	if err := scaled(OpCADDI4SPN, uimm, 4, 1024); err != nil {
		return 0, err
	}
	return cword(spread(uint32(uimm), addi4spnImm) | p<<2)
}

func (a Assembler) cmem(op Op, funct3 uint16, rd, rs1 uint16, uimm uint16) (uint32, error) {
	offs, align, limit := dwordOffImm, uint16(8), uint16(256)
	if op == OpCLW || op == OpCSW {
		offs, align, limit = wordOffImm, 4, 128
	}
	if err := scaled(op, uimm, align, limit); err != nil {
		return 0, err
	}
	return cword(funct3<<13 | spread(uint32(uimm), offs) | rs1<<7 | rd<<2)
}

func (a Assembler) CFld(rd FReg, rs1 Reg, uimm uint16) (uint32, error) {
	d, err := fprime(OpCFLD, rd)
	if err != nil {
		return 0, err
	}
	s, err := prime(OpCFLD, rs1)
	if err != nil {
		return 0, err
	}
	return a.cmem(OpCFLD, 1, d, s, uimm)
}

func (a Assembler) cintMem(op Op, funct3 uint16, r, rs1 Reg, uimm uint16) (uint32, error) {
	d, err := prime(op, r)
	if err != nil {
		return 0, err
	}
	s, err := prime(op, rs1)
	if err != nil {
		return 0, err
	}
	return a.cmem(op, funct3, d, s, uimm)
}

func (a Assembler) CLw(rd, rs1 Reg, uimm uint16) (uint32, error) {
	return a.cintMem(OpCLW, 2, rd, rs1, uimm)
}

func (a Assembler) CLd(rd, rs1 Reg, uimm uint16) (uint32, error) {
	return a.cintMem(OpCLD, 3, rd, rs1, uimm)
}

func (a Assembler) CFsd(rs1 Reg, rs2 FReg, uimm uint16) (uint32, error) {
	d, err := fprime(OpCFSD, rs2)
	if err != nil {
		return 0, err
	}
	s, err := prime(OpCFSD, rs1)
	if err != nil {
		return 0, err
	}
	return a.cmem(OpCFSD, 5, d, s, uimm)
}

func (a Assembler) CSw(rs1, rs2 Reg, uimm uint16) (uint32, error) {
	return a.cintMem(OpCSW, 6, rs2, rs1, uimm)
}

func (a Assembler) CSd(rs1, rs2 Reg, uimm uint16) (uint32, error) {
	return a.cintMem(OpCSD, 7, rs2, rs1, uimm)
}

func (a Assembler) CNop() (uint32, error) {
	return cword(0x0001)
}

// ci packs a quadrant 1 CI word with a signed 6-bit immediate.
func (a Assembler) ci(op Op, funct3 uint16, rd Reg, imm int8) (uint32, error) {
	if err := checkSigned(op, "immediate", int64(imm), 6); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(imm)), 6))
	return cword(funct3<<13 | uint16(rd)<<7 | spread(v, ciImm) | 0b01)
}

func (a Assembler) CAddi(rd Reg, imm int8) (uint32, error) {
	if err := nonZero(OpCADDI, rd, "rd"); err != nil {
		return 0, err
	}
	if imm == 0 {
		return 0, operandError(OpCADDI, "zero immediate")
	}
	return a.ci(OpCADDI, 0, rd, imm)
}

func (a Assembler) CAddiw(rd Reg, imm int8) (uint32, error) {
	if err := nonZero(OpCADDIW, rd, "rd"); err != nil {
		return 0, err
	}
	return a.ci(OpCADDIW, 1, rd, imm)
}

func (a Assembler) CLi(rd Reg, imm int8) (uint32, error) {
	if err := nonZero(OpCLI, rd, "rd"); err != nil {
		return 0, err
	}
	return a.ci(OpCLI, 2, rd, imm)
}

func (a Assembler) CAddi16sp(imm int16) (uint32, error) {
	if imm == 0 || imm%16 != 0 {
		return 0, operandError(OpCADDI16SP, "immediate %d must be a non-zero multiple of 16", imm)
	}
	if err := checkSigned(OpCADDI16SP, "immediate", int64(imm), 10); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(imm)), 10))
	return cword(3<<13 | uint16(SP)<<7 | spread(v, addi16spImm) | 0b01)
}

func (a Assembler) CLui(rd Reg, imm int32) (uint32, error) {
	if err := nonZero(OpCLUI, rd, "rd"); err != nil {
		return 0, err
	}
	if rd == SP {
		return 0, operandError(OpCLUI, "rd must not be sp")
	}
	if imm == 0 || imm&0xfff != 0 {
		return 0, operandError(OpCLUI, "immediate %#x must be a non-zero multiple of 4096", imm)
	}
	if err := checkSigned(OpCLUI, "immediate", int64(imm), 18); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(imm)), 18))
	return cword(3<<13 | uint16(rd)<<7 | spread(v, luiImm) | 0b01)
}

func (a Assembler) cshift(op Op, funct uint16, rd Reg, shamt uint8) (uint32, error) {
	p, err := prime(op, rd)
	if err != nil {
		return 0, err
	}
	if shamt == 0 || shamt > 63 {
		return 0, operandError(op, "shift amount %d", shamt)
	}
	return cword(4<<13 | spread(uint32(shamt), ciImm) | funct<<10 | p<<7 | 0b01)
}

func (a Assembler) CSrli(rd Reg, shamt uint8) (uint32, error) {
	return a.cshift(OpCSRLI, 0, rd, shamt)
}

func (a Assembler) CSrai(rd Reg, shamt uint8) (uint32, error) {
	return a.cshift(OpCSRAI, 1, rd, shamt)
}

func (a Assembler) CAndi(rd Reg, imm int8) (uint32, error) {
	p, err := prime(OpCANDI, rd)
	if err != nil {
		return 0, err
	}
	if err := checkSigned(OpCANDI, "immediate", int64(imm), 6); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(imm)), 6))
	return cword(4<<13 | spread(v, ciImm) | 2<<10 | p<<7 | 0b01)
}

// carith packs a CA word. word selects the SUBW/ADDW half.
func (a Assembler) carith(op Op, word bool, funct2 uint16, rd, rs2 Reg) (uint32, error) {
	d, err := prime(op, rd)
	if err != nil {
		return 0, err
	}
	s, err := prime(op, rs2)
	if err != nil {
		return 0, err
	}
	l := CA{Op: 0b01, Rs2P: s, Funct2: funct2, RdP: d, Funct6: 0b100011}
	if word {
		l.Funct6 = 0b100111
	}
	return cword(l.Encode())
}

func (a Assembler) CSub(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCSUB, false, 0, rd, rs2)
}

func (a Assembler) CXor(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCXOR, false, 1, rd, rs2)
}

func (a Assembler) COr(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCOR, false, 2, rd, rs2)
}

func (a Assembler) CAnd(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCAND, false, 3, rd, rs2)
}

func (a Assembler) CSubw(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCSUBW, true, 0, rd, rs2)
}

func (a Assembler) CAddw(rd, rs2 Reg) (uint32, error) {
	return a.carith(OpCADDW, true, 1, rd, rs2)
}

func (a Assembler) CJ(offset int16) (uint32, error) {
	if err := checkEven(OpCJ, int64(offset)); err != nil {
		return 0, err
	}
	if err := checkSigned(OpCJ, "offset", int64(offset), 12); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(offset)), 12))
	return cword(5<<13 | spread(v, cjImm) | 0b01)
}

func (a Assembler) cbranch(op Op, funct3 uint16, rs1 Reg, offset int16) (uint32, error) {
	p, err := prime(op, rs1)
	if err != nil {
		return 0, err
	}
	if err := checkEven(op, int64(offset)); err != nil {
		return 0, err
	}
	if err := checkSigned(op, "offset", int64(offset), 9); err != nil {
		return 0, err
	}
	v := uint32(bits.ZeroExtend(uint64(int64(offset)), 9))
	return cword(funct3<<13 | spread(v, cbImm) | p<<7 | 0b01)
}

func (a Assembler) CBeqz(rs1 Reg, offset int16) (uint32, error) {
	return a.cbranch(OpCBEQZ, 6, rs1, offset)
}

func (a Assembler) CBnez(rs1 Reg, offset int16) (uint32, error) {
	return a.cbranch(OpCBNEZ, 7, rs1, offset)
}

func (a Assembler) CSlli(rd Reg, shamt uint8) (uint32, error) {
	if err := nonZero(OpCSLLI, rd, "rd"); err != nil {
		return 0, err
	}
	if shamt == 0 || shamt > 63 {
		return 0, operandError(OpCSLLI, "shift amount %d", shamt)
	}
	return cword(uint16(rd)<<7 | spread(uint32(shamt), ciImm) | 0b10)
}

// cstack packs a quadrant 2 stack-pointer load or store.
func (a Assembler) cstack(op Op, funct3, reg, uimm uint16) (uint32, error) {
	var offs []scatter
	var align, limit uint16
	switch op {
	case OpCLWSP:
		offs, align, limit = lwspImm, 4, 256
	case OpCSWSP:
		offs, align, limit = swspImm, 4, 256
	case OpCFSDSP, OpCSDSP:
		offs, align, limit = sdspImm, 8, 512
	default:
		offs, align, limit = ldspImm, 8, 512
	}
	if err := scaled(op, uimm, align, limit); err != nil {
		return 0, err
	}
	field := uint16(7)
	if funct3 >= 5 {
		field = 2
	}
	return cword(funct3<<13 | spread(uint32(uimm), offs) | reg<<field | 0b10)
}

func (a Assembler) CFldsp(rd FReg, uimm uint16) (uint32, error) {
	if err := checkFRegs(OpCFLDSP, rd); err != nil {
		return 0, err
	}
	return a.cstack(OpCFLDSP, 1, uint16(rd), uimm)
}

func (a Assembler) CLwsp(rd Reg, uimm uint16) (uint32, error) {
	if err := nonZero(OpCLWSP, rd, "rd"); err != nil {
		return 0, err
	}
	return a.cstack(OpCLWSP, 2, uint16(rd), uimm)
}

func (a Assembler) CLdsp(rd Reg, uimm uint16) (uint32, error) {
	if err := nonZero(OpCLDSP, rd, "rd"); err != nil {
		return 0, err
	}
	return a.cstack(OpCLDSP, 3, uint16(rd), uimm)
}

func (a Assembler) CJr(rs1 Reg) (uint32, error) {
	if err := nonZero(OpCJR, rs1, "rs1"); err != nil {
		return 0, err
	}
	return cword(CR{Op: 0b10, Rd: uint16(rs1), Funct4: 0b1000}.Encode())
}

func (a Assembler) CMv(rd, rs2 Reg) (uint32, error) {
	if err := errors.Join(nonZero(OpCMV, rd, "rd"), nonZero(OpCMV, rs2, "rs2")); err != nil {
		return 0, err
	}
	return cword(CR{Op: 0b10, Rs2: uint16(rs2), Rd: uint16(rd), Funct4: 0b1000}.Encode())
}

func (a Assembler) CEbreak() (uint32, error) {
	return cword(0x9002)
}

func (a Assembler) CJalr(rs1 Reg) (uint32, error) {
	if err := nonZero(OpCJALR, rs1, "rs1"); err != nil {
		return 0, err
	}
	return cword(CR{Op: 0b10, Rd: uint16(rs1), Funct4: 0b1001}.Encode())
}

func (a Assembler) CAdd(rd, rs2 Reg) (uint32, error) {
	if err := errors.Join(nonZero(OpCADD, rd, "rd"), nonZero(OpCADD, rs2, "rs2")); err != nil {
		return 0, err
	}
	return cword(CR{Op: 0b10, Rs2: uint16(rs2), Rd: uint16(rd), Funct4: 0b1001}.Encode())
}

func (a Assembler) CFsdsp(rs2 FReg, uimm uint16) (uint32, error) {
	if err := checkFRegs(OpCFSDSP, rs2); err != nil {
		return 0, err
	}
	return a.cstack(OpCFSDSP, 5, uint16(rs2), uimm)
}

func (a Assembler) CSwsp(rs2 Reg, uimm uint16) (uint32, error) {
	if err := checkRegs(OpCSWSP, rs2); err != nil {
		return 0, err
	}
	return a.cstack(OpCSWSP, 6, uint16(rs2), uimm)
}

func (a Assembler) CSdsp(rs2 Reg, uimm uint16) (uint32, error) {
	if err := checkRegs(OpCSDSP, rs2); err != nil {
		return 0, err
	}
	return a.cstack(OpCSDSP, 7, uint16(rs2), uimm)
}
