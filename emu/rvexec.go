package emu

import (
	"errors"
	"fmt"
	"math"

	"github.com/sarchlab/diss/insts/riscv"
)

// ErrIllegalCSR marks an access to a CSR that does not exist or a write to
// a read-only counter.
var ErrIllegalCSR = errors.New("illegal csr access")

// CSR addresses.
const (
	CSRFflags  uint16 = 0x001
	CSRFrm     uint16 = 0x002
	CSRFcsr    uint16 = 0x003
	CSRCycle   uint16 = 0xc00
	CSRTime    uint16 = 0xc01
	CSRInstret uint16 = 0xc02
)

// rvExec executes RV64GC instructions as a riscv.Visitor[Effect]. PC holds
// the address of the instruction being executed.
type rvExec struct {
	regs *RVRegFile
	m    *machine
}

var _ riscv.Visitor[Effect] = (*rvExec)(nil)

func (x *rvExec) r(reg riscv.Reg) uint64 {
	return x.regs.ReadReg(reg)
}

func (x *rvExec) set(rd riscv.Reg, v uint64) (Effect, error) {
	x.regs.WriteReg(rd, v)
	return Effect{}, nil
}

func (x *rvExec) setW(rd riscv.Reg, v uint64) (Effect, error) {
	return x.set(rd, sext32(v))
}

func sext32(v uint64) uint64 {
	return uint64(int64(int32(uint32(v))))
}

func (x *rvExec) addr(rs1 riscv.Reg, imm int64) uint64 {
	return x.r(rs1) + uint64(imm)
}

// link writes the return address and jumps to target. The target is read
// before rd is written.
func (x *rvExec) link(rd riscv.Reg, size uint64, target uint64) (Effect, error) {
	x.regs.WriteReg(rd, x.regs.PC+size)
	return jump(target)
}

func (x *rvExec) branchIf(taken bool, offset int64) (Effect, error) {
	if taken {
		return jump(relative(x.regs.PC, offset))
	}
	return Effect{}, nil
}

// Base integer instructions.

func (x *rvExec) Lui(rd riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(int64(imm)))
}

func (x *rvExec) Auipc(rd riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, relative(x.regs.PC, int64(imm)))
}

func (x *rvExec) Jal(rd riscv.Reg, offset int32) (Effect, error) {
	return x.link(rd, 4, relative(x.regs.PC, int64(offset)))
}

func (x *rvExec) Jalr(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.link(rd, 4, x.addr(rs1, int64(imm))&^1)
}

func (x *rvExec) Beq(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(x.r(rs1) == x.r(rs2), int64(offset))
}

func (x *rvExec) Bne(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(x.r(rs1) != x.r(rs2), int64(offset))
}

func (x *rvExec) Blt(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(int64(x.r(rs1)) < int64(x.r(rs2)), int64(offset))
}

func (x *rvExec) Bge(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(int64(x.r(rs1)) >= int64(x.r(rs2)), int64(offset))
}

func (x *rvExec) Bltu(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(x.r(rs1) < x.r(rs2), int64(offset))
}

func (x *rvExec) Bgeu(rs1, rs2 riscv.Reg, offset int32) (Effect, error) {
	return x.branchIf(x.r(rs1) >= x.r(rs2), int64(offset))
}

// Loads and stores.

func (x *rvExec) Lb(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(int64(int8(x.m.memory.Read8(x.addr(rs1, int64(imm)))))))
}

func (x *rvExec) Lh(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(int64(int16(x.m.memory.Read16(x.addr(rs1, int64(imm)))))))
}

func (x *rvExec) Lw(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.setW(rd, uint64(x.m.memory.Read32(x.addr(rs1, int64(imm)))))
}

func (x *rvExec) Ld(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, x.m.memory.Read64(x.addr(rs1, int64(imm))))
}

func (x *rvExec) Lbu(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(x.m.memory.Read8(x.addr(rs1, int64(imm)))))
}

func (x *rvExec) Lhu(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(x.m.memory.Read16(x.addr(rs1, int64(imm)))))
}

func (x *rvExec) Lwu(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, uint64(x.m.memory.Read32(x.addr(rs1, int64(imm)))))
}

func (x *rvExec) Sb(rs1, rs2 riscv.Reg, imm int32) (Effect, error) {
	x.m.memory.Write8(x.addr(rs1, int64(imm)), uint8(x.r(rs2)))
	return Effect{}, nil
}

func (x *rvExec) Sh(rs1, rs2 riscv.Reg, imm int32) (Effect, error) {
	x.m.memory.Write16(x.addr(rs1, int64(imm)), uint16(x.r(rs2)))
	return Effect{}, nil
}

func (x *rvExec) Sw(rs1, rs2 riscv.Reg, imm int32) (Effect, error) {
	x.m.memory.Write32(x.addr(rs1, int64(imm)), uint32(x.r(rs2)))
	return Effect{}, nil
}

func (x *rvExec) Sd(rs1, rs2 riscv.Reg, imm int32) (Effect, error) {
	x.m.memory.Write64(x.addr(rs1, int64(imm)), x.r(rs2))
	return Effect{}, nil
}

// Register-immediate and register-register arithmetic.

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (x *rvExec) Addi(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, x.addr(rs1, int64(imm)))
}

func (x *rvExec) Slti(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, flag(int64(x.r(rs1)) < int64(imm)))
}

func (x *rvExec) Sltiu(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, flag(x.r(rs1) < uint64(int64(imm))))
}

func (x *rvExec) Xori(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, x.r(rs1)^uint64(int64(imm)))
}

func (x *rvExec) Ori(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, x.r(rs1)|uint64(int64(imm)))
}

func (x *rvExec) Andi(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.set(rd, x.r(rs1)&uint64(int64(imm)))
}

func (x *rvExec) Slli(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.set(rd, x.r(rs1)<<(shamt&63))
}

func (x *rvExec) Srli(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.set(rd, x.r(rs1)>>(shamt&63))
}

func (x *rvExec) Srai(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.set(rd, uint64(int64(x.r(rs1))>>(shamt&63)))
}

func (x *rvExec) Add(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)+x.r(rs2))
}

func (x *rvExec) Sub(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)-x.r(rs2))
}

func (x *rvExec) Sll(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)<<(x.r(rs2)&63))
}

func (x *rvExec) Slt(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, flag(int64(x.r(rs1)) < int64(x.r(rs2))))
}

func (x *rvExec) Sltu(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, flag(x.r(rs1) < x.r(rs2)))
}

func (x *rvExec) Xor(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)^x.r(rs2))
}

func (x *rvExec) Srl(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)>>(x.r(rs2)&63))
}

func (x *rvExec) Sra(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, uint64(int64(x.r(rs1))>>(x.r(rs2)&63)))
}

func (x *rvExec) Or(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)|x.r(rs2))
}

func (x *rvExec) And(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)&x.r(rs2))
}

// Fences are no-ops.

func (x *rvExec) Fence(_, _, _ uint8) (Effect, error) { return Effect{}, nil }
func (x *rvExec) FenceI() (Effect, error)             { return Effect{}, nil }

// Ecall issues a Linux system call: the number is in a7, arguments in a0-a5
// and the result returns in a0.
func (x *rvExec) Ecall() (Effect, error) {
	call := Syscall{Num: x.r(riscv.A7)}
	copy(call.Args[:], x.regs.X[riscv.A0:riscv.A0+6])

	result := x.m.syscalls.Handle(call)
	if result.Exited {
		return Effect{Exited: true, ExitCode: result.ExitCode}, nil
	}
	x.regs.WriteReg(riscv.A0, result.Ret)
	return Effect{}, nil
}

func (x *rvExec) Ebreak() (Effect, error) {
	return Effect{}, &BreakpointError{PC: x.regs.PC}
}

// RV64I word operations.

func (x *rvExec) Addiw(rd, rs1 riscv.Reg, imm int32) (Effect, error) {
	return x.setW(rd, x.addr(rs1, int64(imm)))
}

func (x *rvExec) Slliw(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.setW(rd, uint64(uint32(x.r(rs1))<<(shamt&31)))
}

func (x *rvExec) Srliw(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.setW(rd, uint64(uint32(x.r(rs1))>>(shamt&31)))
}

func (x *rvExec) Sraiw(rd, rs1 riscv.Reg, shamt uint8) (Effect, error) {
	return x.setW(rd, uint64(int32(uint32(x.r(rs1)))>>(shamt&31)))
}

func (x *rvExec) Addw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, x.r(rs1)+x.r(rs2))
}

func (x *rvExec) Subw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, x.r(rs1)-x.r(rs2))
}

func (x *rvExec) Sllw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, uint64(uint32(x.r(rs1))<<(x.r(rs2)&31)))
}

func (x *rvExec) Srlw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, uint64(uint32(x.r(rs1))>>(x.r(rs2)&31)))
}

func (x *rvExec) Sraw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, uint64(int32(uint32(x.r(rs1)))>>(x.r(rs2)&31)))
}

// Control and status registers.

func (x *rvExec) readCSR(csr uint16) (uint64, error) {
	switch csr {
	case CSRFflags:
		return uint64(x.regs.Flags()), nil
	case CSRFrm:
		return uint64(x.regs.RoundingMode()), nil
	case CSRFcsr:
		return uint64(x.regs.FCSR & 0xff), nil
	case CSRCycle, CSRTime, CSRInstret:
		return x.m.instructionCount, nil
	default:
		return 0, fmt.Errorf("csr %#x: %w", csr, ErrIllegalCSR)
	}
}

func (x *rvExec) writeCSR(csr uint16, v uint64) error {
	switch csr {
	case CSRFflags:
		x.regs.FCSR = x.regs.FCSR&^0x1f | uint32(v)&0x1f
	case CSRFrm:
		x.regs.FCSR = x.regs.FCSR&^0xe0 | uint32(v)&0x7<<5
	case CSRFcsr:
		x.regs.FCSR = uint32(v) & 0xff
	default:
		return fmt.Errorf("write csr %#x: %w", csr, ErrIllegalCSR)
	}
	return nil
}

// csrOp reads the CSR, then writes update(old) when write is set.
func (x *rvExec) csrOp(rd riscv.Reg, csr uint16, write bool, update func(old uint64) uint64) (Effect, error) {
	old, err := x.readCSR(csr)
	if err != nil {
		return Effect{}, err
	}
	if write {
		if err := x.writeCSR(csr, update(old)); err != nil {
			return Effect{}, err
		}
	}
	return x.set(rd, old)
}

func (x *rvExec) Csrrw(rd, rs1 riscv.Reg, csr uint16) (Effect, error) {
	v := x.r(rs1)
	return x.csrOp(rd, csr, true, func(uint64) uint64 { return v })
}

func (x *rvExec) Csrrs(rd, rs1 riscv.Reg, csr uint16) (Effect, error) {
	v := x.r(rs1)
	return x.csrOp(rd, csr, rs1 != riscv.Zero, func(old uint64) uint64 { return old | v })
}

func (x *rvExec) Csrrc(rd, rs1 riscv.Reg, csr uint16) (Effect, error) {
	v := x.r(rs1)
	return x.csrOp(rd, csr, rs1 != riscv.Zero, func(old uint64) uint64 { return old &^ v })
}

func (x *rvExec) Csrrwi(rd riscv.Reg, uimm uint8, csr uint16) (Effect, error) {
	return x.csrOp(rd, csr, true, func(uint64) uint64 { return uint64(uimm) })
}

func (x *rvExec) Csrrsi(rd riscv.Reg, uimm uint8, csr uint16) (Effect, error) {
	return x.csrOp(rd, csr, uimm != 0, func(old uint64) uint64 { return old | uint64(uimm) })
}

func (x *rvExec) Csrrci(rd riscv.Reg, uimm uint8, csr uint16) (Effect, error) {
	return x.csrOp(rd, csr, uimm != 0, func(old uint64) uint64 { return old &^ uint64(uimm) })
}

// Multiply and divide. Division by zero and signed overflow do not trap:
// the quotient is all ones or the dividend, the remainder the dividend or
// zero.

func (x *rvExec) Mul(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs1)*x.r(rs2))
}

func (x *rvExec) Mulh(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, MulHigh(x.r(rs1), x.r(rs2), true))
}

func (x *rvExec) Mulhsu(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, MulHighSignedUnsigned(x.r(rs1), x.r(rs2)))
}

func (x *rvExec) Mulhu(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, MulHigh(x.r(rs1), x.r(rs2), false))
}

func divSigned(n, d int64) int64 {
	switch {
	case d == 0:
		return -1
	case n == math.MinInt64 && d == -1:
		return n
	}
	return n / d
}

func remSigned(n, d int64) int64 {
	switch {
	case d == 0:
		return n
	case n == math.MinInt64 && d == -1:
		return 0
	}
	return n % d
}

func divUnsigned(n, d uint64) uint64 {
	if d == 0 {
		return math.MaxUint64
	}
	return n / d
}

func remUnsigned(n, d uint64) uint64 {
	if d == 0 {
		return n
	}
	return n % d
}

func (x *rvExec) Div(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, uint64(divSigned(int64(x.r(rs1)), int64(x.r(rs2)))))
}

func (x *rvExec) Divu(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, divUnsigned(x.r(rs1), x.r(rs2)))
}

func (x *rvExec) Rem(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, uint64(remSigned(int64(x.r(rs1)), int64(x.r(rs2)))))
}

func (x *rvExec) Remu(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, remUnsigned(x.r(rs1), x.r(rs2)))
}

func (x *rvExec) Mulw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	return x.setW(rd, x.r(rs1)*x.r(rs2))
}

// Word division works on sign-extended 32-bit operands, so the 64-bit
// helpers give the 32-bit answers once truncated.

func (x *rvExec) Divw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	n, d := int64(int32(x.r(rs1))), int64(int32(x.r(rs2)))
	return x.setW(rd, uint64(divSigned(n, d)))
}

func (x *rvExec) Divuw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	n, d := uint64(uint32(x.r(rs1))), uint64(uint32(x.r(rs2)))
	return x.setW(rd, divUnsigned(n, d))
}

func (x *rvExec) Remw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	n, d := int64(int32(x.r(rs1))), int64(int32(x.r(rs2)))
	return x.setW(rd, uint64(remSigned(n, d)))
}

func (x *rvExec) Remuw(rd, rs1, rs2 riscv.Reg) (Effect, error) {
	n, d := uint64(uint32(x.r(rs1))), uint64(uint32(x.r(rs2)))
	return x.setW(rd, remUnsigned(n, d))
}

// Compressed instructions. Immediates arrive scaled and sign-extended.

func (x *rvExec) CAddi4spn(rd riscv.Reg, uimm uint16) (Effect, error) {
	return x.set(rd, x.r(riscv.SP)+uint64(uimm))
}

func (x *rvExec) CFld(rd riscv.FReg, rs1 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Fld(rd, rs1, int32(uimm))
}

func (x *rvExec) CLw(rd, rs1 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Lw(rd, rs1, int32(uimm))
}

func (x *rvExec) CLd(rd, rs1 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Ld(rd, rs1, int32(uimm))
}

func (x *rvExec) CFsd(rs1 riscv.Reg, rs2 riscv.FReg, uimm uint16) (Effect, error) {
	return x.Fsd(rs1, rs2, int32(uimm))
}

func (x *rvExec) CSw(rs1, rs2 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Sw(rs1, rs2, int32(uimm))
}

func (x *rvExec) CSd(rs1, rs2 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Sd(rs1, rs2, int32(uimm))
}

func (x *rvExec) CNop() (Effect, error) { return Effect{}, nil }

func (x *rvExec) CAddi(rd riscv.Reg, imm int8) (Effect, error) {
	return x.Addi(rd, rd, int32(imm))
}

func (x *rvExec) CAddiw(rd riscv.Reg, imm int8) (Effect, error) {
	return x.Addiw(rd, rd, int32(imm))
}

func (x *rvExec) CLi(rd riscv.Reg, imm int8) (Effect, error) {
	return x.set(rd, uint64(int64(imm)))
}

func (x *rvExec) CAddi16sp(imm int16) (Effect, error) {
	return x.Addi(riscv.SP, riscv.SP, int32(imm))
}

func (x *rvExec) CLui(rd riscv.Reg, imm int32) (Effect, error) {
	return x.Lui(rd, imm)
}

func (x *rvExec) CSrli(rd riscv.Reg, shamt uint8) (Effect, error) {
	return x.Srli(rd, rd, shamt)
}

func (x *rvExec) CSrai(rd riscv.Reg, shamt uint8) (Effect, error) {
	return x.Srai(rd, rd, shamt)
}

func (x *rvExec) CAndi(rd riscv.Reg, imm int8) (Effect, error) {
	return x.Andi(rd, rd, int32(imm))
}

func (x *rvExec) CSub(rd, rs2 riscv.Reg) (Effect, error)  { return x.Sub(rd, rd, rs2) }
func (x *rvExec) CXor(rd, rs2 riscv.Reg) (Effect, error)  { return x.Xor(rd, rd, rs2) }
func (x *rvExec) COr(rd, rs2 riscv.Reg) (Effect, error)   { return x.Or(rd, rd, rs2) }
func (x *rvExec) CAnd(rd, rs2 riscv.Reg) (Effect, error)  { return x.And(rd, rd, rs2) }
func (x *rvExec) CSubw(rd, rs2 riscv.Reg) (Effect, error) { return x.Subw(rd, rd, rs2) }
func (x *rvExec) CAddw(rd, rs2 riscv.Reg) (Effect, error) { return x.Addw(rd, rd, rs2) }

func (x *rvExec) CJ(offset int16) (Effect, error) {
	return jump(relative(x.regs.PC, int64(offset)))
}

func (x *rvExec) CBeqz(rs1 riscv.Reg, offset int16) (Effect, error) {
	return x.branchIf(x.r(rs1) == 0, int64(offset))
}

func (x *rvExec) CBnez(rs1 riscv.Reg, offset int16) (Effect, error) {
	return x.branchIf(x.r(rs1) != 0, int64(offset))
}

func (x *rvExec) CSlli(rd riscv.Reg, shamt uint8) (Effect, error) {
	return x.Slli(rd, rd, shamt)
}

func (x *rvExec) CFldsp(rd riscv.FReg, uimm uint16) (Effect, error) {
	return x.Fld(rd, riscv.SP, int32(uimm))
}

func (x *rvExec) CLwsp(rd riscv.Reg, uimm uint16) (Effect, error) {
	return x.Lw(rd, riscv.SP, int32(uimm))
}

func (x *rvExec) CLdsp(rd riscv.Reg, uimm uint16) (Effect, error) {
	return x.Ld(rd, riscv.SP, int32(uimm))
}

func (x *rvExec) CJr(rs1 riscv.Reg) (Effect, error) {
	return jump(x.r(rs1) &^ 1)
}

func (x *rvExec) CMv(rd, rs2 riscv.Reg) (Effect, error) {
	return x.set(rd, x.r(rs2))
}

func (x *rvExec) CEbreak() (Effect, error) {
	return x.Ebreak()
}

func (x *rvExec) CJalr(rs1 riscv.Reg) (Effect, error) {
	return x.link(riscv.RA, 2, x.r(rs1)&^1)
}

func (x *rvExec) CAdd(rd, rs2 riscv.Reg) (Effect, error) {
	return x.Add(rd, rd, rs2)
}

func (x *rvExec) CFsdsp(rs2 riscv.FReg, uimm uint16) (Effect, error) {
	return x.Fsd(riscv.SP, rs2, int32(uimm))
}

func (x *rvExec) CSwsp(rs2 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Sw(riscv.SP, rs2, int32(uimm))
}

func (x *rvExec) CSdsp(rs2 riscv.Reg, uimm uint16) (Effect, error) {
	return x.Sd(riscv.SP, rs2, int32(uimm))
}
