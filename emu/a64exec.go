package emu

import (
	"errors"
	"fmt"
	"hash/crc32"
	"math/bits"

	"github.com/sarchlab/diss/insts/a64"
)

// ErrUnsupported marks a decoded instruction the interpreters do not
// execute, such as privileged or pointer-authentication operations.
var ErrUnsupported = errors.New("unsupported instruction")

func unsupported(name string) (Effect, error) {
	return Effect{}, fmt.Errorf("%s: %w", name, ErrUnsupported)
}

// a64Exec executes A64 instructions as an a64.Visitor[Effect]. PC holds
// the address of the instruction being executed.
type a64Exec struct {
	regs *RegFile
	alu  *ALU
	m    *machine
}

var _ a64.Visitor[Effect] = (*a64Exec)(nil)

func (x *a64Exec) set(sz a64.Size, rd a64.Reg, v uint64) (Effect, error) {
	x.alu.Write(sz, rd, v)
	return Effect{}, nil
}

// PC-relative addressing.

func (x *a64Exec) Adr(rd a64.Reg, offset int64) (Effect, error) {
	return x.set(a64.X, rd, relative(x.regs.PC, offset))
}

func (x *a64Exec) Adrp(rd a64.Reg, offset int64) (Effect, error) {
	return x.set(a64.X, rd, relative(x.regs.PC&^0xfff, offset))
}

// Add/subtract immediate.

func (x *a64Exec) addSubImm(sz a64.Size, rd, rn a64.Reg, imm uint16, shift uint8, sub, flags bool) (Effect, error) {
	op1 := x.alu.Read(sz, rn)
	op2 := uint64(imm) << shift
	if sub {
		return x.set(sz, rd, x.alu.Sub(sz, op1, op2, flags))
	}
	return x.set(sz, rd, x.alu.AddWithCarry(sz, op1, op2, false, flags))
}

func (x *a64Exec) AddImm(sz a64.Size, rd, rn a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.addSubImm(sz, rd, rn, imm, shift, false, false)
}

func (x *a64Exec) AddsImm(sz a64.Size, rd, rn a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.addSubImm(sz, rd, rn, imm, shift, false, true)
}

func (x *a64Exec) SubImm(sz a64.Size, rd, rn a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.addSubImm(sz, rd, rn, imm, shift, true, false)
}

func (x *a64Exec) SubsImm(sz a64.Size, rd, rn a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.addSubImm(sz, rd, rn, imm, shift, true, true)
}

// Memory tags are not modelled: the tag operand of ADDG/SUBG is dropped and
// IRG always yields tag zero.

const tagMask = uint64(0xf) << 56

func (x *a64Exec) Addg(rd, rn a64.Reg, offset uint16, _ uint8) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(rn)+uint64(offset))
}

func (x *a64Exec) Subg(rd, rn a64.Reg, offset uint16, _ uint8) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(rn)-uint64(offset))
}

func (x *a64Exec) Irg(rd, rn, _ a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(rn)&^tagMask)
}

func (x *a64Exec) Gmi(rd, rn, rm a64.Reg) (Effect, error) {
	tag := x.regs.ReadReg(rn) >> 56 & 0xf
	return x.set(a64.X, rd, x.regs.ReadReg(rm)|1<<tag)
}

// untagged sign-extends the low 56 bits of an address.
func untagged(v uint64) uint64 {
	return uint64(int64(v<<8) >> 8)
}

func (x *a64Exec) Subp(rd, rn, rm a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, untagged(x.regs.ReadReg(rn))-untagged(x.regs.ReadReg(rm)))
}

func (x *a64Exec) Subps(rd, rn, rm a64.Reg) (Effect, error) {
	diff := x.alu.Sub(a64.X, untagged(x.regs.ReadReg(rn)), untagged(x.regs.ReadReg(rm)), true)
	return x.set(a64.X, rd, diff)
}

// Logical immediate.

func (x *a64Exec) AndImm(sz a64.Size, rd, rn a64.Reg, imm uint64) (Effect, error) {
	return x.set(sz, rd, x.alu.Read(sz, rn)&imm)
}

func (x *a64Exec) OrrImm(sz a64.Size, rd, rn a64.Reg, imm uint64) (Effect, error) {
	return x.set(sz, rd, x.alu.Read(sz, rn)|imm)
}

func (x *a64Exec) EorImm(sz a64.Size, rd, rn a64.Reg, imm uint64) (Effect, error) {
	return x.set(sz, rd, x.alu.Read(sz, rn)^imm)
}

func (x *a64Exec) AndsImm(sz a64.Size, rd, rn a64.Reg, imm uint64) (Effect, error) {
	result := x.alu.Read(sz, rn) & imm
	x.alu.Logic(sz, result)
	return x.set(sz, rd, result)
}

// Move wide.

func (x *a64Exec) Movn(sz a64.Size, rd a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.set(sz, rd, ^(uint64(imm) << shift))
}

func (x *a64Exec) Movz(sz a64.Size, rd a64.Reg, imm uint16, shift uint8) (Effect, error) {
	return x.set(sz, rd, uint64(imm)<<shift)
}

func (x *a64Exec) Movk(sz a64.Size, rd a64.Reg, imm uint16, shift uint8) (Effect, error) {
	old := x.alu.Read(sz, rd)
	return x.set(sz, rd, old&^(0xffff<<shift)|uint64(imm)<<shift)
}

// Bitfield and extract.

func (x *a64Exec) Sbfm(sz a64.Size, rd, rn a64.Reg, immr, imms uint8) (Effect, error) {
	return x.set(sz, rd, Bitfield(sz, x.alu.Read(sz, rn), 0, immr, imms, true, false))
}

func (x *a64Exec) Bfm(sz a64.Size, rd, rn a64.Reg, immr, imms uint8) (Effect, error) {
	return x.set(sz, rd, Bitfield(sz, x.alu.Read(sz, rn), x.alu.Read(sz, rd), immr, imms, false, true))
}

func (x *a64Exec) Ubfm(sz a64.Size, rd, rn a64.Reg, immr, imms uint8) (Effect, error) {
	return x.set(sz, rd, Bitfield(sz, x.alu.Read(sz, rn), 0, immr, imms, false, false))
}

func (x *a64Exec) Extr(sz a64.Size, rd, rn, rm a64.Reg, lsb uint8) (Effect, error) {
	return x.set(sz, rd, Extract(sz, x.alu.Read(sz, rn), x.alu.Read(sz, rm), lsb))
}

// Data processing, two sources.

func (x *a64Exec) Udiv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	d := x.alu.Read(sz, rm)
	if d == 0 {
		return x.set(sz, rd, 0)
	}
	return x.set(sz, rd, x.alu.Read(sz, rn)/d)
}

// Sdiv rounds towards zero; dividing by zero yields zero and the most
// negative value divided by -1 yields itself.
func (x *a64Exec) Sdiv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	if sz == a64.W {
		n, d := int32(x.alu.Read(sz, rn)), int32(x.alu.Read(sz, rm))
		switch {
		case d == 0:
			return x.set(sz, rd, 0)
		case d == -1:
			return x.set(sz, rd, uint64(uint32(-n)))
		}
		return x.set(sz, rd, uint64(uint32(n/d)))
	}

	n, d := int64(x.regs.ReadReg(rn)), int64(x.regs.ReadReg(rm))
	switch {
	case d == 0:
		return x.set(sz, rd, 0)
	case d == -1:
		return x.set(sz, rd, uint64(-n))
	}
	return x.set(sz, rd, uint64(n/d))
}

func (x *a64Exec) shiftV(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType) (Effect, error) {
	amount := uint8(x.regs.ReadReg(rm) % uint64(sz.Bits()))
	return x.set(sz, rd, Shift(sz, x.alu.Read(sz, rn), shift, amount))
}

func (x *a64Exec) Lslv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.shiftV(sz, rd, rn, rm, a64.ShiftLSL)
}

func (x *a64Exec) Lsrv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.shiftV(sz, rd, rn, rm, a64.ShiftLSR)
}

func (x *a64Exec) Asrv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.shiftV(sz, rd, rn, rm, a64.ShiftASR)
}

func (x *a64Exec) Rorv(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.shiftV(sz, rd, rn, rm, a64.ShiftROR)
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// crc folds the low size bytes of Rm into the accumulator Wn. The A64
// instructions carry no pre- or post-inversion.
func (x *a64Exec) crc(rd, rn, rm a64.Reg, size int, table *crc32.Table) (Effect, error) {
	acc := uint32(x.regs.ReadReg(rn))
	data := x.regs.ReadReg(rm)

	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(data >> (8 * i))
	}
	return x.set(a64.W, rd, uint64(^crc32.Update(^acc, table, buf)))
}

func (x *a64Exec) Crc32b(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 1, crc32.IEEETable)
}

func (x *a64Exec) Crc32h(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 2, crc32.IEEETable)
}

func (x *a64Exec) Crc32w(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 4, crc32.IEEETable)
}

func (x *a64Exec) Crc32x(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 8, crc32.IEEETable)
}

func (x *a64Exec) Crc32cb(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 1, castagnoli)
}

func (x *a64Exec) Crc32ch(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 2, castagnoli)
}

func (x *a64Exec) Crc32cw(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 4, castagnoli)
}

func (x *a64Exec) Crc32cx(rd, rn, rm a64.Reg) (Effect, error) {
	return x.crc(rd, rn, rm, 8, castagnoli)
}

func (x *a64Exec) Pacga(_, _, _ a64.Reg) (Effect, error) { return unsupported("pacga") }

// Data processing, one source.

func (x *a64Exec) Rbit(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	return x.set(sz, rd, ReverseBits(sz, x.alu.Read(sz, rn)))
}

func (x *a64Exec) Rev16(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	return x.set(sz, rd, ReverseBytesIn(sz, x.alu.Read(sz, rn), 16))
}

func (x *a64Exec) Rev32(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	return x.set(sz, rd, ReverseBytesIn(sz, x.alu.Read(sz, rn), 32))
}

func (x *a64Exec) Rev(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	return x.set(sz, rd, ReverseBytesIn(sz, x.alu.Read(sz, rn), 64))
}

func (x *a64Exec) Clz(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	v := x.alu.Read(sz, rn)
	return x.set(sz, rd, uint64(bits.LeadingZeros64(v)-int(64-sz.Bits())))
}

func (x *a64Exec) Cls(sz a64.Size, rd, rn a64.Reg) (Effect, error) {
	return x.set(sz, rd, CountLeadingSign(sz, x.alu.Read(sz, rn)))
}

// Pointer authentication is not modelled. Codes are never inserted, so the
// strip instructions leave the register unchanged.

func (x *a64Exec) Pacia(_, _ a64.Reg) (Effect, error) { return unsupported("pacia") }
func (x *a64Exec) Pacib(_, _ a64.Reg) (Effect, error) { return unsupported("pacib") }
func (x *a64Exec) Pacda(_, _ a64.Reg) (Effect, error) { return unsupported("pacda") }
func (x *a64Exec) Pacdb(_, _ a64.Reg) (Effect, error) { return unsupported("pacdb") }
func (x *a64Exec) Autia(_, _ a64.Reg) (Effect, error) { return unsupported("autia") }
func (x *a64Exec) Autib(_, _ a64.Reg) (Effect, error) { return unsupported("autib") }
func (x *a64Exec) Autda(_, _ a64.Reg) (Effect, error) { return unsupported("autda") }
func (x *a64Exec) Autdb(_, _ a64.Reg) (Effect, error) { return unsupported("autdb") }
func (x *a64Exec) Paciza(_ a64.Reg) (Effect, error)   { return unsupported("paciza") }
func (x *a64Exec) Pacizb(_ a64.Reg) (Effect, error)   { return unsupported("pacizb") }
func (x *a64Exec) Pacdza(_ a64.Reg) (Effect, error)   { return unsupported("pacdza") }
func (x *a64Exec) Pacdzb(_ a64.Reg) (Effect, error)   { return unsupported("pacdzb") }
func (x *a64Exec) Autiza(_ a64.Reg) (Effect, error)   { return unsupported("autiza") }
func (x *a64Exec) Autizb(_ a64.Reg) (Effect, error)   { return unsupported("autizb") }
func (x *a64Exec) Autdza(_ a64.Reg) (Effect, error)   { return unsupported("autdza") }
func (x *a64Exec) Autdzb(_ a64.Reg) (Effect, error)   { return unsupported("autdzb") }
func (x *a64Exec) Xpaci(_ a64.Reg) (Effect, error)    { return Effect{}, nil }
func (x *a64Exec) Xpacd(_ a64.Reg) (Effect, error)    { return Effect{}, nil }

// Logical, shifted register.

func (x *a64Exec) logical(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8,
	op func(a, b uint64) uint64, invert, flags bool) (Effect, error) {
	op2 := Shift(sz, x.alu.Read(sz, rm), shift, amount)
	if invert {
		op2 = ^op2
	}
	result := op(x.alu.Read(sz, rn), op2) & widthMask(sz)
	if flags {
		x.alu.Logic(sz, result)
	}
	return x.set(sz, rd, result)
}

func and(a, b uint64) uint64 { return a & b }
func orr(a, b uint64) uint64 { return a | b }
func eor(a, b uint64) uint64 { return a ^ b }

func (x *a64Exec) And(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, and, false, false)
}

func (x *a64Exec) Bic(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, and, true, false)
}

func (x *a64Exec) Orr(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, orr, false, false)
}

func (x *a64Exec) Orn(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, orr, true, false)
}

func (x *a64Exec) Eor(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, eor, false, false)
}

func (x *a64Exec) Eon(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, eor, true, false)
}

func (x *a64Exec) Ands(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, and, false, true)
}

func (x *a64Exec) Bics(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.logical(sz, rd, rn, rm, shift, amount, and, true, true)
}

// Add/subtract, shifted and extended register.

func (x *a64Exec) addSub(sz a64.Size, rd a64.Reg, op1, op2 uint64, sub, flags bool) (Effect, error) {
	if sub {
		return x.set(sz, rd, x.alu.Sub(sz, op1, op2, flags))
	}
	return x.set(sz, rd, x.alu.AddWithCarry(sz, op1, op2, false, flags))
}

func (x *a64Exec) shifted(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8, sub, flags bool) (Effect, error) {
	return x.addSub(sz, rd, x.alu.Read(sz, rn), Shift(sz, x.alu.Read(sz, rm), shift, amount), sub, flags)
}

func (x *a64Exec) extended(sz a64.Size, rd, rn, rm a64.Reg, ext a64.Extend, amount uint8, sub, flags bool) (Effect, error) {
	return x.addSub(sz, rd, x.alu.Read(sz, rn), ExtendReg(x.regs.ReadReg(rm), ext, amount), sub, flags)
}

func (x *a64Exec) Add(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.shifted(sz, rd, rn, rm, shift, amount, false, false)
}

func (x *a64Exec) Adds(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.shifted(sz, rd, rn, rm, shift, amount, false, true)
}

func (x *a64Exec) Sub(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.shifted(sz, rd, rn, rm, shift, amount, true, false)
}

func (x *a64Exec) Subs(sz a64.Size, rd, rn, rm a64.Reg, shift a64.ShiftType, amount uint8) (Effect, error) {
	return x.shifted(sz, rd, rn, rm, shift, amount, true, true)
}

func (x *a64Exec) AddExt(sz a64.Size, rd, rn, rm a64.Reg, ext a64.Extend, amount uint8) (Effect, error) {
	return x.extended(sz, rd, rn, rm, ext, amount, false, false)
}

func (x *a64Exec) AddsExt(sz a64.Size, rd, rn, rm a64.Reg, ext a64.Extend, amount uint8) (Effect, error) {
	return x.extended(sz, rd, rn, rm, ext, amount, false, true)
}

func (x *a64Exec) SubExt(sz a64.Size, rd, rn, rm a64.Reg, ext a64.Extend, amount uint8) (Effect, error) {
	return x.extended(sz, rd, rn, rm, ext, amount, true, false)
}

func (x *a64Exec) SubsExt(sz a64.Size, rd, rn, rm a64.Reg, ext a64.Extend, amount uint8) (Effect, error) {
	return x.extended(sz, rd, rn, rm, ext, amount, true, true)
}

// Add/subtract with carry and flag manipulation.

func (x *a64Exec) carry(sz a64.Size, rd, rn, rm a64.Reg, sub, flags bool) (Effect, error) {
	op2 := x.alu.Read(sz, rm)
	if sub {
		op2 = ^op2
	}
	result := x.alu.AddWithCarry(sz, x.alu.Read(sz, rn), op2, x.regs.PSTATE.C, flags)
	return x.set(sz, rd, result)
}

func (x *a64Exec) Adc(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.carry(sz, rd, rn, rm, false, false)
}

func (x *a64Exec) Adcs(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.carry(sz, rd, rn, rm, false, true)
}

func (x *a64Exec) Sbc(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.carry(sz, rd, rn, rm, true, false)
}

func (x *a64Exec) Sbcs(sz a64.Size, rd, rn, rm a64.Reg) (Effect, error) {
	return x.carry(sz, rd, rn, rm, true, true)
}

// Rmif rotates Xn right by lsb and copies its low four bits into the flags
// selected by mask.
func (x *a64Exec) Rmif(rn a64.Reg, lsb, mask uint8) (Effect, error) {
	rotated := Shift(a64.X, x.regs.ReadReg(rn), a64.ShiftROR, lsb)
	nzcv := x.regs.PSTATE.NZCV()&^mask | uint8(rotated)&mask
	x.regs.PSTATE = flagsFrom(nzcv)
	return Effect{}, nil
}

func (x *a64Exec) setf(rn a64.Reg, width uint) (Effect, error) {
	v := x.regs.ReadReg(rn)
	x.regs.PSTATE.N = v>>(width-1)&1 == 1
	x.regs.PSTATE.Z = v&lowMask(width) == 0
	x.regs.PSTATE.V = (v>>width^v>>(width-1))&1 == 1
	return Effect{}, nil
}

func (x *a64Exec) Setf8(rn a64.Reg) (Effect, error)  { return x.setf(rn, 8) }
func (x *a64Exec) Setf16(rn a64.Reg) (Effect, error) { return x.setf(rn, 16) }

// Conditional compare and select.

func (x *a64Exec) condCompare(sz a64.Size, op1, op2 uint64, nzcv uint8, cond a64.Cond, sub bool) (Effect, error) {
	switch {
	case !x.regs.PSTATE.ConditionHolds(cond):
		x.regs.PSTATE = flagsFrom(nzcv)
	case sub:
		x.alu.Sub(sz, op1, op2, true)
	default:
		x.alu.AddWithCarry(sz, op1, op2, false, true)
	}
	return Effect{}, nil
}

func (x *a64Exec) CcmnReg(sz a64.Size, rn, rm a64.Reg, nzcv uint8, cond a64.Cond) (Effect, error) {
	return x.condCompare(sz, x.alu.Read(sz, rn), x.alu.Read(sz, rm), nzcv, cond, false)
}

func (x *a64Exec) CcmpReg(sz a64.Size, rn, rm a64.Reg, nzcv uint8, cond a64.Cond) (Effect, error) {
	return x.condCompare(sz, x.alu.Read(sz, rn), x.alu.Read(sz, rm), nzcv, cond, true)
}

func (x *a64Exec) CcmnImm(sz a64.Size, rn a64.Reg, imm, nzcv uint8, cond a64.Cond) (Effect, error) {
	return x.condCompare(sz, x.alu.Read(sz, rn), uint64(imm), nzcv, cond, false)
}

func (x *a64Exec) CcmpImm(sz a64.Size, rn a64.Reg, imm, nzcv uint8, cond a64.Cond) (Effect, error) {
	return x.condCompare(sz, x.alu.Read(sz, rn), uint64(imm), nzcv, cond, true)
}

func (x *a64Exec) condSelect(sz a64.Size, rd, rn, rm a64.Reg, cond a64.Cond, alt func(uint64) uint64) (Effect, error) {
	if x.regs.PSTATE.ConditionHolds(cond) {
		return x.set(sz, rd, x.alu.Read(sz, rn))
	}
	return x.set(sz, rd, alt(x.alu.Read(sz, rm)))
}

func (x *a64Exec) Csel(sz a64.Size, rd, rn, rm a64.Reg, cond a64.Cond) (Effect, error) {
	return x.condSelect(sz, rd, rn, rm, cond, func(v uint64) uint64 { return v })
}

func (x *a64Exec) Csinc(sz a64.Size, rd, rn, rm a64.Reg, cond a64.Cond) (Effect, error) {
	return x.condSelect(sz, rd, rn, rm, cond, func(v uint64) uint64 { return v + 1 })
}

func (x *a64Exec) Csinv(sz a64.Size, rd, rn, rm a64.Reg, cond a64.Cond) (Effect, error) {
	return x.condSelect(sz, rd, rn, rm, cond, func(v uint64) uint64 { return ^v })
}

func (x *a64Exec) Csneg(sz a64.Size, rd, rn, rm a64.Reg, cond a64.Cond) (Effect, error) {
	return x.condSelect(sz, rd, rn, rm, cond, func(v uint64) uint64 { return -v })
}

// Data processing, three sources.

func (x *a64Exec) Madd(sz a64.Size, rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(sz, rd, x.alu.Read(sz, ra)+x.alu.Read(sz, rn)*x.alu.Read(sz, rm))
}

func (x *a64Exec) Msub(sz a64.Size, rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(sz, rd, x.alu.Read(sz, ra)-x.alu.Read(sz, rn)*x.alu.Read(sz, rm))
}

func (x *a64Exec) signedProduct(rn, rm a64.Reg) uint64 {
	return uint64(int64(int32(x.regs.ReadReg(rn))) * int64(int32(x.regs.ReadReg(rm))))
}

func (x *a64Exec) unsignedProduct(rn, rm a64.Reg) uint64 {
	return uint64(uint32(x.regs.ReadReg(rn))) * uint64(uint32(x.regs.ReadReg(rm)))
}

func (x *a64Exec) Smaddl(rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(ra)+x.signedProduct(rn, rm))
}

func (x *a64Exec) Smsubl(rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(ra)-x.signedProduct(rn, rm))
}

func (x *a64Exec) Umaddl(rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(ra)+x.unsignedProduct(rn, rm))
}

func (x *a64Exec) Umsubl(rd, rn, rm, ra a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, x.regs.ReadReg(ra)-x.unsignedProduct(rn, rm))
}

func (x *a64Exec) Smulh(rd, rn, rm a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, MulHigh(x.regs.ReadReg(rn), x.regs.ReadReg(rm), true))
}

func (x *a64Exec) Umulh(rd, rn, rm a64.Reg) (Effect, error) {
	return x.set(a64.X, rd, MulHigh(x.regs.ReadReg(rn), x.regs.ReadReg(rm), false))
}

// Exceptions and hints.

// Svc issues a Linux system call: the number is in x8, arguments in x0-x5
// and the result returns in x0.
func (x *a64Exec) Svc(_ uint16) (Effect, error) {
	call := Syscall{Num: x.regs.ReadReg(a64.X8)}
	copy(call.Args[:], x.regs.X[:6])

	result := x.m.syscalls.Handle(call)
	if result.Exited {
		return Effect{Exited: true, ExitCode: result.ExitCode}, nil
	}
	x.regs.WriteReg(a64.X0, result.Ret)
	return Effect{}, nil
}

func (x *a64Exec) Hvc(_ uint16) (Effect, error) { return unsupported("hvc") }
func (x *a64Exec) Smc(_ uint16) (Effect, error) { return unsupported("smc") }

func (x *a64Exec) Brk(imm uint16) (Effect, error) {
	return Effect{}, &BreakpointError{PC: x.regs.PC, Imm: imm}
}

func (x *a64Exec) Hlt(imm uint16) (Effect, error) {
	return Effect{}, &BreakpointError{PC: x.regs.PC, Imm: imm}
}

func (x *a64Exec) Udf(imm uint16) (Effect, error) {
	return Effect{}, fmt.Errorf("udf #%#x: permanently undefined", imm)
}

func (x *a64Exec) Nop() (Effect, error)         { return Effect{}, nil }
func (x *a64Exec) Yield() (Effect, error)       { return Effect{}, nil }
func (x *a64Exec) Wfe() (Effect, error)         { return Effect{}, nil }
func (x *a64Exec) Wfi() (Effect, error)         { return Effect{}, nil }
func (x *a64Exec) Sev() (Effect, error)         { return Effect{}, nil }
func (x *a64Exec) Sevl() (Effect, error)        { return Effect{}, nil }
func (x *a64Exec) Hint(_ uint8) (Effect, error) { return Effect{}, nil }
