package a64

import (
	"fmt"
	"strings"
)

// Printer renders instructions in A64 assembly syntax. Immediates print in
// hex, bit positions and shift amounts in decimal, and branch targets as
// signed offsets from the instruction.
type Printer struct{}

// Format renders inst with a Printer.
func Format(inst Inst) string {
	s, err := Visit[string](Printer{}, inst)
	if err != nil {
		return "<" + inst.Op.String() + ">"
	}
	return s
}

func hex(v uint64) string {
	return fmt.Sprintf("#%#x", v)
}

func signedHex(v int64) string {
	if v < 0 {
		return fmt.Sprintf("#-%#x", uint64(-v))
	}
	return fmt.Sprintf("#%#x", v)
}

func dec(v uint8) string {
	return fmt.Sprintf("#%d", v)
}

func (p Printer) line(op Op, operands ...string) string {
	if len(operands) == 0 {
		return op.String()
	}
	return op.String() + " " + strings.Join(operands, ", ")
}

func (p Printer) pcRel(op Op, rd Reg, offset int64) string {
	return p.line(op, rd.Name(X), signedHex(offset))
}

func (p Printer) addSubImm(op Op, sz Size, rd, rn Reg, imm uint16, shift uint8) string {
	ops := []string{rd.Name(sz), rn.Name(sz), hex(uint64(imm))}
	if shift != 0 {
		ops = append(ops, "lsl "+dec(shift))
	}
	return p.line(op, ops...)
}

func (p Printer) tags(op Op, rd, rn Reg, offset uint16, tag uint8) string {
	return p.line(op, rd.Name(X), rn.Name(X), hex(uint64(offset)), hex(uint64(tag)))
}

func (p Printer) logicalImm(op Op, sz Size, rd, rn Reg, imm uint64) string {
	return p.line(op, rd.Name(sz), rn.Name(sz), hex(imm))
}

func (p Printer) moveWide(op Op, sz Size, rd Reg, imm uint16, shift uint8) string {
	ops := []string{rd.Name(sz), hex(uint64(imm))}
	if shift != 0 {
		ops = append(ops, "lsl "+dec(shift))
	}
	return p.line(op, ops...)
}

func (p Printer) bitfield(op Op, sz Size, rd, rn Reg, immr, imms uint8) string {
	return p.line(op, rd.Name(sz), rn.Name(sz), dec(immr), dec(imms))
}

func (p Printer) extract(op Op, sz Size, rd, rn, rm Reg, lsb uint8) string {
	return p.line(op, rd.Name(sz), rn.Name(sz), rm.Name(sz), dec(lsb))
}

func (p Printer) regs1(op Op, sz Size, rd Reg) string {
	return p.line(op, rd.Name(sz))
}

func (p Printer) regs2(op Op, sz Size, rd, rn Reg) string {
	return p.line(op, rd.Name(sz), rn.Name(sz))
}

func (p Printer) regs3(op Op, sz Size, rd, rn, rm Reg) string {
	return p.line(op, rd.Name(sz), rn.Name(sz), rm.Name(sz))
}

func (p Printer) regs4(op Op, sz Size, rd, rn, rm, ra Reg) string {
	src := sz
	switch op {
	case OpSMADDL, OpSMSUBL, OpUMADDL, OpUMSUBL:
		src = W
	}
	return p.line(op, rd.Name(sz), rn.Name(src), rm.Name(src), ra.Name(sz))
}

// crc takes the data operand at the width of the CRC step.
func (p Printer) crc(op Op, rd, rn, rm Reg) string {
	data := W
	if op == OpCRC32X || op == OpCRC32CX {
		data = X
	}
	return p.line(op, rd.Name(W), rn.Name(W), rm.Name(data))
}

func (p Printer) shifted(op Op, sz Size, rd, rn, rm Reg, shift ShiftType, amount uint8) string {
	ops := []string{rd.Name(sz), rn.Name(sz), rm.Name(sz)}
	if shift != ShiftLSL || amount != 0 {
		ops = append(ops, shift.String()+" "+dec(amount))
	}
	return p.line(op, ops...)
}

func (p Printer) extended(op Op, sz Size, rd, rn, rm Reg, ext Extend, amount uint8) string {
	src := W
	if ext == ExtendUXTX || ext == ExtendSXTX {
		src = sz
	}
	mod := ext.String()
	if amount != 0 {
		mod += " " + dec(amount)
	}
	return p.line(op, rd.Name(sz), rn.Name(sz), rm.Name(src), mod)
}

func (p Printer) rmif(op Op, rn Reg, lsb, mask uint8) string {
	return p.line(op, rn.Name(X), dec(lsb), hex(uint64(mask)))
}

func (p Printer) setf(op Op, rn Reg) string {
	return p.line(op, rn.Name(W))
}

func (p Printer) condCompare(op Op, sz Size, rn, rm Reg, nzcv uint8, cond Cond) string {
	return p.line(op, rn.Name(sz), rm.Name(sz), hex(uint64(nzcv)), cond.String())
}

func (p Printer) condCompareImm(op Op, sz Size, rn Reg, imm, nzcv uint8, cond Cond) string {
	return p.line(op, rn.Name(sz), hex(uint64(imm)), hex(uint64(nzcv)), cond.String())
}

func (p Printer) condSelect(op Op, sz Size, rd, rn, rm Reg, cond Cond) string {
	return p.line(op, rd.Name(sz), rn.Name(sz), rm.Name(sz), cond.String())
}

func (p Printer) condBranch(op Op, cond Cond, offset int64) string {
	return op.String() + "." + cond.String() + " " + signedHex(offset)
}

func (p Printer) branch(op Op, offset int64) string {
	return p.line(op, signedHex(offset))
}

func (p Printer) compareBranch(op Op, sz Size, rt Reg, offset int64) string {
	return p.line(op, rt.Name(sz), signedHex(offset))
}

func (p Printer) testBranch(op Op, rt Reg, bit uint8, offset int64) string {
	sz := W
	if bit >= 32 {
		sz = X
	}
	return p.line(op, rt.Name(sz), dec(bit), signedHex(offset))
}

func (p Printer) exception(op Op, imm uint16) string {
	return p.line(op, hex(uint64(imm)))
}

func (p Printer) branchReg(op Op, rn Reg) string {
	if op == OpRET && rn == LR {
		return op.String()
	}
	return p.line(op, rn.Name(X))
}

func (p Printer) bare(op Op) string {
	return op.String()
}

func (p Printer) hint(op Op, imm uint8) string {
	return p.line(op, hex(uint64(imm)))
}
