package riscv

import (
	"fmt"
	"strings"
)

// Printer renders instructions as GNU-style assembly text. Registers use ABI
// names unless Numeric is set.
type Printer struct {
	Numeric bool
}

// Format renders inst with the default Printer.
func Format(inst Inst) string {
	s, err := Visit(Printer{}, inst)
	if err != nil {
		return fmt.Sprintf("<%s>", inst.Op)
	}
	return s
}

var csrNames = map[int64]string{
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0xc00: "cycle",
	0xc01: "time",
	0xc02: "instret",
}

func (p Printer) x(r Reg) string {
	if p.Numeric {
		return r.Numeric()
	}
	return r.String()
}

func (p Printer) f(r FReg) string {
	if p.Numeric {
		return r.Numeric()
	}
	return r.String()
}

func withRM(s string, rm RoundingMode) string {
	if rm == noRM || rm == DYN {
		return s
	}
	return s + ", " + rm.String()
}

func (p Printer) upper(op Op, rd Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %#x", op, p.x(rd), (imm>>12)&0xfffff)
}

func (p Printer) jump(op Op, rd Reg, off int64) string {
	return fmt.Sprintf("%s %s, %d", op, p.x(rd), off)
}

func (p Printer) regRegImm(op Op, rd, rs1 Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %s, %d", op, p.x(rd), p.x(rs1), imm)
}

func (p Printer) memory(op Op, rd, rs1 Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.x(rd), imm, p.x(rs1))
}

func (p Printer) regRegReg(op Op, rd, rs1, rs2 Reg) string {
	return fmt.Sprintf("%s %s, %s, %s", op, p.x(rd), p.x(rs1), p.x(rs2))
}

func (p Printer) branch(op Op, rs1, rs2 Reg, off int64) string {
	return fmt.Sprintf("%s %s, %s, %d", op, p.x(rs1), p.x(rs2), off)
}

func (p Printer) store(op Op, rs1, rs2 Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.x(rs2), imm, p.x(rs1))
}

func csrName(csr int64) string {
	if name, ok := csrNames[csr]; ok {
		return name
	}
	return fmt.Sprintf("%#x", csr)
}

func (p Printer) csr(op Op, rd, rs1 Reg, csr int64) string {
	return fmt.Sprintf("%s %s, %s, %s", op, p.x(rd), csrName(csr), p.x(rs1))
}

func (p Printer) csrImm(op Op, rd Reg, uimm, csr int64) string {
	return fmt.Sprintf("%s %s, %s, %d", op, p.x(rd), csrName(csr), uimm)
}

func fenceSet(v int64) string {
	if v == 0 {
		return "0"
	}
	var b strings.Builder
	for i, c := range "iorw" {
		if v&(8>>i) != 0 {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func (p Printer) fence(op Op, fm, pred, succ int64) string {
	if fm == 8 && pred == 3 && succ == 3 {
		return "fence.tso"
	}
	return fmt.Sprintf("%s %s, %s", op, fenceSet(pred), fenceSet(succ))
}

func (p Printer) bare(op Op) string {
	return op.String()
}

func (p Printer) floatLoad(op Op, rd FReg, rs1 Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.f(rd), imm, p.x(rs1))
}

func (p Printer) floatStore(op Op, rs1 Reg, rs2 FReg, imm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.f(rs2), imm, p.x(rs1))
}

func (p Printer) fused(op Op, rd, rs1, rs2, rs3 FReg, rm RoundingMode) string {
	return withRM(fmt.Sprintf("%s %s, %s, %s, %s", op, p.f(rd), p.f(rs1), p.f(rs2), p.f(rs3)), rm)
}

func (p Printer) floatRRR(op Op, rd, rs1, rs2 FReg, rm RoundingMode) string {
	return withRM(fmt.Sprintf("%s %s, %s, %s", op, p.f(rd), p.f(rs1), p.f(rs2)), rm)
}

func (p Printer) floatRR(op Op, rd, rs1 FReg, rm RoundingMode) string {
	return withRM(fmt.Sprintf("%s %s, %s", op, p.f(rd), p.f(rs1)), rm)
}

func (p Printer) floatCompare(op Op, rd Reg, rs1, rs2 FReg) string {
	return fmt.Sprintf("%s %s, %s, %s", op, p.x(rd), p.f(rs1), p.f(rs2))
}

func (p Printer) floatToInt(op Op, rd Reg, rs1 FReg, rm RoundingMode) string {
	return withRM(fmt.Sprintf("%s %s, %s", op, p.x(rd), p.f(rs1)), rm)
}

func (p Printer) intToFloat(op Op, rd FReg, rs1 Reg, rm RoundingMode) string {
	return withRM(fmt.Sprintf("%s %s, %s", op, p.f(rd), p.x(rs1)), rm)
}

func (p Printer) addi4spn(op Op, rd Reg, uimm int64) string {
	return fmt.Sprintf("%s %s, %s, %d", op, p.x(rd), p.x(SP), uimm)
}

func (p Printer) regImm(op Op, rd Reg, imm int64) string {
	return fmt.Sprintf("%s %s, %d", op, p.x(rd), imm)
}

func (p Printer) addi16sp(op Op, imm int64) string {
	return fmt.Sprintf("%s %s, %d", op, p.x(SP), imm)
}

func (p Printer) regReg(op Op, rd, rs2 Reg) string {
	return fmt.Sprintf("%s %s, %s", op, p.x(rd), p.x(rs2))
}

func (p Printer) offset(op Op, off int64) string {
	return fmt.Sprintf("%s %d", op, off)
}

func (p Printer) regOffset(op Op, rs1 Reg, off int64) string {
	return fmt.Sprintf("%s %s, %d", op, p.x(rs1), off)
}

func (p Printer) floatStackLoad(op Op, rd FReg, uimm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.f(rd), uimm, p.x(SP))
}

func (p Printer) stackLoad(op Op, rd Reg, uimm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.x(rd), uimm, p.x(SP))
}

func (p Printer) floatStackStore(op Op, rs2 FReg, uimm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.f(rs2), uimm, p.x(SP))
}

func (p Printer) stackStore(op Op, rs2 Reg, uimm int64) string {
	return fmt.Sprintf("%s %s, %d(%s)", op, p.x(rs2), uimm, p.x(SP))
}

func (p Printer) reg(op Op, rs1 Reg) string {
	return fmt.Sprintf("%s %s", op, p.x(rs1))
}
