package emu

import (
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

// RegFile represents the A64 register file.
// It contains 31 general-purpose registers (X0-X30),
// the stack pointer (SP), and the program counter (PC).
type RegFile struct {
	// X holds general-purpose registers X0-X30.
	X [31]uint64

	// SP is the stack pointer.
	SP uint64

	// PC is the program counter.
	PC uint64

	// PSTATE holds the processor state flags.
	PSTATE PSTATE
}

// PSTATE represents the processor state flags.
type PSTATE struct {
	N bool
	Z bool
	C bool
	V bool
}

// NZCV packs the flags as the 4-bit field used by conditional compares.
func (p PSTATE) NZCV() uint8 {
	var v uint8
	for i, f := range [4]bool{p.V, p.C, p.Z, p.N} {
		if f {
			v |= 1 << i
		}
	}
	return v
}

// flagsFrom unpacks a 4-bit NZCV field.
func flagsFrom(nzcv uint8) PSTATE {
	return PSTATE{N: nzcv&8 != 0, Z: nzcv&4 != 0, C: nzcv&2 != 0, V: nzcv&1 != 0}
}

// ReadReg reads a register. ZR reads as zero.
func (r *RegFile) ReadReg(reg a64.Reg) uint64 {
	switch reg {
	case a64.ZR:
		return 0
	case a64.SP:
		return r.SP
	default:
		return r.X[reg]
	}
}

// WriteReg writes a register. Writes to ZR are discarded.
func (r *RegFile) WriteReg(reg a64.Reg, value uint64) {
	switch reg {
	case a64.ZR:
	case a64.SP:
		r.SP = value
	default:
		r.X[reg] = value
	}
}

// RVRegFile is the RV64GC register state. F holds raw 64-bit patterns;
// single-precision values are NaN-boxed.
type RVRegFile struct {
	X  [32]uint64
	F  [32]uint64
	PC uint64

	// FCSR holds frm in bits 7:5 and fflags in bits 4:0.
	FCSR uint32
}

// ReadReg reads an integer register. x0 reads as zero.
func (r *RVRegFile) ReadReg(reg riscv.Reg) uint64 {
	if reg == riscv.Zero {
		return 0
	}
	return r.X[reg]
}

// WriteReg writes an integer register. Writes to x0 are discarded.
func (r *RVRegFile) WriteReg(reg riscv.Reg, value uint64) {
	if reg != riscv.Zero {
		r.X[reg] = value
	}
}

// Flags returns the accrued exception flags.
func (r *RVRegFile) Flags() uint32 {
	return r.FCSR & 0x1f
}

// RoundingMode returns the dynamic rounding mode from frm.
func (r *RVRegFile) RoundingMode() riscv.RoundingMode {
	return riscv.RoundingMode(r.FCSR >> 5 & 0x7)
}
