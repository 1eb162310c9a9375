package a64

import "fmt"

// Reg is a general-purpose register operand. Index 31 of a register field
// names either the stack pointer or the zero register depending on the
// operand position, so SP and ZR are distinct values.
type Reg uint8

// General-purpose registers.
const (
	X0 Reg = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	SP
	ZR

	FP = X29 // frame pointer
	LR = X30 // link register
)

// NewReg resolves a 5-bit register field. sp selects SP for index 31,
// otherwise index 31 is ZR.
func NewReg(i uint32, sp bool) Reg {
	if i > 31 {
		panic(fmt.Sprintf("a64: register index %d out of range", i))
	}
	if i == 31 && !sp {
		return ZR
	}
	return Reg(i)
}

// Field returns the 5-bit encoding of r.
func (r Reg) Field() uint32 {
	if r == ZR {
		return 31
	}
	return uint32(r)
}

// Valid reports whether r is a defined register.
func (r Reg) Valid() bool {
	return r <= ZR
}

// Name returns the assembly name of r at the given width.
func (r Reg) Name(size Size) string {
	switch {
	case r == SP && size == X:
		return "sp"
	case r == SP:
		return "wsp"
	case r == ZR && size == X:
		return "xzr"
	case r == ZR:
		return "wzr"
	case r > ZR:
		return fmt.Sprintf("reg(%d)", uint8(r))
	case size == X:
		return fmt.Sprintf("x%d", uint8(r))
	default:
		return fmt.Sprintf("w%d", uint8(r))
	}
}

func (r Reg) String() string {
	return r.Name(X)
}

// Size is the operand width selected by the sf bit.
type Size uint8

// Operand widths.
const (
	W Size = iota // 32-bit
	X             // 64-bit
)

// Bits returns the width in bits.
func (s Size) Bits() uint {
	if s == X {
		return 64
	}
	return 32
}

func (s Size) String() string {
	if s == X {
		return "x"
	}
	return "w"
}

// Cond represents an ARM64 condition code.
type Cond uint8

// Condition codes.
const (
	CondEQ Cond = 0b0000 // Equal (Z == 1)
	CondNE Cond = 0b0001 // Not Equal (Z == 0)
	CondCS Cond = 0b0010 // Carry Set / Unsigned higher or same (C == 1)
	CondCC Cond = 0b0011 // Carry Clear / Unsigned lower (C == 0)
	CondMI Cond = 0b0100 // Minus / Negative (N == 1)
	CondPL Cond = 0b0101 // Plus / Positive or zero (N == 0)
	CondVS Cond = 0b0110 // Overflow (V == 1)
	CondVC Cond = 0b0111 // No overflow (V == 0)
	CondHI Cond = 0b1000 // Unsigned higher (C == 1 && Z == 0)
	CondLS Cond = 0b1001 // Unsigned lower or same (C == 0 || Z == 1)
	CondGE Cond = 0b1010 // Signed greater than or equal (N == V)
	CondLT Cond = 0b1011 // Signed less than (N != V)
	CondGT Cond = 0b1100 // Signed greater than (Z == 0 && N == V)
	CondLE Cond = 0b1101 // Signed less than or equal (Z == 1 || N != V)
	CondAL Cond = 0b1110 // Always (unconditional)
	CondNV Cond = 0b1111 // Always (unconditional, reserved)
)

var condNames = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

func (c Cond) String() string {
	return condNames[c&0xf]
}

// Invert returns the opposite condition. AL and NV both mean always and
// invert to each other.
func (c Cond) Invert() Cond {
	return c ^ 1
}

// ShiftType represents a shift type for register operands.
type ShiftType uint8

// Shift types.
const (
	ShiftLSL ShiftType = 0b00 // Logical shift left
	ShiftLSR ShiftType = 0b01 // Logical shift right
	ShiftASR ShiftType = 0b10 // Arithmetic shift right
	ShiftROR ShiftType = 0b11 // Rotate right
)

func (s ShiftType) String() string {
	return [4]string{"lsl", "lsr", "asr", "ror"}[s&3]
}

// Extend is the option field of an extended-register operand.
type Extend uint8

// Extend options.
const (
	ExtendUXTB Extend = iota
	ExtendUXTH
	ExtendUXTW
	ExtendUXTX
	ExtendSXTB
	ExtendSXTH
	ExtendSXTW
	ExtendSXTX
)

func (e Extend) String() string {
	return [8]string{"uxtb", "uxth", "uxtw", "uxtx", "sxtb", "sxth", "sxtw", "sxtx"}[e&7]
}

// Signed reports whether the extension sign-extends.
func (e Extend) Signed() bool {
	return e >= ExtendSXTB
}

// Bits returns the width of the source value before extension.
func (e Extend) Bits() uint {
	return 8 << (e & 3)
}
