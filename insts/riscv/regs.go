package riscv

import "fmt"

// Reg is an integer register, x0 through x31, or the program counter.
type Reg uint8

// Integer registers.
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
	X31
	PC
)

// ABI aliases.
const (
	Zero = X0
	RA   = X1
	SP   = X2
	GP   = X3
	TP   = X4
	T0   = X5
	T1   = X6
	T2   = X7
	S0   = X8
	FP   = X8
	S1   = X9
	A0   = X10
	A1   = X11
	A2   = X12
	A3   = X13
	A4   = X14
	A5   = X15
	A6   = X16
	A7   = X17
	S2   = X18
	S3   = X19
	S4   = X20
	S5   = X21
	S6   = X22
	S7   = X23
	S8   = X24
	S9   = X25
	S10  = X26
	S11  = X27
	T3   = X28
	T4   = X29
	T5   = X30
	T6   = X31
)

var regNames = [...]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
	"pc",
}

// NewReg returns register x<i>. It panics if i > 31.
func NewReg(i uint32) Reg {
	if i > 31 {
		panic(fmt.Sprintf("riscv: integer register index %d out of range", i))
	}
	return Reg(i)
}

// RegFromPrime maps a 3-bit compressed register field k to x(k+8).
// It panics if k > 7.
func RegFromPrime(k uint32) Reg {
	if k > 7 {
		panic(fmt.Sprintf("riscv: compressed register index %d out of range", k))
	}
	return Reg(k + 8)
}

// Prime returns the compressed field for r, if r is one of x8..x15.
func (r Reg) Prime() (uint32, bool) {
	if r < X8 || r > X15 {
		return 0, false
	}
	return uint32(r - X8), true
}

// Index returns the architectural register number.
func (r Reg) Index() uint32 {
	return uint32(r)
}

// Valid reports whether r names an encodable integer register.
func (r Reg) Valid() bool {
	return r <= X31
}

// String returns the ABI name.
func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("reg(%d)", uint8(r))
}

// Numeric returns the architectural name, e.g. "x10".
func (r Reg) Numeric() string {
	if r == PC {
		return "pc"
	}
	return fmt.Sprintf("x%d", uint8(r))
}

// FReg is a floating-point register, f0 through f31.
type FReg uint8

// Floating-point registers.
const (
	F0 FReg = iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	F25
	F26
	F27
	F28
	F29
	F30
	F31
)

var fregNames = [...]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// NewFReg returns register f<i>. It panics if i > 31.
func NewFReg(i uint32) FReg {
	if i > 31 {
		panic(fmt.Sprintf("riscv: float register index %d out of range", i))
	}
	return FReg(i)
}

// FRegFromPrime maps a 3-bit compressed register field k to f(k+8).
// It panics if k > 7.
func FRegFromPrime(k uint32) FReg {
	if k > 7 {
		panic(fmt.Sprintf("riscv: compressed register index %d out of range", k))
	}
	return FReg(k + 8)
}

// Prime returns the compressed field for r, if r is one of f8..f15.
func (r FReg) Prime() (uint32, bool) {
	if r < F8 || r > F15 {
		return 0, false
	}
	return uint32(r - F8), true
}

// Index returns the architectural register number.
func (r FReg) Index() uint32 {
	return uint32(r)
}

// Valid reports whether r names an encodable float register.
func (r FReg) Valid() bool {
	return r <= F31
}

// String returns the ABI name.
func (r FReg) String() string {
	if int(r) < len(fregNames) {
		return fregNames[r]
	}
	return fmt.Sprintf("freg(%d)", uint8(r))
}

// Numeric returns the architectural name, e.g. "f10".
func (r FReg) Numeric() string {
	return fmt.Sprintf("f%d", uint8(r))
}

// RoundingMode is the static rounding-mode field of a float instruction.
type RoundingMode uint8

// Rounding modes. Field values 5 and 6 are reserved.
const (
	RNE RoundingMode = 0 // round to nearest, ties to even
	RTZ RoundingMode = 1 // round towards zero
	RDN RoundingMode = 2 // round down
	RUP RoundingMode = 3 // round up
	RMM RoundingMode = 4 // round to nearest, ties to max magnitude
	DYN RoundingMode = 7 // use the frm CSR
)

var rmNames = [...]string{"rne", "rtz", "rdn", "rup", "rmm", "", "", "dyn"}

// Valid reports whether m is an allocated rounding mode.
func (m RoundingMode) Valid() bool {
	return m <= RMM || m == DYN
}

func (m RoundingMode) String() string {
	if m.Valid() {
		return rmNames[m]
	}
	return fmt.Sprintf("rm(%d)", uint8(m))
}

// noRM marks an operand list without a rounding-mode field.
const noRM RoundingMode = 0xff
