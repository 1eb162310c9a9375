package emu

import (
	"errors"
	"math"
	"math/big"

	"github.com/sarchlab/diss/insts/riscv"
)

// ErrRoundingMode marks a float instruction whose effective rounding mode is
// reserved, either statically or through frm.
var ErrRoundingMode = errors.New("invalid rounding mode")

// Accrued exception flags in fflags.
const (
	FlagNX uint32 = 1 << iota // inexact
	FlagUF                    // underflow
	FlagOF                    // overflow
	FlagDZ                    // divide by zero
	FlagNV                    // invalid operation
)

const (
	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
	nanBox         uint64 = 0xffffffff00000000
	sign32         uint32 = 1 << 31
	sign64         uint64 = 1 << 63
)

type float interface{ float32 | float64 }

func isNaN[F float](v F) bool { return v != v }

func isInf[F float](v F) bool { return math.IsInf(float64(v), 0) }

func isSNaN32(b uint32) bool {
	return b&0x7f800000 == 0x7f800000 && b&0x007fffff != 0 && b&0x00400000 == 0
}

func isSNaN64(b uint64) bool {
	return b&0x7ff0000000000000 == 0x7ff0000000000000 &&
		b&0x000fffffffffffff != 0 && b&0x0008000000000000 == 0
}

func (x *rvExec) raise(flags uint32) {
	x.regs.FCSR |= flags & 0x1f
}

// rounding resolves DYN against frm.
func (x *rvExec) rounding(rm riscv.RoundingMode) (riscv.RoundingMode, error) {
	if rm == riscv.DYN {
		rm = x.regs.RoundingMode()
	}
	if rm > riscv.RMM {
		return rm, ErrRoundingMode
	}
	return rm, nil
}

// sBits returns the single held in r. A value that is not NaN-boxed reads
// as the canonical NaN.
func (x *rvExec) sBits(r riscv.FReg) uint32 {
	v := x.regs.F[r]
	if v&nanBox != nanBox {
		return canonicalNaN32
	}
	return uint32(v)
}

func (x *rvExec) loadS(r riscv.FReg) (float32, bool) {
	b := x.sBits(r)
	return math.Float32frombits(b), isSNaN32(b)
}

func (x *rvExec) loadD(r riscv.FReg) (float64, bool) {
	b := x.regs.F[r]
	return math.Float64frombits(b), isSNaN64(b)
}

func (x *rvExec) setSBits(rd riscv.FReg, b uint32) {
	x.regs.F[rd] = nanBox | uint64(b)
}

// storeS writes an arithmetic result; NaNs are canonicalized.
func (x *rvExec) storeS(rd riscv.FReg, v float32) (Effect, error) {
	b := math.Float32bits(v)
	if isNaN(v) {
		b = canonicalNaN32
	}
	x.setSBits(rd, b)
	return Effect{}, nil
}

func (x *rvExec) storeD(rd riscv.FReg, v float64) (Effect, error) {
	b := math.Float64bits(v)
	if isNaN(v) {
		b = canonicalNaN64
	}
	x.regs.F[rd] = b
	return Effect{}, nil
}

// arith applies a two-operand operation and returns the flags it raises.
func arith[F float](op func(a, b F) F, a, b F, signaling, divide bool) (F, uint32) {
	r := op(a, b)
	switch {
	case signaling:
		return r, FlagNV
	case isNaN(a) || isNaN(b):
		return r, 0
	case isNaN(r):
		return r, FlagNV
	case divide && b == 0 && !isInf(a):
		return r, FlagDZ
	case isInf(r) && !isInf(a) && !isInf(b):
		return r, FlagOF | FlagNX
	}
	return r, 0
}

// fused computes ±(a*b)±c with a single rounding in float64.
func fused[F float](a, b, c F, negProduct, negAddend bool, signaling bool) (F, uint32) {
	if negProduct {
		a = -a
	}
	if negAddend {
		c = -c
	}
	r := F(math.FMA(float64(a), float64(b), float64(c)))
	switch {
	case signaling:
		return r, FlagNV
	case isNaN(r) && !isNaN(a) && !isNaN(b) && !isNaN(c):
		return r, FlagNV
	case isNaN(a) || isNaN(b) || isNaN(c):
		return r, 0
	case isInf(r) && !isInf(a) && !isInf(b) && !isInf(c):
		return r, FlagOF | FlagNX
	}
	return r, 0
}

// minMax follows the IEEE 754-2019 minimumNumber and maximumNumber rules:
// a single NaN operand yields the other operand and -0 orders below +0.
func minMax[F float](a, b F, wantMax bool) F {
	switch {
	case isNaN(a) && isNaN(b):
		return F(math.NaN())
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a == 0 && b == 0:
		if math.Signbit(float64(a)) == wantMax {
			return b
		}
		return a
	case (a < b) != wantMax:
		return a
	}
	return b
}

func classify(neg, expOnes, expZero, mantZero, quiet bool) uint64 {
	var bit uint
	switch {
	case expOnes && mantZero:
		bit = 7
		if neg {
			bit = 0
		}
	case expOnes && quiet:
		bit = 9
	case expOnes:
		bit = 8
	case expZero && mantZero:
		bit = 4
		if neg {
			bit = 3
		}
	case expZero:
		bit = 5
		if neg {
			bit = 2
		}
	default:
		bit = 6
		if neg {
			bit = 1
		}
	}
	return 1 << bit
}

func roundToInt(v float64, rm riscv.RoundingMode) float64 {
	switch rm {
	case riscv.RTZ:
		return math.Trunc(v)
	case riscv.RDN:
		return math.Floor(v)
	case riscv.RUP:
		return math.Ceil(v)
	case riscv.RMM:
		return math.Round(v)
	}
	return math.RoundToEven(v)
}

// toSigned converts v to a signed integer of n bits, saturating out of
// range values. NaN converts to the largest value.
func (x *rvExec) toSigned(v float64, rm riscv.RoundingMode, n uint) uint64 {
	hi := int64(1)<<(n-1) - 1
	lo := -hi - 1
	if isNaN(v) {
		x.raise(FlagNV)
		return uint64(hi)
	}
	r := roundToInt(v, rm)
	limit := math.Ldexp(1, int(n-1))
	switch {
	case r >= limit:
		x.raise(FlagNV)
		return uint64(hi)
	case r < -limit:
		x.raise(FlagNV)
		return uint64(lo)
	}
	if r != v {
		x.raise(FlagNX)
	}
	return uint64(int64(r))
}

// toUnsigned converts v to an unsigned integer of n bits. A 32-bit result
// is sign-extended into the register.
func (x *rvExec) toUnsigned(v float64, rm riscv.RoundingMode, n uint) uint64 {
	hi := lowMask(n)
	result := func(u uint64) uint64 {
		if n == 32 {
			return sext32(u)
		}
		return u
	}
	if isNaN(v) {
		x.raise(FlagNV)
		return result(hi)
	}
	r := roundToInt(v, rm)
	switch {
	case r >= math.Ldexp(1, int(n)):
		x.raise(FlagNV)
		return result(hi)
	case r <= -1:
		x.raise(FlagNV)
		return 0
	}
	if r != v {
		x.raise(FlagNX)
	}
	return result(uint64(r))
}

func bigMode(rm riscv.RoundingMode) big.RoundingMode {
	switch rm {
	case riscv.RTZ:
		return big.ToZero
	case riscv.RDN:
		return big.ToNegativeInf
	case riscv.RUP:
		return big.ToPositiveInf
	case riscv.RMM:
		return big.ToNearestAway
	}
	return big.ToNearestEven
}

// fromInt rounds an integer to prec significand bits with rm.
func (x *rvExec) fromInt(v uint64, signed bool, prec uint, rm riscv.RoundingMode) float64 {
	f := new(big.Float).SetPrec(prec).SetMode(bigMode(rm))
	if signed {
		f.SetInt64(int64(v))
	} else {
		f.SetUint64(v)
	}
	if f.Acc() != big.Exact {
		x.raise(FlagNX)
	}
	r, _ := f.Float64()
	return r
}

// Float loads and stores.

func (x *rvExec) Flw(rd riscv.FReg, rs1 riscv.Reg, imm int32) (Effect, error) {
	x.setSBits(rd, x.m.memory.Read32(x.addr(rs1, int64(imm))))
	return Effect{}, nil
}

func (x *rvExec) Fsw(rs1 riscv.Reg, rs2 riscv.FReg, imm int32) (Effect, error) {
	x.m.memory.Write32(x.addr(rs1, int64(imm)), uint32(x.regs.F[rs2]))
	return Effect{}, nil
}

func (x *rvExec) Fld(rd riscv.FReg, rs1 riscv.Reg, imm int32) (Effect, error) {
	x.regs.F[rd] = x.m.memory.Read64(x.addr(rs1, int64(imm)))
	return Effect{}, nil
}

func (x *rvExec) Fsd(rs1 riscv.Reg, rs2 riscv.FReg, imm int32) (Effect, error) {
	x.m.memory.Write64(x.addr(rs1, int64(imm)), x.regs.F[rs2])
	return Effect{}, nil
}

// Single-precision arithmetic.

func (x *rvExec) fmaS(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode, negProduct, negAddend bool) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, sa := x.loadS(rs1)
	b, sb := x.loadS(rs2)
	c, sc := x.loadS(rs3)
	r, flags := fused(a, b, c, negProduct, negAddend, sa || sb || sc)
	x.raise(flags)
	return x.storeS(rd, r)
}

func (x *rvExec) FmaddS(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaS(rd, rs1, rs2, rs3, rm, false, false)
}

func (x *rvExec) FmsubS(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaS(rd, rs1, rs2, rs3, rm, false, true)
}

func (x *rvExec) FnmsubS(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaS(rd, rs1, rs2, rs3, rm, true, false)
}

func (x *rvExec) FnmaddS(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaS(rd, rs1, rs2, rs3, rm, true, true)
}

func (x *rvExec) opS(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode, divide bool, op func(a, b float32) float32) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, sa := x.loadS(rs1)
	b, sb := x.loadS(rs2)
	r, flags := arith(op, a, b, sa || sb, divide)
	x.raise(flags)
	return x.storeS(rd, r)
}

func (x *rvExec) FaddS(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opS(rd, rs1, rs2, rm, false, func(a, b float32) float32 { return a + b })
}

func (x *rvExec) FsubS(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opS(rd, rs1, rs2, rm, false, func(a, b float32) float32 { return a - b })
}

func (x *rvExec) FmulS(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opS(rd, rs1, rs2, rm, false, func(a, b float32) float32 { return a * b })
}

func (x *rvExec) FdivS(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opS(rd, rs1, rs2, rm, true, func(a, b float32) float32 { return a / b })
}

func (x *rvExec) FsqrtS(rd, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, signaling := x.loadS(rs1)
	if signaling || a < 0 {
		x.raise(FlagNV)
	}
	return x.storeS(rd, float32(math.Sqrt(float64(a))))
}

// Sign injection works on raw bits and never canonicalizes.

func (x *rvExec) FsgnjS(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.setSBits(rd, x.sBits(rs1)&^sign32|x.sBits(rs2)&sign32)
	return Effect{}, nil
}

func (x *rvExec) FsgnjnS(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.setSBits(rd, x.sBits(rs1)&^sign32|^x.sBits(rs2)&sign32)
	return Effect{}, nil
}

func (x *rvExec) FsgnjxS(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.setSBits(rd, x.sBits(rs1)^x.sBits(rs2)&sign32)
	return Effect{}, nil
}

func (x *rvExec) minMaxS(rd, rs1, rs2 riscv.FReg, wantMax bool) (Effect, error) {
	a, sa := x.loadS(rs1)
	b, sb := x.loadS(rs2)
	if sa || sb {
		x.raise(FlagNV)
	}
	return x.storeS(rd, minMax(a, b, wantMax))
}

func (x *rvExec) FminS(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.minMaxS(rd, rs1, rs2, false)
}

func (x *rvExec) FmaxS(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.minMaxS(rd, rs1, rs2, true)
}

// Single-precision conversions and moves.

func (x *rvExec) cvtFromS(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode, signed bool, n uint) (Effect, error) {
	mode, err := x.rounding(rm)
	if err != nil {
		return Effect{}, err
	}
	a, _ := x.loadS(rs1)
	if signed {
		return x.set(rd, x.toSigned(float64(a), mode, n))
	}
	return x.set(rd, x.toUnsigned(float64(a), mode, n))
}

func (x *rvExec) FcvtWS(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromS(rd, rs1, rm, true, 32)
}

func (x *rvExec) FcvtWuS(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromS(rd, rs1, rm, false, 32)
}

func (x *rvExec) FcvtLS(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromS(rd, rs1, rm, true, 64)
}

func (x *rvExec) FcvtLuS(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromS(rd, rs1, rm, false, 64)
}

// FmvXW copies the low 32 bits unchanged, sign-extended.
func (x *rvExec) FmvXW(rd riscv.Reg, rs1 riscv.FReg) (Effect, error) {
	return x.setW(rd, x.regs.F[rs1])
}

func (x *rvExec) FclassS(rd riscv.Reg, rs1 riscv.FReg) (Effect, error) {
	b := x.sBits(rs1)
	exp, mant := b>>23&0xff, b&0x7fffff
	return x.set(rd, classify(b&sign32 != 0, exp == 0xff, exp == 0, mant == 0, b&0x400000 != 0))
}

// FeqS is a quiet comparison: only signaling NaNs raise NV.
func (x *rvExec) FeqS(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	a, sa := x.loadS(rs1)
	b, sb := x.loadS(rs2)
	if sa || sb {
		x.raise(FlagNV)
	}
	return x.set(rd, flag(a == b))
}

func (x *rvExec) compareS(rd riscv.Reg, rs1, rs2 riscv.FReg, less func(a, b float32) bool) (Effect, error) {
	a, _ := x.loadS(rs1)
	b, _ := x.loadS(rs2)
	if isNaN(a) || isNaN(b) {
		x.raise(FlagNV)
		return x.set(rd, 0)
	}
	return x.set(rd, flag(less(a, b)))
}

func (x *rvExec) FltS(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.compareS(rd, rs1, rs2, func(a, b float32) bool { return a < b })
}

func (x *rvExec) FleS(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.compareS(rd, rs1, rs2, func(a, b float32) bool { return a <= b })
}

func (x *rvExec) cvtToS(rd riscv.FReg, v uint64, rm riscv.RoundingMode, signed bool) (Effect, error) {
	mode, err := x.rounding(rm)
	if err != nil {
		return Effect{}, err
	}
	return x.storeS(rd, float32(x.fromInt(v, signed, 24, mode)))
}

func (x *rvExec) FcvtSW(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToS(rd, sext32(x.r(rs1)), rm, true)
}

func (x *rvExec) FcvtSWu(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToS(rd, x.r(rs1)&0xffffffff, rm, false)
}

func (x *rvExec) FcvtSL(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToS(rd, x.r(rs1), rm, true)
}

func (x *rvExec) FcvtSLu(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToS(rd, x.r(rs1), rm, false)
}

func (x *rvExec) FmvWX(rd riscv.FReg, rs1 riscv.Reg) (Effect, error) {
	x.setSBits(rd, uint32(x.r(rs1)))
	return Effect{}, nil
}

// FcvtSD narrows with round-to-nearest-even.
func (x *rvExec) FcvtSD(rd, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, signaling := x.loadD(rs1)
	r := float32(a)
	switch {
	case signaling:
		x.raise(FlagNV)
	case isNaN(a):
	case isInf(r) && !isInf(a):
		x.raise(FlagOF | FlagNX)
	case float64(r) != a:
		x.raise(FlagNX)
	}
	return x.storeS(rd, r)
}

// Double-precision arithmetic.

func (x *rvExec) fmaD(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode, negProduct, negAddend bool) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, sa := x.loadD(rs1)
	b, sb := x.loadD(rs2)
	c, sc := x.loadD(rs3)
	r, flags := fused(a, b, c, negProduct, negAddend, sa || sb || sc)
	x.raise(flags)
	return x.storeD(rd, r)
}

func (x *rvExec) FmaddD(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaD(rd, rs1, rs2, rs3, rm, false, false)
}

func (x *rvExec) FmsubD(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaD(rd, rs1, rs2, rs3, rm, false, true)
}

func (x *rvExec) FnmsubD(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaD(rd, rs1, rs2, rs3, rm, true, false)
}

func (x *rvExec) FnmaddD(rd, rs1, rs2, rs3 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.fmaD(rd, rs1, rs2, rs3, rm, true, true)
}

func (x *rvExec) opD(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode, divide bool, op func(a, b float64) float64) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, sa := x.loadD(rs1)
	b, sb := x.loadD(rs2)
	r, flags := arith(op, a, b, sa || sb, divide)
	x.raise(flags)
	return x.storeD(rd, r)
}

func (x *rvExec) FaddD(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opD(rd, rs1, rs2, rm, false, func(a, b float64) float64 { return a + b })
}

func (x *rvExec) FsubD(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opD(rd, rs1, rs2, rm, false, func(a, b float64) float64 { return a - b })
}

func (x *rvExec) FmulD(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opD(rd, rs1, rs2, rm, false, func(a, b float64) float64 { return a * b })
}

func (x *rvExec) FdivD(rd, rs1, rs2 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.opD(rd, rs1, rs2, rm, true, func(a, b float64) float64 { return a / b })
}

func (x *rvExec) FsqrtD(rd, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, signaling := x.loadD(rs1)
	if signaling || a < 0 {
		x.raise(FlagNV)
	}
	return x.storeD(rd, math.Sqrt(a))
}

func (x *rvExec) FsgnjD(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.regs.F[rd] = x.regs.F[rs1]&^sign64 | x.regs.F[rs2]&sign64
	return Effect{}, nil
}

func (x *rvExec) FsgnjnD(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.regs.F[rd] = x.regs.F[rs1]&^sign64 | ^x.regs.F[rs2]&sign64
	return Effect{}, nil
}

func (x *rvExec) FsgnjxD(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	x.regs.F[rd] = x.regs.F[rs1] ^ x.regs.F[rs2]&sign64
	return Effect{}, nil
}

func (x *rvExec) minMaxD(rd, rs1, rs2 riscv.FReg, wantMax bool) (Effect, error) {
	a, sa := x.loadD(rs1)
	b, sb := x.loadD(rs2)
	if sa || sb {
		x.raise(FlagNV)
	}
	return x.storeD(rd, minMax(a, b, wantMax))
}

func (x *rvExec) FminD(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.minMaxD(rd, rs1, rs2, false)
}

func (x *rvExec) FmaxD(rd, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.minMaxD(rd, rs1, rs2, true)
}

// Double-precision conversions and moves.

func (x *rvExec) cvtFromD(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode, signed bool, n uint) (Effect, error) {
	mode, err := x.rounding(rm)
	if err != nil {
		return Effect{}, err
	}
	a, _ := x.loadD(rs1)
	if signed {
		return x.set(rd, x.toSigned(a, mode, n))
	}
	return x.set(rd, x.toUnsigned(a, mode, n))
}

func (x *rvExec) FcvtWD(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromD(rd, rs1, rm, true, 32)
}

func (x *rvExec) FcvtWuD(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromD(rd, rs1, rm, false, 32)
}

func (x *rvExec) FcvtLD(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromD(rd, rs1, rm, true, 64)
}

func (x *rvExec) FcvtLuD(rd riscv.Reg, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtFromD(rd, rs1, rm, false, 64)
}

func (x *rvExec) FmvXD(rd riscv.Reg, rs1 riscv.FReg) (Effect, error) {
	return x.set(rd, x.regs.F[rs1])
}

func (x *rvExec) FclassD(rd riscv.Reg, rs1 riscv.FReg) (Effect, error) {
	b := x.regs.F[rs1]
	exp, mant := b>>52&0x7ff, b&0xfffffffffffff
	return x.set(rd, classify(b&sign64 != 0, exp == 0x7ff, exp == 0, mant == 0, b&0x8000000000000 != 0))
}

func (x *rvExec) FeqD(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	a, sa := x.loadD(rs1)
	b, sb := x.loadD(rs2)
	if sa || sb {
		x.raise(FlagNV)
	}
	return x.set(rd, flag(a == b))
}

func (x *rvExec) compareD(rd riscv.Reg, rs1, rs2 riscv.FReg, less func(a, b float64) bool) (Effect, error) {
	a, _ := x.loadD(rs1)
	b, _ := x.loadD(rs2)
	if isNaN(a) || isNaN(b) {
		x.raise(FlagNV)
		return x.set(rd, 0)
	}
	return x.set(rd, flag(less(a, b)))
}

func (x *rvExec) FltD(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.compareD(rd, rs1, rs2, func(a, b float64) bool { return a < b })
}

func (x *rvExec) FleD(rd riscv.Reg, rs1, rs2 riscv.FReg) (Effect, error) {
	return x.compareD(rd, rs1, rs2, func(a, b float64) bool { return a <= b })
}

func (x *rvExec) cvtToD(rd riscv.FReg, v uint64, rm riscv.RoundingMode, signed bool) (Effect, error) {
	mode, err := x.rounding(rm)
	if err != nil {
		return Effect{}, err
	}
	return x.storeD(rd, x.fromInt(v, signed, 53, mode))
}

func (x *rvExec) FcvtDW(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToD(rd, sext32(x.r(rs1)), rm, true)
}

func (x *rvExec) FcvtDWu(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToD(rd, x.r(rs1)&0xffffffff, rm, false)
}

func (x *rvExec) FcvtDL(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToD(rd, x.r(rs1), rm, true)
}

func (x *rvExec) FcvtDLu(rd riscv.FReg, rs1 riscv.Reg, rm riscv.RoundingMode) (Effect, error) {
	return x.cvtToD(rd, x.r(rs1), rm, false)
}

func (x *rvExec) FmvDX(rd riscv.FReg, rs1 riscv.Reg) (Effect, error) {
	x.regs.F[rd] = x.r(rs1)
	return Effect{}, nil
}

// FcvtDS widens exactly.
func (x *rvExec) FcvtDS(rd, rs1 riscv.FReg, rm riscv.RoundingMode) (Effect, error) {
	if _, err := x.rounding(rm); err != nil {
		return Effect{}, err
	}
	a, signaling := x.loadS(rs1)
	if signaling {
		x.raise(FlagNV)
	}
	return x.storeD(rd, float64(a))
}
