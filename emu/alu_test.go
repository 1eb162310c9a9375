package emu_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts/a64"
)

var _ = Describe("ALU", func() {
	var (
		regFile *emu.RegFile
		alu     *emu.ALU
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		alu = emu.NewALU(regFile)
	})

	DescribeTable("AddWithCarry flags",
		func(sz a64.Size, x, y uint64, carry bool, want uint64, flags emu.PSTATE) {
			Expect(alu.AddWithCarry(sz, x, y, carry, true)).To(Equal(want))
			Expect(regFile.PSTATE).To(Equal(flags))
		},
		Entry("zero", a64.X, uint64(0), uint64(0), false, uint64(0), emu.PSTATE{Z: true}),
		Entry("unsigned carry out", a64.X, ^uint64(0), uint64(1), false, uint64(0), emu.PSTATE{Z: true, C: true}),
		Entry("signed overflow", a64.X, uint64(1<<63-1), uint64(1), false, uint64(1<<63), emu.PSTATE{N: true, V: true}),
		Entry("32-bit carry", a64.W, uint64(0xffffffff), uint64(1), false, uint64(0), emu.PSTATE{Z: true, C: true}),
		Entry("32-bit overflow", a64.W, uint64(0x7fffffff), uint64(0), true, uint64(0x80000000), emu.PSTATE{N: true, V: true}),
	)

	It("should set carry on subtraction without borrow", func() {
		Expect(alu.Sub(a64.X, 5, 5, true)).To(BeZero())
		Expect(regFile.PSTATE).To(Equal(emu.PSTATE{Z: true, C: true}))
	})

	It("should clear C and V for logical results", func() {
		regFile.PSTATE = emu.PSTATE{C: true, V: true}
		alu.Logic(a64.W, 0x80000000)
		Expect(regFile.PSTATE).To(Equal(emu.PSTATE{N: true}))
	})

	DescribeTable("Shift",
		func(sz a64.Size, v uint64, shift a64.ShiftType, amount uint8, want uint64) {
			Expect(emu.Shift(sz, v, shift, amount)).To(Equal(want))
		},
		Entry("lsl drops high bits at 32", a64.W, uint64(0x80000001), a64.ShiftLSL, uint8(1), uint64(2)),
		Entry("asr at 32", a64.W, uint64(0x80000000), a64.ShiftASR, uint8(4), uint64(0xf8000000)),
		Entry("asr at 64", a64.X, uint64(1<<63), a64.ShiftASR, uint8(63), ^uint64(0)),
		Entry("ror at 32", a64.W, uint64(1), a64.ShiftROR, uint8(1), uint64(0x80000000)),
		Entry("amount wraps", a64.X, uint64(1), a64.ShiftLSL, uint8(65), uint64(2)),
	)

	DescribeTable("Bitfield",
		func(sz a64.Size, src, dst uint64, immr, imms uint8, signed, insert bool, want uint64) {
			Expect(emu.Bitfield(sz, src, dst, immr, imms, signed, insert)).To(Equal(want))
		},
		Entry("ubfx", a64.X, uint64(0xabcd), uint64(0), uint8(4), uint8(11), false, false, uint64(0xbc)),
		Entry("sbfx", a64.X, uint64(0x80), uint64(0), uint8(0), uint8(7), true, false, ^uint64(0x7f)),
		Entry("lsl alias", a64.W, uint64(0x1), uint64(0), uint8(28), uint8(3), false, false, uint64(0x10)),
		Entry("bfi", a64.X, uint64(0xf), uint64(0xff00), uint8(60), uint8(3), false, true, uint64(0xfff0)),
		Entry("sxtw", a64.X, uint64(0xffffffff), uint64(0), uint8(0), uint8(31), true, false, ^uint64(0)),
	)

	It("should extract across a register pair", func() {
		Expect(emu.Extract(a64.X, 0x1, 0x8000000000000000, 63)).To(Equal(uint64(3)))
		Expect(emu.Extract(a64.W, 0xab, 0x12345678, 8)).To(Equal(uint64(0xab123456)))
	})

	It("should count leading sign bits", func() {
		Expect(emu.CountLeadingSign(a64.X, 0)).To(Equal(uint64(63)))
		Expect(emu.CountLeadingSign(a64.X, ^uint64(0))).To(Equal(uint64(63)))
		Expect(emu.CountLeadingSign(a64.W, 0x00ffffff)).To(Equal(uint64(7)))
	})

	It("should reverse bytes within containers", func() {
		Expect(emu.ReverseBytesIn(a64.X, 0x0102030405060708, 16)).To(Equal(uint64(0x0201040306050807)))
		Expect(emu.ReverseBytesIn(a64.X, 0x0102030405060708, 32)).To(Equal(uint64(0x0403020108070605)))
		Expect(emu.ReverseBytesIn(a64.W, 0x01020304, 64)).To(Equal(uint64(0x04030201)))
	})

	It("should extend and shift register operands", func() {
		Expect(emu.ExtendReg(0xff, a64.ExtendSXTB, 2)).To(Equal(^uint64(3)))
		Expect(emu.ExtendReg(0x1ff, a64.ExtendUXTB, 0)).To(Equal(uint64(0xff)))
	})
})

func TestALUProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("signed high multiply matches big integers", prop.ForAll(
		func(x, y int64) bool {
			p := new(big.Int).Mul(big.NewInt(x), big.NewInt(y))
			want := new(big.Int).Rsh(p, 64).Int64()
			return emu.MulHigh(uint64(x), uint64(y), true) == uint64(want)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("mixed-sign high multiply matches big integers", prop.ForAll(
		func(x int64, y uint64) bool {
			p := new(big.Int).Mul(big.NewInt(x), new(big.Int).SetUint64(y))
			want := new(big.Int).Rsh(p, 64).Int64()
			return emu.MulHighSignedUnsigned(uint64(x), y) == uint64(want)
		},
		gen.Int64(), gen.UInt64(),
	))

	properties.Property("bit reversal is an involution", prop.ForAll(
		func(v uint64) bool {
			return emu.ReverseBits(a64.X, emu.ReverseBits(a64.X, v)) == v &&
				emu.ReverseBits(a64.W, emu.ReverseBits(a64.W, v)) == v&0xffffffff
		},
		gen.UInt64(),
	))

	properties.Property("ubfm with imms 63 is a logical right shift", prop.ForAll(
		func(v uint64, r uint8) bool {
			r %= 64
			return emu.Bitfield(a64.X, v, 0, r, 63, false, false) == v>>r
		},
		gen.UInt64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}
