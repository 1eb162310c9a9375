package riscv_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/riscv"
)

var _ = Describe("Registers", func() {
	It("should map prime indices onto x8..x15", func() {
		Expect(riscv.RegFromPrime(0)).To(Equal(riscv.X8))
		Expect(riscv.RegFromPrime(7)).To(Equal(riscv.X15))
		Expect(riscv.FRegFromPrime(2)).To(Equal(riscv.F10))

		k, ok := riscv.A0.Prime()
		Expect(ok).To(BeTrue())
		Expect(k).To(Equal(uint32(2)))

		_, ok = riscv.RA.Prime()
		Expect(ok).To(BeFalse())
	})

	It("should panic on out-of-range indices", func() {
		Expect(func() { riscv.NewReg(32) }).To(Panic())
		Expect(func() { riscv.NewFReg(32) }).To(Panic())
		Expect(func() { riscv.RegFromPrime(8) }).To(Panic())
		Expect(func() { riscv.FRegFromPrime(8) }).To(Panic())
	})

	It("should alias every integer register by its ABI name", func() {
		for _, r := range []riscv.Reg{
			riscv.Zero, riscv.RA, riscv.SP, riscv.GP, riscv.TP, riscv.T0, riscv.T1, riscv.T2,
			riscv.S0, riscv.S1, riscv.A0, riscv.A1, riscv.A2, riscv.A3, riscv.A4, riscv.A5,
			riscv.A6, riscv.A7, riscv.S2, riscv.S3, riscv.S4, riscv.S5, riscv.S6, riscv.S7,
			riscv.S8, riscv.S9, riscv.S10, riscv.S11, riscv.T3, riscv.T4, riscv.T5, riscv.T6,
		} {
			Expect(r.Valid()).To(BeTrue())
		}
		Expect(riscv.A2).To(Equal(riscv.X12))
		Expect(riscv.S11.String()).To(Equal("s11"))
		Expect(riscv.T6).To(Equal(riscv.X31))
		Expect(riscv.FP).To(Equal(riscv.S0))
	})

	It("should use ABI names", func() {
		Expect(riscv.Zero.String()).To(Equal("zero"))
		Expect(riscv.S0.String()).To(Equal("s0"))
		Expect(riscv.X31.String()).To(Equal("t6"))
		Expect(riscv.F8.String()).To(Equal("fs0"))
		Expect(riscv.X10.Numeric()).To(Equal("x10"))
		Expect(riscv.PC.Valid()).To(BeFalse())
	})

	It("should flag reserved rounding modes", func() {
		Expect(riscv.RMM.Valid()).To(BeTrue())
		Expect(riscv.DYN.Valid()).To(BeTrue())
		Expect(riscv.RoundingMode(5).Valid()).To(BeFalse())
		Expect(riscv.RoundingMode(6).Valid()).To(BeFalse())
	})
})

var _ = Describe("Ops", func() {
	It("should name every op", func() {
		for _, op := range riscv.Ops() {
			Expect(op.String()).NotTo(BeEmpty())
		}
		Expect(riscv.OpFCVTWUS.String()).To(Equal("fcvt.wu.s"))
		Expect(riscv.OpCADDI4SPN.String()).To(Equal("c.addi4spn"))
	})

	It("should classify ops", func() {
		Expect(riscv.OpDIVW.Class()).To(Equal(insts.ClassDivide))
		Expect(riscv.OpCLD.Class()).To(Equal(insts.ClassLoad))
		Expect(riscv.OpFDIVD.Class()).To(Equal(insts.ClassFloatDivide))
		Expect(riscv.OpCBEQZ.Class()).To(Equal(insts.ClassBranch))
		Expect(riscv.OpCADD.Compressed()).To(BeTrue())
		Expect(riscv.OpADD.Compressed()).To(BeFalse())
	})
})

var _ = Describe("Layouts", func() {
	It("should scatter branch immediates", func() {
		b := riscv.B{Opcode: 0x63, Funct3: 0, Rs1: 10, Rs2: 11, Imm: -8}
		Expect(b.Encode()).To(Equal(uint32(0xfeb50ce3)))
		Expect(riscv.DecodeB(0xfeb50ce3)).To(Equal(b))
	})

	It("should panic on fields that do not fit", func() {
		Expect(func() { riscv.I{Imm: 4096}.Encode() }).To(Panic())
		Expect(func() { riscv.B{Imm: 3}.Encode() }).To(Panic())
		Expect(func() { riscv.J{Imm: 1 << 21}.Encode() }).To(Panic())
	})
})
