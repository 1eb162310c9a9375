package a64_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts/a64"
)

var _ = Describe("Assembler", func() {
	a := a64.Assembler{}

	It("should encode the reference words", func() {
		Expect(a.AddImm(a64.X, a64.X0, a64.X1, 42, 0)).To(Equal(uint32(0x9100A820)))
		Expect(a.AddImm(a64.W, a64.X0, a64.X1, 100, 0)).To(Equal(uint32(0x11019020)))
		Expect(a.SubImm(a64.X, a64.SP, a64.SP, 16, 0)).To(Equal(uint32(0xD10043FF)))
		Expect(a.Add(a64.X, a64.X0, a64.X1, a64.X2, a64.ShiftLSL, 0)).To(Equal(uint32(0x8B020020)))
		Expect(a.B(0x100)).To(Equal(uint32(0x14000040)))
		Expect(a.B(-8)).To(Equal(uint32(0x17FFFFFE)))
		Expect(a.BCond(a64.CondNE, 0x20)).To(Equal(uint32(0x54000101)))
	})

	It("should encode immediates and special forms", func() {
		Expect(a.AndImm(a64.X, a64.X0, a64.X1, 0xff)).To(Equal(uint32(0x92401C20)))
		Expect(a.OrrImm(a64.W, a64.X0, a64.ZR, 0x55555555)).To(Equal(uint32(0x3200F3E0)))
		Expect(a.Movz(a64.X, a64.X0, 0x1234, 16)).To(Equal(uint32(0xD2A24680)))
		Expect(a.Rev(a64.X, a64.X0, a64.X1)).To(Equal(uint32(0xDAC00C20)))
		Expect(a.Rev(a64.W, a64.X0, a64.X1)).To(Equal(uint32(0x5AC00820)))
		Expect(a.Tbz(a64.X0, 3, 16)).To(Equal(uint32(0x36180080)))
		Expect(a.Ret(a64.LR)).To(Equal(uint32(0xD65F03C0)))
		Expect(a.Udf(0x42)).To(Equal(uint32(0x42)))
		Expect(a.Hint(32)).To(Equal(uint32(0xD503241F)))
	})

	DescribeTable("invalid operands",
		func(enc func() (uint32, error)) {
			_, err := enc()
			Expect(errors.Is(err, a64.ErrOperand)).To(BeTrue(), "%v", err)
		},
		Entry("12-bit immediate overflow", func() (uint32, error) { return a.AddImm(a64.X, a64.X0, a64.X0, 4096, 0) }),
		Entry("immediate shift other than 12", func() (uint32, error) { return a.AddImm(a64.X, a64.X0, a64.X0, 1, 4) }),
		Entry("zr where sp is encoded", func() (uint32, error) { return a.AddImm(a64.X, a64.ZR, a64.X0, 1, 0) }),
		Entry("sp where zr is encoded", func() (uint32, error) {
			return a.Add(a64.X, a64.SP, a64.X0, a64.X1, a64.ShiftLSL, 0)
		}),
		Entry("ror on add", func() (uint32, error) {
			return a.Add(a64.X, a64.X0, a64.X0, a64.X1, a64.ShiftROR, 1)
		}),
		Entry("32-bit shift of 32", func() (uint32, error) {
			return a.Orr(a64.W, a64.X0, a64.X0, a64.X1, a64.ShiftLSL, 32)
		}),
		Entry("non-bitmask immediate", func() (uint32, error) { return a.AndImm(a64.X, a64.X0, a64.X1, 5) }),
		Entry("all-ones bitmask", func() (uint32, error) { return a.AndImm(a64.W, a64.X0, a64.X1, 0xffffffff) }),
		Entry("32-bit move wide at 32", func() (uint32, error) { return a.Movz(a64.W, a64.X0, 1, 32) }),
		Entry("misaligned branch", func() (uint32, error) { return a.B(2) }),
		Entry("branch out of range", func() (uint32, error) { return a.Bl(1 << 28) }),
		Entry("test bit 64", func() (uint32, error) { return a.Tbz(a64.X0, 64, 0) }),
		Entry("named hint number", func() (uint32, error) { return a.Hint(0) }),
		Entry("32-bit rev32", func() (uint32, error) { return a.Rev32(a64.W, a64.X0, a64.X1) }),
		Entry("extend shift of 5", func() (uint32, error) {
			return a.AddExt(a64.X, a64.X0, a64.X1, a64.X2, a64.ExtendUXTX, 5)
		}),
	)
})

var _ = Describe("Bit masks", func() {
	It("should decode element patterns", func() {
		for _, c := range []struct {
			n, imms, immr uint32
			width         uint
			want          uint64
		}{
			{1, 7, 0, 64, 0xff},
			{0, 0b111100, 0, 32, 0x55555555},
			{1, 0, 1, 64, 1 << 63},
			{0, 0b100001, 1, 64, 0x8001800180018001},
			{0, 0b000001, 1, 64, 0x8000000180000001},
		} {
			mask, ok := a64.DecodeBitMasks(c.n, c.imms, c.immr, c.width)
			Expect(ok).To(BeTrue())
			Expect(mask).To(Equal(c.want))
		}
	})

	It("should ignore rotation bits above the element size", func() {
		low, ok := a64.DecodeBitMasks(0, 0b110100, 0b000001, 64)
		Expect(ok).To(BeTrue())
		high, ok := a64.DecodeBitMasks(0, 0b110100, 0b011001, 64)
		Expect(ok).To(BeTrue())
		Expect(high).To(Equal(low))
		Expect(high).To(Equal(uint64(0x8f8f8f8f8f8f8f8f)))
	})

	It("should reject reserved patterns", func() {
		_, ok := a64.DecodeBitMasks(1, 0b111111, 0, 64)
		Expect(ok).To(BeFalse())
		_, ok = a64.DecodeBitMasks(0, 0b111111, 0, 64)
		Expect(ok).To(BeFalse())
	})

	It("should encode the smallest element", func() {
		n, immr, imms, ok := a64.EncodeBitMasks(0x5555555555555555, 64)
		Expect(ok).To(BeTrue())
		Expect([]uint32{n, immr, imms}).To(Equal([]uint32{0, 0, 0b111100}))
	})
})

var _ = Describe("Registers", func() {
	It("should resolve index 31 by position", func() {
		Expect(a64.NewReg(31, true)).To(Equal(a64.SP))
		Expect(a64.NewReg(31, false)).To(Equal(a64.ZR))
		Expect(func() { a64.NewReg(32, false) }).To(Panic())
	})

	It("should name registers at both widths", func() {
		Expect(a64.X3.Name(a64.W)).To(Equal("w3"))
		Expect(a64.SP.Name(a64.W)).To(Equal("wsp"))
		Expect(a64.ZR.Name(a64.X)).To(Equal("xzr"))
		Expect(a64.LR.String()).To(Equal("x30"))
	})

	It("should invert conditions", func() {
		Expect(a64.CondEQ.Invert()).To(Equal(a64.CondNE))
		Expect(a64.CondGE.Invert()).To(Equal(a64.CondLT))
		Expect(a64.CondHI.Invert().String()).To(Equal("ls"))
	})

	It("should name and classify every op", func() {
		for _, op := range a64.Ops() {
			Expect(op.String()).NotTo(BeEmpty())
		}
		Expect(a64.OpSDIV.Class().String()).To(Equal("divide"))
		Expect(a64.OpUMULH.Class().String()).To(Equal("multiply"))
		Expect(a64.OpCBZ.Class().String()).To(Equal("branch"))
	})
})

func TestRoundTripProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 20000
	properties := gopter.NewProperties(params)

	properties.Property("decodable words re-encode to themselves", prop.ForAll(
		func(w uint32) bool {
			inst, err := a64.Decode(w)
			if err != nil {
				return true
			}
			back, err := a64.Encode(inst)
			return err == nil && back == w
		},
		gen.UInt32(),
	))

	properties.Property("bitmask immediates survive encoding", prop.ForAll(
		func(imm uint64) bool {
			n, immr, imms, ok := a64.EncodeBitMasks(imm, 64)
			if !ok {
				return true
			}
			back, ok := a64.DecodeBitMasks(n, imms, immr, 64)
			return ok && back == imm
		},
		gen.UInt64(),
	))

	properties.Property("layouts keep their fields", prop.ForAll(
		func(w uint32) bool {
			return a64.DecodePCRel(a64.DecodePCRel(w).Encode()) == a64.DecodePCRel(w) &&
				a64.DecodeAddSubImm(a64.DecodeAddSubImm(w).Encode()) == a64.DecodeAddSubImm(w) &&
				a64.DecodeAddSubImmTags(a64.DecodeAddSubImmTags(w).Encode()) == a64.DecodeAddSubImmTags(w) &&
				a64.DecodeLogicalImm(a64.DecodeLogicalImm(w).Encode()) == a64.DecodeLogicalImm(w) &&
				a64.DecodeMoveWide(a64.DecodeMoveWide(w).Encode()) == a64.DecodeMoveWide(w) &&
				a64.DecodeBitfield(a64.DecodeBitfield(w).Encode()) == a64.DecodeBitfield(w) &&
				a64.DecodeExtract(a64.DecodeExtract(w).Encode()) == a64.DecodeExtract(w) &&
				a64.DecodeDP2Src(a64.DecodeDP2Src(w).Encode()) == a64.DecodeDP2Src(w) &&
				a64.DecodeDP1Src(a64.DecodeDP1Src(w).Encode()) == a64.DecodeDP1Src(w) &&
				a64.DecodeLogicalShifted(a64.DecodeLogicalShifted(w).Encode()) == a64.DecodeLogicalShifted(w) &&
				a64.DecodeAddSubShifted(a64.DecodeAddSubShifted(w).Encode()) == a64.DecodeAddSubShifted(w) &&
				a64.DecodeAddSubExtended(a64.DecodeAddSubExtended(w).Encode()) == a64.DecodeAddSubExtended(w) &&
				a64.DecodeAddSubCarry(a64.DecodeAddSubCarry(w).Encode()) == a64.DecodeAddSubCarry(w) &&
				a64.DecodeRotateFlags(a64.DecodeRotateFlags(w).Encode()) == a64.DecodeRotateFlags(w) &&
				a64.DecodeEvalFlags(a64.DecodeEvalFlags(w).Encode()) == a64.DecodeEvalFlags(w) &&
				a64.DecodeCondCompare(a64.DecodeCondCompare(w).Encode()) == a64.DecodeCondCompare(w) &&
				a64.DecodeCondSelect(a64.DecodeCondSelect(w).Encode()) == a64.DecodeCondSelect(w) &&
				a64.DecodeDP3Src(a64.DecodeDP3Src(w).Encode()) == a64.DecodeDP3Src(w) &&
				a64.DecodeCondBranch(a64.DecodeCondBranch(w).Encode()) == a64.DecodeCondBranch(w) &&
				a64.DecodeUncondBranchImm(a64.DecodeUncondBranchImm(w).Encode()) == a64.DecodeUncondBranchImm(w) &&
				a64.DecodeCompareBranch(a64.DecodeCompareBranch(w).Encode()) == a64.DecodeCompareBranch(w) &&
				a64.DecodeTestBranch(a64.DecodeTestBranch(w).Encode()) == a64.DecodeTestBranch(w) &&
				a64.DecodeException(a64.DecodeException(w).Encode()) == a64.DecodeException(w) &&
				a64.DecodeUncondBranchReg(a64.DecodeUncondBranchReg(w).Encode()) == a64.DecodeUncondBranchReg(w) &&
				a64.DecodeHint(a64.DecodeHint(w).Encode()) == a64.DecodeHint(w)
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}
