package insts_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
)

var _ = Describe("Insts Package", func() {
	Describe("Arch", func() {
		It("should round-trip names", func() {
			for _, a := range []insts.Arch{insts.ArchA64, insts.ArchRV64GC} {
				parsed, err := insts.ParseArch(a.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(parsed).To(Equal(a))
			}
		})

		It("should accept aliases", func() {
			a, err := insts.ParseArch("AArch64")
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(insts.ArchA64))
		})

		It("should reject unknown names", func() {
			_, err := insts.ParseArch("mips")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Errors", func() {
		It("should classify decode errors", func() {
			err := insts.Unallocated(insts.ArchA64, 0x12345678, "logical immediate")
			Expect(insts.IsUnallocated(err)).To(BeTrue())
			Expect(insts.IsUnimplemented(err)).To(BeFalse())
			Expect(insts.IsHandler(err)).To(BeFalse())
			Expect(err.Error()).To(ContainSubstring("0x12345678"))
			Expect(err.Error()).To(ContainSubstring("logical immediate"))
		})

		It("should preserve handler errors", func() {
			cause := errors.New("out of fuel")
			var err error = &insts.HandlerError{Arch: insts.ArchRV64GC, Word: 0x13, Op: "addi", Err: cause}
			wrapped := fmt.Errorf("step: %w", err)

			Expect(insts.IsHandler(wrapped)).To(BeTrue())
			Expect(errors.Is(wrapped, cause)).To(BeTrue())
			Expect(insts.IsUnallocated(wrapped)).To(BeFalse())
		})
	})

	Describe("Table", func() {
		decodeName := func(name string) func(uint32) (string, error) {
			return func(uint32) (string, error) { return name, nil }
		}

		It("should dispatch on mask and match", func() {
			t := insts.NewTable(insts.ArchRV64GC, "major opcode",
				insts.Rule[uint32, string]{Name: "op-imm", Mask: 0x7f, Match: 0x13, Decode: decodeName("op-imm")},
				insts.Rule[uint32, string]{Name: "op", Mask: 0x7f, Match: 0x33, Decode: decodeName("op")},
			)

			r, err := t.Lookup(0x00000013)
			Expect(err).NotTo(HaveOccurred())
			Expect(r).To(Equal("op-imm"))
			Expect(t.Match(0x00b50533)).To(Equal("op"))
			Expect(t.Len()).To(Equal(2))
		})

		It("should report unclaimed words as unallocated", func() {
			t := insts.NewTable(insts.ArchRV64GC, "major opcode",
				insts.Rule[uint32, string]{Name: "op-imm", Mask: 0x7f, Match: 0x13, Decode: decodeName("op-imm")},
			)

			_, err := t.Lookup(0x0000007f)
			Expect(insts.IsUnallocated(err)).To(BeTrue())
			Expect(t.Match(0x7f)).To(BeEmpty())
		})

		It("should reject duplicated arms", func() {
			Expect(func() {
				insts.NewTable(insts.ArchRV64GC, "op-fp",
					insts.Rule[uint32, string]{Name: "fsub.s", Mask: 0xfe000000, Match: 0x08000000, Decode: decodeName("a")},
					insts.Rule[uint32, string]{Name: "fsub.d", Mask: 0xfe000000, Match: 0x08000000, Decode: decodeName("b")},
				)
			}).To(Panic())
		})

		It("should reject overlapping arms", func() {
			Expect(func() {
				insts.NewTable(insts.ArchA64, "top",
					insts.Rule[uint32, string]{Name: "wide", Mask: 0x0c000000, Match: 0x08000000, Decode: decodeName("a")},
					insts.Rule[uint32, string]{Name: "narrow", Mask: 0x0e000000, Match: 0x0a000000, Decode: decodeName("b")},
				)
			}).To(Panic())
		})

		It("should reject match bits outside the mask", func() {
			Expect(func() {
				insts.NewTable(insts.ArchA64, "top",
					insts.Rule[uint32, string]{Name: "bad", Mask: 0x0f, Match: 0x10, Decode: decodeName("a")},
				)
			}).To(Panic())
		})
	})

	Describe("Class", func() {
		It("should name every class", func() {
			for c := insts.ClassOther; c < insts.NumClasses; c++ {
				Expect(c.String()).NotTo(BeEmpty())
				Expect(c.String()).NotTo(HavePrefix("class("))
			}
		})
	})
})
