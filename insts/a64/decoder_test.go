package a64_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
)

func decode(word uint32) a64.Inst {
	inst, err := a64.Decode(word)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "%#08x", word)
	return inst
}

var _ = Describe("Decoder", func() {
	Describe("Data Processing (Immediate) - Add/Sub", func() {
		// ADD X0, X1, #42    -> 0x9100A820
		// Encoding: sf=1, op=0, S=0, 100010, sh=0, imm12=42, Rn=1, Rd=0
		It("should decode ADD X0, X1, #42", func() {
			inst := decode(0x9100A820)

			Expect(inst.Op).To(Equal(a64.OpADDImm))
			Expect(inst.Size).To(Equal(a64.X))
			Expect(inst.Rd).To(Equal(a64.X0))
			Expect(inst.Rn).To(Equal(a64.X1))
			Expect(inst.Imm).To(Equal(uint64(42)))
		})

		It("should decode ADD W0, W1, #100", func() {
			inst := decode(0x11019020)

			Expect(inst.Op).To(Equal(a64.OpADDImm))
			Expect(inst.Size).To(Equal(a64.W))
			Expect(inst.Imm).To(Equal(uint64(100)))
		})

		It("should decode ADD X0, X1, #1, LSL #12", func() {
			inst := decode(0x91400420)

			Expect(inst.Imm).To(Equal(uint64(1)))
			Expect(inst.Amount).To(Equal(uint8(12)))
		})

		It("should decode SP operands of SUB and ZR destinations of SUBS", func() {
			sub := decode(0xD10043FF)
			Expect(sub.Op).To(Equal(a64.OpSUBImm))
			Expect(sub.Rd).To(Equal(a64.SP))
			Expect(sub.Rn).To(Equal(a64.SP))

			subs := decode(0xF100001F)
			Expect(subs.Op).To(Equal(a64.OpSUBSImm))
			Expect(subs.Rd).To(Equal(a64.ZR))
		})
	})

	Describe("Data Processing (Register)", func() {
		It("should decode ADD X0, X1, X2", func() {
			inst := decode(0x8B020020)

			Expect(inst.Op).To(Equal(a64.OpADD))
			Expect(inst.Rm).To(Equal(a64.X2))
			Expect(inst.Shift).To(Equal(a64.ShiftLSL))
		})

		It("should decode the logical group", func() {
			Expect(decode(0x8A020020).Op).To(Equal(a64.OpAND))
			Expect(decode(0xEA0800E6).Op).To(Equal(a64.OpANDS))
			Expect(decode(0xAA0B0149).Op).To(Equal(a64.OpORR))
			Expect(decode(0x4A140272).Op).To(Equal(a64.OpEOR))
			Expect(decode(0xAA2B0149).Op).To(Equal(a64.OpORN))
		})

		It("should treat register 31 as ZR in shifted forms and SP in extended forms", func() {
			cmp := decode(0xEB01001F)
			Expect(cmp.Op).To(Equal(a64.OpSUBS))
			Expect(cmp.Rd).To(Equal(a64.ZR))

			ext := decode(0x8B214BE0)
			Expect(ext.Op).To(Equal(a64.OpADDExt))
			Expect(ext.Rn).To(Equal(a64.SP))
			Expect(ext.Extend).To(Equal(a64.ExtendUXTW))
			Expect(ext.Amount).To(Equal(uint8(2)))
		})

		It("should decode both REV widths", func() {
			x := decode(0xDAC00C20)
			Expect(x.Op).To(Equal(a64.OpREV))
			Expect(x.Size).To(Equal(a64.X))

			w := decode(0x5AC00820)
			Expect(w.Op).To(Equal(a64.OpREV))
			Expect(w.Size).To(Equal(a64.W))

			Expect(decode(0xDAC00820).Op).To(Equal(a64.OpREV32))
		})

		It("should decode multiply, divide and select", func() {
			madd := decode(0x9B020C20)
			Expect(madd.Op).To(Equal(a64.OpMADD))
			Expect(madd.Ra).To(Equal(a64.X3))

			Expect(decode(0x1AC20820).Op).To(Equal(a64.OpUDIV))
			Expect(decode(0x9BC27C20).Op).To(Equal(a64.OpUMULH))

			csel := decode(0x9A820020)
			Expect(csel.Op).To(Equal(a64.OpCSEL))
			Expect(csel.Cond).To(Equal(a64.CondEQ))
		})
	})

	Describe("Logical immediates", func() {
		It("should hand the visitor the decoded mask", func() {
			inst := decode(0x92401C20)
			Expect(inst.Op).To(Equal(a64.OpANDImm))
			Expect(inst.Imm).To(Equal(uint64(0xff)))
		})

		It("should replicate small elements across 32 bits", func() {
			inst := decode(0x3200F3E0)
			Expect(inst.Op).To(Equal(a64.OpORRImm))
			Expect(inst.Rn).To(Equal(a64.ZR))
			Expect(inst.Imm).To(Equal(uint64(0x55555555)))
		})

		It("should ignore rotation bits above the element size", func() {
			inst := decode(0x9219D001)
			Expect(inst.Op).To(Equal(a64.OpANDImm))
			Expect(inst.Rd).To(Equal(a64.X1))
			Expect(inst.Imm).To(Equal(uint64(0x8f8f8f8f8f8f8f8f)))
			Expect(a64.Encode(inst)).To(Equal(uint32(0x9219D001)))

			inst = decode(0x92200000)
			Expect(inst.Imm).To(Equal(uint64(0x0000000100000001)))
			Expect(a64.Encode(inst)).To(Equal(uint32(0x92200000)))
		})

		It("should encode a built instruction with the canonical rotation", func() {
			Expect(a64.Encode(a64.Inst{
				Op: a64.OpANDImm, Size: a64.X, Rd: a64.X1, Rn: a64.X0, Imm: 0x8f8f8f8f8f8f8f8f,
			})).To(Equal(uint32(0x9201D001)))
		})
	})

	Describe("Tag arithmetic", func() {
		It("should decode SUBG with a clear o2 bit", func() {
			inst := decode(0xD1800000)
			Expect(inst.Op).To(Equal(a64.OpSUBG))
			Expect(a64.Encode(inst)).To(Equal(uint32(0xD1800000)))
		})
	})

	Describe("Branch Instructions", func() {
		It("should decode B #0x100", func() {
			inst := decode(0x14000040)
			Expect(inst.Op).To(Equal(a64.OpB))
			Expect(inst.Offset).To(Equal(int64(0x100)))
		})

		It("should decode B #-0x8 (backward branch)", func() {
			Expect(decode(0x17FFFFFE).Offset).To(Equal(int64(-8)))
		})

		It("should decode BL #0x200", func() {
			inst := decode(0x94000080)
			Expect(inst.Op).To(Equal(a64.OpBL))
			Expect(inst.Offset).To(Equal(int64(0x200)))
		})

		It("should decode conditional branches", func() {
			beq := decode(0x54000080)
			Expect(beq.Op).To(Equal(a64.OpBCond))
			Expect(beq.Cond).To(Equal(a64.CondEQ))
			Expect(beq.Offset).To(Equal(int64(0x10)))

			Expect(decode(0x54000101).Cond).To(Equal(a64.CondNE))
		})

		It("should decode compare and test branches", func() {
			cbz := decode(0xB4000040)
			Expect(cbz.Op).To(Equal(a64.OpCBZ))
			Expect(cbz.Size).To(Equal(a64.X))
			Expect(cbz.Offset).To(Equal(int64(8)))

			tbz := decode(0x36180080)
			Expect(tbz.Op).To(Equal(a64.OpTBZ))
			Expect(tbz.Imm).To(Equal(uint64(3)))
			Expect(tbz.Offset).To(Equal(int64(16)))
		})

		It("should decode RET and SVC", func() {
			ret := decode(0xD65F03C0)
			Expect(ret.Op).To(Equal(a64.OpRET))
			Expect(ret.Rn).To(Equal(a64.LR))

			svc := decode(0xD4000001)
			Expect(svc.Op).To(Equal(a64.OpSVC))
			Expect(svc.Imm).To(Equal(uint64(0)))
		})

		It("should name hints and fall back to HINT", func() {
			Expect(decode(0xD503201F).Op).To(Equal(a64.OpNOP))
			Expect(decode(0xD503207F).Op).To(Equal(a64.OpWFI))

			bti := decode(0xD503241F)
			Expect(bti.Op).To(Equal(a64.OpHINT))
			Expect(bti.Imm).To(Equal(uint64(32)))
		})

		It("should decode UDF from the reserved space", func() {
			inst := decode(0x00000042)
			Expect(inst.Op).To(Equal(a64.OpUDF))
			Expect(inst.Imm).To(Equal(uint64(0x42)))
		})
	})

	DescribeTable("assembly text",
		func(word uint32, text string) {
			Expect(decode(word).String()).To(Equal(text))
		},
		Entry("add immediate", uint32(0x9100A820), "add x0, x1, #0x2a"),
		Entry("shifted immediate", uint32(0x91400420), "add x0, x1, #0x1, lsl #12"),
		Entry("stack adjust", uint32(0xD10043FF), "sub sp, sp, #0x10"),
		Entry("compare", uint32(0xEB01001F), "subs xzr, x0, x1"),
		Entry("extended", uint32(0x8B214BE0), "add x0, sp, w1, uxtw #2"),
		Entry("logical immediate", uint32(0x92401C20), "and x0, x1, #0xff"),
		Entry("move wide", uint32(0xD2A24680), "movz x0, #0x1234, lsl #16"),
		Entry("bitfield", uint32(0xD344FC20), "ubfm x0, x1, #4, #63"),
		Entry("multiply add", uint32(0x9B020C20), "madd x0, x1, x2, x3"),
		Entry("long multiply", uint32(0x9B220C20), "smaddl x0, w1, w2, x3"),
		Entry("select", uint32(0x9A820020), "csel x0, x1, x2, eq"),
		Entry("branch back", uint32(0x17FFFFFE), "b #-0x8"),
		Entry("conditional branch", uint32(0x54000101), "b.ne #0x20"),
		Entry("test branch", uint32(0x36180080), "tbz w0, #3, #0x10"),
		Entry("return", uint32(0xD65F03C0), "ret"),
		Entry("return elsewhere", uint32(0xD65F0200), "ret x16"),
		Entry("supervisor call", uint32(0xD4000001), "svc #0x0"),
		Entry("nop", uint32(0xD503201F), "nop"),
		Entry("crc", uint32(0x9AC24C20), "crc32x w0, w1, x2"),
	)

	DescribeTable("unallocated encodings",
		func(word uint32) {
			_, err := a64.Decode(word)
			Expect(insts.IsUnallocated(err)).To(BeTrue(), "%#08x: %v", word, err)
		},
		Entry("32-bit logical immediate with N set", uint32(0x12400000)),
		Entry("all-ones bitmask element", uint32(0x9240FC00)),
		Entry("tag arithmetic with o2 set", uint32(0xD1C00000)),
		Entry("move wide opc 01", uint32(0x32800000)),
		Entry("32-bit move wide with hw 2", uint32(0x12C00000)),
		Entry("bitfield N differs from sf", uint32(0x93000000)),
		Entry("add/sub with ROR shift", uint32(0x8BC20020)),
		Entry("extended with opt set", uint32(0x8B600000)),
		Entry("extend shift above 4", uint32(0x8B201400)),
		Entry("conditional compare without S", uint32(0x5A400000)),
		Entry("conditional select with S", uint32(0x3A800000)),
		Entry("32-bit long multiply", uint32(0x1B200000)),
		Entry("high multiply with Ra", uint32(0x9B400000)),
		Entry("CRC32X with sf clear", uint32(0x1AC04C00)),
		Entry("conditional branch o1", uint32(0x55000000)),
		Entry("op0 0001", uint32(0x02000000)),
		Entry("reserved with op1 set", uint32(0x00010000)),
	)

	DescribeTable("unimplemented classes",
		func(word uint32) {
			_, err := a64.Decode(word)
			Expect(insts.IsUnimplemented(err)).To(BeTrue(), "%#08x: %v", word, err)
		},
		Entry("SME", uint32(0x80000000)),
		Entry("SVE", uint32(0x04000000)),
		Entry("load", uint32(0xF9400020)),
		Entry("floating point add", uint32(0x1E602820)),
		Entry("system register read", uint32(0xD53B4200)),
		Entry("authenticated branch", uint32(0xD71F0800)),
	)

	Describe("DecodeBytes", func() {
		It("should read little-endian words", func() {
			inst, n, err := a64.DecodeBytes([]byte{0xc0, 0x03, 0x5f, 0xd6})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(inst.Op).To(Equal(a64.OpRET))
		})

		It("should report truncation", func() {
			_, n, err := a64.DecodeBytes([]byte{0xc0, 0x03})
			Expect(insts.IsTruncated(err)).To(BeTrue())
			Expect(n).To(Equal(4))
		})
	})

	Describe("Disassemble", func() {
		errStop := errors.New("stop")

		It("should wrap visitor errors", func() {
			v := a64.InstFunc[int](func(a64.Inst) (int, error) { return 0, errStop })
			_, err := a64.Disassemble[int](v, 0xD503201F)

			Expect(errors.Is(err, errStop)).To(BeTrue())
			var h *insts.HandlerError
			Expect(errors.As(err, &h)).To(BeTrue())
			Expect(h.Op).To(Equal("nop"))
			Expect(h.Arch).To(Equal(insts.ArchA64))
		})

		It("should run independent visitors over the same word", func() {
			count := 0
			counter := a64.InstFunc[struct{}](func(a64.Inst) (struct{}, error) {
				count++
				return struct{}{}, nil
			})

			word := uint32(0x9100A820)
			_, err := a64.Disassemble[struct{}](counter, word)
			Expect(err).NotTo(HaveOccurred())

			text, err := a64.Disassemble[string](a64.Printer{}, word)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("add x0, x1, #0x2a"))

			back, err := a64.Disassemble[uint32](a64.Assembler{}, word)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(word))
			Expect(count).To(Equal(1))
		})

		It("should rebuild the decoded instruction through InstFunc", func() {
			identity := a64.InstFunc[a64.Inst](func(i a64.Inst) (a64.Inst, error) { return i, nil })
			for _, word := range []uint32{
				0x9100A820, 0x8B214BE0, 0x92401C20, 0x9B220C20, 0x9BC27C20,
				0x36180080, 0xD65F03C0, 0xDAC00C20, 0xDAC123E1, 0xBA008422,
			} {
				got, err := a64.Disassemble[a64.Inst](identity, word)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(decode(word)), "%#08x", word)
			}
		})
	})
})
