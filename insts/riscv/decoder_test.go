package riscv_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/riscv"
)

func decode(word uint32) riscv.Inst {
	inst, err := riscv.Decode(word)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return inst
}

var _ = Describe("Decoder", func() {
	Describe("Length", func() {
		It("should treat words with both low bits set as 32-bit", func() {
			Expect(riscv.Length(0x00000013)).To(Equal(4))
			Expect(riscv.Length(0x0001)).To(Equal(2))
			Expect(riscv.Length(0x0002)).To(Equal(2))
			Expect(riscv.Length(0x0000)).To(Equal(2))
		})
	})

	Describe("32-bit words", func() {
		It("should decode the canonical nop", func() {
			inst := decode(0x00000013)
			Expect(inst).To(Equal(riscv.Inst{Op: riscv.OpADDI, Len: 4}))
			Expect(riscv.Format(inst)).To(Equal("addi zero, zero, 0"))
		})

		It("should sign-extend I immediates", func() {
			inst := decode(0xfff58513)
			Expect(inst.Op).To(Equal(riscv.OpADDI))
			Expect(inst.Rd).To(Equal(riscv.A0))
			Expect(inst.Rs1).To(Equal(riscv.A1))
			Expect(inst.Imm).To(Equal(int64(-1)))
		})

		It("should decode upper immediates as placed in the register", func() {
			inst := decode(0x12345537)
			Expect(inst.Op).To(Equal(riscv.OpLUI))
			Expect(inst.Imm).To(Equal(int64(0x12345000)))
			Expect(riscv.Format(inst)).To(Equal("lui a0, 0x12345"))
		})

		It("should decode jump and branch offsets as even byte offsets", func() {
			Expect(decode(0x001000ef).Imm).To(Equal(int64(2048)))
			Expect(decode(0xffdff06f).Imm).To(Equal(int64(-4)))

			beq := decode(0xfeb50ce3)
			Expect(beq.Op).To(Equal(riscv.OpBEQ))
			Expect(beq.Imm).To(Equal(int64(-8)))
			Expect(riscv.Format(beq)).To(Equal("beq a0, a1, -8"))

			Expect(decode(0x00051863).Imm).To(Equal(int64(16)))
		})

		It("should decode loads and stores", func() {
			Expect(riscv.Format(decode(0x00113423))).To(Equal("sd ra, 8(sp)"))
			Expect(riscv.Format(decode(0x00813083))).To(Equal("ld ra, 8(sp)"))
		})

		It("should decode shifts and the M extension", func() {
			srai := decode(0x43f55513)
			Expect(srai.Op).To(Equal(riscv.OpSRAI))
			Expect(srai.Imm).To(Equal(int64(63)))

			sraiw := decode(0x4035d51b)
			Expect(sraiw.Op).To(Equal(riscv.OpSRAIW))
			Expect(sraiw.Imm).To(Equal(int64(3)))

			Expect(decode(0x02c58533).Op).To(Equal(riscv.OpMUL))
		})

		It("should decode float operations with rounding modes", func() {
			fadd := decode(0x02b50553)
			Expect(fadd.Op).To(Equal(riscv.OpFADDD))
			Expect(fadd.FRd).To(Equal(riscv.F10))
			Expect(fadd.FRs2).To(Equal(riscv.F11))
			Expect(fadd.RM).To(Equal(riscv.RNE))
			Expect(riscv.Format(fadd)).To(Equal("fadd.d fa0, fa0, fa1, rne"))

			Expect(riscv.Format(decode(0x02b57553))).To(Equal("fadd.d fa0, fa0, fa1"))
			Expect(riscv.Format(decode(0xc2059553))).To(Equal("fcvt.w.d a0, fa1, rtz"))

			fmadd := decode(0x6ac58543)
			Expect(fmadd.Op).To(Equal(riscv.OpFMADDD))
			Expect(fmadd.FRs3).To(Equal(riscv.F13))
		})

		It("should tell FSUB.S and FSUB.D apart", func() {
			Expect(decode(0x08b50553).Op).To(Equal(riscv.OpFSUBS))
			Expect(decode(0x0ab50553).Op).To(Equal(riscv.OpFSUBD))
		})

		It("should decode CSR access", func() {
			inst := decode(0x00302573)
			Expect(inst.Op).To(Equal(riscv.OpCSRRS))
			Expect(inst.CSR).To(Equal(uint16(3)))
			Expect(riscv.Format(inst)).To(Equal("csrrs a0, fcsr, zero"))
		})

		It("should decode fences", func() {
			fence := decode(0x0ff0000f)
			Expect(fence.Op).To(Equal(riscv.OpFENCE))
			Expect(fence.Pred).To(Equal(uint8(0xf)))
			Expect(fence.Succ).To(Equal(uint8(0xf)))
			Expect(riscv.Format(fence)).To(Equal("fence iorw, iorw"))

			Expect(decode(0x0000100f).Op).To(Equal(riscv.OpFENCEI))
		})

		DescribeTable("fixed words",
			func(word uint32, op riscv.Op) {
				inst := decode(word)
				Expect(inst.Op).To(Equal(op))
				back, err := riscv.Encode(inst)
				Expect(err).NotTo(HaveOccurred())
				Expect(back).To(Equal(word))
			},
			Entry("ecall", uint32(0x00000073), riscv.OpECALL),
			Entry("ebreak", uint32(0x00100073), riscv.OpEBREAK),
			Entry("c.ebreak", uint32(0x9002), riscv.OpCEBREAK),
			Entry("c.nop", uint32(0x0001), riscv.OpCNOP),
		)

		DescribeTable("non-canonical and reserved words",
			func(word uint32) {
				_, err := riscv.Decode(word)
				Expect(insts.IsUnallocated(err)).To(BeTrue(), "%#x: %v", word, err)
			},
			Entry("fsqrt.s with rs2 set", uint32(0x58157553)),
			Entry("fence with rd set", uint32(0x0ff0008f)),
			Entry("fence.i with immediate", uint32(0x0010100f)),
			Entry("slli with funct6 bit", uint32(0x04051513)),
			Entry("reserved rounding mode", uint32(0x00b55553)),
			Entry("unknown major opcode", uint32(0x0000000b)),
			Entry("48-bit prefix", uint32(0x0000001f)),
		)

		DescribeTable("classes outside RV64GC",
			func(word uint32) {
				_, err := riscv.Decode(word)
				Expect(insts.IsUnimplemented(err)).To(BeTrue(), "%#x: %v", word, err)
			},
			Entry("AMO", uint32(0x0000202f)),
			Entry("vector arithmetic", uint32(0x00000057)),
			Entry("vector load", uint32(0x02050007)),
			Entry("mret", uint32(0x30200073)),
			Entry("wfi", uint32(0x10500073)),
		)
	})

	Describe("compressed words", func() {
		It("should map prime index 0 to x8", func() {
			inst := decode(0x4000)
			Expect(inst.Op).To(Equal(riscv.OpCLW))
			Expect(inst.Rd).To(Equal(riscv.S0))
			Expect(inst.Rs1).To(Equal(riscv.S0))
			Expect(inst.Len).To(Equal(uint8(2)))
		})

		It("should ignore the upper halfword", func() {
			Expect(decode(0xdead0001).Op).To(Equal(riscv.OpCNOP))
		})

		DescribeTable("known halfwords",
			func(word uint32, text string) {
				inst := decode(word)
				Expect(inst.Compressed()).To(BeTrue())
				Expect(riscv.Format(inst)).To(Equal(text))
			},
			Entry("c.addi4spn", uint32(0x0800), "c.addi4spn s0, sp, 16"),
			Entry("c.j back", uint32(0xbffd), "c.j -2"),
			Entry("c.j forward", uint32(0xaffd), "c.j 2046"),
			Entry("c.beqz", uint32(0xdd75), "c.beqz a0, -4"),
			Entry("c.li", uint32(0x557d), "c.li a0, -1"),
			Entry("c.sdsp", uint32(0xe406), "c.sdsp ra, 8(sp)"),
			Entry("c.ldsp", uint32(0x60a2), "c.ldsp ra, 8(sp)"),
			Entry("c.addi16sp", uint32(0x713d), "c.addi16sp sp, -32"),
			Entry("c.mv", uint32(0x852e), "c.mv a0, a1"),
			Entry("c.add", uint32(0x952e), "c.add a0, a1"),
			Entry("c.sub", uint32(0x8c05), "c.sub s0, s1"),
			Entry("c.addw", uint32(0x9c25), "c.addw s0, s1"),
			Entry("c.srai", uint32(0x957d), "c.srai a0, 63"),
			Entry("c.lui", uint32(0x757d), "c.lui a0, 0xfffff"),
			Entry("c.jalr", uint32(0x9082), "c.jalr ra"),
		)

		It("should keep the c.lui immediate as placed in the register", func() {
			Expect(decode(0x757d).Imm).To(Equal(int64(-4096)))
		})

		DescribeTable("reserved encodings",
			func(word uint32) {
				_, err := riscv.Decode(word)
				Expect(insts.IsUnallocated(err)).To(BeTrue(), "%#x: %v", word, err)
			},
			Entry("all-zero halfword", uint32(0x0000)),
			Entry("c.addi4spn with zero immediate", uint32(0x0004)),
			Entry("c.addiw with rd=0", uint32(0x2001)),
			Entry("c.lwsp with rd=0", uint32(0x4002)),
			Entry("c.ldsp with rd=0", uint32(0x6002)),
			Entry("c.jr with rs1=0", uint32(0x8002)),
			Entry("c.addi16sp with zero immediate", uint32(0x6101)),
			Entry("c.lui with zero immediate", uint32(0x6501)),
			Entry("reserved quadrant 0 selector", uint32(0x8000)),
			Entry("reserved quadrant 1 selector", uint32(0x9c41)),
		)

		DescribeTable("hints",
			func(word uint32) {
				_, err := riscv.Decode(word)
				Expect(insts.IsUnimplemented(err)).To(BeTrue(), "%#x: %v", word, err)
			},
			Entry("c.nop with immediate", uint32(0x0005)),
			Entry("c.li to x0", uint32(0x4005)),
			Entry("c.mv to x0", uint32(0x802e)),
			Entry("c.slli by zero", uint32(0x0502)),
		)
	})

	Describe("DecodeBytes", func() {
		It("should read little-endian words", func() {
			inst, n, err := riscv.DecodeBytes([]byte{0x13, 0x00, 0x00, 0x00})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(4))
			Expect(inst.Op).To(Equal(riscv.OpADDI))
		})

		It("should consume two bytes for compressed words", func() {
			inst, n, err := riscv.DecodeBytes([]byte{0x01, 0x00, 0x13, 0x00})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
			Expect(inst.Op).To(Equal(riscv.OpCNOP))
		})

		It("should report truncation with the needed length", func() {
			_, n, err := riscv.DecodeBytes([]byte{0x13, 0x00})
			Expect(insts.IsTruncated(err)).To(BeTrue())
			Expect(n).To(Equal(4))

			_, n, err = riscv.DecodeBytes(nil)
			Expect(insts.IsTruncated(err)).To(BeTrue())
			Expect(n).To(Equal(2))
		})

		It("should report the length of an undecodable word", func() {
			_, n, err := riscv.DecodeBytes([]byte{0x00, 0x00})
			Expect(insts.IsUnallocated(err)).To(BeTrue())
			Expect(n).To(Equal(2))
		})
	})

	Describe("Disassemble", func() {
		errStop := errors.New("stop")

		It("should wrap visitor errors", func() {
			v := riscv.InstFunc[int](func(riscv.Inst) (int, error) { return 0, errStop })
			_, err := riscv.Disassemble[int](v, 0x0001)

			Expect(insts.IsHandler(err)).To(BeTrue())
			Expect(errors.Is(err, errStop)).To(BeTrue())

			var h *insts.HandlerError
			Expect(errors.As(err, &h)).To(BeTrue())
			Expect(h.Op).To(Equal("c.nop"))
			Expect(h.Word).To(Equal(uint32(0x0001)))
		})

		It("should not wrap decode errors", func() {
			_, err := riscv.Disassemble[string](riscv.Printer{}, 0)
			Expect(insts.IsUnallocated(err)).To(BeTrue())
			Expect(insts.IsHandler(err)).To(BeFalse())
		})

		It("should run independent visitors over the same word", func() {
			count := 0
			counter := riscv.InstFunc[struct{}](func(riscv.Inst) (struct{}, error) {
				count++
				return struct{}{}, nil
			})

			word := uint32(0x02b50553)
			_, err := riscv.Disassemble[struct{}](counter, word)
			Expect(err).NotTo(HaveOccurred())

			text, err := riscv.Disassemble[string](riscv.Printer{Numeric: true}, word)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("fadd.d f10, f10, f11, rne"))

			back, err := riscv.Disassemble[uint32](riscv.Assembler{}, word)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(word))
			Expect(count).To(Equal(1))
		})

		It("should rebuild the decoded instruction through InstFunc", func() {
			for _, word := range []uint32{0x00113423, 0x6ac58543, 0x0ff0000f, 0x952e, 0x713d, 0xe406} {
				want := decode(word)
				got, err := riscv.Disassemble[riscv.Inst](riscv.InstFunc[riscv.Inst](
					func(i riscv.Inst) (riscv.Inst, error) { return i, nil }), word)
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(want))
			}
		})
	})
})
