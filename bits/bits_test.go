package bits_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/bits"
)

var _ = Describe("Bit primitives", func() {
	Describe("Bit", func() {
		It("should extract individual bits", func() {
			Expect(bits.Bit(uint32(0b1010), 0)).To(Equal(uint32(0)))
			Expect(bits.Bit(uint32(0b1010), 1)).To(Equal(uint32(1)))
			Expect(bits.Bit(uint32(0x80000000), 31)).To(Equal(uint32(1)))
			Expect(bits.Bit(uint8(0x80), 7)).To(Equal(uint8(1)))
		})

		It("should panic past the word width", func() {
			Expect(func() { bits.Bit(uint16(1), 16) }).To(Panic())
		})
	})

	Describe("Field", func() {
		It("should extract half-open ranges", func() {
			Expect(bits.Field(uint32(0x00100073), 0, 7)).To(Equal(uint32(0x73)))
			Expect(bits.Field(uint32(0x00100073), 20, 32)).To(Equal(uint32(1)))
			Expect(bits.Field(uint16(0xE003), 13, 16)).To(Equal(uint16(7)))
		})

		It("should allow the full word", func() {
			Expect(bits.Field(uint64(0xdeadbeefcafebabe), 0, 64)).To(Equal(uint64(0xdeadbeefcafebabe)))
		})

		It("should panic on empty or out-of-range fields", func() {
			Expect(func() { bits.Field(uint32(0), 4, 4) }).To(Panic())
			Expect(func() { bits.Field(uint32(0), 8, 4) }).To(Panic())
			Expect(func() { bits.Field(uint32(0), 0, 33) }).To(Panic())
		})
	})

	Describe("Insert", func() {
		It("should be the inverse of Field", func() {
			w := bits.Insert(uint32(0xffffffff), 7, 12, 0b10101)
			Expect(bits.Field(w, 7, 12)).To(Equal(uint32(0b10101)))
			Expect(bits.Field(w, 0, 7)).To(Equal(uint32(0x7f)))
			Expect(bits.Field(w, 12, 32)).To(Equal(uint32(0xfffff)))
		})

		It("should panic when the value does not fit", func() {
			Expect(func() { bits.Insert(uint32(0), 0, 3, 8) }).To(Panic())
		})
	})

	Describe("Extension", func() {
		It("should sign-extend", func() {
			Expect(bits.SignExtend(uint32(0xfff), 12)).To(Equal(int64(-1)))
			Expect(bits.SignExtend(uint32(0x7ff), 12)).To(Equal(int64(2047)))
			Expect(bits.SignExtend(uint32(0x800), 12)).To(Equal(int64(-2048)))
			Expect(bits.SignExtend(uint64(1)<<63, 64)).To(Equal(int64(-1) << 63))
		})

		It("should zero-extend", func() {
			Expect(bits.ZeroExtend(uint32(0xffff_ffff), 12)).To(Equal(uint64(0xfff)))
		})

		It("should panic on zero width", func() {
			Expect(func() { bits.SignExtend(uint32(0), 0) }).To(Panic())
		})

		It("should check signed ranges", func() {
			Expect(bits.FitsSigned(-2048, 12)).To(BeTrue())
			Expect(bits.FitsSigned(2048, 12)).To(BeFalse())
			Expect(bits.Fits(uint32(31), 5)).To(BeTrue())
			Expect(bits.Fits(uint32(32), 5)).To(BeFalse())
		})
	})

	Describe("Arithmetic helpers", func() {
		It("should rotate right", func() {
			Expect(bits.RotateRight32(1, 1)).To(Equal(uint32(0x80000000)))
			Expect(bits.RotateRight64(0xf, 4)).To(Equal(uint64(0xf) << 60))
		})

		It("should replicate elements", func() {
			Expect(bits.Replicate(0b01, 2, 8)).To(Equal(uint64(0x55)))
			Expect(bits.Replicate(0xff, 16, 64)).To(Equal(uint64(0x00ff00ff00ff00ff)))
		})

		It("should count leading sign bits", func() {
			Expect(bits.CountLeadingSign64(0)).To(Equal(uint(63)))
			Expect(bits.CountLeadingSign64(^uint64(0))).To(Equal(uint(63)))
			Expect(bits.CountLeadingSign32(0x40000000)).To(Equal(uint(0)))
			Expect(bits.CountLeadingSign32(0x0000ffff)).To(Equal(uint(15)))
		})

		It("should reverse bytes within lanes", func() {
			Expect(bits.ReverseBytes16In32(0x11223344)).To(Equal(uint32(0x22114433)))
			Expect(bits.ReverseBytes32In64(0x1122334455667788)).To(Equal(uint64(0x4433221188776655)))
		})

		It("should saturate", func() {
			Expect(bits.SaturatingAdd(uint8(250), uint8(10))).To(Equal(uint8(255)))
			Expect(bits.SaturatingSub(uint8(3), uint8(10))).To(Equal(uint8(0)))
			Expect(bits.WrappingAdd(uint8(250), uint8(10))).To(Equal(uint8(4)))
		})

		It("should compute the raw CRC32 datapath", func() {
			// Standard CRC-32 of "a" is 0xe8b7be43.
			crc := ^bits.CRC32Raw(0xffffffff, 'a', 1, false)
			Expect(crc).To(Equal(uint32(0xe8b7be43)))
			// CRC-32C of "a" is 0xc1d04330.
			crc = ^bits.CRC32Raw(0xffffffff, 'a', 1, true)
			Expect(crc).To(Equal(uint32(0xc1d04330)))
		})
	})
})
