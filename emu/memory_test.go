package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
)

var _ = Describe("Memory", func() {
	var mem *emu.Memory

	BeforeEach(func() {
		mem = emu.NewMemory()
	})

	It("should read zero from unmapped addresses without allocating", func() {
		Expect(mem.Read64(0xdead0000)).To(BeZero())
		Expect(mem.Pages()).To(BeZero())
	})

	It("should store values little-endian", func() {
		mem.Write32(0x1000, 0xdeadbeef)

		Expect(mem.Read8(0x1000)).To(Equal(uint8(0xef)))
		Expect(mem.Read8(0x1003)).To(Equal(uint8(0xde)))
		Expect(mem.Read16(0x1002)).To(Equal(uint16(0xdead)))
	})

	It("should handle accesses that cross a page boundary", func() {
		mem.Write64(0x1ffc, 0x1122334455667788)

		Expect(mem.Read64(0x1ffc)).To(Equal(uint64(0x1122334455667788)))
		Expect(mem.Read32(0x2000)).To(Equal(uint32(0x11223344)))
		Expect(mem.Pages()).To(Equal(2))
	})

	It("should copy byte slices in and out", func() {
		mem.WriteBytes(0x3ffe, []byte("hello"))

		Expect(mem.ReadBytes(0x3ffe, 5)).To(Equal([]byte("hello")))
	})

	It("should read NUL-terminated strings", func() {
		mem.WriteBytes(0x100, []byte("path\x00junk"))

		s, ok := mem.ReadCString(0x100, 64)
		Expect(ok).To(BeTrue())
		Expect(s).To(Equal("path"))

		_, ok = mem.ReadCString(0x100, 3)
		Expect(ok).To(BeFalse())
	})
})
