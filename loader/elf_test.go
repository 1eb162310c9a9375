package loader_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/loader"
)

const (
	machineX8664   = 62
	machineAArch64 = 183
	machineRISCV   = 243

	ptLoad = 1
	ptNote = 4

	pfX = 0x1
	pfW = 0x2
	pfR = 0x4
)

type testSegment struct {
	typ     uint32
	flags   uint32
	vaddr   uint64
	data    []byte
	memSize uint64
}

// buildELF assembles a little-endian ELF64 executable whose segment data
// follows the program headers.
func buildELF(machine uint16, entry uint64, segs ...testSegment) []byte {
	const ehsize, phentsize = 64, 56

	hdr := make([]byte, ehsize)
	copy(hdr, []byte{0x7f, 'E', 'L', 'F', 2, 1, 1})
	binary.LittleEndian.PutUint16(hdr[16:], 2) // ET_EXEC
	binary.LittleEndian.PutUint16(hdr[18:], machine)
	binary.LittleEndian.PutUint32(hdr[20:], 1)
	binary.LittleEndian.PutUint64(hdr[24:], entry)
	binary.LittleEndian.PutUint64(hdr[32:], ehsize)
	binary.LittleEndian.PutUint16(hdr[52:], ehsize)
	binary.LittleEndian.PutUint16(hdr[54:], phentsize)
	binary.LittleEndian.PutUint16(hdr[56:], uint16(len(segs)))

	out := bytes.NewBuffer(hdr)
	offset := uint64(ehsize + phentsize*len(segs))
	for _, s := range segs {
		ph := make([]byte, phentsize)
		memSize := s.memSize
		if memSize == 0 {
			memSize = uint64(len(s.data))
		}
		binary.LittleEndian.PutUint32(ph[0:], s.typ)
		binary.LittleEndian.PutUint32(ph[4:], s.flags)
		binary.LittleEndian.PutUint64(ph[8:], offset)
		binary.LittleEndian.PutUint64(ph[16:], s.vaddr)
		binary.LittleEndian.PutUint64(ph[24:], s.vaddr)
		binary.LittleEndian.PutUint64(ph[32:], uint64(len(s.data)))
		binary.LittleEndian.PutUint64(ph[40:], memSize)
		binary.LittleEndian.PutUint64(ph[48:], 0x1000)
		out.Write(ph)
		offset += uint64(len(s.data))
	}
	for _, s := range segs {
		out.Write(s.data)
	}
	return out.Bytes()
}

func code(vaddr uint64, data []byte) testSegment {
	return testSegment{typ: ptLoad, flags: pfR | pfX, vaddr: vaddr, data: data}
}

var _ = Describe("ELF Loader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name string, image []byte) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, image, 0o644)).To(Succeed())
		return path
	}

	// mov x0, #42; ret
	a64Code := []byte{0x40, 0x05, 0x80, 0xd2, 0xc0, 0x03, 0x5f, 0xd6}
	// addi a0, zero, 42; c.jr ra
	rvCode := []byte{0x13, 0x05, 0xa0, 0x02, 0x82, 0x80}

	Describe("Load", func() {
		It("should read an A64 executable", func() {
			path := write("a64.elf", buildELF(machineAArch64, 0x400080, code(0x400000, a64Code)))

			prog, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Arch).To(Equal(insts.ArchA64))
			Expect(prog.EntryPoint).To(Equal(uint64(0x400080)))
			Expect(prog.InitialSP).To(Equal(uint64(loader.DefaultStackTop)))
			Expect(prog.Segments).To(HaveLen(1))
			Expect(prog.Segments[0].Data).To(Equal(a64Code))
		})

		It("should read a RISC-V executable", func() {
			path := write("rv.elf", buildELF(machineRISCV, 0x10000, code(0x10000, rvCode)))

			prog, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Arch).To(Equal(insts.ArchRV64GC))
			Expect(prog.ExecutableSegments()[0].Data).To(Equal(rvCode))
		})

		It("should report a missing file", func() {
			_, err := loader.Load(filepath.Join(dir, "missing.elf"))

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to open"))
		})

		It("should reject files that are not ELF", func() {
			_, err := loader.Load(write("text", []byte("not an elf file")))
			Expect(err).To(HaveOccurred())

			_, err = loader.Load(write("empty", nil))
			Expect(err).To(HaveOccurred())
		})

		It("should reject other machines", func() {
			_, err := loader.Load(write("x86.elf", buildELF(machineX8664, 0)))

			Expect(errors.Is(err, loader.ErrUnsupportedMachine)).To(BeTrue())
		})

		It("should reject 32-bit files", func() {
			image := buildELF(machineAArch64, 0)
			image[4] = 1

			_, err := loader.Parse(bytes.NewReader(image[:52]))

			Expect(err).To(HaveOccurred())
		})

		It("should ignore segments that are not loadable", func() {
			image := buildELF(machineAArch64, 0x400000, testSegment{typ: ptNote, flags: pfR})

			prog, err := loader.Parse(bytes.NewReader(image))

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(BeEmpty())
			Expect(prog.EntryPoint).To(Equal(uint64(0x400000)))
		})
	})

	Describe("Program", func() {
		var prog *loader.Program

		BeforeEach(func() {
			image := buildELF(machineAArch64, 0x400000,
				code(0x400000, a64Code),
				testSegment{typ: ptLoad, flags: pfR | pfW, vaddr: 0x600000, data: []byte{1, 2, 3, 4}, memSize: 64},
				testSegment{typ: ptLoad, flags: pfR | pfW, vaddr: 0x700000, memSize: 4096},
			)
			var err error
			prog, err = loader.Parse(bytes.NewReader(image))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should translate segment permissions", func() {
			Expect(prog.Segments).To(HaveLen(3))
			Expect(prog.Segments[0].Flags).To(Equal(loader.SegmentFlagRead | loader.SegmentFlagExecute))
			Expect(prog.Segments[1].Flags).To(Equal(loader.SegmentFlagRead | loader.SegmentFlagWrite))
		})

		It("should keep file data and memory size apart", func() {
			Expect(prog.Segments[1].Data).To(HaveLen(4))
			Expect(prog.Segments[1].MemSize).To(Equal(uint64(64)))
			Expect(prog.Segments[2].Data).To(BeEmpty())
			Expect(prog.Segments[2].MemSize).To(Equal(uint64(4096)))
		})

		It("should list only executable segments", func() {
			segs := prog.ExecutableSegments()

			Expect(segs).To(HaveLen(1))
			Expect(segs[0].VirtAddr).To(Equal(uint64(0x400000)))
		})

		It("should copy segments into memory and clear BSS", func() {
			mem := emu.NewMemory()
			mem.Write64(0x600008, ^uint64(0))

			prog.Load(mem)

			Expect(mem.Read32(0x400000)).To(Equal(uint32(0xd2800540)))
			Expect(mem.ReadBytes(0x600000, 4)).To(Equal([]byte{1, 2, 3, 4}))
			Expect(mem.Read64(0x600008)).To(BeZero())
		})
	})
})
