// Package loader reads A64 and RV64 ELF executables.
package loader

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"

	"github.com/sarchlab/diss/insts"
)

// ErrUnsupportedMachine is returned for ELF files the emulators cannot run.
var ErrUnsupportedMachine = errors.New("unsupported ELF machine")

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// DefaultStackTop is a conventional high user-space address for the stack.
const DefaultStackTop = 0x7ffffffff000

// DefaultStackSize is the default stack size (8MB).
const DefaultStackSize = 8 * 1024 * 1024

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the virtual address where this segment should be loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Executable reports whether the segment holds code.
func (s Segment) Executable() bool {
	return s.Flags&SegmentFlagExecute != 0
}

// Program represents a loaded ELF program ready for execution.
type Program struct {
	// Arch is the instruction set, from the ELF machine field.
	Arch insts.Arch
	// EntryPoint is the virtual address where execution should begin.
	EntryPoint uint64
	// Segments contains all loadable segments from the ELF file.
	Segments []Segment
	// InitialSP is the initial stack pointer value.
	InitialSP uint64
}

// MemoryWriter receives segment bytes. *emu.Memory implements it.
type MemoryWriter interface {
	WriteBytes(addr uint64, data []byte)
}

// Load copies every segment into mem and zero-fills the part of each
// segment beyond its file data.
func (p *Program) Load(mem MemoryWriter) {
	for _, seg := range p.Segments {
		mem.WriteBytes(seg.VirtAddr, seg.Data)
		if end := uint64(len(seg.Data)); seg.MemSize > end {
			mem.WriteBytes(seg.VirtAddr+end, make([]byte, seg.MemSize-end))
		}
	}
}

// ExecutableSegments returns the segments marked executable, in file order.
func (p *Program) ExecutableSegments() []Segment {
	var out []Segment
	for _, seg := range p.Segments {
		if seg.Executable() {
			out = append(out, seg)
		}
	}
	return out
}

// Load parses an ELF executable from path.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return fromFile(f)
}

// Parse parses an ELF executable from r.
func Parse(r io.ReaderAt) (*Program, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	return fromFile(f)
}

func machineArch(m elf.Machine) (insts.Arch, error) {
	switch m {
	case elf.EM_AARCH64:
		return insts.ArchA64, nil
	case elf.EM_RISCV:
		return insts.ArchRV64GC, nil
	}
	return insts.ArchUnknown, fmt.Errorf("%w: %v", ErrUnsupportedMachine, m)
}

func fromFile(f *elf.File) (*Program, error) {
	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}
	if f.Data != elf.ELFDATA2LSB {
		return nil, fmt.Errorf("not a little-endian ELF file")
	}

	arch, err := machineArch(f.Machine)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Arch:       arch,
		EntryPoint: f.Entry,
		InitialSP:  DefaultStackTop,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	return prog, nil
}
