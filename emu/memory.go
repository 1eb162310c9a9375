package emu

import "encoding/binary"

const (
	pageShift = 12
	pageSize  = 1 << pageShift
	pageMask  = pageSize - 1
)

// Memory is a sparse little-endian byte memory. Pages are allocated on the
// first write; reads from pages never written return zero.
type Memory struct {
	pages map[uint64]*[pageSize]byte
}

// NewMemory creates an empty memory.
func NewMemory() *Memory {
	return &Memory{pages: make(map[uint64]*[pageSize]byte)}
}

// Pages returns the number of allocated pages.
func (m *Memory) Pages() int {
	return len(m.pages)
}

func (m *Memory) page(addr uint64, alloc bool) *[pageSize]byte {
	idx := addr >> pageShift
	p, ok := m.pages[idx]
	if !ok && alloc {
		p = new([pageSize]byte)
		m.pages[idx] = p
	}
	return p
}

// within returns the page-local slice for n bytes at addr when they do not
// cross a page boundary.
func (m *Memory) within(addr uint64, n int, alloc bool) ([]byte, bool) {
	off := int(addr & pageMask)
	if off+n > pageSize {
		return nil, false
	}
	p := m.page(addr, alloc)
	if p == nil {
		return nil, true
	}
	return p[off : off+n], true
}

// Read8 reads one byte.
func (m *Memory) Read8(addr uint64) uint8 {
	p := m.page(addr, false)
	if p == nil {
		return 0
	}
	return p[addr&pageMask]
}

// Write8 writes one byte.
func (m *Memory) Write8(addr uint64, v uint8) {
	m.page(addr, true)[addr&pageMask] = v
}

func (m *Memory) readN(addr uint64, n int) uint64 {
	if b, ok := m.within(addr, n, false); ok {
		if b == nil {
			return 0
		}
		var buf [8]byte
		copy(buf[:], b)
		return binary.LittleEndian.Uint64(buf[:])
	}

	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(m.Read8(addr+uint64(i))) << (8 * i)
	}
	return v
}

func (m *Memory) writeN(addr uint64, n int, v uint64) {
	if b, ok := m.within(addr, n, true); ok {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		copy(b, buf[:n])
		return
	}

	for i := 0; i < n; i++ {
		m.Write8(addr+uint64(i), uint8(v>>(8*i)))
	}
}

// Read16 reads a little-endian halfword.
func (m *Memory) Read16(addr uint64) uint16 { return uint16(m.readN(addr, 2)) }

// Read32 reads a little-endian word.
func (m *Memory) Read32(addr uint64) uint32 { return uint32(m.readN(addr, 4)) }

// Read64 reads a little-endian doubleword.
func (m *Memory) Read64(addr uint64) uint64 { return m.readN(addr, 8) }

// Write16 writes a little-endian halfword.
func (m *Memory) Write16(addr uint64, v uint16) { m.writeN(addr, 2, uint64(v)) }

// Write32 writes a little-endian word.
func (m *Memory) Write32(addr uint64, v uint32) { m.writeN(addr, 4, uint64(v)) }

// Write64 writes a little-endian doubleword.
func (m *Memory) Write64(addr uint64, v uint64) { m.writeN(addr, 8, v) }

// ReadBytes copies n bytes starting at addr.
func (m *Memory) ReadBytes(addr uint64, n int) []byte {
	out := make([]byte, n)
	for done := 0; done < n; {
		a := addr + uint64(done)
		chunk := min(pageSize-int(a&pageMask), n-done)
		if p := m.page(a, false); p != nil {
			off := int(a & pageMask)
			copy(out[done:done+chunk], p[off:off+chunk])
		}
		done += chunk
	}
	return out
}

// WriteBytes copies data into memory starting at addr.
func (m *Memory) WriteBytes(addr uint64, data []byte) {
	for done := 0; done < len(data); {
		a := addr + uint64(done)
		off := int(a & pageMask)
		chunk := min(pageSize-off, len(data)-done)
		copy(m.page(a, true)[off:off+chunk], data[done:done+chunk])
		done += chunk
	}
}

// ReadCString reads a NUL-terminated string of at most limit bytes.
func (m *Memory) ReadCString(addr uint64, limit int) (string, bool) {
	var out []byte
	for i := 0; i < limit; i++ {
		c := m.Read8(addr + uint64(i))
		if c == 0 {
			return string(out), true
		}
		out = append(out, c)
	}
	return string(out), false
}

// LoadProgram copies program into memory at addr.
func (m *Memory) LoadProgram(addr uint64, program []byte) {
	m.WriteBytes(addr, program)
}
