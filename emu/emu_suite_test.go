package emu_test

import (
	"encoding/binary"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmu(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Emu Suite")
}

// program accumulates little-endian instruction words from an assembler.
type program struct {
	buf []byte
}

func (p *program) w(word uint32, err error) *program {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	p.buf = binary.LittleEndian.AppendUint32(p.buf, word)
	return p
}

// h appends a compressed instruction.
func (p *program) h(word uint32, err error) *program {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(word))
	return p
}

func must(word uint32, err error) uint32 {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return word
}
