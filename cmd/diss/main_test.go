package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

const (
	machineAArch64 = 183
	machineRISCV   = 243
	textAddr       = 0x400000
)

// writeELF writes a static executable with one code segment at textAddr
// and returns its path.
func writeELF(dir string, machine uint16, code []byte) string {
	const ehsize, phentsize = 64, 56

	hdr := make([]byte, ehsize+phentsize)
	copy(hdr, []byte{0x7f, 'E', 'L', 'F', 2, 1, 1})
	binary.LittleEndian.PutUint16(hdr[16:], 2) // ET_EXEC
	binary.LittleEndian.PutUint16(hdr[18:], machine)
	binary.LittleEndian.PutUint32(hdr[20:], 1)
	binary.LittleEndian.PutUint64(hdr[24:], textAddr)
	binary.LittleEndian.PutUint64(hdr[32:], ehsize)
	binary.LittleEndian.PutUint16(hdr[52:], ehsize)
	binary.LittleEndian.PutUint16(hdr[54:], phentsize)
	binary.LittleEndian.PutUint16(hdr[56:], 1)

	ph := hdr[ehsize:]
	binary.LittleEndian.PutUint32(ph[0:], 1)   // PT_LOAD
	binary.LittleEndian.PutUint32(ph[4:], 0x5) // R+X
	binary.LittleEndian.PutUint64(ph[8:], ehsize+phentsize)
	binary.LittleEndian.PutUint64(ph[16:], textAddr)
	binary.LittleEndian.PutUint64(ph[24:], textAddr)
	binary.LittleEndian.PutUint64(ph[32:], uint64(len(code)))
	binary.LittleEndian.PutUint64(ph[40:], uint64(len(code)))
	binary.LittleEndian.PutUint64(ph[48:], 0x1000)

	path := filepath.Join(dir, "prog.elf")
	ExpectWithOffset(1, os.WriteFile(path, append(hdr, code...), 0644)).To(Succeed())
	return path
}

func words(encs ...func() (uint32, error)) []byte {
	var b []byte
	for _, enc := range encs {
		w, err := enc()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

var _ = Describe("diss", func() {
	var (
		stdout, stderr *bytes.Buffer
		dir            string
	)

	BeforeEach(func() {
		stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
		dir = GinkgoT().TempDir()
		GinkgoT().Setenv("HOME", dir)
	})

	diss := func(args ...string) int {
		return execute(append([]string{"--no-color"}, args...), stdout, stderr)
	}

	Describe("decode", func() {
		It("should print A64 assembly", func() {
			Expect(diss("decode", "d503201f")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("d503201f  nop"))
		})

		It("should check the RISC-V round-trip", func() {
			Expect(diss("decode", "--arch", "rv64gc", "--encode", "0x00100073", "9002")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("ebreak"))
			Expect(stdout.String()).To(ContainSubstring("c.ebreak"))
			Expect(stdout.String()).To(ContainSubstring("round-trip ok"))
		})

		It("should dump the decoded structure", func() {
			Expect(diss("decode", "--arch", "rv64gc", "--dump", "00000013")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("(riscv.Inst)"))
		})

		It("should fail on words that do not decode", func() {
			Expect(diss("decode", "00010000")).To(Equal(1))
			Expect(stdout.String()).To(ContainSubstring("unallocated"))
			Expect(stderr.String()).To(ContainSubstring("1 of 1 words failed"))
		})

		It("should reject malformed words", func() {
			Expect(diss("decode", "xyz")).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring("invalid instruction word"))
		})

		It("should take the architecture from the environment", func() {
			GinkgoT().Setenv("DISS_ARCH", "rv64gc")
			Expect(diss("decode", "00100073")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("ebreak"))
		})

		It("should take the architecture from a config file", func() {
			cfg := filepath.Join(dir, "diss.yaml")
			Expect(os.WriteFile(cfg, []byte("arch: rv64gc\n"), 0644)).To(Succeed())

			Expect(diss("--config", cfg, "decode", "00100073")).To(Equal(0))
			Expect(stdout.String()).To(ContainSubstring("ebreak"))
		})

		It("should fail on a missing config file", func() {
			Expect(diss("--config", filepath.Join(dir, "none.yaml"), "decode", "d503201f")).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring("failed to read config"))
		})
	})

	Describe("run", func() {
		var ra riscv.Assembler
		var aa a64.Assembler

		It("should return the guest's exit status", func() {
			path := writeELF(dir, machineRISCV, words(
				func() (uint32, error) { return ra.Addi(riscv.A0, riscv.Zero, 7) },
				func() (uint32, error) { return ra.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
				func() (uint32, error) { return ra.Ecall() },
			))

			Expect(diss("run", path)).To(Equal(7))
			Expect(stderr.String()).To(ContainSubstring("instructions: 3"))
			Expect(stderr.String()).To(ContainSubstring("estimated cycles: 3"))
		})

		It("should report instruction cache statistics", func() {
			path := writeELF(dir, machineAArch64, words(
				func() (uint32, error) { return aa.Movz(a64.X, a64.X0, 0, 0) },
				func() (uint32, error) { return aa.Movz(a64.X, a64.X8, uint16(emu.SyscallExit), 0) },
				func() (uint32, error) { return aa.Svc(0) },
			))

			Expect(diss("run", "--icache", path)).To(Equal(0))
			Expect(stderr.String()).To(ContainSubstring("icache: 2 hits, 1 misses"))
		})

		It("should report branch prediction", func() {
			path := writeELF(dir, machineRISCV, words(
				func() (uint32, error) { return ra.Addi(riscv.A0, riscv.Zero, 3) },
				func() (uint32, error) { return ra.Addi(riscv.A0, riscv.A0, -1) },
				func() (uint32, error) { return ra.Bne(riscv.A0, riscv.Zero, -4) },
				func() (uint32, error) { return ra.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
				func() (uint32, error) { return ra.Ecall() },
			))

			Expect(diss("run", "--branch-predictor", path)).To(Equal(0))
			Expect(stderr.String()).To(ContainSubstring("branches: 3, 2 mispredicted"))
		})

		It("should stop at the instruction limit", func() {
			path := writeELF(dir, machineAArch64, words(
				func() (uint32, error) { return aa.B(0) },
			))

			Expect(diss("run", "--max-instructions", "10", path)).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring("instructions: 10"))
			Expect(stderr.String()).To(ContainSubstring(emu.ErrInstructionLimit.Error()))
		})

		It("should price instructions with a timing config", func() {
			cfg := filepath.Join(dir, "timing.yaml")
			Expect(os.WriteFile(cfg, []byte("system_latency: 50\n"), 0644)).To(Succeed())
			path := writeELF(dir, machineRISCV, words(
				func() (uint32, error) { return ra.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
				func() (uint32, error) { return ra.Ecall() },
			))

			Expect(diss("run", "--timing", cfg, path)).To(Equal(0))
			Expect(stderr.String()).To(ContainSubstring("estimated cycles: 51"))
		})

		It("should write JSON logs to a file", func() {
			logPath := filepath.Join(dir, "diss.log")
			path := writeELF(dir, machineRISCV, words(
				func() (uint32, error) { return ra.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
				func() (uint32, error) { return ra.Ecall() },
			))

			Expect(diss("--log-file", logPath, "run", path)).To(Equal(0))
			data, err := os.ReadFile(logPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"msg":"starting program"`))
			Expect(stderr.String()).NotTo(ContainSubstring("starting program"))
		})

		It("should write profiles", func() {
			cpu, mem := filepath.Join(dir, "cpu.prof"), filepath.Join(dir, "mem.prof")
			path := writeELF(dir, machineRISCV, words(
				func() (uint32, error) { return ra.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
				func() (uint32, error) { return ra.Ecall() },
			))

			Expect(diss("run", "--cpuprofile", cpu, "--memprofile", mem, path)).To(Equal(0))
			Expect(cpu).To(BeARegularFile())
			Expect(mem).To(BeARegularFile())
		})

		It("should fail on a missing file", func() {
			Expect(diss("run", filepath.Join(dir, "missing.elf"))).To(Equal(1))
			Expect(stderr.String()).To(ContainSubstring("failed to open ELF file"))
		})
	})

	Describe("disasm and stats", func() {
		var path string

		BeforeEach(func() {
			var a a64.Assembler
			code := words(
				func() (uint32, error) { return a.Movz(a64.X, a64.X0, 1, 0) },
				func() (uint32, error) { return a.Udiv(a64.X, a64.X0, a64.X1, a64.X2) },
			)
			code = binary.LittleEndian.AppendUint32(code, 0x00010000)
			path = writeELF(dir, machineAArch64, code)
		})

		It("should list the code segment", func() {
			Expect(diss("disasm", path)).To(Equal(0))
			out := stdout.String()
			Expect(out).To(ContainSubstring("segment 0x400000 (12 bytes)"))
			Expect(out).To(ContainSubstring("400004:"))
			Expect(out).To(ContainSubstring("udiv"))
			Expect(out).To(ContainSubstring("<unallocated>"))
			Expect(out).To(ContainSubstring("3 instructions in 1 segments, 14 estimated cycles"))
		})

		It("should print the scanner report", func() {
			Expect(diss("stats", path)).To(Equal(0))
			out := stdout.String()
			Expect(out).To(ContainSubstring("architecture: a64"))
			Expect(out).To(ContainSubstring("divide:"))
			Expect(out).To(ContainSubstring("mnemonics (2): movz udiv"))
		})
	})
})
