package emu_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts/a64"
)

var _ = Describe("Emulator", func() {
	const entry = 0x1000

	var (
		a      a64.Assembler
		stdout *bytes.Buffer
		p      *program
	)

	BeforeEach(func() {
		stdout = new(bytes.Buffer)
		p = &program{}
	})

	load := func(opts ...emu.EmulatorOption) *emu.Emulator {
		e := emu.NewEmulator(append([]emu.EmulatorOption{emu.WithStdout(stdout)}, opts...)...)
		e.LoadProgram(entry, p.buf)
		return e
	}

	step := func(e *emu.Emulator, n int) {
		for i := 0; i < n; i++ {
			result := e.Step()
			ExpectWithOffset(1, result.Err).NotTo(HaveOccurred())
			ExpectWithOffset(1, result.Exited).To(BeFalse())
		}
	}

	exit := func() {
		p.w(a.Movz(a64.X, a64.X8, uint16(emu.SyscallExit), 0)).w(a.Svc(0))
	}

	Describe("NewEmulator", func() {
		It("should apply the initial stack pointer", func() {
			e := emu.NewEmulator(emu.WithStackPointer(0x7fff0000))

			Expect(e.RegFile().SP).To(Equal(uint64(0x7fff0000)))
			Expect(e.Memory()).NotTo(BeNil())
		})

		It("should share a caller-supplied memory", func() {
			mem := emu.NewMemory()
			e := emu.NewEmulator(emu.WithMemory(mem))
			e.LoadProgram(entry, []byte{1, 2, 3, 4})

			Expect(mem.Read32(entry)).To(Equal(uint32(0x04030201)))
			Expect(e.RegFile().PC).To(Equal(uint64(entry)))
		})
	})

	Describe("Run", func() {
		It("should return the exit status", func() {
			p.w(a.Movz(a64.X, a64.X0, 42, 0))
			exit()

			e := load()
			code, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(42)))
			Expect(e.InstructionCount()).To(Equal(uint64(3)))
		})

		It("should run a counted loop", func() {
			p.w(a.Movz(a64.X, a64.X0, 0, 0)).
				w(a.Movz(a64.X, a64.X1, 10, 0)).
				w(a.Add(a64.X, a64.X0, a64.X0, a64.X1, a64.ShiftLSL, 0)).
				w(a.SubsImm(a64.X, a64.X1, a64.X1, 1, 0)).
				w(a.BCond(a64.CondNE, -8))
			exit()

			code, err := load().Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(55)))
		})

		It("should call and return from a subroutine", func() {
			p.w(a.Bl(12))
			exit()
			p.w(a.Movz(a64.X, a64.X0, 7, 0)).w(a.Ret(a64.LR))

			code, err := load().Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(7)))
		})

		It("should write through the syscall handler", func() {
			p.w(a.Movz(a64.X, a64.X0, 1, 0)).
				w(a.Movz(a64.X, a64.X1, 0x2000, 0)).
				w(a.Movz(a64.X, a64.X2, 3, 0)).
				w(a.Movz(a64.X, a64.X8, uint16(emu.SyscallWrite), 0)).
				w(a.Svc(0)).
				w(a.Movz(a64.X, a64.X0, 0, 0))
			exit()

			e := load()
			e.Memory().WriteBytes(0x2000, []byte("hi\n"))
			code, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(BeZero())
			Expect(stdout.String()).To(Equal("hi\n"))
		})

		It("should stop at the instruction limit", func() {
			p.w(a.B(0))

			e := load(emu.WithMaxInstructions(100))
			_, err := e.Run()

			Expect(errors.Is(err, emu.ErrInstructionLimit)).To(BeTrue())
			Expect(e.InstructionCount()).To(Equal(uint64(100)))
		})

		It("should report breakpoints with their immediate", func() {
			p.w(a.Nop()).w(a.Brk(0x3e8))

			_, err := load().Run()

			var bp *emu.BreakpointError
			Expect(errors.As(err, &bp)).To(BeTrue())
			Expect(bp.Imm).To(Equal(uint16(0x3e8)))
			Expect(bp.PC).To(Equal(uint64(entry + 4)))
		})

		It("should fail on a permanently undefined word", func() {
			p.w(a.Udf(0))

			code, err := load().Run()

			Expect(err).To(HaveOccurred())
			Expect(code).To(Equal(int64(-1)))
		})

		It("should reject unsupported system instructions", func() {
			p.w(a.Hvc(0))

			_, err := load().Run()

			Expect(errors.Is(err, emu.ErrUnsupported)).To(BeTrue())
		})
	})

	Describe("data processing", func() {
		It("should set flags and select on them", func() {
			p.w(a.Movz(a64.X, a64.X0, 5, 0)).
				w(a.Movz(a64.X, a64.X1, 9, 0)).
				w(a.Subs(a64.X, a64.ZR, a64.X0, a64.X1, a64.ShiftLSL, 0)).
				w(a.Csel(a64.X, a64.X2, a64.X0, a64.X1, a64.CondLT)).
				w(a.Csinc(a64.X, a64.X3, a64.ZR, a64.ZR, a64.CondGE))

			e := load()
			step(e, 5)

			regs := e.RegFile()
			Expect(regs.PSTATE).To(Equal(emu.PSTATE{N: true}))
			Expect(regs.ReadReg(a64.X2)).To(Equal(uint64(5)))
			Expect(regs.ReadReg(a64.X3)).To(Equal(uint64(1)))
		})

		It("should zero-extend W results", func() {
			p.w(a.Movn(a64.X, a64.X0, 0, 0)).
				w(a.AddImm(a64.W, a64.X1, a64.X0, 2, 0))

			e := load()
			step(e, 2)

			Expect(e.RegFile().ReadReg(a64.X1)).To(Equal(uint64(1)))
		})

		It("should build constants with move wide", func() {
			p.w(a.Movz(a64.X, a64.X0, 0x1234, 48)).
				w(a.Movk(a64.X, a64.X0, 0x5678, 0))

			e := load()
			step(e, 2)

			Expect(e.RegFile().ReadReg(a64.X0)).To(Equal(uint64(0x1234000000005678)))
		})

		It("should return zero on division by zero", func() {
			p.w(a.Movz(a64.X, a64.X0, 7, 0)).
				w(a.Udiv(a64.X, a64.X1, a64.X0, a64.ZR)).
				w(a.Sdiv(a64.X, a64.X2, a64.X0, a64.ZR))

			e := load()
			e.RegFile().WriteReg(a64.X1, 99)
			step(e, 3)

			Expect(e.RegFile().ReadReg(a64.X1)).To(BeZero())
			Expect(e.RegFile().ReadReg(a64.X2)).To(BeZero())
		})

		It("should compute the standard CRC-32 check value", func() {
			p.w(a.Movn(a64.W, a64.X0, 0, 0)).
				w(a.Movz(a64.X, a64.X1, 0x3231, 0)).
				w(a.Movk(a64.X, a64.X1, 0x3433, 16)).
				w(a.Movk(a64.X, a64.X1, 0x3635, 32)).
				w(a.Movk(a64.X, a64.X1, 0x3837, 48)).
				w(a.Movz(a64.W, a64.X2, '9', 0)).
				w(a.Crc32x(a64.X0, a64.X0, a64.X1)).
				w(a.Crc32b(a64.X0, a64.X0, a64.X2))

			e := load()
			step(e, 8)

			Expect(^uint32(e.RegFile().ReadReg(a64.X0))).To(Equal(uint32(0xcbf43926)))
		})

		It("should multiply into the high half", func() {
			p.w(a.Movn(a64.X, a64.X0, 0, 0)).
				w(a.Movz(a64.X, a64.X1, 2, 0)).
				w(a.Umulh(a64.X2, a64.X0, a64.X1)).
				w(a.Smulh(a64.X3, a64.X0, a64.X1))

			e := load()
			step(e, 4)

			Expect(e.RegFile().ReadReg(a64.X2)).To(Equal(uint64(1)))
			Expect(e.RegFile().ReadReg(a64.X3)).To(Equal(^uint64(0)))
		})

		It("should branch on a tested bit", func() {
			p.w(a.Movz(a64.X, a64.X0, 0b100, 0)).
				w(a.Tbnz(a64.X0, 2, 8)).
				w(a.Movz(a64.X, a64.X1, 1, 0)).
				w(a.Movz(a64.X, a64.X2, 2, 0))

			e := load()
			step(e, 3)

			Expect(e.RegFile().ReadReg(a64.X1)).To(BeZero())
			Expect(e.RegFile().ReadReg(a64.X2)).To(Equal(uint64(2)))
		})
	})
})
