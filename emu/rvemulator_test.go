package emu_test

import (
	"bytes"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts/riscv"
)

var _ = Describe("RVEmulator", func() {
	const entry = 0x10000

	var (
		a      riscv.Assembler
		stdout *bytes.Buffer
		p      *program
	)

	BeforeEach(func() {
		stdout = new(bytes.Buffer)
		p = &program{}
	})

	load := func(opts ...emu.EmulatorOption) *emu.RVEmulator {
		e := emu.NewRVEmulator(append([]emu.EmulatorOption{emu.WithStdout(stdout)}, opts...)...)
		e.LoadProgram(entry, p.buf)
		return e
	}

	step := func(e *emu.RVEmulator, n int) {
		for i := 0; i < n; i++ {
			result := e.Step()
			ExpectWithOffset(1, result.Err).NotTo(HaveOccurred())
			ExpectWithOffset(1, result.Exited).To(BeFalse())
		}
	}

	exit := func() {
		p.w(a.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit))).w(a.Ecall())
	}

	Describe("Run", func() {
		It("should return the exit status", func() {
			p.w(a.Addi(riscv.A0, riscv.Zero, 42))
			exit()

			e := load()
			code, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(42)))
			Expect(e.InstructionCount()).To(Equal(uint64(3)))
		})

		It("should mix compressed and standard instructions", func() {
			p.h(a.CLi(riscv.A0, 0)).
				h(a.CLi(riscv.A1, 10)).
				h(a.CAdd(riscv.A0, riscv.A1)).
				h(a.CAddi(riscv.A1, -1)).
				h(a.CBnez(riscv.A1, -4))
			exit()

			e := load()
			code, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(55)))
			Expect(e.RegFile().PC).To(Equal(uint64(entry + 10 + 8)))
		})

		It("should trace each executed instruction", func() {
			p.h(a.CLi(riscv.A0, 3))
			exit()

			var pcs []uint64
			var words []uint32
			e := load(emu.WithTrace(func(pc uint64, word uint32) {
				pcs = append(pcs, pc)
				words = append(words, word)
			}))
			_, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(pcs).To(Equal([]uint64{entry, entry + 2, entry + 6}))
			Expect(words[0]).To(Equal(must(a.CLi(riscv.A0, 3))))
			Expect(words[2]).To(Equal(must(a.Ecall())))
		})

		It("should call and return through the link register", func() {
			p.w(a.Jal(riscv.RA, 12))
			exit()
			p.w(a.Addi(riscv.A0, riscv.Zero, 7)).w(a.Jalr(riscv.Zero, riscv.RA, 0))

			code, err := load().Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(7)))
		})

		It("should write through the syscall handler", func() {
			p.w(a.Addi(riscv.A0, riscv.Zero, 1)).
				w(a.Lui(riscv.A1, 0x20000)).
				w(a.Addi(riscv.X12, riscv.Zero, 2)).
				w(a.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallWrite))).
				w(a.Ecall())
			exit()

			e := load()
			e.Memory().WriteBytes(0x20000, []byte("ok"))
			code, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal(int64(2)))
			Expect(stdout.String()).To(Equal("ok"))
		})

		It("should report ebreak in either encoding", func() {
			p.w(a.Ebreak())
			_, err := load().Run()
			var bp *emu.BreakpointError
			Expect(errors.As(err, &bp)).To(BeTrue())
			Expect(bp.PC).To(Equal(uint64(entry)))

			p = &program{}
			p.h(a.CNop()).h(a.CEbreak())
			_, err = load().Run()
			Expect(errors.As(err, &bp)).To(BeTrue())
			Expect(bp.PC).To(Equal(uint64(entry + 2)))
		})

		It("should stop at the instruction limit", func() {
			p.h(a.CJ(0))

			e := load(emu.WithMaxInstructions(10))
			_, err := e.Run()

			Expect(errors.Is(err, emu.ErrInstructionLimit)).To(BeTrue())
		})
	})

	Describe("integer semantics", func() {
		It("should store and reload through the stack", func() {
			p.w(a.Addi(riscv.A0, riscv.Zero, -5)).
				w(a.Sd(riscv.SP, riscv.A0, 8)).
				w(a.Ld(riscv.A1, riscv.SP, 8)).
				w(a.Lwu(riscv.X12, riscv.SP, 8)).
				w(a.Lbu(riscv.X13, riscv.SP, 8))

			e := load(emu.WithStackPointer(0x8000))
			step(e, 5)

			regs := e.RegFile()
			Expect(regs.ReadReg(riscv.A1)).To(Equal(uint64(math.MaxUint64 - 4)))
			Expect(regs.ReadReg(riscv.X12)).To(Equal(uint64(0xfffffffb)))
			Expect(regs.ReadReg(riscv.X13)).To(Equal(uint64(0xfb)))
		})

		It("should keep x0 hardwired to zero", func() {
			p.w(a.Addi(riscv.Zero, riscv.Zero, 5))

			e := load()
			step(e, 1)

			Expect(e.RegFile().ReadReg(riscv.Zero)).To(BeZero())
		})

		It("should sign-extend word results", func() {
			p.w(a.Addiw(riscv.A0, riscv.A0, 1))

			e := load()
			e.RegFile().WriteReg(riscv.A0, 0x7fffffff)
			step(e, 1)

			Expect(e.RegFile().ReadReg(riscv.A0)).To(Equal(uint64(0xffffffff80000000)))
		})

		DescribeTable("division edge cases",
			func(enc func() (uint32, error), x, y, want uint64) {
				p.w(enc())
				e := load()
				e.RegFile().WriteReg(riscv.A0, x)
				e.RegFile().WriteReg(riscv.A1, y)
				step(e, 1)
				Expect(e.RegFile().ReadReg(riscv.X12)).To(Equal(want))
			},
			Entry("div by zero", func() (uint32, error) { return a.Div(riscv.X12, riscv.A0, riscv.A1) },
				uint64(7), uint64(0), ^uint64(0)),
			Entry("divu by zero", func() (uint32, error) { return a.Divu(riscv.X12, riscv.A0, riscv.A1) },
				uint64(7), uint64(0), ^uint64(0)),
			Entry("rem by zero", func() (uint32, error) { return a.Rem(riscv.X12, riscv.A0, riscv.A1) },
				uint64(7), uint64(0), uint64(7)),
			Entry("div overflow", func() (uint32, error) { return a.Div(riscv.X12, riscv.A0, riscv.A1) },
				uint64(1<<63), ^uint64(0), uint64(1<<63)),
			Entry("rem overflow", func() (uint32, error) { return a.Rem(riscv.X12, riscv.A0, riscv.A1) },
				uint64(1<<63), ^uint64(0), uint64(0)),
			Entry("divw overflow", func() (uint32, error) { return a.Divw(riscv.X12, riscv.A0, riscv.A1) },
				uint64(0x80000000), ^uint64(0), uint64(0xffffffff80000000)),
			Entry("mulhu", func() (uint32, error) { return a.Mulhu(riscv.X12, riscv.A0, riscv.A1) },
				^uint64(0), uint64(2), uint64(1)),
		)
	})

	Describe("control and status registers", func() {
		It("should count retired instructions", func() {
			p.h(a.CNop()).h(a.CNop()).
				w(a.Csrrs(riscv.A0, riscv.Zero, emu.CSRInstret))

			e := load()
			step(e, 3)

			Expect(e.RegFile().ReadReg(riscv.A0)).To(Equal(uint64(2)))
		})

		It("should reject writes to counters", func() {
			p.w(a.Csrrw(riscv.Zero, riscv.A0, emu.CSRCycle))

			_, err := load().Run()

			Expect(errors.Is(err, emu.ErrIllegalCSR)).To(BeTrue())
		})

		It("should alias fflags and frm inside fcsr", func() {
			p.w(a.Csrrwi(riscv.Zero, 0b010, emu.CSRFrm)).
				w(a.Csrrsi(riscv.Zero, 0b00001, emu.CSRFflags)).
				w(a.Csrrs(riscv.A0, riscv.Zero, emu.CSRFcsr))

			e := load()
			step(e, 3)

			Expect(e.RegFile().ReadReg(riscv.A0)).To(Equal(uint64(0b010_00001)))
			Expect(e.RegFile().RoundingMode()).To(Equal(riscv.RDN))
		})
	})

	Describe("floating point", func() {
		const boxed = 0xffffffff00000000

		d := func(v float64) uint64 { return math.Float64bits(v) }
		s := func(v float32) uint64 { return boxed | uint64(math.Float32bits(v)) }

		run1 := func(word uint32, setup func(r *emu.RVRegFile)) *emu.RVRegFile {
			p.w(word, nil)
			e := load()
			setup(e.RegFile())
			step(e, 1)
			return e.RegFile()
		}

		It("should add doubles", func() {
			r := run1(must(a.FaddD(riscv.F0, riscv.F1, riscv.F2, riscv.RNE)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = d(1.5), d(2.25)
			})
			Expect(r.F[0]).To(Equal(d(3.75)))
			Expect(r.Flags()).To(BeZero())
		})

		It("should fuse multiply and add", func() {
			r := run1(must(a.FnmsubD(riscv.F0, riscv.F1, riscv.F2, riscv.F3, riscv.DYN)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2], r.F[3] = d(2), d(3), d(1)
			})
			Expect(r.F[0]).To(Equal(d(-5)))
		})

		It("should flag division by zero", func() {
			r := run1(must(a.FdivD(riscv.F0, riscv.F1, riscv.F2, riscv.RNE)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = d(1), d(0)
			})
			Expect(r.F[0]).To(Equal(d(math.Inf(1))))
			Expect(r.Flags()).To(Equal(emu.FlagDZ))
		})

		It("should return the canonical NaN for invalid operations", func() {
			r := run1(must(a.FsqrtD(riscv.F0, riscv.F1, riscv.RNE)), func(r *emu.RVRegFile) {
				r.F[1] = d(-1)
			})
			Expect(r.F[0]).To(Equal(uint64(0x7ff8000000000000)))
			Expect(r.Flags()).To(Equal(emu.FlagNV))
		})

		It("should treat an unboxed single as NaN", func() {
			r := run1(must(a.FaddS(riscv.F0, riscv.F1, riscv.F2, riscv.RNE)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = uint64(math.Float32bits(1)), s(1)
			})
			Expect(r.F[0]).To(Equal(uint64(0xffffffff7fc00000)))
		})

		It("should return the number operand of fmin", func() {
			r := run1(must(a.FminS(riscv.F0, riscv.F1, riscv.F2)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = s(float32(math.NaN())), s(-2)
			})
			Expect(r.F[0]).To(Equal(s(-2)))
		})

		It("should order -0 below +0", func() {
			r := run1(must(a.FmaxD(riscv.F0, riscv.F1, riscv.F2)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = d(math.Copysign(0, -1)), d(0)
			})
			Expect(r.F[0]).To(Equal(d(0)))
		})

		DescribeTable("conversion to integer",
			func(rm riscv.RoundingMode, v float64, want uint64, flags uint32) {
				r := run1(must(a.FcvtWD(riscv.A0, riscv.F1, rm)), func(r *emu.RVRegFile) {
					r.F[1] = d(v)
				})
				Expect(r.ReadReg(riscv.A0)).To(Equal(want))
				Expect(r.Flags()).To(Equal(flags))
			},
			Entry("exact", riscv.RNE, 3.0, uint64(3), uint32(0)),
			Entry("ties to even", riscv.RNE, 2.5, uint64(2), emu.FlagNX),
			Entry("ties away", riscv.RMM, 2.5, uint64(3), emu.FlagNX),
			Entry("round down negative", riscv.RDN, -1.5, ^uint64(1), emu.FlagNX),
			Entry("saturate high", riscv.RTZ, 1e20, uint64(0x7fffffff), emu.FlagNV),
			Entry("saturate low", riscv.RTZ, -1e20, uint64(0xffffffff80000000), emu.FlagNV),
			Entry("NaN", riscv.RTZ, math.NaN(), uint64(0x7fffffff), emu.FlagNV),
		)

		It("should sign-extend unsigned word conversions", func() {
			r := run1(must(a.FcvtWuD(riscv.A0, riscv.F1, riscv.RTZ)), func(r *emu.RVRegFile) {
				r.F[1] = d(4294967295)
			})
			Expect(r.ReadReg(riscv.A0)).To(Equal(^uint64(0)))
		})

		It("should round integer conversions with the requested mode", func() {
			r := run1(must(a.FcvtSL(riscv.F0, riscv.A0, riscv.RUP)), func(r *emu.RVRegFile) {
				r.WriteReg(riscv.A0, 1<<24+1)
			})
			Expect(r.F[0]).To(Equal(s(1<<24 + 2)))
			Expect(r.Flags()).To(Equal(emu.FlagNX))
		})

		It("should compare quietly only with feq", func() {
			r := run1(must(a.FeqD(riscv.A0, riscv.F1, riscv.F2)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = d(math.NaN()), d(1)
			})
			Expect(r.ReadReg(riscv.A0)).To(BeZero())
			Expect(r.Flags()).To(BeZero())

			p = &program{}
			r = run1(must(a.FltD(riscv.A0, riscv.F1, riscv.F2)), func(r *emu.RVRegFile) {
				r.F[1], r.F[2] = d(math.NaN()), d(1)
			})
			Expect(r.Flags()).To(Equal(emu.FlagNV))
		})

		DescribeTable("classification",
			func(v float64, want uint64) {
				r := run1(must(a.FclassD(riscv.A0, riscv.F1)), func(r *emu.RVRegFile) {
					r.F[1] = d(v)
				})
				Expect(r.ReadReg(riscv.A0)).To(Equal(want))
			},
			Entry("negative infinity", math.Inf(-1), uint64(1<<0)),
			Entry("negative normal", -1.0, uint64(1<<1)),
			Entry("negative zero", math.Copysign(0, -1), uint64(1<<3)),
			Entry("positive subnormal", math.SmallestNonzeroFloat64, uint64(1<<5)),
			Entry("positive normal", 1.0, uint64(1<<6)),
			Entry("quiet NaN", math.NaN(), uint64(1<<9)),
		)

		It("should move raw bits between register files", func() {
			r := run1(must(a.FmvXW(riscv.A0, riscv.F1)), func(r *emu.RVRegFile) {
				r.F[1] = s(-1)
			})
			Expect(r.ReadReg(riscv.A0)).To(Equal(uint64(0xffffffffbf800000)))
		})

		It("should load and store singles NaN-boxed", func() {
			p.w(a.Flw(riscv.F0, riscv.SP, 0)).
				w(a.Fsd(riscv.SP, riscv.F0, 8))

			e := load(emu.WithStackPointer(0x8000))
			e.Memory().Write32(0x8000, math.Float32bits(2.5))
			step(e, 2)

			Expect(e.RegFile().F[0]).To(Equal(s(2.5)))
			Expect(e.Memory().Read64(0x8008)).To(Equal(s(2.5)))
		})

		It("should reject a reserved dynamic rounding mode", func() {
			p.w(a.FaddD(riscv.F0, riscv.F1, riscv.F2, riscv.DYN))

			e := load()
			e.RegFile().FCSR = 5 << 5
			result := e.Step()

			Expect(errors.Is(result.Err, emu.ErrRoundingMode)).To(BeTrue())
		})
	})
})
