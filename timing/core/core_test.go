package core_test

import (
	"bytes"
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
	"github.com/sarchlab/diss/timing/cache"
	"github.com/sarchlab/diss/timing/core"
	"github.com/sarchlab/diss/timing/latency"
)

const entry = 0x1000

func load(memory *emu.Memory, encs ...func() (uint32, error)) {
	var code []byte
	for _, enc := range encs {
		w, err := enc()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		code = binary.LittleEndian.AppendUint32(code, w)
	}
	memory.LoadProgram(entry, code)
}

var _ = Describe("Core", func() {
	var (
		memory *emu.Memory
		a      a64.Assembler
	)

	BeforeEach(func() {
		memory = emu.NewMemory()
		// A ten-iteration countdown, then x0 = 6 / 2 and exit.
		load(memory,
			func() (uint32, error) { return a.Movz(a64.X, a64.X1, 10, 0) },
			func() (uint32, error) { return a.SubsImm(a64.X, a64.X1, a64.X1, 1, 0) },
			func() (uint32, error) { return a.BCond(a64.CondNE, -4) },
			func() (uint32, error) { return a.Movz(a64.X, a64.X0, 6, 0) },
			func() (uint32, error) { return a.Movz(a64.X, a64.X2, 2, 0) },
			func() (uint32, error) { return a.Udiv(a64.X, a64.X0, a64.X0, a64.X2) },
			func() (uint32, error) { return a.Movz(a64.X, a64.X8, uint16(emu.SyscallExit), 0) },
			func() (uint32, error) { return a.Svc(0) },
		)
	})

	It("should run to completion and price every instruction", func() {
		c, err := core.NewCore(insts.ArchA64, memory)
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		code, err := c.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(int64(3)))

		stats := c.Stats()
		Expect(stats.Instructions).To(Equal(uint64(1 + 20 + 5)))
		// 25 single-cycle instructions plus one divide.
		Expect(stats.ExecCycles).To(Equal(uint64(25 + 12)))
		Expect(stats.FetchCycles).To(BeZero())
		Expect(stats.CPI()).To(BeNumerically(">", 1))
		Expect(c.ICache()).To(BeNil())
	})

	It("should add instruction cache time", func() {
		cfg := cache.DefaultL1IConfig()
		c, err := core.NewCore(insts.ArchA64, memory, core.WithICache(cfg))
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		_, err = c.Run()
		Expect(err).NotTo(HaveOccurred())

		stats := c.Stats()
		Expect(c.ICache().Stats().Misses).To(Equal(uint64(1)))
		Expect(stats.FetchCycles).To(Equal(cfg.MissLatency + 25*cfg.HitLatency))
		Expect(stats.Cycles()).To(Equal(stats.ExecCycles + stats.FetchCycles))
	})

	It("should charge mispredicted branches", func() {
		c, err := core.NewCore(insts.ArchA64, memory, core.WithBranchPredictor(core.DefaultPredictorConfig()))
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		_, err = c.Run()
		Expect(err).NotTo(HaveOccurred())

		// The first taken branch misses the BTB and the loop exit goes
		// against the counter.
		stats := c.Stats()
		Expect(stats.Branches).To(Equal(uint64(10)))
		Expect(stats.Mispredictions).To(Equal(uint64(2)))
		Expect(stats.PenaltyCycles).To(Equal(uint64(24)))
		Expect(stats.Cycles()).To(Equal(uint64(25 + 12 + 24)))
		Expect(c.Predictor().Stats().Correct).To(Equal(uint64(8)))
	})

	It("should use a custom latency table", func() {
		cfg := latency.DefaultTimingConfig()
		cfg.DivideLatency = 100
		c, err := core.NewCore(insts.ArchA64, memory, core.WithLatencyTable(latency.NewTableWithConfig(cfg)))
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		_, err = c.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Stats().ExecCycles).To(Equal(uint64(25 + 100)))
	})

	It("should pass options to the emulator", func() {
		c, err := core.NewCore(insts.ArchA64, memory,
			core.WithEmulatorOptions(emu.WithMaxInstructions(5)))
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		code, err := c.Run()
		Expect(err).To(MatchError(emu.ErrInstructionLimit))
		Expect(code).To(Equal(int64(-1)))
		Expect(c.Stats().Instructions).To(Equal(uint64(5)))
	})

	It("should run RISC-V programs", func() {
		var r riscv.Assembler
		rv := emu.NewMemory()
		load(rv,
			func() (uint32, error) { return r.Addi(riscv.A0, riscv.Zero, 4) },
			func() (uint32, error) { return r.Addi(riscv.A7, riscv.Zero, int32(emu.SyscallExit)) },
			func() (uint32, error) { return r.Ecall() },
		)
		var stdout bytes.Buffer
		c, err := core.NewCore(insts.ArchRV64GC, rv, core.WithEmulatorOptions(emu.WithStdout(&stdout)))
		Expect(err).NotTo(HaveOccurred())
		c.SetPC(entry)

		code, err := c.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(int64(4)))
		Expect(c.Stats().Instructions).To(Equal(uint64(3)))
		Expect(c.Close()).To(Succeed())
	})

	It("should reject bad configurations", func() {
		_, err := core.NewCore(insts.ArchUnknown, memory)
		Expect(err).To(HaveOccurred())

		_, err = core.NewCore(insts.ArchA64, memory, core.WithICache(cache.Config{}))
		Expect(err).To(MatchError(ContainSubstring("invalid icache config")))

		_, err = core.NewCore(insts.ArchA64, memory, core.WithBranchPredictor(core.PredictorConfig{}))
		Expect(err).To(MatchError(ContainSubstring("invalid branch predictor config")))
	})
})
