package latency_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
	"github.com/sarchlab/diss/timing/latency"
)

func must(word uint32, err error) uint32 {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return word
}

var _ = Describe("Latency", func() {
	var table *latency.Table

	BeforeEach(func() {
		table = latency.NewTable()
	})

	Describe("Default Timing Values", func() {
		DescribeTable("class latencies",
			func(class insts.Class, want uint64) {
				Expect(table.GetLatency(class)).To(Equal(want))
			},
			Entry("other", insts.ClassOther, uint64(1)),
			Entry("alu", insts.ClassALU, uint64(1)),
			Entry("multiply", insts.ClassMultiply, uint64(3)),
			Entry("divide", insts.ClassDivide, uint64(12)),
			Entry("branch", insts.ClassBranch, uint64(1)),
			Entry("load", insts.ClassLoad, uint64(4)),
			Entry("store", insts.ClassStore, uint64(1)),
			Entry("system", insts.ClassSystem, uint64(1)),
			Entry("float", insts.ClassFloat, uint64(3)),
			Entry("float divide", insts.ClassFloatDivide, uint64(10)),
		)

		It("should cost unknown classes 1 cycle", func() {
			Expect(table.GetLatency(insts.NumClasses + 3)).To(Equal(uint64(1)))
		})
	})

	Describe("Cost", func() {
		var a64asm a64.Assembler
		var rvasm riscv.Assembler

		It("should price A64 instructions by class", func() {
			Expect(table.Cost(insts.ArchA64, must(a64asm.AddImm(a64.X, a64.X0, a64.X1, 42, 0)))).To(Equal(uint64(1)))
			Expect(table.Cost(insts.ArchA64, must(a64asm.Madd(a64.X, a64.X0, a64.X1, a64.X2, a64.X3)))).To(Equal(uint64(3)))
			Expect(table.Cost(insts.ArchA64, must(a64asm.Udiv(a64.X, a64.X0, a64.X1, a64.X2)))).To(Equal(uint64(12)))
		})

		It("should price RISC-V instructions by class", func() {
			Expect(table.Cost(insts.ArchRV64GC, must(rvasm.Ld(riscv.A0, riscv.A1, 8)))).To(Equal(uint64(4)))
			Expect(table.Cost(insts.ArchRV64GC, must(rvasm.Div(riscv.A0, riscv.A1, riscv.A2)))).To(Equal(uint64(12)))
			Expect(table.Cost(insts.ArchRV64GC,
				must(rvasm.FdivD(riscv.F10, riscv.F10, riscv.F11, riscv.RNE)))).To(Equal(uint64(10)))
		})

		Context("with a distinct other-class latency", func() {
			BeforeEach(func() {
				cfg := latency.DefaultTimingConfig()
				cfg.OtherLatency = 7
				table = latency.NewTableWithConfig(cfg)
			})

			It("should price unimplemented classes as other", func() {
				// ldr x0, [x1]
				Expect(table.Cost(insts.ArchA64, 0xf9400020)).To(Equal(uint64(7)))
			})

			It("should price unallocated words at 1 cycle", func() {
				Expect(table.Cost(insts.ArchA64, 0x00010000)).To(Equal(uint64(1)))
				Expect(table.Cost(insts.ArchRV64GC, 0x00000000)).To(Equal(uint64(1)))
			})

			It("should price words of an unknown architecture at 1 cycle", func() {
				Expect(table.Cost(insts.ArchUnknown, 0x13)).To(Equal(uint64(1)))
			})
		})
	})

	Describe("Classify", func() {
		It("should return the decoded class", func() {
			class, err := table.Classify(insts.ArchRV64GC, 0x00100073)
			Expect(err).NotTo(HaveOccurred())
			Expect(class).To(Equal(insts.ClassSystem))
		})

		It("should report decode failures", func() {
			_, err := table.Classify(insts.ArchA64, 0xf9400020)
			Expect(insts.IsUnimplemented(err)).To(BeTrue())

			_, err = table.Classify(insts.ArchUnknown, 0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Custom Configuration", func() {
		It("should use custom config values", func() {
			cfg := latency.DefaultTimingConfig()
			cfg.LoadLatency = 9
			table = latency.NewTableWithConfig(cfg)

			Expect(table.GetLatency(insts.ClassLoad)).To(Equal(uint64(9)))
			Expect(table.MispredictPenalty()).To(Equal(uint64(12)))
		})

		It("should allow a zero misprediction penalty", func() {
			cfg := latency.DefaultTimingConfig()
			cfg.BranchMispredictPenalty = 0
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should not follow later changes to the config", func() {
			cfg := latency.DefaultTimingConfig()
			table = latency.NewTableWithConfig(cfg)
			cfg.ALULatency = 5

			Expect(table.GetLatency(insts.ClassALU)).To(Equal(uint64(1)))
			Expect(table.Config().ALULatency).To(Equal(uint64(1)))
		})
	})
})

var _ = Describe("TimingConfig", func() {
	Describe("Validation", func() {
		It("should accept the default config", func() {
			Expect(latency.DefaultTimingConfig().Validate()).To(Succeed())
		})

		DescribeTable("zero latencies",
			func(zero func(*latency.TimingConfig), field string) {
				cfg := latency.DefaultTimingConfig()
				zero(cfg)
				Expect(cfg.Validate()).To(MatchError(ContainSubstring(field)))
			},
			Entry(nil, func(c *latency.TimingConfig) { c.ALULatency = 0 }, "alu_latency"),
			Entry(nil, func(c *latency.TimingConfig) { c.BranchLatency = 0 }, "branch_latency"),
			Entry(nil, func(c *latency.TimingConfig) { c.LoadLatency = 0 }, "load_latency"),
			Entry(nil, func(c *latency.TimingConfig) { c.FloatDivideLatency = 0 }, "float_divide_latency"),
		)
	})

	Describe("Clone", func() {
		It("should create independent copy", func() {
			original := latency.DefaultTimingConfig()
			clone := original.Clone()
			clone.ALULatency = 99

			Expect(original.ALULatency).To(Equal(uint64(1)))
			Expect(clone.LoadLatency).To(Equal(original.LoadLatency))
		})
	})

	Describe("File Operations", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		It("should save and load JSON", func() {
			cfg := latency.DefaultTimingConfig()
			cfg.DivideLatency = 20
			path := filepath.Join(dir, "timing.json")

			Expect(cfg.SaveConfig(path)).To(Succeed())
			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("should save and load YAML", func() {
			cfg := latency.DefaultTimingConfig()
			cfg.FloatLatency = 5
			path := filepath.Join(dir, "timing.yaml")

			Expect(cfg.SaveConfig(path)).To(Succeed())
			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("should keep defaults for omitted fields", func() {
			path := filepath.Join(dir, "partial.yml")
			Expect(os.WriteFile(path, []byte("load_latency: 6\n"), 0644)).To(Succeed())

			loaded, err := latency.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.LoadLatency).To(Equal(uint64(6)))
			Expect(loaded.ALULatency).To(Equal(uint64(1)))
		})

		It("should return error for non-existent file", func() {
			_, err := latency.LoadConfig(filepath.Join(dir, "missing.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read")))
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(dir, "bad.json")
			Expect(os.WriteFile(path, []byte("{not json"), 0644)).To(Succeed())

			_, err := latency.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse")))
		})
	})
})
