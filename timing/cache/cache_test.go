package cache_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/timing/cache"
)

var _ = Describe("Cache", func() {
	var (
		c      *cache.Cache
		memory *emu.Memory
	)

	BeforeEach(func() {
		memory = emu.NewMemory()
		// 4KB, 4-way, 64B lines: 16 sets
		c = cache.New(cache.Config{
			Size:          4 * 1024,
			Associativity: 4,
			BlockSize:     64,
			HitLatency:    1,
			MissLatency:   10,
		}, cache.NewMemoryBacking(memory))
	})

	Describe("Read", func() {
		It("should miss on a cold cache", func() {
			memory.Write64(0x1000, 0xDEADBEEF)

			result := c.Read(0x1000, 8)
			Expect(result.Hit).To(BeFalse())
			Expect(result.Latency).To(Equal(uint64(10)))
			Expect(result.Data).To(Equal(uint64(0xDEADBEEF)))

			stats := c.Stats()
			Expect(stats.Reads).To(Equal(uint64(1)))
			Expect(stats.Misses).To(Equal(uint64(1)))
			Expect(stats.Hits).To(BeZero())
		})

		It("should hit on cached data", func() {
			memory.Write64(0x1000, 0xCAFEBABE)

			c.Read(0x1000, 8)
			result := c.Read(0x1000, 8)

			Expect(result.Hit).To(BeTrue())
			Expect(result.Latency).To(Equal(uint64(1)))
			Expect(result.Data).To(Equal(uint64(0xCAFEBABE)))
			Expect(c.Stats().Cycles).To(Equal(uint64(11)))
		})

		It("should hit on other words of a filled line", func() {
			memory.Write32(0x1000, 0x11111111)
			memory.Write32(0x1004, 0x22222222)

			c.Read(0x1000, 4)
			result := c.Read(0x1004, 4)

			Expect(result.Hit).To(BeTrue())
			Expect(result.Data).To(Equal(uint64(0x22222222)))
		})

		It("should join reads that cross a line boundary", func() {
			memory.Write32(0x103e, 0xaabbccdd)

			result := c.Read(0x103e, 4)

			Expect(result.Data).To(Equal(uint64(0xaabbccdd)))
			Expect(result.Latency).To(Equal(uint64(20)))
			Expect(c.Stats().Misses).To(Equal(uint64(2)))

			Expect(c.Read(0x1040, 2).Hit).To(BeTrue())
		})

		It("should reject out of range sizes", func() {
			Expect(func() { c.Read(0, 9) }).To(Panic())
		})
	})

	Describe("Eviction", func() {
		It("should replace the least recently used line of a full set", func() {
			for _, addr := range []uint64{0x0000, 0x0400, 0x0800, 0x0C00} {
				Expect(c.Read(addr, 4).Hit).To(BeFalse())
			}
			Expect(c.Read(0x0000, 4).Hit).To(BeTrue())

			result := c.Read(0x1000, 4)
			Expect(result.Hit).To(BeFalse())
			Expect(result.Evicted).To(BeTrue())
			Expect(result.EvictedAddr).To(Equal(uint64(0x0400)))
			Expect(c.Stats().Evictions).To(Equal(uint64(1)))

			Expect(c.Read(0x0000, 4).Hit).To(BeTrue())
		})
	})

	Describe("Invalidate", func() {
		It("should reread memory after invalidation", func() {
			memory.Write32(0x2000, 1)
			c.Read(0x2000, 4)

			memory.Write32(0x2000, 2)
			Expect(c.Read(0x2000, 4).Data).To(Equal(uint64(1)))

			c.Invalidate(0x2000)
			Expect(c.Read(0x2000, 4).Data).To(Equal(uint64(2)))
		})

		It("should clear every line and counter on reset", func() {
			c.Read(0x2000, 4)
			c.Reset()

			Expect(c.Stats()).To(Equal(cache.Statistics{}))
			Expect(c.Read(0x2000, 4).Hit).To(BeFalse())
		})
	})

	Describe("Config", func() {
		It("should validate the default instruction cache", func() {
			Expect(cache.DefaultL1IConfig().Validate()).To(Succeed())
		})

		DescribeTable("invalid geometry",
			func(cfg cache.Config) {
				Expect(cfg.Validate()).NotTo(Succeed())
				Expect(func() { cache.New(cfg, nil) }).To(Panic())
			},
			Entry("zero size", cache.Config{Associativity: 1, BlockSize: 64}),
			Entry("odd block size", cache.Config{Size: 4800, Associativity: 1, BlockSize: 48}),
			Entry("partial set", cache.Config{Size: 1000, Associativity: 4, BlockSize: 64}),
		)

		It("should report the hit rate", func() {
			Expect(cache.Statistics{}.HitRate()).To(BeZero())
			Expect(cache.Statistics{Hits: 3, Misses: 1}.HitRate()).To(Equal(0.75))
		})
	})

	Describe("Instruction fetch", func() {
		It("should serve an emulator's fetches", func() {
			var a a64.Assembler
			var code []byte
			for _, enc := range []func() (uint32, error){
				func() (uint32, error) { return a.Movz(a64.X, a64.X0, 0, 0) },
				func() (uint32, error) { return a.Movz(a64.X, a64.X1, 100, 0) },
				func() (uint32, error) { return a.AddImm(a64.X, a64.X0, a64.X0, 1, 0) },
				func() (uint32, error) { return a.SubsImm(a64.X, a64.X1, a64.X1, 1, 0) },
				func() (uint32, error) { return a.BCond(a64.CondNE, -8) },
				func() (uint32, error) { return a.Movz(a64.X, a64.X8, uint16(emu.SyscallExit), 0) },
				func() (uint32, error) { return a.Svc(0) },
			} {
				w, err := enc()
				Expect(err).NotTo(HaveOccurred())
				code = binary.LittleEndian.AppendUint32(code, w)
			}

			e := emu.NewEmulator(emu.WithMemory(memory), emu.WithFetchCache(c))
			e.LoadProgram(0x4000, code)
			exit, err := e.Run()

			Expect(err).NotTo(HaveOccurred())
			Expect(exit).To(Equal(int64(100)))
			stats := c.Stats()
			Expect(stats.Reads).To(Equal(e.InstructionCount()))
			Expect(stats.Misses).To(Equal(uint64(1)))
		})
	})
})
