// Package core runs a program on a functional emulator and estimates its
// cycle count. The model is unpipelined: each instruction costs the latency
// of its class. An attached instruction cache adds fetch time, and an
// attached branch predictor adds the misprediction penalty.
package core

import (
	"fmt"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/riscv"
	"github.com/sarchlab/diss/timing/cache"
	"github.com/sarchlab/diss/timing/latency"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Instructions is the number of instructions retired.
	Instructions uint64
	// ExecCycles is the summed class latency of retired instructions.
	ExecCycles uint64
	// FetchCycles is the instruction cache time, zero without a cache.
	FetchCycles uint64

	// Branches counts resolved branches; it stays zero without a predictor.
	Branches       uint64
	Mispredictions uint64
	PenaltyCycles  uint64
}

// Cycles returns the estimated total cycle count.
func (s Stats) Cycles() uint64 {
	return s.ExecCycles + s.FetchCycles + s.PenaltyCycles
}

// CPI returns cycles per instruction, or 0 before any instruction retires.
func (s Stats) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles()) / float64(s.Instructions)
}

// emulator is what Core needs from emu.Emulator and emu.RVEmulator.
type emulator interface {
	SetPC(pc uint64)
	Step() emu.StepResult
	InstructionCount() uint64
	Close() error
}

// Option configures a Core.
type Option func(*Core)

// WithLatencyTable prices instructions with t instead of the default table.
func WithLatencyTable(t *latency.Table) Option {
	return func(c *Core) {
		c.table = t
	}
}

// WithICache fetches instructions through a cache with the given geometry.
func WithICache(config cache.Config) Option {
	return func(c *Core) {
		c.icacheConfig = &config
	}
}

// WithBranchPredictor charges the misprediction penalty of the latency
// table for each branch a predictor with the given tables gets wrong.
func WithBranchPredictor(config PredictorConfig) Option {
	return func(c *Core) {
		c.predictorConfig = &config
	}
}

// WithEmulatorOptions passes opts to the underlying emulator. WithMemory
// and WithFetchCache are managed by the core.
func WithEmulatorOptions(opts ...emu.EmulatorOption) Option {
	return func(c *Core) {
		c.emuOpts = append(c.emuOpts, opts...)
	}
}

// Core represents a timed CPU core.
type Core struct {
	arch         insts.Arch
	table        *latency.Table
	icacheConfig *cache.Config
	icache       *cache.Cache
	emuOpts      []emu.EmulatorOption

	predictorConfig *PredictorConfig
	predictor       *Predictor
	// pending is the last retired branch, resolved by the next retire.
	pending *branch

	emu   emulator
	stats Stats
}

// NewCore creates a core for arch running on memory.
func NewCore(arch insts.Arch, memory *emu.Memory, opts ...Option) (*Core, error) {
	c := &Core{arch: arch}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = latency.NewTable()
	}

	emuOpts := append(append([]emu.EmulatorOption{}, c.emuOpts...),
		emu.WithMemory(memory),
		emu.WithTrace(c.retire),
	)
	if c.icacheConfig != nil {
		if err := c.icacheConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid icache config: %w", err)
		}
		c.icache = cache.New(*c.icacheConfig, cache.NewMemoryBacking(memory))
		emuOpts = append(emuOpts, emu.WithFetchCache(c.icache))
	}

	if c.predictorConfig != nil {
		if err := c.predictorConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid branch predictor config: %w", err)
		}
		c.predictor = NewPredictor(*c.predictorConfig)
	}

	switch arch {
	case insts.ArchA64:
		c.emu = emu.NewEmulator(emuOpts...)
	case insts.ArchRV64GC:
		c.emu = emu.NewRVEmulator(emuOpts...)
	default:
		return nil, fmt.Errorf("no emulator for %v", arch)
	}
	return c, nil
}

type branch struct {
	pc   uint64
	size uint64
}

func (c *Core) retire(pc uint64, word uint32) {
	if b := c.pending; b != nil {
		c.pending = nil
		c.stats.Branches++
		if c.predictor.Resolve(b.pc, pc != b.pc+b.size, pc) {
			c.stats.Mispredictions++
			c.stats.PenaltyCycles += c.table.MispredictPenalty()
		}
	}

	class, err := c.table.Classify(c.arch, word)
	c.stats.Instructions++
	c.stats.ExecCycles += c.table.Price(class, err)

	if c.predictor != nil && err == nil && class == insts.ClassBranch {
		size := uint64(4)
		if c.arch == insts.ArchRV64GC {
			size = uint64(riscv.Length(word))
		}
		c.pending = &branch{pc: pc, size: size}
	}
}

// SetPC sets the program counter.
func (c *Core) SetPC(pc uint64) {
	c.emu.SetPC(pc)
}

// Step executes one instruction.
func (c *Core) Step() emu.StepResult {
	return c.emu.Step()
}

// Run executes the core until it halts. It returns the exit code, or -1
// with the error that stopped it.
func (c *Core) Run() (int64, error) {
	for {
		result := c.Step()
		if result.Exited {
			return result.ExitCode, result.Err
		}
		if result.Err != nil {
			return -1, result.Err
		}
	}
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	s := c.stats
	if c.icache != nil {
		s.FetchCycles = c.icache.Stats().Cycles
	}
	return s
}

// Predictor returns the branch predictor, or nil when there is none.
func (c *Core) Predictor() *Predictor {
	return c.predictor
}

// ICache returns the instruction cache, or nil when there is none.
func (c *Core) ICache() *cache.Cache {
	return c.icache
}

// Close releases host files held by the emulator.
func (c *Core) Close() error {
	return c.emu.Close()
}
