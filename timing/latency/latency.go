// Package latency provides a per-class instruction cost model.
//
// The model is static: every instruction of a class costs the same number
// of cycles, configured via TimingConfig.
package latency

import (
	"fmt"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

// Table provides instruction latency lookups.
type Table struct {
	config  *TimingConfig
	byClass [insts.NumClasses]uint64
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return NewTableWithConfig(DefaultTimingConfig())
}

// NewTableWithConfig creates a new latency table with custom timing
// configuration. Later changes to config do not affect the table.
func NewTableWithConfig(config *TimingConfig) *Table {
	t := &Table{config: config.Clone()}
	t.byClass = [insts.NumClasses]uint64{
		insts.ClassOther:       config.OtherLatency,
		insts.ClassALU:         config.ALULatency,
		insts.ClassMultiply:    config.MultiplyLatency,
		insts.ClassDivide:      config.DivideLatency,
		insts.ClassBranch:      config.BranchLatency,
		insts.ClassLoad:        config.LoadLatency,
		insts.ClassStore:       config.StoreLatency,
		insts.ClassSystem:      config.SystemLatency,
		insts.ClassFloat:       config.FloatLatency,
		insts.ClassFloatDivide: config.FloatDivideLatency,
	}
	return t
}

// GetLatency returns the execution latency in cycles for an instruction
// class. Classes outside the table cost 1.
func (t *Table) GetLatency(class insts.Class) uint64 {
	if class >= insts.NumClasses {
		return 1
	}
	return t.byClass[class]
}

// Classify decodes word and returns its class. RISC-V compressed
// instructions are taken from the low 16 bits.
func (t *Table) Classify(arch insts.Arch, word uint32) (insts.Class, error) {
	switch arch {
	case insts.ArchA64:
		inst, err := a64.Decode(word)
		return inst.Class(), err
	case insts.ArchRV64GC:
		inst, err := riscv.Decode(word)
		return inst.Class(), err
	}
	return insts.ClassOther, fmt.Errorf("unsupported architecture %v", arch)
}

// Cost decodes word and prices it. A word in a class the decoder does not
// implement costs the other-class latency; any other undecodable word costs
// 1 cycle.
func (t *Table) Cost(arch insts.Arch, word uint32) uint64 {
	return t.Price(t.Classify(arch, word))
}

// MispredictPenalty returns the cycles lost on a branch misprediction.
func (t *Table) MispredictPenalty() uint64 {
	return t.config.BranchMispredictPenalty
}

// Price returns the cost of a decode outcome. A word that decoded costs its
// class latency even if a visitor later rejected it. Other failures are
// priced as in Cost.
func (t *Table) Price(class insts.Class, err error) uint64 {
	switch {
	case err == nil || insts.IsHandler(err):
		return t.GetLatency(class)
	case insts.IsUnimplemented(err):
		return t.GetLatency(insts.ClassOther)
	default:
		return 1
	}
}

// Config returns a copy of the timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config.Clone()
}
