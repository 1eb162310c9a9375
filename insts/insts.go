// Package insts provides the decode machinery shared by the per-ISA
// instruction packages.
//
// It defines the three-way failure taxonomy reported by every decoder
// (unallocated encodings, unimplemented classes and handler errors), the
// declarative mask/match tables both ISAs dispatch through, and the coarse
// instruction classes used by the cost model.
//
// Usage:
//
//	inst, err := riscv.Decode(0x00000013) // addi zero, zero, 0
//	if insts.IsUnallocated(err) {
//		// not an instruction
//	}
package insts

import (
	"fmt"
	"strings"
)

// Arch identifies a supported instruction set.
type Arch uint8

// Supported instruction sets.
const (
	ArchUnknown Arch = iota
	ArchA64          // ARMv8-A, A64 state
	ArchRV64GC       // RISC-V RV64GC
)

// String returns the canonical lower-case name of the architecture.
func (a Arch) String() string {
	switch a {
	case ArchA64:
		return "a64"
	case ArchRV64GC:
		return "rv64gc"
	default:
		return "unknown"
	}
}

// ParseArch accepts the canonical names plus a few common aliases.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a64", "arm64", "aarch64":
		return ArchA64, nil
	case "rv64gc", "rv64", "riscv", "riscv64":
		return ArchRV64GC, nil
	default:
		return ArchUnknown, fmt.Errorf("unknown architecture %q", s)
	}
}

// Class is a coarse instruction class used for cost accounting.
type Class uint8

// Instruction classes.
const (
	ClassOther Class = iota
	ClassALU
	ClassMultiply
	ClassDivide
	ClassBranch
	ClassLoad
	ClassStore
	ClassSystem
	ClassFloat
	ClassFloatDivide
	NumClasses
)

var classNames = [NumClasses]string{
	"other", "alu", "multiply", "divide", "branch",
	"load", "store", "system", "float", "float-divide",
}

func (c Class) String() string {
	if c >= NumClasses {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}
