package emu

import (
	"github.com/sarchlab/diss/insts/riscv"
)

// RVEmulator executes RV64GC instructions functionally. Compressed and
// standard instructions may be freely mixed.
type RVEmulator struct {
	machine

	regFile *RVRegFile
	exec    *rvExec
}

// NewRVEmulator creates a new RISC-V emulator.
func NewRVEmulator(opts ...EmulatorOption) *RVEmulator {
	e := &RVEmulator{
		machine: newMachine(opts),
		regFile: &RVRegFile{},
	}
	if e.stackPointer != nil {
		e.regFile.X[riscv.SP] = *e.stackPointer
	}
	e.exec = &rvExec{regs: e.regFile, m: &e.machine}
	return e
}

// RegFile returns the emulator's register file.
func (e *RVEmulator) RegFile() *RVRegFile {
	return e.regFile
}

// LoadProgram copies program into memory and sets the entry point.
func (e *RVEmulator) LoadProgram(entry uint64, program []byte) {
	e.memory.LoadProgram(entry, program)
	e.regFile.PC = entry
}

// SetPC sets the address of the next instruction.
func (e *RVEmulator) SetPC(pc uint64) {
	e.regFile.PC = pc
}

// Step executes a single instruction.
func (e *RVEmulator) Step() StepResult {
	if e.limitReached() {
		return StepResult{Err: ErrInstructionLimit}
	}

	pc := e.regFile.PC
	word := uint32(e.fetch16(pc))
	if riscv.Length(word) == 4 {
		word = e.fetch32(pc)
	}
	size := uint64(riscv.Length(word))

	eff, err := riscv.Disassemble[Effect](e.exec, word)
	if err != nil {
		return e.fault(pc, err)
	}
	e.retire(pc, word)

	if eff.Exited {
		e.regFile.PC = pc + size
		return StepResult{Exited: true, ExitCode: eff.ExitCode}
	}
	if eff.Jump {
		e.regFile.PC = eff.Target
	} else {
		e.regFile.PC = pc + size
	}
	return StepResult{}
}

// Run executes instructions until the program exits or an error occurs.
// It returns the exit code, or -1 with the error.
func (e *RVEmulator) Run() (int64, error) {
	return run(e.Step)
}
