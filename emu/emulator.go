// Package emu provides functional interpreters for A64 and RV64GC programs.
// Both are decode handlers: each step fetches a word, decodes it and hands
// the result to an executor that implements the architecture's visitor.
package emu

import (
	"github.com/sarchlab/diss/insts/a64"
)

// Emulator executes A64 instructions functionally.
type Emulator struct {
	machine

	regFile *RegFile
	exec    *a64Exec
}

// NewEmulator creates a new A64 emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		machine: newMachine(opts),
		regFile: &RegFile{},
	}
	if e.stackPointer != nil {
		e.regFile.SP = *e.stackPointer
	}
	e.exec = &a64Exec{regs: e.regFile, alu: NewALU(e.regFile), m: &e.machine}
	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// LoadProgram copies program into memory and sets the entry point.
func (e *Emulator) LoadProgram(entry uint64, program []byte) {
	e.memory.LoadProgram(entry, program)
	e.regFile.PC = entry
}

// SetPC sets the address of the next instruction.
func (e *Emulator) SetPC(pc uint64) {
	e.regFile.PC = pc
}

// Step executes a single instruction.
// Returns a StepResult indicating whether execution should continue.
func (e *Emulator) Step() StepResult {
	if e.limitReached() {
		return StepResult{Err: ErrInstructionLimit}
	}

	pc := e.regFile.PC
	word := e.fetch32(pc)
	eff, err := a64.Disassemble[Effect](e.exec, word)
	if err != nil {
		return e.fault(pc, err)
	}
	e.retire(pc, word)

	if eff.Exited {
		e.regFile.PC = pc + 4
		return StepResult{Exited: true, ExitCode: eff.ExitCode}
	}
	if eff.Jump {
		e.regFile.PC = eff.Target
	} else {
		e.regFile.PC = pc + 4
	}
	return StepResult{}
}

// Run executes instructions until the program exits or an error occurs.
// It returns the exit code, or -1 with the error.
func (e *Emulator) Run() (int64, error) {
	return run(e.Step)
}
