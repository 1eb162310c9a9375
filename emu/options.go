package emu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrInstructionLimit is returned by Step once the configured instruction
// limit has been retired.
var ErrInstructionLimit = errors.New("max instructions reached")

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Exited is true if the program terminated (via exit syscall).
	Exited bool

	// ExitCode is the exit status if Exited is true.
	ExitCode int64

	// Err is set if an error occurred during execution.
	Err error
}

// Effect is what an executed instruction did to control flow. An empty
// Effect falls through to the next instruction.
type Effect struct {
	Jump   bool
	Target uint64

	Exited   bool
	ExitCode int64
}

// BreakpointError reports a breakpoint instruction (BRK, HLT, EBREAK).
type BreakpointError struct {
	PC  uint64
	Imm uint16
}

func (e *BreakpointError) Error() string {
	return fmt.Sprintf("breakpoint #%#x at pc %#x", e.Imm, e.PC)
}

// FetchCache supplies instruction bytes in place of direct memory reads.
type FetchCache interface {
	Fetch(addr uint64, size int) uint64
}

// machine is the state both emulators share.
type machine struct {
	memory   *Memory
	syscalls SyscallHandler
	fetch    FetchCache
	logger   *slog.Logger
	trace    func(pc uint64, word uint32)

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stackPointer     *uint64
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption configures an Emulator or an RVEmulator.
type EmulatorOption func(*machine)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(m *machine) {
		m.stdout = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) EmulatorOption {
	return func(m *machine) {
		m.stderr = w
	}
}

// WithStdin sets the reader behind descriptor 0 of the default syscall
// handler.
func WithStdin(r io.Reader) EmulatorOption {
	return func(m *machine) {
		m.stdin = r
	}
}

// WithSyscallHandler sets a custom syscall handler.
func WithSyscallHandler(handler SyscallHandler) EmulatorOption {
	return func(m *machine) {
		m.syscalls = handler
	}
}

// WithStackPointer sets the initial stack pointer value.
func WithStackPointer(sp uint64) EmulatorOption {
	return func(m *machine) {
		m.stackPointer = &sp
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(m *machine) {
		m.maxInstructions = max
	}
}

// WithMemory runs the emulator on an existing memory, typically one a
// loader has already populated.
func WithMemory(mem *Memory) EmulatorOption {
	return func(m *machine) {
		m.memory = mem
	}
}

// WithFetchCache routes instruction fetches through c.
func WithFetchCache(c FetchCache) EmulatorOption {
	return func(m *machine) {
		m.fetch = c
	}
}

// WithTrace calls fn after every instruction that executes, with its
// address and raw word. Compressed RISC-V words occupy the low 16 bits.
func WithTrace(fn func(pc uint64, word uint32)) EmulatorOption {
	return func(m *machine) {
		m.trace = fn
	}
}

// WithLogger sets the logger that receives step faults at debug level.
func WithLogger(l *slog.Logger) EmulatorOption {
	return func(m *machine) {
		m.logger = l
	}
}

func newMachine(opts []EmulatorOption) machine {
	m := machine{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.memory == nil {
		m.memory = NewMemory()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.syscalls == nil {
		h := NewDefaultSyscallHandler(m.memory, m.stdout, m.stderr)
		h.SetStdin(m.stdin)
		m.syscalls = h
	}
	return m
}

// Memory returns the emulator's memory.
func (m *machine) Memory() *Memory {
	return m.memory
}

// InstructionCount returns the number of instructions executed.
func (m *machine) InstructionCount() uint64 {
	return m.instructionCount
}

// Close releases host files held by the default syscall handler.
func (m *machine) Close() error {
	if c, ok := m.syscalls.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// retire counts an executed instruction.
func (m *machine) retire(pc uint64, word uint32) {
	m.instructionCount++
	if m.trace != nil {
		m.trace(pc, word)
	}
}

func (m *machine) limitReached() bool {
	return m.maxInstructions > 0 && m.instructionCount >= m.maxInstructions
}

func (m *machine) fetch16(addr uint64) uint16 {
	if m.fetch != nil {
		return uint16(m.fetch.Fetch(addr, 2))
	}
	return m.memory.Read16(addr)
}

func (m *machine) fetch32(addr uint64) uint32 {
	if m.fetch != nil {
		return uint32(m.fetch.Fetch(addr, 4))
	}
	return m.memory.Read32(addr)
}

// fault logs err and wraps it with the faulting pc.
func (m *machine) fault(pc uint64, err error) StepResult {
	m.logger.Debug("step fault", "pc", fmt.Sprintf("%#x", pc), "err", err)
	return StepResult{Err: fmt.Errorf("pc %#x: %w", pc, err)}
}

// run steps until exit or error. An error exit reports code -1.
func run(step func() StepResult) (int64, error) {
	for {
		result := step()
		if result.Exited {
			return result.ExitCode, result.Err
		}
		if result.Err != nil {
			return -1, result.Err
		}
	}
}
