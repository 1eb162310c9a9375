package emu

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Linux syscall numbers. arm64 and riscv64 share the generic table.
const (
	SyscallOpenat    uint64 = 56 // openat(dirfd, path, flags, mode)
	SyscallClose     uint64 = 57 // close(fd)
	SyscallLseek     uint64 = 62 // lseek(fd, offset, whence)
	SyscallRead      uint64 = 63 // read(fd, buf, count)
	SyscallWrite     uint64 = 64 // write(fd, buf, count)
	SyscallExit      uint64 = 93 // exit(status)
	SyscallExitGroup uint64 = 94 // exit_group(status)
)

// Linux error codes.
const (
	ENOENT = 2
	EIO    = 5
	EBADF  = 9
	EACCES = 13
	EEXIST = 17
	EINVAL = 22
	ENOSYS = 38
)

// Linux open flags, generic layout.
const (
	linuxOWronly = 0x1
	linuxORdwr   = 0x2
	linuxOCreat  = 0x40
	linuxOExcl   = 0x80
	linuxOTrunc  = 0x200
	linuxOAppend = 0x400
)

// AtFDCWD is the openat dirfd meaning the working directory.
const AtFDCWD = ^uint64(99)

const maxPathLen = 4096

// Syscall is a system call request read from the argument registers.
// Arguments come from x0-x5 on A64 and a0-a5 on RISC-V.
type Syscall struct {
	Num  uint64
	Args [6]uint64
}

// SyscallResult is the outcome of one system call.
type SyscallResult struct {
	// Exited is true if the call terminated the program.
	Exited bool

	// ExitCode is the exit status if Exited is true.
	ExitCode int64

	// Ret is placed in the return register (x0 or a0). Errors are negated
	// errno values.
	Ret uint64
}

// SyscallHandler services system calls for an emulator.
type SyscallHandler interface {
	Handle(call Syscall) SyscallResult
}

// DefaultSyscallHandler implements the file and exit calls against a
// guest memory and a host descriptor table.
type DefaultSyscallHandler struct {
	memory *Memory
	fds    *FDTable
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewDefaultSyscallHandler creates a handler with a fresh FDTable.
func NewDefaultSyscallHandler(memory *Memory, stdout, stderr io.Writer) *DefaultSyscallHandler {
	return &DefaultSyscallHandler{
		memory: memory,
		fds:    NewFDTable(),
		stdout: stdout,
		stderr: stderr,
	}
}

// SetStdin sets the reader behind descriptor 0.
func (h *DefaultSyscallHandler) SetStdin(stdin io.Reader) {
	h.stdin = stdin
}

// FDTable returns the handler's descriptor table.
func (h *DefaultSyscallHandler) FDTable() *FDTable {
	return h.fds
}

// Close closes every file the guest left open.
func (h *DefaultSyscallHandler) Close() error {
	return h.fds.CloseAll()
}

// Handle dispatches on the syscall number.
func (h *DefaultSyscallHandler) Handle(call Syscall) SyscallResult {
	switch call.Num {
	case SyscallRead:
		return h.read(call.Args[0], call.Args[1], call.Args[2])
	case SyscallWrite:
		return h.write(call.Args[0], call.Args[1], call.Args[2])
	case SyscallOpenat:
		return h.openat(call.Args[1], call.Args[2], call.Args[3])
	case SyscallClose:
		if err := h.fds.Close(call.Args[0]); err != nil {
			return failure(EBADF)
		}
		return SyscallResult{}
	case SyscallLseek:
		pos, err := h.fds.Seek(call.Args[0], int64(call.Args[1]), int(call.Args[2]))
		if err != nil {
			return failure(errno(err))
		}
		return SyscallResult{Ret: uint64(pos)}
	case SyscallExit, SyscallExitGroup:
		return SyscallResult{Exited: true, ExitCode: int64(call.Args[0])}
	default:
		return failure(ENOSYS)
	}
}

func failure(code int) SyscallResult {
	return SyscallResult{Ret: uint64(-int64(code))}
}

func errno(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ENOENT
	case errors.Is(err, fs.ErrPermission):
		return EACCES
	case errors.Is(err, fs.ErrExist):
		return EEXIST
	case errors.Is(err, os.ErrInvalid):
		return EBADF
	default:
		return EIO
	}
}

func (h *DefaultSyscallHandler) read(fd, buf, count uint64) SyscallResult {
	data := make([]byte, count)

	var (
		n   int
		err error
	)
	switch {
	case fd == 0 && h.fds.IsOpen(0):
		if h.stdin == nil {
			return SyscallResult{}
		}
		n, err = h.stdin.Read(data)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		n, err = h.fds.Read(fd, data)
	}
	if err != nil && n == 0 {
		return failure(errno(err))
	}

	h.memory.WriteBytes(buf, data[:n])
	return SyscallResult{Ret: uint64(n)}
}

func (h *DefaultSyscallHandler) write(fd, buf, count uint64) SyscallResult {
	data := h.memory.ReadBytes(buf, int(count))

	var (
		n   int
		err error
	)
	switch {
	case fd == 1 && h.fds.IsOpen(1):
		n, err = h.stdout.Write(data)
	case fd == 2 && h.fds.IsOpen(2):
		n, err = h.stderr.Write(data)
	default:
		n, err = h.fds.Write(fd, data)
	}
	if err != nil {
		return failure(errno(err))
	}
	return SyscallResult{Ret: uint64(n)}
}

// openat resolves paths against the host working directory; dirfd is
// ignored.
func (h *DefaultSyscallHandler) openat(path, flags, mode uint64) SyscallResult {
	name, ok := h.memory.ReadCString(path, maxPathLen)
	if !ok || name == "" {
		return failure(EINVAL)
	}

	fd, err := h.fds.Open(name, hostFlags(flags), os.FileMode(mode&0o777))
	if err != nil {
		return failure(errno(err))
	}
	return SyscallResult{Ret: fd}
}

func hostFlags(flags uint64) int {
	var out int
	switch flags & 0x3 {
	case linuxOWronly:
		out = os.O_WRONLY
	case linuxORdwr:
		out = os.O_RDWR
	default:
		out = os.O_RDONLY
	}
	if flags&linuxOCreat != 0 {
		out |= os.O_CREATE
	}
	if flags&linuxOExcl != 0 {
		out |= os.O_EXCL
	}
	if flags&linuxOTrunc != 0 {
		out |= os.O_TRUNC
	}
	if flags&linuxOAppend != 0 {
		out |= os.O_APPEND
	}
	return out
}
