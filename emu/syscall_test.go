package emu_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/emu"
)

func negErrno(code int) uint64 {
	return uint64(-int64(code))
}

var _ = Describe("Syscall Handler", func() {
	var (
		memory  *emu.Memory
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		handler *emu.DefaultSyscallHandler
	)

	BeforeEach(func() {
		memory = emu.NewMemory()
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		handler = emu.NewDefaultSyscallHandler(memory, stdout, stderr)
	})

	AfterEach(func() {
		Expect(handler.Close()).To(Succeed())
	})

	call := func(num uint64, args ...uint64) emu.SyscallResult {
		c := emu.Syscall{Num: num}
		copy(c.Args[:], args)
		return handler.Handle(c)
	}

	It("should return ENOSYS for unknown syscall numbers", func() {
		result := call(999)

		Expect(result.Exited).To(BeFalse())
		Expect(result.Ret).To(Equal(negErrno(emu.ENOSYS)))
	})

	It("should exit with the requested status", func() {
		Expect(call(emu.SyscallExit, 42)).To(Equal(emu.SyscallResult{Exited: true, ExitCode: 42}))
		Expect(call(emu.SyscallExitGroup, 3).ExitCode).To(Equal(int64(3)))
	})

	Describe("write", func() {
		It("should write to stdout and stderr", func() {
			memory.WriteBytes(0x1000, []byte("hello"))

			Expect(call(emu.SyscallWrite, 1, 0x1000, 5).Ret).To(Equal(uint64(5)))
			Expect(call(emu.SyscallWrite, 2, 0x1000, 4).Ret).To(Equal(uint64(4)))

			Expect(stdout.String()).To(Equal("hello"))
			Expect(stderr.String()).To(Equal("hell"))
		})

		It("should return EBADF for an unknown descriptor", func() {
			Expect(call(emu.SyscallWrite, 42, 0, 5).Ret).To(Equal(negErrno(emu.EBADF)))
		})

		It("should return EBADF once stdout is closed", func() {
			Expect(call(emu.SyscallClose, 1).Ret).To(BeZero())
			Expect(call(emu.SyscallWrite, 1, 0, 1).Ret).To(Equal(negErrno(emu.EBADF)))
		})
	})

	Describe("read", func() {
		It("should copy stdin into guest memory", func() {
			handler.SetStdin(strings.NewReader("abc"))

			Expect(call(emu.SyscallRead, 0, 0x2000, 16).Ret).To(Equal(uint64(3)))
			Expect(memory.ReadBytes(0x2000, 3)).To(Equal([]byte("abc")))
		})

		It("should report end of input as zero bytes", func() {
			handler.SetStdin(strings.NewReader(""))

			Expect(call(emu.SyscallRead, 0, 0x2000, 16).Ret).To(BeZero())
		})
	})

	Describe("close", func() {
		It("should close each stdio descriptor once", func() {
			for fd := uint64(0); fd < 3; fd++ {
				Expect(call(emu.SyscallClose, fd).Ret).To(BeZero())
				Expect(call(emu.SyscallClose, fd).Ret).To(Equal(negErrno(emu.EBADF)))
			}
		})
	})

	Describe("file access", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		openat := func(path string, flags, mode uint64) uint64 {
			memory.WriteBytes(0x1000, append([]byte(path), 0))
			return call(emu.SyscallOpenat, emu.AtFDCWD, 0x1000, flags, mode).Ret
		}

		It("should open, read and seek an existing file", func() {
			name := filepath.Join(dir, "in.txt")
			Expect(os.WriteFile(name, []byte("hello world"), 0o644)).To(Succeed())

			fd := openat(name, 0, 0)
			Expect(fd).To(BeNumerically(">=", 3))

			Expect(call(emu.SyscallLseek, fd, 6, 0).Ret).To(Equal(uint64(6)))
			Expect(call(emu.SyscallRead, fd, 0x3000, 5).Ret).To(Equal(uint64(5)))
			Expect(memory.ReadBytes(0x3000, 5)).To(Equal([]byte("world")))

			Expect(call(emu.SyscallClose, fd).Ret).To(BeZero())
		})

		It("should create and write a new file", func() {
			name := filepath.Join(dir, "out.txt")
			memory.WriteBytes(0x4000, []byte("data"))

			fd := openat(name, 0x1|0x40, 0o644)
			Expect(fd).To(BeNumerically(">=", 3))
			Expect(call(emu.SyscallWrite, fd, 0x4000, 4).Ret).To(Equal(uint64(4)))
			Expect(call(emu.SyscallClose, fd).Ret).To(BeZero())

			Expect(os.ReadFile(name)).To(Equal([]byte("data")))
		})

		It("should return ENOENT for a missing file", func() {
			Expect(openat(filepath.Join(dir, "missing"), 0, 0)).To(Equal(negErrno(emu.ENOENT)))
		})

		It("should return EEXIST for an exclusive create of an existing file", func() {
			name := filepath.Join(dir, "dup")
			Expect(os.WriteFile(name, nil, 0o644)).To(Succeed())

			Expect(openat(name, 0x1|0x40|0x80, 0o644)).To(Equal(negErrno(emu.EEXIST)))
		})

		It("should allocate sequential descriptors", func() {
			a := filepath.Join(dir, "a")
			b := filepath.Join(dir, "b")
			Expect(os.WriteFile(a, nil, 0o644)).To(Succeed())
			Expect(os.WriteFile(b, nil, 0o644)).To(Succeed())

			fd1 := openat(a, 0, 0)
			fd2 := openat(b, 0, 0)
			Expect(fd2).To(Equal(fd1 + 1))
			Expect(handler.FDTable().IsOpen(fd2)).To(BeTrue())
		})
	})
})
