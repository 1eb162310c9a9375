package emu

import (
	"errors"
	"io"
	"os"
	"sync"
)

// FileDescriptor is one entry of the guest's descriptor table.
type FileDescriptor struct {
	HostFile *os.File // nil for the standard streams
	Path     string
	Flags    int
	IsOpen   bool
}

// FDTable maps guest file descriptors to host files. Descriptors 0, 1 and 2
// are the standard streams and have no host file; the syscall handler routes
// them to its configured readers and writers.
type FDTable struct {
	mu     sync.Mutex
	fds    map[uint64]*FileDescriptor
	nextFD uint64
}

// NewFDTable creates a table with the standard streams open.
func NewFDTable() *FDTable {
	t := &FDTable{
		fds:    make(map[uint64]*FileDescriptor),
		nextFD: 3,
	}
	t.fds[0] = &FileDescriptor{Path: "stdin", IsOpen: true}
	t.fds[1] = &FileDescriptor{Path: "stdout", IsOpen: true}
	t.fds[2] = &FileDescriptor{Path: "stderr", IsOpen: true}
	return t
}

// Open opens path on the host and returns the new guest descriptor.
func (t *FDTable) Open(path string, flags int, mode os.FileMode) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(path, flags, mode)
	if err != nil {
		return 0, err
	}

	fd := t.nextFD
	t.nextFD++
	t.fds[fd] = &FileDescriptor{HostFile: f, Path: path, Flags: flags, IsOpen: true}
	return fd, nil
}

// Close closes fd. Closing a standard stream only marks it closed.
func (t *FDTable) Close(fd uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.fds[fd]
	if !ok || !entry.IsOpen {
		return os.ErrInvalid
	}

	entry.IsOpen = false
	if entry.HostFile == nil {
		return nil
	}
	err := entry.HostFile.Close()
	entry.HostFile = nil
	return err
}

// CloseAll closes every host file still open.
func (t *FDTable) CloseAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for _, entry := range t.fds {
		if entry.IsOpen && entry.HostFile != nil {
			errs = append(errs, entry.HostFile.Close())
			entry.HostFile = nil
		}
		entry.IsOpen = false
	}
	return errors.Join(errs...)
}

// Get returns the entry for fd if it is open.
func (t *FDTable) Get(fd uint64) (*FileDescriptor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.fds[fd]
	if !ok || !entry.IsOpen {
		return nil, false
	}
	return entry, true
}

// IsOpen reports whether fd is open.
func (t *FDTable) IsOpen(fd uint64) bool {
	_, ok := t.Get(fd)
	return ok
}

// hostFile returns the host file behind fd. Standard streams have none.
func (t *FDTable) hostFile(fd uint64) (*os.File, error) {
	entry, ok := t.Get(fd)
	if !ok || entry.HostFile == nil {
		return nil, os.ErrInvalid
	}
	return entry.HostFile, nil
}

// Read reads from a host-backed descriptor. End of file reads zero bytes.
func (t *FDTable) Read(fd uint64, buf []byte) (int, error) {
	f, err := t.hostFile(fd)
	if err != nil {
		return 0, err
	}
	n, err := f.Read(buf)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return n, err
}

// Write writes to a host-backed descriptor.
func (t *FDTable) Write(fd uint64, buf []byte) (int, error) {
	f, err := t.hostFile(fd)
	if err != nil {
		return 0, err
	}
	return f.Write(buf)
}

// Seek moves the file position of a host-backed descriptor.
func (t *FDTable) Seek(fd uint64, offset int64, whence int) (int64, error) {
	f, err := t.hostFile(fd)
	if err != nil {
		return 0, err
	}
	return f.Seek(offset, whence)
}
