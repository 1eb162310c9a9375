package insts

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Match them with errors.Is.
var (
	// ErrUnallocated marks a word that is not a defined instruction,
	// including reserved encodings.
	ErrUnallocated = errors.New("unallocated encoding")

	// ErrUnimplemented marks a word in an instruction class this package
	// does not decode.
	ErrUnimplemented = errors.New("unimplemented encoding")

	// ErrTruncated marks a byte buffer that ends inside an instruction.
	ErrTruncated = errors.New("truncated instruction")
)

// DecodeError describes a word the decoder could not turn into an operation.
type DecodeError struct {
	Arch   Arch
	Word   uint32
	Kind   error  // ErrUnallocated, ErrUnimplemented or ErrTruncated
	Detail string // which class or field rejected the word
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %#08x: %v", e.Arch, e.Word, e.Kind)
	}
	return fmt.Sprintf("%s: %#08x: %v (%s)", e.Arch, e.Word, e.Kind, e.Detail)
}

// Unwrap returns the failure kind.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// HandlerError carries an error returned by a visitor method. The visitor's
// error is preserved unchanged and reachable through errors.As/Is.
type HandlerError struct {
	Arch Arch
	Word uint32
	Op   string
	Err  error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s: %#08x: %s: %v", e.Arch, e.Word, e.Op, e.Err)
}

// Unwrap returns the visitor's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Unallocated builds an ErrUnallocated decode error.
func Unallocated(arch Arch, word uint32, detail string) error {
	return &DecodeError{Arch: arch, Word: word, Kind: ErrUnallocated, Detail: detail}
}

// Unimplemented builds an ErrUnimplemented decode error.
func Unimplemented(arch Arch, word uint32, detail string) error {
	return &DecodeError{Arch: arch, Word: word, Kind: ErrUnimplemented, Detail: detail}
}

// Truncated builds an ErrTruncated decode error. Word holds whatever bytes
// were available.
func Truncated(arch Arch, word uint32, detail string) error {
	return &DecodeError{Arch: arch, Word: word, Kind: ErrTruncated, Detail: detail}
}

// IsUnallocated reports whether err is, or wraps, an unallocated encoding.
func IsUnallocated(err error) bool {
	return errors.Is(err, ErrUnallocated)
}

// IsUnimplemented reports whether err is, or wraps, an unimplemented class.
func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}

// IsTruncated reports whether err is, or wraps, a truncated buffer.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}

// IsHandler reports whether err originated in a visitor.
func IsHandler(err error) bool {
	var h *HandlerError
	return errors.As(err, &h)
}
