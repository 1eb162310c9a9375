package scan

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

// Outcome is the result of decoding one instruction slot.
type Outcome uint8

// Decode outcomes.
const (
	OK Outcome = iota
	Unallocated
	Unimplemented
	Handler
	Truncated
	NumOutcomes
)

var outcomeNames = [NumOutcomes]string{
	"ok", "unallocated", "unimplemented", "handler", "truncated",
}

func (o Outcome) String() string {
	if o >= NumOutcomes {
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
	return outcomeNames[o]
}

// OutcomeOf classifies a decode or visit error.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OK
	case insts.IsHandler(err):
		return Handler
	case insts.IsTruncated(err):
		return Truncated
	case insts.IsUnimplemented(err):
		return Unimplemented
	default:
		return Unallocated
	}
}

// Line is one listing entry.
type Line struct {
	Addr uint64
	// Word holds the raw bytes, little-endian. Compressed RISC-V
	// instructions occupy the low 16 bits.
	Word    uint32
	Len     int
	Text    string
	Outcome Outcome
	Err     error
}

// Report summarizes a scan.
type Report struct {
	Arch  insts.Arch
	Base  uint64
	Bytes int

	// Slots is the number of instruction slots visited, whatever their
	// outcome.
	Slots    int
	Outcomes [NumOutcomes]int
	Classes  [insts.NumClasses]int

	// Cycles is the estimated cost of executing every slot once.
	Cycles uint64

	// Mnemonics has bit op set for each op decoded at least once.
	Mnemonics *bitset.BitSet

	// Lines is filled only when the scan was asked for a listing.
	Lines []Line
}

func newReport(arch insts.Arch, base uint64, size int) *Report {
	return &Report{
		Arch:      arch,
		Base:      base,
		Bytes:     size,
		Mnemonics: bitset.New(0),
	}
}

// Decoded returns the number of slots that decoded, including those a
// visitor rejected.
func (r *Report) Decoded() int {
	return r.Outcomes[OK] + r.Outcomes[Handler]
}

// MnemonicNames lists the ops seen, in op order.
func (r *Report) MnemonicNames() []string {
	names := make([]string, 0, r.Mnemonics.Count())
	for i, ok := r.Mnemonics.NextSet(0); ok; i, ok = r.Mnemonics.NextSet(i + 1) {
		names = append(names, opName(r.Arch, i))
	}
	return names
}

func opName(arch insts.Arch, i uint) string {
	switch arch {
	case insts.ArchA64:
		return a64.Op(i).String()
	case insts.ArchRV64GC:
		return riscv.Op(i).String()
	}
	return "unknown"
}

// add records one slot.
func (r *Report) add(l Line, op uint, class insts.Class, cost uint64, keep bool) {
	r.Slots++
	r.Outcomes[l.Outcome]++
	r.Cycles += cost
	if l.Outcome == OK || l.Outcome == Handler {
		r.Classes[class]++
		r.Mnemonics.Set(op)
	}
	if keep {
		r.Lines = append(r.Lines, l)
	}
}

// merge folds a later chunk into r.
func (r *Report) merge(o *Report) {
	r.Slots += o.Slots
	for i := range r.Outcomes {
		r.Outcomes[i] += o.Outcomes[i]
	}
	for i := range r.Classes {
		r.Classes[i] += o.Classes[i]
	}
	r.Cycles += o.Cycles
	r.Mnemonics.InPlaceUnion(o.Mnemonics)
	r.Lines = append(r.Lines, o.Lines...)
}
