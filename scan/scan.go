// Package scan walks a buffer of machine code and summarizes what the
// decoders make of it.
//
// A64 buffers are split into chunks decoded in parallel. RISC-V buffers are
// walked in order, since each instruction's length depends on its first
// halfword.
package scan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

// cancelCheck is how many slots a sequential walk decodes between context
// checks.
const cancelCheck = 1024

// Scan decodes code, which is loaded at base. Decoding never stops early:
// a slot that fails to decode still advances by its architectural length.
// The scan stops only when ctx is done, in which case it returns ctx.Err().
func Scan(ctx context.Context, arch insts.Arch, base uint64, code []byte, opts ...Option) (*Report, error) {
	cfg := newConfig(opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch arch {
	case insts.ArchA64:
		return scanA64(ctx, &cfg, base, code)
	case insts.ArchRV64GC:
		return scanRISCV(ctx, &cfg, base, code)
	}
	return nil, fmt.Errorf("scan: unsupported architecture %v", arch)
}

func rawWord(b []byte) uint32 {
	var w uint32
	for i := 0; i < len(b) && i < 4; i++ {
		w |= uint32(b[i]) << (8 * i)
	}
	return w
}

func scanA64(ctx context.Context, cfg *config, base uint64, code []byte) (*Report, error) {
	chunkBytes := cfg.chunk * 4
	n := (len(code) + chunkBytes - 1) / chunkBytes
	parts := make([]*Report, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := range parts {
		g.Go(func() error {
			lo := i * chunkBytes
			hi := min(lo+chunkBytes, len(code))
			part := newReport(insts.ArchA64, base+uint64(lo), hi-lo)
			for off := lo; off < hi; off += 4 {
				if (off-lo)%(cancelCheck*4) == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				decodeA64(cfg, part, base+uint64(off), code[off:hi])
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(insts.ArchA64, base, len(code))
	for _, part := range parts {
		report.merge(part)
	}
	return report, nil
}

func decodeA64(cfg *config, r *Report, addr uint64, b []byte) {
	line := Line{Addr: addr, Word: rawWord(b), Len: 4}
	inst, _, err := a64.DecodeBytes(b)
	if err == nil {
		line.Text, err = a64.Visit(cfg.a64Text, inst)
		if err != nil {
			err = &insts.HandlerError{Arch: insts.ArchA64, Word: line.Word, Op: inst.Op.String(), Err: err}
		}
	}
	line.Outcome, line.Err = OutcomeOf(err), err

	class := inst.Class()
	r.add(line, uint(inst.Op), class, cfg.table.Price(class, err), cfg.listing)
}

func scanRISCV(ctx context.Context, cfg *config, base uint64, code []byte) (*Report, error) {
	report := newReport(insts.ArchRV64GC, base, len(code))
	for off := 0; off < len(code); {
		if report.Slots%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		off += decodeRISCV(cfg, report, base+uint64(off), code[off:])
	}
	return report, nil
}

func decodeRISCV(cfg *config, r *Report, addr uint64, b []byte) int {
	inst, n, err := riscv.DecodeBytes(b)
	line := Line{Addr: addr, Len: n, Word: rawWord(b[:min(n, len(b))])}
	if err == nil {
		line.Text, err = riscv.Visit(cfg.riscvText, inst)
		if err != nil {
			err = &insts.HandlerError{Arch: insts.ArchRV64GC, Word: line.Word, Op: inst.Op.String(), Err: err}
		}
	}
	line.Outcome, line.Err = OutcomeOf(err), err

	class := inst.Class()
	r.add(line, uint(inst.Op), class, cfg.table.Price(class, err), cfg.listing)
	return n
}
