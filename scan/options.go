package scan

import (
	"runtime"

	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
	"github.com/sarchlab/diss/timing/latency"
)

type config struct {
	listing   bool
	workers   int
	chunk     int
	table     *latency.Table
	a64Text   a64.Visitor[string]
	riscvText riscv.Visitor[string]
}

// Option configures a scan.
type Option func(*config)

// WithListing keeps one Line per slot in the report.
func WithListing() Option {
	return func(c *config) {
		c.listing = true
	}
}

// WithWorkers bounds the number of goroutines decoding A64 chunks.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithChunkSize sets the number of A64 words each goroutine decodes.
func WithChunkSize(words int) Option {
	return func(c *config) {
		if words > 0 {
			c.chunk = words
		}
	}
}

// WithLatencyTable prices slots with t instead of the default table.
func WithLatencyTable(t *latency.Table) Option {
	return func(c *config) {
		c.table = t
	}
}

// WithA64Visitor renders A64 instructions with v. A64 chunks are decoded
// concurrently, so v must be safe for concurrent use.
func WithA64Visitor(v a64.Visitor[string]) Option {
	return func(c *config) {
		c.a64Text = v
	}
}

// WithRISCVVisitor renders RISC-V instructions with v.
func WithRISCVVisitor(v riscv.Visitor[string]) Option {
	return func(c *config) {
		c.riscvText = v
	}
}

func newConfig(opts []Option) config {
	c := config{
		workers:   runtime.GOMAXPROCS(0),
		chunk:     4096,
		a64Text:   a64.Printer{},
		riscvText: riscv.Printer{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.table == nil {
		c.table = latency.NewTable()
	}
	return c
}
