package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/diss/loader"
	"github.com/sarchlab/diss/scan"
	"github.com/sarchlab/diss/timing/latency"
)

// segmentReport pairs an executable segment with its scan.
type segmentReport struct {
	seg    loader.Segment
	report *scan.Report
}

// scanProgram scans every executable segment of the ELF file at path.
func (a *app) scanProgram(ctx context.Context, path string, opts ...scan.Option) (*loader.Program, []segmentReport, error) {
	prog, err := loader.Load(path)
	if err != nil {
		return nil, nil, err
	}

	table, err := a.latencyTable()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, scan.WithLatencyTable(table))

	var out []segmentReport
	for _, seg := range prog.ExecutableSegments() {
		r, err := scan.Scan(ctx, prog.Arch, seg.VirtAddr, seg.Data, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan segment at %#x: %w", seg.VirtAddr, err)
		}
		a.logger.Debug("scanned segment", "addr", fmt.Sprintf("%#x", seg.VirtAddr), "slots", r.Slots)
		out = append(out, segmentReport{seg: seg, report: r})
	}
	return prog, out, nil
}

// latencyTable loads the config named by the timing setting, or returns
// the default table.
func (a *app) latencyTable() (*latency.Table, error) {
	path := a.v.GetString("timing")
	if path == "" {
		return latency.NewTable(), nil
	}

	cfg, err := latency.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timing config %s: %w", path, err)
	}
	a.logger.Info("loaded timing config", "path", path)
	return latency.NewTableWithConfig(cfg), nil
}

// addTimingFlag adds --timing to cmd and binds it when cmd runs, since
// several commands share the setting.
func (a *app) addTimingFlag(cmd *cobra.Command) {
	cmd.Flags().String("timing", "", "latency config file (JSON, or YAML by extension)")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.v.BindPFlag("timing", cmd.Flags().Lookup("timing"))
	}
}

func newDisasmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <elf>",
		Short: "Disassemble the executable segments of an ELF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reports, err := a.scanProgram(cmd.Context(), args[0], scan.WithListing())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, sr := range reports {
				printListing(out, sr)
			}
			printSummary(out, reports)
			return nil
		},
	}
	a.addTimingFlag(cmd)
	return cmd
}

func printListing(out io.Writer, sr segmentReport) {
	fmt.Fprintf(out, "segment %s (%d bytes):\n", colorAddr.Sprintf("%#x", sr.seg.VirtAddr), len(sr.seg.Data))
	for _, l := range sr.report.Lines {
		word := fmt.Sprintf("%08x", l.Word)
		if l.Len == 2 {
			word = fmt.Sprintf("%04x    ", l.Word)
		}

		text := colorText.Sprint(l.Text)
		if l.Outcome != scan.OK {
			text = colorError.Sprintf("<%s>", l.Outcome)
		}
		fmt.Fprintf(out, "  %s:  %s  %s\n", colorAddr.Sprintf("%8x", l.Addr), colorWord.Sprint(word), text)
	}
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, reports []segmentReport) {
	var (
		slots  int
		cycles uint64
		counts [scan.NumOutcomes]int
	)
	for _, sr := range reports {
		slots += sr.report.Slots
		cycles += sr.report.Cycles
		for o, n := range sr.report.Outcomes {
			counts[o] += n
		}
	}

	fmt.Fprintf(out, "%d instructions in %d segments, %d estimated cycles\n", slots, len(reports), cycles)
	for o := scan.Outcome(0); o < scan.NumOutcomes; o++ {
		if counts[o] > 0 {
			fmt.Fprintf(out, "  %-14s %d\n", o.String()+":", counts[o])
		}
	}
}
