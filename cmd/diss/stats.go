package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/scan"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <elf>",
		Short: "Summarize how the decoder sees an ELF file's code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, reports, err := a.scanProgram(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "architecture: %s\nentry: %#x\n\n", prog.Arch, prog.EntryPoint)
			for _, sr := range reports {
				printReport(out, sr.report)
			}
			return nil
		},
	}
	a.addTimingFlag(cmd)
	return cmd
}

func printReport(out io.Writer, r *scan.Report) {
	fmt.Fprintf(out, "segment %#x: %d bytes, %d slots, %d estimated cycles\n", r.Base, r.Bytes, r.Slots, r.Cycles)

	fmt.Fprintln(out, "  outcomes:")
	for o := scan.Outcome(0); o < scan.NumOutcomes; o++ {
		fmt.Fprintf(out, "    %-14s %d\n", o.String()+":", r.Outcomes[o])
	}

	fmt.Fprintln(out, "  classes:")
	for c := insts.Class(0); c < insts.NumClasses; c++ {
		if r.Classes[c] > 0 {
			fmt.Fprintf(out, "    %-14s %d\n", c.String()+":", r.Classes[c])
		}
	}

	names := r.MnemonicNames()
	fmt.Fprintf(out, "  mnemonics (%d): %s\n\n", len(names), strings.Join(names, " "))
}
