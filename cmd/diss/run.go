package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/diss/emu"
	"github.com/sarchlab/diss/loader"
	"github.com/sarchlab/diss/timing/cache"
	"github.com/sarchlab/diss/timing/core"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <elf>",
		Short: "Run an ELF executable on the emulator for its architecture",
		Long: `Loads a static A64 or RV64GC executable and runs it until it exits.

The guest's standard streams are the command's. Its exit status becomes
diss's exit status, and a summary of the run is written to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			return a.runProgram(cmd, prog)
		},
	}

	cmd.Flags().Uint64("max-instructions", 0, "stop after this many instructions (0 means no limit)")
	cmd.Flags().Bool("icache", false, "fetch instructions through a simulated L1 instruction cache")
	cmd.Flags().Bool("branch-predictor", false, "charge mispredictions of a bimodal branch predictor")
	cmd.Flags().String("cpuprofile", "", "write a CPU profile of the run to this file")
	cmd.Flags().String("memprofile", "", "write a heap profile after the run to this file")
	for _, name := range []string{"max-instructions", "icache", "branch-predictor"} {
		cobra.CheckErr(a.v.BindPFlag(name, cmd.Flags().Lookup(name)))
	}
	a.addTimingFlag(cmd)
	return cmd
}

func (a *app) runProgram(cmd *cobra.Command, prog *loader.Program) error {
	table, err := a.latencyTable()
	if err != nil {
		return err
	}

	mem := emu.NewMemory()
	prog.Load(mem)

	opts := []core.Option{
		core.WithLatencyTable(table),
		core.WithEmulatorOptions(
			emu.WithStackPointer(prog.InitialSP),
			emu.WithMaxInstructions(a.v.GetUint64("max-instructions")),
			emu.WithStdin(cmd.InOrStdin()),
			emu.WithStdout(cmd.OutOrStdout()),
			emu.WithStderr(cmd.ErrOrStderr()),
			emu.WithLogger(a.logger),
		),
	}
	if a.v.GetBool("icache") {
		opts = append(opts, core.WithICache(cache.DefaultL1IConfig()))
	}
	if a.v.GetBool("branch-predictor") {
		opts = append(opts, core.WithBranchPredictor(core.DefaultPredictorConfig()))
	}

	c, err := core.NewCore(prog.Arch, mem, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	flags := cmd.Flags()
	cpuPath, _ := flags.GetString("cpuprofile")
	memPath, _ := flags.GetString("memprofile")
	stopProfiles, err := startProfiles(cpuPath, memPath)
	if err != nil {
		return err
	}

	a.logger.Info("starting program", "arch", prog.Arch, "entry", fmt.Sprintf("%#x", prog.EntryPoint))
	start := time.Now()
	c.SetPC(prog.EntryPoint)
	code, runErr := c.Run()
	elapsed := time.Since(start)
	if err := stopProfiles(); err != nil {
		return err
	}
	a.logger.Info("program finished", "code", code, "elapsed", elapsed,
		"mips", float64(c.Stats().Instructions)/elapsed.Seconds()/1e6)

	printRunSummary(cmd.ErrOrStderr(), c)
	if runErr != nil {
		return fmt.Errorf("execution stopped: %w", runErr)
	}
	if code != 0 {
		return &exitError{code: int(code)}
	}
	return nil
}

func printRunSummary(out io.Writer, c *core.Core) {
	stats := c.Stats()
	fmt.Fprintf(out, "instructions: %d\n", stats.Instructions)
	fmt.Fprintf(out, "estimated cycles: %d (CPI %.2f)\n", stats.Cycles(), stats.CPI())

	if icache := c.ICache(); icache != nil {
		s := icache.Stats()
		fmt.Fprintf(out, "icache: %d hits, %d misses, %d evictions (%.1f%% hit rate), %d fetch cycles\n",
			s.Hits, s.Misses, s.Evictions, 100*s.HitRate(), s.Cycles)
	}
	if p := c.Predictor(); p != nil {
		fmt.Fprintf(out, "branches: %d, %d mispredicted (%.1f%% accuracy), %d penalty cycles\n",
			stats.Branches, stats.Mispredictions, p.Stats().Accuracy(), stats.PenaltyCycles)
	}
}
