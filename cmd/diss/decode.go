package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
)

var (
	colorAddr  = color.New(color.FgCyan)
	colorWord  = color.New(color.FgMagenta)
	colorText  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed)
)

// decoded is one decoded word, whatever the architecture.
type decoded struct {
	inst  any
	text  string
	class insts.Class
}

func decodeWord(arch insts.Arch, word uint32) (decoded, error) {
	switch arch {
	case insts.ArchA64:
		inst, err := a64.Decode(word)
		return decoded{inst: inst, text: inst.String(), class: inst.Class()}, err
	case insts.ArchRV64GC:
		inst, err := riscv.Decode(word)
		return decoded{inst: inst, text: inst.String(), class: inst.Class()}, err
	}
	return decoded{}, fmt.Errorf("unsupported architecture %v", arch)
}

func encodeInst(inst any) (uint32, error) {
	switch inst := inst.(type) {
	case a64.Inst:
		return a64.Encode(inst)
	case riscv.Inst:
		return riscv.Encode(inst)
	}
	return 0, fmt.Errorf("cannot encode %T", inst)
}

func parseWord(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	w, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return uint32(w), nil
}

func newDecodeCmd(a *app) *cobra.Command {
	var dump, encode bool

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode instruction words",
		Long: `Decodes each hexadecimal instruction word and prints its assembly text.

RISC-V words whose two low bits are not both set are compressed and only
their low 16 bits are used.

Example:
  diss decode --arch a64 d503201f 91002820
  diss decode --arch rv64gc --encode 00100073 9002`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, err := insts.ParseArch(a.v.GetString("arch"))
			if err != nil {
				return err
			}
			return runDecode(cmd.OutOrStdout(), arch, args, dump, encode)
		},
	}

	cmd.Flags().String("arch", "a64", "instruction set: a64 or rv64gc")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the decoded structure")
	cmd.Flags().BoolVar(&encode, "encode", false, "check that encoding the result reproduces the word")
	cobra.CheckErr(a.v.BindPFlag("arch", cmd.Flags().Lookup("arch")))
	return cmd
}

func runDecode(out io.Writer, arch insts.Arch, args []string, dump, encode bool) error {
	failed := 0
	for _, arg := range args {
		word, err := parseWord(arg)
		if err != nil {
			return err
		}

		d, err := decodeWord(arch, word)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s  %s\n", colorWord.Sprintf("%08x", word), colorError.Sprintf("<%v>", err))
			continue
		}
		fmt.Fprintf(out, "%s  %-40s %s\n", colorWord.Sprintf("%08x", word), colorText.Sprint(d.text), d.class)

		if dump {
			spew.Fdump(out, d.inst)
		}
		if encode {
			back, err := encodeInst(d.inst)
			switch {
			case err != nil:
				failed++
				fmt.Fprintf(out, "  %s\n", colorError.Sprintf("encode: %v", err))
			case back != word:
				failed++
				fmt.Fprintf(out, "  %s\n", colorError.Sprintf("encode: got %08x", back))
			default:
				fmt.Fprintln(out, "  round-trip ok")
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d words failed", failed, len(args))
	}
	return nil
}
