// Package main provides diss, a command line front end for the A64 and
// RV64GC decoders and emulators.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exitError carries a guest program's exit status out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
	logFile io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "diss",
		Short: "Decode, disassemble and run A64 and RV64GC code",
		Long: `diss decodes A64 and RV64GC instruction words, disassembles ELF
executables and runs them on a functional emulator.

Settings are read from --config, or $HOME/.diss.yaml, and from DISS_*
environment variables. Flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.diss.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.Bool("no-color", false, "disable colored output")
	for _, name := range []string{"log-level", "log-file", "no-color"} {
		cobra.CheckErr(a.v.BindPFlag(name, flags.Lookup(name)))
	}

	root.AddCommand(
		newDecodeCmd(a),
		newDisasmCmd(a),
		newRunCmd(a),
		newStatsCmd(a),
	)
	return root
}

// init reads the configuration and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".diss")
	}

	a.v.SetEnvPrefix("DISS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if a.v.GetBool("no-color") {
		color.NoColor = true
	}

	logger, closer, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-file"))
	if err != nil {
		return err
	}
	a.logger, a.logFile = logger, closer
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Info("using config file", "path", used)
	}
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// execute runs the root command and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{v: viper.New()}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	var exit *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
