package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/config"
	"github.com/ezrec/abacus/emulator"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.ab",
	Short: "Run an abacus program until it halts.",
	Long: `Run an abacus program from its entry label until control reaches a label
that is not in the program. Use '-' to read the program from standard input.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := runConfig(cmd)

		emu := emulator.NewEmulator()
		emu.Verbose = GetFlag(cmd, "verbose")
		emu.Limit = cfg.Limit

		err := loadProgram(emu, args[0])
		if err != nil {
			fatalf(EXIT_USAGE, "%v: %v", args[0], err)
		}

		err = cfg.Apply(emu.Machine)
		if err != nil {
			fatalf(EXIT_USAGE, "%v", err)
		}

		if traceEnabled(cmd) {
			emu.Output = traceOutput(GetString(cmd, "output"))
		}

		ticks, err := emu.Run()
		fmt.Println(emu.Machine)

		switch {
		case errors.Is(err, abacus.ErrStepLimit):
			fatalf(EXIT_LIMIT, "%v", err)
		case err != nil:
			fatalf(EXIT_RUNTIME, "%v", err)
		}

		log.Debugf("halted at %v after %v steps", emu.Pc, ticks)
	},
}

// runConfig builds the run configuration from the config file and flags.
func runConfig(cmd *cobra.Command) (cfg *config.Config) {
	cfg = config.Default()

	path := GetString(cmd, "config")
	if len(path) != 0 {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			fatalf(EXIT_USAGE, "%v: %v", path, err)
		}
	}

	if cmd.Flags().Changed("entry") {
		cfg.Entry = GetString(cmd, "entry")
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = GetInt(cmd, "limit")
	}
	if cmd.Flags().Changed("underflow") {
		cfg.Underflow = GetString(cmd, "underflow")
	}
	for _, assign := range GetStringArray(cmd, "reg") {
		err := cfg.SetRegister(assign)
		if err != nil {
			fatalf(EXIT_USAGE, "--reg %v: %v", assign, err)
		}
	}

	return
}

// loadProgram loads a program file, or standard input for '-'.
func loadProgram(emu *emulator.Emulator, path string) (err error) {
	var input io.Reader = os.Stdin

	if path != "-" {
		inf, err := os.Open(path)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	return emu.Load(input)
}

// traceEnabled returns the --trace flag, which defaults to on when
// standard output is a terminal.
func traceEnabled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("trace") {
		return GetFlag(cmd, "trace")
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// traceOutput opens the trace destination; '-' is standard output.
func traceOutput(path string) io.Writer {
	if path == "-" {
		return os.Stdout
	}

	ouf, err := os.Create(path)
	if err != nil {
		fatalf(EXIT_USAGE, "%v: %v", path, err)
	}
	atexit.Register(func() {
		ouf.Close()
	})

	return ouf
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("entry", abacus.DefaultEntry, "label to start execution at")
	runCmd.Flags().Int("limit", 0, "maximum steps to run, 0 for no limit")
	runCmd.Flags().String("underflow", abacus.UNDERFLOW_FAULT.String(), "policy for decrementing a zero register: fault, clamp or signed")
	runCmd.Flags().StringP("config", "c", "", "YAML run configuration file")
	runCmd.Flags().StringArrayP("reg", "r", nil, "initial register value as NAME=EXPR (repeatable)")
	runCmd.Flags().Bool("trace", false, "print each executed instruction (default: on for terminals)")
	runCmd.Flags().StringP("output", "o", "-", "trace output file")
}
