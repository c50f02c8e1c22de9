package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/abacus"
	"github.com/ezrec/abacus/samples"
)

var demoCmd = &cobra.Command{
	Use:   "demo [flags] [sample]",
	Short: "Step through a sample program.",
	Long: `Print a sample program, then step it a fixed number of times, printing
each executed instruction and the machine state after it.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: samples.Names(),
	Run: func(cmd *cobra.Command, args []string) {
		name := "cycle"
		if len(args) == 1 {
			name = args[0]
		}

		prog, err := samples.Program(name)
		if err != nil {
			fatalf(EXIT_USAGE, "%v: %v (samples: %v)", name, err, samples.Names())
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, prog)
		fmt.Fprintln(out)

		mach := abacus.NewMachine(abacus.DefaultEntry)
		mach.Verbose = GetFlag(cmd, "verbose")

		for range GetInt(cmd, "steps") {
			trace, err := mach.Step(prog)
			if errors.Is(err, abacus.ErrHalted) {
				fmt.Fprintf(out, "halted: %v\n", mach)
				return
			}
			if err != nil {
				fatalf(EXIT_RUNTIME, "%v: %v", mach.Pc, err)
			}
			fmt.Fprintln(out, trace)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Int("steps", 10, "number of steps to run")
}
