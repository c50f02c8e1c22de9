package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/abacus/emulator"
)

var listCmd = &cobra.Command{
	Use:   "list [flags] program.ab",
	Short: "Print the parsed program.",
	Long: `Print the instructions of a program as parsed, in source order.
Comments and lines that are not instructions are dropped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := emulator.NewEmulator()
		emu.Verbose = GetFlag(cmd, "verbose")

		err := loadProgram(emu, args[0])
		if err != nil {
			fatalf(EXIT_USAGE, "%v: %v", args[0], err)
		}

		fmt.Fprint(cmd.OutOrStdout(), emu.Program)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
