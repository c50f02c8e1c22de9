package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Exit codes.
const (
	EXIT_OK      = 0 // Program halted.
	EXIT_USAGE   = 1 // Bad arguments, files or configuration.
	EXIT_LIMIT   = 2 // Step limit reached before halting.
	EXIT_RUNTIME = 3 // Program faulted.
)

// Version is set at link time, if at all.
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "An abacus machine interpreter.",
	Long: `Parse and run abacus machine programs: unbounded natural-number registers,
'inc' to increment and jump, 'ifzdec' to branch on zero or decrement and jump.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("abacus ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(EXIT_USAGE)
	}
	atexit.Exit(EXIT_OK)
}

// fatalf logs an error, runs the exit handlers and exits.
func fatalf(code int, format string, args ...any) {
	log.Errorf(format, args...)
	atexit.Exit(code)
}

// GetFlag gets an expected boolean flag, or exits.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(EXIT_USAGE)
	}
	return r
}

// GetInt gets an expected int flag, or exits.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(EXIT_USAGE)
	}
	return r
}

// GetString gets an expected string flag, or exits.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(EXIT_USAGE)
	}
	return r
}

// GetStringArray gets an expected string array flag, or exits.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(EXIT_USAGE)
	}
	return r
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("version", false, "print the version and exit")
}
