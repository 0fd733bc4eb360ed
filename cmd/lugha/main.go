package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lugha/internal/version"
)

// errDiagnostics signals that errors were already printed as diagnostics.
var errDiagnostics = errors.New("errors were reported")

// newRootCmd builds the command tree. The returned func stops the profilers,
// releases the tracer and must run after Execute, whether or not the command failed.
func newRootCmd() (*cobra.Command, func()) {
	traceCleanup := func() {}
	profCleanup := func() {}

	rootCmd := &cobra.Command{
		Use:           "lugha",
		Short:         "Arabic-keyword language to JavaScript transpiler",
		Long:          `lugha lexes Arabic-keyword source files and transpiles them to JavaScript`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			traceCleanup = cleanup
			if profCleanup, err = setupProfiling(cmd); err != nil {
				profCleanup = func() {}
				return err
			}
			return nil
		},
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newTranspileCmd())
	rootCmd.AddCommand(newDiagCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newLiveCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCacheCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
	return rootCmd, func() {
		profCleanup()
		traceCleanup()
	}
}

// main runs the CLI; any error, including reported diagnostics, exits with status 1.
func main() {
	rootCmd, cleanup := newRootCmd()
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "lugha: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
