package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lugha/internal/driver"
)

func newTranspileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpile [flags] file.lugha",
		Short: "Transpile a lugha source file to JavaScript",
		Long: `Transpile lexes and translates one source file. The output is written even
when diagnostics were reported; the exit status is 1 if any of them is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: runTranspile,
	}
	cmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	cmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	addTranspileFlags(cmd)
	return cmd
}

func runTranspile(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return err
	}
	if err := checkDiagFormat(diagFormat); err != nil {
		return err
	}
	opts := g.driverOptions()
	if err := applyTranspileFlags(cmd, &opts); err != nil {
		return err
	}

	res, err := driver.TranspileFile(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagFormat, g); err != nil {
		return err
	}

	if outPath == "" {
		if _, err := io.WriteString(cmd.OutOrStdout(), res.Output+"\n"); err != nil {
			return err
		}
	} else {
		if err := driver.WriteOutput(res, outPath); err != nil {
			return err
		}
		if !g.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
		}
	}

	if g.timings && res.Timing != nil && diagFormat != "json" {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timing.Summary())
	}
	if res.HasErrors() {
		return errDiagnostics
	}
	return nil
}
