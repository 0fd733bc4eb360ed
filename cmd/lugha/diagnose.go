package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lugha/internal/diag"
	"lugha/internal/driver"
	"lugha/internal/transpile"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] file.lugha|dir",
		Short: "Report diagnostics without writing output",
		Long:  `Diag runs the lexer and the transpiler over a file or every *.lugha file in a directory and prints the diagnostics`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDiag,
	}
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	cmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	cmd.Flags().Bool("latinize", false, "transliterate identifiers to ASCII (affects collision warnings)")
	return cmd
}

func runDiag(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if err := checkDiagFormat(format); err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	latinize, err := cmd.Flags().GetBool("latinize")
	if err != nil {
		return err
	}

	opts := g.driverOptions()
	if latinize {
		opts.Transpile.Renamer = transpile.LatinRenamer{}
	}

	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	out := cmd.OutOrStdout()
	if !st.IsDir() {
		res, err := driver.TranspileFile(cmd.Context(), target, opts)
		if err != nil {
			return err
		}
		if err := printDiagnostics(out, res.Bag, res.FileSet, format, g); err != nil {
			return err
		}
		if res.HasErrors() {
			return errDiagnostics
		}
		return nil
	}

	dirRes, err := driver.TranspileDir(cmd.Context(), target, opts, jobs, nil)
	if err != nil {
		return err
	}
	// one bag for the whole directory keeps json output a single document
	all := diag.NewBag(0)
	for _, r := range dirRes.Files {
		if r != nil {
			all.Merge(r.Bag)
		}
	}
	all.Sort()
	all.Dedup()
	if err := printDiagnostics(out, all, dirRes.FileSet, format, g); err != nil {
		return err
	}
	if !g.quiet && format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d files\n", len(dirRes.Files))
	}
	if dirRes.HasErrors() {
		return errDiagnostics
	}
	return nil
}
