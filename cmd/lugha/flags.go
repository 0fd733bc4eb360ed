package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lugha/internal/diag"
	"lugha/internal/diagfmt"
	"lugha/internal/driver"
	"lugha/internal/source"
	"lugha/internal/transpile"
)

type globalFlags struct {
	color          autoSwitch
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	pf := cmd.Root().PersistentFlags()
	var (
		g   globalFlags
		err error
	)
	colorValue, err := pf.GetString("color")
	if err != nil {
		return g, fmt.Errorf("failed to get color flag: %w", err)
	}
	if g.color, err = parseAutoSwitch("color", colorValue); err != nil {
		return g, err
	}
	if g.quiet, err = pf.GetBool("quiet"); err != nil {
		return g, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if g.timings, err = pf.GetBool("timings"); err != nil {
		return g, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if g.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return g, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return g, nil
}

// useColor resolves --color for w; only real terminals count in auto mode.
func (g globalFlags) useColor(w io.Writer) bool {
	return g.color.resolve(func() bool {
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	})
}

// driverOptions builds the driver configuration shared by transpile, diag and build.
func (g globalFlags) driverOptions() driver.Options {
	opts := driver.DefaultOptions()
	opts.MaxDiagnostics = g.maxDiagnostics
	opts.Timings = g.timings
	return opts
}

// addTranspileFlags registers the output-shaping flags of transpile and live.
func addTranspileFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("latinize", false, "transliterate identifiers to ASCII")
	cmd.Flags().Bool("no-banner", false, "omit the closing banner")
	cmd.Flags().Bool("prelude", false, "emit the opening banner")
	cmd.Flags().Bool("loose-blocks", false, "do not check end/else against open blocks")
	cmd.Flags().String("sep", `\n`, "fragment separator (Go escapes allowed)")
}

func applyTranspileFlags(cmd *cobra.Command, opts *driver.Options) error {
	fl := cmd.Flags()
	latinize, err := fl.GetBool("latinize")
	if err != nil {
		return err
	}
	noBanner, err := fl.GetBool("no-banner")
	if err != nil {
		return err
	}
	prelude, err := fl.GetBool("prelude")
	if err != nil {
		return err
	}
	loose, err := fl.GetBool("loose-blocks")
	if err != nil {
		return err
	}
	sep, err := fl.GetString("sep")
	if err != nil {
		return err
	}
	if opts.Separator, err = unescape(sep); err != nil {
		return fmt.Errorf("invalid --sep %q: %w", sep, err)
	}
	if latinize {
		opts.Transpile.Renamer = transpile.LatinRenamer{}
	}
	opts.Transpile.Banner = !noBanner
	opts.Transpile.Prelude = prelude
	opts.Transpile.StrictBlocks = !loose
	return nil
}

// unescape interprets Go string escapes such as \n and \t.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	return strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
}

// printDiagnostics renders bag in format (pretty|short|json) to w.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string, g globalFlags) error {
	if bag == nil || bag.Len() == 0 {
		if format == "json" {
			return diagfmt.JSON(w, diag.NewBag(1), fs, diagfmt.JSONOpts{})
		}
		return nil
	}
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     g.useColor(w),
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
		return nil
	case "short":
		_, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}

func checkDiagFormat(format string) error {
	switch format {
	case "pretty", "short", "json":
		return nil
	default:
		return fmt.Errorf("unknown diagnostics format %q (expected pretty|short|json)", format)
	}
}
