package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"lugha/internal/diag"
	"lugha/internal/driver"
	"lugha/internal/project"
	"lugha/internal/transpile"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Build a lugha project",
		Long: `Build finds lugha.toml in dir (or its parents), transpiles every source under
[build].src and writes one .js file per source into [build].out. Files with errors
are reported and not written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().Bool("no-cache", false, "bypass the on-disk cache")
	cmd.Flags().String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	uiValue, err := fl.GetString("ui")
	if err != nil {
		return err
	}
	mode, err := parseAutoSwitch("ui", uiValue)
	if err != nil {
		return err
	}
	jobs, err := fl.GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := fl.GetBool("no-cache")
	if err != nil {
		return err
	}
	diagFormat, err := fl.GetString("diag-format")
	if err != nil {
		return err
	}
	if err := checkDiagFormat(diagFormat); err != nil {
		return err
	}

	start := "."
	if len(args) == 1 {
		start = args[0]
	}
	manifestPath, ok, err := project.FindManifest(start)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no %s found in %s or its parents (run `lugha init`)", project.ManifestName, start)
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	opts := g.driverOptions()
	applyManifest(manifest, &opts)
	if !noCache {
		cache, cacheErr := driver.OpenDiskCache("lugha")
		if cacheErr != nil {
			// без кэша сборка всё равно возможна
			fmt.Fprintf(cmd.ErrOrStderr(), "lugha: cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	srcDir, outDir := manifest.SrcDir(), manifest.OutDir()
	files, err := driver.ListSources(srcDir)
	if err != nil {
		return fmt.Errorf("list sources: %w", err)
	}

	began := time.Now()
	var dirRes *driver.DirResult
	title := "building " + manifest.Package.Name
	if mode.resolve(interactive) && len(files) > 0 && !g.quiet {
		dirRes, err = runBuildWithUI(cmd.Context(), title, files, srcDir, opts, jobs)
	} else {
		dirRes, err = driver.TranspileDir(cmd.Context(), srcDir, opts, jobs, nil)
	}
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	all := diag.NewBag(0)
	var written, failed int
	for _, r := range dirRes.Files {
		if r == nil {
			continue
		}
		all.Merge(r.Bag)
		if r.HasErrors() {
			failed++
			continue
		}
		dst, err := driver.OutputPath(r.Path, srcDir, outDir)
		if err != nil {
			return err
		}
		if err := driver.WriteOutput(r, dst); err != nil {
			return err
		}
		written++
		if !g.quiet {
			fmt.Fprintf(errOut, "wrote %s\n", displayPath(manifest.Root, dst))
		}
	}

	all.Sort()
	all.Dedup()
	if err := printDiagnostics(errOut, all, dirRes.FileSet, diagFormat, g); err != nil {
		return err
	}
	if g.timings {
		for _, r := range dirRes.Files {
			if r != nil && r.Timing != nil {
				fmt.Fprintf(errOut, "%s:\n%s", displayPath(manifest.Root, r.Path), r.Timing.Summary())
			}
		}
	}
	if !g.quiet {
		fmt.Fprintf(errOut, "%s: %d written, %d failed in %s\n",
			manifest.Package.Name, written, failed, time.Since(began).Round(time.Millisecond))
	}
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}

// applyManifest maps the [build] section onto driver options.
func applyManifest(m *project.Manifest, opts *driver.Options) {
	opts.Separator = m.Build.Separator
	opts.Transpile.Banner = m.Build.Banner
	if m.Build.Latinize {
		opts.Transpile.Renamer = transpile.LatinRenamer{}
	}
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !filepath.IsAbs(rel) && rel != "" {
		return rel
	}
	return path
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk transpile cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove every cached entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := driver.OpenDiskCache("lugha")
			if err != nil {
				return err
			}
			if err := cache.DropAll(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("clean %s: %w", cache.Dir(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", cache.Dir())
			return nil
		},
	})
	return cmd
}
