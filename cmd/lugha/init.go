package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lugha/internal/driver"
	"lugha/internal/project"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path|name]",
		Short: "Initialize a new lugha project",
		Long: `Initialize a new lugha project by creating a manifest (lugha.toml) and a
sample program (src/main.lugha). If [path|name] is omitted, initializes the
current directory. A non-existing path is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifest, err := project.Scaffold(target, "")
	if err != nil {
		if errors.Is(err, project.ErrManifestExists) {
			return fmt.Errorf("project already initialized: %w", err)
		}
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized lugha project %q in %s\n", manifest.Package.Name, rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	fmt.Fprintf(out, "  - %s\n", filepath.Join(manifest.Build.Src, "main"+driver.SourceExt))
	return nil
}
