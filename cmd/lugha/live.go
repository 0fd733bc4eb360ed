package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lugha/internal/ui"
)

func newLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live [file.lugha]",
		Short: "Edit lugha source with live JavaScript output",
		Long: `Live opens a two-pane terminal editor: the source on the left, the
transpiled output and diagnostics on the right. ctrl+s saves to file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLive,
	}
	addTranspileFlags(cmd)
	return cmd
}

func runLive(cmd *cobra.Command, args []string) error {
	if !interactive() {
		return errors.New("live needs an interactive terminal")
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	opts := g.driverOptions()
	opts.Timings = false
	if err := applyTranspileFlags(cmd, &opts); err != nil {
		return err
	}

	var (
		path    string
		initial []byte
	)
	if len(args) == 1 {
		path = args[0]
		// #nosec G304 -- path comes from the command line
		initial, err = os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}

	program := tea.NewProgram(ui.NewLiveModel(path, initial, opts), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
