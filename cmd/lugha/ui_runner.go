package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"lugha/internal/driver"
	"lugha/internal/ui"
)

// runBuildWithUI runs TranspileDir under a progress view on stdout.
// Quitting the view early does not cancel the build.
func runBuildWithUI(ctx context.Context, title string, files []string, srcDir string, opts driver.Options, jobs int) (*driver.DirResult, error) {
	events := make(chan driver.FileEvent, 256)
	var (
		g   errgroup.Group
		res *driver.DirResult
	)
	g.Go(func() error {
		defer close(events)
		var err error
		res, err = driver.TranspileDir(ctx, srcDir, opts, jobs, func(ev driver.FileEvent) { events <- ev })
		return err
	})

	_, uiErr := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stdout)).Run()
	// после выхода из UI канал больше никто не читает
	for range events {
	}
	return res, errors.Join(g.Wait(), uiErr)
}
