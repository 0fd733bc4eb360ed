package driver

import (
	"time"

	"lugha/internal/diag"
)

// FileStatus reports where a file is in a directory run.
type FileStatus int

const (
	// FileStarted is sent when a worker picks the file up.
	FileStarted FileStatus = iota
	// FileDone is sent after the file was transpiled, errors or not.
	FileDone
)

// FileEvent describes one progress step of TranspileDir.
type FileEvent struct {
	Path     string
	Index    int // position in the sorted file list
	Total    int
	Status   FileStatus
	Errors   int
	Warnings int
	Cached   bool
	Elapsed  time.Duration
}

// ProgressSink receives events from TranspileDir workers.
// It is called from several goroutines and must be safe for that.
type ProgressSink func(FileEvent)

func countSeverities(r *Result) (errs, warns int) {
	if r == nil || r.Bag == nil {
		return 0, 0
	}
	for _, d := range r.Bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	return errs, warns
}
