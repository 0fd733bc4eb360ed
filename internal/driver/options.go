package driver

import "lugha/internal/transpile"

// Options configures one driver run.
type Options struct {
	// Transpile is passed to every transpiler; its Reporter is ignored, the driver collects into Result.Bag.
	Transpile transpile.Options
	// MaxDiagnostics caps each file's bag; 0 means no cap.
	MaxDiagnostics int
	// Separator joins fragments into Result.Output.
	Separator string
	// Cache is consulted before lexing when set.
	Cache *DiskCache
	// Memo is checked before Cache and filled on every miss.
	Memo *MemCache
	// Timings appends an OBS6001 diagnostic with the phase report.
	Timings bool
}

// DefaultOptions mirrors transpile.DefaultOptions with a newline separator.
func DefaultOptions() Options {
	return Options{
		Transpile: transpile.DefaultOptions(),
		Separator: "\n",
	}
}
