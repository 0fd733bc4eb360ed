package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Tracer receives events. Emit must be safe for concurrent use.
type Tracer interface {
	Emit(ev Event)
	Flush() error
	Close() error
	Level() Level
}

// Enabled is false for nil tracers and for LevelOff.
func Enabled(t Tracer) bool {
	return t != nil && t.Level() > LevelOff
}

type Config struct {
	Level  Level
	Format Format
	// Output wins over OutputPath and is never closed.
	Output io.Writer
	// OutputPath "" or "-" means stderr.
	OutputPath string
}

// New returns Nop for LevelOff and a StreamTracer otherwise.
// FormatAuto picks ndjson for .ndjson and .jsonl paths, text elsewhere.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		switch filepath.Ext(cfg.OutputPath) {
		case ".ndjson", ".jsonl":
			format = FormatNDJSON
		default:
			format = FormatText
		}
	}

	switch {
	case cfg.Output != nil:
		return NewStreamTracer(cfg.Output, cfg.Level, format), nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return NewStreamTracer(os.Stderr, cfg.Level, format), nil
	}
	// #nosec G304 -- path is provided by the user via --trace
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return newFileTracer(f, cfg.Level, format), nil
}
