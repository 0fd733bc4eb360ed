package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lugha/internal/trace"
)

// tracerConfig turns --trace, --trace-level and --trace-format into a config.
// A bare --trace path means phase level.
func tracerConfig(cmd *cobra.Command) (trace.Config, error) {
	pf := cmd.Root().PersistentFlags()
	var cfg trace.Config

	var levelValue, formatValue string
	for name, dst := range map[string]*string{
		"trace":        &cfg.OutputPath,
		"trace-level":  &levelValue,
		"trace-format": &formatValue,
	} {
		v, err := pf.GetString(name)
		if err != nil {
			return cfg, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}

	var err error
	if cfg.Level, err = trace.ParseLevel(levelValue); err != nil {
		return cfg, err
	}
	if cfg.Format, err = trace.ParseFormat(formatValue); err != nil {
		return cfg, err
	}
	if cfg.Level == trace.LevelOff && cfg.OutputPath != "" && !pf.Changed("trace-level") {
		cfg.Level = trace.LevelPhase
	}
	return cfg, nil
}

// setupTracing puts a tracer and the command's root span on cmd's context.
// The returned cleanup ends the span and closes the tracer.
func setupTracing(cmd *cobra.Command) (func(), error) {
	cfg, err := tracerConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	span := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	cmd.SetContext(trace.WithParent(trace.WithTracer(cmd.Context(), tracer), span))

	return func() {
		span.End("")
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
