package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lugha/internal/trace"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug", "PHASE"} {
		lvl, err := trace.ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != strings.ToLower(s) {
			t.Fatalf("round trip %q -> %q", s, lvl.String())
		}
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelAdmits(t *testing.T) {
	cases := []struct {
		lvl   trace.Level
		kind  trace.Kind
		scope trace.Scope
		want  bool
	}{
		{trace.LevelOff, trace.KindError, trace.ScopeDriver, false},
		{trace.LevelError, trace.KindError, trace.ScopeFile, true},
		{trace.LevelError, trace.KindSpanBegin, trace.ScopeDriver, false},
		{trace.LevelPhase, trace.KindSpanBegin, trace.ScopePass, true},
		{trace.LevelPhase, trace.KindSpanBegin, trace.ScopeFile, false},
		{trace.LevelDetail, trace.KindPoint, trace.ScopeFile, true},
		{trace.LevelDebug, trace.KindPoint, trace.ScopeFile, true},
	}
	for _, c := range cases {
		if got := c.lvl.Admits(c.kind, c.scope); got != c.want {
			t.Errorf("%s.Admits(%s, %s) = %v, want %v", c.lvl, c.kind, c.scope, got, c.want)
		}
	}
}

func TestSpanText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)

	root := trace.Begin(tr, trace.ScopeDriver, "transpile", 0)
	pass := trace.Begin(tr, trace.ScopePass, "lex", root.ID())
	pass.WithExtra("tokens", "12").End("")
	// file scope is filtered at phase level
	trace.Begin(tr, trace.ScopeFile, "file:a.lugha", root.ID()).End("")
	root.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "→ transpile") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], "← lex {tokens=12}") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[3], "← transpile (ok)") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	trace.Error(tr, trace.ScopeFile, "load", errors.New("boom"), 7)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["kind"] != "error" || ev["detail"] != "boom" || ev["scope"] != "file" {
		t.Fatalf("unexpected event: %v", ev)
	}
	if ev["parent_id"].(float64) != 7 {
		t.Fatalf("parent_id = %v", ev["parent_id"])
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if trace.Enabled(tr) {
		t.Fatal("off tracer must be disabled")
	}
	// span on a nop tracer is harmless
	if d := trace.Begin(tr, trace.ScopeDriver, "x", 0).End(""); d != 0 {
		t.Fatalf("nop span duration = %v", d)
	}
}

func TestContext(t *testing.T) {
	if trace.FromContext(context.Background()) != trace.Nop {
		t.Fatal("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	if trace.FromContext(ctx) != tr {
		t.Fatal("tracer not propagated")
	}
	span := trace.Begin(tr, trace.ScopeDriver, "build", 0)
	ctx = trace.WithParent(ctx, span)
	if trace.ParentSpan(ctx) != span.ID() {
		t.Fatal("parent span not propagated")
	}
}

func TestParseFormat(t *testing.T) {
	f, err := trace.ParseFormat("json")
	if err != nil || f != trace.FormatNDJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := trace.ParseFormat("chrome"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFileTracerBuffersUntilClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	tr, err := trace.New(trace.Config{Level: trace.LevelDebug, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	trace.Point(tr, trace.ScopeFile, "tick", "", 0)

	// буфер ещё не сброшен
	if data, _ := os.ReadFile(path); len(data) != 0 {
		t.Fatalf("expected nothing before Close, got %q", data)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var ev map[string]any
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf(".jsonl must select ndjson, got %q: %v", data, err)
	}
	if ev["name"] != "tick" {
		t.Fatalf("unexpected event %v", ev)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorSurfacesOnFlush(t *testing.T) {
	tr := trace.NewStreamTracer(failingWriter{}, trace.LevelDebug, trace.FormatText)
	trace.Point(tr, trace.ScopeDriver, "a", "", 0)
	trace.Point(tr, trace.ScopeDriver, "b", "", 0)
	if err := tr.Flush(); err == nil || err.Error() != "disk full" {
		t.Fatalf("Flush = %v, want disk full", err)
	}
}

func TestWithTracerKeepsParent(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	span := trace.Begin(tr, trace.ScopeDriver, "build", 0)
	ctx := trace.WithParent(trace.WithTracer(context.Background(), tr), span)

	ctx = trace.WithTracer(ctx, nil)
	if trace.FromContext(ctx) != trace.Nop {
		t.Fatal("nil tracer must become Nop")
	}
	if trace.ParentSpan(ctx) != span.ID() {
		t.Fatal("replacing the tracer dropped the parent span")
	}
}

func TestFilteredSpanIsInert(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	s := trace.Begin(tr, trace.ScopeFile, "file:x.lugha", 0)
	s.WithExtra("k", "v").End("")
	if s.ID() != 0 || buf.Len() != 0 {
		t.Fatalf("filtered span wrote %q (id %d)", buf.String(), s.ID())
	}
}
