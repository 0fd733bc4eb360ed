package trace

import (
	"bufio"
	"io"
	"sync"
)

// StreamTracer formats events as they arrive. Write errors never reach
// Emit; the first one is kept and returned by Flush and Close.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	buf    *bufio.Writer // set for owned files
	closer io.Closer     // nil when the writer belongs to the caller
	level  Level
	format Format
	err    error
}

// NewStreamTracer writes straight to w and never closes it.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{w: w, level: level, format: format}
}

// newFileTracer owns wc: output is buffered and Close closes it.
func newFileTracer(wc io.WriteCloser, level Level, format Format) *StreamTracer {
	t := NewStreamTracer(wc, level, format)
	t.buf = bufio.NewWriterSize(wc, 32<<10)
	t.w = t.buf
	t.closer = wc
	return t
}

func (t *StreamTracer) Emit(ev Event) {
	if !t.level.Admits(ev.Kind, ev.Scope) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.w.Write(data); err != nil && t.err == nil {
		t.err = err
	}
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flushLocked()
}

func (t *StreamTracer) flushLocked() error {
	if t.buf != nil {
		if err := t.buf.Flush(); err != nil && t.err == nil {
			t.err = err
		}
	}
	return t.err
}

// Close flushes and, for owned files, closes. Later calls are no-ops.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	err := t.flushLocked()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
		t.closer = nil
		t.buf = nil
		t.w = io.Discard
	}
	return err
}

func (t *StreamTracer) Level() Level { return t.level }
