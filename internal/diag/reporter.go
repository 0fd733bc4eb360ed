package diag

import "lugha/internal/source"

// Reporter: получатель диагностик от фаз конвейера.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// BagReporter складывает диагностики в Bag; лимит Bag соблюдается.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Tee fans one diagnostic out to every non-nil reporter, in order.
type Tee []Reporter

func (t Tee) Report(d Diagnostic) {
	for _, r := range t {
		d.ReportTo(r)
	}
}

type seenKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// DedupReporter forwards the first of several identical diagnostics.
// Identity is code, severity, primary span and message; notes do not count.
type DedupReporter struct {
	next Reporter
	seen map[seenKey]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[seenKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	k := seenKey{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	d.ReportTo(r.next)
}
