package driver

import (
	"context"
	"fmt"
	"strconv"

	"lugha/internal/diag"
	"lugha/internal/lexer"
	"lugha/internal/observ"
	"lugha/internal/source"
	"lugha/internal/trace"
	"lugha/internal/transpile"
)

// Result is the outcome of transpiling one file.
type Result struct {
	Path      string
	FileSet   *source.FileSet
	File      *source.File // nil when the file could not be loaded
	Fragments []string
	Output    string
	Bag       *diag.Bag
	Timing    *observ.Report
	Cached    bool
}

// HasErrors reports whether any error diagnostic was collected.
func (r *Result) HasErrors() bool {
	return r != nil && r.Bag != nil && r.Bag.HasErrors()
}

// TranspileFile loads path and transpiles it.
func TranspileFile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return run(ctx, fs, fs.Get(fileID), opts), nil
}

// TranspileSource transpiles an in-memory buffer registered under name.
func TranspileSource(name string, src []byte, opts Options) *Result {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return run(context.Background(), fs, fs.Get(fileID), opts)
}

func run(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+file.Path, trace.ParentSpan(ctx))
	timer := observ.NewTimer()

	res := &Result{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	var key Digest
	if opts.Cache != nil || opts.Memo != nil {
		key = CacheKey(file.Content, opts)
		idx := timer.Begin("cache")
		payload, hit := lookupCache(key, opts, res.Bag, file.ID)
		if hit {
			res.Fragments = fromDiskPayload(payload, file.ID, res.Bag)
			res.Cached = true
		}
		timer.End(idx, strconv.FormatBool(hit))
	}

	if !res.Cached {
		lexIdx := timer.Begin("lex")
		lexSpan := trace.Begin(tracer, trace.ScopePass, "lex", span.ID())
		work := diag.NewBag(opts.MaxDiagnostics)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: work}})
		lexSpan.WithExtra("tokens", strconv.Itoa(len(toks))).End("")
		timer.End(lexIdx, strconv.Itoa(len(toks))+" tokens")

		trIdx := timer.Begin("transpile")
		trSpan := trace.Begin(tracer, trace.ScopePass, "transpile", span.ID())
		topts := opts.Transpile
		topts.Reporter = nil
		topts.MaxDiagnostics = opts.MaxDiagnostics
		tr := transpile.Transpile(file, toks, topts)
		res.Fragments = tr.Fragments
		addAll(work, tr.Bag.Items())
		trSpan.WithExtra("fragments", strconv.Itoa(len(tr.Fragments))).End("")
		timer.End(trIdx, "")

		addAll(res.Bag, work.Items())
		payload := toDiskPayload(res.Fragments, work.Items())
		if opts.Memo != nil {
			opts.Memo.Put(key, payload)
		}
		if opts.Cache != nil {
			if err := opts.Cache.Put(key, payload); err != nil {
				res.Bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, "cache write failed: "+err.Error()))
				trace.Error(tracer, trace.ScopePass, "cache", err, span.ID())
			}
		}
	}

	res.Output = transpile.Result{Fragments: res.Fragments}.Text(opts.Separator)

	report := timer.Report()
	res.Timing = &report
	if opts.Timings {
		appendTimingDiagnostic(res.Bag, timingPayload{Kind: "file", Path: file.Path, TotalMS: report.TotalMS, Phases: report.Phases}, file.ID)
	}
	span.WithExtra("cached", strconv.FormatBool(res.Cached)).End(fmt.Sprintf("%d diagnostics", res.Bag.Len()))
	return res
}

// lookupCache checks the memo, then the disk cache; a disk hit is copied into the memo.
func lookupCache(key Digest, opts Options, bag *diag.Bag, file source.FileID) (*DiskPayload, bool) {
	if opts.Memo != nil {
		if payload, ok := opts.Memo.Get(key); ok {
			return payload, true
		}
	}
	if opts.Cache == nil {
		return nil, false
	}
	var payload DiskPayload
	hit, err := opts.Cache.Get(key, &payload)
	if err != nil {
		bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file}, "cache read failed: "+err.Error()))
		return nil, false
	}
	if hit && opts.Memo != nil {
		opts.Memo.Put(key, &payload)
	}
	return &payload, hit
}

// addAll copies items into dst until dst is full; unlike Bag.Merge it keeps the cap.
func addAll(dst *diag.Bag, items []diag.Diagnostic) {
	for _, d := range items {
		if !dst.Add(d) {
			return
		}
	}
}
