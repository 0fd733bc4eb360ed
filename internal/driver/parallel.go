package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lugha/internal/diag"
	"lugha/internal/source"
	"lugha/internal/trace"
)

// SourceExt is the file extension of lugha sources.
const SourceExt = ".lugha"

// DirResult holds per-file results in sorted path order.
type DirResult struct {
	FileSet *source.FileSet
	Files   []*Result
}

// HasErrors reports whether any file produced an error.
func (d *DirResult) HasErrors() bool {
	if d == nil {
		return false
	}
	for _, r := range d.Files {
		if r.HasErrors() {
			return true
		}
	}
	return false
}

// ListSources returns all *.lugha files under dir, sorted.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TranspileDir transpiles every source under dir with at most jobs workers.
// A file that fails to load gets an IO4001 diagnostic instead of aborting the run.
// sink may be nil.
func TranspileDir(ctx context.Context, dir string, opts Options, jobs int, sink ProgressSink) (*DirResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	out := &DirResult{FileSet: fileSet, Files: make([]*Result, len(files))}
	if len(files) == 0 {
		return out, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "transpile-dir", trace.ParentSpan(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span)

	// FileSet не потокобезопасен: загружаем всё до запуска воркеров
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустой виртуальный файл даёт диагностике IO4001 корректный путь
			loadErrors[path] = err
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if sink == nil {
		sink = func(FileEvent) {}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			sink(FileEvent{Path: path, Index: i, Total: len(files), Status: FileStarted})

			var res *Result
			if loadErr, hadError := loadErrors[path]; hadError {
				file := fileSet.Get(fileIDs[path])
				res = &Result{Path: file.Path, FileSet: fileSet, Bag: diag.NewBag(opts.MaxDiagnostics)}
				res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID}, "failed to load file: "+loadErr.Error()))
				trace.Error(tracer, trace.ScopeFile, "load", loadErr, span.ID())
			} else {
				res = run(gctx, fileSet, fileSet.Get(fileIDs[path]), opts)
			}
			// индекс i уникален для горутины, мьютекс не нужен
			out.Files[i] = res

			errs, warns := countSeverities(res)
			sink(FileEvent{
				Path:     path,
				Index:    i,
				Total:    len(files),
				Status:   FileDone,
				Errors:   errs,
				Warnings: warns,
				Cached:   res.Cached,
				Elapsed:  time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
