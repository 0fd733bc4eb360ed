package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lugha/internal/diag"
	"lugha/internal/source"
)

type palette struct {
	err, warn, info, note, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgGreen),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgMagenta, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// Колонки каретки считаются в ячейках терминала (go-runewidth), а не в байтах.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		sev := strings.ToUpper(d.Severity.String())
		loc, file, ok := location(d.Primary, fs, opts.PathMode)
		if ok && !isDetached(d) {
			fmt.Fprintf(w, "%s: %s %s: %s\n", p.bold.Sprint(loc), p.severity(d.Severity).Sprint(sev), d.Code.ID(), d.Message)
			writeSnippet(w, p, fs, file, d.Primary, opts)
		} else {
			fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(sev), d.Code.ID(), d.Message)
		}

		if !opts.ShowNotes && d.Code != diag.ObsTimings {
			continue
		}
		for _, n := range d.Notes {
			if nloc, _, ok := location(n.Span, fs, opts.PathMode); ok && !isDetached(d) {
				fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), nloc, n.Msg)
			} else {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			}
		}
	}
}

// isDetached reports diagnostics that describe a whole run rather than a position.
func isDetached(d diag.Diagnostic) bool {
	return d.Code == diag.IOLoadFileError || d.Code == diag.ObsTimings
}

func location(sp source.Span, fs *source.FileSet, mode PathMode) (string, *source.File, bool) {
	if fs == nil || !fs.Has(sp.File) {
		return "", nil, false
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, mode, fs.BaseDir()), start.Line, start.Col), f, true
}

func writeSnippet(w io.Writer, p palette, fs *source.FileSet, f *source.File, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	first := start.Line
	if opts.Context > 0 {
		first = uint32(max(1, int(start.Line)-int(opts.Context))) // #nosec G115 -- line numbers fit uint32
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := f.GetLine(ln)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	col := clampCol(line, start.Col)
	stop := len(line)
	if end.Line == start.Line {
		stop = clampCol(line, end.Col)
	}
	pad := padFor(line[:col])
	width := max(1, runewidth.StringWidth(line[col:max(col, stop)]))
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), pad, p.caret.Sprint(marker))
}

// clampCol converts a 1-based byte column into a byte index inside line.
func clampCol(line string, col uint32) int {
	idx := int(col) - 1
	return min(max(idx, 0), len(line))
}

// padFor blanks out prefix; tabs stay tabs so the caret lines up. Widths are
// taken per tab-free run so combining marks (harakat) add no cells.
func padFor(prefix string) string {
	runs := strings.Split(prefix, "\t")
	for i, run := range runs {
		runs[i] = strings.Repeat(" ", runewidth.StringWidth(run))
	}
	return strings.Join(runs, "\t")
}
