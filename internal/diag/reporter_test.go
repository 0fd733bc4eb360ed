package diag_test

import (
	"testing"

	"lugha/internal/diag"
)

func TestReportToBag(t *testing.T) {
	bag := diag.NewBag(0)
	d := diag.NewError(diag.SynUnclosedBlock, sp(9, 9), "block is not closed").
		WithNote(sp(0, 4), "opened here")
	d.ReportTo(diag.BagReporter{Bag: bag})
	d.ReportTo(nil)

	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Origin != diag.OriginTranspiler {
		t.Errorf("origin = %s, want transpiler", got.Origin)
	}
	if len(got.Notes) != 1 || got.Notes[0].Msg != "opened here" {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := diag.NewError(diag.SynUnclosedBlock, sp(0, 1), "x").WithNote(sp(0, 0), "a")
	base.Notes = append(make([]diag.Note, 0, 4), base.Notes...) // запас ёмкости, чтобы поймать общий массив
	left := base.WithNote(sp(1, 1), "left")
	right := base.WithNote(sp(2, 2), "right")
	if left.Notes[1].Msg != "left" || right.Notes[1].Msg != "right" {
		t.Fatalf("notes aliased: %+v / %+v", left.Notes, right.Notes)
	}
	if len(base.Notes) != 1 {
		t.Fatalf("base mutated: %+v", base.Notes)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := diag.NewBag(0)
	r := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	diag.NewError(diag.TrnUnboundIdent, sp(1, 3), "unbound").ReportTo(r)
	diag.NewError(diag.TrnUnboundIdent, sp(1, 3), "unbound").WithNote(sp(0, 0), "n").ReportTo(r)
	diag.NewError(diag.TrnUnboundIdent, sp(4, 6), "unbound").ReportTo(r)
	diag.NewWarning(diag.TrnUnboundIdent, sp(4, 6), "unbound").ReportTo(r)

	if bag.Len() != 3 {
		t.Fatalf("expected 3 diagnostics after dedup, got %d", bag.Len())
	}
}

func TestTeeAndFunc(t *testing.T) {
	var calls int
	count := diag.ReporterFunc(func(diag.Diagnostic) { calls++ })
	bag := diag.NewBag(0)
	tee := diag.Tee{count, nil, diag.BagReporter{Bag: bag}, diag.NopReporter{}}

	diag.NewError(diag.LexUnknownChar, sp(0, 1), "x").ReportTo(tee)
	if calls != 1 || bag.Len() != 1 {
		t.Fatalf("calls=%d bag=%d", calls, bag.Len())
	}
}

func TestSeverityNames(t *testing.T) {
	cases := []struct {
		sev          diag.Severity
		upper, lower string
	}{
		{diag.SevInfo, "INFO", "info"},
		{diag.SevWarning, "WARNING", "warning"},
		{diag.SevError, "ERROR", "error"},
		{diag.Severity(9), "UNKNOWN", "unknown"},
	}
	for _, tc := range cases {
		if got := tc.sev.String(); got != tc.upper {
			t.Errorf("String(%d) = %q, want %q", tc.sev, got, tc.upper)
		}
		if got := tc.sev.Label(); got != tc.lower {
			t.Errorf("Label(%d) = %q, want %q", tc.sev, got, tc.lower)
		}
	}
	if diag.Severity(9).Valid() {
		t.Error("Severity(9) must be invalid")
	}
}
