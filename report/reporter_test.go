package report

import (
	"sync"
	"testing"
)

func TestReporter_RecordsInOrder(t *testing.T) {
	r := NewReporter()

	if !r.ShouldProceed() {
		t.Error("expected a fresh reporter to proceed")
	}

	r.Report(Raise(UnitError, nil, "first"))
	r.Report(Raise(DimensionMismatch, nil, "second"))

	diags := r.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Message != "first" || diags[1].Message != "second" {
		t.Error("expected diagnostics in order of detection")
	}
	if r.ShouldProceed() {
		t.Error("expected reporting to block proceeding")
	}
}

func TestReporter_CatchDiagnostics(t *testing.T) {
	r := NewReporter()

	func() {
		defer r.CatchDiagnostics()
		panic(Raise(UndefinedVariable, nil, "undefined variable: `x`"))
	}()

	diags := r.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Kind != UndefinedVariable {
		t.Errorf("expected kind UndefinedVariable, got %s", diags[0].KindString())
	}
}

func TestReporter_CatchRepanicsOtherValues(t *testing.T) {
	r := NewReporter()

	defer func() {
		if recover() == nil {
			t.Error("expected a non-diagnostic panic to propagate")
		}
	}()

	defer r.CatchDiagnostics()
	panic("not a diagnostic")
}

func TestReporter_Concurrent(t *testing.T) {
	r := NewReporter()

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Report(Raise(UnitError, nil, "fault"))
		}()
	}
	wg.Wait()

	if len(r.Diagnostics()) != 16 {
		t.Errorf("expected 16 diagnostics, got %d", len(r.Diagnostics()))
	}
}

func TestDiagnostic_Formatting(t *testing.T) {
	d := Raise(UnitError, &TextSpan{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 10}, "unknown unit: `%s`", "parsec")

	if d.Error() != "unknown unit: `parsec`" {
		t.Errorf("unexpected message: %q", d.Error())
	}
	if d.KindString() != "unit error" {
		t.Errorf("unexpected kind label: %q", d.KindString())
	}
	if d.Span.StartLine != 2 || d.Span.EndCol != 10 {
		t.Error("expected the span to be carried through")
	}
}
