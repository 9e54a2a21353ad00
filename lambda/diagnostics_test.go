package lambda

import "testing"

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Range:    Range{Start: Position{Line: 3, Column: 7}},
		Message:  "expected ; after value",
		Severity: SeverityError,
	}
	want := "[3:7] error: expected ; after value"
	if got := d.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityError.String() != "error" || SeverityWarning.String() != "warning" {
		t.Fatal("unexpected severity names")
	}
	if Severity(99).String() != "unknown" {
		t.Fatal("unexpected fallback name")
	}
}

func TestErrorDiagnosticRange(t *testing.T) {
	d := errorDiagnostic(Position{Line: 2, Column: 4}, "boom")
	if d.Range.End.Line != 2 || d.Range.End.Column != 5 {
		t.Fatalf("unexpected end %+v", d.Range.End)
	}
	if d.Severity != SeverityError {
		t.Fatalf("unexpected severity %v", d.Severity)
	}
}
