package lambda

import "fmt"

// Severity ranks a diagnostic for editor clients.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Range spans source text between two positions. Lines are 1-based and
// columns 0-based, matching Token positions; LSP clients subtract one from
// the line before publishing.
type Range struct {
	Start Position
	End   Position
}

// Diagnostic is a lexer or parser finding tied to a source range. Both
// phases accumulate diagnostics instead of halting, so a single pass over a
// broken file reports as much as possible.
type Diagnostic struct {
	Range    Range
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%d:%d] %s: %s", d.Range.Start.Line, d.Range.Start.Column, d.Severity, d.Message)
}

func errorDiagnostic(pos Position, message string) Diagnostic {
	return Diagnostic{
		Range: Range{
			Start: pos,
			End:   Position{Line: pos.Line, Column: pos.Column + 1},
		},
		Message:  message,
		Severity: SeverityError,
	}
}
