package yargon

import "fmt"

// Severity classifies a Diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a severity-tagged message with an optional source span.
// Two diagnostics are equal iff their severity, text, and span all match.
type Diagnostic struct {
	Severity Severity
	Text     string
	Span     Span
	HasSpan  bool
}

// NewDiagnostic builds a Diagnostic carrying the given span.
func NewDiagnostic(severity Severity, text string, span Span) Diagnostic {
	return Diagnostic{Severity: severity, Text: text, Span: span, HasSpan: true}
}

// NewMessage builds a Diagnostic with no associated span.
func NewMessage(severity Severity, text string) Diagnostic {
	return Diagnostic{Severity: severity, Text: text}
}

// String renders the diagnostic as "severity: text" or, when a span is
// present, "severity at line:column: text" using the span's start.
func (d Diagnostic) String() string {
	if d.HasSpan {
		return fmt.Sprintf("%s at %d:%d: %s", d.Severity, d.Span.Start.Line, d.Span.Start.Column, d.Text)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Text)
}
