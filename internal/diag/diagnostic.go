package diag

import (
	"nimble/internal/source"
)

// Note is a secondary span/message attached to a diagnostic for context.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by every analysis phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
