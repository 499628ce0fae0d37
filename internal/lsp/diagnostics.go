package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"tsgoc/internal/errors"
)

// ConvertDiagnostics transforms a diagnostic bag collected during lowering,
// type mapping, or emission into LSP diagnostics for IDE display. Unlike a
// syntax error, these never abort the descent (internal/lowering's "never
// abort, always placeholder" rule, spec §4.1), so a file can stay open with
// diagnostics shown inline while editing continues.
func ConvertDiagnostics(bag *errors.Bag) []protocol.Diagnostic {
	if bag == nil {
		return nil
	}
	var diagnostics []protocol.Diagnostic
	for _, d := range bag.All() {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max0(d.Location.StartLine - 1)),
					Character: uint32(max0(d.Location.StartColumn - 1)),
				},
				End: protocol.Position{
					Line:      uint32(max0(d.Location.EndLine - 1)),
					Character: uint32(max0(d.Location.EndColumn - 1)),
				},
			},
			Severity: ptrSeverity(severityFor(d.Level)),
			Source:   ptrString("tsgoc"),
			Message:  diagnosticMessage(d),
		})
	}
	return diagnostics
}

// ConvertParseError turns a fixture syntax error into the single LSP
// diagnostic an editor can anchor on; fixture has no recovery, so there is
// never more than one.
func ConvertParseError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("tsgoc-fixture"),
		Message:  err.Error(),
	}}
}

func severityFor(level errors.Level) protocol.DiagnosticSeverity {
	switch level {
	case errors.Error:
		return protocol.DiagnosticSeverityError
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// diagnosticMessage prefixes the code, matching internal/errors.Reporter's
// own "[code]: message" rendering for terminal output.
func diagnosticMessage(d errors.Diagnostic) string {
	if d.Code == "" {
		return d.Message
	}
	return "[" + d.Code + "]: " + d.Message
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }
func ptrString(s string) *string                                            { return &s }
