package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"tsgoc/internal/types"
)

// Level represents the severity of a diagnostic.
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// Diagnostic is a structured compiler message produced by lowering, type
// mapping, or emission. Code is one of the E1xxx/E2xxx/E3xxx/W4xxx constants
// in codes.go.
type Diagnostic struct {
	Level       Level
	Code        string
	Message     string
	Location    types.SourceLocation
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Suggestion is a suggested fix attached to a Diagnostic.
type Suggestion struct {
	Message     string
	Replacement string
	Location    types.SourceLocation
	Length      int
}

// Bag collects diagnostics as they are raised during lowering, type mapping,
// and emission instead of aborting the pipeline. Callers inspect it after a
// pipeline stage completes (spec §7).
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag returns an empty diagnostic collector.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
}

// All returns every diagnostic collected so far, in the order they were added.
func (b *Bag) All() []Diagnostic {
	return b.diagnostics
}

// HasErrors reports whether the bag contains any diagnostic at Error level.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// ByLocation groups diagnostics by their SourceLocation, for callers (such as
// the LSP server) that need per-line diagnostic lists.
func (b *Bag) ByLocation() map[types.SourceLocation][]Diagnostic {
	out := map[types.SourceLocation][]Diagnostic{}
	for _, d := range b.diagnostics {
		out[d.Location] = append(out[d.Location], d)
	}
	return out
}

// Reporter renders Diagnostics with Rust-like caret-snippet formatting.
type Reporter struct {
	filename string
	source   string
	lines    []string
}

// NewReporter creates a reporter for one source file's diagnostics.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatDiagnostic renders one diagnostic as a one-line summary, a
// caret-snippet of the offending source, and any suggestions/notes/help.
func (r *Reporter) FormatDiagnostic(d Diagnostic) string {
	var result strings.Builder

	levelColor := r.getLevelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	line := d.Location.StartLine
	lineNumberWidth := r.getLineNumberWidth(line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, line, d.Location.StartColumn))

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if line > 1 && line-1 < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line-1)),
			dim("│"),
			r.lines[line-2]))
	}

	if line <= len(r.lines) && line > 0 {
		lineContent := r.lines[line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, line)),
			dim("│"),
			lineContent))

		marker := r.createMarker(d.Location.StartColumn, d.Length, d.Level)
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	if line < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line+1)),
			dim("│"),
			r.lines[line]))
	}

	if len(d.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		for i, suggestion := range d.Suggestions {
			suggestionColor := color.New(color.FgCyan).SprintFunc()

			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(replacement)))
			}
		}
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) getLevelColor(level Level) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) createMarker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	markerChar := "^"
	var markerColor func(...interface{}) string
	switch level {
	case Warning:
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}

	marker := strings.Repeat(markerChar, length)
	return spaces + markerColor(marker)
}

func (r *Reporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
