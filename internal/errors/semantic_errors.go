package errors

import (
	"fmt"
	"strings"

	"tsgoc/internal/types"
)

// Builder provides a fluent interface for constructing a Diagnostic with
// suggestions and notes attached.
type Builder struct {
	d Diagnostic
}

// NewDiagnostic starts a Builder for an Error-level diagnostic.
func NewDiagnostic(code, message string, loc types.SourceLocation) *Builder {
	return &Builder{
		d: Diagnostic{
			Level:    Error,
			Code:     code,
			Message:  message,
			Location: loc,
			Length:   1,
		},
	}
}

// NewDiagnosticWarning starts a Builder for a Warning-level diagnostic.
func NewDiagnosticWarning(code, message string, loc types.SourceLocation) *Builder {
	return &Builder{
		d: Diagnostic{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Location: loc,
			Length:   1,
		},
	}
}

func (b *Builder) WithLength(length int) *Builder {
	b.d.Length = length
	return b
}

func (b *Builder) WithSuggestion(message string) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

func (b *Builder) WithReplacement(message, replacement string, loc types.SourceLocation, length int) *Builder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Location:    loc,
		Length:      length,
	})
	return b
}

func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

func (b *Builder) WithHelp(help string) *Builder {
	b.d.HelpText = help
	return b
}

func (b *Builder) Build() Diagnostic {
	return b.d
}

// Common diagnostic constructors, one per E1xxx/E2xxx/E3xxx/W4xxx code.

// UnparseableInitializer reports E1001: lowering could not turn an
// initializer expression into any IR expression.
func UnparseableInitializer(exprText string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnparseableInitializer,
		fmt.Sprintf("could not lower initializer expression %q", exprText), loc).
		WithHelp("the emitter will substitute a placeholder zero value").
		Build()
}

// MalformedLiteral reports E1002: an unterminated or otherwise malformed literal.
func MalformedLiteral(raw string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrMalformedLiteral,
		fmt.Sprintf("malformed literal %q", raw), loc).
		WithSuggestion("check for an unterminated string or template literal").
		Build()
}

// UnionTooWide reports E2001: a union has more arms than unionStrategy can discriminate.
func UnionTooWide(arms, max int, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnionTooWide,
		fmt.Sprintf("union has %d arms, which exceeds the %d the configured strategy supports", arms, max), loc).
		WithSuggestion("switch unionStrategy to \"interface\" or \"any\" for wide unions").
		Build()
}

// IntersectionFieldConflict reports E2002: two intersection constituents
// declare the same field name with incompatible types.
func IntersectionFieldConflict(field string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrIntersectionFieldConflict,
		fmt.Sprintf("field %q conflicts across intersection constituents", field), loc).
		WithSuggestion(fmt.Sprintf("rename one occurrence of %q before intersecting", field)).
		Build()
}

// UnmappableTupleElement reports E2003: a tuple element's type has no target mapping.
func UnmappableTupleElement(index int, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnmappableTupleElement,
		fmt.Sprintf("tuple element %d has no mappable target type", index), loc).
		Build()
}

// TypeMismatch reports E2004: a declared type and its initializer disagree.
func TypeMismatch(expected, actual string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrTypeMismatch,
		fmt.Sprintf("declared type does not match initializer shape: expected %s, found %s", expected, actual), loc).
		WithSuggestion("align the declared type with the initializer, or widen it to unknown").
		Build()
}

// UnsupportedDecorator reports E3001.
func UnsupportedDecorator(name string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnsupportedDecorator,
		fmt.Sprintf("decorator %q is not supported", name), loc).
		WithHelp("decorators are dropped; the decorated declaration is still lowered").
		Build()
}

// UnsupportedReflection reports E3002.
func UnsupportedReflection(construct string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnsupportedReflection,
		fmt.Sprintf("reflection-like construct %q is not supported", construct), loc).
		Build()
}

// UnsupportedDynamicImport reports E3003.
func UnsupportedDynamicImport(loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnsupportedDynamicImport,
		"dynamic import/eval-like construct is not supported", loc).
		WithSuggestion("replace with a static import").
		Build()
}

// UnsupportedTryCatchShape reports E3004: errorHandling=return could not lower this try/catch.
func UnsupportedTryCatchShape(reason string, loc types.SourceLocation) Diagnostic {
	return NewDiagnostic(ErrUnsupportedTryCatchShape,
		fmt.Sprintf("try/catch could not be lowered under the return error strategy: %s", reason), loc).
		WithSuggestion("switch errorHandling to \"panic\" for this module").
		Build()
}

// AnyRoundTrip reports W4001.
func AnyRoundTrip(exprText string, loc types.SourceLocation) Diagnostic {
	return NewDiagnosticWarning(WarnAnyRoundTrip,
		fmt.Sprintf("%q passes through any/unknown and loses its static shape", exprText), loc).
		Build()
}

// NumericTruncation reports W4002.
func NumericTruncation(exprText string, loc types.SourceLocation) Diagnostic {
	return NewDiagnosticWarning(WarnNumericTruncation,
		fmt.Sprintf("%q may truncate under numberStrategy=int", exprText), loc).
		Build()
}

// ZeroValueAsNull reports W4003.
func ZeroValueAsNull(name string, loc types.SourceLocation) Diagnostic {
	return NewDiagnosticWarning(WarnZeroValueAsNull,
		fmt.Sprintf("%q's zero value is indistinguishable from an absent value under nullabilityStrategy=zero", name), loc).
		Build()
}

// NameDisambiguated reports W4004.
func NameDisambiguated(original, disambiguated string, loc types.SourceLocation) Diagnostic {
	return NewDiagnosticWarning(WarnNameDisambiguated,
		fmt.Sprintf("synthesized name %q collided and was disambiguated to %q", original, disambiguated), loc).
		Build()
}

// findSimilarNames returns the candidates longer than two characters that
// are within edit distance 2 of target. Only this package's tests call it.
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// suggestSimilar renders a "did you mean" suggestion list, shared by any
// future caller that resolves names against a known set (e.g. an import
// resolver built on top of this package).
func suggestSimilar(names []string) string {
	return strings.Join(names, "', '")
}
