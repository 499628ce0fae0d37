package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"tsgoc/internal/types"
)

func loc(line, col int) types.SourceLocation {
	return types.SourceLocation{StartLine: line, StartColumn: col}
}

func TestReporterFormatsDiagnostic(t *testing.T) {
	source := `function test(): number {
    let x = unknownVar;
    return x;
}`

	reporter := NewReporter("test.ts", source)

	d := UnparseableInitializer("unknownVar", loc(2, 13))
	formatted := reporter.FormatDiagnostic(d)

	assert.Contains(t, formatted, "error["+ErrUnparseableInitializer+"]")
	assert.Contains(t, formatted, "unknownVar")
	assert.Contains(t, formatted, "test.ts:2:13")
}

func TestUnionTooWideDiagnostic(t *testing.T) {
	d := UnionTooWide(9, 8, loc(1, 5))
	assert.Equal(t, ErrUnionTooWide, d.Code)
	assert.Contains(t, d.Message, "9 arms")
	assert.Len(t, d.Suggestions, 1)
	assert.Contains(t, d.Suggestions[0].Message, "interface")
}

func TestTypeMismatchDiagnostic(t *testing.T) {
	d := TypeMismatch("number", "string", loc(1, 5))
	assert.Equal(t, ErrTypeMismatch, d.Code)
	assert.Contains(t, d.Message, "expected number")
	assert.Contains(t, d.Message, "found string")
}

func TestWarningFormatting(t *testing.T) {
	source := `let unused = 42;`
	reporter := NewReporter("test.ts", source)

	d := ZeroValueAsNull("count", loc(1, 5))
	formatted := reporter.FormatDiagnostic(d)

	assert.Contains(t, formatted, "warning["+WarnZeroValueAsNull+"]")
	assert.Contains(t, formatted, "indistinguishable")
}

func TestMarkerCreation(t *testing.T) {
	source := `let variable = value;`
	reporter := NewReporter("test.ts", source)

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"balance", "amount", "total", "balanceOf", "xyz"}

	similar := findSimilarNames("balace", candidates)
	assert.Contains(t, similar, "balance")
	assert.NotContains(t, similar, "xyz")

	similar = findSimilarNames("verydifferent", candidates)
	assert.Empty(t, similar)
}

func TestBagCollectsDiagnostics(t *testing.T) {
	bag := NewBag()
	bag.Add(UnparseableInitializer("x", loc(1, 1)))
	bag.Add(ZeroValueAsNull("y", loc(2, 1)))

	assert.Len(t, bag.All(), 2)
	assert.True(t, bag.HasErrors())

	grouped := bag.ByLocation()
	assert.Len(t, grouped[loc(1, 1)], 1)
	assert.Len(t, grouped[loc(2, 1)], 1)
}

func TestBagHasErrorsFalseForWarningsOnly(t *testing.T) {
	bag := NewBag()
	bag.Add(ZeroValueAsNull("y", loc(2, 1)))
	assert.False(t, bag.HasErrors())
}

func TestLevels(t *testing.T) {
	source := `test`
	reporter := NewReporter("test.ts", source)
	l := loc(1, 1)

	errD := Diagnostic{Level: Error, Message: "test error", Location: l}
	warnD := Diagnostic{Level: Warning, Message: "test warning", Location: l}

	assert.Contains(t, reporter.FormatDiagnostic(errD), "error:")
	assert.Contains(t, reporter.FormatDiagnostic(warnD), "warning:")
}
