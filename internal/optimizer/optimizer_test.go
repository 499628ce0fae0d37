package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

func constDecl(name string, init ir.Expr, exported bool) *ir.VariableDecl {
	mods := types.ModifierSet{}
	if exported {
		mods = types.NewModifierSet(types.Export)
	}
	d := ir.NewVariableDecl(types.SourceLocation{}, name, mods, true, nil, init)
	return d
}

func TestEliminateDeadCodeDropsUnreferenced(t *testing.T) {
	unused := constDecl("unused", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	used := constDecl("base", ir.NewLiteral(types.SourceLocation{}, float64(2), nil), false)
	exported := constDecl("Total", ir.NewIdentifier(types.SourceLocation{}, "base", nil), true)

	m := &ir.Module{Statements: []ir.Decl{unused, used, exported}}
	out := EliminateDeadCode(m)

	names := declNames(out)
	assert.ElementsMatch(t, []string{"base", "Total"}, names)
}

func TestEliminateDeadCodeAlwaysRetainsTopLevelExpressionStatements(t *testing.T) {
	unused := constDecl("unused", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	sideEffect := ir.NewExpressionStmt(types.SourceLocation{},
		ir.NewCall(types.SourceLocation{}, ir.NewIdentifier(types.SourceLocation{}, "registerHandlers", nil), nil, nil, false))

	m := &ir.Module{Statements: []ir.Decl{unused, sideEffect}}
	out := EliminateDeadCode(m)

	require.Len(t, out.Statements, 1)
	_, ok := out.Statements[0].(*ir.ExpressionStmt)
	assert.True(t, ok, "side-effectful top-level expression statement must survive DCE")
}

func TestEliminateDeadCodeFixedPoint(t *testing.T) {
	// c depends on b, b depends on a; none exported. Dropping the chain
	// must cascade: removing c's user (nothing) should also drop b and a.
	a := constDecl("a", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	b := constDecl("b", ir.NewIdentifier(types.SourceLocation{}, "a", nil), false)
	c := constDecl("c", ir.NewIdentifier(types.SourceLocation{}, "b", nil), false)

	m := &ir.Module{Statements: []ir.Decl{a, b, c}}
	out := EliminateDeadCode(m)

	assert.Empty(t, declNames(out))
}

func TestEliminateDeadCodeKeepsReferencedChain(t *testing.T) {
	a := constDecl("a", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	b := constDecl("b", ir.NewIdentifier(types.SourceLocation{}, "a", nil), false)
	exported := constDecl("Root", ir.NewIdentifier(types.SourceLocation{}, "b", nil), true)

	m := &ir.Module{Statements: []ir.Decl{a, b, exported}}
	out := EliminateDeadCode(m)

	assert.ElementsMatch(t, []string{"a", "b", "Root"}, declNames(out))
}

func TestFoldConstantsCollapsesLiteralArithmetic(t *testing.T) {
	sum := ir.NewBinary(types.SourceLocation{}, "+",
		ir.NewLiteral(types.SourceLocation{}, float64(2), nil),
		ir.NewLiteral(types.SourceLocation{}, float64(3), nil))
	d := constDecl("five", sum, true)

	m := &ir.Module{Statements: []ir.Decl{d}}
	out := FoldConstants(m)

	v := out.Statements[0].(*ir.VariableDecl)
	lit, ok := v.Initializer.(*ir.Literal)
	require.True(t, ok, "folded initializer must be a literal")
	assert.Equal(t, float64(5), lit.Value)
}

func TestFoldConstantsLeavesNonLiteralOperandsAlone(t *testing.T) {
	sum := ir.NewBinary(types.SourceLocation{}, "+",
		ir.NewIdentifier(types.SourceLocation{}, "x", nil),
		ir.NewLiteral(types.SourceLocation{}, float64(3), nil))
	d := constDecl("notFoldable", sum, true)

	m := &ir.Module{Statements: []ir.Decl{d}}
	out := FoldConstants(m)

	v := out.Statements[0].(*ir.VariableDecl)
	_, ok := v.Initializer.(*ir.Binary)
	assert.True(t, ok, "initializer referencing a non-literal must stay a Binary node")
}

func TestRunLevel0IsNoop(t *testing.T) {
	d := constDecl("unused", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	m := &ir.Module{Statements: []ir.Decl{d}}

	out := Run(m, 0)
	assert.Len(t, out.Statements, 1)
}

func TestRunLevel1AppliesDCEAndFolding(t *testing.T) {
	unused := constDecl("unused", ir.NewLiteral(types.SourceLocation{}, float64(1), nil), false)
	sum := ir.NewBinary(types.SourceLocation{}, "+",
		ir.NewLiteral(types.SourceLocation{}, float64(2), nil),
		ir.NewLiteral(types.SourceLocation{}, float64(3), nil))
	exported := constDecl("Five", sum, true)

	m := &ir.Module{Statements: []ir.Decl{unused, exported}}
	out := Run(m, 1)

	require.Len(t, out.Statements, 1)
	v := out.Statements[0].(*ir.VariableDecl)
	assert.Equal(t, "Five", v.Name)
	lit := v.Initializer.(*ir.Literal)
	assert.Equal(t, float64(5), lit.Value)
}

func declNames(m *ir.Module) []string {
	names := make([]string, 0, len(m.Statements))
	for _, d := range m.Statements {
		names = append(names, declName(d))
	}
	return names
}
