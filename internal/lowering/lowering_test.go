package lowering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

func TestLowerVariableDecl(t *testing.T) {
	mod := &ast.Module{
		Name: "m",
		Statements: []ast.Decl{
			&ast.VariableDecl{
				Name:        "x",
				Modifiers:   types.NewModifierSet(types.Export, types.Const),
				IsConst:     true,
				Initializer: &ast.LiteralExpr{Value: float64(42)},
			},
		},
	}

	out, names, bag := Lower(mod, config.Default())
	require.Empty(t, bag.All())
	require.Len(t, out.Statements, 1)

	v := out.Statements[0].(*ir.VariableDecl)
	assert.Equal(t, "x", v.Name)
	assert.True(t, v.IsConst)
	assert.True(t, v.Modifiers.Has(types.Export))
	lit := v.Initializer.(*ir.Literal)
	assert.Equal(t, float64(42), lit.Value)

	assert.True(t, names.Has("x"))
}

func TestLowerTopLevelExpressionStatement(t *testing.T) {
	mod := &ast.Module{
		Name: "m",
		Statements: []ast.Decl{
			&ast.ExprStmt{Expr: &ast.CallExpr{Callee: &ast.IdentExpr{Name: "registerHandlers"}}},
		},
	}

	out, _, bag := Lower(mod, config.Default())
	require.Empty(t, bag.All())
	require.Len(t, out.Statements, 1)

	es := out.Statements[0].(*ir.ExpressionStmt)
	call := es.Expr.(*ir.Call)
	assert.Equal(t, "registerHandlers", call.Callee.(*ir.Identifier).Name)
}

func TestLowerClassConstructorScansSuperAndThisAssignments(t *testing.T) {
	class := &ast.ClassDecl{
		Name: "Employee",
		Members: []ast.ClassMember{
			&ast.MethodMember{
				Name: "constructor",
				Params: []types.Parameter{
					{Name: "name", Type: types.NewPrimitive(types.PrimString)},
					{Name: "email", Type: types.NewPrimitive(types.PrimString), Modifiers: types.NewModifierSet(types.Private)},
				},
				Body: &ast.BlockStmt{
					Statements: []ast.Stmt{
						&ast.ExprStmt{Expr: &ast.SuperExpr{IsCallForm: true, Args: []ast.Expr{&ast.IdentExpr{Name: "name"}}}},
						&ast.ExprStmt{Expr: &ast.AssignExpr{
							Op:    "=",
							Left:  &ast.MemberExpr{Object: &ast.IdentExpr{Name: "this"}, Property: "email"},
							Right: &ast.IdentExpr{Name: "email"},
						}},
					},
				},
			},
		},
	}

	mod := &ast.Module{Statements: []ast.Decl{class}}
	out, _, bag := Lower(mod, config.Default())
	require.Empty(t, bag.All())

	lowered := out.Statements[0].(*ir.ClassDecl)
	require.Len(t, lowered.Members, 2)

	ctor := lowered.Members[0].(*ir.Method)
	require.NotNil(t, ctor.Constructor)
	require.NotNil(t, ctor.Constructor.Super)
	assert.Len(t, ctor.Constructor.Super.Args, 1)
	require.Len(t, ctor.Constructor.ThisAssignments, 1)
	assert.Equal(t, "email", ctor.Constructor.ThisAssignments[0].Field)

	prop := lowered.Members[1].(*ir.Property)
	assert.Equal(t, "email", prop.Name)
	assert.True(t, prop.IsConstructorParam)
}

func TestLowerGetterSetterRename(t *testing.T) {
	class := &ast.ClassDecl{
		Name: "Box",
		Members: []ast.ClassMember{
			&ast.MethodMember{Name: "value", Accessor: ast.AccessorGet, Body: &ast.BlockStmt{}},
			&ast.MethodMember{Name: "value", Accessor: ast.AccessorSet, Body: &ast.BlockStmt{}},
		},
	}
	mod := &ast.Module{Statements: []ast.Decl{class}}
	out, _, _ := Lower(mod, config.Default())

	lowered := out.Statements[0].(*ir.ClassDecl)
	require.Len(t, lowered.Members, 2)
	assert.Equal(t, "get_value", lowered.Members[0].(*ir.Method).Name)
	assert.Equal(t, "set_value", lowered.Members[1].(*ir.Method).Name)
}

func TestLowerEnumHeterogeneity(t *testing.T) {
	numeric := &ast.EnumDecl{
		Name: "Numeric",
		Members: []*ast.EnumMember{
			{Name: "A", Value: &ast.LiteralExpr{Value: float64(0)}},
			{Name: "B", Value: &ast.LiteralExpr{Value: float64(1)}},
		},
	}
	stringy := &ast.EnumDecl{
		Name: "Stringy",
		Members: []*ast.EnumMember{
			{Name: "A", Value: &ast.LiteralExpr{Value: "a"}},
		},
	}
	mod := &ast.Module{Statements: []ast.Decl{numeric, stringy}}
	out, _, _ := Lower(mod, config.Default())

	assert.False(t, out.Statements[0].(*ir.EnumDecl).Heterogeneous)
	assert.True(t, out.Statements[1].(*ir.EnumDecl).Heterogeneous)
}

func TestLowerInterfaceIndexSignature(t *testing.T) {
	iface := &ast.InterfaceDecl{
		Name: "Dict",
		IndexSignature: &types.IndexSignature{
			KeyType:   types.NewPrimitive(types.PrimString),
			ValueType: types.NewPrimitive(types.PrimNumber),
		},
	}
	mod := &ast.Module{Statements: []ast.Decl{iface}}
	out, _, _ := Lower(mod, config.Default())

	lowered := out.Statements[0].(*ir.InterfaceDecl)
	require.Len(t, lowered.Properties, 1)
	assert.Equal(t, "[index]", lowered.Properties[0].Name)
	assert.Equal(t, types.KindFunction, lowered.Properties[0].Type.Kind)
}

func TestLowerUnsupportedStmtProducesPlaceholderAndDiagnostic(t *testing.T) {
	l := New(config.Default())
	block := &ast.BlockStmt{Statements: []ast.Stmt{unsupportedStmt{}}}
	out := l.lowerBlock(block)

	require.Len(t, out.Statements, 1)
	es := out.Statements[0].(*ir.ExpressionStmt)
	ident := es.Expr.(*ir.Identifier)
	assert.Equal(t, "unknown", ident.Name)
	assert.NotEmpty(t, l.bag.All())
}

// unsupportedStmt is a Stmt kind lowering has no rule for, used to exercise
// the never-abort failure mode (spec §4.1). It embeds a nil *ast.ThrowStmt
// only to pick up ast.Stmt's unexported marker method, which a type outside
// package ast cannot declare for itself.
type unsupportedStmt struct{ *ast.ThrowStmt }

func (unsupportedStmt) Loc() types.SourceLocation { return types.SourceLocation{} }
func (unsupportedStmt) Kind() ast.NodeKind        { return ast.NodeKind(999) }
