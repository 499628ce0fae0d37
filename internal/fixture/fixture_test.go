package fixture_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/fixture"
	"tsgoc/internal/pipeline"
)

func TestParseSourceBuildsVariableDecl(t *testing.T) {
	mod, err := fixture.ParseSource("const.ts", `const total = 42;`)
	require.NoError(t, err)
	require.Len(t, mod.Statements, 1)

	v := mod.Statements[0].(*ast.VariableDecl)
	assert.Equal(t, "total", v.Name)
	assert.True(t, v.IsConst)
	lit := v.Initializer.(*ast.LiteralExpr)
	assert.Equal(t, float64(42), lit.Value)
}

func TestParseSourceBuildsFunctionWithControlFlow(t *testing.T) {
	src := `
		function clamp(value: number, limit: number): number {
			if (value > limit) {
				return limit;
			}
			return value;
		}
	`
	mod, err := fixture.ParseSource("clamp.ts", src)
	require.NoError(t, err)
	require.Len(t, mod.Statements, 1)

	fn := mod.Statements[0].(*ast.FunctionDecl)
	assert.Equal(t, "clamp", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "value", fn.Params[0].Name)
	require.Len(t, fn.Body.Statements, 2)

	ifStmt := fn.Body.Statements[0].(*ast.IfStmt)
	cond := ifStmt.Cond.(*ast.BinaryExpr)
	assert.Equal(t, ">", cond.Op)
}

func TestParseSourceBuildsMemberAndCallChain(t *testing.T) {
	mod, err := fixture.ParseSource("call.ts", `const n = user.name.length();`)
	require.NoError(t, err)

	v := mod.Statements[0].(*ast.VariableDecl)
	call := v.Initializer.(*ast.CallExpr)
	member := call.Callee.(*ast.MemberExpr)
	assert.Equal(t, "length", member.Property)
}

func TestParseSourceReportsSyntaxError(t *testing.T) {
	_, err := fixture.ParseSource("broken.ts", `const = ;`)
	assert.Error(t, err)
}

func TestParsedModuleDescendsThroughPipeline(t *testing.T) {
	mod, err := fixture.ParseSource("total.ts", `
		export function total(a: number, b: number): number {
			return a + b;
		}
	`)
	require.NoError(t, err)

	p := pipeline.New(config.Default(), nil)
	res, err := p.Run(context.Background(), mod)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics.All())
	assert.Contains(t, res.Emitted.Source, "func")
}
