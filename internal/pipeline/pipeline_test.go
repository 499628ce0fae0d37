package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/types"
)

func constModule(name string, value float64) *ast.Module {
	return &ast.Module{
		Name: name,
		Statements: []ast.Decl{
			&ast.VariableDecl{
				Name:        "x",
				Modifiers:   types.NewModifierSet(types.Export, types.Const),
				IsConst:     true,
				Initializer: &ast.LiteralExpr{Value: value},
			},
		},
	}
}

func TestRunEmitsModule(t *testing.T) {
	p := New(config.Default(), nil)
	res, err := p.Run(context.Background(), constModule("m", 42))

	require.NoError(t, err)
	assert.Equal(t, "m", res.Module)
	assert.Empty(t, res.Diagnostics.All())
	assert.Contains(t, res.Emitted.Source, "42")
}

func TestRunAbortsUnderStrictModeOnErrorDiagnostic(t *testing.T) {
	cfg := config.Default()
	cfg.Strict = true
	mod := &ast.Module{
		Name: "broken",
		Statements: []ast.Decl{
			&ast.VariableDecl{
				Name:        "x",
				Initializer: unsupportedExpr{},
			},
		},
	}

	p := New(cfg, nil)
	res, err := p.Run(context.Background(), mod)

	assert.ErrorIs(t, err, ErrStrictAborted)
	require.NotNil(t, res.Diagnostics)
	assert.True(t, res.Diagnostics.HasErrors())
	assert.Empty(t, res.Emitted.Source, "emission must not run once strict mode aborts")
}

func TestRunContinuesPastErrorDiagnosticWhenNotStrict(t *testing.T) {
	cfg := config.Default()
	cfg.Strict = false
	mod := &ast.Module{
		Name: "broken",
		Statements: []ast.Decl{
			&ast.VariableDecl{
				Name:        "x",
				Initializer: unsupportedExpr{},
			},
		},
	}

	p := New(cfg, nil)
	res, err := p.Run(context.Background(), mod)

	require.NoError(t, err)
	assert.True(t, res.Diagnostics.HasErrors())
	assert.NotEmpty(t, res.Emitted.Source)
}

func TestRunAllFansOutAcrossModules(t *testing.T) {
	modules := []*ast.Module{
		constModule("a", 1),
		constModule("b", 2),
		constModule("c", 3),
	}

	results, err := RunAll(context.Background(), modules, config.Default())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, modules[i].Name, res.Module)
		assert.Empty(t, res.Diagnostics.All())
	}
}

func TestRunAllStopsOnFirstStrictFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Strict = true
	modules := []*ast.Module{
		constModule("good", 1),
		{
			Name: "broken",
			Statements: []ast.Decl{
				&ast.VariableDecl{Name: "x", Initializer: unsupportedExpr{}},
			},
		},
	}

	_, err := RunAll(context.Background(), modules, cfg)
	assert.ErrorIs(t, err, ErrStrictAborted)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(config.Default(), nil)
	_, err := p.Run(ctx, constModule("m", 1))
	assert.ErrorIs(t, err, context.Canceled)
}

// unsupportedExpr is an Expr kind lowering has no rule for, used to force an
// error-level diagnostic without needing a real frontend (spec §4.1, "Failure
// modes"). It embeds a nil *ast.AwaitExpr only to pick up ast.Expr's
// unexported marker method, which a type outside package ast cannot declare
// for itself.
type unsupportedExpr struct{ *ast.AwaitExpr }

func (unsupportedExpr) Loc() types.SourceLocation { return types.SourceLocation{} }
func (unsupportedExpr) Kind() ast.NodeKind        { return ast.NodeKind(999) }
