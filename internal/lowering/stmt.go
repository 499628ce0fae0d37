package lowering

import (
	"tsgoc/internal/ast"
	"tsgoc/internal/ir"
)

func (l *Lowerer) lowerBlock(b *ast.BlockStmt) *ir.Block {
	stmts := make([]ir.Stmt, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, l.lowerStmt(s))
	}
	return ir.NewBlock(b.Loc(), stmts)
}

func (l *Lowerer) lowerStmt(s ast.Stmt) ir.Stmt {
	switch n := s.(type) {
	case *ast.VariableDecl:
		return l.lowerVariableDecl(n)
	case *ast.BlockStmt:
		return l.lowerBlock(n)
	case *ast.ExprStmt:
		return ir.NewExpressionStmt(n.Loc(), l.lowerExpr(n.Expr))
	case *ast.ReturnStmt:
		return ir.NewReturn(n.Loc(), l.lowerExprOpt(n.Value))
	case *ast.IfStmt:
		return ir.NewIf(n.Loc(), l.lowerExpr(n.Cond), l.lowerStmt(n.Then), l.lowerStmtOpt(n.Else))
	case *ast.WhileStmt:
		return ir.NewWhile(n.Loc(), l.lowerExpr(n.Cond), l.lowerStmt(n.Body))
	case *ast.ForStmt:
		return ir.NewFor(n.Loc(), l.lowerStmtOpt(n.Init), l.lowerExprOpt(n.Cond), l.lowerStmtOpt(n.Post), l.lowerStmt(n.Body))
	case *ast.ForOfStmt:
		return ir.NewForOf(n.Loc(), n.VarName, n.IsConst, l.lowerExpr(n.Iterable), l.lowerStmt(n.Body))
	case *ast.TryStmt:
		return l.lowerTry(n)
	case *ast.ThrowStmt:
		return ir.NewThrow(n.Loc(), l.lowerExpr(n.Value))
	case *ast.SwitchStmt:
		return l.lowerSwitch(n)
	default:
		return ir.NewExpressionStmt(s.Loc(), l.placeholder(s.Loc(), unsupportedStmtDiagnostic(s)))
	}
}

func (l *Lowerer) lowerStmtOpt(s ast.Stmt) ir.Stmt {
	if s == nil {
		return nil
	}
	return l.lowerStmt(s)
}

// lowerTry preserves try/catch/finally verbatim; rewriting to the target's
// defer/recover or return-error shape happens in the emitter under the
// configured errorHandling strategy (spec §4.1: "no rewriting here").
func (l *Lowerer) lowerTry(t *ast.TryStmt) *ir.Try {
	var handler *ir.Catch
	if t.Handler != nil {
		handler = ir.NewCatch(t.Handler.Loc(), t.Handler.Param, l.lowerBlock(t.Handler.Body))
	}
	var finalizer *ir.Block
	if t.Finalizer != nil {
		finalizer = l.lowerBlock(t.Finalizer)
	}
	return ir.NewTry(t.Loc(), l.lowerBlock(t.Block), handler, finalizer)
}

func (l *Lowerer) lowerSwitch(s *ast.SwitchStmt) *ir.Switch {
	cases := make([]*ir.Case, 0, len(s.Cases))
	for _, c := range s.Cases {
		stmts := make([]ir.Stmt, 0, len(c.Statements))
		for _, cs := range c.Statements {
			stmts = append(stmts, l.lowerStmt(cs))
		}
		cases = append(cases, ir.NewCase(c.Loc(), l.lowerExprOpt(c.Test), stmts))
	}
	return ir.NewSwitch(s.Loc(), l.lowerExpr(s.Discriminant), cases)
}
