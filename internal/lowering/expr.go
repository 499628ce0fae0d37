package lowering

import (
	"tsgoc/internal/ast"
	"tsgoc/internal/ir"
)

func (l *Lowerer) lowerExprOpt(e ast.Expr) ir.Expr {
	if e == nil {
		return nil
	}
	return l.lowerExpr(e)
}

func (l *Lowerer) lowerExprList(in []ast.Expr) []ir.Expr {
	if len(in) == 0 {
		return nil
	}
	out := make([]ir.Expr, 0, len(in))
	for _, e := range in {
		out = append(out, l.lowerExpr(e))
	}
	return out
}

func (l *Lowerer) lowerExpr(e ast.Expr) ir.Expr {
	switch n := e.(type) {
	case *ast.IdentExpr:
		return ir.NewIdentifier(n.Loc(), n.Name, n.InferredType)
	case *ast.LiteralExpr:
		return ir.NewLiteral(n.Loc(), n.Value, n.InferredType)
	case *ast.ArrayExpr:
		return ir.NewArray(n.Loc(), l.lowerExprList(n.Elements), n.InferredType)
	case *ast.ObjectExpr:
		return l.lowerObject(n)
	case *ast.FunctionExpr:
		var body *ir.Block
		if n.Body != nil {
			body = l.lowerBlock(n.Body)
		}
		return ir.NewFunction(n.Loc(), n.Name, n.Params, n.ReturnType, n.IsAsync, body)
	case *ast.ArrowExpr:
		var body *ir.Block
		if n.Body != nil {
			body = l.lowerBlock(n.Body)
		}
		return ir.NewArrow(n.Loc(), n.Params, n.ReturnType, n.IsAsync, body, l.lowerExprOpt(n.Expr))
	case *ast.CallExpr:
		return ir.NewCall(n.Loc(), l.lowerExpr(n.Callee), l.lowerExprList(n.Args), n.TypeArgs, n.Optional)
	case *ast.MemberExpr:
		return ir.NewMember(n.Loc(), l.lowerExpr(n.Object), n.Property, n.Computed, l.lowerExprOpt(n.ComputedExpr), n.Optional)
	case *ast.NewExpr:
		return ir.NewNew(n.Loc(), l.lowerExpr(n.Callee), l.lowerExprList(n.Args))
	case *ast.SuperExpr:
		return ir.NewSuper(n.Loc(), l.lowerExprList(n.Args), n.IsCallForm)
	case *ast.BinaryExpr:
		return ir.NewBinary(n.Loc(), n.Op, l.lowerExpr(n.Left), l.lowerExpr(n.Right))
	case *ast.UnaryExpr:
		return ir.NewUnary(n.Loc(), n.Op, l.lowerExpr(n.Arg), n.Prefix)
	case *ast.AssignExpr:
		return ir.NewAssignment(n.Loc(), n.Op, l.lowerExpr(n.Left), l.lowerExpr(n.Right))
	case *ast.ConditionalExpr:
		return ir.NewConditional(n.Loc(), l.lowerExpr(n.Cond), l.lowerExpr(n.Then), l.lowerExpr(n.Else))
	case *ast.AwaitExpr:
		return ir.NewAwait(n.Loc(), l.lowerExpr(n.Value))
	case *ast.SpreadExpr:
		return ir.NewSpread(n.Loc(), l.lowerExpr(n.Value))
	case *ast.TemplateLiteralExpr:
		return ir.NewTemplateLiteral(n.Loc(), n.Quasis, l.lowerExprList(n.Exprs))
	default:
		return l.placeholder(e.Loc(), unsupportedExprDiagnostic(e))
	}
}

func (l *Lowerer) lowerObject(n *ast.ObjectExpr) *ir.Object {
	props := make([]*ir.ObjectProperty, 0, len(n.Properties))
	for _, p := range n.Properties {
		props = append(props, ir.NewObjectProperty(p.Loc(), p.Key, l.lowerExprOpt(p.Value), p.Computed, p.Spread))
	}
	return ir.NewObject(n.Loc(), props, n.InferredType)
}
