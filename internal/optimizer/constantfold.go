package optimizer

import "tsgoc/internal/ir"

// FoldConstants is the second mandatory L1 pass (spec §4.2). It rewrites a
// binary expression between two literal operands into the single literal
// their operator would produce, so later passes (and the emitter) see a
// constant instead of an expression tree. Only the handful of operators
// with an unambiguous, side-effect-free literal result are folded; anything
// else (comparisons against unknown operand shapes, string concatenation
// across mixed types) is left for the emitter to render as written.
func FoldConstants(m *ir.Module) *ir.Module {
	out := *m
	out.Statements = make([]ir.Decl, len(m.Statements))
	for i, d := range m.Statements {
		out.Statements[i] = foldDecl(d)
	}
	return &out
}

func foldDecl(d ir.Decl) ir.Decl {
	switch n := d.(type) {
	case *ir.VariableDecl:
		if n.Initializer != nil {
			folded := *n
			folded.Initializer = foldExpr(n.Initializer)
			return &folded
		}
	case *ir.FunctionDecl:
		if n.Body != nil {
			folded := *n
			folded.Body = foldBlock(n.Body)
			return &folded
		}
	case *ir.EnumDecl:
		folded := *n
		folded.Members = make([]*ir.EnumMember, len(n.Members))
		for i, m := range n.Members {
			member := *m
			member.Value = foldExpr(m.Value)
			folded.Members[i] = &member
		}
		return &folded
	}
	return d
}

func foldBlock(b *ir.Block) *ir.Block {
	out := *b
	out.Statements = make([]ir.Stmt, len(b.Statements))
	for i, s := range b.Statements {
		out.Statements[i] = foldStmt(s)
	}
	return &out
}

func foldStmt(s ir.Stmt) ir.Stmt {
	switch n := s.(type) {
	case *ir.ExpressionStmt:
		folded := *n
		folded.Expr = foldExpr(n.Expr)
		return &folded
	case *ir.Return:
		folded := *n
		folded.Value = foldExpr(n.Value)
		return &folded
	default:
		return s
	}
}

func foldExpr(e ir.Expr) ir.Expr {
	bin, ok := e.(*ir.Binary)
	if !ok {
		return e
	}

	left, leftOK := foldExpr(bin.Left).(*ir.Literal)
	right, rightOK := foldExpr(bin.Right).(*ir.Literal)
	if !leftOK || !rightOK {
		return e
	}

	if v, ok := foldNumeric(bin.Op, left.Value, right.Value); ok {
		folded := *left
		folded.Value = v
		return &folded
	}
	return e
}

func foldNumeric(op string, l, r any) (float64, bool) {
	lf, lok := l.(float64)
	rf, rok := r.(float64)
	if !lok || !rok {
		return 0, false
	}
	switch op {
	case "+":
		return lf + rf, true
	case "-":
		return lf - rf, true
	case "*":
		return lf * rf, true
	case "/":
		if rf == 0 {
			return 0, false
		}
		return lf / rf, true
	default:
		return 0, false
	}
}
