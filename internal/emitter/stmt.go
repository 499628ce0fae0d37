package emitter

import (
	"fmt"
	"strings"

	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

// emitStmts emits each statement of a block body in sequence.
func (e *Emitter) emitStmts(stmts []ir.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *Emitter) emitStmt(s ir.Stmt) {
	switch n := s.(type) {
	case *ir.VariableDecl:
		e.emitVariableDecl(n)
	case *ir.ExpressionStmt:
		e.line("%s", e.emitExpr(n.Expr))
	case *ir.Return:
		e.emitReturn(n)
	case *ir.If:
		e.emitIf(n)
	case *ir.While:
		e.line("for %s {", e.emitExpr(n.Cond))
		e.indent++
		e.emitStmt(n.Body)
		e.indent--
		e.line("}")
	case *ir.For:
		e.emitFor(n)
	case *ir.ForOf:
		e.emitForOf(n)
	case *ir.Block:
		e.line("{")
		e.indent++
		e.emitStmts(n.Statements)
		e.indent--
		e.line("}")
	case *ir.Try:
		e.emitTry(n)
	case *ir.Throw:
		e.emitThrow(n)
	case *ir.Switch:
		e.emitSwitch(n)
	default:
		e.line("// unsupported statement")
	}
}

// emitReturn implements the return-statement rewrites of §4.5: a trailing
// prefix ++/-- operand is split into its own statement, since Go has no
// prefix-increment expression, and a `.includes(x)` call on the returned
// value is expanded before the surrounding rewrite is applied.
func (e *Emitter) emitReturn(n *ir.Return) {
	trailer := ""
	if e.result.hasError {
		trailer = ", nil"
	}

	if n.Value == nil {
		if e.result.hasError {
			e.line("return nil")
			return
		}
		e.line("return")
		return
	}
	if u, ok := n.Value.(*ir.Unary); ok && u.Prefix && (u.Op == "++" || u.Op == "--") {
		target := e.emitExpr(u.Arg)
		e.line("%s%s", target, u.Op)
		e.line("return %s%s", target, trailer)
		return
	}
	if call, ok := n.Value.(*ir.Call); ok {
		if member, ok := call.Callee.(*ir.Member); ok && !member.Computed && member.Property == "includes" && len(call.Args) == 1 {
			arr := e.emitExpr(member.Object)
			needle := e.emitExpr(call.Args[0])
			e.line("for _, elem := range %s {", arr)
			e.indent++
			e.line("if elem == %s {", needle)
			e.indent++
			e.line("return true%s", trailer)
			e.indent--
			e.line("}")
			e.indent--
			e.line("}")
			e.line("return false%s", trailer)
			return
		}
	}
	e.line("return %s%s", e.emitExpr(n.Value), trailer)
}

// emitIf implements the if-on-bare-identifier rewrite: `if (x)` on a plain
// identifier becomes `if x != nil` whenever x's declared type makes a bare
// truthiness test meaningless in Go (no implicit nil/zero-is-falsy
// conversion), per §4.5.
func (e *Emitter) emitIf(n *ir.If) {
	cond := e.renderCondition(n.Cond)
	e.line("if %s {", cond)
	e.indent++
	e.emitStmt(n.Then)
	e.indent--
	if n.Else != nil {
		e.line("} else {")
		e.indent++
		e.emitStmt(n.Else)
		e.indent--
	}
	e.line("}")
}

// renderCondition implements the bare-identifier truthiness rewrite of
// §4.5: the identifier's declared type decides the rewrite, not a guess from
// AST shape alone. A boolean-typed identifier is left as-is, a
// pointer-represented one (per the active nullability strategy) becomes
// `x != nil`, and anything else falls back to a runtime zero-value check
// since Go has no implicit truthiness conversion.
func (e *Emitter) renderCondition(cond ir.Expr) string {
	ident, ok := cond.(*ir.Identifier)
	if !ok || ident.InferredType == nil || ident.InferredType.IsUnknown() {
		return e.emitExpr(cond)
	}
	t := *ident.InferredType
	if t.Kind == types.KindPrimitive && t.Primitive == types.PrimBoolean {
		return ident.Name
	}
	if e.cfg.NullabilityStrategy == config.NullabilityPointer && t.Kind != types.KindPrimitive {
		return ident.Name + " != nil"
	}
	e.requireImport("reflect")
	return fmt.Sprintf("!reflect.ValueOf(%s).IsZero()", ident.Name)
}

func (e *Emitter) emitFor(n *ir.For) {
	init, cond, post := "", "", ""
	if n.Init != nil {
		init = strings.TrimSuffix(e.renderInlineStmt(n.Init), ";")
	}
	if n.Cond != nil {
		cond = e.emitExpr(n.Cond)
	}
	if n.Post != nil {
		post = strings.TrimSuffix(e.renderInlineStmt(n.Post), ";")
	}
	e.line("for %s; %s; %s {", init, cond, post)
	e.indent++
	e.emitStmt(n.Body)
	e.indent--
	e.line("}")
}

// renderInlineStmt renders a for-loop init/post clause inline rather than as
// an indented output line.
func (e *Emitter) renderInlineStmt(s ir.Stmt) string {
	switch n := s.(type) {
	case *ir.VariableDecl:
		if n.Initializer != nil {
			return n.Name + " := " + e.emitExpr(n.Initializer) + ";"
		}
		return n.Name + ";"
	case *ir.ExpressionStmt:
		return e.emitExpr(n.Expr) + ";"
	default:
		return ";"
	}
}

func (e *Emitter) emitForOf(n *ir.ForOf) {
	e.line("for _, %s := range %s {", n.VarName, e.emitExpr(n.Iterable))
	e.indent++
	e.emitStmt(n.Body)
	e.indent--
	e.line("}")
}

// emitTry implements the two try/catch lowering strategies of §4.5: under
// "panic", the catch body becomes a deferred recover and the finally body a
// deferred func registered before it, so it runs after the handler; under
// "return", the
// guarded block is wrapped in an immediately-invoked closure returning
// error so that a throw nested inside an if/for/switch still reaches the
// catch handler instead of escaping into the enclosing function's result.
func (e *Emitter) emitTry(n *ir.Try) {
	if e.cfg.ErrorHandling == config.ErrorHandlingPanic {
		if n.Finalizer != nil {
			e.line("defer func() {")
			e.indent++
			e.emitStmts(n.Finalizer.Statements)
			e.indent--
			e.line("}()")
		}
		if n.Handler != nil {
			e.line("defer func() {")
			e.indent++
			e.line("if r := recover(); r != nil {")
			e.indent++
			e.line("%s := r", n.Handler.Param)
			e.emitStmts(n.Handler.Body.Statements)
			e.indent--
			e.line("}")
			e.indent--
			e.line("}()")
		}
		e.line("{")
		e.indent++
		e.emitStmts(n.Block.Statements)
		e.indent--
		e.line("}")
		return
	}

	// return-based strategy: the guarded block is fully lowered by wrapping
	// it in an immediately-invoked closure returning error, so a throw deep
	// inside an if/for/switch still reaches the catch handler rather than
	// silently propagating into the enclosing function's own result.
	e.line("err := func() error {")
	e.indent++
	savedResult := e.result
	e.result = resultShape{hasError: true}
	e.emitStmts(n.Block.Statements)
	e.line("return nil")
	e.result = savedResult
	e.indent--
	e.line("}()")

	if n.Handler != nil {
		e.line("if err != nil {")
		e.indent++
		e.line("%s := err", n.Handler.Param)
		e.emitStmts(n.Handler.Body.Statements)
		e.indent--
		e.line("}")
	} else {
		e.line("_ = err")
	}
	if n.Finalizer != nil {
		e.emitStmts(n.Finalizer.Statements)
	}
}

func (e *Emitter) emitThrow(n *ir.Throw) {
	if e.cfg.ErrorHandling == config.ErrorHandlingPanic {
		e.line("panic(%s)", e.emitExpr(n.Value))
		return
	}
	e.requireImport("errors")
	if e.result.hasValue {
		e.line("return nil, errors.New(%s)", e.renderErrorMessage(n.Value))
	} else {
		e.line("return errors.New(%s)", e.renderErrorMessage(n.Value))
	}
}

func (e *Emitter) renderErrorMessage(value ir.Expr) string {
	if lit, ok := value.(*ir.Literal); ok {
		if s, ok := lit.Value.(string); ok {
			return "\"" + s + "\""
		}
	}
	e.requireImport("fmt")
	return "fmt.Sprintf(\"%v\", " + e.emitExpr(value) + ")"
}

func (e *Emitter) emitSwitch(n *ir.Switch) {
	e.line("switch %s {", e.emitExpr(n.Discriminant))
	for _, c := range n.Cases {
		if c.Test == nil {
			e.line("default:")
		} else {
			e.line("case %s:", e.emitExpr(c.Test))
		}
		e.indent++
		e.emitStmts(c.Statements)
		e.indent--
	}
	e.line("}")
}
