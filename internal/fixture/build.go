package fixture

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"tsgoc/internal/ast"
	"tsgoc/internal/types"
)

// Build lowers a parsed Program into an ast.Module, the same typed-AST shape
// a real frontend would hand to lowering.Lower. Every node's Location field
// is set directly via the promoted selector ast.base.Location exposes
// (ast.base is unexported, but the promoted field itself is exported, so
// assigning it from outside the package after construction is legal Go —
// only a keyed composite literal naming the embedded field is restricted).
func Build(sourceName string, p *Program) *ast.Module {
	mod := &ast.Module{Name: sourceName, Path: sourceName}
	for _, d := range p.Decls {
		mod.Statements = append(mod.Statements, buildDecl(d))
	}
	return mod
}

func loc(pos, end lexer.Position) types.SourceLocation {
	return types.SourceLocation{
		File:        pos.Filename,
		StartLine:   pos.Line,
		StartColumn: pos.Column,
		StartOffset: pos.Offset,
		EndLine:     end.Line,
		EndColumn:   end.Column,
		EndOffset:   end.Offset,
	}
}

func buildDecl(d *Decl) ast.Decl {
	switch {
	case d.VarDecl != nil:
		return buildVarDecl(d.VarDecl)
	case d.FuncDecl != nil:
		return buildFuncDecl(d.FuncDecl)
	default:
		panic("fixture: Decl alternative produced no branch")
	}
}

func buildVarDecl(v *VarDecl) *ast.VariableDecl {
	n := &ast.VariableDecl{
		Name:        v.Name,
		IsConst:     v.Const,
		Type:        buildTypeRef(v.Type),
		Initializer: buildExpr(v.Value),
	}
	n.Location = loc(v.Pos, v.EndPos)
	return n
}

func buildFuncDecl(f *FuncDecl) *ast.FunctionDecl {
	mods := types.ModifierSet{}
	if f.Export {
		mods = types.NewModifierSet(types.Export)
	}
	params := make([]types.Parameter, len(f.Params))
	for i, p := range f.Params {
		t := buildTypeRef(p.Type)
		pt := types.NewPrimitive(types.PrimAny)
		if t != nil {
			pt = *t
		}
		params[i] = types.Parameter{Name: p.Name, Type: pt}
	}
	n := &ast.FunctionDecl{
		Name:       f.Name,
		Modifiers:  mods,
		Params:     params,
		ReturnType: buildTypeRef(f.Return),
		Body:       buildBlock(f.Body),
	}
	n.Location = loc(f.Pos, f.EndPos)
	return n
}

func buildTypeRef(t *TypeRef) *types.Type {
	if t == nil {
		return nil
	}
	var out types.Type
	switch t.Name {
	case "number":
		out = types.NewPrimitive(types.PrimNumber)
	case "string":
		out = types.NewPrimitive(types.PrimString)
	case "boolean":
		out = types.NewPrimitive(types.PrimBoolean)
	case "void":
		out = types.NewPrimitive(types.PrimVoid)
	case "any":
		out = types.NewPrimitive(types.PrimAny)
	default:
		out = types.NewReference(t.Name)
	}
	return &out
}

func buildBlock(b *Block) *ast.BlockStmt {
	if b == nil {
		return nil
	}
	n := &ast.BlockStmt{}
	for _, s := range b.Statements {
		n.Statements = append(n.Statements, buildStmt(s))
	}
	n.Location = loc(b.Pos, b.EndPos)
	return n
}

func buildStmt(s *Stmt) ast.Stmt {
	switch {
	case s.VarDecl != nil:
		return buildVarDecl(s.VarDecl)
	case s.Return != nil:
		n := &ast.ReturnStmt{Value: buildExprOpt(s.Return.Value)}
		n.Location = loc(s.Return.Pos, s.Return.EndPos)
		return n
	case s.If != nil:
		n := &ast.IfStmt{Cond: buildExpr(s.If.Cond), Then: buildBlock(s.If.Then)}
		if s.If.Else != nil {
			n.Else = buildBlock(s.If.Else)
		}
		n.Location = loc(s.If.Pos, s.If.EndPos)
		return n
	case s.While != nil:
		n := &ast.WhileStmt{Cond: buildExpr(s.While.Cond), Body: buildBlock(s.While.Body)}
		n.Location = loc(s.While.Pos, s.While.EndPos)
		return n
	case s.Throw != nil:
		n := &ast.ThrowStmt{Value: buildExpr(s.Throw.Value)}
		n.Location = loc(s.Throw.Pos, s.Throw.EndPos)
		return n
	case s.Block != nil:
		return buildBlock(s.Block)
	case s.ExprStmt != nil:
		n := &ast.ExprStmt{Expr: buildExpr(s.ExprStmt.Expr)}
		n.Location = loc(s.ExprStmt.Pos, s.ExprStmt.EndPos)
		return n
	default:
		panic("fixture: Stmt alternative produced no branch")
	}
}

func buildExprOpt(e *Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return buildExpr(e)
}

func buildExpr(e *Expr) ast.Expr {
	left := buildBinary(e.Left)
	if e.Assign == nil {
		return left
	}
	n := &ast.AssignExpr{Op: e.Assign.Op, Left: left, Right: buildExpr(e.Assign.Value)}
	n.Location = loc(e.Pos, e.EndPos)
	return n
}

func buildBinary(b *BinaryExpr) ast.Expr {
	left := buildUnary(b.Left)
	for _, op := range b.Ops {
		n := &ast.BinaryExpr{Op: op.Operator, Left: left, Right: buildUnary(op.Right)}
		n.Location = loc(b.Pos, op.EndPos)
		left = n
	}
	return left
}

func buildUnary(u *UnaryExpr) ast.Expr {
	val := buildPostfix(u.Value)
	if u.Operator == "" {
		return val
	}
	n := &ast.UnaryExpr{Op: u.Operator, Arg: val, Prefix: true}
	n.Location = loc(u.Pos, u.EndPos)
	return n
}

func buildPostfix(p *PostfixExpr) ast.Expr {
	expr := buildPrimary(p.Primary)
	for _, suffix := range p.Suffix {
		switch {
		case suffix.Member != "":
			n := &ast.MemberExpr{Object: expr, Property: suffix.Member}
			n.Location = loc(p.Pos, suffix.EndPos)
			expr = n
		case suffix.Call != nil:
			args := make([]ast.Expr, len(suffix.Call.Args))
			for i, a := range suffix.Call.Args {
				args[i] = buildExpr(a)
			}
			n := &ast.CallExpr{Callee: expr, Args: args}
			n.Location = loc(p.Pos, suffix.EndPos)
			expr = n
		}
	}
	return expr
}

func buildPrimary(p *PrimaryExpr) ast.Expr {
	end := p.EndPos
	switch {
	case p.Number != nil:
		var v float64
		fmt.Sscanf(*p.Number, "%g", &v)
		n := &ast.LiteralExpr{Value: v}
		n.Location = loc(p.Pos, end)
		return n
	case p.String != nil:
		n := &ast.LiteralExpr{Value: unquote(*p.String)}
		n.Location = loc(p.Pos, end)
		return n
	case p.True:
		n := &ast.LiteralExpr{Value: true}
		n.Location = loc(p.Pos, end)
		return n
	case p.False:
		n := &ast.LiteralExpr{Value: false}
		n.Location = loc(p.Pos, end)
		return n
	case p.Null:
		n := &ast.LiteralExpr{Value: nil}
		n.Location = loc(p.Pos, end)
		return n
	case p.Ident != nil:
		n := &ast.IdentExpr{Name: *p.Ident}
		n.Location = loc(p.Pos, end)
		return n
	case p.Paren != nil:
		return buildExpr(p.Paren)
	default:
		panic("fixture: PrimaryExpr alternative produced no branch")
	}
}

func unquote(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}
