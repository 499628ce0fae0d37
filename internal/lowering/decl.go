package lowering

import (
	"tsgoc/internal/ast"
	"tsgoc/internal/errors"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

func (l *Lowerer) lowerDecl(d ast.Decl) ir.Decl {
	switch n := d.(type) {
	case *ast.VariableDecl:
		return l.lowerVariableDecl(n)
	case *ast.FunctionDecl:
		return l.lowerFunctionDecl(n)
	case *ast.ClassDecl:
		return l.lowerClassDecl(n)
	case *ast.InterfaceDecl:
		return l.lowerInterfaceDecl(n)
	case *ast.TypeAliasDecl:
		return l.lowerTypeAliasDecl(n)
	case *ast.EnumDecl:
		return l.lowerEnumDecl(n)
	case *ast.ExprStmt:
		return ir.NewExpressionStmt(n.Loc(), l.lowerExpr(n.Expr))
	default:
		l.bag.Add(errors.UnparseableInitializer("<unknown declaration>", d.Loc()))
		return ir.NewVariableDecl(d.Loc(), "_unknown", types.ModifierSet{}, false, nil, nil)
	}
}

// lowerVariableDecl implements "Variable statements" (spec §4.1): the
// frontend has already split multi-declarator statements into one
// VariableDecl per name, so lowering is a direct carry-over.
func (l *Lowerer) lowerVariableDecl(v *ast.VariableDecl) *ir.VariableDecl {
	return ir.NewVariableDecl(v.Loc(), v.Name, v.Modifiers, v.IsConst, v.Type, l.lowerExprOpt(v.Initializer))
}

// lowerFunctionDecl implements "Functions": parameters carry straight over,
// the async modifier is captured on the node, and default-value expressions
// are preserved for the emitter to turn into zero-value guards.
func (l *Lowerer) lowerFunctionDecl(f *ast.FunctionDecl) *ir.FunctionDecl {
	defaults := l.lowerDefaults(f.Defaults)
	var body *ir.Block
	if f.Body != nil {
		body = l.lowerBlock(f.Body)
	}
	return ir.NewFunctionDecl(f.Loc(), f.Name, f.Modifiers, f.Params, defaults, f.ReturnType, f.TypeParams, f.Modifiers.Has(types.Async), body)
}

func (l *Lowerer) lowerDefaults(in map[string]ast.Expr) map[string]ir.Expr {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]ir.Expr, len(in))
	for name, e := range in {
		out[name] = l.lowerExpr(e)
	}
	return out
}

// lowerClassDecl implements "Classes" (spec §4.1): instance properties
// (including constructor-parameter-properties, tagged IsConstructorParam),
// the constructor's super()/this.x= scan, static members, and the
// get_X/set_X accessor rename.
func (l *Lowerer) lowerClassDecl(c *ast.ClassDecl) *ir.ClassDecl {
	members := make([]ir.ClassMember, 0, len(c.Members)+4)

	for _, m := range c.Members {
		switch mm := m.(type) {
		case *ast.PropertyMember:
			members = append(members, ir.NewProperty(mm.Loc(), mm.Name, mm.Type, l.lowerExprOpt(mm.Initializer), mm.Modifiers, false))
		case *ast.MethodMember:
			members = append(members, l.lowerMethodMember(mm))

			// Constructor-parameter-properties: a constructor parameter
			// carrying public/private/protected/readonly also declares an
			// instance field of the same name and type.
			if mm.Name == "constructor" {
				for _, p := range mm.Params {
					if isConstructorParamProperty(p) {
						members = append(members, ir.NewProperty(mm.Loc(), p.Name, &p.Type, nil, p.Modifiers, true))
					}
				}
			}
		}
	}

	return ir.NewClassDecl(c.Loc(), c.Name, c.Modifiers, c.TypeParams, c.Extends, c.Implements, members)
}

func isConstructorParamProperty(p types.Parameter) bool {
	if p.Modifiers == nil {
		return false
	}
	return p.Modifiers.Has(types.Public) || p.Modifiers.Has(types.Private) ||
		p.Modifiers.Has(types.Protected) || p.Modifiers.Has(types.Readonly)
}

func (l *Lowerer) lowerMethodMember(m *ast.MethodMember) *ir.Method {
	name := m.Name
	switch m.Accessor {
	case ast.AccessorGet:
		name = "get_" + name
	case ast.AccessorSet:
		name = "set_" + name
	}

	defaults := l.lowerDefaults(m.Defaults)

	var body *ir.Block
	var ctor *ir.ConstructorInfo
	if m.Body != nil {
		body = l.lowerBlock(m.Body)
		if m.Name == "constructor" {
			ctor = l.scanConstructorBody(m.Body)
		}
	}

	return ir.NewMethod(m.Loc(), name, m.Params, defaults, m.ReturnType, m.TypeParams, body, m.Modifiers, m.Modifiers.Has(types.Async), ctor)
}

// scanConstructorBody finds the top-level `super(...)` call and `this.x =
// expr` assignments in a constructor body, so the emitter can fold them into
// the synthesized factory instead of emitting them as body statements (spec
// §4.1, "Constructor").
func (l *Lowerer) scanConstructorBody(body *ast.BlockStmt) *ir.ConstructorInfo {
	info := &ir.ConstructorInfo{}
	for _, stmt := range body.Statements {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		switch e := es.Expr.(type) {
		case *ast.SuperExpr:
			if e.IsCallForm {
				info.Super = &ir.SuperCall{Args: l.lowerExprList(e.Args)}
			}
		case *ast.AssignExpr:
			if e.Op != "=" {
				continue
			}
			member, ok := e.Left.(*ast.MemberExpr)
			if !ok || member.Computed {
				continue
			}
			obj, ok := member.Object.(*ast.IdentExpr)
			if !ok || obj.Name != "this" {
				continue
			}
			info.ThisAssignments = append(info.ThisAssignments, ir.ThisAssignment{
				Field: member.Property,
				Value: l.lowerExpr(e.Right),
			})
		}
	}
	return info
}

// lowerInterfaceDecl implements "Interfaces": method signatures are already
// captured as PropertySignature entries with a Function type by the
// frontend, so turning a lone index signature into an `[index]` property is
// the only rewrite left to lowering.
func (l *Lowerer) lowerInterfaceDecl(i *ast.InterfaceDecl) *ir.InterfaceDecl {
	props := i.Properties
	idx := i.IndexSignature
	if idx != nil && len(props) == 0 {
		props = append(append([]types.PropertySignature{}, props...), types.PropertySignature{
			Name: "[index]",
			Type: types.NewFunction([]types.Parameter{{Name: "key", Type: idx.KeyType}}, idx.ValueType, nil, false),
		})
	}
	return ir.NewInterfaceDecl(i.Loc(), i.Name, i.Modifiers, i.TypeParams, i.Extends, props, idx)
}

// lowerTypeAliasDecl preserves the alias body verbatim; the type mapper
// decides its target representation.
func (l *Lowerer) lowerTypeAliasDecl(t *ast.TypeAliasDecl) *ir.TypeAliasDecl {
	return ir.NewTypeAliasDecl(t.Loc(), t.Name, t.Modifiers, t.TypeParams, t.Body)
}

// lowerEnumDecl detects heterogeneity (any member initialized with a string
// literal) and keeps every member initializer as an expression for the
// optimizer's constant-folding pass.
func (l *Lowerer) lowerEnumDecl(e *ast.EnumDecl) *ir.EnumDecl {
	members := make([]*ir.EnumMember, 0, len(e.Members))
	heterogeneous := false
	for _, m := range e.Members {
		if lit, ok := m.Value.(*ast.LiteralExpr); ok {
			if _, isString := lit.Value.(string); isString {
				heterogeneous = true
			}
		}
		members = append(members, ir.NewEnumMember(m.Loc(), m.Name, l.lowerExprOpt(m.Value)))
	}
	return ir.NewEnumDecl(e.Loc(), e.Name, e.Modifiers, members, heterogeneous)
}
