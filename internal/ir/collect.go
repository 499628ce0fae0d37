package ir

import "tsgoc/internal/types"

// UsedNames walks every node reachable from decl (including nested
// statements, expressions, and type references) and returns the set of
// identifier and type-reference names it depends on. internal/optimizer's
// dead-code elimination pass uses this to compute U, the set of referenced
// symbols (spec §4.2).
func UsedNames(n Node) map[string]bool {
	c := &identCollector{used: map[string]bool{}}
	n.Accept(c)
	return c.used
}

// identCollector is a full, explicit Visitor implementation: every NodeKind
// has a case here, recursing into its children. This is the concrete witness
// for invariant 2 (visitor exhaustiveness) — it would fail to compile against
// the Visitor interface if a node kind were added without updating it.
type identCollector struct {
	used map[string]bool
}

func (c *identCollector) addType(t *types.Type) {
	if t == nil {
		return
	}
	c.walkType(*t)
}

func (c *identCollector) walkType(t types.Type) {
	switch t.Kind {
	case types.KindArray:
		if t.Elem != nil {
			c.walkType(*t.Elem)
		}
	case types.KindTuple:
		for _, e := range t.Elems {
			c.walkType(e)
		}
	case types.KindObject:
		for _, p := range t.Properties {
			c.walkType(p.Type)
		}
		if t.IndexSignature != nil {
			c.walkType(t.IndexSignature.KeyType)
			c.walkType(t.IndexSignature.ValueType)
		}
	case types.KindFunction:
		for _, p := range t.Params {
			c.walkType(p.Type)
		}
		if t.Return != nil {
			c.walkType(*t.Return)
		}
	case types.KindUnion, types.KindIntersection:
		for _, m := range t.Members {
			c.walkType(m)
		}
	case types.KindReference:
		c.used[t.RefName] = true
		for _, a := range t.TypeArgs {
			c.walkType(a)
		}
	}
}

func (c *identCollector) stmt(s Stmt) {
	if s == nil {
		return
	}
	s.Accept(c)
}

func (c *identCollector) expr(e Expr) {
	if e == nil {
		return
	}
	e.Accept(c)
}

func (c *identCollector) VisitModule(m *Module) {
	for _, im := range m.Imports {
		im.Accept(c)
	}
	for _, d := range m.Statements {
		d.Accept(c)
	}
	for _, ex := range m.Exports {
		ex.Accept(c)
	}
}

func (c *identCollector) VisitImport(i *Import) {}

func (c *identCollector) VisitExport(e *Export) {
	if e.Decl != nil {
		e.Decl.Accept(c)
	}
}

func (c *identCollector) VisitVariableDecl(v *VariableDecl) {
	c.addType(v.Type)
	c.expr(v.Initializer)
}

func (c *identCollector) VisitFunctionDecl(f *FunctionDecl) {
	for _, p := range f.Params {
		c.walkType(p.Type)
	}
	for _, d := range f.Defaults {
		c.expr(d)
	}
	c.addType(f.ReturnType)
	if f.Body != nil {
		f.Body.Accept(c)
	}
}

func (c *identCollector) VisitClassDecl(cl *ClassDecl) {
	if cl.Extends != nil {
		c.walkType(*cl.Extends)
	}
	for _, im := range cl.Implements {
		c.walkType(im)
	}
	for _, m := range cl.Members {
		m.Accept(c)
	}
}

func (c *identCollector) VisitInterfaceDecl(i *InterfaceDecl) {
	for _, e := range i.Extends {
		c.walkType(e)
	}
	for _, p := range i.Properties {
		c.walkType(p.Type)
	}
	if i.IndexSignature != nil {
		c.walkType(i.IndexSignature.KeyType)
		c.walkType(i.IndexSignature.ValueType)
	}
}

func (c *identCollector) VisitTypeAliasDecl(t *TypeAliasDecl) {
	c.walkType(t.Body)
}

func (c *identCollector) VisitEnumDecl(e *EnumDecl) {
	for _, m := range e.Members {
		m.Accept(c)
	}
}

func (c *identCollector) VisitProperty(p *Property) {
	c.addType(p.Type)
	c.expr(p.Initializer)
}

func (c *identCollector) VisitMethod(m *Method) {
	for _, p := range m.Params {
		c.walkType(p.Type)
	}
	for _, d := range m.Defaults {
		c.expr(d)
	}
	c.addType(m.ReturnType)
	if m.Constructor != nil {
		if m.Constructor.Super != nil {
			for _, a := range m.Constructor.Super.Args {
				c.expr(a)
			}
		}
		for _, ta := range m.Constructor.ThisAssignments {
			c.expr(ta.Value)
		}
	}
	if m.Body != nil {
		m.Body.Accept(c)
	}
}

func (c *identCollector) VisitEnumMember(e *EnumMember) {
	c.expr(e.Value)
}

func (c *identCollector) VisitBlock(b *Block) {
	for _, s := range b.Statements {
		c.stmt(s)
	}
}

func (c *identCollector) VisitExpressionStmt(e *ExpressionStmt) { c.expr(e.Expr) }

func (c *identCollector) VisitReturn(r *Return) { c.expr(r.Value) }

func (c *identCollector) VisitIf(i *If) {
	c.expr(i.Cond)
	c.stmt(i.Then)
	c.stmt(i.Else)
}

func (c *identCollector) VisitWhile(w *While) {
	c.expr(w.Cond)
	c.stmt(w.Body)
}

func (c *identCollector) VisitFor(f *For) {
	c.stmt(f.Init)
	c.expr(f.Cond)
	c.stmt(f.Post)
	c.stmt(f.Body)
}

func (c *identCollector) VisitForOf(f *ForOf) {
	c.expr(f.Iterable)
	c.stmt(f.Body)
}

func (c *identCollector) VisitTry(t *Try) {
	if t.Block != nil {
		t.Block.Accept(c)
	}
	if t.Handler != nil {
		t.Handler.Accept(c)
	}
	if t.Finalizer != nil {
		t.Finalizer.Accept(c)
	}
}

func (c *identCollector) VisitCatch(ca *Catch) {
	if ca.Body != nil {
		ca.Body.Accept(c)
	}
}

func (c *identCollector) VisitThrow(t *Throw) { c.expr(t.Value) }

func (c *identCollector) VisitSwitch(s *Switch) {
	c.expr(s.Discriminant)
	for _, cs := range s.Cases {
		cs.Accept(c)
	}
}

func (c *identCollector) VisitCase(cs *Case) {
	c.expr(cs.Test)
	for _, s := range cs.Statements {
		c.stmt(s)
	}
}

func (c *identCollector) VisitIdentifier(i *Identifier) {
	c.used[i.Name] = true
	c.addType(i.InferredType)
}

func (c *identCollector) VisitLiteral(l *Literal) { c.addType(l.InferredType) }

func (c *identCollector) VisitArray(a *Array) {
	for _, e := range a.Elements {
		c.expr(e)
	}
}

func (c *identCollector) VisitObject(o *Object) {
	for _, p := range o.Properties {
		p.Accept(c)
	}
}

func (c *identCollector) VisitObjectProperty(o *ObjectProperty) { c.expr(o.Value) }

func (c *identCollector) VisitFunction(f *Function) {
	for _, p := range f.Params {
		c.walkType(p.Type)
	}
	c.addType(f.ReturnType)
	if f.Body != nil {
		f.Body.Accept(c)
	}
}

func (c *identCollector) VisitArrow(a *Arrow) {
	for _, p := range a.Params {
		c.walkType(p.Type)
	}
	c.addType(a.ReturnType)
	if a.Body != nil {
		a.Body.Accept(c)
	}
	c.expr(a.Expr)
}

func (c *identCollector) VisitCall(call *Call) {
	c.expr(call.Callee)
	for _, a := range call.Args {
		c.expr(a)
	}
	for _, t := range call.TypeArgs {
		c.walkType(t)
	}
}

func (c *identCollector) VisitMember(m *Member) {
	c.expr(m.Object)
	c.expr(m.ComputedExpr)
}

func (c *identCollector) VisitNew(n *New) {
	c.expr(n.Callee)
	for _, a := range n.Args {
		c.expr(a)
	}
}

func (c *identCollector) VisitSuper(s *Super) {
	for _, a := range s.Args {
		c.expr(a)
	}
}

func (c *identCollector) VisitBinary(b *Binary) {
	c.expr(b.Left)
	c.expr(b.Right)
}

func (c *identCollector) VisitUnary(u *Unary) { c.expr(u.Arg) }

func (c *identCollector) VisitAssignment(a *Assignment) {
	c.expr(a.Left)
	c.expr(a.Right)
}

func (c *identCollector) VisitConditional(cond *Conditional) {
	c.expr(cond.Cond)
	c.expr(cond.Then)
	c.expr(cond.Else)
}

func (c *identCollector) VisitAwait(a *Await) { c.expr(a.Value) }

func (c *identCollector) VisitSpread(s *Spread) { c.expr(s.Value) }

func (c *identCollector) VisitTemplateLiteral(t *TemplateLiteral) {
	for _, e := range t.Exprs {
		c.expr(e)
	}
}
