package ir

import "tsgoc/internal/types"

type typed struct {
	base
	InferredType *types.Type
}

// Identifier is a bare name reference. A name of "undefined" is rewritten to
// the target null by the emitter (spec §4.5).
type Identifier struct {
	typed
	Name string
}

func (i *Identifier) NodeKind() NodeKind { return KindIdentifier }
func (i *Identifier) Accept(v Visitor)   { v.VisitIdentifier(i) }
func (*Identifier) isExpr()              {}

// Literal is a string/number/boolean/null literal.
type Literal struct {
	typed
	Value any
}

func (l *Literal) NodeKind() NodeKind { return KindLiteral }
func (l *Literal) Accept(v Visitor)   { v.VisitLiteral(l) }
func (*Literal) isExpr()              {}

// Array is an array literal.
type Array struct {
	typed
	Elements []Expr
}

func (a *Array) NodeKind() NodeKind { return KindArray }
func (a *Array) Accept(v Visitor)   { v.VisitArray(a) }
func (*Array) isExpr()              {}

// ObjectProperty is one `key: value` entry of an Object literal.
type ObjectProperty struct {
	typed
	Key      string
	Value    Expr
	Computed bool
	Spread   bool
}

func (o *ObjectProperty) NodeKind() NodeKind { return KindObjectProperty }
func (o *ObjectProperty) Accept(v Visitor)   { v.VisitObjectProperty(o) }
func (*ObjectProperty) isExpr()              {}

// Object is an object literal, lowered to a mapping-string-to-empty-interface
// literal by the emitter (spec §4.5).
type Object struct {
	typed
	Properties []*ObjectProperty
}

func (o *Object) NodeKind() NodeKind { return KindObject }
func (o *Object) Accept(v Visitor)   { v.VisitObject(o) }
func (*Object) isExpr()              {}

// Function is a function expression.
type Function struct {
	typed
	Name       string
	Params     []types.Parameter
	ReturnType *types.Type
	IsAsync    bool
	Body       *Block
}

func (f *Function) NodeKind() NodeKind { return KindFunction }
func (f *Function) Accept(v Visitor)   { v.VisitFunction(f) }
func (*Function) isExpr()              {}

// Arrow is an arrow function expression.
type Arrow struct {
	typed
	Params     []types.Parameter
	ReturnType *types.Type
	IsAsync    bool
	Body       *Block
	Expr       Expr
}

func (a *Arrow) NodeKind() NodeKind { return KindArrow }
func (a *Arrow) Accept(v Visitor)   { v.VisitArrow(a) }
func (*Arrow) isExpr()              {}

// Call is a function or method call.
type Call struct {
	typed
	Callee   Expr
	Args     []Expr
	TypeArgs []types.Type
	Optional bool
}

func (c *Call) NodeKind() NodeKind { return KindCall }
func (c *Call) Accept(v Visitor)   { v.VisitCall(c) }
func (*Call) isExpr()              {}

// Member is a property access. Computed selects `obj[prop]`, where Property
// is instead held by ComputedExpr.
type Member struct {
	typed
	Object       Expr
	Property     string
	Computed     bool
	ComputedExpr Expr
	Optional     bool
}

func (m *Member) NodeKind() NodeKind { return KindMember }
func (m *Member) Accept(v Visitor)   { v.VisitMember(m) }
func (*Member) isExpr()              {}

// New is a `new Callee(args)` construction.
type New struct {
	typed
	Callee Expr
	Args   []Expr
}

func (n *New) NodeKind() NodeKind { return KindNew }
func (n *New) Accept(v Visitor)   { v.VisitNew(n) }
func (*New) isExpr()              {}

// Super is a `super` reference, bare, called, or member-accessed.
type Super struct {
	typed
	Args       []Expr
	IsCallForm bool
}

func (s *Super) NodeKind() NodeKind { return KindSuper }
func (s *Super) Accept(v Visitor)   { v.VisitSuper(s) }
func (*Super) isExpr()              {}

// Binary is `left op right`. `===`/`!==` collapse to `==`/`!=` at emission,
// never surviving into target source (spec §4.5, §8 invariant 5).
type Binary struct {
	typed
	Op    string
	Left  Expr
	Right Expr
}

func (b *Binary) NodeKind() NodeKind { return KindBinary }
func (b *Binary) Accept(v Visitor)   { v.VisitBinary(b) }
func (*Binary) isExpr()              {}

// Unary is `op arg` (prefix) or `arg op` (postfix).
type Unary struct {
	typed
	Op     string
	Arg    Expr
	Prefix bool
}

func (u *Unary) NodeKind() NodeKind { return KindUnary }
func (u *Unary) Accept(v Visitor)   { v.VisitUnary(u) }
func (*Unary) isExpr()              {}

// Assignment is `left op= right`.
type Assignment struct {
	typed
	Op    string
	Left  Expr
	Right Expr
}

func (a *Assignment) NodeKind() NodeKind { return KindAssignment }
func (a *Assignment) Accept(v Visitor)   { v.VisitAssignment(a) }
func (*Assignment) isExpr()              {}

// Conditional is the ternary `cond ? then : else`.
type Conditional struct {
	typed
	Cond Expr
	Then Expr
	Else Expr
}

func (c *Conditional) NodeKind() NodeKind { return KindConditional }
func (c *Conditional) Accept(v Visitor)   { v.VisitConditional(c) }
func (*Conditional) isExpr()              {}

// Await is `await expr`, elided at emission because the awaited expression
// already returns (value, error) under the sync async strategy (spec §4.5).
type Await struct {
	typed
	Value Expr
}

func (a *Await) NodeKind() NodeKind { return KindAwait }
func (a *Await) Accept(v Visitor)   { v.VisitAwait(a) }
func (*Await) isExpr()              {}

// Spread is `...expr`.
type Spread struct {
	typed
	Value Expr
}

func (s *Spread) NodeKind() NodeKind { return KindSpread }
func (s *Spread) Accept(v Visitor)   { v.VisitSpread(s) }
func (*Spread) isExpr()              {}

// TemplateLiteral interleaves string fragments (Quasis, one more than
// len(Exprs)) with expression holes.
type TemplateLiteral struct {
	typed
	Quasis []string
	Exprs  []Expr
}

func (t *TemplateLiteral) NodeKind() NodeKind { return KindTemplateLiteral }
func (t *TemplateLiteral) Accept(v Visitor)   { v.VisitTemplateLiteral(t) }
func (*TemplateLiteral) isExpr()              {}
