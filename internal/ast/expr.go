package ast

import "tsgoc/internal/types"

// typed embeds the optional inferred type every expression carries, per the
// data model ("Each carries an optional inferred type").
type typed struct {
	base
	InferredType *types.Type
}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	typed
	Name string
}

func (i *IdentExpr) Kind() NodeKind { return KindIdentExpr }
func (*IdentExpr) isExpr()          {}

// LiteralExpr is a literal value: string, number, boolean, null, or undefined.
type LiteralExpr struct {
	typed
	Value any // string, float64, bool, or nil for null/undefined
	// Raw preserves the source text distinction between `null` and
	// `undefined`, both of which lower to the same IR null literal but are
	// reported distinctly in diagnostics.
	Raw string
}

func (l *LiteralExpr) Kind() NodeKind { return KindLiteralExpr }
func (*LiteralExpr) isExpr()          {}

// ArrayExpr is an array literal `[a, b, c]`.
type ArrayExpr struct {
	typed
	Elements []Expr
}

func (a *ArrayExpr) Kind() NodeKind { return KindArrayExpr }
func (*ArrayExpr) isExpr()          {}

// ObjectPropertyExpr is one `key: value` entry of an ObjectExpr.
type ObjectPropertyExpr struct {
	typed
	Key      string
	Value    Expr
	Computed bool
	Spread   bool
}

func (o *ObjectPropertyExpr) Kind() NodeKind { return KindObjectPropertyExpr }
func (*ObjectPropertyExpr) isExpr()          {}

// ObjectExpr is an object literal `{ a: 1, b: 2 }`.
type ObjectExpr struct {
	typed
	Properties []*ObjectPropertyExpr
}

func (o *ObjectExpr) Kind() NodeKind { return KindObjectExpr }
func (*ObjectExpr) isExpr()          {}

// FunctionExpr is a named or anonymous function expression.
type FunctionExpr struct {
	typed
	Name       string
	Params     []types.Parameter
	ReturnType *types.Type
	IsAsync    bool
	Body       *BlockStmt
}

func (f *FunctionExpr) Kind() NodeKind { return KindFunctionExpr }
func (*FunctionExpr) isExpr()          {}

// ArrowExpr is an arrow function expression; unlike FunctionExpr it never
// rebinds `this`, which lowering relies on when rewriting method bodies.
type ArrowExpr struct {
	typed
	Params     []types.Parameter
	ReturnType *types.Type
	IsAsync    bool
	Body       *BlockStmt // for a block-bodied arrow
	Expr       Expr       // for a concise-bodied arrow; mutually exclusive with Body
}

func (a *ArrowExpr) Kind() NodeKind { return KindArrowExpr }
func (*ArrowExpr) isExpr()          {}

// CallExpr is a function or method call `callee(args...)`.
type CallExpr struct {
	typed
	Callee    Expr
	Args      []Expr
	TypeArgs  []types.Type
	Optional  bool // `callee?.(args)`
}

func (c *CallExpr) Kind() NodeKind { return KindCallExpr }
func (*CallExpr) isExpr()          {}

// MemberExpr is a property access `obj.prop`, `obj[prop]`, or `obj?.prop`.
type MemberExpr struct {
	typed
	Object   Expr
	Property string
	Computed bool // true for `obj[prop]`, where Property is empty and ComputedExpr holds the key
	ComputedExpr Expr
	Optional bool
}

func (m *MemberExpr) Kind() NodeKind { return KindMemberExpr }
func (*MemberExpr) isExpr()          {}

// NewExpr is a `new Callee(args)` construction.
type NewExpr struct {
	typed
	Callee Expr
	Args   []Expr
}

func (n *NewExpr) Kind() NodeKind { return KindNewExpr }
func (*NewExpr) isExpr()          {}

// SuperExpr is a bare `super` reference, either called as `super(args)` from
// a constructor body or accessed as `super.method(...)`.
type SuperExpr struct {
	typed
	Args       []Expr // non-nil when this is a `super(...)` call
	IsCallForm bool
}

func (s *SuperExpr) Kind() NodeKind { return KindSuperExpr }
func (*SuperExpr) isExpr()          {}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	typed
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) Kind() NodeKind { return KindBinaryExpr }
func (*BinaryExpr) isExpr()          {}

// UnaryExpr is `op arg` (prefix) or `arg op` (postfix, e.g. `x++`).
type UnaryExpr struct {
	typed
	Op     string
	Arg    Expr
	Prefix bool
}

func (u *UnaryExpr) Kind() NodeKind { return KindUnaryExpr }
func (*UnaryExpr) isExpr()          {}

// AssignExpr is `left op= right` (including plain `=`).
type AssignExpr struct {
	typed
	Op    string
	Left  Expr
	Right Expr
}

func (a *AssignExpr) Kind() NodeKind { return KindAssignExpr }
func (*AssignExpr) isExpr()          {}

// ConditionalExpr is the ternary `cond ? then : else`.
type ConditionalExpr struct {
	typed
	Cond Expr
	Then Expr
	Else Expr
}

func (c *ConditionalExpr) Kind() NodeKind { return KindConditionalExpr }
func (*ConditionalExpr) isExpr()          {}

// AwaitExpr is `await expr`.
type AwaitExpr struct {
	typed
	Value Expr
}

func (a *AwaitExpr) Kind() NodeKind { return KindAwaitExpr }
func (*AwaitExpr) isExpr()          {}

// SpreadExpr is `...expr` used in an array/object literal or call argument
// position.
type SpreadExpr struct {
	typed
	Value Expr
}

func (s *SpreadExpr) Kind() NodeKind { return KindSpreadExpr }
func (*SpreadExpr) isExpr()          {}

// TemplateLiteralExpr is a template literal, already split into interleaved
// string fragments (Quasis, one more than len(Exprs)) and expression holes.
type TemplateLiteralExpr struct {
	typed
	Quasis []string
	Exprs  []Expr
}

func (t *TemplateLiteralExpr) Kind() NodeKind { return KindTemplateLiteralExpr }
func (*TemplateLiteralExpr) isExpr()          {}
