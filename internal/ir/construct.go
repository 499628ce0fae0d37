package ir

import "tsgoc/internal/types"

// Constructors for every IR node lowering builds directly. Each takes the
// node's SourceLocation explicitly so call sites in internal/lowering never
// forget to propagate it (invariant 1). Nodes lowering only ever wraps
// (Module, Import, Export, ...) are still built with plain composite
// literals where no unexported embedded field needs setting from outside
// this package.

func NewIdentifier(loc types.SourceLocation, name string, t *types.Type) *Identifier {
	n := &Identifier{Name: name}
	n.Location = loc
	n.InferredType = t
	return n
}

func NewLiteral(loc types.SourceLocation, value any, t *types.Type) *Literal {
	n := &Literal{Value: value}
	n.Location = loc
	n.InferredType = t
	return n
}

func NewArray(loc types.SourceLocation, elements []Expr, t *types.Type) *Array {
	n := &Array{Elements: elements}
	n.Location = loc
	n.InferredType = t
	return n
}

func NewObjectProperty(loc types.SourceLocation, key string, value Expr, computed, spread bool) *ObjectProperty {
	n := &ObjectProperty{Key: key, Value: value, Computed: computed, Spread: spread}
	n.Location = loc
	return n
}

func NewObject(loc types.SourceLocation, props []*ObjectProperty, t *types.Type) *Object {
	n := &Object{Properties: props}
	n.Location = loc
	n.InferredType = t
	return n
}

func NewFunction(loc types.SourceLocation, name string, params []types.Parameter, ret *types.Type, isAsync bool, body *Block) *Function {
	n := &Function{Name: name, Params: params, ReturnType: ret, IsAsync: isAsync, Body: body}
	n.Location = loc
	return n
}

func NewArrow(loc types.SourceLocation, params []types.Parameter, ret *types.Type, isAsync bool, body *Block, expr Expr) *Arrow {
	n := &Arrow{Params: params, ReturnType: ret, IsAsync: isAsync, Body: body, Expr: expr}
	n.Location = loc
	return n
}

func NewCall(loc types.SourceLocation, callee Expr, args []Expr, typeArgs []types.Type, optional bool) *Call {
	n := &Call{Callee: callee, Args: args, TypeArgs: typeArgs, Optional: optional}
	n.Location = loc
	return n
}

func NewMember(loc types.SourceLocation, object Expr, property string, computed bool, computedExpr Expr, optional bool) *Member {
	n := &Member{Object: object, Property: property, Computed: computed, ComputedExpr: computedExpr, Optional: optional}
	n.Location = loc
	return n
}

func NewNew(loc types.SourceLocation, callee Expr, args []Expr) *New {
	n := &New{Callee: callee, Args: args}
	n.Location = loc
	return n
}

func NewSuper(loc types.SourceLocation, args []Expr, isCallForm bool) *Super {
	n := &Super{Args: args, IsCallForm: isCallForm}
	n.Location = loc
	return n
}

func NewBinary(loc types.SourceLocation, op string, left, right Expr) *Binary {
	n := &Binary{Op: op, Left: left, Right: right}
	n.Location = loc
	return n
}

func NewUnary(loc types.SourceLocation, op string, arg Expr, prefix bool) *Unary {
	n := &Unary{Op: op, Arg: arg, Prefix: prefix}
	n.Location = loc
	return n
}

func NewAssignment(loc types.SourceLocation, op string, left, right Expr) *Assignment {
	n := &Assignment{Op: op, Left: left, Right: right}
	n.Location = loc
	return n
}

func NewConditional(loc types.SourceLocation, cond, then, els Expr) *Conditional {
	n := &Conditional{Cond: cond, Then: then, Else: els}
	n.Location = loc
	return n
}

func NewAwait(loc types.SourceLocation, value Expr) *Await {
	n := &Await{Value: value}
	n.Location = loc
	return n
}

func NewSpread(loc types.SourceLocation, value Expr) *Spread {
	n := &Spread{Value: value}
	n.Location = loc
	return n
}

func NewTemplateLiteral(loc types.SourceLocation, quasis []string, exprs []Expr) *TemplateLiteral {
	n := &TemplateLiteral{Quasis: quasis, Exprs: exprs}
	n.Location = loc
	return n
}

func NewBlock(loc types.SourceLocation, stmts []Stmt) *Block {
	n := &Block{Statements: stmts}
	n.Location = loc
	return n
}

func NewExpressionStmt(loc types.SourceLocation, e Expr) *ExpressionStmt {
	n := &ExpressionStmt{Expr: e}
	n.Location = loc
	return n
}

func NewReturn(loc types.SourceLocation, value Expr) *Return {
	n := &Return{Value: value}
	n.Location = loc
	return n
}

func NewIf(loc types.SourceLocation, cond Expr, then, els Stmt) *If {
	n := &If{Cond: cond, Then: then, Else: els}
	n.Location = loc
	return n
}

func NewWhile(loc types.SourceLocation, cond Expr, body Stmt) *While {
	n := &While{Cond: cond, Body: body}
	n.Location = loc
	return n
}

func NewFor(loc types.SourceLocation, init Stmt, cond Expr, post Stmt, body Stmt) *For {
	n := &For{Init: init, Cond: cond, Post: post, Body: body}
	n.Location = loc
	return n
}

func NewForOf(loc types.SourceLocation, varName string, isConst bool, iterable Expr, body Stmt) *ForOf {
	n := &ForOf{VarName: varName, IsConst: isConst, Iterable: iterable, Body: body}
	n.Location = loc
	return n
}

func NewCatch(loc types.SourceLocation, param string, body *Block) *Catch {
	n := &Catch{Param: param, Body: body}
	n.Location = loc
	return n
}

func NewTry(loc types.SourceLocation, block *Block, handler *Catch, finalizer *Block) *Try {
	n := &Try{Block: block, Handler: handler, Finalizer: finalizer}
	n.Location = loc
	return n
}

func NewThrow(loc types.SourceLocation, value Expr) *Throw {
	n := &Throw{Value: value}
	n.Location = loc
	return n
}

func NewCase(loc types.SourceLocation, test Expr, stmts []Stmt) *Case {
	n := &Case{Test: test, Statements: stmts}
	n.Location = loc
	return n
}

func NewSwitch(loc types.SourceLocation, discriminant Expr, cases []*Case) *Switch {
	n := &Switch{Discriminant: discriminant, Cases: cases}
	n.Location = loc
	return n
}

func NewVariableDecl(loc types.SourceLocation, name string, mods types.ModifierSet, isConst bool, t *types.Type, init Expr) *VariableDecl {
	n := &VariableDecl{Name: name, Modifiers: mods, IsConst: isConst, Type: t, Initializer: init}
	n.Location = loc
	return n
}

func NewFunctionDecl(loc types.SourceLocation, name string, mods types.ModifierSet, params []types.Parameter, defaults map[string]Expr, ret *types.Type, typeParams []types.TypeParameter, isAsync bool, body *Block) *FunctionDecl {
	n := &FunctionDecl{Name: name, Modifiers: mods, Params: params, Defaults: defaults, ReturnType: ret, TypeParams: typeParams, IsAsync: isAsync, Body: body}
	n.Location = loc
	return n
}

func NewClassDecl(loc types.SourceLocation, name string, mods types.ModifierSet, typeParams []types.TypeParameter, extends *types.Type, implements []types.Type, members []ClassMember) *ClassDecl {
	n := &ClassDecl{Name: name, Modifiers: mods, TypeParams: typeParams, Extends: extends, Implements: implements, Members: members}
	n.Location = loc
	return n
}

func NewProperty(loc types.SourceLocation, name string, t *types.Type, init Expr, mods types.ModifierSet, isCtorParam bool) *Property {
	n := &Property{Name: name, Type: t, Initializer: init, Modifiers: mods, IsConstructorParam: isCtorParam}
	n.Location = loc
	return n
}

func NewMethod(loc types.SourceLocation, name string, params []types.Parameter, defaults map[string]Expr, ret *types.Type, typeParams []types.TypeParameter, body *Block, mods types.ModifierSet, isAsync bool, ctor *ConstructorInfo) *Method {
	n := &Method{Name: name, Params: params, Defaults: defaults, ReturnType: ret, TypeParams: typeParams, Body: body, Modifiers: mods, IsAsync: isAsync, Constructor: ctor}
	n.Location = loc
	return n
}

func NewInterfaceDecl(loc types.SourceLocation, name string, mods types.ModifierSet, typeParams []types.TypeParameter, extends []types.Type, props []types.PropertySignature, idx *types.IndexSignature) *InterfaceDecl {
	n := &InterfaceDecl{Name: name, Modifiers: mods, TypeParams: typeParams, Extends: extends, Properties: props, IndexSignature: idx}
	n.Location = loc
	return n
}

func NewTypeAliasDecl(loc types.SourceLocation, name string, mods types.ModifierSet, typeParams []types.TypeParameter, body types.Type) *TypeAliasDecl {
	n := &TypeAliasDecl{Name: name, Modifiers: mods, TypeParams: typeParams, Body: body}
	n.Location = loc
	return n
}

func NewEnumMember(loc types.SourceLocation, name string, value Expr) *EnumMember {
	n := &EnumMember{Name: name, Value: value}
	n.Location = loc
	return n
}

func NewEnumDecl(loc types.SourceLocation, name string, mods types.ModifierSet, members []*EnumMember, heterogeneous bool) *EnumDecl {
	n := &EnumDecl{Name: name, Modifiers: mods, Members: members, Heterogeneous: heterogeneous}
	n.Location = loc
	return n
}
