package ir

import "tsgoc/internal/types"

// Module is the root IR node produced by lowering for one source file.
type Module struct {
	base
	Name       string
	Path       string
	Imports    []*Import
	Statements []Decl
	Exports    []*Export
}

func (m *Module) NodeKind() NodeKind  { return KindModule }
func (m *Module) Accept(v Visitor)    { v.VisitModule(m) }

// ImportSpec names one imported binding.
type ImportSpec struct {
	Imported    string
	Local       string
	IsDefault   bool
	IsNamespace bool
}

// Import represents one retained `import` statement. Dead-code elimination
// always retains imports (spec §4.2).
type Import struct {
	base
	Source     string
	Specifiers []ImportSpec
}

func (i *Import) NodeKind() NodeKind { return KindImport }
func (i *Import) Accept(v Visitor)   { v.VisitImport(i) }
func (*Import) isDecl()              {}

// ExportSpec names one re-exported binding.
type ExportSpec struct {
	Local    string
	Exported string
}

// Export represents a retained `export` statement, either wrapping a
// declaration or naming re-export specifiers.
type Export struct {
	base
	Decl       Decl
	Specifiers []ExportSpec
	Source     string
	IsDefault  bool
}

func (e *Export) NodeKind() NodeKind { return KindExport }
func (e *Export) Accept(v Visitor)   { v.VisitExport(e) }
func (*Export) isDecl()              {}

// VariableDecl is one top-level or local `const`/`let`/`var` declaration,
// already split to a single declarator per spec §4.1 ("Variable statements").
type VariableDecl struct {
	base
	Name        string
	Modifiers   types.ModifierSet
	IsConst     bool
	Type        *types.Type // nil: emitter infers from Initializer
	Initializer Expr
}

func (v *VariableDecl) NodeKind() NodeKind { return KindVariableDecl }
func (v *VariableDecl) Accept(vi Visitor)  { vi.VisitVariableDecl(v) }
func (*VariableDecl) isDecl()              {}
func (*VariableDecl) isStmt()              {}

// FunctionDecl is a top-level function, with defaults preserved as
// expressions (the emitter synthesizes the zero-value guards).
type FunctionDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	Params     []types.Parameter
	Defaults   map[string]Expr
	ReturnType *types.Type
	TypeParams []types.TypeParameter
	IsAsync    bool
	Body       *Block
}

func (f *FunctionDecl) NodeKind() NodeKind { return KindFunctionDecl }
func (f *FunctionDecl) Accept(v Visitor)   { v.VisitFunctionDecl(f) }
func (*FunctionDecl) isDecl()              {}

// SuperCall records a `super(...)` invocation found in a constructor body,
// so the emitter can synthesize parent-record initialization in the factory.
type SuperCall struct {
	Args []Expr
}

// ThisAssignment records one `this.x = expr;` statement found directly in a
// constructor body, so the emitter can fold it into the factory's field
// initializer list instead of emitting it as a body statement.
type ThisAssignment struct {
	Field string
	Value Expr
}

// ConstructorInfo is attached to the Method named "constructor" by lowering;
// it is nil on every other method.
type ConstructorInfo struct {
	Super           *SuperCall
	ThisAssignments []ThisAssignment
}

// ClassDecl is a class declaration after lowering: Members holds every
// instance/static property and method, including the constructor (named
// "constructor") and getters/setters (already renamed get_X/set_X).
type ClassDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	TypeParams []types.TypeParameter
	Extends    *types.Type
	Implements []types.Type
	Members    []ClassMember
}

func (c *ClassDecl) NodeKind() NodeKind { return KindClassDecl }
func (c *ClassDecl) Accept(v Visitor)   { v.VisitClassDecl(c) }
func (*ClassDecl) isDecl()              {}

// Property is one instance or static field. IsConstructorParam is set when
// the field originated from a constructor-parameter-property (spec §4.1).
type Property struct {
	base
	Name               string
	Type               *types.Type
	Initializer        Expr
	Modifiers          types.ModifierSet
	IsConstructorParam bool
}

func (p *Property) NodeKind() NodeKind { return KindProperty }
func (p *Property) Accept(v Visitor)   { v.VisitProperty(p) }
func (*Property) isClassMember()       {}

// Method is one class method, including the constructor and renamed
// getters/setters ("get_X"/"set_X").
type Method struct {
	base
	Name        string
	Params      []types.Parameter
	Defaults    map[string]Expr
	ReturnType  *types.Type
	TypeParams  []types.TypeParameter
	Body        *Block
	Modifiers   types.ModifierSet
	IsAsync     bool
	Constructor *ConstructorInfo // non-nil only when Name == "constructor"
}

func (m *Method) NodeKind() NodeKind { return KindMethod }
func (m *Method) Accept(v Visitor)   { v.VisitMethod(m) }
func (*Method) isClassMember()       {}

// InterfaceDecl is an interface declaration after lowering; method
// signatures are properties whose type is KindFunction, and a lone index
// signature is preserved as a property named "[index]".
type InterfaceDecl struct {
	base
	Name           string
	Modifiers      types.ModifierSet
	TypeParams     []types.TypeParameter
	Extends        []types.Type
	Properties     []types.PropertySignature
	IndexSignature *types.IndexSignature
}

func (i *InterfaceDecl) NodeKind() NodeKind { return KindInterfaceDecl }
func (i *InterfaceDecl) Accept(v Visitor)   { v.VisitInterfaceDecl(i) }
func (*InterfaceDecl) isDecl()              {}

// TypeAliasDecl is a `type X = ...` declaration; Body is preserved verbatim.
type TypeAliasDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	TypeParams []types.TypeParameter
	Body       types.Type
}

func (t *TypeAliasDecl) NodeKind() NodeKind { return KindTypeAliasDecl }
func (t *TypeAliasDecl) Accept(v Visitor)   { v.VisitTypeAliasDecl(t) }
func (*TypeAliasDecl) isDecl()              {}

// EnumMember is one member of an EnumDecl; Value is preserved as an
// expression so the optimizer's constant-folding pass can evaluate it.
type EnumMember struct {
	base
	Name  string
	Value Expr
}

func (e *EnumMember) NodeKind() NodeKind { return KindEnumMember }
func (e *EnumMember) Accept(v Visitor)   { v.VisitEnumMember(e) }

// EnumDecl is an enum declaration. Heterogeneous is set when any member has
// a string initializer, which determines the emitted representation.
type EnumDecl struct {
	base
	Name          string
	Modifiers     types.ModifierSet
	Members       []*EnumMember
	Heterogeneous bool
}

func (e *EnumDecl) NodeKind() NodeKind { return KindEnumDecl }
func (e *EnumDecl) Accept(v Visitor)   { v.VisitEnumDecl(e) }
func (*EnumDecl) isDecl()              {}
