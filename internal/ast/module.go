package ast

import "tsgoc/internal/types"

// Module is the root typed-AST node for one source file.
type Module struct {
	base
	Name       string
	Path       string
	Imports    []*Import
	Statements []Decl
	Exports    []*Export
}

func (m *Module) Kind() NodeKind { return KindModule }

// ImportSpec names one imported binding.
type ImportSpec struct {
	Imported    string // name as exported by the source module
	Local       string // local binding name
	IsDefault   bool
	IsNamespace bool
}

// Import represents one `import ... from "..."` statement.
type Import struct {
	base
	Source      string
	Specifiers  []ImportSpec
}

func (i *Import) Kind() NodeKind { return KindImport }

// ExportSpec names one re-exported binding.
type ExportSpec struct {
	Local    string
	Exported string
}

// Export represents one `export ...` statement: either a declaration made
// directly, or a set of specifiers re-exporting from another module.
type Export struct {
	base
	Decl       Decl // non-nil when exporting a declaration directly
	Specifiers []ExportSpec
	Source     string // non-empty for `export { x } from "./y"`
	IsDefault  bool
}

func (e *Export) Kind() NodeKind { return KindExport }

// VariableDecl represents one `const`/`let`/`var` declarator. Multiple
// declarators in a single source statement are split into N VariableDecl
// nodes by the frontend (or, if it hands over the unsplit form, by the first
// lowering step) so each top-level declaration has exactly one name.
type VariableDecl struct {
	base
	Name        string
	Modifiers   types.ModifierSet
	IsConst     bool
	Type        *types.Type // nil when the frontend left the type to be inferred
	Initializer Expr
}

func (v *VariableDecl) Kind() NodeKind { return KindVariableDecl }
func (*VariableDecl) isDecl()          {}

// VariableDecl doubles as a Stmt so it can appear either at module scope or as
// a local `let`/`const` inside a function body without a separate wrapper type.
func (*VariableDecl) isStmt() {}

// FunctionDecl represents a top-level function declaration.
type FunctionDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	Params     []types.Parameter
	Defaults   map[string]Expr // parameter name -> default-value expression
	ReturnType *types.Type
	TypeParams []types.TypeParameter
	Body       *BlockStmt // nil for declare-only signatures
}

func (f *FunctionDecl) Kind() NodeKind { return KindFunctionDecl }
func (*FunctionDecl) isDecl()          {}

// ClassDecl represents a class declaration, still in sugared form:
// constructor-parameter-properties are ordinary Params with modifiers on the
// constructor method, getters/setters are Method members with an Accessor
// kind, and Extends/Implements are captured as written.
type ClassDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	TypeParams []types.TypeParameter
	Extends    *types.Type // single type reference, or nil
	Implements []types.Type
	Members    []ClassMember
}

func (c *ClassDecl) Kind() NodeKind { return KindClassDecl }
func (*ClassDecl) isDecl()          {}

// Accessor discriminates a plain method from a getter/setter.
type Accessor int

const (
	AccessorNone Accessor = iota
	AccessorGet
	AccessorSet
)

// PropertyMember represents one instance or static field declaration.
type PropertyMember struct {
	base
	Name        string
	Type        *types.Type
	Initializer Expr
	Modifiers   types.ModifierSet
}

func (p *PropertyMember) Kind() NodeKind { return KindPropertyMember }
func (*PropertyMember) isClassMember()   {}

// MethodMember represents one method, including the constructor (named
// "constructor") and getters/setters (Accessor != AccessorNone).
type MethodMember struct {
	base
	Name       string
	Accessor   Accessor
	Params     []types.Parameter
	Defaults   map[string]Expr
	ReturnType *types.Type
	TypeParams []types.TypeParameter
	Body       *BlockStmt
	Modifiers  types.ModifierSet
}

func (m *MethodMember) Kind() NodeKind { return KindMethodMember }
func (*MethodMember) isClassMember()   {}

// InterfaceDecl represents an interface declaration. Method signatures are
// captured as PropertySignature entries whose Type is a Function type, as the
// lowering rules require.
type InterfaceDecl struct {
	base
	Name           string
	Modifiers      types.ModifierSet
	TypeParams     []types.TypeParameter
	Extends        []types.Type
	Properties     []types.PropertySignature
	IndexSignature *types.IndexSignature
}

func (i *InterfaceDecl) Kind() NodeKind { return KindInterfaceDecl }
func (*InterfaceDecl) isDecl()          {}

// TypeAliasDecl represents a `type X = ...` declaration. The body type is
// preserved verbatim; the emitter decides the target representation.
type TypeAliasDecl struct {
	base
	Name       string
	Modifiers  types.ModifierSet
	TypeParams []types.TypeParameter
	Body       types.Type
}

func (t *TypeAliasDecl) Kind() NodeKind { return KindTypeAliasDecl }
func (*TypeAliasDecl) isDecl()          {}

// EnumMember represents one member of an enum declaration.
type EnumMember struct {
	base
	Name  string
	Value Expr // nil when the member has no explicit initializer
}

func (e *EnumMember) Kind() NodeKind { return KindEnumMember }

// EnumDecl represents an enum declaration.
type EnumDecl struct {
	base
	Name      string
	Modifiers types.ModifierSet
	Members   []*EnumMember
}

func (e *EnumDecl) Kind() NodeKind { return KindEnumDecl }
func (*EnumDecl) isDecl()          {}
