package ir

import "tsgoc/internal/types"

// NodeKind discriminates every IR node kind. The tree has ~40 kinds, matching
// the data model's inventory of declarations, class members, statements and
// expressions after lowering has desugared getters/setters,
// constructor-parameter-properties, and split multi-declarator variable
// statements.
type NodeKind int

const (
	KindIllegal NodeKind = iota

	KindModule
	KindImport
	KindExport

	KindVariableDecl
	KindFunctionDecl
	KindClassDecl
	KindInterfaceDecl
	KindTypeAliasDecl
	KindEnumDecl

	KindProperty
	KindMethod
	KindEnumMember

	KindBlock
	KindExpressionStmt
	KindReturn
	KindIf
	KindWhile
	KindFor
	KindForOf
	KindTry
	KindCatch
	KindThrow
	KindSwitch
	KindCase

	KindIdentifier
	KindLiteral
	KindArray
	KindObject
	KindObjectProperty
	KindFunction
	KindArrow
	KindCall
	KindMember
	KindNew
	KindSuper
	KindBinary
	KindUnary
	KindAssignment
	KindConditional
	KindAwait
	KindSpread
	KindTemplateLiteral

	// kindCount is a sentinel marking the end of the kind list, used by
	// AllKinds; it is not itself a valid node kind.
	kindCount
)

var kindNames = map[NodeKind]string{
	KindIllegal:         "Illegal",
	KindModule:          "Module",
	KindImport:          "Import",
	KindExport:          "Export",
	KindVariableDecl:    "VariableDecl",
	KindFunctionDecl:    "FunctionDecl",
	KindClassDecl:       "ClassDecl",
	KindInterfaceDecl:   "InterfaceDecl",
	KindTypeAliasDecl:   "TypeAliasDecl",
	KindEnumDecl:        "EnumDecl",
	KindProperty:        "Property",
	KindMethod:          "Method",
	KindEnumMember:      "EnumMember",
	KindBlock:           "Block",
	KindExpressionStmt:  "ExpressionStmt",
	KindReturn:          "Return",
	KindIf:              "If",
	KindWhile:           "While",
	KindFor:             "For",
	KindForOf:           "ForOf",
	KindTry:             "Try",
	KindCatch:           "Catch",
	KindThrow:           "Throw",
	KindSwitch:          "Switch",
	KindCase:            "Case",
	KindIdentifier:      "Identifier",
	KindLiteral:         "Literal",
	KindArray:           "Array",
	KindObject:          "Object",
	KindObjectProperty:  "ObjectProperty",
	KindFunction:        "Function",
	KindArrow:           "Arrow",
	KindCall:            "Call",
	KindMember:          "Member",
	KindNew:             "New",
	KindSuper:           "Super",
	KindBinary:          "Binary",
	KindUnary:           "Unary",
	KindAssignment:      "Assignment",
	KindConditional:     "Conditional",
	KindAwait:           "Await",
	KindSpread:          "Spread",
	KindTemplateLiteral: "TemplateLiteral",
}

func (k NodeKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// AllKinds returns every valid NodeKind, in declaration order. Nothing in
// this module calls it; visitor exhaustiveness (invariant 2) is enforced at
// compile time by the Visitor interface, as described on Node below.
func AllKinds() []NodeKind {
	kinds := make([]NodeKind, 0, int(kindCount)-1)
	for k := KindModule; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Node is implemented by every IR node. Accept dispatches to exactly one
// method on v, keyed by the node's concrete kind (invariant 2: visitor
// exhaustiveness — a Visitor missing a case fails to satisfy the interface at
// compile time).
type Node interface {
	Loc() types.SourceLocation
	NodeKind() NodeKind
	Accept(v Visitor)
}

// Decl is the sum of top-level declaration kinds.
type Decl interface {
	Node
	isDecl()
}

// ClassMember is the sum of class-body member kinds.
type ClassMember interface {
	Node
	isClassMember()
}

// Stmt is the sum of statement kinds.
type Stmt interface {
	Node
	isStmt()
}

// Expr is the sum of expression kinds.
type Expr interface {
	Node
	isExpr()
}

type base struct {
	Location types.SourceLocation
}

func (b base) Loc() types.SourceLocation { return b.Location }
