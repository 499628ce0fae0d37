package types

// Kind discriminates the variants of Type. Kind Unknown is the sentinel for a
// type that is present but not known; a type-bearing field that may be absent
// altogether (an omitted annotation, an uninferred expression type) is a *Type
// and is nil in that case (invariant 4 in the data model: no partial-type
// fields).
type Kind int

const (
	KindUnknown Kind = iota
	KindPrimitive
	KindArray
	KindTuple
	KindObject
	KindFunction
	KindUnion
	KindIntersection
	KindReference
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindObject:
		return "Object"
	case KindFunction:
		return "Function"
	case KindUnion:
		return "Union"
	case KindIntersection:
		return "Intersection"
	case KindReference:
		return "Reference"
	case KindLiteral:
		return "Literal"
	default:
		return "Unknown"
	}
}

// Primitive enumerates the source language's built-in scalar kinds.
type Primitive string

const (
	PrimNumber  Primitive = "number"
	PrimString  Primitive = "string"
	PrimBoolean Primitive = "boolean"
	PrimVoid    Primitive = "void"
	PrimAny     Primitive = "any"
	PrimUnknown Primitive = "unknown"
	PrimNever   Primitive = "never"
)

// PropertySignature describes one property of an Object type or an interface
// member lowered to a data property.
type PropertySignature struct {
	Name     string
	Type     Type
	Optional bool
	Readonly bool
}

// IndexSignature describes a `[key: K]: V` mapped-type member. It lowers to a
// mapping[K]V type in the target language.
type IndexSignature struct {
	KeyType   Type
	ValueType Type
}

// Parameter describes one function or method parameter. Modifiers is only
// ever non-empty on a constructor parameter, where public/private/protected/
// readonly marks it as a constructor-parameter-property (spec §4.1).
type Parameter struct {
	Name      string
	Type      Type
	Optional  bool
	Default   bool // true if a default-value expression is recorded alongside
	Rest      bool
	Modifiers ModifierSet
}

// TypeParameter describes one generic type parameter.
type TypeParameter struct {
	Name       string
	Constraint *Type
	Default    *Type
}

// Type is the IR's sum-typed representation of a source-language type. Only
// the fields relevant to Kind are populated; the rest are left at their zero
// value. This mirrors the teacher's VariableType (a single struct carrying
// Name/Generics/TupleElements) but names every field explicitly for the wider
// sum this spec requires.
type Type struct {
	Kind Kind

	// KindPrimitive
	Primitive Primitive

	// KindArray
	Elem *Type

	// KindTuple
	Elems []Type

	// KindObject
	Properties     []PropertySignature
	IndexSignature *IndexSignature

	// KindFunction
	Params     []Parameter
	Return     *Type
	TypeParams []TypeParameter
	IsAsync    bool

	// KindUnion / KindIntersection
	Members []Type

	// KindReference
	RefName    string
	TypeArgs   []Type

	// KindLiteral
	LiteralValue any
}

// Unknown is the sentinel for an absent or uninferred type.
var Unknown = Type{Kind: KindUnknown}

// NewPrimitive builds a primitive Type.
func NewPrimitive(p Primitive) Type { return Type{Kind: KindPrimitive, Primitive: p} }

// NewArray builds an Array(elem) Type.
func NewArray(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// NewTuple builds a Tuple(elems...) Type.
func NewTuple(elems ...Type) Type { return Type{Kind: KindTuple, Elems: elems} }

// NewObject builds an Object(props, indexSig?) Type.
func NewObject(props []PropertySignature, idx *IndexSignature) Type {
	return Type{Kind: KindObject, Properties: props, IndexSignature: idx}
}

// NewFunction builds a Function(params, ret, typeParams, isAsync) Type.
func NewFunction(params []Parameter, ret Type, typeParams []TypeParameter, isAsync bool) Type {
	return Type{Kind: KindFunction, Params: params, Return: &ret, TypeParams: typeParams, IsAsync: isAsync}
}

// NewUnion builds a Union(types...) Type.
func NewUnion(members ...Type) Type { return Type{Kind: KindUnion, Members: members} }

// NewIntersection builds an Intersection(types...) Type.
func NewIntersection(members ...Type) Type { return Type{Kind: KindIntersection, Members: members} }

// NewReference builds a Reference(name, typeArgs) Type.
func NewReference(name string, typeArgs ...Type) Type {
	return Type{Kind: KindReference, RefName: name, TypeArgs: typeArgs}
}

// NewLiteral builds a Literal(value) Type.
func NewLiteral(value any) Type { return Type{Kind: KindLiteral, LiteralValue: value} }

// IsUnknown reports whether t is the Unknown sentinel.
func (t Type) IsUnknown() bool { return t.Kind == KindUnknown }
