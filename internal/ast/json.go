package ast

import (
	"encoding/json"
	"fmt"

	"tsgoc/internal/types"
)

// envelope is the wire shape every Node round-trips through: a Kind
// discriminator alongside the node's own field data, so a decoder can
// allocate the right concrete type before delegating to its UnmarshalJSON.
// This is what lets interface-typed fields (Expr, Stmt, Decl, ClassMember)
// survive a JSON round-trip at all — without a discriminator, decoding a
// generic `json.RawMessage` back into `ast.Expr` has no way to know which
// concrete struct to allocate (spec's "external frontend hands off ASTs
// over a pipe" requirement).
type envelope struct {
	Kind NodeKind        `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// encodeNode wraps n in its envelope. A nil n (legal for optional fields
// like IfStmt.Else or VariableDecl.Initializer) encodes as a JSON null.
func encodeNode(n Node) (json.RawMessage, error) {
	if n == nil {
		return json.RawMessage("null"), nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Kind: n.Kind(), Data: data})
}

// decodeNode allocates the concrete node type named by raw's envelope kind
// and unmarshals into it.
func decodeNode(raw json.RawMessage) (Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	n := newNode(env.Kind)
	if n == nil {
		return nil, fmt.Errorf("ast: unknown node kind %d", env.Kind)
	}
	if err := json.Unmarshal(env.Data, n); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(Expr)
	if !ok {
		return nil, fmt.Errorf("ast: node kind %d is not an expression", n.Kind())
	}
	return e, nil
}

func decodeStmt(raw json.RawMessage) (Stmt, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(Stmt)
	if !ok {
		return nil, fmt.Errorf("ast: node kind %d is not a statement", n.Kind())
	}
	return s, nil
}

func decodeDecl(raw json.RawMessage) (Decl, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	d, ok := n.(Decl)
	if !ok {
		return nil, fmt.Errorf("ast: node kind %d is not a declaration", n.Kind())
	}
	return d, nil
}

func decodeClassMember(raw json.RawMessage) (ClassMember, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	m, ok := n.(ClassMember)
	if !ok {
		return nil, fmt.Errorf("ast: node kind %d is not a class member", n.Kind())
	}
	return m, nil
}

func encodeExprSlice(exprs []Expr) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(exprs))
	for i, e := range exprs {
		data, err := encodeNode(e)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func decodeExprSlice(raws []json.RawMessage) ([]Expr, error) {
	out := make([]Expr, len(raws))
	for i, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func encodeExprMap(m map[string]Expr) (map[string]json.RawMessage, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, e := range m {
		data, err := encodeNode(e)
		if err != nil {
			return nil, err
		}
		out[k] = data
	}
	return out, nil
}

func decodeExprMap(raws map[string]json.RawMessage) (map[string]Expr, error) {
	if raws == nil {
		return nil, nil
	}
	out := make(map[string]Expr, len(raws))
	for k, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		out[k] = e
	}
	return out, nil
}

// newNode allocates the zero value for kind, ready for json.Unmarshal to
// populate. One entry per NodeKind; an addition to node.go's const block
// without a matching case here is caught at decode time by decodeNode's
// "unknown node kind" error rather than silently.
func newNode(kind NodeKind) Node {
	switch kind {
	case KindModule:
		return &Module{}
	case KindImport:
		return &Import{}
	case KindExport:
		return &Export{}
	case KindVariableDecl:
		return &VariableDecl{}
	case KindFunctionDecl:
		return &FunctionDecl{}
	case KindClassDecl:
		return &ClassDecl{}
	case KindInterfaceDecl:
		return &InterfaceDecl{}
	case KindTypeAliasDecl:
		return &TypeAliasDecl{}
	case KindEnumDecl:
		return &EnumDecl{}
	case KindPropertyMember:
		return &PropertyMember{}
	case KindMethodMember:
		return &MethodMember{}
	case KindEnumMember:
		return &EnumMember{}
	case KindBlockStmt:
		return &BlockStmt{}
	case KindExprStmt:
		return &ExprStmt{}
	case KindReturnStmt:
		return &ReturnStmt{}
	case KindIfStmt:
		return &IfStmt{}
	case KindWhileStmt:
		return &WhileStmt{}
	case KindForStmt:
		return &ForStmt{}
	case KindForOfStmt:
		return &ForOfStmt{}
	case KindTryStmt:
		return &TryStmt{}
	case KindCatchClause:
		return &CatchClause{}
	case KindThrowStmt:
		return &ThrowStmt{}
	case KindSwitchStmt:
		return &SwitchStmt{}
	case KindCaseClause:
		return &CaseClause{}
	case KindIdentExpr:
		return &IdentExpr{}
	case KindLiteralExpr:
		return &LiteralExpr{}
	case KindArrayExpr:
		return &ArrayExpr{}
	case KindObjectExpr:
		return &ObjectExpr{}
	case KindObjectPropertyExpr:
		return &ObjectPropertyExpr{}
	case KindFunctionExpr:
		return &FunctionExpr{}
	case KindArrowExpr:
		return &ArrowExpr{}
	case KindCallExpr:
		return &CallExpr{}
	case KindMemberExpr:
		return &MemberExpr{}
	case KindNewExpr:
		return &NewExpr{}
	case KindSuperExpr:
		return &SuperExpr{}
	case KindBinaryExpr:
		return &BinaryExpr{}
	case KindUnaryExpr:
		return &UnaryExpr{}
	case KindAssignExpr:
		return &AssignExpr{}
	case KindConditionalExpr:
		return &ConditionalExpr{}
	case KindAwaitExpr:
		return &AwaitExpr{}
	case KindSpreadExpr:
		return &SpreadExpr{}
	case KindTemplateLiteralExpr:
		return &TemplateLiteralExpr{}
	default:
		return nil
	}
}

// --- Expressions with a directly interface-typed field ---

func (a *ArrayExpr) MarshalJSON() ([]byte, error) {
	elements, err := encodeExprSlice(a.Elements)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Elements     []json.RawMessage    `json:"elements"`
	}{a.Location, a.InferredType, elements})
}

func (a *ArrayExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Elements     []json.RawMessage    `json:"elements"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	elements, err := decodeExprSlice(aux.Elements)
	if err != nil {
		return err
	}
	a.Location, a.InferredType, a.Elements = aux.Location, aux.InferredType, elements
	return nil
}

func (o *ObjectPropertyExpr) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(o.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Key          string               `json:"key"`
		Value        json.RawMessage      `json:"value"`
		Computed     bool                 `json:"computed,omitempty"`
		Spread       bool                 `json:"spread,omitempty"`
	}{o.Location, o.InferredType, o.Key, value, o.Computed, o.Spread})
}

func (o *ObjectPropertyExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Key          string               `json:"key"`
		Value        json.RawMessage      `json:"value"`
		Computed     bool                 `json:"computed,omitempty"`
		Spread       bool                 `json:"spread,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	o.Location, o.InferredType, o.Key, o.Value, o.Computed, o.Spread =
		aux.Location, aux.InferredType, aux.Key, value, aux.Computed, aux.Spread
	return nil
}

func (a *ArrowExpr) MarshalJSON() ([]byte, error) {
	expr, err := encodeNode(a.Expr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Params       []types.Parameter    `json:"params,omitempty"`
		ReturnType   *types.Type          `json:"returnType,omitempty"`
		IsAsync      bool                 `json:"isAsync,omitempty"`
		Body         *BlockStmt           `json:"body,omitempty"`
		Expr         json.RawMessage      `json:"expr,omitempty"`
	}{a.Location, a.InferredType, a.Params, a.ReturnType, a.IsAsync, a.Body, expr})
}

func (a *ArrowExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Params       []types.Parameter    `json:"params,omitempty"`
		ReturnType   *types.Type          `json:"returnType,omitempty"`
		IsAsync      bool                 `json:"isAsync,omitempty"`
		Body         *BlockStmt           `json:"body,omitempty"`
		Expr         json.RawMessage      `json:"expr,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	expr, err := decodeExpr(aux.Expr)
	if err != nil {
		return err
	}
	a.Location, a.InferredType, a.Params, a.ReturnType, a.IsAsync, a.Body, a.Expr =
		aux.Location, aux.InferredType, aux.Params, aux.ReturnType, aux.IsAsync, aux.Body, expr
	return nil
}

func (c *CallExpr) MarshalJSON() ([]byte, error) {
	callee, err := encodeNode(c.Callee)
	if err != nil {
		return nil, err
	}
	args, err := encodeExprSlice(c.Args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Callee       json.RawMessage      `json:"callee"`
		Args         []json.RawMessage    `json:"args,omitempty"`
		TypeArgs     []types.Type         `json:"typeArgs,omitempty"`
		Optional     bool                 `json:"optional,omitempty"`
	}{c.Location, c.InferredType, callee, args, c.TypeArgs, c.Optional})
}

func (c *CallExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Callee       json.RawMessage      `json:"callee"`
		Args         []json.RawMessage    `json:"args,omitempty"`
		TypeArgs     []types.Type         `json:"typeArgs,omitempty"`
		Optional     bool                 `json:"optional,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	callee, err := decodeExpr(aux.Callee)
	if err != nil {
		return err
	}
	args, err := decodeExprSlice(aux.Args)
	if err != nil {
		return err
	}
	c.Location, c.InferredType, c.Callee, c.Args, c.TypeArgs, c.Optional =
		aux.Location, aux.InferredType, callee, args, aux.TypeArgs, aux.Optional
	return nil
}

func (m *MemberExpr) MarshalJSON() ([]byte, error) {
	object, err := encodeNode(m.Object)
	if err != nil {
		return nil, err
	}
	computed, err := encodeNode(m.ComputedExpr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Object       json.RawMessage      `json:"object"`
		Property     string               `json:"property,omitempty"`
		Computed     bool                 `json:"computed,omitempty"`
		ComputedExpr json.RawMessage      `json:"computedExpr,omitempty"`
		Optional     bool                 `json:"optional,omitempty"`
	}{m.Location, m.InferredType, object, m.Property, m.Computed, computed, m.Optional})
}

func (m *MemberExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Object       json.RawMessage      `json:"object"`
		Property     string               `json:"property,omitempty"`
		Computed     bool                 `json:"computed,omitempty"`
		ComputedExpr json.RawMessage      `json:"computedExpr,omitempty"`
		Optional     bool                 `json:"optional,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	object, err := decodeExpr(aux.Object)
	if err != nil {
		return err
	}
	computed, err := decodeExpr(aux.ComputedExpr)
	if err != nil {
		return err
	}
	m.Location, m.InferredType, m.Object, m.Property, m.Computed, m.ComputedExpr, m.Optional =
		aux.Location, aux.InferredType, object, aux.Property, aux.Computed, computed, aux.Optional
	return nil
}

func (n *NewExpr) MarshalJSON() ([]byte, error) {
	callee, err := encodeNode(n.Callee)
	if err != nil {
		return nil, err
	}
	args, err := encodeExprSlice(n.Args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Callee       json.RawMessage      `json:"callee"`
		Args         []json.RawMessage    `json:"args,omitempty"`
	}{n.Location, n.InferredType, callee, args})
}

func (n *NewExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Callee       json.RawMessage      `json:"callee"`
		Args         []json.RawMessage    `json:"args,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	callee, err := decodeExpr(aux.Callee)
	if err != nil {
		return err
	}
	args, err := decodeExprSlice(aux.Args)
	if err != nil {
		return err
	}
	n.Location, n.InferredType, n.Callee, n.Args = aux.Location, aux.InferredType, callee, args
	return nil
}

func (s *SuperExpr) MarshalJSON() ([]byte, error) {
	args, err := encodeExprSlice(s.Args)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Args         []json.RawMessage    `json:"args,omitempty"`
		IsCallForm   bool                 `json:"isCallForm,omitempty"`
	}{s.Location, s.InferredType, args, s.IsCallForm})
}

func (s *SuperExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Args         []json.RawMessage    `json:"args,omitempty"`
		IsCallForm   bool                 `json:"isCallForm,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	args, err := decodeExprSlice(aux.Args)
	if err != nil {
		return err
	}
	s.Location, s.InferredType, s.Args, s.IsCallForm = aux.Location, aux.InferredType, args, aux.IsCallForm
	return nil
}

func (b *BinaryExpr) MarshalJSON() ([]byte, error) {
	left, err := encodeNode(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := encodeNode(b.Right)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Left         json.RawMessage      `json:"left"`
		Right        json.RawMessage      `json:"right"`
	}{b.Location, b.InferredType, b.Op, left, right})
}

func (b *BinaryExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Left         json.RawMessage      `json:"left"`
		Right        json.RawMessage      `json:"right"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	left, err := decodeExpr(aux.Left)
	if err != nil {
		return err
	}
	right, err := decodeExpr(aux.Right)
	if err != nil {
		return err
	}
	b.Location, b.InferredType, b.Op, b.Left, b.Right = aux.Location, aux.InferredType, aux.Op, left, right
	return nil
}

func (u *UnaryExpr) MarshalJSON() ([]byte, error) {
	arg, err := encodeNode(u.Arg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Arg          json.RawMessage      `json:"arg"`
		Prefix       bool                 `json:"prefix,omitempty"`
	}{u.Location, u.InferredType, u.Op, arg, u.Prefix})
}

func (u *UnaryExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Arg          json.RawMessage      `json:"arg"`
		Prefix       bool                 `json:"prefix,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	arg, err := decodeExpr(aux.Arg)
	if err != nil {
		return err
	}
	u.Location, u.InferredType, u.Op, u.Arg, u.Prefix = aux.Location, aux.InferredType, aux.Op, arg, aux.Prefix
	return nil
}

func (a *AssignExpr) MarshalJSON() ([]byte, error) {
	left, err := encodeNode(a.Left)
	if err != nil {
		return nil, err
	}
	right, err := encodeNode(a.Right)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Left         json.RawMessage      `json:"left"`
		Right        json.RawMessage      `json:"right"`
	}{a.Location, a.InferredType, a.Op, left, right})
}

func (a *AssignExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Op           string               `json:"op"`
		Left         json.RawMessage      `json:"left"`
		Right        json.RawMessage      `json:"right"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	left, err := decodeExpr(aux.Left)
	if err != nil {
		return err
	}
	right, err := decodeExpr(aux.Right)
	if err != nil {
		return err
	}
	a.Location, a.InferredType, a.Op, a.Left, a.Right = aux.Location, aux.InferredType, aux.Op, left, right
	return nil
}

func (c *ConditionalExpr) MarshalJSON() ([]byte, error) {
	cond, err := encodeNode(c.Cond)
	if err != nil {
		return nil, err
	}
	then, err := encodeNode(c.Then)
	if err != nil {
		return nil, err
	}
	els, err := encodeNode(c.Else)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Cond         json.RawMessage      `json:"cond"`
		Then         json.RawMessage      `json:"then"`
		Else         json.RawMessage      `json:"else"`
	}{c.Location, c.InferredType, cond, then, els})
}

func (c *ConditionalExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Cond         json.RawMessage      `json:"cond"`
		Then         json.RawMessage      `json:"then"`
		Else         json.RawMessage      `json:"else"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	cond, err := decodeExpr(aux.Cond)
	if err != nil {
		return err
	}
	then, err := decodeExpr(aux.Then)
	if err != nil {
		return err
	}
	els, err := decodeExpr(aux.Else)
	if err != nil {
		return err
	}
	c.Location, c.InferredType, c.Cond, c.Then, c.Else = aux.Location, aux.InferredType, cond, then, els
	return nil
}

func (a *AwaitExpr) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(a.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Value        json.RawMessage      `json:"value"`
	}{a.Location, a.InferredType, value})
}

func (a *AwaitExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Value        json.RawMessage      `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	a.Location, a.InferredType, a.Value = aux.Location, aux.InferredType, value
	return nil
}

func (s *SpreadExpr) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(s.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Value        json.RawMessage      `json:"value"`
	}{s.Location, s.InferredType, value})
}

func (s *SpreadExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Value        json.RawMessage      `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	s.Location, s.InferredType, s.Value = aux.Location, aux.InferredType, value
	return nil
}

func (t *TemplateLiteralExpr) MarshalJSON() ([]byte, error) {
	exprs, err := encodeExprSlice(t.Exprs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Quasis       []string             `json:"quasis"`
		Exprs        []json.RawMessage    `json:"exprs,omitempty"`
	}{t.Location, t.InferredType, t.Quasis, exprs})
}

func (t *TemplateLiteralExpr) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		InferredType *types.Type          `json:"inferredType,omitempty"`
		Quasis       []string             `json:"quasis"`
		Exprs        []json.RawMessage    `json:"exprs,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	exprs, err := decodeExprSlice(aux.Exprs)
	if err != nil {
		return err
	}
	t.Location, t.InferredType, t.Quasis, t.Exprs = aux.Location, aux.InferredType, aux.Quasis, exprs
	return nil
}

// --- Statements with a directly interface-typed field ---

func (b *BlockStmt) MarshalJSON() ([]byte, error) {
	stmts, err := encodeNodeSlice(b.Statements)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation `json:"location"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
	}{b.Location, stmts})
}

func (b *BlockStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation `json:"location"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	stmts, err := decodeStmtSlice(aux.Statements)
	if err != nil {
		return err
	}
	b.Location, b.Statements = aux.Location, stmts
	return nil
}

func encodeNodeSlice[T Node](nodes []T) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(nodes))
	for i, n := range nodes {
		data, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func decodeStmtSlice(raws []json.RawMessage) ([]Stmt, error) {
	out := make([]Stmt, len(raws))
	for i, raw := range raws {
		s, err := decodeStmt(raw)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (e *ExprStmt) MarshalJSON() ([]byte, error) {
	expr, err := encodeNode(e.Expr)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Expr     json.RawMessage      `json:"expr"`
	}{e.Location, expr})
}

func (e *ExprStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Expr     json.RawMessage      `json:"expr"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	expr, err := decodeExpr(aux.Expr)
	if err != nil {
		return err
	}
	e.Location, e.Expr = aux.Location, expr
	return nil
}

func (r *ReturnStmt) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(r.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Value    json.RawMessage      `json:"value,omitempty"`
	}{r.Location, value})
}

func (r *ReturnStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Value    json.RawMessage      `json:"value,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	r.Location, r.Value = aux.Location, value
	return nil
}

func (i *IfStmt) MarshalJSON() ([]byte, error) {
	cond, err := encodeNode(i.Cond)
	if err != nil {
		return nil, err
	}
	then, err := encodeNode(i.Then)
	if err != nil {
		return nil, err
	}
	els, err := encodeNode(i.Else)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Cond     json.RawMessage      `json:"cond"`
		Then     json.RawMessage      `json:"then"`
		Else     json.RawMessage      `json:"else,omitempty"`
	}{i.Location, cond, then, els})
}

func (i *IfStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Cond     json.RawMessage      `json:"cond"`
		Then     json.RawMessage      `json:"then"`
		Else     json.RawMessage      `json:"else,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	cond, err := decodeExpr(aux.Cond)
	if err != nil {
		return err
	}
	then, err := decodeStmt(aux.Then)
	if err != nil {
		return err
	}
	els, err := decodeStmt(aux.Else)
	if err != nil {
		return err
	}
	i.Location, i.Cond, i.Then, i.Else = aux.Location, cond, then, els
	return nil
}

func (w *WhileStmt) MarshalJSON() ([]byte, error) {
	cond, err := encodeNode(w.Cond)
	if err != nil {
		return nil, err
	}
	body, err := encodeNode(w.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Cond     json.RawMessage      `json:"cond"`
		Body     json.RawMessage      `json:"body"`
	}{w.Location, cond, body})
}

func (w *WhileStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Cond     json.RawMessage      `json:"cond"`
		Body     json.RawMessage      `json:"body"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	cond, err := decodeExpr(aux.Cond)
	if err != nil {
		return err
	}
	body, err := decodeStmt(aux.Body)
	if err != nil {
		return err
	}
	w.Location, w.Cond, w.Body = aux.Location, cond, body
	return nil
}

func (f *ForStmt) MarshalJSON() ([]byte, error) {
	init, err := encodeNode(f.Init)
	if err != nil {
		return nil, err
	}
	cond, err := encodeNode(f.Cond)
	if err != nil {
		return nil, err
	}
	post, err := encodeNode(f.Post)
	if err != nil {
		return nil, err
	}
	body, err := encodeNode(f.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Init     json.RawMessage      `json:"init,omitempty"`
		Cond     json.RawMessage      `json:"cond,omitempty"`
		Post     json.RawMessage      `json:"post,omitempty"`
		Body     json.RawMessage      `json:"body"`
	}{f.Location, init, cond, post, body})
}

func (f *ForStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Init     json.RawMessage      `json:"init,omitempty"`
		Cond     json.RawMessage      `json:"cond,omitempty"`
		Post     json.RawMessage      `json:"post,omitempty"`
		Body     json.RawMessage      `json:"body"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	init, err := decodeStmt(aux.Init)
	if err != nil {
		return err
	}
	cond, err := decodeExpr(aux.Cond)
	if err != nil {
		return err
	}
	post, err := decodeStmt(aux.Post)
	if err != nil {
		return err
	}
	body, err := decodeStmt(aux.Body)
	if err != nil {
		return err
	}
	f.Location, f.Init, f.Cond, f.Post, f.Body = aux.Location, init, cond, post, body
	return nil
}

func (f *ForOfStmt) MarshalJSON() ([]byte, error) {
	iterable, err := encodeNode(f.Iterable)
	if err != nil {
		return nil, err
	}
	body, err := encodeNode(f.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		VarName  string               `json:"varName"`
		IsConst  bool                 `json:"isConst,omitempty"`
		Iterable json.RawMessage      `json:"iterable"`
		Body     json.RawMessage      `json:"body"`
	}{f.Location, f.VarName, f.IsConst, iterable, body})
}

func (f *ForOfStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		VarName  string               `json:"varName"`
		IsConst  bool                 `json:"isConst,omitempty"`
		Iterable json.RawMessage      `json:"iterable"`
		Body     json.RawMessage      `json:"body"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	iterable, err := decodeExpr(aux.Iterable)
	if err != nil {
		return err
	}
	body, err := decodeStmt(aux.Body)
	if err != nil {
		return err
	}
	f.Location, f.VarName, f.IsConst, f.Iterable, f.Body = aux.Location, aux.VarName, aux.IsConst, iterable, body
	return nil
}

func (t *ThrowStmt) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(t.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Value    json.RawMessage      `json:"value"`
	}{t.Location, value})
}

func (t *ThrowStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Value    json.RawMessage      `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	t.Location, t.Value = aux.Location, value
	return nil
}

func (c *CaseClause) MarshalJSON() ([]byte, error) {
	test, err := encodeNode(c.Test)
	if err != nil {
		return nil, err
	}
	stmts, err := encodeNodeSlice(c.Statements)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation `json:"location"`
		Test       json.RawMessage      `json:"test,omitempty"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
	}{c.Location, test, stmts})
}

func (c *CaseClause) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation `json:"location"`
		Test       json.RawMessage      `json:"test,omitempty"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	test, err := decodeExpr(aux.Test)
	if err != nil {
		return err
	}
	stmts, err := decodeStmtSlice(aux.Statements)
	if err != nil {
		return err
	}
	c.Location, c.Test, c.Statements = aux.Location, test, stmts
	return nil
}

func (s *SwitchStmt) MarshalJSON() ([]byte, error) {
	discriminant, err := encodeNode(s.Discriminant)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location     types.SourceLocation `json:"location"`
		Discriminant json.RawMessage      `json:"discriminant"`
		Cases        []*CaseClause        `json:"cases,omitempty"`
	}{s.Location, discriminant, s.Cases})
}

func (s *SwitchStmt) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location     types.SourceLocation `json:"location"`
		Discriminant json.RawMessage      `json:"discriminant"`
		Cases        []*CaseClause        `json:"cases,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	discriminant, err := decodeExpr(aux.Discriminant)
	if err != nil {
		return err
	}
	s.Location, s.Discriminant, s.Cases = aux.Location, discriminant, aux.Cases
	return nil
}

// --- Module-level declarations with a directly interface-typed field ---

func (m *Module) MarshalJSON() ([]byte, error) {
	statements, err := encodeNodeSlice(m.Statements)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation `json:"location"`
		Name       string               `json:"name"`
		Path       string               `json:"path"`
		Imports    []*Import            `json:"imports,omitempty"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
		Exports    []*Export            `json:"exports,omitempty"`
	}{m.Location, m.Name, m.Path, m.Imports, statements, m.Exports})
}

func (m *Module) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation `json:"location"`
		Name       string               `json:"name"`
		Path       string               `json:"path"`
		Imports    []*Import            `json:"imports,omitempty"`
		Statements []json.RawMessage    `json:"statements,omitempty"`
		Exports    []*Export            `json:"exports,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	statements := make([]Decl, len(aux.Statements))
	for i, raw := range aux.Statements {
		d, err := decodeDecl(raw)
		if err != nil {
			return err
		}
		statements[i] = d
	}
	m.Location, m.Name, m.Path, m.Imports, m.Statements, m.Exports =
		aux.Location, aux.Name, aux.Path, aux.Imports, statements, aux.Exports
	return nil
}

func (e *Export) MarshalJSON() ([]byte, error) {
	decl, err := encodeNode(e.Decl)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation `json:"location"`
		Decl       json.RawMessage      `json:"decl,omitempty"`
		Specifiers []ExportSpec         `json:"specifiers,omitempty"`
		Source     string               `json:"source,omitempty"`
		IsDefault  bool                 `json:"isDefault,omitempty"`
	}{e.Location, decl, e.Specifiers, e.Source, e.IsDefault})
}

func (e *Export) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation `json:"location"`
		Decl       json.RawMessage      `json:"decl,omitempty"`
		Specifiers []ExportSpec         `json:"specifiers,omitempty"`
		Source     string               `json:"source,omitempty"`
		IsDefault  bool                 `json:"isDefault,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	decl, err := decodeDecl(aux.Decl)
	if err != nil {
		return err
	}
	e.Location, e.Decl, e.Specifiers, e.Source, e.IsDefault =
		aux.Location, decl, aux.Specifiers, aux.Source, aux.IsDefault
	return nil
}

func (v *VariableDecl) MarshalJSON() ([]byte, error) {
	init, err := encodeNode(v.Initializer)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location    types.SourceLocation `json:"location"`
		Name        string               `json:"name"`
		Modifiers   types.ModifierSet    `json:"modifiers,omitempty"`
		IsConst     bool                 `json:"isConst,omitempty"`
		Type        *types.Type          `json:"type,omitempty"`
		Initializer json.RawMessage      `json:"initializer,omitempty"`
	}{v.Location, v.Name, v.Modifiers, v.IsConst, v.Type, init})
}

func (v *VariableDecl) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location    types.SourceLocation `json:"location"`
		Name        string               `json:"name"`
		Modifiers   types.ModifierSet    `json:"modifiers,omitempty"`
		IsConst     bool                 `json:"isConst,omitempty"`
		Type        *types.Type          `json:"type,omitempty"`
		Initializer json.RawMessage      `json:"initializer,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	init, err := decodeExpr(aux.Initializer)
	if err != nil {
		return err
	}
	v.Location, v.Name, v.Modifiers, v.IsConst, v.Type, v.Initializer =
		aux.Location, aux.Name, aux.Modifiers, aux.IsConst, aux.Type, init
	return nil
}

func (f *FunctionDecl) MarshalJSON() ([]byte, error) {
	defaults, err := encodeExprMap(f.Defaults)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation       `json:"location"`
		Name       string                     `json:"name"`
		Modifiers  types.ModifierSet          `json:"modifiers,omitempty"`
		Params     []types.Parameter          `json:"params,omitempty"`
		Defaults   map[string]json.RawMessage `json:"defaults,omitempty"`
		ReturnType *types.Type                `json:"returnType,omitempty"`
		TypeParams []types.TypeParameter      `json:"typeParams,omitempty"`
		Body       *BlockStmt                 `json:"body,omitempty"`
	}{f.Location, f.Name, f.Modifiers, f.Params, defaults, f.ReturnType, f.TypeParams, f.Body})
}

func (f *FunctionDecl) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation       `json:"location"`
		Name       string                     `json:"name"`
		Modifiers  types.ModifierSet          `json:"modifiers,omitempty"`
		Params     []types.Parameter          `json:"params,omitempty"`
		Defaults   map[string]json.RawMessage `json:"defaults,omitempty"`
		ReturnType *types.Type                `json:"returnType,omitempty"`
		TypeParams []types.TypeParameter      `json:"typeParams,omitempty"`
		Body       *BlockStmt                 `json:"body,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	defaults, err := decodeExprMap(aux.Defaults)
	if err != nil {
		return err
	}
	f.Location, f.Name, f.Modifiers, f.Params, f.Defaults, f.ReturnType, f.TypeParams, f.Body =
		aux.Location, aux.Name, aux.Modifiers, aux.Params, defaults, aux.ReturnType, aux.TypeParams, aux.Body
	return nil
}

func (c *ClassDecl) MarshalJSON() ([]byte, error) {
	members, err := encodeNodeSlice(c.Members)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation   `json:"location"`
		Name       string                 `json:"name"`
		Modifiers  types.ModifierSet      `json:"modifiers,omitempty"`
		TypeParams []types.TypeParameter  `json:"typeParams,omitempty"`
		Extends    *types.Type            `json:"extends,omitempty"`
		Implements []types.Type           `json:"implements,omitempty"`
		Members    []json.RawMessage      `json:"members,omitempty"`
	}{c.Location, c.Name, c.Modifiers, c.TypeParams, c.Extends, c.Implements, members})
}

func (c *ClassDecl) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation  `json:"location"`
		Name       string                `json:"name"`
		Modifiers  types.ModifierSet     `json:"modifiers,omitempty"`
		TypeParams []types.TypeParameter `json:"typeParams,omitempty"`
		Extends    *types.Type           `json:"extends,omitempty"`
		Implements []types.Type          `json:"implements,omitempty"`
		Members    []json.RawMessage     `json:"members,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	members := make([]ClassMember, len(aux.Members))
	for i, raw := range aux.Members {
		mem, err := decodeClassMember(raw)
		if err != nil {
			return err
		}
		members[i] = mem
	}
	c.Location, c.Name, c.Modifiers, c.TypeParams, c.Extends, c.Implements, c.Members =
		aux.Location, aux.Name, aux.Modifiers, aux.TypeParams, aux.Extends, aux.Implements, members
	return nil
}

func (p *PropertyMember) MarshalJSON() ([]byte, error) {
	init, err := encodeNode(p.Initializer)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location    types.SourceLocation `json:"location"`
		Name        string               `json:"name"`
		Type        *types.Type          `json:"type,omitempty"`
		Initializer json.RawMessage      `json:"initializer,omitempty"`
		Modifiers   types.ModifierSet    `json:"modifiers,omitempty"`
	}{p.Location, p.Name, p.Type, init, p.Modifiers})
}

func (p *PropertyMember) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location    types.SourceLocation `json:"location"`
		Name        string               `json:"name"`
		Type        *types.Type          `json:"type,omitempty"`
		Initializer json.RawMessage      `json:"initializer,omitempty"`
		Modifiers   types.ModifierSet    `json:"modifiers,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	init, err := decodeExpr(aux.Initializer)
	if err != nil {
		return err
	}
	p.Location, p.Name, p.Type, p.Initializer, p.Modifiers = aux.Location, aux.Name, aux.Type, init, aux.Modifiers
	return nil
}

func (m *MethodMember) MarshalJSON() ([]byte, error) {
	defaults, err := encodeExprMap(m.Defaults)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location   types.SourceLocation       `json:"location"`
		Name       string                     `json:"name"`
		Accessor   Accessor                   `json:"accessor,omitempty"`
		Params     []types.Parameter          `json:"params,omitempty"`
		Defaults   map[string]json.RawMessage `json:"defaults,omitempty"`
		ReturnType *types.Type                `json:"returnType,omitempty"`
		TypeParams []types.TypeParameter      `json:"typeParams,omitempty"`
		Body       *BlockStmt                 `json:"body,omitempty"`
		Modifiers  types.ModifierSet          `json:"modifiers,omitempty"`
	}{m.Location, m.Name, m.Accessor, m.Params, defaults, m.ReturnType, m.TypeParams, m.Body, m.Modifiers})
}

func (m *MethodMember) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location   types.SourceLocation       `json:"location"`
		Name       string                     `json:"name"`
		Accessor   Accessor                   `json:"accessor,omitempty"`
		Params     []types.Parameter          `json:"params,omitempty"`
		Defaults   map[string]json.RawMessage `json:"defaults,omitempty"`
		ReturnType *types.Type                `json:"returnType,omitempty"`
		TypeParams []types.TypeParameter      `json:"typeParams,omitempty"`
		Body       *BlockStmt                 `json:"body,omitempty"`
		Modifiers  types.ModifierSet          `json:"modifiers,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	defaults, err := decodeExprMap(aux.Defaults)
	if err != nil {
		return err
	}
	m.Location, m.Name, m.Accessor, m.Params, m.Defaults, m.ReturnType, m.TypeParams, m.Body, m.Modifiers =
		aux.Location, aux.Name, aux.Accessor, aux.Params, defaults, aux.ReturnType, aux.TypeParams, aux.Body, aux.Modifiers
	return nil
}

func (e *EnumMember) MarshalJSON() ([]byte, error) {
	value, err := encodeNode(e.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Location types.SourceLocation `json:"location"`
		Name     string               `json:"name"`
		Value    json.RawMessage      `json:"value,omitempty"`
	}{e.Location, e.Name, value})
}

func (e *EnumMember) UnmarshalJSON(data []byte) error {
	var aux struct {
		Location types.SourceLocation `json:"location"`
		Name     string               `json:"name"`
		Value    json.RawMessage      `json:"value,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	value, err := decodeExpr(aux.Value)
	if err != nil {
		return err
	}
	e.Location, e.Name, e.Value = aux.Location, aux.Name, value
	return nil
}
