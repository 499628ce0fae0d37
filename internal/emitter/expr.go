package emitter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

var stringLookalike = regexp.MustCompile(`(?i)name|title|string|text|message`)
var nullableLookalike = regexp.MustCompile(`(?i)age|value|count|id|amount`)

// emitExpr renders e as a single Go expression, applying every per-construct
// rewrite spec §4.5 prescribes.
func (e *Emitter) emitExpr(expr ir.Expr) string {
	switch n := expr.(type) {
	case *ir.Identifier:
		return e.emitIdentifier(n)
	case *ir.Literal:
		return e.emitLiteral(n)
	case *ir.Array:
		return e.emitArray(n)
	case *ir.Object:
		return e.emitObject(n)
	case *ir.Function:
		return e.emitFunctionExpr(n)
	case *ir.Arrow:
		return e.emitArrowExpr(n)
	case *ir.Call:
		return e.emitCall(n)
	case *ir.Member:
		return e.emitMember(n)
	case *ir.New:
		return e.emitNew(n)
	case *ir.Super:
		return "" // folded into the class factory; never reached standalone.
	case *ir.Binary:
		return e.emitBinary(n)
	case *ir.Unary:
		return e.emitUnary(n)
	case *ir.Assignment:
		return fmt.Sprintf("%s %s %s", e.emitExpr(n.Left), n.Op, e.emitExpr(n.Right))
	case *ir.Conditional:
		return e.emitConditional(n)
	case *ir.Await:
		// Elided: under the sync async strategy the awaited call already
		// returns (value, error); the enclosing statement threads the error.
		return e.emitExpr(n.Value)
	case *ir.Spread:
		return e.emitExpr(n.Value) + "..."
	case *ir.TemplateLiteral:
		return e.emitTemplateLiteral(n)
	default:
		return "nil /* unsupported expression */"
	}
}

func (e *Emitter) emitIdentifier(n *ir.Identifier) string {
	switch n.Name {
	case "undefined", "null":
		return "nil"
	case "this":
		if e.class != nil {
			return e.class.receiver
		}
		return "this"
	default:
		return n.Name
	}
}

func (e *Emitter) emitLiteral(n *ir.Literal) string {
	switch v := n.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if e.cfg.NumberStrategy == config.NumberInt {
			return strconv.Itoa(int(v))
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *Emitter) emitArray(n *ir.Array) string {
	elemType := "interface{}"
	if len(n.Elements) > 0 {
		if lit, ok := n.Elements[0].(*ir.Literal); ok {
			switch lit.Value.(type) {
			case string:
				elemType = "string"
			case bool:
				elemType = "bool"
			case float64:
				elemType = "float64"
			}
		}
	}
	parts := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		parts[i] = e.emitExpr(el)
	}
	return fmt.Sprintf("[]%s{%s}", elemType, strings.Join(parts, ", "))
}

func (e *Emitter) emitObject(n *ir.Object) string {
	parts := make([]string, 0, len(n.Properties))
	for _, p := range n.Properties {
		parts = append(parts, fmt.Sprintf("%q: %s", p.Key, e.emitExpr(p.Value)))
	}
	return fmt.Sprintf("map[string]interface{}{%s}", strings.Join(parts, ", "))
}

func (e *Emitter) emitFunctionExpr(n *ir.Function) string {
	return e.emitFuncLiteral(n.Params, n.ReturnType, n.IsAsync, n.Body)
}

func (e *Emitter) emitArrowExpr(n *ir.Arrow) string {
	if n.Body != nil {
		return e.emitFuncLiteral(n.Params, n.ReturnType, n.IsAsync, n.Body)
	}
	body := ir.NewBlock(n.Loc(), []ir.Stmt{ir.NewReturn(n.Loc(), n.Expr)})
	return e.emitFuncLiteral(n.Params, n.ReturnType, n.IsAsync, body)
}

func (e *Emitter) emitCall(n *ir.Call) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.emitExpr(a)
	}
	return fmt.Sprintf("%s(%s)", e.emitExpr(n.Callee), strings.Join(args, ", "))
}

// emitMember implements "capitalized when accessing a known public field;
// left lowercase when the class context marks the field private" (spec
// §4.5). Outside of any class context (the common case — most member
// accesses are on values, not `this`), field names are capitalized, since
// every record the emitter generates exports its fields.
func (e *Emitter) emitMember(n *ir.Member) string {
	if !n.Computed {
		if varName, ok := e.staticVarRef(n); ok {
			return varName
		}
	}
	obj := e.emitExpr(n.Object)
	if n.Computed {
		return fmt.Sprintf("%s[%s]", obj, e.emitExpr(n.ComputedExpr))
	}
	name := n.Property
	if e.class != nil && e.class.private[name] {
		name = strcase.ToLowerCamel(name)
	} else {
		name = strcase.ToCamel(name)
	}
	return fmt.Sprintf("%s.%s", obj, name)
}

// staticVarRef resolves this.field/ClassName.field where field is a static
// class member, to the hoisted module-level variable holding it. Static
// method bodies have no receiver, so such references must bypass the normal
// receiver-based member rendering entirely.
func (e *Emitter) staticVarRef(n *ir.Member) (string, bool) {
	if e.class == nil || e.class.staticVars == nil {
		return "", false
	}
	ident, ok := n.Object.(*ir.Identifier)
	if !ok {
		return "", false
	}
	if ident.Name != "this" && ident.Name != e.class.name {
		return "", false
	}
	varName, ok := e.class.staticVars[n.Property]
	return varName, ok
}

// emitNew implements the New-expression row of §4.5: `Date` becomes a
// current-time call, anything else calls the synthesized `NewX` factory.
func (e *Emitter) emitNew(n *ir.New) string {
	if ident, ok := n.Callee.(*ir.Identifier); ok && ident.Name == "Date" {
		e.requireImport("time")
		return "time.Now()"
	}
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = e.emitExpr(a)
	}
	return fmt.Sprintf("New%s(%s)", e.emitExpr(n.Callee), strings.Join(args, ", "))
}

// emitBinary implements the binary-operator row: `===`/`!==` collapse to
// `==`/`!=`, and `??` becomes an inline nil-coalescing closure.
func (e *Emitter) emitBinary(n *ir.Binary) string {
	switch n.Op {
	case "===":
		return fmt.Sprintf("%s == %s", e.emitExpr(n.Left), e.emitExpr(n.Right))
	case "!==":
		return fmt.Sprintf("%s != %s", e.emitExpr(n.Left), e.emitExpr(n.Right))
	case "??":
		left, right := e.emitExpr(n.Left), e.emitExpr(n.Right)
		return fmt.Sprintf("func() interface{} { if %s != nil { return %s }; return %s }()", left, left, right)
	default:
		return fmt.Sprintf("%s %s %s", e.emitExpr(n.Left), n.Op, e.emitExpr(n.Right))
	}
}

// emitUnary implements the unary-operator row: `typeof` goes through a
// runtime-type-name helper, `!ptr` on a pointer-shaped identifier becomes
// `ptr == nil`, and ++/-- pass through (their statement-vs-expression split
// in return position is handled by the statement emitter, spec §4.5 "Return
// statement rewrites").
func (e *Emitter) emitUnary(n *ir.Unary) string {
	arg := e.emitExpr(n.Arg)
	switch n.Op {
	case "typeof":
		e.requireImport("reflect")
		return fmt.Sprintf("reflect.TypeOf(%s).String()", arg)
	case "!":
		if ident, ok := n.Arg.(*ir.Identifier); ok && e.isPointerShaped(ident) {
			return fmt.Sprintf("%s == nil", arg)
		}
		return "!" + arg
	case "++", "--":
		if n.Prefix {
			return n.Op + arg
		}
		return arg + n.Op
	default:
		if n.Prefix {
			return n.Op + arg
		}
		return arg + n.Op
	}
}

func (e *Emitter) isPointerShaped(id *ir.Identifier) bool {
	if id.InferredType == nil {
		return false
	}
	return e.cfg.NullabilityStrategy == config.NullabilityPointer && id.InferredType.Kind != types.KindPrimitive
}

func (e *Emitter) emitConditional(n *ir.Conditional) string {
	cond, then, els := e.emitExpr(n.Cond), e.emitExpr(n.Then), e.emitExpr(n.Else)
	return fmt.Sprintf("func() interface{} { if %s { return %s }; return %s }()", cond, then, els)
}

// emitTemplateLiteral implements the template-literal row: a format string
// built from a name-regex heuristic (%s for string-lookalike names, %v
// otherwise), with nullable-like names dereferenced.
func (e *Emitter) emitTemplateLiteral(n *ir.TemplateLiteral) string {
	e.requireImport("fmt")

	var format strings.Builder
	args := make([]string, 0, len(n.Exprs))
	for i, q := range n.Quasis {
		format.WriteString(escapePercent(q))
		if i < len(n.Exprs) {
			hole := n.Exprs[i]
			verb, rendered := e.templateHole(hole)
			format.WriteString(verb)
			args = append(args, rendered)
		}
	}

	if len(args) == 0 {
		return strconv.Quote(format.String())
	}
	return fmt.Sprintf("fmt.Sprintf(%s, %s)", strconv.Quote(format.String()), strings.Join(args, ", "))
}

func (e *Emitter) templateHole(hole ir.Expr) (verb string, rendered string) {
	rendered = e.emitExpr(hole)
	ident, isIdent := hole.(*ir.Identifier)

	if e.cfg.StrictOptions.TypeDirectedFormatVerbs && isIdent && ident.InferredType != nil {
		return e.typeDirectedVerb(*ident.InferredType, rendered)
	}

	name := ""
	if isIdent {
		name = ident.Name
	}
	if name != "" && nullableLookalike.MatchString(name) && e.cfg.NullabilityStrategy == config.NullabilityPointer {
		rendered = "*" + rendered
	}
	if name != "" && stringLookalike.MatchString(name) {
		return "%s", rendered
	}
	return "%v", rendered
}

// typeDirectedVerb replaces the name-regex heuristic with a lookup against
// the hole's declared type, per the strict format-verb resolution recorded
// in DESIGN.md: a string primitive gets %s, a pointer-represented type is
// dereferenced before formatting, anything else gets %v.
func (e *Emitter) typeDirectedVerb(t types.Type, rendered string) (string, string) {
	if e.cfg.NullabilityStrategy == config.NullabilityPointer && t.Kind != types.KindPrimitive {
		rendered = "*" + rendered
	}
	if t.Kind == types.KindPrimitive && t.Primitive == types.PrimString {
		return "%s", rendered
	}
	return "%v", rendered
}

func escapePercent(s string) string { return strings.ReplaceAll(s, "%", "%%") }
