package emitter

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

// emitDecl dispatches to the per-declaration-kind emission function. Every
// ir.Decl concrete type has a case here; an unrecognized kind (there should
// never be one, since lowering never produces a Decl outside this set) falls
// through to a comment rather than a panic.
func (e *Emitter) emitDecl(d ir.Decl) {
	switch n := d.(type) {
	case *ir.VariableDecl:
		e.emitVariableDecl(n)
	case *ir.FunctionDecl:
		e.emitFunctionDecl(n)
	case *ir.ClassDecl:
		e.emitClassDecl(n)
	case *ir.InterfaceDecl:
		e.emitInterfaceDecl(n)
	case *ir.TypeAliasDecl:
		e.emitTypeAliasDecl(n)
	case *ir.EnumDecl:
		e.emitEnumDecl(n)
	case *ir.Import, *ir.Export:
		// Retained by dead-code elimination but carry no Go surface of their
		// own; the module they name is already addressed by package path.
	default:
		e.line("// unsupported declaration")
	}
}

func goName(name string, exported bool) string {
	if exported {
		return strcase.ToCamel(name)
	}
	return strcase.ToLowerCamel(name)
}

// emitVariableDecl implements the variable-declaration row of §4.5: a tuple
// initializer's named record definition is emitted (via useType, which
// interns it) before the variable itself.
func (e *Emitter) emitVariableDecl(n *ir.VariableDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)

	goType := ""
	if n.Type != nil {
		goType = e.useType(*n.Type)
	}

	if n.Initializer == nil {
		if goType == "" {
			goType = "interface{}"
		}
		e.line("var %s %s", name, goType)
		return
	}

	value := e.emitExpr(n.Initializer)
	if goType != "" {
		e.line("var %s %s = %s", name, goType, value)
		return
	}
	e.line("%s := %s", name, value)
}

// emitFunctionDecl renders a top-level function, prepending a context
// parameter for async functions and synthesizing the default-parameter zero
// guards spec §4.5 describes for "Function declarations".
func (e *Emitter) emitFunctionDecl(n *ir.FunctionDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)

	sig := e.renderSignature(n.Params, n.ReturnType, n.IsAsync, n.Body)
	e.line("func %s(%s) %s {", name, sig.params, sig.results)
	e.indent++
	savedResult := e.result
	e.result = sig.shape
	e.emitDefaultGuards(n.Params, n.Defaults)
	e.emitStmts(n.Body.Statements)
	e.result = savedResult
	e.indent--
	e.line("}")
}

type funcSignature struct {
	params  string
	results string
	shape   resultShape
}

// renderSignature builds the parameter list and result-type string shared by
// function declarations, methods, and function/arrow literals.
func (e *Emitter) renderSignature(params []types.Parameter, ret *types.Type, isAsync bool, body *ir.Block) funcSignature {
	parts := make([]string, 0, len(params)+1)
	if isAsync {
		e.requireImport("context")
		parts = append(parts, "ctx context.Context")
	}
	for _, p := range params {
		goType := e.useType(p.Type)
		if p.Rest {
			goType = "[]" + goType
		}
		if p.Optional && e.cfg.NullabilityStrategy == config.NullabilityPointer && !strings.HasPrefix(goType, "*") {
			goType = "*" + goType
		}
		parts = append(parts, fmt.Sprintf("%s %s", p.Name, goType))
	}
	signature := funcSignature{params: strings.Join(parts, ", ")}

	var retType string
	if ret != nil && !ret.IsUnknown() && !(ret.Kind == types.KindPrimitive && ret.Primitive == types.PrimVoid) {
		retType = e.useType(*ret)
	}

	throws := containsThrow(body)
	needsError := throws && e.cfg.ErrorHandling == config.ErrorHandlingReturn

	switch {
	case isAsync && retType != "":
		signature.results = fmt.Sprintf("(%s, error)", retType)
		signature.shape = resultShape{hasValue: true, hasError: true}
	case isAsync:
		signature.results = "error"
		signature.shape = resultShape{hasError: true}
	case retType != "" && needsError:
		signature.results = fmt.Sprintf("(%s, error)", retType)
		signature.shape = resultShape{hasValue: true, hasError: true}
	case retType != "":
		signature.results = retType
		signature.shape = resultShape{hasValue: true}
	case needsError:
		signature.results = "error"
		signature.shape = resultShape{hasError: true}
	default:
		signature.results = ""
	}
	return signature
}

// containsThrow reports whether body directly or transitively (through
// nested blocks, if/while/for, switch, try) contains a throw statement, used
// to decide whether a function needs a trailing error result under the
// return-based error-handling strategy.
func containsThrow(body *ir.Block) bool {
	if body == nil {
		return false
	}
	for _, s := range body.Statements {
		if stmtContainsThrow(s) {
			return true
		}
	}
	return false
}

func stmtContainsThrow(s ir.Stmt) bool {
	switch n := s.(type) {
	case *ir.Throw:
		return true
	case *ir.Block:
		return containsThrow(n)
	case *ir.If:
		return stmtContainsThrow(n.Then) || (n.Else != nil && stmtContainsThrow(n.Else))
	case *ir.While:
		return stmtContainsThrow(n.Body)
	case *ir.For:
		return stmtContainsThrow(n.Body)
	case *ir.ForOf:
		return stmtContainsThrow(n.Body)
	case *ir.Try:
		return containsThrow(n.Block)
	case *ir.Switch:
		for _, c := range n.Cases {
			for _, cs := range c.Statements {
				if stmtContainsThrow(cs) {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}

// emitDefaultGuards synthesizes the `if name == zero { name = default }`
// guard for every parameter with a recorded default, per §4.5.
func (e *Emitter) emitDefaultGuards(params []types.Parameter, defaults map[string]ir.Expr) {
	for _, p := range params {
		if !p.Default {
			continue
		}
		d, ok := defaults[p.Name]
		if !ok {
			continue
		}
		zero := e.zeroValue(p.Type)
		if p.Optional && e.cfg.NullabilityStrategy == config.NullabilityPointer {
			zero = "nil"
		}
		e.line("if %s == %s {", p.Name, zero)
		e.indent++
		e.line("%s = %s", p.Name, e.emitExpr(d))
		e.indent--
		e.line("}")
	}
}

func (e *Emitter) zeroValue(t types.Type) string {
	switch t.Kind {
	case types.KindPrimitive:
		switch t.Primitive {
		case types.PrimString:
			return `""`
		case types.PrimBoolean:
			return "false"
		case types.PrimNumber:
			return "0"
		}
	}
	return "nil"
}

// emitFuncLiteral renders an anonymous function literal shared by Function
// and Arrow expressions.
func (e *Emitter) emitFuncLiteral(params []types.Parameter, ret *types.Type, isAsync bool, body *ir.Block) string {
	sig := e.renderSignature(params, ret, isAsync, body)
	var b strings.Builder
	fmt.Fprintf(&b, "func(%s) %s {\n", sig.params, sig.results)
	saved := e.out
	savedResult := e.result
	e.out = &strings.Builder{}
	e.result = sig.shape
	e.indent++
	e.emitStmts(body.Statements)
	e.indent--
	inner := e.out.String()
	e.out = saved
	e.result = savedResult
	b.WriteString(inner)
	b.WriteString(strings.Repeat("\t", e.indent))
	b.WriteString("}")
	return b.String()
}

// emitClassDecl produces the four artifacts spec §4.5 assigns to a class
// declaration: the field record, any static-property variables, the
// NewX(...) factory, and one method per non-constructor member.
func (e *Emitter) emitClassDecl(n *ir.ClassDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)

	private := map[string]bool{}
	fieldTypes := map[string]types.Type{}
	var instanceFields []*ir.Property
	var staticFields []*ir.Property
	var constructor *ir.Method
	var methods []*ir.Method
	var staticMethods []*ir.Method

	for _, m := range n.Members {
		switch mem := m.(type) {
		case *ir.Property:
			if mem.Modifiers.Has(types.Static) {
				staticFields = append(staticFields, mem)
				continue
			}
			instanceFields = append(instanceFields, mem)
			if mem.Type != nil {
				fieldTypes[mem.Name] = *mem.Type
			}
			if mem.Modifiers.Visibility() == types.Private {
				private[mem.Name] = true
			}
		case *ir.Method:
			if mem.Name == "constructor" {
				constructor = mem
				continue
			}
			if mem.Modifiers.Has(types.Static) {
				staticMethods = append(staticMethods, mem)
				continue
			}
			methods = append(methods, mem)
		}
	}

	staticVars := map[string]string{}
	for _, f := range staticFields {
		staticVars[f.Name] = fmt.Sprintf("%s%s", name, goName(f.Name, true))
	}

	receiver := strings.ToLower(name[:1])
	e.class = &classContext{name: name, private: private, fieldTypes: fieldTypes, receiver: receiver, staticVars: staticVars}
	defer func() { e.class = nil }()

	e.line("type %s struct {", name)
	e.indent++
	if n.Extends != nil {
		e.line("%s", e.embeddedParentFieldName(*n.Extends))
	}
	for _, f := range instanceFields {
		fieldName := goName(f.Name, f.Modifiers.Visibility() != types.Private)
		goType := "interface{}"
		if f.Type != nil {
			goType = e.useType(*f.Type)
		}
		e.line("%s %s", fieldName, goType)
	}
	e.indent--
	e.line("}")
	e.raw("\n")

	for _, f := range staticFields {
		varName := fmt.Sprintf("%s%s", name, goName(f.Name, true))
		goType := "interface{}"
		if f.Type != nil {
			goType = e.useType(*f.Type)
		}
		if f.Initializer != nil {
			e.line("var %s %s = %s", varName, goType, e.emitExpr(f.Initializer))
		} else {
			e.line("var %s %s", varName, goType)
		}
	}
	if len(staticFields) > 0 {
		e.raw("\n")
	}

	e.emitClassFactory(name, n, constructor, instanceFields)
	e.raw("\n")

	for _, m := range methods {
		e.emitMethod(name, receiver, m)
		e.raw("\n")
	}

	for _, m := range staticMethods {
		e.emitStaticMethodHoist(name, m)
		e.raw("\n")
	}
}

func (e *Emitter) embeddedParentFieldName(parent types.Type) string {
	if parent.Kind == types.KindReference {
		return strcase.ToCamel(parent.RefName)
	}
	return strcase.ToCamel(e.useType(parent))
}

// emitClassFactory renders the NewX(...) constructor function: one parameter
// per constructor parameter, a super(...) call folded into the embedded
// parent-field initializer, and this.x = expr assignments folded into the
// returned record's field initializer list, per the `emailPtr := &email`
// pointer-conversion pattern observed for pointer-nullability fields.
func (e *Emitter) emitClassFactory(name string, n *ir.ClassDecl, constructor *ir.Method, fields []*ir.Property) {
	var params []types.Parameter
	var defaults map[string]ir.Expr
	var superCall *ir.SuperCall
	var thisAssignments []ir.ThisAssignment
	if constructor != nil {
		params = constructor.Params
		defaults = constructor.Defaults
		if constructor.Constructor != nil {
			superCall = constructor.Constructor.Super
			thisAssignments = constructor.Constructor.ThisAssignments
		}
	}

	var ctorBody *ir.Block
	if constructor != nil {
		ctorBody = constructor.Body
	}
	sig := e.renderSignature(params, nil, false, ctorBody)
	e.line("func New%s(%s) *%s {", name, sig.params, name)
	e.indent++
	e.emitDefaultGuards(params, defaults)

	assigned := map[string]string{}
	for _, ta := range thisAssignments {
		rendered := e.emitExpr(ta.Value)
		if e.cfg.NullabilityStrategy == config.NullabilityPointer {
			if t, ok := fieldPointerShaped(ta.Field, fields); ok && t {
				shim := ta.Field + "Ptr"
				e.line("%s := &%s", shim, rendered)
				rendered = shim
			}
		}
		assigned[ta.Field] = rendered
	}
	for _, p := range params {
		if p.Modifiers.Has(types.Public) || p.Modifiers.Has(types.Private) || p.Modifiers.Has(types.Protected) || p.Modifiers.Has(types.Readonly) {
			if _, ok := assigned[p.Name]; !ok {
				assigned[p.Name] = p.Name
			}
		}
	}

	e.line("return &%s{", name)
	e.indent++
	if n.Extends != nil && superCall != nil {
		args := make([]string, len(superCall.Args))
		for i, a := range superCall.Args {
			args[i] = e.emitExpr(a)
		}
		e.line("%s: New%s(%s),", e.embeddedParentFieldName(*n.Extends), e.embeddedParentFieldName(*n.Extends), strings.Join(args, ", "))
	}
	for _, f := range fields {
		fieldName := goName(f.Name, f.Modifiers.Visibility() != types.Private)
		if v, ok := assigned[f.Name]; ok {
			e.line("%s: %s,", fieldName, v)
		} else if f.Initializer != nil {
			e.line("%s: %s,", fieldName, e.emitExpr(f.Initializer))
		}
	}
	e.indent--
	e.line("}")
	e.indent--
	e.line("}")
}

func fieldPointerShaped(name string, fields []*ir.Property) (bool, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f.Type != nil && f.Type.Kind == types.KindUnion, true
		}
	}
	return false, false
}

// emitMethod renders one class method with receiver name matching the
// classContext's receiver, so `this` rewrites consistently inside the body.
func (e *Emitter) emitMethod(className, receiver string, m *ir.Method) {
	methodName := goName(m.Name, m.Modifiers.Visibility() != types.Private)
	recvType := className
	if e.cfg.UsePointerReceivers {
		recvType = "*" + className
	}
	sig := e.renderSignature(m.Params, m.ReturnType, m.IsAsync, m.Body)
	e.line("func (%s %s) %s(%s) %s {", receiver, recvType, methodName, sig.params, sig.results)
	e.indent++
	savedResult := e.result
	e.result = sig.shape
	e.emitDefaultGuards(m.Params, m.Defaults)
	e.emitStmts(m.Body.Statements)
	e.result = savedResult
	e.indent--
	e.line("}")
}

// emitStaticMethodHoist renders a static method as a module-level function
// named Get{Class}{Method}, collapsing a leading "Get" on the source method
// name to avoid doubling it (spec §4.5 artifact 4). The function has no
// receiver, so this.field/ClassName.field references inside its body resolve
// through classContext.staticVars rather than the normal receiver path.
func (e *Emitter) emitStaticMethodHoist(className string, m *ir.Method) {
	methodName := strings.TrimPrefix(strcase.ToCamel(m.Name), "Get")
	funcName := "Get" + className + methodName
	sig := e.renderSignature(m.Params, m.ReturnType, m.IsAsync, m.Body)
	e.line("func %s(%s) %s {", funcName, sig.params, sig.results)
	e.indent++
	savedResult := e.result
	e.result = sig.shape
	e.emitDefaultGuards(m.Params, m.Defaults)
	e.emitStmts(m.Body.Statements)
	e.result = savedResult
	e.indent--
	e.line("}")
}

// emitInterfaceDecl implements the three interface-declaration cases of
// §4.5: a lone index signature becomes a map type alias, any function-typed
// property makes the whole declaration a Go interface, and a pure data shape
// becomes a struct.
func (e *Emitter) emitInterfaceDecl(n *ir.InterfaceDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)

	if n.IndexSignature != nil && (len(n.Properties) == 0 || (len(n.Properties) == 1 && n.Properties[0].Name == "[index]")) {
		keyType := e.useType(n.IndexSignature.KeyType)
		valType := e.useType(n.IndexSignature.ValueType)
		e.line("type %s = map[%s]%s", name, keyType, valType)
		return
	}

	hasMethod := false
	for _, p := range n.Properties {
		if p.Type.Kind == types.KindFunction {
			hasMethod = true
			break
		}
	}

	if hasMethod {
		e.line("type %s interface {", name)
		e.indent++
		for _, ext := range n.Extends {
			if ext.Kind == types.KindReference {
				e.line("%s", strcase.ToCamel(ext.RefName))
			}
		}
		for _, p := range n.Properties {
			if p.Type.Kind != types.KindFunction {
				continue
			}
			params := make([]string, len(p.Type.Params))
			for i, pr := range p.Type.Params {
				params[i] = e.useType(pr.Type)
			}
			ret := ""
			if p.Type.Return != nil && p.Type.Return.Primitive != types.PrimVoid {
				ret = " " + e.useType(*p.Type.Return)
			}
			e.line("%s(%s)%s", strcase.ToCamel(p.Name), strings.Join(params, ", "), ret)
		}
		e.indent--
		e.line("}")
		return
	}

	e.line("type %s struct {", name)
	e.indent++
	for _, p := range n.Properties {
		goType := e.useType(p.Type)
		if p.Optional && e.cfg.NullabilityStrategy == config.NullabilityPointer && !strings.HasPrefix(goType, "*") {
			goType = "*" + goType
		}
		e.line("%s %s", strcase.ToCamel(p.Name), goType)
	}
	e.indent--
	e.line("}")
}

func (e *Emitter) emitTypeAliasDecl(n *ir.TypeAliasDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)
	goType := e.useType(n.Body)
	e.line("type %s = %s", name, goType)
}

// emitEnumDecl implements the two enum representations of §4.5: a
// string-typed const block when any member has a string initializer
// (Heterogeneous), otherwise an iota-based numeric const block.
func (e *Emitter) emitEnumDecl(n *ir.EnumDecl) {
	exported := n.Modifiers.Has(types.Export)
	name := goName(n.Name, exported)

	if n.Heterogeneous {
		e.line("type %s string", name)
		e.raw("\n")
		e.line("const (")
		e.indent++
		for _, m := range n.Members {
			memberName := name + strcase.ToCamel(m.Name)
			value := `"` + m.Name + `"`
			if m.Value != nil {
				value = e.emitExpr(m.Value)
			}
			e.line("%s %s = %s", memberName, name, value)
		}
		e.indent--
		e.line(")")
		return
	}

	e.line("type %s int", name)
	e.raw("\n")
	e.line("const (")
	e.indent++
	for i, m := range n.Members {
		memberName := name + strcase.ToCamel(m.Name)
		if i == 0 {
			e.line("%s %s = iota", memberName, name)
		} else {
			e.line("%s", memberName)
		}
	}
	e.indent--
	e.line(")")
}
