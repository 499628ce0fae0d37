// Package emitter walks a lowered, optimized IR module and produces a
// single Go source string, the set of required standard-library packages,
// and (optionally) a source map (spec §4.4–§4.6).
package emitter

import (
	"fmt"
	"sort"
	"strings"

	"tsgoc/internal/config"
	"tsgoc/internal/ir"
	"tsgoc/internal/runtimelib"
	"tsgoc/internal/sourcemap"
	"tsgoc/internal/typemapper"
	"tsgoc/internal/types"
)

// Result is the emitter's output for one module (spec §6).
type Result struct {
	Source    string
	Imports   []string
	SourceMap *sourcemap.Map

	// Runtime is the companion runtime-helper source, populated only when
	// cfg.GenerateRuntime is set (spec §2 component F).
	Runtime string
}

// classContext tracks the class currently being emitted, so member access
// and `this` can be rewritten correctly inside its methods (spec §4.4: "a
// current-class context ... a current method receiver-name for `this`
// rewrites").
type classContext struct {
	name       string
	private    map[string]bool
	fieldTypes map[string]types.Type
	receiver   string
	staticVars map[string]string
}

// Emitter holds the per-module state spec §4.4 requires: an indentation
// counter, an imports set, a tuple-type interning table doubling as the
// generated-tuple-types set (a definition is interned the moment it's
// written, so "interned" and "generated" are the same event here), and a
// current-class context.
type Emitter struct {
	cfg config.Strategy
	out *strings.Builder

	indent  int
	imports map[string]bool

	interned map[string]bool

	class *classContext

	lastKind string

	result resultShape

	genLine int
	smb     *sourcemap.Builder
}

// resultShape tracks the result arity of the function body currently being
// emitted, so `return`/`throw` statements know whether a trailing error (or
// zero value alongside it) belongs in the rewritten statement.
type resultShape struct {
	hasValue bool
	hasError bool
}

// EmitModule renders m to Go source under cfg (spec §4.4's general
// contract). Each call starts from a fresh Emitter, matching "reset()
// clears indentation, imports, and tuple-intern tables at the start of each
// module" — the state never needs an explicit reset method because nothing
// in this package is reused across modules.
func EmitModule(m *ir.Module, cfg config.Strategy) Result {
	e := &Emitter{
		cfg:      cfg,
		out:      &strings.Builder{},
		imports:  map[string]bool{},
		interned: map[string]bool{},
		genLine:  1,
	}

	var smMap *sourcemap.Map
	if cfg.SourceMap {
		smMap = sourcemap.New(m.Path, "")
		e.smb = sourcemap.NewBuilder(smMap)
	}

	decls, initStmts := splitModuleInit(m.Statements)

	for _, d := range decls {
		e.emitTopLevelDecl(d)
	}
	e.emitModuleInit(initStmts)

	header := e.renderHeader()
	if smMap != nil {
		headerLines := strings.Count(header, "\n")
		for i := range smMap.Mappings {
			smMap.Mappings[i].GeneratedLine += headerLines
		}
	}

	var runtimeSrc string
	if cfg.GenerateRuntime {
		runtimeSrc = runtimelib.Generate(cfg)
	}

	return Result{
		Source:    header + e.out.String(),
		Imports:   e.sortedImports(),
		SourceMap: smMap,
		Runtime:   runtimeSrc,
	}
}

func (e *Emitter) renderHeader() string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	imports := e.sortedImports()
	switch len(imports) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "import %q\n\n", imports[0])
	default:
		b.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		b.WriteString(")\n\n")
	}
	return b.String()
}

func (e *Emitter) sortedImports() []string {
	out := make([]string, 0, len(e.imports))
	for imp := range e.imports {
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

func (e *Emitter) requireImport(pkg string) { e.imports[pkg] = true }

// emitTopLevelDecl applies the blank-line policy of spec §4.4 between
// consecutive top-level items: a blank line whenever the declaration kind
// changes, and always around functions and types. Runs of simple variable
// declarations of the same category emit without a separating blank line.
func (e *Emitter) emitTopLevelDecl(d ir.Decl) {
	kind := topLevelKind(d)
	if e.lastKind != "" {
		if e.lastKind != kind || kind == "func" || kind == "type" {
			e.out.WriteString("\n")
			e.genLine++
		}
	}
	e.lastKind = kind
	if e.smb != nil {
		loc := d.Loc()
		if !loc.IsSynthesized() {
			e.smb.Add(e.genLine, 0, loc.StartLine, loc.StartColumn, "")
		}
	}
	e.emitDecl(d)
}

// splitModuleInit separates ordinary top-level declarations from bare
// top-level expression statements (spec §9, "Global state ... init(...)
// equivalents"). A module-level assignment expression-statement is dropped
// entirely rather than folded into init() (spec §4.4); every other
// expression statement survives into the synthesized init() body, in
// source order.
func splitModuleInit(stmts []ir.Decl) (decls []ir.Decl, initStmts []ir.Stmt) {
	for _, d := range stmts {
		es, ok := d.(*ir.ExpressionStmt)
		if !ok {
			decls = append(decls, d)
			continue
		}
		if _, isAssign := es.Expr.(*ir.Assignment); isAssign {
			continue
		}
		initStmts = append(initStmts, es)
	}
	return decls, initStmts
}

// emitModuleInit renders every retained top-level expression statement as
// the body of a single package init() function, the Go equivalent of a
// module's top-level side-effectful statements (spec §9).
func (e *Emitter) emitModuleInit(stmts []ir.Stmt) {
	if len(stmts) == 0 {
		return
	}
	if e.lastKind != "" {
		e.out.WriteString("\n")
		e.genLine++
	}
	e.lastKind = "func"
	e.line("func init() {")
	e.indent++
	e.emitStmts(stmts)
	e.indent--
	e.line("}")
}

func topLevelKind(d ir.Decl) string {
	switch d.(type) {
	case *ir.VariableDecl:
		return "var"
	case *ir.FunctionDecl:
		return "func"
	case *ir.ClassDecl, *ir.InterfaceDecl, *ir.TypeAliasDecl, *ir.EnumDecl:
		return "type"
	default:
		return "other"
	}
}

// line writes one indented, newline-terminated line to the current output.
func (e *Emitter) line(format string, args ...any) {
	e.out.WriteString(strings.Repeat("\t", e.indent))
	fmt.Fprintf(e.out, format, args...)
	e.out.WriteString("\n")
	e.genLine++
}

func (e *Emitter) raw(s string) {
	e.out.WriteString(s)
	e.genLine += strings.Count(s, "\n")
}

// useType maps t under the emitter's strategy, emitting (and interning) any
// deferred definitions it depends on — tuple records, generated union
// types, intersection records — before returning its reference string. This
// is the single place nullable-aware call sites go through so a tuple
// definition is always written before its first use (spec §4.5, "Variable
// declarations": "Tuple-type initializers first emit the tuple's named
// record definition inline... then the variable itself").
func (e *Emitter) useType(t types.Type) string {
	r := typemapper.Map(t, e.cfg)
	e.emitDeferred(r.Deferred)
	e.recordImportsForType(t)
	return r.GoType
}

func (e *Emitter) emitDeferred(ds []typemapper.Deferred) {
	for _, d := range ds {
		if e.interned[d.Name] {
			continue
		}
		e.interned[d.Name] = true
		e.raw(d.Source)
		e.raw("\n\n")
	}
}

func (e *Emitter) recordImportsForType(t types.Type) {
	if t.Kind == types.KindReference && t.RefName == "Date" {
		e.requireImport("time")
	}
	if t.Kind == types.KindFunction && t.IsAsync {
		e.requireImport("context")
	}
}
