// Package lowering turns a typed AST (internal/ast) into the semantic IR
// (internal/ir) that the optimizer and emitter consume, applying the
// semantic rewrites spec §4.1 describes: try/catch and async/await are
// preserved verbatim here (the emitter decides their target shape); classes,
// interfaces, and enums are desugared toward their IR shape now.
package lowering

import (
	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/errors"
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

// Lowerer holds the per-module state lowering accumulates: the diagnostic
// bag unsupported constructs are reported into, and the name set holding
// every top-level declared name (invariant 3). Synthesized names (tuple
// records, union variants) are not minted through this set.
type Lowerer struct {
	cfg   config.Strategy
	bag   *errors.Bag
	Names *ir.NameSet
}

// New returns a Lowerer configured with cfg.
func New(cfg config.Strategy) *Lowerer {
	return &Lowerer{cfg: cfg, bag: errors.NewBag(), Names: ir.NewNameSet()}
}

// Lower lowers one typed-AST module to IR under cfg, returning the resulting
// module, its reserved name set, and any diagnostics raised along the way.
func Lower(m *ast.Module, cfg config.Strategy) (*ir.Module, *ir.NameSet, *errors.Bag) {
	l := New(cfg)
	mod := l.lowerModule(m)
	return mod, l.Names, l.bag
}

func (l *Lowerer) lowerModule(m *ast.Module) *ir.Module {
	for _, d := range m.Statements {
		l.Names.Reserve(declName(d))
	}

	imports := make([]*ir.Import, 0, len(m.Imports))
	for _, im := range m.Imports {
		imports = append(imports, l.lowerImport(im))
	}

	stmts := make([]ir.Decl, 0, len(m.Statements))
	for _, d := range m.Statements {
		stmts = append(stmts, l.lowerDecl(d))
	}

	exports := make([]*ir.Export, 0, len(m.Exports))
	for _, e := range m.Exports {
		exports = append(exports, l.lowerExport(e))
	}

	return &ir.Module{
		Name:       m.Name,
		Path:       m.Path,
		Imports:    imports,
		Statements: stmts,
		Exports:    exports,
	}
}

func declName(d ast.Decl) string {
	switch n := d.(type) {
	case *ast.VariableDecl:
		return n.Name
	case *ast.FunctionDecl:
		return n.Name
	case *ast.ClassDecl:
		return n.Name
	case *ast.InterfaceDecl:
		return n.Name
	case *ast.TypeAliasDecl:
		return n.Name
	case *ast.EnumDecl:
		return n.Name
	default:
		return ""
	}
}

func (l *Lowerer) lowerImport(i *ast.Import) *ir.Import {
	specs := make([]ir.ImportSpec, 0, len(i.Specifiers))
	for _, s := range i.Specifiers {
		specs = append(specs, ir.ImportSpec{
			Imported:    s.Imported,
			Local:       s.Local,
			IsDefault:   s.IsDefault,
			IsNamespace: s.IsNamespace,
		})
	}
	return &ir.Import{Source: i.Source, Specifiers: specs}
}

func (l *Lowerer) lowerExport(e *ast.Export) *ir.Export {
	out := &ir.Export{
		Source:    e.Source,
		IsDefault: e.IsDefault,
	}
	if e.Decl != nil {
		out.Decl = l.lowerDecl(e.Decl)
	}
	for _, s := range e.Specifiers {
		out.Specifiers = append(out.Specifiers, ir.ExportSpec{Local: s.Local, Exported: s.Exported})
	}
	return out
}

// placeholder synthesizes the minimal IR node the spec requires for any
// construct lowering cannot handle, reporting diagnostic into the bag rather
// than aborting (spec §4.1, "Failure modes").
func (l *Lowerer) placeholder(loc types.SourceLocation, diagnostic errors.Diagnostic) *ir.Identifier {
	l.bag.Add(diagnostic)
	return ir.NewIdentifier(loc, "unknown", nil)
}
