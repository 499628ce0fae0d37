package optimizer

import (
	"tsgoc/internal/ir"
	"tsgoc/internal/types"
)

// EliminateDeadCode implements spec §4.2's mandatory L1 pass: a top-level
// declaration is retained if its name is referenced from a retained
// declaration's body/initializer, or it carries the export modifier.
// Imports and exports are always retained regardless of use (spec §4.2b).
//
// Fixed point: a declaration kept alive only by another declaration that is
// itself dropped on a later iteration must also be dropped, so the pass
// keeps recomputing the used-set from the current retained list until
// nothing more is removed.
func EliminateDeadCode(m *ir.Module) *ir.Module {
	retained := m.Statements

	for {
		used := map[string]bool{}
		for _, d := range retained {
			for name := range ir.UsedNames(d) {
				used[name] = true
			}
		}

		next := make([]ir.Decl, 0, len(retained))
		for _, d := range retained {
			if declName(d) == "" || used[declName(d)] || isExported(d) {
				next = append(next, d)
			}
		}

		done := len(next) == len(retained)
		retained = next
		if done {
			break
		}
	}

	out := *m
	out.Statements = retained
	return &out
}

func declName(d ir.Decl) string {
	switch n := d.(type) {
	case *ir.VariableDecl:
		return n.Name
	case *ir.FunctionDecl:
		return n.Name
	case *ir.ClassDecl:
		return n.Name
	case *ir.InterfaceDecl:
		return n.Name
	case *ir.TypeAliasDecl:
		return n.Name
	case *ir.EnumDecl:
		return n.Name
	default:
		return ""
	}
}

func isExported(d ir.Decl) bool {
	switch n := d.(type) {
	case *ir.VariableDecl:
		return n.Modifiers.Has(types.Export)
	case *ir.FunctionDecl:
		return n.Modifiers.Has(types.Export)
	case *ir.ClassDecl:
		return n.Modifiers.Has(types.Export)
	case *ir.InterfaceDecl:
		return n.Modifiers.Has(types.Export)
	case *ir.TypeAliasDecl:
		return n.Modifiers.Has(types.Export)
	case *ir.EnumDecl:
		return n.Modifiers.Has(types.Export)
	default:
		return false
	}
}
