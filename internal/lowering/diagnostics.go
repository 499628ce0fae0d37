package lowering

import (
	"fmt"

	"tsgoc/internal/ast"
	"tsgoc/internal/errors"
)

// unsupportedStmtDiagnostic reports E1001 for a statement kind lowering has
// no rule for. Every ast.Stmt kind above is handled explicitly, so this only
// fires if the frontend hands over a kind this lowering predates.
func unsupportedStmtDiagnostic(s ast.Stmt) errors.Diagnostic {
	return errors.UnparseableInitializer(fmt.Sprintf("<statement kind %d>", s.Kind()), s.Loc())
}

// unsupportedExprDiagnostic reports E1001 for an expression kind lowering
// has no rule for.
func unsupportedExprDiagnostic(e ast.Expr) errors.Diagnostic {
	return errors.UnparseableInitializer(fmt.Sprintf("<expression kind %d>", e.Kind()), e.Loc())
}
