package ir

// Visitor is dispatched to by every IR node's Accept method. It has exactly
// one method per NodeKind; adding a node kind means adding a method here,
// which breaks every existing implementation at compile time until it is
// updated — that is the exhaustiveness contract in invariant 2. There is
// deliberately no embeddable no-op base: a default implementation would let
// old visitors silently ignore new kinds, which is the failure mode this
// contract exists to prevent.
type Visitor interface {
	VisitModule(*Module)
	VisitImport(*Import)
	VisitExport(*Export)

	VisitVariableDecl(*VariableDecl)
	VisitFunctionDecl(*FunctionDecl)
	VisitClassDecl(*ClassDecl)
	VisitInterfaceDecl(*InterfaceDecl)
	VisitTypeAliasDecl(*TypeAliasDecl)
	VisitEnumDecl(*EnumDecl)

	VisitProperty(*Property)
	VisitMethod(*Method)
	VisitEnumMember(*EnumMember)

	VisitBlock(*Block)
	VisitExpressionStmt(*ExpressionStmt)
	VisitReturn(*Return)
	VisitIf(*If)
	VisitWhile(*While)
	VisitFor(*For)
	VisitForOf(*ForOf)
	VisitTry(*Try)
	VisitCatch(*Catch)
	VisitThrow(*Throw)
	VisitSwitch(*Switch)
	VisitCase(*Case)

	VisitIdentifier(*Identifier)
	VisitLiteral(*Literal)
	VisitArray(*Array)
	VisitObject(*Object)
	VisitObjectProperty(*ObjectProperty)
	VisitFunction(*Function)
	VisitArrow(*Arrow)
	VisitCall(*Call)
	VisitMember(*Member)
	VisitNew(*New)
	VisitSuper(*Super)
	VisitBinary(*Binary)
	VisitUnary(*Unary)
	VisitAssignment(*Assignment)
	VisitConditional(*Conditional)
	VisitAwait(*Await)
	VisitSpread(*Spread)
	VisitTemplateLiteral(*TemplateLiteral)
}
