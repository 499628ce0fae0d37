package fixture

import "github.com/alecthomas/participle/v2/lexer"

// Program, and everything it references, is participle's parse tree for the
// small source-language subset fixture accepts: `let`/`const` bindings,
// `function` declarations, the usual control-flow statements, and a
// precedence-flattened expression grammar (mirroring the teacher grammar's
// own BinaryExpr/Ops-list shape rather than a full precedence-climbing
// parser). It exists to save test authors and REPL users from hand-writing
// ast.Module composite literals, not to parse the full language this
// transpiler maps types for.
type Program struct {
	Decls []*Decl `@@*`
}

type Decl struct {
	Pos, EndPos lexer.Position
	VarDecl     *VarDecl  `  @@`
	FuncDecl    *FuncDecl `| @@`
}

type VarDecl struct {
	Pos, EndPos lexer.Position
	Const       bool     `(   @"const"`
	Let         bool     ` |  @"let" )`
	Name        string   `@Ident`
	Type        *TypeRef `[ ":" @@ ]`
	Value       *Expr    `"=" @@ ";"`
}

type FuncDecl struct {
	Pos, EndPos lexer.Position
	Export      bool    `[ @"export" ]`
	Async       bool    `[ @"async" ]`
	Name        string  `"function" @Ident "("`
	Params      []*Param `[ @@ { "," @@ } ] ")"`
	Return      *TypeRef `[ ":" @@ ]`
	Body        *Block   `@@`
}

type Param struct {
	Pos, EndPos lexer.Position
	Name        string   `@Ident`
	Type        *TypeRef `[ ":" @@ ]`
}

// TypeRef is a bare name reference; fixture has no use for generics, unions,
// or object-literal type shapes, so build.go maps the name straight onto a
// primitive or a types.NewReference.
type TypeRef struct {
	Pos, EndPos lexer.Position
	Name        string `@Ident`
}

type Block struct {
	Pos, EndPos lexer.Position
	Statements  []*Stmt `"{" @@* "}"`
}

type Stmt struct {
	Pos, EndPos lexer.Position
	VarDecl     *VarDecl    `  @@`
	Return      *ReturnStmt `| @@`
	If          *IfStmt     `| @@`
	While       *WhileStmt  `| @@`
	Throw       *ThrowStmt  `| @@`
	Block       *Block      `| @@`
	ExprStmt    *ExprStmt   `| @@`
}

type ReturnStmt struct {
	Pos, EndPos lexer.Position
	Value       *Expr `"return" [ @@ ] ";"`
}

type ThrowStmt struct {
	Pos, EndPos lexer.Position
	Value       *Expr `"throw" @@ ";"`
}

type IfStmt struct {
	Pos, EndPos lexer.Position
	Cond        *Expr  `"if" "(" @@ ")"`
	Then        *Block `@@`
	Else        *Block `[ "else" @@ ]`
}

type WhileStmt struct {
	Pos, EndPos lexer.Position
	Cond        *Expr  `"while" "(" @@ ")"`
	Body        *Block `@@`
}

type ExprStmt struct {
	Pos, EndPos lexer.Position
	Expr        *Expr `@@ ";"`
}

// Expr is the only production with an assignment tail, so `a = b = c` still
// parses (right-associatively) without a dedicated AssignExpr alternative
// competing with BinaryExpr for the `=` token.
type Expr struct {
	Pos, EndPos lexer.Position
	Left        *BinaryExpr `@@`
	Assign      *AssignTail `[ @@ ]`
}

type AssignTail struct {
	Pos, EndPos lexer.Position
	Op          string `@("=" | "+=" | "-=")`
	Value       *Expr  `@@`
}

type BinaryExpr struct {
	Pos, EndPos lexer.Position
	Left        *UnaryExpr `@@`
	Ops         []*BinOp   `{ @@ }`
}

type BinOp struct {
	Pos, EndPos lexer.Position
	Operator    string     `@("||" | "&&" | "===" | "!==" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "%")`
	Right       *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos, EndPos lexer.Position
	Operator    string       `[ @("!" | "-" | "typeof") ]`
	Value       *PostfixExpr `@@`
}

type PostfixExpr struct {
	Pos, EndPos lexer.Position
	Primary     *PrimaryExpr `@@`
	Suffix      []*PostfixOp `{ @@ }`
}

type PostfixOp struct {
	Pos, EndPos lexer.Position
	Member      string      `(  "." @Ident`
	Call        *CallSuffix ` | @@ )`
}

type CallSuffix struct {
	Pos, EndPos lexer.Position
	Args        []*Expr `"(" [ @@ { "," @@ } ] ")"`
}

type PrimaryExpr struct {
	Pos, EndPos lexer.Position
	Number      *string `  @Number`
	String      *string `| @String`
	True        bool    `| @"true"`
	False       bool    `| @"false"`
	Null        bool    `| @"null"`
	Ident       *string `| @Ident`
	Paren       *Expr   `| "(" @@ ")"`
}
