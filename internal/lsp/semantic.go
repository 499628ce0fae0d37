package lsp

import (
	"tsgoc/internal/ast"
	"tsgoc/internal/types"
)

// SemanticToken represents a single LSP semantic token entry. Line and
// StartChar are 0-based positions; TokenType indexes SemanticTokenTypes and
// TokenModifiers is a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(mod *ast.Module) []SemanticToken {
	var tokens []SemanticToken
	if mod == nil {
		return tokens
	}
	for _, decl := range mod.Statements {
		tokens = append(tokens, walkDecl(decl)...)
	}
	return tokens
}

func walkDecl(decl ast.Decl) []SemanticToken {
	switch n := decl.(type) {
	case *ast.VariableDecl:
		return walkVariableDecl(n)
	case *ast.FunctionDecl:
		return walkFunctionDecl(n)
	case *ast.ClassDecl:
		return walkClassDecl(n)
	case *ast.EnumDecl:
		return walkEnumDecl(n)
	case *ast.InterfaceDecl:
		return walkTypeParams(n.TypeParams)
	case *ast.TypeAliasDecl:
		return makeToken(n.Loc(), n.Name, "type", 1)
	default:
		return nil
	}
}

func walkVariableDecl(v *ast.VariableDecl) []SemanticToken {
	mod := 0
	if v.IsConst {
		mod = 1 << indexOf("readonly", SemanticTokenModifiers)
	}
	tokens := makeToken(v.Loc(), v.Name, "variable", mod|declarationBit())
	if v.Type != nil {
		tokens = append(tokens, walkType(*v.Type)...)
	}
	if v.Initializer != nil {
		tokens = append(tokens, walkExpr(v.Initializer)...)
	}
	return tokens
}

func walkFunctionDecl(f *ast.FunctionDecl) []SemanticToken {
	tokens := makeToken(f.Loc(), f.Name, "function", declarationBit())
	tokens = append(tokens, walkParams(f.Params)...)
	if f.ReturnType != nil {
		tokens = append(tokens, walkType(*f.ReturnType)...)
	}
	if f.Body != nil {
		tokens = append(tokens, walkBlock(f.Body)...)
	}
	return tokens
}

func walkClassDecl(c *ast.ClassDecl) []SemanticToken {
	tokens := makeToken(c.Loc(), c.Name, "type", declarationBit())
	for _, member := range c.Members {
		switch m := member.(type) {
		case *ast.PropertyMember:
			tokens = append(tokens, makeToken(m.Loc(), m.Name, "property", declarationBit())...)
			if m.Type != nil {
				tokens = append(tokens, walkType(*m.Type)...)
			}
		case *ast.MethodMember:
			tokens = append(tokens, makeToken(m.Loc(), m.Name, "function", declarationBit())...)
			tokens = append(tokens, walkParams(m.Params)...)
			if m.ReturnType != nil {
				tokens = append(tokens, walkType(*m.ReturnType)...)
			}
			if m.Body != nil {
				tokens = append(tokens, walkBlock(m.Body)...)
			}
		}
	}
	return tokens
}

func walkEnumDecl(e *ast.EnumDecl) []SemanticToken {
	tokens := makeToken(e.Loc(), e.Name, "type", declarationBit())
	for _, m := range e.Members {
		tokens = append(tokens, makeToken(m.Loc(), m.Name, "property", declarationBit())...)
	}
	return tokens
}

func walkParams(params []types.Parameter) []SemanticToken {
	var tokens []SemanticToken
	for _, p := range params {
		tokens = append(tokens, makeToken(types.SourceLocation{}, p.Name, "parameter", 0)...)
		tokens = append(tokens, walkType(p.Type)...)
	}
	return tokens
}

func walkTypeParams(params []types.TypeParameter) []SemanticToken {
	var tokens []SemanticToken
	for _, p := range params {
		tokens = append(tokens, makeToken(types.SourceLocation{}, p.Name, "typeParameter", 0)...)
	}
	return tokens
}

func walkType(t types.Type) []SemanticToken {
	if t.Kind == types.KindReference {
		return makeToken(types.SourceLocation{}, t.RefName, "type", 0)
	}
	return nil
}

func walkBlock(b *ast.BlockStmt) []SemanticToken {
	var tokens []SemanticToken
	if b == nil {
		return tokens
	}
	for _, s := range b.Statements {
		tokens = append(tokens, walkStmt(s)...)
	}
	return tokens
}

func walkStmt(stmt ast.Stmt) []SemanticToken {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		return walkVariableDecl(s)
	case *ast.ExprStmt:
		return walkExpr(s.Expr)
	case *ast.ReturnStmt:
		return walkExpr(s.Value)
	case *ast.ThrowStmt:
		return walkExpr(s.Value)
	case *ast.IfStmt:
		tokens := walkExpr(s.Cond)
		tokens = append(tokens, walkStmt(s.Then)...)
		if s.Else != nil {
			tokens = append(tokens, walkStmt(s.Else)...)
		}
		return tokens
	case *ast.WhileStmt:
		return append(walkExpr(s.Cond), walkStmt(s.Body)...)
	case *ast.BlockStmt:
		return walkBlock(s)
	default:
		return nil
	}
}

func walkExpr(expr ast.Expr) []SemanticToken {
	if expr == nil {
		return nil
	}
	switch v := expr.(type) {
	case *ast.IdentExpr:
		return makeToken(v.Loc(), v.Name, "variable", 0)
	case *ast.CallExpr:
		tokens := walkExpr(v.Callee)
		for _, a := range v.Args {
			tokens = append(tokens, walkExpr(a)...)
		}
		return tokens
	case *ast.MemberExpr:
		tokens := walkExpr(v.Object)
		tokens = append(tokens, makeToken(v.Loc(), v.Property, "property", 0)...)
		return tokens
	case *ast.BinaryExpr:
		return append(walkExpr(v.Left), walkExpr(v.Right)...)
	case *ast.UnaryExpr:
		return walkExpr(v.Arg)
	case *ast.AssignExpr:
		return append(walkExpr(v.Left), walkExpr(v.Right)...)
	case *ast.ConditionalExpr:
		tokens := walkExpr(v.Cond)
		tokens = append(tokens, walkExpr(v.Then)...)
		tokens = append(tokens, walkExpr(v.Else)...)
		return tokens
	default:
		return nil
	}
}

func declarationBit() int {
	return 1 << indexOf("declaration", SemanticTokenModifiers)
}

// makeToken builds a one-entry SemanticToken slice for a located name,
// skipping unlocated or empty names (params and inline type references built
// by fixture carry no real position, since the fixture grammar's TypeRef/
// Param tokens are consumed before a dedicated node with its own Location
// would be built for them).
func makeToken(loc types.SourceLocation, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" || loc.IsSynthesized() {
		return nil
	}
	length := loc.EndColumn - loc.StartColumn
	if length <= 0 {
		length = len(value)
	}
	return []SemanticToken{{
		Line:           uint32(loc.StartLine - 1),
		StartChar:      uint32(loc.StartColumn - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier,
	}}
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
