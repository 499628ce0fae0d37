package fixture

import "github.com/alecthomas/participle/v2/lexer"

// SourceLexer tokenizes the small source-language subset fixture understands:
// identifiers, numbers, strings, and the handful of keywords/operators the
// grammar in grammar.go references directly. It is not meant to tokenize the
// full surface this transpiler maps types for (spec §1) — only enough of it
// to build test fixtures and drive the REPL without handwriting ast.Module
// literals everywhere.
var SourceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"String", `"(\\.|[^"])*"|'(\\.|[^'])*'`, nil},
		{"Number", `[0-9]+(\.[0-9]+)?`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Operator", `(===|!==|==|!=|<=|>=|&&|\|\||\+\+|--|\+=|-=|=>|[-+*/%=!<>])`, nil},
		{"Punctuation", `[{}()\[\].,:;]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
