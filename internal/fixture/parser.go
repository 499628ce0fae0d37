// Package fixture is a minimal frontend for a small source-language subset,
// used to build ast.Module values for tests and the REPL without
// hand-writing composite literals for every node. It is explicitly not a
// production frontend (spec §6): no type inference, no diagnostics beyond
// syntax errors, and no coverage of the full surface internal/typemapper and
// internal/lowering otherwise handle.
package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"tsgoc/internal/ast"
)

var sourceParser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(SourceLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("fixture: failed to build parser: %w", err))
	}
	return p
}

// ParseFile reads path and parses it into an ast.Module.
func ParseFile(path string) (*ast.Module, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source (named sourceName for diagnostics) into an
// ast.Module.
func ParseSource(sourceName, source string) (*ast.Module, error) {
	program, err := sourceParser.ParseString(sourceName, source)
	if err != nil {
		reportParseError(source, err)
		return nil, err
	}
	return Build(sourceName, program), nil
}

// reportParseError prints a caret-style syntax error, matching the caret
// snippets internal/errors.Reporter renders for semantic diagnostics so a
// fixture syntax error and a lowering/emission diagnostic look the same to
// whoever is reading the terminal.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("fixture: unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("fixture: syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	color.Red("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
