// Package surface implements the dk-like surface syntax SPEC_FULL.md §2.2
// defines for holcore theory files: a scanner (token.go, lexer.go) and a
// hand-rolled recursive-descent parser (ast.go, parser.go) producing an AST
// the loader package translates into term.Term values and Signature
// entries. The scanning style is grounded on the teacher's own hand-written
// scanner (chai/syntax/scanner.go): a rune-at-a-time reader over a
// bufio.Reader with a strings.Builder token accumulator and line/column
// tracking. The grammar itself has no indentation sensitivity, so none of
// the teacher's INDENT/DEDENT/NEWLINE machinery or its LALR parsing-table
// generator (chai/syntax/ptable_gen.go, bnf_converter.go) carries over:
// statements are terminated by '.', exactly like the Dedukti-family
// languages this surface syntax imitates. A binder's own '.' separator never
// collides with a statement terminator because the recursive-descent parser
// consumes it at the nesting level that is expecting it, before control ever
// returns to the statement loop.
package surface

// Token is a single lexical unit read from a theory file.
type Token struct {
	Kind  int
	Value string
	Line  int
	Col   int
}

// Token kinds.
const (
	TokEOF = iota
	TokIdent

	TokStatic
	TokDef
	TokRule
	TokCheck
	TokCheckFail

	TokDot
	TokColon
	TokColonEq
	TokEqEq      // == (#check equality)
	TokArrowRule // --> (rewrite rule)
	TokArrowFun  // -> (non-dependent product sugar)
	TokLParen
	TokRParen
	TokLambda // λ or backslash
	TokPi     // Π or the keyword "Pi"
	TokUnderscore

	TokType
	TokKind
)

var keywords = map[string]int{
	"static": TokStatic,
	"def":    TokDef,
	"rule":   TokRule,
	"Type":   TokType,
	"Kind":   TokKind,
	"Pi":     TokPi,
}
