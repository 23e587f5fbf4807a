package surface

import (
	"strings"
	"testing"

	"holcore/logging"
)

func init() {
	logging.Initialize("silent")
}

func lexAll(src string) []*Token {
	ctx := &logging.Context{FilePath: "<test>"}
	lex := NewLexer(strings.NewReader(src), ctx)
	var toks []*Token
	for {
		tk := lex.Next()
		toks = append(toks, tk)
		if tk.Kind == TokEOF {
			return toks
		}
	}
}

func kinds(toks []*Token) []int {
	out := make([]int, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func sameKinds(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestLexKeywordsVsIdentifiers(t *testing.T) {
	toks := lexAll("static def rule foo")
	want := []int{TokStatic, TokDef, TokRule, TokIdent, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}

func TestLexArrowsDoNotCollide(t *testing.T) {
	toks := lexAll("-> -->")
	want := []int{TokArrowFun, TokArrowRule, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}

func TestLexColonVsColonEq(t *testing.T) {
	toks := lexAll(": :=")
	want := []int{TokColon, TokColonEq, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}

func TestLexUnderscoreIsWildcardNotIdent(t *testing.T) {
	toks := lexAll("_")
	if toks[0].Kind != TokUnderscore {
		t.Fatalf("expected '_' to lex as TokUnderscore, got kind %d", toks[0].Kind)
	}
}

func TestLexCheckDirectives(t *testing.T) {
	toks := lexAll("#check #check-fail")
	want := []int{TokCheck, TokCheckFail, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}

func TestLexLineCommentSkipped(t *testing.T) {
	toks := lexAll("a // comment\nb")
	want := []int{TokIdent, TokIdent, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
	if toks[0].Value != "a" || toks[1].Value != "b" {
		t.Fatalf("expected values a, b, got %q, %q", toks[0].Value, toks[1].Value)
	}
}

func TestLexLambdaAndPiUnicodeAndAscii(t *testing.T) {
	toks := lexAll(`\ λ Π Pi`)
	want := []int{TokLambda, TokLambda, TokPi, TokPi, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}

func TestLexDotTerminatesToken(t *testing.T) {
	toks := lexAll("a.")
	want := []int{TokIdent, TokDot, TokEOF}
	if !sameKinds(kinds(toks), want) {
		t.Fatalf("got kinds %v, want %v", kinds(toks), want)
	}
}
