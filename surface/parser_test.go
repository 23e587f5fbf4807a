package surface

import (
	"strings"
	"testing"

	"holcore/logging"
)

func parseSource(src string) *File {
	ctx := &logging.Context{FilePath: "<test>"}
	lex := NewLexer(strings.NewReader(src), ctx)
	p := NewParser(lex, ctx)
	return p.ParseFile()
}

func TestParseStaticStmt(t *testing.T) {
	f := parseSource("static Set : Type.")
	if len(f.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(f.Statements))
	}
	s, ok := f.Statements[0].(*StaticStmt)
	if !ok {
		t.Fatalf("expected *StaticStmt, got %T", f.Statements[0])
	}
	if s.Name != "Set" {
		t.Fatalf("expected name Set, got %s", s.Name)
	}
	if _, ok := s.Type.(*SortExpr); !ok {
		t.Fatalf("expected Type to parse as a sort, got %T", s.Type)
	}
}

func TestParseDefWithSugarBody(t *testing.T) {
	f := parseSource("def id : Type := x.")
	d, ok := f.Statements[0].(*DefStmt)
	if !ok {
		t.Fatalf("expected *DefStmt, got %T", f.Statements[0])
	}
	if d.Body == nil {
		t.Fatalf("expected a sugared body")
	}
	ident, ok := d.Body.(*Ident)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected body to be ident x, got %#v", d.Body)
	}
}

func TestParseArrowSugarIsRightAssociative(t *testing.T) {
	f := parseSource("static f : A -> B -> C.")
	s := f.Statements[0].(*StaticStmt)

	outer, ok := s.Type.(*PiExpr)
	if !ok {
		t.Fatalf("expected A -> B -> C to parse as nested Pi, got %T", s.Type)
	}
	inner, ok := outer.Body.(*PiExpr)
	if !ok {
		t.Fatalf("expected the tail to itself be a Pi (right associativity), got %T", outer.Body)
	}
	if _, ok := inner.Body.(*Ident); !ok {
		t.Fatalf("expected innermost body to be ident C, got %T", inner.Body)
	}
}

func TestParseRuleStmt(t *testing.T) {
	f := parseSource("rule proof (imp p q) --> proof p -> proof q.")
	r, ok := f.Statements[0].(*RuleStmt)
	if !ok {
		t.Fatalf("expected *RuleStmt, got %T", f.Statements[0])
	}
	if _, ok := r.LHS.(*AppExpr); !ok {
		t.Fatalf("expected LHS to parse as application, got %T", r.LHS)
	}
}

func TestParseCheckUsesEqEqNotColon(t *testing.T) {
	f := parseSource("#check proof (imp A B) == (proof A -> proof B).")
	c, ok := f.Statements[0].(*CheckStmt)
	if !ok {
		t.Fatalf("expected *CheckStmt, got %T", f.Statements[0])
	}
	if !c.ExpectOK {
		t.Fatalf("#check should expect success")
	}
}

func TestParseCheckFail(t *testing.T) {
	f := parseSource("#check-fail a == b.")
	c, ok := f.Statements[0].(*CheckStmt)
	if !ok {
		t.Fatalf("expected *CheckStmt, got %T", f.Statements[0])
	}
	if c.ExpectOK {
		t.Fatalf("#check-fail should expect failure")
	}
}

func TestParseLambdaAndPiKeywords(t *testing.T) {
	f := parseSource(`def f : Type := \x : Type . x.`)
	d := f.Statements[0].(*DefStmt)
	lam, ok := d.Body.(*LambdaExpr)
	if !ok {
		t.Fatalf("expected backslash to introduce a LambdaExpr, got %T", d.Body)
	}
	if lam.Name != "x" {
		t.Fatalf("expected bound name x, got %s", lam.Name)
	}

	f2 := parseSource("static g : Pi x : Type . Type.")
	s := f2.Statements[0].(*StaticStmt)
	if _, ok := s.Type.(*PiExpr); !ok {
		t.Fatalf("expected the Pi keyword to introduce a PiExpr, got %T", s.Type)
	}
}

func TestParseMultipleStatementsDotDoesNotLeakAcrossBinders(t *testing.T) {
	f := parseSource(`
def f : Type := \x : Type . x.
static a : Type.
`)
	if len(f.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(f.Statements))
	}
	if _, ok := f.Statements[1].(*StaticStmt); !ok {
		t.Fatalf("expected second statement to be a StaticStmt, got %T", f.Statements[1])
	}
}

func TestParseWildcardInApplication(t *testing.T) {
	f := parseSource("rule f _ --> a.")
	r := f.Statements[0].(*RuleStmt)
	app, ok := r.LHS.(*AppExpr)
	if !ok {
		t.Fatalf("expected application, got %T", r.LHS)
	}
	if _, ok := app.Arg.(*Underscore); !ok {
		t.Fatalf("expected wildcard argument, got %T", app.Arg)
	}
}

func TestParseLineComment(t *testing.T) {
	f := parseSource(`
// a comment
static a : Type. // trailing comment
`)
	if len(f.Statements) != 1 {
		t.Fatalf("expected comments to be skipped, got %d statements", len(f.Statements))
	}
}
