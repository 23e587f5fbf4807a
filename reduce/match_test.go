package reduce

import (
	"testing"

	"holcore/term"
)

// rewriteRule builds a one-argument rule `head x --> rhs(x)` where rhs is
// produced from the single pattern variable, for tests that only need a
// simple unary rewrite.
func rewriteRule(t *testing.T, head *term.Symb, rhs func(p *term.Var) term.Term) *term.Rule {
	t.Helper()
	p := term.NewVar("p")
	lhs, _ := term.BindMany([]*term.Var{p}, &term.Appl{Fun: head, Arg: p})
	rhsBinder, _ := term.BindMany([]*term.Var{p}, rhs(p))
	rule, err := term.NewRule(lhs, rhsBinder, 1)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}
	return rule
}

func TestMatchWildcardAcceptsAnything(t *testing.T) {
	f := symb("m", "f", arrowType(1), true)
	a := symb("m", "a", term.SortType, false)

	lhs, _ := term.BindMany(nil, &term.Appl{Fun: f, Arg: &term.Wildcard{}})
	rhs, _ := term.BindMany(nil, a)
	rule, err := term.NewRule(lhs, rhs, 1)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}
	if err := f.Sym.AddRule(rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}

	b := symb("m", "b", term.SortType, false)
	result := Whnf(&term.Appl{Fun: f, Arg: b})
	if !term.SameSymbol(result, a) {
		t.Fatalf("wildcard pattern should have matched any argument, got %s", term.Render(result))
	}
}

func TestMatchRepeatedPatternVariableRequiresEqual(t *testing.T) {
	f := symb("m", "f", arrowType(2), true)
	a := symb("m", "a", term.SortType, false)
	c := symb("m", "c", term.SortType, false)

	p := term.NewVar("p")
	lhs, _ := term.BindMany([]*term.Var{p}, &term.Appl{Fun: &term.Appl{Fun: f, Arg: p}, Arg: p})
	rhs, _ := term.BindMany([]*term.Var{p}, c)
	rule, err := term.NewRule(lhs, rhs, 2)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}
	if err := f.Sym.AddRule(rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}

	b := symb("m", "b", term.SortType, false)

	matching := &term.Appl{Fun: &term.Appl{Fun: f, Arg: a}, Arg: a}
	if result := Whnf(matching); !term.SameSymbol(result, c) {
		t.Fatalf("expected f a a to rewrite since both occurrences agree, got %s", term.Render(result))
	}

	mismatched := &term.Appl{Fun: &term.Appl{Fun: f, Arg: a}, Arg: b}
	if result := Whnf(mismatched); term.SameSymbol(result, c) {
		t.Fatalf("f a b must not rewrite when the repeated pattern variable disagrees, got %s", term.Render(result))
	}
}

func TestMatchInsufficientStackDoesNotFire(t *testing.T) {
	f := symb("m", "f", arrowType(1), true)
	rule := rewriteRule(t, f, func(p *term.Var) term.Term { return p })
	if err := f.Sym.AddRule(rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}

	result := Whnf(f)
	if !term.SameSymbol(result, f) {
		t.Fatalf("a rule with stack arity 1 must not fire with zero arguments on the stack")
	}
}
