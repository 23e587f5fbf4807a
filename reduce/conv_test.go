package reduce

import (
	"testing"

	"holcore/term"
)

func TestEqModuloBetaRedex(t *testing.T) {
	a := symb("m", "a", term.SortType, false)

	v := term.NewVar("x")
	id := &term.Abst{Dom: term.SortType, Binder: term.Bind(v, v)}
	redex := &term.Appl{Fun: id, Arg: a}

	if !EqModulo(redex, a) {
		t.Fatalf("expected (lambda x. x) a to be convertible with a")
	}
}

func TestEqModuloDistinctStaticSymbols(t *testing.T) {
	a := symb("m", "a", term.SortType, false)
	b := symb("m", "b", term.SortType, false)

	if EqModulo(a, b) {
		t.Fatalf("two distinct static symbols must not be convertible")
	}
}

func TestEqModuloProdAlphaEquivalence(t *testing.T) {
	dom := symb("m", "A", term.SortType, false)

	x := term.NewVar("x")
	y := term.NewVar("y")
	p1 := &term.Prod{Dom: dom, Binder: term.Bind(x, x)}
	p2 := &term.Prod{Dom: dom, Binder: term.Bind(y, y)}

	if !EqModulo(p1, p2) {
		t.Fatalf("Pi types differing only in bound variable hint must be convertible")
	}
}

func TestEqModuloConstrDefersHeadMismatch(t *testing.T) {
	a := symb("m", "a", term.SortType, false)
	b := symb("m", "b", term.SortType, false)

	if EqModulo(a, b) {
		t.Fatalf("sanity check: distinct static symbols should not be convertible outright")
	}

	ok, constraints := EqModuloConstr(a, b)
	if !ok {
		t.Fatalf("expected constraint deferral to report success within a constraint region")
	}
	if len(constraints) != 1 {
		t.Fatalf("expected exactly one deferred constraint, got %d", len(constraints))
	}
}

func TestEqModuloUnequalStackLengthMismatch(t *testing.T) {
	f := symb("m", "f", term.SortType, false)
	a := symb("m", "a", term.SortType, false)
	b := symb("m", "b", term.SortType, false)

	fa := &term.Appl{Fun: f, Arg: a}
	fab := &term.Appl{Fun: &term.Appl{Fun: f, Arg: a}, Arg: b}

	if EqModulo(fa, fab) {
		t.Fatalf("applications of different arity to the same head must not be convertible")
	}
}
