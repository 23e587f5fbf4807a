package sig

import (
	"testing"

	"holcore/term"
)

func TestDeclareAndResolve(t *testing.T) {
	s := New()
	sym, err := s.Declare("m", "a", term.SortType, false)
	if err != nil {
		t.Fatalf("unexpected Declare error: %v", err)
	}

	got, err := s.Resolve("m", "a")
	if err != nil {
		t.Fatalf("unexpected Resolve error: %v", err)
	}
	if got != sym {
		t.Fatalf("Resolve must return the same *term.Symbol Declare created")
	}
}

func TestDeclareDuplicateRejected(t *testing.T) {
	s := New()
	if _, err := s.Declare("m", "a", term.SortType, false); err != nil {
		t.Fatalf("unexpected error on first Declare: %v", err)
	}
	if _, err := s.Declare("m", "a", term.SortType, false); err == nil {
		t.Fatalf("expected re-declaring the same (module, name) to be rejected")
	}
}

func TestResolveUnknownFails(t *testing.T) {
	s := New()
	if _, err := s.Resolve("m", "nope"); err == nil {
		t.Fatalf("expected resolving an undeclared symbol to fail")
	}
}

func TestSeparateModulesDoNotCollide(t *testing.T) {
	s := New()
	a, err := s.Declare("m1", "x", term.SortType, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := s.Declare("m2", "x", term.SortType, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("two modules declaring the same name must get distinct symbols")
	}
}

func TestAddRuleThroughSignature(t *testing.T) {
	s := New()
	sym, err := s.Declare("m", "f", term.SortType, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lhs, _ := term.BindMany(nil, &term.Symb{Sym: sym})
	rhs, _ := term.BindMany(nil, term.SortType)
	rule, err := term.NewRule(lhs, rhs, 0)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}

	if err := s.AddRule(sym, rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}
	if len(sym.Rules()) != 1 {
		t.Fatalf("expected the symbol to carry one rule")
	}
}

func TestSymbolsListsModuleContents(t *testing.T) {
	s := New()
	if _, err := s.Declare("m", "a", term.SortType, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Declare("m", "b", term.SortType, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	syms := s.Symbols("m")
	if len(syms) != 2 {
		t.Fatalf("expected 2 symbols in module m, got %d", len(syms))
	}
}
