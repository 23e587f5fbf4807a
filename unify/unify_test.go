package unify

import (
	"testing"

	"holcore/term"
)

func TestUnifySolvesPatternMeta(t *testing.T) {
	v := term.NewVar("x")
	sym := &term.Symb{Sym: term.NewSymbol("m", "a", term.SortType, false)}

	meta := term.NewMeta()
	ok, err := Unify(meta, []term.Term{v}, &term.Appl{Fun: sym, Arg: v})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a well-scoped pattern solution to succeed")
	}
	if !meta.Solved() {
		t.Fatalf("meta should report solved after a successful Unify")
	}
}

func TestUnifyRejectsAlreadySolved(t *testing.T) {
	meta := term.NewMeta()
	b, _ := term.BindMany(nil, term.SortType)
	if err := meta.Solve(b); err != nil {
		t.Fatalf("unexpected error priming meta: %v", err)
	}

	_, err := Unify(meta, nil, term.SortType)
	if err != ErrAlreadySolved {
		t.Fatalf("expected ErrAlreadySolved, got %v", err)
	}
}

func TestUnifyOccursCheckFails(t *testing.T) {
	v := term.NewVar("x")
	meta := term.NewMeta()
	metaApp := &term.MetaApp{Meta: meta, Env: []term.Term{v}}

	ok, err := Unify(meta, []term.Term{v}, metaApp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("a meta solution mentioning itself must fail the occurs check")
	}
	if meta.Solved() {
		t.Fatalf("meta must remain unsolved after an occurs-check failure")
	}
}

func TestUnifyNonVariableEnvironmentIsNotPattern(t *testing.T) {
	sym := &term.Symb{Sym: term.NewSymbol("m", "a", term.SortType, false)}
	meta := term.NewMeta()

	ok, err := Unify(meta, []term.Term{sym}, sym)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("a non-variable environment entry is not a Miller pattern and must fail")
	}
}

func TestUnifyOutOfScopeFreeVariableFails(t *testing.T) {
	inScope := term.NewVar("x")
	outOfScope := term.NewVar("y")
	meta := term.NewMeta()

	ok, err := Unify(meta, []term.Term{inScope}, outOfScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("a solution mentioning a variable outside the meta's environment must fail")
	}
}
