package reduce

import (
	"testing"

	"holcore/term"
)

func symb(module, name string, typ term.Term, definable bool) *term.Symb {
	return &term.Symb{Sym: term.NewSymbol(module, name, typ, definable)}
}

// arrowType builds `Type -> ... -> Type` with n arrows, so that a definable
// test symbol's declared type agrees with the stack arity of its rules.
func arrowType(n int) term.Term {
	var t term.Term = term.SortType
	for i := 0; i < n; i++ {
		t = &term.Prod{Dom: term.SortType, Binder: term.Bind(term.NewVar("_"), t)}
	}
	return t
}

func TestWhnfBetaReduction(t *testing.T) {
	a := symb("m", "a", term.SortType, false)

	v := term.NewVar("x")
	id := &term.Abst{Dom: term.SortType, Binder: term.Bind(v, v)}

	result := Whnf(&term.Appl{Fun: id, Arg: a})
	if !term.SameSymbol(result, a) {
		t.Fatalf("expected (lambda x. x) a to reduce to a, got %s", term.Render(result))
	}
}

func TestWhnfStaticSymbolDoesNotReduce(t *testing.T) {
	s := symb("m", "s", term.SortType, false)
	result := Whnf(s)
	if !term.SameSymbol(result, s) {
		t.Fatalf("a static symbol must be its own whnf")
	}
}

func TestWhnfRewriteFires(t *testing.T) {
	a := symb("m", "a", term.SortType, false)
	f := symb("m", "f", arrowType(1), true)

	p := term.NewVar("p")
	lhs, _ := term.BindMany([]*term.Var{p}, &term.Appl{Fun: f, Arg: p})
	rhs, _ := term.BindMany([]*term.Var{p}, p)
	rule, err := term.NewRule(lhs, rhs, 1)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}
	if err := f.Sym.AddRule(rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}

	result := Whnf(&term.Appl{Fun: f, Arg: a})
	if !term.SameSymbol(result, a) {
		t.Fatalf("expected f a to rewrite to a, got %s", term.Render(result))
	}
}

func TestWhnfRewriteStackArityIndependentOfPatternArity(t *testing.T) {
	// proof (imp p q) --> proof p -> proof q : one stack argument, two
	// pattern variables nested inside it.
	prop := symb("m", "Prop", term.SortType, false)
	proof := symb("m", "proof", arrowType(1), true)
	imp := symb("m", "imp", term.SortType, false)

	p := term.NewVar("p")
	q := term.NewVar("q")

	lhsPattern := &term.Appl{Fun: proof, Arg: &term.Appl{Fun: &term.Appl{Fun: imp, Arg: p}, Arg: q}}
	lhs, _ := term.BindMany([]*term.Var{p, q}, lhsPattern)

	rhsBody := &term.Prod{
		Dom:    &term.Appl{Fun: proof, Arg: p},
		Binder: term.Bind(term.NewVar("_"), &term.Appl{Fun: proof, Arg: q}),
	}
	rhs, _ := term.BindMany([]*term.Var{p, q}, rhsBody)

	rule, err := term.NewRule(lhs, rhs, 1)
	if err != nil {
		t.Fatalf("unexpected NewRule error: %v", err)
	}
	if rule.Arity != 2 {
		t.Fatalf("expected pattern-variable arity 2, got %d", rule.Arity)
	}
	if rule.StackArity != 1 {
		t.Fatalf("expected stack arity 1, got %d", rule.StackArity)
	}
	if err := proof.Sym.AddRule(rule); err != nil {
		t.Fatalf("unexpected AddRule error: %v", err)
	}

	a := symb("m", "A", prop, false)
	b := symb("m", "B", prop, false)

	lhsTerm := &term.Appl{Fun: proof, Arg: &term.Appl{Fun: &term.Appl{Fun: imp, Arg: a}, Arg: b}}
	result := Whnf(lhsTerm)

	prodResult, ok := result.(*term.Prod)
	if !ok {
		t.Fatalf("expected a Prod after rewriting, got %T", result)
	}
	domAppl, ok := prodResult.Dom.(*term.Appl)
	if !ok || !term.SameSymbol(domAppl.Fun, proof) || !term.SameSymbol(domAppl.Arg, a) {
		t.Fatalf("expected domain `proof A`, got %s", term.Render(prodResult.Dom))
	}
}
