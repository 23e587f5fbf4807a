// Package term implements the term model of the reduction kernel: an
// immutable-by-contract algebraic term with explicit binders, symbol
// references, and metavariables (spec component C1), together with the
// binder service that provides capture-avoiding substitution and
// alpha-equivalence over it (component C2, in binder.go) and the symbol/rule
// representation physical identity depends on (component C3's data, in
// symbol.go).
//
// Terms are represented locally-nameless: a bound variable never appears as
// a raw index outside of a Binder's closed-over body, and every Var is a
// fresh allocation (by NewVar or by Unbind). This is the systems-
// language rendering of the higher-order-abstract-syntax binder library the
// original implementation uses.
package term

// Term is the sum type of everything the kernel reduces, compares, and
// unifies. All concrete cases are defined in this file except the one
// internal-only case kept unexported for invariant enforcement: the bound
// variable placeholder used inside a Binder's body (see binder.go) never
// escapes this package.
type Term interface {
	isTerm()
}

// Sort distinguishes the universe Type from the super-sort Kind.
type Sort int

const (
	SortType Sort = iota
	SortKind
)

func (Sort) isTerm() {}

// Var is a bound-variable token, unique within its binder's scope by pointer
// identity. Vars are produced by NewVar, Unbind and UnbindWith; the hint
// field is never set from outside this package.
type Var struct {
	hint string
}

func (*Var) isTerm() {}

// NewVar allocates a fresh variable with the given advisory name, unique by
// pointer identity from every other Var ever created. Callers outside this
// package use it to open a scope (a loader building a λ/Π body, or a rule
// declaration's implicitly quantified pattern variables) before handing the
// result to Bind/BindMany.
func NewVar(hint string) *Var {
	return &Var{hint: hint}
}

// Hint returns the variable's advisory name, used for printing only.
func (v *Var) Hint() string { return v.hint }

// Symb is a reference to a symbol, static or definable. Physical identity of
// the referenced *Symbol is canonical: two Symb values referencing the same
// *Symbol compare equal in O(1) by comparing pointers.
type Symb struct {
	Sym *Symbol
}

func (*Symb) isTerm() {}

// Prod is the dependent product Πx:A. B.
type Prod struct {
	Dom    Term
	Binder *Binder
}

func (*Prod) isTerm() {}

// Abst is the abstraction λx:A. t. The domain annotation participates in
// equality even though β-reduction never inspects it.
type Abst struct {
	Dom    Term
	Binder *Binder
}

func (*Abst) isTerm() {}

// Appl is function application.
type Appl struct {
	Fun Term
	Arg Term
}

func (*Appl) isTerm() {}

// MetaApp is an instance of a metavariable under a closing environment: the
// ordered sequence of terms substituted into the meta's eventual solution
// once it resolves.
type MetaApp struct {
	Meta *Meta
	Env  []Term
}

func (*MetaApp) isTerm() {}

// Tag is a pattern tag: a small non-negative integer standing in for a
// yet-to-be-bound pattern variable while a rule's LHS is being matched
// against the evaluator stack (spec §4.3). Tags are constructed only by the
// rewrite matcher (package reduce) and must never appear in a term the rest
// of the kernel or a caller can observe outside of that one matching call.
type Tag struct {
	Index int
}

func (*Tag) isTerm() {}

// Wildcard matches anything during rewrite matching without recording a
// binding. Like Tag, it is only meaningful inside a rule's LHS.
type Wildcard struct{}

func (*Wildcard) isTerm() {}

// SameSymbol reports whether a and b are both Symb references to the
// physically identical *Symbol.
func SameSymbol(a, b Term) bool {
	sa, ok := a.(*Symb)
	if !ok {
		return false
	}
	sb, ok := b.(*Symb)
	if !ok {
		return false
	}
	return sa.Sym == sb.Sym
}
