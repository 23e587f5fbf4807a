package term

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Symbol is a named constant: either static (opaque, never rewritten) or
// definable (carries an ordered, append-only list of rewrite rules). Two
// Symb terms referencing the same *Symbol are the same symbol by pointer
// identity; the loader is responsible for never allocating two Symbols for
// one (module, name) pair (spec §3.1, §6).
type Symbol struct {
	ID         uuid.UUID
	Name       string
	Module     string
	Definable  bool

	mu    sync.Mutex
	typ   Term
	rules []*Rule
}

// NewSymbol creates a new symbol with physical identity distinct from every
// other symbol ever created, static or definable.
func NewSymbol(module, name string, typ Term, definable bool) *Symbol {
	return &Symbol{
		ID:        uuid.New(),
		Name:      name,
		Module:    module,
		Definable: definable,
		typ:       typ,
	}
}

// Type returns the symbol's type.
func (s *Symbol) Type() Term {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typ
}

// BackpatchType sets the type of a symbol created without one (nil type),
// for module link when a forward reference resolves against an
// already-loaded module (spec §3.4). It returns an error if the symbol
// already has a type, whether from NewSymbol or from an earlier call.
func (s *Symbol) BackpatchType(typ Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.typ != nil {
		return fmt.Errorf("symbol %s.%s: type already set", s.Module, s.Name)
	}
	s.typ = typ
	return nil
}

// Rules returns the symbol's current rule list, in declaration order. The
// returned slice is a snapshot; it is not affected by subsequent AddRule
// calls.
func (s *Symbol) Rules() []*Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// AddRule appends a rewrite rule to a definable symbol's rule list. Rules
// are never removed or reordered once added (spec §3.4); the caller is
// responsible for synchronizing concurrent loads of the same symbol, as
// AddRule itself only guards the append against the symbol's own internal
// bookkeeping, not against two loaders racing on one Signature.
//
// Every rule added to the same symbol must agree on StackArity — both with
// the symbol's own declared type (counted as its leading run of Π-arrows)
// and with whatever StackArity earlier rules already settled on — so that
// the evaluator's Rewrite transition (spec §4.3) never has to guess how many
// arguments a rule expects off the stack. A disagreement here is SPEC_FULL
// §2.3's load-time counterpart to the matcher's match-time PatternIllFormed
// case: caught at AddRule instead of deferred to first use.
func (s *Symbol) AddRule(r *Rule) error {
	if !s.Definable {
		return fmt.Errorf("symbol %s.%s is static: cannot add a rewrite rule", s.Module, s.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if expected, ok := piArgCount(s.typ); ok && r.StackArity != expected {
		return &ArityMismatchError{
			Module: s.Module, Name: s.Name,
			Expected: expected, Got: r.StackArity,
			Reason: "declared type",
		}
	}
	if len(s.rules) > 0 && r.StackArity != s.rules[0].StackArity {
		return &ArityMismatchError{
			Module: s.Module, Name: s.Name,
			Expected: s.rules[0].StackArity, Got: r.StackArity,
			Reason: "an earlier rule",
		}
	}

	s.rules = append(s.rules, r)
	return nil
}

// piArgCount counts t's leading run of Π-arrows, i.e. the number of
// arguments a fully-applied reference to something of type t would consume.
// The second return value is false for a type with no fixed arity to check
// against (nil, awaiting backpatch).
func piArgCount(t Term) (int, bool) {
	if t == nil {
		return 0, false
	}
	n := 0
	for {
		p, ok := t.(*Prod)
		if !ok {
			return n, true
		}
		_, body := p.Binder.Unbind()
		t = body
		n++
	}
}

// ArityMismatchError reports a rule whose StackArity disagrees with its
// symbol's declared type or with a sibling rule already on that symbol
// (spec §2.3). The loader routes this to logging.KindPatternIllFormed
// rather than the generic KindLoader it uses for every other Declare/AddRule
// failure.
type ArityMismatchError struct {
	Module, Name  string
	Expected, Got int
	Reason        string // what Expected was measured against
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf(
		"symbol %s.%s: rule stack arity %d does not match the arity of %s (%d)",
		e.Module, e.Name, e.Got, e.Reason, e.Expected,
	)
}

// Rule is a user-declared rewrite rule lhs --> rhs (spec §3.2). LHS and RHS
// are multiple-binders of the same arity, one bound slot per distinct
// pattern variable; unbinding LHS's body with pattern tags in place of that
// environment yields the applied pattern `sym pat_0 ... pat_{StackArity-1}`,
// and substituting both LHS and RHS with the same matched environment
// yields the matched argument values and the rewritten term, respectively.
// StackArity — the number of arguments the rule consumes off the evaluator
// stack — is independent of the binder arity: a single argument position can
// itself be a nested pattern mentioning several pattern variables, as in
// `proof (imp p q) --> proof p -> proof q`, where StackArity is 1 but the
// binder arity (pattern variables p, q) is 2.
type Rule struct {
	LHS        *Binder
	RHS        *Binder
	Arity      int // pattern-variable count; LHS.Arity() == RHS.Arity() == Arity
	StackArity int // argument-list length; minimum stack depth for the rule to fire
}

// NewRule builds a rewrite rule from an LHS and RHS binder of equal arity,
// plus the stack depth (argument count) the rule consumes.
func NewRule(lhs, rhs *Binder, stackArity int) (*Rule, error) {
	if lhs.Arity() != rhs.Arity() {
		return nil, fmt.Errorf("rule LHS has arity %d but RHS has arity %d", lhs.Arity(), rhs.Arity())
	}
	if stackArity < 0 {
		return nil, fmt.Errorf("rule stack arity must be non-negative, got %d", stackArity)
	}
	return &Rule{LHS: lhs, RHS: rhs, Arity: lhs.Arity(), StackArity: stackArity}, nil
}

// Meta is a metavariable: a placeholder solved at most once by the unifier
// (spec §3.3). Its ID exists purely for identity and diagnostics; equality
// between two Meta values is always pointer equality.
type Meta struct {
	ID uuid.UUID

	mu       sync.Mutex
	solution *Binder
}

// NewMeta creates a new, unsolved metavariable.
func NewMeta() *Meta {
	return &Meta{ID: uuid.New()}
}

// Solved reports whether the metavariable has been instantiated.
func (m *Meta) Solved() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.solution != nil
}

// Solution returns the metavariable's solution binder, or nil if unsolved.
func (m *Meta) Solution() *Binder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.solution
}

// Solve commits the metavariable's solution. Calling Solve on an
// already-solved meta is the MetaAlreadySolved kernel bug of spec §7: it
// returns an error rather than overwriting, so callers can route it to
// logging.LogFatal.
func (m *Meta) Solve(b *Binder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.solution != nil {
		return fmt.Errorf("metavariable %s already solved", m.ID)
	}
	m.solution = b
	return nil
}
