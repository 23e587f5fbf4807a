package reduce

import (
	"holcore/logging"
	"holcore/term"
	"holcore/unify"
)

// Constraint is a deferred equality the conversion loop could not decide
// while a constraint region was active (spec §4.4).
type Constraint struct {
	A, B term.Term
}

// constraintSlot is the process-scoped deferral slot of spec §4.4. The
// kernel is single-threaded cooperative (spec §5), so a package-level
// variable saved and restored around each WithConstraints region is
// sufficient; no lock is required.
type constraintSlot struct {
	active bool
	list   []Constraint
}

var conState constraintSlot

// WithConstraints runs f with the constraint slot active, returning every
// pair add_constraint recorded during the call and restoring whatever state
// the slot held before — a scoped acquire/release on every exit path,
// including a panic unwinding through f.
func WithConstraints(f func()) []Constraint {
	prev := conState
	conState = constraintSlot{active: true}
	defer func() { conState = prev }()
	f()
	return conState.list
}

// addConstraint records a deferred pair iff the slot is active, reporting
// whether it did so.
func addConstraint(a, b term.Term) bool {
	if !conState.active {
		return false
	}
	conState.list = append(conState.list, Constraint{A: a, B: b})
	return true
}

type pair struct{ a, b term.Term }

// EqModulo decides equality of a and b modulo β-reduction and rewriting
// (spec component C6, §4.4's public entry). When called from within a
// WithConstraints region, a head mismatch that cannot be decided outright is
// deferred onto that region's constraint list instead of failing.
func EqModulo(a, b term.Term) bool {
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		if eqSyntax(p.a, p.b) {
			continue
		}

		hA, sA := whnfStk(p.a, nil)
		hB, sB := whnfStk(p.b, nil)

		switch {
		case len(sA) == len(sB):
		case len(sA) > len(sB):
			k := len(sA) - len(sB)
			hA = toTerm(hA, sA[:k])
			sA = sA[k:]
		default:
			k := len(sB) - len(sA)
			hB = toTerm(hB, sB[:k])
			sB = sB[k:]
		}
		for i := range sA {
			work = append(work, pair{sA[i].Get(), sB[i].Get()})
		}

		if ha, ok := hA.(*term.Abst); ok {
			if hb, ok := hB.(*term.Abst); ok {
				_, bodyA, bodyB := term.UnbindWith(ha.Binder, hb.Binder)
				work = append(work, pair{ha.Dom, hb.Dom}, pair{bodyA, bodyB})
				continue
			}
		}
		if ha, ok := hA.(*term.Prod); ok {
			if hb, ok := hB.(*term.Prod); ok {
				_, bodyA, bodyB := term.UnbindWith(ha.Binder, hb.Binder)
				work = append(work, pair{ha.Dom, hb.Dom}, pair{bodyA, bodyB})
				continue
			}
		}

		if eqSyntax(hA, hB) {
			continue
		}
		if addConstraint(hA, hB) {
			if logging.DebugEqua() {
				logging.TraceEqua("deferred %s =?= %s", term.Render(hA), term.Render(hB))
			}
			continue
		}
		return false
	}
	return true
}

// EqModuloConstr runs EqModulo with a constraint region active and returns
// both the decision and whatever pairs were deferred (spec §4.4's
// eq_modulo_constr). Used by the typechecker when checking a rewrite rule's
// LHS, where some equalities mention not-yet-bound pattern variables.
func EqModuloConstr(a, b term.Term) (bool, []Constraint) {
	var ok bool
	list := WithConstraints(func() {
		ok = EqModulo(a, b)
	})
	return ok, list
}

// eqSyntax is the cheap fast path: structural α-equivalence, unfolding
// solved metavariables at each recursive step. An unsolved metavariable on
// either side triggers opportunistic unification (spec §4.5); success ends
// the comparison as true.
//
// The source implementation additionally mutates a matched parent's cached
// child pointer in place when unfolding changes a child's identity, purely
// as memoization. Spec §9 notes this may be skipped at a small cost with no
// semantic change, so this version leaves terms untouched: the kernel never
// otherwise mutates a term node's own fields, and keeping that invariant
// exact here is worth more than the memoization.
func eqSyntax(a, b term.Term) bool {
	a = unfoldMeta(a)
	b = unfoldMeta(b)

	if am, ok := a.(*term.MetaApp); ok {
		ok2, err := unify.Unify(am.Meta, am.Env, b)
		if err != nil {
			logging.LogFatal(err.Error())
		}
		return ok2
	}
	if bm, ok := b.(*term.MetaApp); ok {
		ok2, err := unify.Unify(bm.Meta, bm.Env, a)
		if err != nil {
			logging.LogFatal(err.Error())
		}
		return ok2
	}

	switch av := a.(type) {
	case term.Sort:
		bv, ok := b.(term.Sort)
		return ok && av == bv
	case *term.Var:
		bv, ok := b.(*term.Var)
		return ok && av == bv
	case *term.Symb:
		return term.SameSymbol(a, b)
	case *term.Appl:
		bv, ok := b.(*term.Appl)
		return ok && eqSyntax(av.Fun, bv.Fun) && eqSyntax(av.Arg, bv.Arg)
	case *term.Prod:
		bv, ok := b.(*term.Prod)
		return ok && eqSyntax(av.Dom, bv.Dom) && term.EqBinder(eqSyntax, av.Binder, bv.Binder)
	case *term.Abst:
		bv, ok := b.(*term.Abst)
		return ok && eqSyntax(av.Dom, bv.Dom) && term.EqBinder(eqSyntax, av.Binder, bv.Binder)
	default:
		return false
	}
}

func unfoldMeta(t term.Term) term.Term {
	for {
		m, ok := t.(*term.MetaApp)
		if !ok || !m.Meta.Solved() {
			return t
		}
		t = m.Meta.Solution().Subst(m.Env)
	}
}
