// Package unify implements the unifier of spec component C7: instantiating
// a metavariable against a term, with an occurs-check and a scope check that
// together decide whether the candidate solution is a valid Miller pattern
// unification (spec §4.5).
package unify

import (
	"errors"
	"fmt"

	"holcore/logging"
	"holcore/term"
)

// ErrAlreadySolved is returned when Unify is asked to solve a metavariable
// that already carries a solution. Per spec §7 this is a programming error,
// not a semantic decision: the kernel should abort rather than recover, so
// callers route it to logging.LogFatal instead of treating it like an
// ordinary unification failure.
var ErrAlreadySolved = errors.New("unify: metavariable already solved")

// Unify attempts to solve meta[env] = t: it commits meta's solution and
// returns true, or leaves meta untouched and returns false, per spec §4.5's
// five steps. A non-nil error is always ErrAlreadySolved; every ordinary
// failure (occurs check, non-pattern environment, out-of-scope free
// variable) is reported solely through the boolean, matching spec §7's
// OccursOrScope case, which the caller decides whether to recover from.
func Unify(meta *term.Meta, env []term.Term, t term.Term) (bool, error) {
	if meta.Solved() {
		return false, ErrAlreadySolved
	}

	if occurs(meta, t) {
		if logging.DebugUnif() {
			logging.TraceUnif("occurs check failed: %s occurs in %s", meta.ID, term.Render(t))
		}
		return false, nil
	}

	vars := make([]*term.Var, len(env))
	for i, e := range env {
		v, ok := e.(*term.Var)
		if !ok {
			if logging.DebugUnif() {
				logging.TraceUnif("environment slot %d is not a variable: not a Miller pattern", i)
			}
			return false, nil
		}
		vars[i] = v
	}

	b, closed := term.BindMany(vars, t)
	if !closed {
		if logging.DebugUnif() {
			logging.TraceUnif("solution not expressible in meta's scope: %s", term.Render(t))
		}
		return false, nil
	}

	if err := meta.Solve(b); err != nil {
		return false, fmt.Errorf("unify: %w", err)
	}

	if logging.DebugUnif() {
		logging.TraceUnif("solved %s := %s", meta.ID, term.Render(t))
	}
	return true, nil
}

// occurs reports whether meta appears anywhere in t, unfolding other
// resolved metavariables as it descends (spec §4.5 step 2). Binders are
// opened by substituting a neutral Kind placeholder for every bound slot:
// the occurs check only asks "does this meta appear", so the substituted
// value is irrelevant as long as it never itself mentions a meta.
func occurs(meta *term.Meta, t term.Term) bool {
	switch v := t.(type) {
	case *term.MetaApp:
		if v.Meta == meta {
			return true
		}
		if v.Meta.Solved() {
			return occurs(meta, v.Meta.Solution().Subst(v.Env))
		}
		for _, e := range v.Env {
			if occurs(meta, e) {
				return true
			}
		}
		return false
	case *term.Prod:
		return occurs(meta, v.Dom) || occursBinder(meta, v.Binder)
	case *term.Abst:
		return occurs(meta, v.Dom) || occursBinder(meta, v.Binder)
	case *term.Appl:
		return occurs(meta, v.Fun) || occurs(meta, v.Arg)
	default:
		return false
	}
}

func occursBinder(meta *term.Meta, b *term.Binder) bool {
	placeholder := make([]term.Term, b.Arity())
	for i := range placeholder {
		placeholder[i] = term.SortKind
	}
	return occurs(meta, b.Subst(placeholder))
}
