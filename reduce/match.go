package reduce

import (
	"holcore/logging"
	"holcore/term"
)

// matchRule attempts to fire r against the top of stack (spec §4.3). On
// success it returns the rewritten term and the remainder of the stack past
// the arguments the rule consumed; on failure it returns (nil, nil, false)
// and leaves stack's cells exactly as forcing may have left them, since
// whnf'd cells stay whnf'd regardless of which rule eventually fires.
func matchRule(r *term.Rule, stack []*Cell) (term.Term, []*Cell, bool) {
	if r.StackArity > len(stack) {
		return nil, nil, false
	}

	tagEnv := make([]term.Term, r.Arity)
	for i := range tagEnv {
		tagEnv[i] = &term.Tag{Index: i}
	}
	patterns := splitArgs(r.LHS.Subst(tagEnv), r.StackArity)

	env := make([]term.Term, r.Arity)
	for i, p := range patterns {
		if !matching(env, p, stack[i]) {
			if logging.DebugMatch() {
				logging.TraceMatch("rule of stack arity %d rejected at argument %d", r.StackArity, i)
			}
			return nil, nil, false
		}
	}

	if logging.DebugMatch() {
		logging.TraceMatch("rule matched, consuming %d cell(s)", r.StackArity)
	}
	return r.RHS.Subst(env), stack[r.StackArity:], true
}

// splitArgs decomposes an applied pattern `sym pat_0 ... pat_{n-1}` (an
// ordinary Appl chain built by the loader) back into its n argument
// patterns, in application order. It is the matcher's inverse of toTerm.
func splitArgs(t term.Term, n int) []term.Term {
	args := make([]term.Term, n)
	cur := t
	for i := n - 1; i >= 0; i-- {
		appl, ok := cur.(*term.Appl)
		if !ok {
			panic("reduce: malformed rule LHS pattern")
		}
		args[i] = appl.Arg
		cur = appl.Fun
	}
	return args
}

// matching runs one pattern term p against one stack cell (spec §4.3's
// matching(env, p, cell)), recording pattern-variable bindings into env as
// it goes. A pattern tag binds freely the first time it is seen and is
// compared modulo rewriting on every subsequent occurrence (non-linear
// patterns); a wildcard matches anything without binding; everything else
// forces the cell to whnf and compares head-by-head, recursing into
// sub-structure through freshly wrapped cells so nested tags get the same
// force-once treatment.
func matching(env []term.Term, p term.Term, cell *Cell) bool {
	switch pv := p.(type) {
	case *term.Tag:
		if env[pv.Index] == nil {
			env[pv.Index] = cell.Get()
			return true
		}
		forced := Whnf(cell.Get())
		cell.Set(forced)
		return EqModulo(env[pv.Index], forced)

	case *term.Wildcard:
		return true
	}

	forced := Whnf(cell.Get())
	cell.Set(forced)

	switch pv := p.(type) {
	case term.Sort:
		fs, ok := forced.(term.Sort)
		return ok && fs == pv

	case *term.Var:
		fv, ok := forced.(*term.Var)
		return ok && fv == pv

	case *term.Symb:
		return term.SameSymbol(p, forced)

	case *term.Prod:
		fp, ok := forced.(*term.Prod)
		if !ok {
			return false
		}
		_, pBody, fBody := term.UnbindWith(pv.Binder, fp.Binder)
		return matching(env, pv.Dom, NewCell(fp.Dom)) && matching(env, pBody, NewCell(fBody))

	case *term.Abst:
		fa, ok := forced.(*term.Abst)
		if !ok {
			return false
		}
		_, pBody, fBody := term.UnbindWith(pv.Binder, fa.Binder)
		return matching(env, pv.Dom, NewCell(fa.Dom)) && matching(env, pBody, NewCell(fBody))

	case *term.Appl:
		fa, ok := forced.(*term.Appl)
		if !ok {
			return false
		}
		return matching(env, pv.Fun, NewCell(fa.Fun)) && matching(env, pv.Arg, NewCell(fa.Arg))

	case *term.MetaApp:
		logging.LogFatal("rewrite matcher encountered a metavariable in pattern position")
		return false

	default:
		return false
	}
}
