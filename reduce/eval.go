package reduce

import (
	"holcore/logging"
	"holcore/term"
)

// Whnf reduces t to weak-head normal form (spec component C4, §4.2): it
// unfolds solved metavariables, beta-reduces redexes, and tries a definable
// symbol's rewrite rules against the arguments it has been applied to,
// stopping at the first head that is not itself reducible.
func Whnf(t term.Term) term.Term {
	head, stack := whnfStk(t, nil)
	return toTerm(head, stack)
}

// whnfStk drives the evaluator's abstract machine: head is the term under
// the cursor and stack holds its pending arguments, nearest first. It loops
// until no further transition applies, implementing Unfold/Push/Beta/Rewrite
// from spec §4.2 in that preference order.
func whnfStk(head term.Term, stack []*Cell) (term.Term, []*Cell) {
	for {
		switch h := head.(type) {
		case *term.MetaApp:
			if h.Meta.Solved() {
				head = h.Meta.Solution().Subst(h.Env)
				continue
			}
			return head, stack

		case *term.Appl:
			stack = append([]*Cell{NewCell(h.Arg)}, stack...)
			head = h.Fun
			continue

		case *term.Abst:
			if len(stack) == 0 {
				return head, stack
			}
			top := stack[0]
			head = h.Binder.Subst([]term.Term{top.Get()})
			stack = stack[1:]
			continue

		case *term.Symb:
			if !h.Sym.Definable {
				return head, stack
			}
			newHead, newStack, ok := tryRules(h.Sym.Rules(), stack)
			if !ok {
				return head, stack
			}
			if logging.DebugEval() {
				logging.TraceEval("rewrote %s, %d cell(s) consumed", h.Sym.Name, len(stack)-len(newStack))
			}
			head = newHead
			stack = newStack
			continue

		default:
			return head, stack
		}
	}
}

// tryRules attempts each of a definable symbol's rules in declaration order
// (spec §4.2's Rewrite transition), returning the first one that matches.
func tryRules(rules []*term.Rule, stack []*Cell) (term.Term, []*Cell, bool) {
	for _, r := range rules {
		if result, remaining, ok := matchRule(r, stack); ok {
			return result, remaining, true
		}
	}
	return nil, nil, false
}

// toTerm rebuilds an ordinary term from a (head, stack) pair by reapplying
// the stack's cells to head, nearest argument first — the inverse of the
// Push transition's decomposition.
func toTerm(head term.Term, stack []*Cell) term.Term {
	for i := 0; i < len(stack); i++ {
		head = &term.Appl{Fun: head, Arg: stack[i].Get()}
	}
	return head
}
