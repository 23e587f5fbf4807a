// Package reduce implements three mutually recursive spec components as one
// Go package, since Go forbids circular package imports: the evaluator
// (C4, eval.go), the rewrite matcher (C5, match.go), and conversion modulo
// rewriting (C6, conv.go). Whnf calls the matcher to try a definable
// symbol's rules; the matcher calls Whnf to force an argument cell and
// EqModulo to compare an already-bound pattern tag; EqModulo calls Whnf to
// drive its worklist and package unify to solve metavariable constraints.
// Keeping the three in one package mirrors how the teacher keeps its own
// mutually recursive type-solver pieces (conv.go, conssets.go, solver.go)
// together in package typing rather than splitting them across imports.
package reduce

import "holcore/term"

// Cell is a mutable argument cell (spec §4.2): the evaluator pushes one per
// application argument, and forcing a cell to whnf once updates it in place
// so later consumers of the same cell see the already-reduced value instead
// of redoing the work. Cells are the only thing the evaluator and matcher
// mutate; terms themselves are never mutated.
type Cell struct {
	content term.Term
}

// NewCell wraps a term in a fresh, unshared cell.
func NewCell(t term.Term) *Cell {
	return &Cell{content: t}
}

// Get returns the cell's current contents.
func (c *Cell) Get() term.Term {
	return c.content
}

// Set overwrites the cell's contents, typically with the whnf of what it
// held before.
func (c *Cell) Set(t term.Term) {
	c.content = t
}
