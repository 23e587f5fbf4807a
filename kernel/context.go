// Package kernel bundles a Signature with the reduction kernel's directly
// callable operations behind one handle, so cmd/holcore and tests don't have
// to thread package sig, package reduce, package unify, and package term
// through every call site separately. Grounded on the way chai/build's
// Compiler bundles a module, a build profile, and a shared parsing table
// into one struct its callers hold (SPEC_FULL §2.3).
package kernel

import (
	"holcore/logging"
	"holcore/reduce"
	"holcore/sig"
	"holcore/term"
	"holcore/unify"
)

// Context is a loaded theory: its signature plus the kernel operations that
// act on terms built against that signature.
type Context struct {
	Sig *sig.Signature
}

// New creates an empty Context with a fresh, empty signature.
func New() *Context {
	return &Context{Sig: sig.New()}
}

// Whnf reduces t to weak-head normal form (spec component C4).
func (c *Context) Whnf(t term.Term) term.Term {
	return reduce.Whnf(t)
}

// EqModulo decides equality of a and b modulo β and rewriting (spec
// component C6).
func (c *Context) EqModulo(a, b term.Term) bool {
	return reduce.EqModulo(a, b)
}

// EqModuloConstr runs EqModulo with constraint deferral active (spec §4.4).
func (c *Context) EqModuloConstr(a, b term.Term) (bool, []reduce.Constraint) {
	return reduce.EqModuloConstr(a, b)
}

// NewMeta creates a fresh, unsolved metavariable (spec component C7).
func (c *Context) NewMeta() *term.Meta {
	return term.NewMeta()
}

// Instantiate attempts to solve meta[env] = t (spec §4.5).
func (c *Context) Instantiate(meta *term.Meta, env []term.Term, t term.Term) bool {
	ok, err := unify.Unify(meta, env, t)
	if err != nil {
		logging.LogFatal(err.Error())
	}
	return ok
}

// Resolve looks up a symbol previously declared into this context's
// signature.
func (c *Context) Resolve(module, name string) (*term.Symbol, error) {
	return c.Sig.Resolve(module, name)
}
