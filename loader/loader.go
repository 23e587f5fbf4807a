// Package loader translates a parsed surface.File into term.Term values and
// populates a sig.Signature, the "parser+loader" collaborator spec.md §6
// treats as out of scope beyond the Signature it hands the core. It resolves
// identifiers against previously-declared symbols so that re-resolving a
// name always returns the same *term.Symbol (spec §6's "loading
// re-establishes physical identity"), builds Binders for λ/Π via
// term.Bind/BindMany, and constructs rewrite rules via term.NewRule — with
// a rule's named pattern variables turned into the ordered environment C5's
// matcher later substitutes pattern tags into, not pre-tagged at load time
// (spec §4.3 step 2 is the matcher's job, not the loader's).
package loader

import (
	"errors"
	"fmt"

	"holcore/logging"
	"holcore/sig"
	"holcore/surface"
	"holcore/term"
)

// scopeEntry binds a surface name to the *term.Var it resolves to within the
// lexically enclosing λ/Π binders currently open.
type scopeEntry struct {
	name string
	v    *term.Var
}

// Loader holds the state needed to translate one module's statements.
type Loader struct {
	sig    *sig.Signature
	module string
	ctx    *logging.Context

	// Checks accumulates every #check/#check-fail directive seen, for the
	// caller (cmd check) to evaluate once the whole module has loaded.
	Checks []*surface.CheckStmt
}

// New creates a loader that declares symbols into sig under the given module
// name, reporting diagnostics under ctx.
func New(s *sig.Signature, module string, ctx *logging.Context) *Loader {
	return &Loader{sig: s, module: module, ctx: ctx}
}

// LoadFile translates every statement of f in order.
func (l *Loader) LoadFile(f *surface.File) {
	for _, stmt := range f.Statements {
		l.loadStmt(stmt)
	}
}

func (l *Loader) loadStmt(stmt surface.Stmt) {
	switch s := stmt.(type) {
	case *surface.StaticStmt:
		typ := l.buildTerm(s.Type, nil)
		if _, err := l.sig.Declare(l.module, s.Name, typ, false); err != nil {
			l.fail(err)
		}

	case *surface.DefStmt:
		typ := l.buildTerm(s.Type, nil)
		sym, err := l.sig.Declare(l.module, s.Name, typ, true)
		if err != nil {
			l.fail(err)
			return
		}
		if s.Body != nil {
			l.addDefiningRule(sym, s.Body)
		}

	case *surface.RuleStmt:
		l.loadRule(s)

	case *surface.CheckStmt:
		l.Checks = append(l.Checks, s)
	}
}

func (l *Loader) fail(err error) {
	var am *term.ArityMismatchError
	if errors.As(err, &am) {
		logging.LogKernelError(l.ctx, err.Error(), logging.KindPatternIllFormed, nil)
		return
	}
	logging.LogKernelError(l.ctx, err.Error(), logging.KindLoader, nil)
}

// CheckResult is one #check/#check-fail directive with its two sides
// resolved to terms, ready for the caller to decide pass/fail by comparing
// EqModulo's result against ExpectOK.
type CheckResult struct {
	Left, Right term.Term
	ExpectOK    bool
	Ctx         *logging.Context
}

// ResolveChecks builds the terms for every #check/#check-fail directive
// collected while loading this file. Called once per file after LoadFile,
// so that a later file's symbols can't leak into an earlier file's checks.
func (l *Loader) ResolveChecks() []CheckResult {
	out := make([]CheckResult, len(l.Checks))
	for i, c := range l.Checks {
		out[i] = CheckResult{
			Left:     l.buildTerm(c.Left, nil),
			Right:    l.buildTerm(c.Right, nil),
			ExpectOK: c.ExpectOK,
			Ctx:      l.ctx,
		}
	}
	return out
}

// addDefiningRule implements `def name : type := body.` sugar as the
// arity-0 rewrite rule `name --> body` (SPEC_FULL §2.2), matching Dedukti's
// own `def x := t` shorthand.
func (l *Loader) addDefiningRule(sym *term.Symbol, bodyExpr surface.Expr) {
	body := l.buildTerm(bodyExpr, nil)

	lhsBinder, _ := term.BindMany(nil, &term.Symb{Sym: sym})
	rhsBinder, _ := term.BindMany(nil, body)
	rule, err := term.NewRule(lhsBinder, rhsBinder, 0)
	if err != nil {
		l.fail(err)
		return
	}
	// Arity-0 rules fire on the bare symbol reference with no arguments to
	// consume; the evaluator's Rewrite transition matches r.StackArity == 0
	// unconditionally against whatever stack is present.
	if err := l.sig.AddRule(sym, rule); err != nil {
		l.fail(err)
	}
}

// loadRule builds a user rule declaration `lhs --> rhs.` Every identifier in
// lhs that is not already a declared symbol is treated as an implicitly
// quantified pattern variable (Dedukti's own convention); their order of
// first appearance fixes the shared binder arity of both sides.
func (l *Loader) loadRule(s *surface.RuleStmt) {
	pv := &patVars{}
	lhsRaw, head, stackArity := l.buildPattern(s.LHS, pv)
	if head == nil {
		l.fail(fmt.Errorf("rule LHS must apply a definable symbol to its arguments"))
		return
	}
	if !head.Definable {
		l.fail(fmt.Errorf("symbol %s.%s is static: cannot carry a rewrite rule", head.Module, head.Name))
		return
	}

	rhsScope := make([]scopeEntry, len(pv.vars))
	for i, name := range pv.names {
		rhsScope[i] = scopeEntry{name: name, v: pv.vars[i]}
	}
	rhsRaw := l.buildTerm(s.RHS, rhsScope)

	lhsBinder, _ := term.BindMany(pv.vars, lhsRaw)
	rhsBinder, _ := term.BindMany(pv.vars, rhsRaw)

	rule, err := term.NewRule(lhsBinder, rhsBinder, stackArity)
	if err != nil {
		l.fail(err)
		return
	}
	if err := l.sig.AddRule(head, rule); err != nil {
		l.fail(err)
	}
}

// patVars accumulates a rule's implicitly quantified pattern variables in
// order of first appearance.
type patVars struct {
	names []string
	vars  []*term.Var
}

func (pv *patVars) lookup(name string) *term.Var {
	for i, n := range pv.names {
		if n == name {
			return pv.vars[i]
		}
	}
	return nil
}

func (pv *patVars) declare(name string) *term.Var {
	v := term.NewVar(name)
	pv.names = append(pv.names, name)
	pv.vars = append(pv.vars, v)
	return v
}

// buildPattern builds a rule LHS's raw term (real *term.Var/ *term.Wildcard
// leaves, no Tag yet — tags are the matcher's concern, spec §4.3 step 2),
// and reports the defined symbol heading the application plus the number of
// arguments applied to it (the rule's StackArity).
func (l *Loader) buildPattern(e surface.Expr, pv *patVars) (term.Term, *term.Symbol, int) {
	switch x := e.(type) {
	case *surface.AppExpr:
		funTerm, head, arity := l.buildPattern(x.Fun, pv)
		argTerm := l.buildPatternArg(x.Arg, pv)
		return &term.Appl{Fun: funTerm, Arg: argTerm}, head, arity + 1

	case *surface.Ident:
		sym, err := l.sig.Resolve(l.module, x.Name)
		if err != nil {
			l.fail(err)
			return &term.Symb{Sym: nil}, nil, 0
		}
		return &term.Symb{Sym: sym}, sym, 0

	default:
		l.fail(fmt.Errorf("rule LHS head must be a symbol reference"))
		return nil, nil, 0
	}
}

// buildPatternArg builds one argument position of a rule LHS, where a bare
// unresolved identifier is an implicitly quantified pattern variable and
// "_" is the matcher's wildcard, rather than going through buildTerm's
// ordinary scope/signature resolution.
func (l *Loader) buildPatternArg(e surface.Expr, pv *patVars) term.Term {
	switch x := e.(type) {
	case *surface.Underscore:
		return &term.Wildcard{}

	case *surface.Ident:
		if v := pv.lookup(x.Name); v != nil {
			return v
		}
		if sym, err := l.sig.Resolve(l.module, x.Name); err == nil {
			return &term.Symb{Sym: sym}
		}
		return pv.declare(x.Name)

	case *surface.AppExpr:
		return &term.Appl{Fun: l.buildPatternArg(x.Fun, pv), Arg: l.buildPatternArg(x.Arg, pv)}

	default:
		// Sorts, Π, λ are valid nested LHS patterns too, but never mention
		// pattern variables introduced at this argument position; reuse the
		// ordinary term builder with the pattern variables already declared
		// visible as scope entries.
		scope := make([]scopeEntry, len(pv.vars))
		for i, name := range pv.names {
			scope[i] = scopeEntry{name: name, v: pv.vars[i]}
		}
		return l.buildTerm(e, scope)
	}
}

// buildTerm translates an ordinary (non-pattern) surface expression into a
// term.Term, resolving identifiers first against the lexical scope of open
// binders (innermost first), then against the signature.
func (l *Loader) buildTerm(e surface.Expr, scope []scopeEntry) term.Term {
	switch x := e.(type) {
	case *surface.SortExpr:
		if x.IsKind {
			return term.SortKind
		}
		return term.SortType

	case *surface.Ident:
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i].name == x.Name {
				return scope[i].v
			}
		}
		sym, err := l.sig.Resolve(l.module, x.Name)
		if err != nil {
			l.fail(err)
			return &term.Symb{Sym: nil}
		}
		return &term.Symb{Sym: sym}

	case *surface.Underscore:
		l.fail(fmt.Errorf("'_' is only valid in a rewrite rule's LHS"))
		return &term.Wildcard{}

	case *surface.AppExpr:
		return &term.Appl{Fun: l.buildTerm(x.Fun, scope), Arg: l.buildTerm(x.Arg, scope)}

	case *surface.PiExpr:
		v := term.NewVar(x.Name)
		dom := l.buildTerm(x.Dom, scope)
		body := l.buildTerm(x.Body, append(scope, scopeEntry{name: x.Name, v: v}))
		return &term.Prod{Dom: dom, Binder: term.Bind(v, body)}

	case *surface.LambdaExpr:
		v := term.NewVar(x.Name)
		dom := l.buildTerm(x.Dom, scope)
		body := l.buildTerm(x.Body, append(scope, scopeEntry{name: x.Name, v: v}))
		return &term.Abst{Dom: dom, Binder: term.Bind(v, body)}

	default:
		l.fail(fmt.Errorf("unrecognized expression node"))
		return &term.Wildcard{}
	}
}
