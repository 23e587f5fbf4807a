package term

// bvar is the internal placeholder a Binder uses in place of a bound
// variable's occurrences. depth counts how many binder scopes separate this
// occurrence from the Binder that owns it (0 = owned directly by the
// nearest enclosing Binder); index selects which of that Binder's arity-many
// slots it refers to. bvar never appears in a Term handed to a caller: every
// accessor either substitutes it away (Subst) or opens it into a fresh Var
// (Unbind).
type bvar struct {
	depth int
	index int
}

func (*bvar) isTerm() {}

// Binder is the binder service of spec component C2: a multi-arity,
// capture-avoiding binder used uniformly for Π/λ (arity 1), rewrite rule
// LHS/RHS (arity = rule's pattern-variable count), and metavariable
// solutions (arity = the meta's environment length).
type Binder struct {
	hints  []string
	arity  int
	body   Term
	closed bool
}

// Arity is the number of variables this binder abstracts over.
func (b *Binder) Arity() int { return b.arity }

// IsClosed reports whether every free variable of the term originally passed
// to Bind/BindMany was one of the bound variables (spec §4.1).
func (b *Binder) IsClosed() bool { return b.closed }

// NameHint returns the advisory name of the binder's first (or only)
// variable, for printing.
func (b *Binder) NameHint() string {
	if len(b.hints) == 0 {
		return "_"
	}
	return b.hints[0]
}

// Bind abstracts a single free variable out of body, producing an arity-1
// Binder. This is the common case used for Π and λ.
func Bind(v *Var, body Term) *Binder {
	b, _ := BindMany([]*Var{v}, body)
	return b
}

// BindMany attempts to build a closed binder abstracting vars (in order) out
// of body. It always returns a usable Binder; the second return value
// reports whether the result is closed, i.e. whether every free variable of
// body was among vars (spec §4.1's bind_many contract). An unclosed result
// still substitutes correctly; callers that require closedness (the
// unifier, spec §4.5 step 4) check the flag themselves.
func BindMany(vars []*Var, body Term) (*Binder, bool) {
	index := make(map[*Var]int, len(vars))
	hints := make([]string, len(vars))
	for i, v := range vars {
		index[v] = i
		hints[i] = v.hint
	}

	closed := true
	newBody := captureWalk(body, 0, index, &closed)

	return &Binder{hints: hints, arity: len(vars), body: newBody, closed: closed}, closed
}

// captureWalk replaces free occurrences of the variables in index with bvar
// placeholders at the given depth, tracking depth across nested binders.
func captureWalk(t Term, depth int, index map[*Var]int, closed *bool) Term {
	switch v := t.(type) {
	case *Var:
		if i, ok := index[v]; ok {
			return &bvar{depth: depth, index: i}
		}
		*closed = false
		return v
	case Sort, *Symb, *Tag, *Wildcard, *bvar:
		return v
	case *Prod:
		return &Prod{
			Dom:    captureWalk(v.Dom, depth, index, closed),
			Binder: captureWalkBinder(v.Binder, depth, index, closed),
		}
	case *Abst:
		return &Abst{
			Dom:    captureWalk(v.Dom, depth, index, closed),
			Binder: captureWalkBinder(v.Binder, depth, index, closed),
		}
	case *Appl:
		return &Appl{
			Fun: captureWalk(v.Fun, depth, index, closed),
			Arg: captureWalk(v.Arg, depth, index, closed),
		}
	case *MetaApp:
		env := make([]Term, len(v.Env))
		for i, e := range v.Env {
			env[i] = captureWalk(e, depth, index, closed)
		}
		return &MetaApp{Meta: v.Meta, Env: env}
	default:
		panic("term: BindMany encountered an unrecognized term kind")
	}
}

func captureWalkBinder(b *Binder, depth int, index map[*Var]int, closed *bool) *Binder {
	return &Binder{
		hints:  b.hints,
		arity:  b.arity,
		body:   captureWalk(b.body, depth+1, index, closed),
		closed: b.closed,
	}
}

// Subst substitutes env into the binder's body, one term per bound
// variable slot, and returns the resulting term. env must have length
// Arity(). This never mutates the binder: repeated calls with different
// environments are independent.
func (b *Binder) Subst(env []Term) Term {
	return substWalk(b.body, 0, env)
}

func substWalk(t Term, depth int, env []Term) Term {
	switch v := t.(type) {
	case *bvar:
		if v.depth == depth {
			return env[v.index]
		}
		if v.depth > depth {
			return &bvar{depth: v.depth - 1, index: v.index}
		}
		return v
	case *Var, Sort, *Symb, *Tag, *Wildcard:
		return v
	case *Prod:
		return &Prod{Dom: substWalk(v.Dom, depth, env), Binder: substWalkBinder(v.Binder, depth, env)}
	case *Abst:
		return &Abst{Dom: substWalk(v.Dom, depth, env), Binder: substWalkBinder(v.Binder, depth, env)}
	case *Appl:
		return &Appl{Fun: substWalk(v.Fun, depth, env), Arg: substWalk(v.Arg, depth, env)}
	case *MetaApp:
		newEnv := make([]Term, len(v.Env))
		for i, e := range v.Env {
			newEnv[i] = substWalk(e, depth, env)
		}
		return &MetaApp{Meta: v.Meta, Env: newEnv}
	default:
		panic("term: Subst encountered an unrecognized term kind")
	}
}

func substWalkBinder(b *Binder, depth int, env []Term) *Binder {
	return &Binder{
		hints:  b.hints,
		arity:  b.arity,
		body:   substWalk(b.body, depth+1, env),
		closed: b.closed,
	}
}

// Unbind opens the binder into a body over freshly allocated variables,
// unique to this call. Two calls to Unbind on the same binder never share a
// variable.
func (b *Binder) Unbind() ([]*Var, Term) {
	vars := freshVars(b.hints)
	env := make([]Term, len(vars))
	for i, v := range vars {
		env[i] = v
	}
	return vars, b.Subst(env)
}

// UnbindWith opens b1 and b2 over a single shared set of fresh variables,
// for structural comparison of two binders at once (spec §4.1's unbind2,
// generalized to arity > 1 for rule LHS/RHS comparisons).
func UnbindWith(b1, b2 *Binder) ([]*Var, Term, Term) {
	vars := freshVars(b1.hints)
	env := make([]Term, len(vars))
	for i, v := range vars {
		env[i] = v
	}
	return vars, b1.Subst(env), b2.Subst(env)
}

func freshVars(hints []string) []*Var {
	vars := make([]*Var, len(hints))
	for i, h := range hints {
		vars[i] = &Var{hint: h}
	}
	return vars
}

// EqBinder decides whether b1 and b2 are equivalent binders by unbinding
// both over a shared fresh variable set and delegating to termEq, an
// alpha-respecting equality over terms (spec §4.1's eq_binder).
func EqBinder(termEq func(a, b Term) bool, b1, b2 *Binder) bool {
	if b1.arity != b2.arity {
		return false
	}
	_, body1, body2 := UnbindWith(b1, b2)
	return termEq(body1, body2)
}
