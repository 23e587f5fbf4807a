package term

import (
	"fmt"
	"strings"
)

// Render produces a human-readable form of a term for diagnostics (spec
// §6's render hook). It is not part of the kernel's semantics: two terms
// that render identically are not guaranteed equal, and two equal terms are
// not guaranteed to render identically (bound variable hints are advisory).
func Render(t Term) string {
	return render(t, nil)
}

// render carries the list of binder name hints currently in scope, innermost
// first, so nested binders print with their original names instead of
// synthetic ones.
func render(t Term, scope []string) string {
	switch v := t.(type) {
	case Sort:
		if v == SortKind {
			return "Kind"
		}
		return "Type"
	case *Var:
		return v.hint
	case *Symb:
		return v.Sym.Name
	case *Tag:
		return fmt.Sprintf("$%d", v.Index)
	case *Wildcard:
		return "_"
	case *bvar:
		if v.depth < len(scope) {
			return scope[v.depth]
		}
		return fmt.Sprintf("#%d.%d", v.depth, v.index)
	case *Prod:
		return renderBinder("Pi", v.Dom, v.Binder, scope)
	case *Abst:
		return renderBinder("lambda", v.Dom, v.Binder, scope)
	case *Appl:
		return fmt.Sprintf("(%s %s)", render(v.Fun, scope), render(v.Arg, scope))
	case *MetaApp:
		args := make([]string, len(v.Env))
		for i, e := range v.Env {
			args[i] = render(e, scope)
		}
		return fmt.Sprintf("?%s[%s]", v.Meta.ID.String()[:8], strings.Join(args, ", "))
	default:
		return "<?term?>"
	}
}

func renderBinder(kw string, dom Term, b *Binder, scope []string) string {
	name := b.NameHint()
	if name == "" || name == "_" {
		name = fmt.Sprintf("x%d", len(scope))
	}
	return fmt.Sprintf("(%s %s: %s. %s)", kw, name, render(dom, scope), render(b.body, append([]string{name}, scope...)))
}
