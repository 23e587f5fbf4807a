// Package sig implements the signature registry of spec component C3: a
// mapping from a symbol's (module, name) identity to the *term.Symbol that
// carries its type and, for definable symbols, its rewrite rules.
//
// The registry's job is narrow by design (spec: "10% share of core"): it
// deduplicates symbol identities so that re-resolving the same name always
// returns the same *term.Symbol pointer (spec §6's "loading re-establishes
// physical identity"), and it exposes the append-only rule-mutation entry
// point. Everything about what a symbol's type or rules *mean* belongs to
// package term and package reduce.
package sig

import (
	"fmt"
	"sync"

	"holcore/term"
)

// Signature is a registry of symbols, keyed by the module that declared them
// and their name within that module.
type Signature struct {
	mu      sync.RWMutex
	symbols map[string]map[string]*term.Symbol
}

// New creates an empty signature.
func New() *Signature {
	return &Signature{symbols: make(map[string]map[string]*term.Symbol)}
}

// Resolve looks up a previously-declared symbol by module and name. A
// failed lookup is the UnresolvedSymbol error of spec §7: fatal to whatever
// command triggered it, but not a kernel invariant violation, so it is
// returned as an ordinary error rather than routed through LogFatal.
func (s *Signature) Resolve(module, name string) (*term.Symbol, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if mod, ok := s.symbols[module]; ok {
		if sym, ok := mod[name]; ok {
			return sym, nil
		}
	}
	return nil, fmt.Errorf("unresolved symbol: %s.%s", module, name)
}

// Declare registers a new symbol under (module, name), returning an error if
// that identity is already taken — re-declaring a name is a loader error,
// not a silent overwrite, since it would otherwise split one logical symbol
// across two physical identities.
func (s *Signature) Declare(module, name string, typ term.Term, definable bool) (*term.Symbol, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mod, ok := s.symbols[module]
	if !ok {
		mod = make(map[string]*term.Symbol)
		s.symbols[module] = mod
	}

	if _, exists := mod[name]; exists {
		return nil, fmt.Errorf("symbol %s.%s is already declared", module, name)
	}

	sym := term.NewSymbol(module, name, typ, definable)
	mod[name] = sym
	return sym, nil
}

// AddRule appends a rewrite rule to a definable symbol already registered in
// this signature. The caller must synchronize concurrent AddRule calls
// against the same symbol itself (spec §6: "append only, caller-
// synchronized"); the signature only guarantees the symbol it hands back to
// Resolve is the one being mutated.
func (s *Signature) AddRule(sym *term.Symbol, rule *term.Rule) error {
	return sym.AddRule(rule)
}

// Symbols returns every symbol declared in a given module, in no particular
// order, for diagnostics.
func (s *Signature) Symbols(module string) []*term.Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mod, ok := s.symbols[module]
	if !ok {
		return nil
	}
	out := make([]*term.Symbol, 0, len(mod))
	for _, sym := range mod {
		out = append(out, sym)
	}
	return out
}
