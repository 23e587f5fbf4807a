package config

// Project is a loaded theory package: a named, ordered set of source files to
// feed to the loader, plus any debug-toggle overrides the project wants to
// apply regardless of the process environment.
type Project struct {
	// Name is the theory's name (must be a valid identifier).
	Name string

	// ProjectRoot is the directory containing the project's holcore-mod.toml.
	ProjectRoot string

	// Sources is the ordered list of source files to load, relative to
	// ProjectRoot. Order matters: later files may reference symbols declared
	// in earlier ones.
	Sources []string

	// DebugOverrides holds any of "eval", "equa", "matc", "unif", "patt" the
	// project file forces on, layered over (but not replacing) the process
	// environment toggles.
	DebugOverrides map[string]bool
}

// IsValidIdentifier reports whether a string is a legal theory or symbol
// name: an ASCII letter or underscore, followed by letters, digits, or
// underscores.
func IsValidIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}

	if !isIdentStart(s[0]) {
		return false
	}

	for i := 1; i < len(s); i++ {
		if !isIdentStart(s[i]) && !(s[i] >= '0' && s[i] <= '9') {
			return false
		}
	}

	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
