package logging

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
)

// Debug toggles, one per spec'd trace channel. Each is read once from its
// environment variable; flipping them costs nothing on the hot path beyond
// the boolean test already paid for below.
var (
	debugEval = envFlag("HOLCORE_DEBUG_EVAL")
	debugEqua = envFlag("HOLCORE_DEBUG_EQUA")
	debugMatc = envFlag("HOLCORE_DEBUG_MATC")
	debugUnif = envFlag("HOLCORE_DEBUG_UNIF")
	debugPatt = envFlag("HOLCORE_DEBUG_PATT")
)

func envFlag(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && v != "" && v != "0" && v != "false"
}

// DebugEval reports whether whnf/evaluator tracing is enabled.
func DebugEval() bool { return debugEval }

// DebugEqua reports whether conversion tracing is enabled.
func DebugEqua() bool { return debugEqua }

// DebugMatch reports whether rewrite-matcher tracing is enabled.
func DebugMatch() bool { return debugMatc }

// DebugUnif reports whether unifier tracing is enabled.
func DebugUnif() bool { return debugUnif }

// DebugPatt reports whether pattern-instantiation tracing is enabled.
func DebugPatt() bool { return debugPatt }

// ApplyDebugOverrides layers a project's holcore-mod.toml [theory.debug] table over
// the process environment toggles: a key set true here forces that channel
// on regardless of its HOLCORE_DEBUG_* variable, but a key left false or
// absent never turns a channel the environment already enabled back off.
func ApplyDebugOverrides(overrides map[string]bool) {
	if overrides["eval"] {
		debugEval = true
	}
	if overrides["equa"] {
		debugEqua = true
	}
	if overrides["matc"] {
		debugMatc = true
	}
	if overrides["unif"] {
		debugUnif = true
	}
	if overrides["patt"] {
		debugPatt = true
	}
}

// TraceEval emits a structured trace line for the evaluator. Callers should
// guard with DebugEval() first to avoid paying for the varargs/pretty work
// when tracing is off.
func TraceEval(format string, args ...interface{}) { trace("eval", format, args...) }

// TraceEqua emits a structured trace line for the conversion procedure.
func TraceEqua(format string, args ...interface{}) { trace("equa", format, args...) }

// TraceMatch emits a structured trace line for the rewrite matcher.
func TraceMatch(format string, args ...interface{}) { trace("matc", format, args...) }

// TraceUnif emits a structured trace line for the unifier.
func TraceUnif(format string, args ...interface{}) { trace("unif", format, args...) }

// TracePatt emits a structured trace line for pattern instantiation.
func TracePatt(format string, args ...interface{}) { trace("patt", format, args...) }

func trace(channel, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", channel, fmt.Sprintf(format, args...))
}

// Dump renders a value with field names for debug traces, using kr/pretty
// rather than a hand-rolled formatter so nested term structure (binders,
// stacks of argument cells) stays readable instead of collapsing to a
// pointer address under the default %v verb.
func Dump(v interface{}) string {
	return fmt.Sprintf("%# v", pretty.Formatter(v))
}
