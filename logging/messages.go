package logging

// logMessage is the common interface of every diagnostic the logger can
// accumulate and display.
type logMessage interface {
	isError() bool
	display()
}

// Enumeration of kernel diagnostic kinds. The first five mirror the error
// kinds of the reduction/conversion/unification nucleus; the rest belong to
// its surrounding collaborators (surface syntax, loader, project config).
const (
	KindUnresolvedSymbol = iota
	KindMetaAlreadySolved
	KindPatternIllFormed
	KindConversionMismatch
	KindOccursOrScope
	KindSyntax
	KindLoader
	KindName
)

var kernelKindNames = map[int]string{
	KindUnresolvedSymbol:   "Unresolved Symbol",
	KindMetaAlreadySolved:  "Meta Already Solved",
	KindPatternIllFormed:   "Ill-Formed Pattern",
	KindConversionMismatch: "Conversion",
	KindOccursOrScope:      "Occurs/Scope",
	KindSyntax:             "Syntax",
	KindLoader:             "Loader",
	KindName:               "Name",
}

// KernelMessage is a diagnostic tied to a specific position in a theory file.
type KernelMessage struct {
	Message  string
	Kind     int
	Position *Position
	Context  *Context
	IsError  bool
}

func (km *KernelMessage) isError() bool { return km.IsError }

// ConfigError reports a problem with project configuration: a malformed
// holcore-mod.toml, a missing source file, an unreadable bundle manifest.
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool { return true }
