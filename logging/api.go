package logging

import "os"

// logger is a global reference to a shared Logger, created by Initialize and
// used by every package that reports diagnostics.
var logger Logger

// Initialize sets up the global logger at the given level
// (silent|error|warning|verbose). Unrecognized names default to verbose, the
// same fallback behavior as the teacher's compiler.
func Initialize(loglevelName string) {
	var loglevel int
	switch loglevelName {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warning":
		loglevel = LogLevelWarning
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether the logger has recorded any errors yet.
func ShouldProceed() bool {
	return logger.ErrorCount() == 0
}

// FlushWarnings displays every warning accumulated since the last flush and
// returns how many there were, for a command's closing summary.
func FlushWarnings() int {
	return logger.flushWarnings()
}

// -----------------------------------------------------------------------------
// Errors logged below are always counted, and displayed unless the level is
// silent. Warnings are kept for FlushWarnings at warning level and above and
// dropped below it. LogFatal displays at every level.

// LogKernelError logs a conversion, matching, or unification failure
// surfaced by the nucleus as a non-fatal decision (spec §7: ConversionMismatch,
// OccursOrScope) or a loader-time problem (UnresolvedSymbol, PatternIllFormed).
func LogKernelError(ctx *Context, message string, kind int, pos *Position) {
	logger.handleMsg(&KernelMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  ctx,
		IsError:  true,
	})
}

// LogKernelWarning logs a non-fatal observation about a theory (e.g. an
// unused rule head) that does not block loading or checking.
func LogKernelWarning(ctx *Context, message string, kind int, pos *Position) {
	logger.handleMsg(&KernelMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  ctx,
		IsError:  false,
	})
}

// LogConfigError logs a problem with project or bundle configuration.
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogFatal reports a violated internal invariant (a kernel bug, per spec §7:
// MetaAlreadySolved, or a matcher encountering a metavariable in pattern
// position) and aborts the process. Unlike the teacher's stub of the same
// name, this one actually stops execution: an invariant violation here means
// continuing would make further decisions meaningless.
func LogFatal(message string) {
	displayFatalError(message)
	os.Exit(2)
}
