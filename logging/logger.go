package logging

import (
	"sync"
)

// Logger is responsible for storing and displaying diagnostic output produced
// while loading and checking a theory.
type Logger struct {
	errorCount int // total encountered errors
	LogLevel   int

	// warnings is the list of warnings to be reported at the end of a command.
	warnings []logMessage

	// m synchronizes access; logging may happen from within nested kernel
	// calls that a future caller could parallelize.
	m *sync.Mutex
}

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no diagnostics or phase progress; the closing summary and command results still print
	LogLevelError          // only errors and the closing summary
	LogLevelWarning        // errors, warnings, and the closing summary
	LogLevelVerbose        // errors, warnings, phase progress, closing summary (default)
)

// newLogger creates a new logger struct.
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// ErrorCount returns the number of errors logged so far.
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errorCount
}

// flushWarnings displays every warning accumulated so far and reports how
// many there were, clearing the backlog so a second flush reports zero.
func (l *Logger) flushWarnings() int {
	l.m.Lock()
	defer l.m.Unlock()

	for _, w := range l.warnings {
		w.display()
	}
	n := len(l.warnings)
	l.warnings = nil
	return n
}

// handleMsg processes a message, synchronized so concurrent logging from
// multiple goroutines driving the same kernel never interleaves output.
func (l *Logger) handleMsg(lm logMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else if l.LogLevel > LogLevelError {
		l.warnings = append(l.warnings, lm)
	}
}
