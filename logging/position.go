package logging

// Position marks a span of source text for diagnostic display.
type Position struct {
	FilePath string
	StartLn  int
	StartCol int
	EndLn    int
	EndCol   int
}

// Context carries the file a diagnostic belongs to. It stands in for the
// teacher's per-file LogContext, simplified since a theory file has no
// surrounding package/module hierarchy of its own.
type Context struct {
	FilePath string
}
