package filter

import "fmt"

// SourceError reports a word source that could not be opened or read.
// Loading is best effort: the filter keeps whatever it held before (plus
// any lines read before a mid-stream failure).
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("word source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// PatternError reports a variant expression that failed to compile.
// Only that pattern is dropped.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
