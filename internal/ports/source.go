package ports

import "io"

// WordSource is a line-oriented word list: one disallowed word (or regular
// expression) per line, blank lines ignored, no escaping or comment syntax.
// Files, streams and in-memory slices all satisfy it through the wordlist
// adapter.
type WordSource interface {
	// Name identifies the source in log lines and errors (e.g. a file path).
	Name() string

	// Open returns a fresh reader over the source's lines. The caller closes it.
	// Returns an error when the source cannot be opened (missing file,
	// permissions, an exhausted one-shot stream).
	Open() (io.ReadCloser, error)
}

// LineFollower delivers lines as they are appended to a growing source,
// like `tail -f`. The tailer adapter implements it for files.
type LineFollower interface {
	// Start begins following. callback receives each complete line without
	// its terminator, from a single goroutine. Call Stop() to terminate.
	Start(callback func(line string))

	// Stop terminates following. Safe to call multiple times.
	// Blocks until no further callbacks can fire.
	Stop()
}
