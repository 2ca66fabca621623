package filter

import (
	"bufio"
	"log/slog"
	"strings"

	"github.com/corey/bleep/internal/ports"
)

// maxLineSize bounds a single word-list line.
const maxLineSize = 1 << 20

// readEntries opens src and returns its trimmed, non-blank lines. An open
// failure yields no entries. A read failure keeps the lines read so far.
// Both are logged here and returned as *SourceError.
func readEntries(src ports.WordSource, log *slog.Logger) ([]string, error) {
	rc, err := src.Open()
	if err != nil {
		log.Warn("word source unavailable", "source", src.Name(), "err", err)
		return nil, &SourceError{Source: src.Name(), Err: err}
	}
	defer rc.Close()

	var entries []string
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		log.Warn("word source read failed", "source", src.Name(), "read", len(entries), "err", err)
		return entries, &SourceError{Source: src.Name(), Err: err}
	}

	log.Debug("word source read", "source", src.Name(), "entries", len(entries))
	return entries, nil
}
