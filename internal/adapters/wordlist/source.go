// Package wordlist implements ports.WordSource for files, embedded lists,
// one-shot streams and in-memory line slices.
package wordlist

import (
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/corey/bleep/internal/ports"
	"github.com/pkg/errors"
)

// ErrConsumed is returned when a one-shot stream is opened a second time.
var ErrConsumed = errors.New("stream already consumed")

// FileSource reads a newline-delimited word list from disk.
type FileSource struct {
	path string
}

// File returns a source reading path on every Open.
func File(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string { return s.path }

// Path returns the file path.
func (s *FileSource) Path() string { return s.path }

// Open opens the file for reading.
func (s *FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	return f, nil
}

// FSSource reads a word list from a file system such as an embed.FS.
type FSSource struct {
	fsys fs.FS
	path string
}

// FS returns a source reading path from fsys on every Open.
func FS(fsys fs.FS, path string) *FSSource {
	return &FSSource{fsys: fsys, path: path}
}

// Name returns the path inside fsys.
func (s *FSSource) Name() string { return s.path }

// Open opens path in fsys.
func (s *FSSource) Open() (io.ReadCloser, error) {
	f, err := s.fsys.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "open bundled word list")
	}
	return f, nil
}

// ReaderSource wraps an io.Reader such as stdin. It can be opened once.
type ReaderSource struct {
	name string
	mu   sync.Mutex
	r    io.Reader
}

// Reader returns a one-shot source over r.
func Reader(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Name returns the label given to Reader.
func (s *ReaderSource) Name() string { return s.name }

// Open hands out the reader the first time and ErrConsumed afterwards.
func (s *ReaderSource) Open() (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return nil, errors.Wrap(ErrConsumed, s.name)
	}
	r := s.r
	s.r = nil
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

// LinesSource serves an in-memory list, one entry per element.
type LinesSource struct {
	name  string
	lines []string
}

// Lines returns a reusable source over lines.
func Lines(name string, lines ...string) *LinesSource {
	return &LinesSource{name: name, lines: lines}
}

// Name returns the label given to Lines.
func (s *LinesSource) Name() string { return s.name }

// Open joins the lines with newlines.
func (s *LinesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(strings.Join(s.lines, "\n"))), nil
}

var (
	_ ports.WordSource = (*FileSource)(nil)
	_ ports.WordSource = (*FSSource)(nil)
	_ ports.WordSource = (*ReaderSource)(nil)
	_ ports.WordSource = (*LinesSource)(nil)
)
