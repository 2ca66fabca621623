// Package tailer follows a growing text file and emits every complete line
// appended to it, the way `tail -f` does. It polls rather than relying on
// file events, so it also works on network mounts and for log files that
// are rotated by truncation.
package tailer

import (
	"bufio"
	"io"
	"os"
	"sync"
	"time"
)

// maxLine caps a single emitted line; longer lines are skipped.
const maxLine = 1024 * 1024

// Tailer watches one file and emits the lines appended to it.
//
// Thread-safe: Start/Stop can be called from any goroutine.
type Tailer struct {
	path         string
	pollInterval time.Duration
	fromStart    bool
	onError      func(error) // called when the file cannot be read (optional)

	callback func(string)

	// State
	offset  int64
	failing bool // last poll failed; suppresses repeat reports

	mu      sync.Mutex
	done    chan struct{}
	started chan struct{} // closed after the initial offset is set
	wg      sync.WaitGroup
}

// Config holds parameters for creating a Tailer.
type Config struct {
	// Path is the file to follow. It may not exist yet.
	Path string

	// FromStart replays the existing content instead of seeking to the end.
	FromStart bool

	// PollInterval is how often to check for new lines. Default: 500ms.
	PollInterval time.Duration

	// OnError is called when the file cannot be opened. Optional.
	// Reported once per run of failures.
	OnError func(error)
}

// New creates a Tailer. Does not start tailing until Start() is called.
func New(cfg Config) *Tailer {
	interval := cfg.PollInterval
	if interval == 0 {
		interval = 500 * time.Millisecond
	}

	return &Tailer{
		path:         cfg.Path,
		pollInterval: interval,
		fromStart:    cfg.FromStart,
		onError:      cfg.OnError,
		done:         make(chan struct{}),
		started:      make(chan struct{}),
	}
}

// Start begins the tailing loop in a background goroutine. callback receives
// each line without its line terminator and runs on the tailing goroutine.
func (t *Tailer) Start(callback func(line string)) {
	t.callback = callback
	t.wg.Add(1)
	go t.loop()
}

// Stop terminates the tailing loop and waits for it to finish.
// Safe to call multiple times.
func (t *Tailer) Stop() {
	t.mu.Lock()
	select {
	case <-t.done:
		// Already stopped
		t.mu.Unlock()
		return
	default:
		close(t.done)
	}
	t.mu.Unlock()
	t.wg.Wait()
}

// Path returns the file being followed.
func (t *Tailer) Path() string {
	return t.path
}

// Started returns a channel that closes once the starting offset is set.
// Useful for tests that need to wait for the tailer to be ready before writing.
func (t *Tailer) Started() <-chan struct{} {
	return t.started
}

func (t *Tailer) loop() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	if !t.fromStart {
		if info, err := os.Stat(t.path); err == nil {
			t.offset = info.Size()
		}
	}
	close(t.started)
	t.readNewLines()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.readNewLines()
		}
	}
}

// readNewLines emits the complete lines appended since the last read.
// Uses ReadBytes('\n') to track exact byte offsets (bufio.Scanner
// reads ahead and corrupts file position tracking). A trailing fragment
// without a newline is left for the next poll.
func (t *Tailer) readNewLines() {
	f, err := os.Open(t.path)
	if err != nil {
		t.fail(err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.fail(err)
		return
	}
	t.failing = false

	// Check if file was truncated (rewritten)
	if info.Size() < t.offset {
		t.offset = 0
	}
	if info.Size() == t.offset {
		return // no new data
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return
	}

	reader := bufio.NewReaderSize(f, 64*1024)
	for {
		line, err := reader.ReadSlice('\n')
		switch err {
		case nil:
			t.offset += int64(len(line))
			t.emit(line)
		case bufio.ErrBufferFull:
			// Longer than the buffer: consume it only once it is complete.
			n, long, ok := readLongLine(reader, line)
			if !ok {
				return
			}
			t.offset += n
			if long != nil {
				t.emit(long)
			}
		default:
			return // EOF: a partial line waits for its newline
		}
	}
}

// readLongLine finishes a line that overflowed the reader buffer. It returns
// the bytes consumed and the line, which is nil past maxLine. ok is false
// when the line is not yet terminated.
func readLongLine(r *bufio.Reader, head []byte) (n int64, line []byte, ok bool) {
	buf := append([]byte(nil), head...)
	n = int64(len(head))
	for {
		chunk, err := r.ReadSlice('\n')
		n += int64(len(chunk))
		if buf != nil {
			buf = append(buf, chunk...)
			if len(buf) > maxLine {
				buf = nil
			}
		}
		switch err {
		case nil:
			return n, buf, true
		case bufio.ErrBufferFull:
			continue
		default:
			return 0, nil, false
		}
	}
}

func (t *Tailer) emit(line []byte) {
	if t.callback != nil {
		t.callback(string(trimNewline(line)))
	}
}

func (t *Tailer) fail(err error) {
	if !t.failing && t.onError != nil {
		t.onError(err)
	}
	t.failing = true
}

// trimNewline removes trailing \n and \r\n from a line.
func trimNewline(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	if len(b) > 0 && b[len(b)-1] == '\r' {
		b = b[:len(b)-1]
	}
	return b
}
