package fsnotify

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// fsnotify Watcher Adapter — detect word-list edits, trigger reload
// Expectation: only the watched files fire, once per save burst
// =============================================================================

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("damn\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{list}, func(path string) {
		changed <- path
	}))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(list, []byte("damn\nbugger\n"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for word list change")
	assert.Equal(t, list, path)
}

func TestWatcher_DetectsRecreatedFile(t *testing.T) {
	// Editors often save by writing a temp file and renaming it over the original.
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("damn\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{list}, func(path string) {
		changed <- path
	}))
	time.Sleep(50 * time.Millisecond)

	tmp := filepath.Join(dir, ".words.txt.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("wanker\n"), 0644))
	require.NoError(t, os.Rename(tmp, list))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for replaced word list")
	assert.Equal(t, list, path)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("damn\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{list}, func(path string) {
		changed <- path
	}))
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("hi"), 0644))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "sibling files must not trigger a reload")
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch([]string{filepath.Join(t.TempDir(), "nope", "words.txt")}, func(string) {})
	assert.Error(t, err)
}

func TestWatcher_StopCleanup(t *testing.T) {
	// After Stop(), no more callbacks fire.
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("damn\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)

	callCount := 0
	var mu sync.Mutex
	err = w.Watch([]string{list}, func(path string) {
		mu.Lock()
		callCount++
		mu.Unlock()
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, w.Stop())

	mu.Lock()
	countAfterStop := callCount
	mu.Unlock()

	// Write file after stop: no callback
	os.WriteFile(list, []byte("nope\n"), 0644)
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	countAfterWrite := callCount
	mu.Unlock()

	assert.Equal(t, countAfterStop, countAfterWrite, "callbacks fired after Stop()")

	// Double-stop should be safe
	assert.NoError(t, w.Stop())
}

func TestWatcher_BurstFiresOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("damn\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	seen := make(chan string, 10)
	require.NoError(t, w.Watch([]string{list}, func(path string) {
		data, _ := os.ReadFile(path)
		seen <- string(data)
	}))
	time.Sleep(50 * time.Millisecond)

	for _, content := range []string{"", "dam", "damn\nbugger\n"} {
		require.NoError(t, os.WriteFile(list, []byte(content), 0644))
	}

	got, ok := waitForCallback(seen, 2*time.Second)
	require.True(t, ok, "expected callback after burst")
	assert.Equal(t, "damn\nbugger\n", got)

	_, again := waitForCallback(seen, 200*time.Millisecond)
	assert.False(t, again, "burst should fire a single callback")
}
