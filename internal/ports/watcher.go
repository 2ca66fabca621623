package ports

// Watcher monitors word-list files and reports when their content may have
// changed. The adapter (fsnotify) debounces the burst of events editors emit
// per save. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring the given files. onChange is called with the
	// absolute path of each changed file and may be invoked from any
	// goroutine. Returns an error if a file's directory cannot be watched.
	Watch(paths []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
