// Package lists embeds the bundled word lists for compile-time inclusion.
// Each list is a newline-delimited file named <name>.txt.
//
// Usage:
//
//	f.BulkLoad(wordlist.FS(lists.FS, lists.File("en")))
package lists

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.txt
var FS embed.FS

// File returns the path of the named list inside FS.
func File(name string) string {
	return name + ".txt"
}

// Names returns the bundled list names, sorted.
func Names() []string {
	paths, _ := fs.Glob(FS, "*.txt")
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(p, ".txt"))
	}
	sort.Strings(names)
	return names
}
