package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/corey/bleep/internal/ports"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/match"
)

var (
	scanInclude    []string
	scanExclude    []string
	scanExcludeDir []string
	scanFilesOnly  bool
	scanQuiet      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path ...]",
	Short: "Find disallowed words in files",
	Long:  "Walks files and directories (default: .) and prints file:line: redacted-line for every offending line. Exit status: 0 clean, 1 found, 2 error.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringArrayVar(&scanInclude, "include", nil, "Only scan files whose name matches this glob (repeatable)")
	f.StringArrayVar(&scanExclude, "exclude", nil, "Skip files whose name matches this glob (repeatable)")
	f.StringArrayVar(&scanExcludeDir, "exclude-dir", nil, "Skip directories whose name matches this glob (repeatable)")
	f.BoolVar(&scanFilesOnly, "files-only", false, "Print only the names of offending files")
	f.BoolVarP(&scanQuiet, "quiet", "q", false, "Quiet mode (exit code only)")
}

// skipDirs are directories never recursed into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	".venv":        true,
}

// scanOpts controls what scanFile prints.
type scanOpts struct {
	filesOnly bool
	quiet     bool
	color     bool
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	files, walkErr := collectFiles(roots, cmd.ErrOrStderr())
	opts := scanOpts{filesOnly: scanFilesOnly, quiet: scanQuiet, color: useColor()}
	found, failed := 0, walkErr != nil
	for _, path := range files {
		n, err := scanFile(path, a.Filter, cmd.OutOrStdout(), opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "bleep: %s: %v\n", path, err)
			failed = true
		}
		found += n
		if found > 0 && scanQuiet {
			break
		}
	}

	if found > 0 {
		return matchExit{code: 1}
	}
	if failed {
		return matchExit{code: 2}
	}
	return nil
}

// collectFiles expands roots into regular files, honoring the skip list and
// the include/exclude globs. Unreadable roots are reported and skipped.
func collectFiles(roots []string, errOut io.Writer) ([]string, error) {
	var files []string
	var firstErr error
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			fmt.Fprintf(errOut, "bleep: %s: no such file or directory\n", root)
			if firstErr == nil {
				firstErr = errors.Wrap(err, root)
			}
			continue
		}
		if !info.IsDir() {
			// Explicit file arguments bypass the globs.
			files = append(files, root)
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			name := d.Name()
			if d.IsDir() {
				if path != root && (skipDirs[name] || matchAny(name, scanExcludeDir)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if len(scanInclude) > 0 && !matchAny(name, scanInclude) {
				return nil
			}
			if matchAny(name, scanExclude) {
				return nil
			}
			files = append(files, path)
			return nil
		})
	}
	return files, firstErr
}

// matchAny reports whether name matches at least one glob.
func matchAny(name string, globs []string) bool {
	for _, g := range globs {
		if match.Match(name, g) {
			return true
		}
	}
	return false
}

// isBinaryFile checks if the first 512 bytes contain a NUL byte, then
// rewinds f.
func isBinaryFile(f *os.File) bool {
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	_, _ = f.Seek(0, io.SeekStart)
	return false
}

// scanFile prints every offending line of path and returns how many there
// were. Binary files are skipped.
func scanFile(path string, f ports.Filter, out io.Writer, opts scanOpts) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fh.Close()
	if isBinaryFile(fh) {
		return 0, nil
	}

	var spans func(string) []ports.Span
	if sf, ok := f.(ports.SpanFinder); ok {
		spans = sf.Spans
	}

	count := 0
	lineNum := 0
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !f.ContainsDisallowed(line) {
			continue
		}
		count++
		if opts.quiet {
			return count, nil
		}
		if opts.filesOnly {
			fmt.Fprintln(out, paint(path, colorCyan, opts.color))
			return count, nil
		}
		redacted := f.Redact(line)
		if opts.color && spans != nil {
			redacted = highlight(redacted, spans(line), true)
		}
		fmt.Fprintf(out, "%s:%s: %s\n",
			paint(path, colorCyan, opts.color),
			paint(fmt.Sprint(lineNum), colorGray, opts.color),
			redacted)
	}
	if err := sc.Err(); err != nil {
		return count, errors.Wrapf(err, "line %d", lineNum+1)
	}
	return count, nil
}
