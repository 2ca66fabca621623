package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/corey/bleep/internal/ports"
	"github.com/pkg/errors"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// maxLine bounds a single input line.
const maxLine = 1024 * 1024

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// useColor reports whether output should carry ANSI colors.
func useColor() bool {
	return !flagNoColor && isStdoutTTY()
}

// paint wraps s in color when enabled.
func paint(s, color string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return color + s + colorReset
}

// highlight renders text with every span painted red. Spans are expected in
// any order and may overlap.
func highlight(text string, spans []ports.Span, enabled bool) string {
	if !enabled || len(spans) == 0 {
		return text
	}
	marked := make([]bool, len(text))
	for _, sp := range spans {
		for i := max(sp.Start, 0); i < min(sp.End, len(text)); i++ {
			marked[i] = true
		}
	}
	var sb strings.Builder
	for i := 0; i < len(text); {
		j := i
		for j < len(text) && marked[j] == marked[i] {
			j++
		}
		if marked[i] {
			sb.WriteString(colorRed + text[i:j] + colorReset)
		} else {
			sb.WriteString(text[i:j])
		}
		i = j
	}
	return sb.String()
}

// readLines reads r to EOF, one entry per line.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return lines, errors.Wrap(err, "read input")
	}
	return lines, nil
}
