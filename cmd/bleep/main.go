// bleep detects and redacts disallowed words in text.
// Four interchangeable strategies (exact, pattern, trie, composite) behind one contract.
package main

import (
	"fmt"
	"os"

	"github.com/corey/bleep/cmd/bleep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
