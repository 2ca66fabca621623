package cmd

import "fmt"

// matchExit is returned by check and scan to signal a specific exit code.
// grep convention: 0=clean, 1=disallowed content found, 2=error.
type matchExit struct{ code int }

func (e matchExit) Error() string {
	switch e.code {
	case 0:
		return ""
	case 1:
		return "disallowed content found"
	default:
		return fmt.Sprintf("bleep error (exit %d)", e.code)
	}
}

// ExitCode extracts the exit code from a matchExit error.
// Returns -1 if the error is not a matchExit.
func ExitCode(err error) int {
	if me, ok := err.(matchExit); ok {
		return me.code
	}
	return -1
}

// foundExit returns the matchExit for a run that found anything, else nil.
func foundExit(found bool) error {
	if found {
		return matchExit{code: 1}
	}
	return nil
}
