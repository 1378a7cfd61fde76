package cliutil

import "golang.org/x/term"

// IsTty reports whether the given file descriptor is a terminal.
func IsTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
