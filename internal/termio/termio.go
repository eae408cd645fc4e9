// Package termio wraps terminal-mode switching and size detection, the
// platform-specific parts of driving a full-screen terminal UI.
package termio

import (
	"os"

	"golang.org/x/term"
)

// State holds a terminal's mode prior to MakeRaw, for Restore.
type State struct {
	inner *term.State
}

// MakeRaw puts the terminal at fd into raw mode: no line buffering, no
// echo, no signal generation from Ctrl+C/Ctrl+Z, so every keypress
// reaches the application as raw bytes.
func MakeRaw(fd int) (*State, error) {
	s, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &State{inner: s}, nil
}

// Restore returns the terminal at fd to the mode captured by MakeRaw.
func Restore(fd int, state *State) error {
	return term.Restore(fd, state.inner)
}

// GetSize returns the terminal's width and height in character cells.
func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Stdin returns the file descriptor for the process's standard input.
func Stdin() int { return int(os.Stdin.Fd()) }

// Stdout returns the file descriptor for the process's standard output.
func Stdout() int { return int(os.Stdout.Fd()) }
