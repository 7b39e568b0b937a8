package ui

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 100

// TerminalWidth returns the current terminal width, falling back to a
// fixed width when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
