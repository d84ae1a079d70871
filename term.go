package novice

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Protocol identifies how a picture is drawn into the terminal.
type Protocol int

const (
	// Halfblocks draws the picture with Unicode half-block characters
	// and 24-bit color escapes. Works in any modern terminal.
	Halfblocks Protocol = iota
	// Sixel draws the picture with the DEC sixel graphics protocol.
	Sixel
	// ITerm2 draws the picture with the iTerm2 inline image protocol.
	ITerm2
)

func (p Protocol) String() string {
	switch p {
	case Sixel:
		return "sixel"
	case ITerm2:
		return "iterm2"
	default:
		return "halfblocks"
	}
}

// DetectProtocol picks the richest protocol the current terminal is
// known to support, based on environment heuristics. Halfblocks is the
// universal fallback.
func DetectProtocol() Protocol {
	if checkITerm2Support() {
		return ITerm2
	}
	if checkSixelSupport() {
		return Sixel
	}
	return Halfblocks
}

func checkITerm2Support() bool {
	// There is no query mechanism for inline images, so use the same
	// environment heuristics the terminals themselves advertise.
	switch {
	case os.Getenv("LC_TERMINAL") == "iTerm2" || os.Getenv("TERM_PROGRAM") == "iTerm.app":
		return true
	case os.Getenv("TERM_PROGRAM") == "wezterm":
		return true
	case os.Getenv("TERM") == "mintty":
		return true
	default:
		return false
	}
}

func checkSixelSupport() bool {
	termName := os.Getenv("TERM")
	switch {
	case strings.Contains(termName, "sixel"):
		return true
	case strings.HasPrefix(termName, "foot"), strings.HasPrefix(termName, "mlterm"),
		strings.HasPrefix(termName, "yaft"):
		return true
	default:
		return false
	}
}

// terminalCells returns the terminal grid size, falling back to 80x24
// when stdout is not a terminal or the size cannot be determined.
func terminalCells() (cols, rows int) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	return 80, 24
}
