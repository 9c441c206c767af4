package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeSingleLine flattens s to one line without control characters.
func sanitizeSingleLine(s string) string {
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// truncateCells cuts s to at most width cells.
func truncateCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
