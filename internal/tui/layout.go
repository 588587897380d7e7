package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the footer and status bar.
	CompactWidth = 60
	// CardWidth is the outer width of one element card, borders included.
	CardWidth = 18
	// chromeHeight is the rows taken by the status bar, tabs, controls and footer.
	chromeHeight = 6
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
// Uses rune-aware counting and slicing to avoid splitting multi-byte UTF-8 characters.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// padToWidth pads a rendered (possibly ANSI-styled) string with spaces to fill
// the given width, then applies a background color across the entire padded row.
func padToWidth(s string, width int, bg lipgloss.Color) string {
	visible := lipgloss.Width(s)
	if visible < width {
		s += strings.Repeat(" ", width-visible)
	}
	return lipgloss.NewStyle().Background(bg).Render(s)
}

// cardsPerLine is how many cards fit side by side in width columns, capped
// at max and never below one.
func cardsPerLine(width, max int) int {
	n := width / CardWidth
	if n > max {
		n = max
	}
	if n < 1 {
		n = 1
	}
	return n
}

// tooSmall renders the placeholder shown below the minimum dimensions.
func tooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", width, height, MinWidth, MinHeight)
	return styleError.Render(msg)
}
