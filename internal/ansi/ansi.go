// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import "fmt"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Yellow = "\033[33m"
	Green  = "\033[32m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

// FgRGBFmt is the truecolor foreground SGR format, filled with R;G;B.
const FgRGBFmt = "\033[38;2;%d;%d;%dm"

// FgRGB returns the escape sequence selecting a 24-bit foreground color.
func FgRGB(r, g, b uint8) string {
	return fmt.Sprintf(FgRGBFmt, r, g, b)
}

// Paint wraps s in a foreground color and a trailing reset.
func Paint(r, g, b uint8, s string) string {
	return FgRGB(r, g, b) + s + Reset
}
