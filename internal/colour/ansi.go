package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// FormatSwatchWithPreview formats a swatch with its preview block and
// hex code.
func FormatSwatchWithPreview(s Swatch, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(s.RGB, width), s.Hex)
}

// FormatSwatchWithLabel formats a swatch with a label and preview.
func FormatSwatchWithLabel(s Swatch, label string, width int) string {
	return fmt.Sprintf("%s  %-12s %s", ColourPreview(s.RGB, width), label, s.Hex)
}

// SupportsANSIColours checks if stdout likely supports truecolour ANSI
// escape sequences: it must be a terminal and TERM must not be dumb.
func SupportsANSIColours() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}
