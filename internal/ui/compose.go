package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite paints block over base with block's top-left at cell (x, y).
// Base lines are split at the overlap ANSI-aware, so styled content on
// either side survives. Rows above/left of the viewport are dropped;
// the base grows downward if the block extends past its last line.
func Composite(base, block string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = spliceLine(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overlays one line at column x, keeping the uncovered parts
// of the base line.
func spliceLine(base, overlay string, x int) string {
	if x < 0 {
		overlay = ansi.TruncateLeft(overlay, -x, "")
		x = 0
	}
	w := ansi.StringWidth(overlay)
	if w == 0 {
		return base
	}
	left := ansi.Truncate(base, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + overlay + right
}
