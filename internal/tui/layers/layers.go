// Package layers places rendered content over other rendered content
package layers

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Centered returns the top-left offset that centers content on a screen.
// Offsets never go negative.
func Centered(content string, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2
	return max(x, 0), max(y, 0)
}

// TopRight returns the offset that pins content to the top-right corner,
// one column in from the edge.
func TopRight(content string, screenWidth int, row int) (int, int) {
	return max(screenWidth-lipgloss.Width(content)-1, 0), max(row, 0)
}

// Place draws fg over bg with its top-left corner at (x, y).
// Lines of bg outside the overlay are kept as they are; bg is padded
// with blank lines when fg extends below it.
func Place(bg, fg string, x, y int) string {
	if fg == "" {
		return bg
	}

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		row := y + i
		under := bgLines[row]

		left := ansi.Truncate(under, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(line), "")

		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}

// PlaceCentered draws fg centered over bg on a screen of the given size
func PlaceCentered(bg, fg string, screenWidth, screenHeight int) string {
	x, y := Centered(fg, screenWidth, screenHeight)
	return Place(bg, fg, x, y)
}
