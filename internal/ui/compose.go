package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// invisibleOpacity is the opacity below which a layer is not drawn at all.
// Faded text is only invisible on a terminal whose background matches ours.
const invisibleOpacity = 0.03

// layer is a rendered block positioned by a row offset.
type layer struct {
	lines   []string
	offset  int
	opacity float64
}

func newLayer(block string, offset int, opacity float64) layer {
	return layer{lines: strings.Split(block, "\n"), offset: offset, opacity: opacity}
}

// composeLayers draws layers bottom-up into height rows. A non-blank line of
// a later layer replaces whatever is beneath it. height <= 0 uses the tallest
// layer.
func composeLayers(height int, layers ...layer) []string {
	if height <= 0 {
		for _, l := range layers {
			height = max(height, len(l.lines))
		}
	}
	out := make([]string, height)
	for _, l := range layers {
		if l.opacity < invisibleOpacity {
			continue
		}
		for i, line := range l.lines {
			row := i + l.offset
			if row < 0 || row >= height || isBlank(line) {
				continue
			}
			out[row] = line
		}
	}
	return out
}

// isBlank reports whether line has no visible characters.
func isBlank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}

// blankBlock returns a block of spaces the size of block.
func blankBlock(block string) string {
	w, h := lipgloss.Size(block)
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// clipLines keeps the first n lines of s, padding with empty lines if short.
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
