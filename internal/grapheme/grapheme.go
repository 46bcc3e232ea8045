// Package grapheme wraps rivo/uniseg for the cluster-level string
// handling the editor view needs: cell widths and width-aware truncation
// of a single rendered line.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate cuts text to at most width terminal cells, never splitting a
// cluster. When it cuts, the last cell is spent on the ellipsis rune.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteRune('…')
	return sb.String()
}
