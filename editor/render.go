package editor

import (
	"strings"

	"github.com/plumetex/plume/internal/grapheme"
	"github.com/plumetex/plume/tex"
)

// View renders the markup source line with a styled cursor cell, followed
// by the numeric preview and the active page label when available.
func (m Model) View() string {
	lines := []string{m.renderExpression()}

	if v, ok := m.PreviewValue(); ok {
		lines = append(lines, m.cfg.Style.Preview.Render("= "+v))
	}
	if len(m.cfg.Pages) > 0 {
		lines = append(lines, m.cfg.Style.PageLabel.Render("["+m.cfg.Pages[m.page].Name+"]"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderExpression() string {
	st := m.cfg.Style
	color := m.cfg.cursorColor()
	built := m.root.Build(tex.BuildOptions{CursorColor: color})

	marker := tex.CursorTeX(color)
	i := strings.Index(built, marker)
	if i < 0 {
		if m.width > 0 {
			built = grapheme.Truncate(built, m.width)
		}
		return st.Text.Render(built)
	}

	left, right := built[:i], built[i+len(marker):]
	if m.width > 0 {
		// Keep the cursor cell on screen; overflow is spent on the right.
		avail := m.width - grapheme.Width(left) - 1
		right = grapheme.Truncate(right, avail)
	}
	var sb strings.Builder
	if left != "" {
		sb.WriteString(st.Text.Render(left))
	}
	sb.WriteString(st.Cursor.Render("│"))
	if right != "" {
		sb.WriteString(st.Text.Render(right))
	}
	return sb.String()
}
