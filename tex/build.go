package tex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BuildOptions controls serialization.
type BuildOptions struct {
	// CursorColor is the color wrapped around the cursor glyph. Required
	// whenever the tree being built (or any nested argument tree) has an
	// active cursor; building an active cursor without a color is a
	// caller bug.
	CursorColor string

	// NoPlaceholder suppresses the empty-tree placeholder.
	NoPlaceholder bool
}

// Build serializes the tree to markup, fragment by fragment in reading
// order. An empty tree yields Placeholder (or "" when suppressed). When
// the cursor is active, a color-wrapped cursor glyph is emitted at the
// cursor position.
//
// A single separating space is inserted between two fragments exactly
// when the left output ends in a bare multi-letter command token and the
// right output starts alphanumeric, so `\sin` followed by `x` cannot be
// read back as `\sinx`.
func (t *Tree) Build(o BuildOptions) string {
	if t.active && o.CursorColor == "" {
		panic("tex: active cursor requires BuildOptions.CursorColor")
	}

	parts := make([]string, 0, len(t.children)+1)
	for i, f := range t.children {
		if t.active && i == t.pos {
			parts = append(parts, CursorTeX(o.CursorColor))
		}
		parts = append(parts, f.render(o))
	}
	if t.active && t.pos == len(t.children) {
		parts = append(parts, CursorTeX(o.CursorColor))
	}

	if len(parts) == 0 {
		if o.NoPlaceholder {
			return ""
		}
		return Placeholder
	}

	var sb strings.Builder
	for i, p := range parts {
		if i > 0 && needsSeparator(parts[i-1], p) {
			sb.WriteByte(' ')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// CursorTeX returns the markup emitted for an active cursor: a color
// directive wrapping the cursor glyph.
func CursorTeX(color string) string {
	return `\textcolor{` + color + `}{` + cursorGlyph + `}`
}

// needsSeparator reports whether concatenating left and right would merge
// a trailing command name with a following letter or digit.
func needsSeparator(left, right string) bool {
	if !endsWithBareCommand(left) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(right)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// endsWithBareCommand reports whether s ends in `\` followed by two or
// more ASCII letters with nothing after them.
func endsWithBareCommand(s string) bool {
	i := len(s)
	for i > 0 && isASCIILetter(s[i-1]) {
		i--
	}
	return len(s)-i >= 2 && i > 0 && s[i-1] == '\\'
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
