package editor

import (
	"strings"

	"github.com/zephyrtronium/expressions"
)

// PreviewValue evaluates the current document when it is plain
// arithmetic. Expressions containing markup commands, free variables, or
// syntax the evaluator rejects simply have no preview.
func (m Model) PreviewValue() (string, bool) {
	return previewValue(m.PlainTeX())
}

func previewValue(src string) (string, bool) {
	if src == "" || strings.ContainsAny(src, `\{}[]`) {
		return "", false
	}

	expr, err := expressions.Parse(strings.NewReader(src))
	if err != nil {
		return "", false
	}

	ctx := expressions.NewContext(expressions.Prec(64))
	v := ctx.Eval(expr)
	if v == nil {
		return "", false
	}
	return v.Text('g', 12), true
}
