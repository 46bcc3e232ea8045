package tex

// Placeholder is emitted for an empty tree unless suppressed.
const Placeholder = `\Box`

// CasesBegin and CasesEnd delimit a case-system block. A block spans
// multiple sibling fragments; deletion treats the whole span as one unit.
const (
	CasesBegin = `\begin{cases}`
	CasesEnd   = `\end{cases}`
)

const cursorGlyph = `\cursor`

// Fragment is one node of an expression: either a Leaf or a Function.
// The set is closed; the cursor is positional state on a Tree, not a node.
type Fragment interface {
	// TeX returns the fragment's markup with default build options.
	TeX() string

	render(o BuildOptions) string
}

// Leaf is an atomic markup token. The text may be a multi-character
// command such as `\sin(`; it is always inserted and deleted as a whole.
type Leaf struct {
	text string
}

func NewLeaf(text string) *Leaf {
	return &Leaf{text: text}
}

func (l *Leaf) Text() string { return l.text }

func (l *Leaf) TeX() string { return l.text }

func (l *Leaf) render(BuildOptions) string { return l.text }

// IsCommand reports whether the leaf starts with the command escape.
func (l *Leaf) IsCommand() bool {
	return len(l.text) > 0 && l.text[0] == '\\'
}
