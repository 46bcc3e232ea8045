package tex

import "strings"

// Delimiter selects the bracket pair wrapping one function argument.
type Delimiter uint8

const (
	Parens Delimiter = iota
	Braces
	Brackets
)

func (d Delimiter) Open() string {
	switch d {
	case Braces:
		return "{"
	case Brackets:
		return "["
	default:
		return "("
	}
}

func (d Delimiter) Close() string {
	switch d {
	case Braces:
		return "}"
	case Brackets:
		return "]"
	default:
		return ")"
	}
}

// Function is a command with one nested expression tree per argument slot.
// Argument trees are created at construction and owned exclusively by the
// function; each holds a non-owning back-reference used for upward
// navigation.
type Function struct {
	name  string
	slots []Delimiter
	args  []*Tree

	// parent is the tree the function currently sits in. Non-owning; set
	// when the function is inserted.
	parent *Tree
}

// NewFunction builds a function fragment. slots must be non-empty. When
// pre-built argument trees are given their count must equal the slot
// count; otherwise one empty tree is created per slot. Violations are
// caller bugs and panic.
func NewFunction(name string, slots []Delimiter, args ...*Tree) *Function {
	if len(slots) == 0 {
		panic("tex: function requires at least one argument slot")
	}
	if len(args) != 0 && len(args) != len(slots) {
		panic("tex: argument tree count does not match slot count")
	}

	f := &Function{
		name:  name,
		slots: append([]Delimiter(nil), slots...),
	}

	if len(args) == 0 {
		f.args = make([]*Tree, len(slots))
		for i := range f.args {
			f.args[i] = NewTree()
		}
	} else {
		f.args = append([]*Tree(nil), args...)
	}
	for _, a := range f.args {
		a.owner = f
	}
	return f
}

func (f *Function) Name() string { return f.name }

func (f *Function) NumArgs() int { return len(f.args) }

// Arg returns the argument tree for slot i.
func (f *Function) Arg(i int) *Tree {
	if i < 0 || i >= len(f.args) {
		panic("tex: argument slot out of range")
	}
	return f.args[i]
}

// ArgIndex returns the slot index of t, or -1 when t is not an argument
// of f.
func (f *Function) ArgIndex(t *Tree) int {
	for i, a := range f.args {
		if a == t {
			return i
		}
	}
	return -1
}

// Parent returns the tree currently containing the function, or nil.
func (f *Function) Parent() *Tree { return f.parent }

func (f *Function) TeX() string { return f.render(BuildOptions{}) }

func (f *Function) render(o BuildOptions) string {
	var sb strings.Builder
	sb.WriteString(f.name)
	for i, a := range f.args {
		sb.WriteString(f.slots[i].Open())
		sb.WriteString(a.Build(o))
		sb.WriteString(f.slots[i].Close())
	}
	return sb.String()
}
