package editor

import "github.com/plumetex/plume/tex"

// Descend placement: entering a function from its left goes to the first
// argument's start; entering from its right (left-moves and backspace)
// goes to the last argument's end.

// MoveRight shifts the cursor right, descending into a function's first
// argument or ascending out of the current argument tree as needed.
func (m *Model) MoveRight() {
	switch m.cur.ShiftRight() {
	case tex.ResultEntered:
		fn := m.cur.FragmentAt(m.cur.Pos() - 1).(*tex.Function)
		m.enter(fn.Arg(0), 0)
	case tex.ResultEnd:
		m.ascendRight()
	}
}

// MoveLeft shifts the cursor left, descending into a function's last
// argument or ascending out of the current argument tree as needed.
func (m *Model) MoveLeft() {
	switch m.cur.ShiftLeft() {
	case tex.ResultEntered:
		fn := m.cur.FragmentAt(m.cur.Pos()).(*tex.Function)
		last := fn.Arg(fn.NumArgs() - 1)
		m.enter(last, last.Len())
	case tex.ResultEnd:
		m.ascendLeft()
	}
}

// DeleteBackward applies backspace. Deleting into a function descends
// into its last argument instead of removing the function; backspace at
// the start of an argument tree ascends without deleting.
func (m *Model) DeleteBackward() {
	switch m.cur.DeleteBackward() {
	case tex.ResultEntered:
		fn := m.cur.FragmentAt(m.cur.Pos()).(*tex.Function)
		last := fn.Arg(fn.NumArgs() - 1)
		m.enter(last, last.Len())
	case tex.ResultEnd:
		m.ascendLeft()
	}
}

// InsertLeaf inserts an atomic token at the cursor.
func (m *Model) InsertLeaf(text string) {
	m.cur.Insert(tex.NewLeaf(text))
}

// InsertCommand inserts a page command: a leaf for slotless commands,
// otherwise a function template whose first argument receives the
// cursor.
func (m *Model) InsertCommand(c Command) {
	if len(c.Slots) == 0 {
		m.cur.Insert(tex.NewLeaf(c.TeX))
		return
	}
	fn := tex.NewFunction(c.TeX, c.Slots)
	m.cur.Insert(fn)
	m.cur.RemoveCursor()
	m.enter(fn.Arg(0), 0)
}

// WrapWith replaces the document with a new function whose first
// argument receives the previous root content. With more than one slot
// the cursor moves into the second argument, otherwise after the
// function.
func (m *Model) WrapWith(name string, slots []tex.Delimiter) {
	if len(slots) == 0 {
		panic("editor: WrapWith requires at least one argument slot")
	}
	m.cur.RemoveCursor()

	args := make([]*tex.Tree, len(slots))
	args[0] = m.root
	for i := 1; i < len(args); i++ {
		args[i] = tex.NewTree()
	}
	fn := tex.NewFunction(name, slots, args...)

	m.root = tex.NewTree()
	m.root.Insert(fn)
	if len(slots) > 1 {
		m.enter(fn.Arg(1), 0)
		return
	}
	m.root.SetCursor()
	m.cur = m.root
}

// Clear discards the document wholesale and starts over.
func (m *Model) Clear() {
	m.root = tex.NewTree()
	m.root.SetCursor()
	m.cur = m.root
	m.page = 0
}

// enter makes t the current tree with the cursor settled at pos. The
// previous tree's cursor must already be unset.
func (m *Model) enter(t *tex.Tree, pos int) {
	t.Seek(pos)
	t.SetCursor()
	m.cur = t
}

// ascendRight hops out of the current argument tree toward the right:
// into the next argument slot, or past the owning function. At the
// document edge it is a no-op.
func (m *Model) ascendRight() {
	fn := m.cur.Owner()
	if fn == nil {
		return
	}
	idx := fn.ArgIndex(m.cur)
	m.cur.RemoveCursor()

	if idx+1 < fn.NumArgs() {
		m.enter(fn.Arg(idx+1), 0)
		return
	}

	parent := fn.Parent()
	parent.Seek(parent.IndexOf(fn) + 1)
	parent.SetCursor()
	m.cur = parent
}

// ascendLeft mirrors ascendRight: previous argument slot, or the slot
// before the owning function.
func (m *Model) ascendLeft() {
	fn := m.cur.Owner()
	if fn == nil {
		return
	}
	idx := fn.ArgIndex(m.cur)
	m.cur.RemoveCursor()

	if idx > 0 {
		prev := fn.Arg(idx - 1)
		m.enter(prev, prev.Len())
		return
	}

	parent := fn.Parent()
	parent.Seek(parent.IndexOf(fn))
	parent.SetCursor()
	m.cur = parent
}
