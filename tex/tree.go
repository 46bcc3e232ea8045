package tex

import "strings"

// Result is the outcome of a cursor move or deletion.
type Result uint8

const (
	// ResultSuccess: the operation completed and the cursor is settled at
	// its new position.
	ResultSuccess Result = iota

	// ResultEnd: the operation was refused because the cursor is already
	// at a sibling-list boundary. No state changed.
	ResultEnd

	// ResultEntered: the fragment crossed is a Function. The cursor has
	// been deactivated and the caller must descend into one of the
	// function's argument trees and set the cursor there.
	ResultEntered
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultEnd:
		return "end"
	case ResultEntered:
		return "entered"
	default:
		return "unknown"
	}
}

// Tree is an ordered sibling list of fragments plus the cursor state.
//
// The cursor is the pair (pos, active): pos is always in [0, Len()], and
// active reports whether the insertion point currently lives in this tree.
// At most one tree in a document has an active cursor; maintaining that is
// the controller's job, signalled through ResultEntered.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	children []Fragment
	pos      int
	active   bool

	// owner is the function whose argument slot holds this tree.
	// Non-owning; nil for the document root.
	owner *Function
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) Len() int { return len(t.children) }

func (t *Tree) Pos() int { return t.pos }

// CursorSet reports whether the insertion point lives in this tree.
func (t *Tree) CursorSet() bool { return t.active }

// Owner returns the function owning this tree, or nil for the root.
func (t *Tree) Owner() *Function { return t.owner }

// FragmentAt returns the fragment at index i, or nil when out of range.
func (t *Tree) FragmentAt(i int) Fragment {
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// IndexOf returns the sibling index of f, or -1.
func (t *Tree) IndexOf(f Fragment) int {
	for i, c := range t.children {
		if c == f {
			return i
		}
	}
	return -1
}

// SetCursor activates the cursor at the current position. Calling it on a
// tree whose cursor is already set is a caller bug.
func (t *Tree) SetCursor() {
	if t.active {
		panic("tex: cursor already set")
	}
	t.active = true
}

// RemoveCursor deactivates the cursor. Calling it on a tree without an
// active cursor is a caller bug.
func (t *Tree) RemoveCursor() {
	if !t.active {
		panic("tex: cursor not set")
	}
	t.active = false
}

// Seek moves the cursor position, clamped to [0, Len()]. It does not
// change whether the cursor is set.
func (t *Tree) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(t.children) {
		pos = len(t.children)
	}
	t.pos = pos
}

// CursorAtEnd reports whether the active cursor sits after the last
// sibling. It deliberately does not recurse into nested arguments: a
// sibling after a wide nested structure is not necessarily at the right
// edge of the rendered expression, so "at the end" is a property of this
// sibling list only.
func (t *Tree) CursorAtEnd() bool {
	return t.active && t.pos == len(t.children)
}

// Insert places f at the cursor position and leaves the cursor
// immediately after it.
func (t *Tree) Insert(f Fragment) {
	if fn, ok := f.(*Function); ok {
		fn.parent = t
	}
	t.children = append(t.children, nil)
	copy(t.children[t.pos+1:], t.children[t.pos:])
	t.children[t.pos] = f
	t.pos++
}

// ShiftLeft moves the cursor one fragment to the left.
//
// At the left boundary it returns ResultEnd without mutating. When the
// crossed fragment is a Function it deactivates the cursor, leaves pos on
// the slot before the function, and returns ResultEntered; the caller
// descends into the function's last argument.
func (t *Tree) ShiftLeft() Result {
	if t.pos == 0 {
		return ResultEnd
	}
	t.pos--
	if _, ok := t.children[t.pos].(*Function); ok {
		t.active = false
		return ResultEntered
	}
	return ResultSuccess
}

// ShiftRight moves the cursor one fragment to the right.
//
// At the right boundary it returns ResultEnd without mutating. When the
// crossed fragment is a Function it deactivates the cursor, leaves pos on
// the slot after the function, and returns ResultEntered; the caller
// descends into the function's first argument.
func (t *Tree) ShiftRight() Result {
	if t.pos == len(t.children) {
		return ResultEnd
	}
	crossed := t.children[t.pos]
	t.pos++
	if _, ok := crossed.(*Function); ok {
		t.active = false
		return ResultEntered
	}
	return ResultSuccess
}

// DeleteBackward applies backspace semantics to the fragment left of the
// cursor.
//
//   - pos 0: ResultEnd, no mutation.
//   - Function: ResultEntered without deleting it; deleting into a
//     function continues inside its last argument.
//   - Leaf carrying a case-block marker: the whole contiguous block span
//     is removed as one unit and the cursor lands at the span start.
//   - Any other Leaf: removed whole. Multi-character commands are atomic
//     by construction and can never be partially deleted.
func (t *Tree) DeleteBackward() Result {
	if t.pos == 0 {
		return ResultEnd
	}

	switch target := t.children[t.pos-1].(type) {
	case *Function:
		t.pos--
		t.active = false
		return ResultEntered

	case *Leaf:
		if strings.Contains(target.text, CasesBegin) || strings.Contains(target.text, CasesEnd) {
			start, end := t.casesSpan(t.pos - 1)
			t.deleteRange(start, end)
			t.pos = start
			return ResultSuccess
		}
		t.deleteRange(t.pos-1, t.pos-1)
		t.pos--
		return ResultSuccess

	default:
		t.deleteRange(t.pos-1, t.pos-1)
		t.pos--
		return ResultSuccess
	}
}

// casesSpan resolves the inclusive sibling range of the case-system block
// around the marker leaf at index i. The scan pairs the nearest markers
// and counts nesting so inner blocks do not terminate it early. An
// unmatched side falls back to i: deleting too little is preferred over
// touching unrelated content.
func (t *Tree) casesSpan(i int) (start, end int) {
	start, end = i, i
	trigger := t.children[i].(*Leaf)
	hasBegin := strings.Contains(trigger.text, CasesBegin)
	hasEnd := strings.Contains(trigger.text, CasesEnd)

	if !hasBegin {
		depth := 0
		for j := i - 1; j >= 0; j-- {
			leaf, ok := t.children[j].(*Leaf)
			if !ok {
				continue
			}
			if strings.Contains(leaf.text, CasesEnd) {
				depth++
				continue
			}
			if strings.Contains(leaf.text, CasesBegin) {
				if depth == 0 {
					start = j
					break
				}
				depth--
			}
		}
	}

	if !hasEnd {
		depth := 0
		for j := i + 1; j < len(t.children); j++ {
			leaf, ok := t.children[j].(*Leaf)
			if !ok {
				continue
			}
			if strings.Contains(leaf.text, CasesBegin) {
				depth++
				continue
			}
			if strings.Contains(leaf.text, CasesEnd) {
				if depth == 0 {
					end = j
					break
				}
				depth--
			}
		}
	}

	return start, end
}

// deleteRange removes children[start..end] inclusive.
func (t *Tree) deleteRange(start, end int) {
	t.children = append(t.children[:start], t.children[end+1:]...)
}
