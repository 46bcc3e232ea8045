package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plumetex/plume/tex"
)

// Model is a Bubble Tea component editing one expression document.
//
// The model owns the root tree and tracks the "current" tree: the root,
// or whichever nested argument tree the cursor has descended into.
type Model struct {
	cfg Config

	root *tex.Tree
	cur  *tex.Tree

	page    int
	width   int
	focused bool
}

func New(cfg Config) Model {
	root := tex.NewTree()
	root.SetCursor()
	return Model{
		cfg:     cfg,
		root:    root,
		cur:     root,
		focused: true,
	}
}

// Root returns the document root tree.
func (m Model) Root() *tex.Tree { return m.root }

// Current returns the tree the cursor currently lives in.
func (m Model) Current() *tex.Tree { return m.cur }

// Page returns the active keyboard page index.
func (m Model) Page() int { return m.page }

func (m Model) Focused() bool { return m.focused }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) SetSize(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

// TeX returns the document markup including the colored cursor glyph.
func (m Model) TeX() string {
	return m.root.Build(tex.BuildOptions{CursorColor: m.cfg.cursorColor()})
}

// PlainTeX returns the document markup without the cursor glyph and
// without empty-tree placeholders.
func (m Model) PlainTeX() string {
	set := m.cur.CursorSet()
	if set {
		m.cur.RemoveCursor()
	}
	s := m.root.Build(tex.BuildOptions{NoPlaceholder: true})
	if set {
		m.cur.SetCursor()
	}
	return s
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		(&m).handleKey(msg)
		(&m).emitChange()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.MoveLeft()
	case key.Matches(msg, km.Right):
		m.MoveRight()
	case key.Matches(msg, km.Backspace):
		m.DeleteBackward()
	case key.Matches(msg, km.Clear):
		m.Clear()
	case key.Matches(msg, km.TogglePage):
		m.TogglePage()
	default:
		if len(m.cfg.Pages) > 0 {
			if cmd, ok := m.cfg.Pages[m.page].commandFor(msg.String()); ok {
				m.InsertCommand(cmd)
				return
			}
		}
		if msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				m.InsertLeaf(string(r))
			}
		}
	}
}

// TogglePage cycles to the next keyboard page.
func (m *Model) TogglePage() {
	if len(m.cfg.Pages) == 0 {
		return
	}
	m.page = (m.page + 1) % len(m.cfg.Pages)
}

func (m *Model) emitChange() {
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(m.changeEvent())
}
