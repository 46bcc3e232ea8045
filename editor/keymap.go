package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings. Page commands are matched
// before the fallback rune insertion, after these bindings.
type KeyMap struct {
	Left, Right key.Binding
	Backspace   key.Binding
	Clear       key.Binding
	TogglePage  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),

		Clear:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		TogglePage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
	}
}
