package editor

// DefaultCursorColor is used when Config.CursorColor is empty.
const DefaultCursorColor = "#3377ff"

// Config configures the editor Model.
type Config struct {
	// CursorColor is embedded in the markup's cursor directive.
	CursorColor string

	// Pages are the host-supplied keyboard pages. May be empty.
	Pages []Page

	Style  Style
	KeyMap KeyMap

	// OnChange, when set, is called after every mutation handled by
	// Update.
	OnChange func(ChangeEvent)
}

func (c Config) cursorColor() string {
	if c.CursorColor == "" {
		return DefaultCursorColor
	}
	return c.CursorColor
}
