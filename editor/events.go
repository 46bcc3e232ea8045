package editor

// ChangeEvent describes the document after a mutation handled by Update.
type ChangeEvent struct {
	// TeX is the markup including the colored cursor glyph.
	TeX string

	// Plain is the markup without cursor glyph or placeholders.
	Plain string

	// Preview is the evaluated numeric value of Plain, when available.
	Preview    string
	HasPreview bool
}

func (m *Model) changeEvent() ChangeEvent {
	ev := ChangeEvent{
		TeX:   m.TeX(),
		Plain: m.PlainTeX(),
	}
	ev.Preview, ev.HasPreview = previewValue(ev.Plain)
	return ev
}
