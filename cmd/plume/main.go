package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plumetex/plume/editor"
	"github.com/plumetex/plume/tex"
)

type model struct {
	editor editor.Model
}

func newModel() model {
	cfg := editor.Config{
		CursorColor: editor.DefaultCursorColor,
		Style:       editor.DefaultStyle(),
		KeyMap:      editor.DefaultKeyMap(),
		Pages:       pages(),
	}
	return model{editor: editor.New(cfg)}
}

func pages() []editor.Page {
	return []editor.Page{
		{
			Name: "calc",
			Commands: []editor.Command{
				{Keys: []string{"f"}, Label: "fraction", TeX: `\frac`, Slots: []tex.Delimiter{tex.Braces, tex.Braces}},
				{Keys: []string{"r"}, Label: "square root", TeX: `\sqrt`, Slots: []tex.Delimiter{tex.Braces}},
				{Keys: []string{"l"}, Label: "logarithm", TeX: `\log`, Slots: []tex.Delimiter{tex.Brackets, tex.Parens}},
				{Keys: []string{"p"}, Label: "pi", TeX: `\pi`},
				{Keys: []string{"e"}, Label: "euler", TeX: `e`},
			},
		},
		{
			Name: "trig",
			Commands: []editor.Command{
				{Keys: []string{"s"}, Label: "sine", TeX: `\sin(`},
				{Keys: []string{"c"}, Label: "cosine", TeX: `\cos(`},
				{Keys: []string{"t"}, Label: "tangent", TeX: `\tan(`},
				{Keys: []string{")"}, Label: "close paren", TeX: `)`},
			},
		},
		{
			Name: "blocks",
			Commands: []editor.Command{
				{Keys: []string{"b"}, Label: "cases open", TeX: tex.CasesBegin},
				{Keys: []string{"n"}, Label: "cases close", TeX: tex.CasesEnd},
			},
		},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n\ntab switches pages, ctrl+u clears, ctrl+c quits\n"
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
