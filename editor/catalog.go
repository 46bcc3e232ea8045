package editor

import "github.com/plumetex/plume/tex"

// Command is one entry of a host-supplied keyboard page. A command with
// no slots inserts a plain leaf; a command with slots inserts a function
// template and the cursor descends into its first argument.
type Command struct {
	// Keys are the bubbletea key strings that trigger the command.
	Keys []string

	// Label is a short human-readable name for help surfaces.
	Label string

	// TeX is the leaf text, or the command name for templates.
	TeX string

	Slots []tex.Delimiter
}

// Page is a named group of commands, toggled through in order.
type Page struct {
	Name     string
	Commands []Command
}

func (p Page) commandFor(keyName string) (Command, bool) {
	for _, c := range p.Commands {
		for _, k := range c.Keys {
			if k == keyName {
				return c, true
			}
		}
	}
	return Command{}, false
}
