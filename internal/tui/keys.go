package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	add       key.Binding
	edit      key.Binding
	delete    key.Binding
	reload    key.Binding
	copy      key.Binding
	yes       key.Binding
	no        key.Binding
	importCSV key.Binding
	exportCSV key.Binding
	generate  key.Binding
	photo     key.Binding
	save      key.Binding
	newChat   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	add:       key.NewBinding(key.WithKeys("a")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	reload:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	importCSV: key.NewBinding(key.WithKeys("i")),
	exportCSV: key.NewBinding(key.WithKeys("x")),
	generate:  key.NewBinding(key.WithKeys("g")),
	photo:     key.NewBinding(key.WithKeys("f")),
	save:      key.NewBinding(key.WithKeys("s")),
	newChat:   key.NewBinding(key.WithKeys("n")),
}
