package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	favorite key.Binding
	copy     key.Binding
	reload   key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	right:    key.NewBinding(key.WithKeys("right", "l", "tab")),
	favorite: key.NewBinding(key.WithKeys("f", "enter")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
