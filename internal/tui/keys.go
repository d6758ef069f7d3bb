package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	del      key.Binding
	quit     key.Binding
	capture  key.Binding
	navigate key.Binding
	copyName key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	del:      key.NewBinding(key.WithKeys("backspace", "delete")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	capture:  key.NewBinding(key.WithKeys("1")),
	navigate: key.NewBinding(key.WithKeys("2")),
	copyName: key.NewBinding(key.WithKeys("c")),
}
