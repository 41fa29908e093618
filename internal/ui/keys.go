package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

type keyMap struct {
	Quit    key.Binding
	Add     key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Detail  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Edit    key.Binding
	Filter  key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(keyLabel(k.Quit), "quit")),
		Add:     key.NewBinding(key.WithKeys(k.Add), key.WithHelp(keyLabel(k.Add), "add")),
		Up:      key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(keyLabel(k.Up), "up")),
		Down:    key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(keyLabel(k.Down), "down")),
		Toggle:  key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Delete:  key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(keyLabel(k.Delete), "delete")),
		Detail:  key.NewBinding(key.WithKeys(k.Detail), key.WithHelp(keyLabel(k.Detail), "detail")),
		Confirm: key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(keyLabel(k.Confirm), "confirm")),
		Cancel:  key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(keyLabel(k.Cancel), "cancel")),
		Edit:    key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(keyLabel(k.Edit), "edit/save")),
		Filter:  key.NewBinding(key.WithKeys(k.Filter), key.WithHelp(keyLabel(k.Filter), "filter")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete, k.Filter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Add, k.Toggle, k.Edit, k.Delete},
		{k.Filter, k.Confirm, k.Cancel, k.Quit},
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
