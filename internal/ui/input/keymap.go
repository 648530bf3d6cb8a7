package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit      key.Binding
	Help      key.Binding
	Admin     key.Binding
	Back      key.Binding
	Logout    key.Binding
	Config    key.Binding
	Accept    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quitter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Aide"),
	),
	Admin: key.NewBinding(
		key.WithKeys("ctrl+a", "a"),
		key.WithHelp("a", "Admin"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Fermer"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "Déconnexion"),
	),
	Config: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "Réglages"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Valider"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Champ suivant"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "Champ précédent"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "Haut"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Bas"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete", "x"),
		key.WithHelp("x", "Supprimer"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("o", "O", "y", "Y"),
		key.WithHelp("o", "Oui"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "Non"),
	),
}
