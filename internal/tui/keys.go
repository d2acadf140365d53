package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search key.Binding
	Tier   key.Binding
	UpDown key.Binding
	Enter  key.Binding
	Copy   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		Tier:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "nível")),
		UpDown: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navegar")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "selecionar")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copiar")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fechar")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tier, k.UpDown, k.Enter, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Search, k.Tier, k.UpDown, k.Enter, k.Copy, k.Close, k.Quit}}
}

type searchKeyMap struct {
	keyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Close}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.Close}}
}
