package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/CrueChan/Timer/internal/i18n"
)

// keyMap holds the countdown shortcuts. Help text is filled in by
// localize so it follows the active language.
type keyMap struct {
	Toggle   key.Binding
	Reset    key.Binding
	Set      key.Binding
	Focus    key.Binding
	Language key.Binding
	Theme    key.Binding
	Scheme   key.Binding
	Quit     key.Binding
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func newKeyMap(primary, reset string) keyMap {
	if primary == "" {
		primary = " "
	}
	if reset == "" {
		reset = "r"
	}
	return keyMap{
		Toggle:   key.NewBinding(key.WithKeys(primary), key.WithHelp(keyName(primary), "")),
		Reset:    key.NewBinding(key.WithKeys(reset), key.WithHelp(keyName(reset), "")),
		Set:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "")),
		Scheme:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "")),
	}
}

func relabel(b *key.Binding, desc string) {
	b.SetHelp(b.Help().Key, desc)
}

func (k *keyMap) localize(t func(string) string) {
	relabel(&k.Toggle, t(i18n.KeyStartButton)+"/"+t(i18n.KeyStopButton))
	relabel(&k.Reset, t(i18n.KeyResetButton))
	relabel(&k.Set, t(i18n.KeySetButton))
	relabel(&k.Focus, t(i18n.KeyHelpFocus))
	relabel(&k.Language, t(i18n.KeyLanguageName))
	relabel(&k.Theme, t(i18n.KeyHelpTheme))
	relabel(&k.Scheme, t(i18n.KeyHelpScheme))
	relabel(&k.Quit, t(i18n.KeyHelpQuit))
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Set, k.Focus, k.Language, k.Theme, k.Scheme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Set},
		{k.Focus, k.Language, k.Theme, k.Scheme, k.Quit},
	}
}
