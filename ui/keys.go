package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"magicchat/config"
)

// keyMap is built from keybindings.toml so every action honours the user's
// modifiers and per-action overrides.
type keyMap struct {
	Send           key.Binding
	Help           key.Binding
	Close          key.Binding
	Reset          key.Binding
	Quit           key.Binding
	ScrollDown     key.Binding
	ScrollUp       key.Binding
	HalfPageDown   key.Binding
	HalfPageUp     key.Binding
	PageDown       key.Binding
	PageUp         key.Binding
	ScrollToTop    key.Binding
	ScrollToBottom key.Binding
	YankLast       key.Binding
	YankAll        key.Binding
	ClearInput     key.Binding
}

func newKeyMap(kb *config.KeyBindingsConfig) keyMap {
	if kb == nil {
		kb = config.DefaultKeybindings()
	}

	bind := func(action, desc string, extra ...string) key.Binding {
		keys := append([]string{kb.GetActionKey(action)}, extra...)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(kb.DisplayActionKey(action), desc),
		)
	}

	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Enviar"),
		),
		Help: bind("help", "Ayuda"),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Cerrar"),
		),
		Reset:          bind("reset", "Reiniciar"),
		Quit:           bind("quit", "Salir", "ctrl+c"),
		ScrollDown:     bind("scroll_down", "Bajar una línea", "down"),
		ScrollUp:       bind("scroll_up", "Subir una línea", "up"),
		HalfPageDown:   bind("half_page_down", "Bajar media página"),
		HalfPageUp:     bind("half_page_up", "Subir media página"),
		PageDown:       bind("page_down", "Bajar una página", "pgdown"),
		PageUp:         bind("page_up", "Subir una página", "pgup"),
		ScrollToTop:    bind("scroll_to_top", "Ir al inicio"),
		ScrollToBottom: bind("scroll_to_bottom", "Ir al final"),
		YankLast:       bind("yank_last_response", "Copiar respuesta"),
		YankAll:        bind("yank_conversation", "Copiar conversación"),
		ClearInput:     bind("clear_input", "Borrar entrada"),
	}
}

// statusBindings are the hints shown in the status bar.
func (k keyMap) statusBindings() []key.Binding {
	return []key.Binding{k.Send, k.Reset, k.YankLast, k.Help, k.Quit}
}
