package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"magicchat/config"
)

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// PRIORITY 0: Always-global shortcuts
	if key.Matches(msg, a.keys.Quit) {
		if config.DebugLog != nil {
			config.DebugLog.Debugf("[UI] %s pressed - quitting", msg.String())
		}
		return a, tea.Quit
	}

	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// PRIORITY 1: Help modal swallows everything else
	if a.showHelp {
		if key.Matches(msg, a.keys.Close) {
			a.showHelp = false
		}
		return a, nil
	}

	// PRIORITY 2: Chat actions
	switch {
	case key.Matches(msg, a.keys.Send):
		return a.submit()

	case key.Matches(msg, a.keys.Reset):
		return a.reset()

	case key.Matches(msg, a.keys.YankLast):
		return a, a.dataModel.CopyLastReply()

	case key.Matches(msg, a.keys.YankAll):
		return a, a.dataModel.CopyConversation()

	case key.Matches(msg, a.keys.ClearInput):
		a.input.SetValue("")
		return a, nil

	case key.Matches(msg, a.keys.ScrollDown):
		a.viewport.LineDown(1)
		return a, nil

	case key.Matches(msg, a.keys.ScrollUp):
		a.viewport.LineUp(1)
		return a, nil

	case key.Matches(msg, a.keys.HalfPageDown):
		a.viewport.HalfPageDown()
		return a, nil

	case key.Matches(msg, a.keys.HalfPageUp):
		a.viewport.HalfPageUp()
		return a, nil

	case key.Matches(msg, a.keys.PageDown):
		a.viewport.PageDown()
		return a, nil

	case key.Matches(msg, a.keys.PageUp):
		a.viewport.PageUp()
		return a, nil

	case key.Matches(msg, a.keys.ScrollToTop):
		a.viewport.GotoTop()
		return a, nil

	case key.Matches(msg, a.keys.ScrollToBottom):
		a.viewport.GotoBottom()
		return a, nil
	}

	// Input is disabled while an exchange is in flight
	if a.dataModel.Loading {
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit sends the input. Blank input or a pending exchange leaves
// everything untouched, including the input text.
func (a AppView) submit() (tea.Model, tea.Cmd) {
	cmd := a.dataModel.Submit(a.input.Value())
	if cmd == nil {
		return a, nil
	}

	a.input.SetValue("")
	a.input.Blur()
	a.layout()
	a.updateViewportContent(true)

	return a, tea.Batch(cmd, a.loadingSpinner.Tick)
}

func (a AppView) reset() (tea.Model, tea.Cmd) {
	a.dataModel.Reset()
	a.rendered = make(map[renderKey]string)
	a.layout()
	a.updateViewportContent(true)

	if config.DebugLog != nil {
		config.DebugLog.WithField("generation", a.dataModel.Conversation.Generation()).Debug("[UI] conversation reset")
	}

	greeting := a.dataModel.Conversation.At(0)
	return a, a.renderMarkdownAsync(a.dataModel.Conversation.Generation(), 0, greeting.Text)
}
