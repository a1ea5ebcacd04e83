package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"magicchat/config"
)

// statusNoticeTTL is how long a clipboard notice stays in the status bar.
const statusNoticeTTL = 3 * time.Second

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true

		// Rendered markdown is width dependent
		var cmd tea.Cmd
		if a.renderWidth != a.bubbleContentWidth() {
			cmd = a.rerenderAll()
		}
		a.updateViewportContent(true)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if !a.dataModel.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		return a, cmd

	case exchangeDoneMsg:
		changed := a.dataModel.HandleExchangeDone(msg)
		a.afterExchange()
		if !changed {
			a.updateViewportContent(true)
			return a, nil
		}
		idx := a.dataModel.Conversation.Len() - 1
		a.updateViewportContent(true)
		return a, a.renderMarkdownAsync(a.dataModel.Conversation.Generation(), idx, a.dataModel.Conversation.Last().Text)

	case exchangeErrorMsg:
		a.dataModel.HandleExchangeError(msg)
		a.afterExchange()
		a.updateViewportContent(true)
		return a, nil

	case endpointStatusMsg:
		a.dataModel.HandleEndpointStatus(msg)
		return a, nil

	case markdownRenderedMsg:
		if msg.Generation != a.dataModel.Conversation.Generation() {
			// Rendered for a conversation that has since been reset
			return a, nil
		}
		if msg.MessageIndex >= 0 && msg.MessageIndex < a.dataModel.Conversation.Len() {
			a.rendered[renderKey{msg.Generation, msg.MessageIndex}] = msg.Rendered
			a.updateViewportContent(true)
		}
		return a, nil

	case clipboardCopiedMsg:
		return a, a.showNotice(clipboardNotice(msg))

	case clearStatusMsg:
		if msg.seq == a.statusNoticeSeq {
			a.statusNotice = ""
		}
		return a, nil
	}

	// Anything else (cursor blink) belongs to the input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// afterExchange re-enables the input and resizes around the banner, which
// may have appeared or disappeared.
func (a *AppView) afterExchange() {
	if !a.dataModel.Loading {
		a.input.Focus()
	}
	a.layout()
}

func (a *AppView) showNotice(text string) tea.Cmd {
	a.statusNoticeSeq++
	a.statusNotice = text
	seq := a.statusNoticeSeq

	if config.DebugLog != nil {
		config.DebugLog.Debugf("[UI] notice: %s", text)
	}

	return tea.Tick(statusNoticeTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func clipboardNotice(msg clipboardCopiedMsg) string {
	if msg.Err != nil {
		return "No se pudo copiar al portapapeles: " + msg.Err.Error()
	}
	if msg.What == "conversation" {
		return "Conversación copiada al portapapeles"
	}
	return "Respuesta copiada al portapapeles"
}
