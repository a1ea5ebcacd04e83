package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"magicchat/config"
)

// ErrorBanner is the only failure text the user ever sees.
const ErrorBanner = "Ocurrió un error al conectar con el servidor. Por favor intenta nuevamente."

// Model holds the core application data and business logic state.
// The UI layer receives it by pointer; nothing here is global.
type Model struct {
	// Core dependencies
	Config    *config.Config
	Exchanger Exchanger

	// Application data
	Conversation *Conversation
	Shell        *Shell

	// Session status (not part of the conversation)
	Loading bool
	Err     string

	// EndpointReachable reflects the last ping or exchange outcome.
	EndpointReachable bool

	// Application metadata
	Version string
	License string
}

func NewModel(cfg *config.Config, exchanger Exchanger, version, license string) *Model {
	return &Model{
		Config:            cfg,
		Exchanger:         exchanger,
		Conversation:      NewConversation(),
		Shell:             NewShell(),
		EndpointReachable: true,
		Version:           version,
		License:           license,
	}
}

// Submit appends the user's message and starts an exchange. It returns nil,
// and changes nothing, when the trimmed input is empty or an exchange is
// already in flight.
func (m *Model) Submit(input string) tea.Cmd {
	text := strings.TrimSpace(input)

	if err := m.Shell.Submit(text); err != nil {
		if config.DebugLog != nil {
			config.DebugLog.WithField("state", m.Shell.State()).Debugf("[Model] submit ignored: %v", err)
		}
		return nil
	}

	// History is the conversation as it was before this message; the new
	// text travels separately as the message itself.
	history := m.Conversation.Messages()
	m.Conversation.Append(UserMessage(text))
	m.Loading = true
	m.Err = ""

	return m.SendExchange(text, history, m.Conversation.Generation())
}

// HandleExchangeDone applies a successful exchange. It reports whether the
// conversation changed.
func (m *Model) HandleExchangeDone(msg ExchangeDoneMsg) bool {
	m.Loading = false
	m.EndpointReachable = true

	if m.isStale(msg.Generation) {
		m.discard("reply", msg.ID)
		return false
	}

	if err := m.Shell.Succeed(); err != nil && config.DebugLog != nil {
		config.DebugLog.Warnf("[Model] unexpected reply in state %s: %v", m.Shell.State(), err)
	}
	m.Err = ""

	if msg.Reply == "" {
		return false
	}
	m.Conversation.Append(BotMessage(msg.Reply))
	return true
}

// HandleExchangeError applies a failed exchange: nothing is appended and the
// banner is set.
func (m *Model) HandleExchangeError(msg ExchangeErrorMsg) {
	m.Loading = false

	if m.isStale(msg.Generation) {
		m.discard("error", msg.ID)
		return
	}

	if err := m.Shell.Fail(); err != nil && config.DebugLog != nil {
		config.DebugLog.Warnf("[Model] unexpected failure in state %s: %v", m.Shell.State(), err)
	}
	m.Err = ErrorBanner
}

// Reset clears the conversation to the reset greeting and drops any error.
// An exchange in flight is not cancelled; its result will be discarded.
func (m *Model) Reset() {
	m.Conversation.Reset()
	m.Err = ""
	if err := m.Shell.Reset(); err != nil && config.DebugLog != nil {
		config.DebugLog.Warnf("[Model] reset rejected in state %s: %v", m.Shell.State(), err)
	}
}

func (m *Model) isStale(generation uint64) bool {
	return generation != m.Conversation.Generation()
}

func (m *Model) discard(kind, id string) {
	if config.DebugLog != nil {
		config.DebugLog.WithField("exchange", id).WithField("generation", m.Conversation.Generation()).
			Debugf("[Model] discarding stale %s from before reset", kind)
	}
	if m.Shell.Sending() {
		_ = m.Shell.Discard()
	}
}
