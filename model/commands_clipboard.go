package model

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// CopyLastReply copies the newest bot message to the system clipboard.
func (m *Model) CopyLastReply() tea.Cmd {
	msg, ok := m.Conversation.LastBotMessage()
	if !ok {
		return nil
	}
	text := msg.Text

	return func() tea.Msg {
		return ClipboardCopiedMsg{What: "last reply", Err: writeClipboard(text)}
	}
}

// CopyConversation copies the whole conversation as plain text.
func (m *Model) CopyConversation() tea.Cmd {
	text := FormatTranscript(m.Conversation.Messages())

	return func() tea.Msg {
		return ClipboardCopiedMsg{What: "conversation", Err: writeClipboard(text)}
	}
}

// FormatTranscript renders messages as "[15:04] You:\n..." blocks.
func FormatTranscript(messages []Message) string {
	var b strings.Builder
	for _, msg := range messages {
		author := "Bot"
		if msg.IsUser {
			author = "You"
		}
		b.WriteString(fmt.Sprintf("[%s] %s:\n%s\n\n", msg.Timestamp.Format("15:04"), author, msg.Text))
	}
	return b.String()
}
