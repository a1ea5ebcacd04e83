package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var written string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		written = text
		return err
	}
	t.Cleanup(func() { writeClipboard = orig })
	return &written
}

func TestCopyLastReply(t *testing.T) {
	written := stubClipboard(t, nil)
	m := NewModel(nil, nil, "test", "MIT")
	m.Conversation.Append(UserMessage("hola"))
	m.Conversation.Append(BotMessage("**hola** de vuelta"))

	cmd := m.CopyLastReply()
	require.NotNil(t, cmd)

	msg, ok := cmd().(ClipboardCopiedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "last reply", msg.What)
	assert.Equal(t, "**hola** de vuelta", *written)
}

func TestCopyConversationReportsClipboardError(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard utility"))
	m := NewModel(nil, nil, "test", "MIT")

	msg := m.CopyConversation()().(ClipboardCopiedMsg)
	assert.EqualError(t, msg.Err, "no clipboard utility")
	assert.Equal(t, "conversation", msg.What)
}

func TestFormatTranscript(t *testing.T) {
	ts := time.Date(2025, 1, 2, 9, 5, 0, 0, time.UTC)
	out := FormatTranscript([]Message{
		{Text: "hola", IsUser: true, Timestamp: ts},
		{Text: "¡hola!", IsUser: false, Timestamp: ts},
	})

	assert.Equal(t, "[09:05] You:\nhola\n\n[09:05] Bot:\n¡hola!\n\n", out)
}
