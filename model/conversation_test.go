package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversationStartsWithGreeting(t *testing.T) {
	c := NewConversation()

	require.Equal(t, 1, c.Len())
	assert.Equal(t, Greeting, c.At(0).Text)
	assert.False(t, c.At(0).IsUser)
	assert.Zero(t, c.Generation())
}

func TestConversationAppendKeepsOrder(t *testing.T) {
	c := NewConversation()
	c.Append(UserMessage("uno"))
	c.Append(BotMessage("dos"))
	c.Append(UserMessage("tres"))

	assert.Equal(t, "tres", c.Last().Text)

	msgs := c.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, []string{Greeting, "uno", "dos", "tres"}, texts(msgs))
	assert.Equal(t, []bool{false, true, false, true}, authors(msgs))
}

func TestConversationMessagesIsACopy(t *testing.T) {
	c := NewConversation()
	msgs := c.Messages()
	msgs[0].Text = "changed"
	msgs = append(msgs, UserMessage("extra"))

	assert.Equal(t, Greeting, c.At(0).Text)
	assert.Equal(t, 1, c.Len())
}

func TestConversationReset(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Conversation)
	}{
		{"fresh", func(c *Conversation) {}},
		{"after exchange", func(c *Conversation) {
			c.Append(UserMessage("hola"))
			c.Append(BotMessage("¡Hola!"))
		}},
		{"after previous reset", func(c *Conversation) {
			c.Append(UserMessage("hola"))
			c.Reset()
			c.Append(UserMessage("otra vez"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConversation()
			tt.setup(c)
			before := c.Generation()

			c.Reset()

			require.Equal(t, 1, c.Len())
			assert.Equal(t, ResetGreeting, c.At(0).Text)
			assert.False(t, c.At(0).IsUser)
			assert.Equal(t, before+1, c.Generation())
		})
	}
}

func TestConversationLastBotMessage(t *testing.T) {
	c := NewConversation()
	msg, ok := c.LastBotMessage()
	require.True(t, ok)
	assert.Equal(t, Greeting, msg.Text)

	c.Append(BotMessage("respuesta"))
	c.Append(UserMessage("pregunta"))

	msg, ok = c.LastBotMessage()
	require.True(t, ok)
	assert.Equal(t, "respuesta", msg.Text)
}

func TestMessageRole(t *testing.T) {
	assert.Equal(t, RoleUser, UserMessage("x").Role())
	assert.Equal(t, RoleAssistant, BotMessage("x").Role())
}

func texts(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

func authors(msgs []Message) []bool {
	out := make([]bool, len(msgs))
	for i, m := range msgs {
		out[i] = m.IsUser
	}
	return out
}
