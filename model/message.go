package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat bubble. Messages are values: the conversation only
// ever appends them or replaces the whole list.
type Message struct {
	Text      string
	IsUser    bool
	Timestamp time.Time
}

func UserMessage(text string) Message {
	return Message{Text: text, IsUser: true, Timestamp: time.Now()}
}

func BotMessage(text string) Message {
	return Message{Text: text, IsUser: false, Timestamp: time.Now()}
}

// Role is the wire role for the message author.
func (m Message) Role() string {
	if m.IsUser {
		return RoleUser
	}
	return RoleAssistant
}
