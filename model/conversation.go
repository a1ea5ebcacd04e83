package model

const (
	Greeting      = "¡Hola! Soy tu asistente con memoria de conversación. ¿En qué puedo ayudarte hoy?"
	ResetGreeting = "Conversación reiniciada. ¿En qué puedo ayudarte ahora?"
)

// Conversation is the ordered, never-empty list of chat messages.
//
// Every Reset bumps the generation so that results of exchanges started
// before the reset can be recognised and dropped.
type Conversation struct {
	messages   []Message
	generation uint64
}

func NewConversation() *Conversation {
	return &Conversation{
		messages: []Message{BotMessage(Greeting)},
	}
}

func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Reset drops everything and leaves only the reset greeting.
func (c *Conversation) Reset() {
	c.messages = []Message{BotMessage(ResetGreeting)}
	c.generation++
}

// Messages returns a copy, oldest first.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

func (c *Conversation) At(i int) Message {
	return c.messages[i]
}

// Last returns the newest message. The conversation is never empty.
func (c *Conversation) Last() Message {
	return c.messages[len(c.messages)-1]
}

func (c *Conversation) Generation() uint64 {
	return c.generation
}

// LastBotMessage returns the newest bot-authored message, if any.
func (c *Conversation) LastBotMessage() (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if !c.messages[i].IsUser {
			return c.messages[i], true
		}
	}
	return Message{}, false
}
