package testutil

import (
	"encoding/json"
	"time"

	"magicchat/model"
)

// TestMessages returns a sample conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		{
			Text:      model.Greeting,
			IsUser:    false,
			Timestamp: time.Now(),
		},
		{
			Text:      "¿Cuál es la capital de Francia?",
			IsUser:    true,
			Timestamp: time.Now(),
		},
		{
			Text:      "La capital de Francia es París.",
			IsUser:    false,
			Timestamp: time.Now(),
		},
	}
}

// GreetingOnly returns the conversation as it looks on startup.
func GreetingOnly() []model.Message {
	return []model.Message{
		{
			Text:      model.Greeting,
			IsUser:    false,
			Timestamp: time.Now(),
		},
	}
}

// RunResponse builds a Magic Loops response body with the given reply.
func RunResponse(reply string) string {
	body, _ := json.Marshal(map[string]string{"respuesta": reply})
	return string(body)
}
