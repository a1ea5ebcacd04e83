package provider

import (
	"magicchat/magicloops"
	"magicchat/model"
)

// ConvertToTranscript converts chat messages to the role/content pairs the
// Magic Loops endpoint expects as "historial".
//
// Only the author and text survive; timestamps stay on the chat side.
// The result is never nil so it always serializes as a JSON array.
//
// Example:
//
//	transcript := ConvertToTranscript([]model.Message{
//	    model.BotMessage("¡Hola!"),
//	    model.UserMessage("hola"),
//	})
//	// [{assistant ¡Hola!} {user hola}]
func ConvertToTranscript(messages []model.Message) []magicloops.TranscriptEntry {
	result := make([]magicloops.TranscriptEntry, len(messages))
	for i, msg := range messages {
		result[i] = magicloops.TranscriptEntry{
			Role:    msg.Role(),
			Content: msg.Text,
		}
	}
	return result
}
