package chat

import "time"

// StorageKey is the key-value slot holding the conversation.
const StorageKey = "@chat_messages"

const (
	welcomeID   = "welcome"
	welcomeText = "Hi! I'm an AI assistant powered by Gemini. I can help answer your questions. Ask me anything!"
	apologyText = "Sorry, something went wrong while contacting the AI. Please try again later."
)

// Message is one entry in the conversation.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

func welcomeMessage(now time.Time) Message {
	return Message{ID: welcomeID, Text: welcomeText, IsUser: false, Timestamp: now}
}
