package models

import (
	"time"
)

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a simulated conversation.
// Messages live only as long as the chat view that owns them.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
	IsTyping  bool      `json:"is_typing,omitempty"` // Placeholder shown while a reply is pending
}

// ChatFrame is what the chat view renders: the message list plus the typing flag.
type ChatFrame struct {
	ConversationID string    `json:"conversation_id"`
	Messages       []Message `json:"messages"`
	Typing         bool      `json:"typing"`
}
