package models

// --- Request Structs ---

// RenameConversationRequest defines the body for renaming a conversation.
type RenameConversationRequest struct {
	Name string `json:"name"`
}

// SendMessageRequest defines the body for posting a chat message.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// SelectDemoRequest defines the body for jumping to a demo example.
type SelectDemoRequest struct {
	Index *int `json:"index"` // Pointer so a missing index can be told apart from 0
}

// --- Response Structs ---

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListConversationsResponse is the sidebar: pinned conversations first.
type ListConversationsResponse struct {
	Conversations []Conversation `json:"conversations"`
}

// TogglePinResponse reports the new pin state of a conversation.
type TogglePinResponse struct {
	Conversation Conversation `json:"conversation"`
	Message      string       `json:"message"` // Human readable confirmation, e.g. for a toast
}

// SendMessageResponse is returned when a message was accepted.
type SendMessageResponse struct {
	Chat ChatFrame `json:"chat"`
}

// ListExamplesResponse lists the demo scripts.
type ListExamplesResponse struct {
	Examples []DemoExample `json:"examples"`
}

// ListPromptsResponse lists the empty-chat suggestions.
type ListPromptsResponse struct {
	Prompts []ExamplePrompt `json:"prompts"`
}

// ListTestimonialsResponse lists every testimonial.
type ListTestimonialsResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// CopyPayloadResponse returns the payload that was copied.
type CopyPayloadResponse struct {
	Payload string    `json:"payload"`
	Frame   DemoFrame `json:"frame"`
}
