package models

// Conversation is an entry in the chat sidebar.
type Conversation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Pinned bool   `json:"pinned"`
}
