package store

import (
	"context"
	"errors"

	"flowgenie-backend/internal/models"
)

// ErrNotFound is returned when a specific record is not found.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when inserting a record whose ID is taken.
var ErrAlreadyExists = errors.New("record already exists")

// UpdateConversationParams contains the optional fields of a conversation update.
type UpdateConversationParams struct {
	ID     string
	Name   *string // Pointer to allow optional update
	Pinned *bool   // Pointer to allow optional update
}

// Store defines the interface for the sidebar's conversation list.
// The collection is ordered; new conversations go to the front.
type Store interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	GetConversation(ctx context.Context, id string) (*models.Conversation, error)
	PrependConversation(ctx context.Context, conv models.Conversation) error
	UpdateConversation(ctx context.Context, arg UpdateConversationParams) (*models.Conversation, error)
	// SetActiveConversation marks id active and every other conversation inactive.
	SetActiveConversation(ctx context.Context, id string) error
	DeleteConversation(ctx context.Context, id string) error
}
