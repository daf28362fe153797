package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/store"

	"github.com/google/uuid"
)

// Custom errors for the conversation service
var (
	ErrInvalidName = errors.New("chat name cannot be empty")
)

// DefaultConversationName is the name of a freshly started chat.
const DefaultConversationName = "New Chat"

// ConversationService defines the sidebar operations.
type ConversationService interface {
	ListConversations(ctx context.Context, query string) (*models.ListConversationsResponse, error)
	StartConversation(ctx context.Context) (*models.Conversation, error)
	SelectConversation(ctx context.Context, id string) (*models.Conversation, error)
	RenameConversation(ctx context.Context, id, name string) (*models.Conversation, error)
	TogglePin(ctx context.Context, id string) (*models.TogglePinResponse, error)
	DeleteConversation(ctx context.Context, id string) error
}

type conversationService struct {
	store store.Store
	chats *ChatService
}

// NewConversationService creates a new ConversationService. chats may be nil
// when no chat views are attached.
func NewConversationService(s store.Store, chats *ChatService) ConversationService {
	return &conversationService{
		store: s,
		chats: chats,
	}
}

// ListConversations returns pinned conversations first, each group in stored
// order, keeping only names containing query (case-insensitive).
func (s *conversationService) ListConversations(ctx context.Context, query string) (*models.ListConversationsResponse, error) {
	convs, err := s.store.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	needle := strings.ToLower(query)
	pinned := make([]models.Conversation, 0, len(convs))
	rest := make([]models.Conversation, 0, len(convs))
	for _, c := range convs {
		if needle != "" && !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		if c.Pinned {
			pinned = append(pinned, c)
		} else {
			rest = append(rest, c)
		}
	}
	return &models.ListConversationsResponse{Conversations: append(pinned, rest...)}, nil
}

// StartConversation prepends a new active conversation and deactivates the others.
func (s *conversationService) StartConversation(ctx context.Context) (*models.Conversation, error) {
	conv := models.Conversation{
		ID:     uuid.NewString(),
		Name:   DefaultConversationName,
		Active: true,
	}
	if err := s.store.PrependConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	if err := s.store.SetActiveConversation(ctx, conv.ID); err != nil {
		return nil, fmt.Errorf("failed to activate conversation: %w", err)
	}
	log.Printf("[ConversationService] Started conversation %s", conv.ID)
	return &conv, nil
}

// SelectConversation makes id the active conversation and gives it a fresh chat view.
func (s *conversationService) SelectConversation(ctx context.Context, id string) (*models.Conversation, error) {
	if err := s.store.SetActiveConversation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to select conversation: %w", err)
	}
	if s.chats != nil {
		s.chats.ResetChat(id)
	}
	return s.store.GetConversation(ctx, id)
}

// RenameConversation sets a new name; blank names are rejected.
func (s *conversationService) RenameConversation(ctx context.Context, id, name string) (*models.Conversation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	conv, err := s.store.UpdateConversation(ctx, store.UpdateConversationParams{ID: id, Name: &name})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to rename conversation: %w", err)
	}
	return conv, nil
}

// TogglePin flips the pinned flag.
func (s *conversationService) TogglePin(ctx context.Context, id string) (*models.TogglePinResponse, error) {
	current, err := s.store.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	pinned := !current.Pinned
	conv, err := s.store.UpdateConversation(ctx, store.UpdateConversationParams{ID: id, Pinned: &pinned})
	if err != nil {
		return nil, fmt.Errorf("failed to update pin: %w", err)
	}

	msg := fmt.Sprintf("%q has been unpinned from the top.", conv.Name)
	if pinned {
		msg = fmt.Sprintf("%q has been pinned to the top.", conv.Name)
	}
	return &models.TogglePinResponse{Conversation: *conv, Message: msg}, nil
}

// DeleteConversation removes a conversation and its chat view.
func (s *conversationService) DeleteConversation(ctx context.Context, id string) error {
	if err := s.store.DeleteConversation(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	if s.chats != nil {
		s.chats.CloseChat(id)
	}
	return nil
}
