// Package memory is the in-process Store. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"log"
	"sync"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/store"
)

// Compile-time check to ensure MemoryStore implements store.Store
var _ store.Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu    sync.RWMutex
	convs []models.Conversation
}

// NewMemoryStore returns a store seeded with a copy of seed, in order.
func NewMemoryStore(seed []models.Conversation) *MemoryStore {
	convs := make([]models.Conversation, len(seed))
	copy(convs, seed)
	return &MemoryStore{convs: convs}
}

// ListConversations returns every conversation in stored order.
func (s *MemoryStore) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Conversation, len(s.convs))
	copy(out, s.convs)
	return out, nil
}

// GetConversation retrieves a conversation by ID.
// Returns store.ErrNotFound if it does not exist.
func (s *MemoryStore) GetConversation(ctx context.Context, id string) (*models.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	conv := s.convs[i]
	return &conv, nil
}

// PrependConversation inserts conv at the front of the list.
func (s *MemoryStore) PrependConversation(ctx context.Context, conv models.Conversation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(conv.ID) >= 0 {
		log.Printf("ERROR [MemoryStore] PrependConversation: ID %s already exists", conv.ID)
		return fmt.Errorf("conversation %s: %w", conv.ID, store.ErrAlreadyExists)
	}
	s.convs = append([]models.Conversation{conv}, s.convs...)
	return nil
}

// UpdateConversation applies the non-nil fields of arg.
func (s *MemoryStore) UpdateConversation(ctx context.Context, arg store.UpdateConversationParams) (*models.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(arg.ID)
	if i < 0 {
		return nil, store.ErrNotFound
	}
	if arg.Name != nil {
		s.convs[i].Name = *arg.Name
	}
	if arg.Pinned != nil {
		s.convs[i].Pinned = *arg.Pinned
	}
	conv := s.convs[i]
	return &conv, nil
}

// SetActiveConversation makes id the only active conversation.
func (s *MemoryStore) SetActiveConversation(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return store.ErrNotFound
	}
	for i := range s.convs {
		s.convs[i].Active = s.convs[i].ID == id
	}
	return nil
}

// DeleteConversation removes a conversation.
func (s *MemoryStore) DeleteConversation(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return store.ErrNotFound
	}
	s.convs = append(s.convs[:i], s.convs[i+1:]...)
	return nil
}

// indexOf returns the position of id or -1. Caller holds s.mu.
func (s *MemoryStore) indexOf(id string) int {
	for i := range s.convs {
		if s.convs[i].ID == id {
			return i
		}
	}
	return -1
}
