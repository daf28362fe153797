package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"flowgenie-backend/internal/chatsim"
	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/store"
)

// Custom errors for the chat service
var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrReplyPending = errors.New("assistant is still replying")
)

// Publisher pushes render frames to whoever is watching a topic.
type Publisher interface {
	Publish(topic string, v interface{})
	Forget(topic string)
}

// ChatTopic is the stream topic of a conversation's chat view.
func ChatTopic(conversationID string) string {
	return "chat:" + conversationID
}

// ChatService keeps one simulated chat view per conversation.
type ChatService struct {
	store     store.Store
	responses []string
	sched     schedule.Scheduler
	rnd       chatsim.Rand
	delay     time.Duration
	pub       Publisher

	mu       sync.Mutex
	sessions map[string]*chatsim.Simulator
}

// NewChatService creates a new ChatService. rnd must be safe for concurrent use.
func NewChatService(s store.Store, responses []string, sched schedule.Scheduler, rnd chatsim.Rand, delay time.Duration, pub Publisher) *ChatService {
	return &ChatService{
		store:     s,
		responses: responses,
		sched:     sched,
		rnd:       rnd,
		delay:     delay,
		pub:       pub,
		sessions:  make(map[string]*chatsim.Simulator),
	}
}

// session returns the simulator of a conversation, creating it on first use.
func (s *ChatService) session(conversationID string) *chatsim.Simulator {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sim, ok := s.sessions[conversationID]; ok {
		return sim
	}
	sim := chatsim.New(conversationID, s.responses, s.sched, s.rnd, s.delay)
	if s.pub != nil {
		topic := ChatTopic(conversationID)
		sim.SetListener(func(f models.ChatFrame) { s.pub.Publish(topic, f) })
	}
	s.sessions[conversationID] = sim
	return sim
}

// SendMessage posts a user message; the canned reply arrives later on the stream.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, content string) (*models.ChatFrame, error) {
	if _, err := s.store.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err // Propagate not found error
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	sim := s.session(conversationID)
	if !sim.Submit(content) {
		return nil, ErrReplyPending
	}
	frame := sim.Frame()
	return &frame, nil
}

// GetChat returns the current chat view of a conversation.
func (s *ChatService) GetChat(ctx context.Context, conversationID string) (*models.ChatFrame, error) {
	if _, err := s.store.GetConversation(ctx, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	frame := s.session(conversationID).Frame()
	return &frame, nil
}

// ResetChat clears a conversation's view, dropping any reply in flight.
func (s *ChatService) ResetChat(conversationID string) {
	s.mu.Lock()
	sim, ok := s.sessions[conversationID]
	s.mu.Unlock()
	if ok {
		sim.Reset()
	}
}

// CloseChat discards a conversation's view for good.
func (s *ChatService) CloseChat(conversationID string) {
	s.mu.Lock()
	sim, ok := s.sessions[conversationID]
	delete(s.sessions, conversationID)
	s.mu.Unlock()
	if s.pub != nil {
		s.pub.Forget(ChatTopic(conversationID))
	}
	if ok {
		sim.Close()
		log.Printf("[ChatService] Closed chat view of conversation %s", conversationID)
	}
}

// Close drops every chat view; used on shutdown.
func (s *ChatService) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*chatsim.Simulator)
	s.mu.Unlock()
	for _, sim := range sessions {
		sim.Close()
	}
}
