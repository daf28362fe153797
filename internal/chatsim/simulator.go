// Package chatsim simulates an assistant that answers every prompt with a
// canned reply after a short delay.
package chatsim

import (
	"log"
	"strings"
	"sync"
	"time"

	"flowgenie-backend/internal/models"
	"flowgenie-backend/internal/schedule"

	"github.com/google/uuid"
)

// DefaultResponseDelay is how long the assistant "types" before replying.
const DefaultResponseDelay = 1500 * time.Millisecond

// Rand picks the canned reply. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Listener receives the chat view after every change. It runs under the
// simulator's lock and must not call back into the Simulator.
type Listener func(models.ChatFrame)

// Simulator owns the message list of one chat view. At most one reply is in
// flight at a time.
type Simulator struct {
	id        string
	responses []string
	delay     time.Duration
	rnd       Rand
	tasks     *schedule.Group

	mu       sync.Mutex
	listener Listener
	messages []models.Message
	pending  bool
	gen      uint64
}

// New creates an empty chat view. responses must not be empty.
func New(id string, responses []string, sched schedule.Scheduler, rnd Rand, delay time.Duration) *Simulator {
	if len(responses) == 0 {
		panic("chatsim: at least one canned response is required")
	}
	if delay <= 0 {
		delay = DefaultResponseDelay
	}
	return &Simulator{
		id:        id,
		responses: responses,
		delay:     delay,
		rnd:       rnd,
		tasks:     schedule.NewGroup(sched),
		messages:  []models.Message{},
	}
}

// SetListener installs the render callback.
func (s *Simulator) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// Submit appends a user message and schedules the reply. It reports false,
// changing nothing, when text is blank or a reply is still pending.
func (s *Simulator) Submit(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(text) == "" || s.pending {
		return false
	}

	s.messages = append(s.messages, models.Message{
		ID:        uuid.NewString(),
		Content:   text,
		Role:      models.RoleUser,
		Timestamp: s.tasks.Now(),
	})
	s.pending = true
	gen := s.gen
	s.tasks.AfterFunc(s.delay, func() { s.reply(gen) })
	s.emitLocked()
	return true
}

func (s *Simulator) reply(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.pending {
		return
	}
	s.messages = append(s.messages, models.Message{
		ID:        uuid.NewString(),
		Content:   s.responses[s.rnd.Intn(len(s.responses))],
		Role:      models.RoleAssistant,
		Timestamp: s.tasks.Now(),
	})
	s.pending = false
	s.emitLocked()
}

// Reset clears the view and drops any pending reply.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if dropped := s.tasks.CancelAll(); dropped > 0 {
		log.Printf("[ChatSimulator] %s: dropped pending reply on reset", s.id)
	}
	s.messages = []models.Message{}
	s.pending = false
	s.emitLocked()
}

// Close drops any pending reply and detaches the listener.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.tasks.CancelAll()
	s.pending = false
	s.listener = nil
}

// Pending reports whether a reply is in flight.
func (s *Simulator) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Messages returns a copy of the message list.
func (s *Simulator) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Frame returns what the chat view shows, including the typing placeholder
// while a reply is pending.
func (s *Simulator) Frame() models.ChatFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Simulator) frameLocked() models.ChatFrame {
	msgs := make([]models.Message, len(s.messages), len(s.messages)+1)
	copy(msgs, s.messages)
	if s.pending {
		msgs = append(msgs, models.Message{
			ID:        "typing",
			Role:      models.RoleAssistant,
			Timestamp: s.tasks.Now(),
			IsTyping:  true,
		})
	}
	return models.ChatFrame{
		ConversationID: s.id,
		Messages:       msgs,
		Typing:         s.pending,
	}
}

func (s *Simulator) emitLocked() {
	if s.listener != nil {
		s.listener(s.frameLocked())
	}
}
